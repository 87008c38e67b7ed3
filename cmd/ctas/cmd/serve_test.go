package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastalops/ctas/internal/config"
	"github.com/coastalops/ctas/pkg/logger"
	domain "github.com/coastalops/ctas/pkg/types"
)

// Disabled channels must not get a notifier at all: dispatch then skips
// them at enqueue time instead of recording a discarded delivery as sent,
// and the subscription test endpoint rejects them as unconfigured.
func TestBuildNotifiers_SkipsDisabledChannels(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	assert.Empty(t, buildNotifiers(cfg, logger.Discard()))

	cfg.Notifications.Email.Enabled = true
	cfg.Notifications.Email.Host = "smtp.example.com"
	cfg.Notifications.Email.From = "alerts@example.com"

	ns := buildNotifiers(cfg, logger.Discard())
	require.Len(t, ns, 1)
	assert.Equal(t, domain.ChannelEmail, ns[0].Channel())
}
