package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastalops/ctas/internal/notify"
	domain "github.com/coastalops/ctas/pkg/types"
)

func TestPushNotifier_Send(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key=server-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			To           string `json:"to"`
			Notification struct {
				Title string `json:"title"`
				Body  string `json:"body"`
			} `json:"notification"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		assert.Equal(t, "device-token-1", payload.To)
		assert.Equal(t, "HIGH: Coastal Flood Alert", payload.Notification.Title)
		assert.Equal(t, "Coastal flooding expected", payload.Notification.Body)
		assert.Equal(t, "a1", payload.Data["alert_id"])
		assert.Equal(t, "flood", payload.Data["type"])
		assert.Equal(t, "high", payload.Data["severity"])

		_, _ = w.Write([]byte(`{"success": 1}`))
	}))
	defer srv.Close()

	n := notify.NewPushNotifier("server-key", notify.WithPushEndpoint(srv.URL))

	assert.Equal(t, domain.ChannelPush, n.Channel())

	err := n.Send(context.Background(), &notify.Message{
		Alert:     fixtureAlert(domain.AlertFlood, domain.SeverityHigh),
		Recipient: "device-token-1",
	})
	require.NoError(t, err)
}

func TestPushNotifier_Send_Errors(t *testing.T) {
	t.Parallel()

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream failure"))
		}))
		defer srv.Close()

		n := notify.NewPushNotifier("server-key", notify.WithPushEndpoint(srv.URL))
		err := n.Send(context.Background(), &notify.Message{
			Alert:     fixtureAlert(domain.AlertWave, domain.SeverityMedium),
			Recipient: "device-token-1",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "returned 500")
	})

	t.Run("missing recipient", func(t *testing.T) {
		t.Parallel()

		n := notify.NewPushNotifier("server-key")
		err := n.Send(context.Background(), &notify.Message{
			Alert: fixtureAlert(domain.AlertWave, domain.SeverityMedium),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no device token")
	})
}
