package hazard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/coastalops/ctas/pkg/types"
)

func TestThresholds_Classify(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()

	tests := []struct {
		name  string
		typ   domain.AlertType
		value float64
		want  domain.Severity
	}{
		{name: "tide below medium is low", typ: domain.AlertTide, value: 2.2, want: domain.SeverityLow},
		{name: "tide at medium", typ: domain.AlertTide, value: 2.5, want: domain.SeverityMedium},
		{name: "tide high", typ: domain.AlertTide, value: 3.1, want: domain.SeverityHigh},
		{name: "tide critical", typ: domain.AlertTide, value: 4.0, want: domain.SeverityCritical},
		{name: "wave medium", typ: domain.AlertWave, value: 3.5, want: domain.SeverityMedium},
		{name: "wave critical at breakpoint", typ: domain.AlertWave, value: 5.0, want: domain.SeverityCritical},
		{name: "flood low", typ: domain.AlertFlood, value: 0.35, want: domain.SeverityLow},
		{name: "flood high", typ: domain.AlertFlood, value: 0.75, want: domain.SeverityHigh},
		{name: "storm medium", typ: domain.AlertStorm, value: 0.65, want: domain.SeverityMedium},
		{name: "unknown type defaults to medium", typ: domain.AlertSystem, value: 99, want: domain.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, th.Classify(tt.typ, tt.value))
		})
	}
}
