package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_AtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, SeverityCritical.AtLeast(SeverityLow))
	assert.True(t, SeverityMedium.AtLeast(SeverityMedium))
	assert.False(t, SeverityLow.AtLeast(SeverityHigh))
}

func TestSubscription_Wants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sub  Subscription
		typ  AlertType
		sev  Severity
		want bool
	}{
		{
			name: "matching type and severity",
			sub:  Subscription{AlertTypes: []AlertType{AlertFlood}, MinSeverity: SeverityMedium},
			typ:  AlertFlood, sev: SeverityHigh, want: true,
		},
		{
			name: "severity below minimum",
			sub:  Subscription{AlertTypes: []AlertType{AlertFlood}, MinSeverity: SeverityHigh},
			typ:  AlertFlood, sev: SeverityMedium, want: false,
		},
		{
			name: "type not subscribed",
			sub:  Subscription{AlertTypes: []AlertType{AlertTide}, MinSeverity: SeverityLow},
			typ:  AlertStorm, sev: SeverityCritical, want: false,
		},
		{
			name: "empty type list accepts all types",
			sub:  Subscription{MinSeverity: SeverityLow},
			typ:  AlertSystem, sev: SeverityLow, want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sub.Wants(tt.typ, tt.sev))
		})
	}
}

func TestSubscription_Recipient(t *testing.T) {
	t.Parallel()

	s := Subscription{Email: "a@example.com", Phone: "+15550100", DeviceToken: "tok"}
	assert.Equal(t, "a@example.com", s.Recipient(ChannelEmail))
	assert.Equal(t, "+15550100", s.Recipient(ChannelSMS))
	assert.Equal(t, "tok", s.Recipient(ChannelPush))
	assert.Empty(t, s.Recipient(Channel("carrier_pigeon")))
}

func TestTideReading_Residual(t *testing.T) {
	t.Parallel()

	r := TideReading{WaterLevel: 2.4}
	_, ok := r.Residual()
	assert.False(t, ok)

	pred := 2.1
	r.PredictedLevel = &pred
	res, ok := r.Residual()
	assert.True(t, ok)
	assert.InDelta(t, 0.3, res, 0.001)
}

func TestAlert_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a := Alert{}
	assert.False(t, a.Expired(now), "no expiry never expires")

	past := now.Add(-time.Hour)
	a.ExpiresAt = &past
	assert.True(t, a.Expired(now))
}
