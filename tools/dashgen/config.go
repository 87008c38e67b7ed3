package main

import "errors"

// KnownMetrics is the set of metric names exported by the coastal threat
// alert system plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"ctas_http_request_duration_seconds": true,
	"ctas_http_requests_total":           true,

	// Health metrics.
	"ctas_healthz_up": true,
	"ctas_readyz_up":  true,

	// Collection metrics.
	"ctas_collection_readings_total":   true,
	"ctas_collection_errors_total":     true,
	"ctas_collection_duration_seconds": true,
	"ctas_stations_reporting":          true,

	// NOAA API metrics.
	"ctas_noaa_api_calls_total":        true,
	"ctas_noaa_daily_usage":            true,
	"ctas_noaa_daily_limit_hits_total": true,

	// Weather API metrics.
	"ctas_weather_api_calls_total":  true,
	"ctas_weather_api_errors_total": true,

	// Hazard metrics.
	"ctas_flood_risk_probability": true,

	// Alert metrics.
	"ctas_alerts_fired_total":   true,
	"ctas_alerts_active":        true,
	"ctas_alerts_deduped_total": true,

	// Notification metrics.
	"ctas_notifications_sent_total":    true,
	"ctas_notification_failures_total": true,
	"ctas_notification_retries_total":  true,

	// Recording rules.
	"ctas:http_requests:rate5m":         true,
	"ctas:http_errors:rate5m":           true,
	"ctas:collection_readings:rate5m":   true,
	"ctas:collection_errors:rate5m":     true,
	"ctas:noaa_api_calls:rate5m":        true,
	"ctas:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
