// Package metrics defines Prometheus metrics for the coastal threat alert
// system.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ctas"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the last readiness probe succeeded, 0 otherwise.",
	})
)

// Collection metrics.
var (
	CollectionReadingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collection_readings_total",
		Help:      "Total number of readings collected, by kind.",
	}, []string{"kind"})

	CollectionErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collection_errors_total",
		Help:      "Total number of collection errors, by kind.",
	}, []string{"kind"})

	CollectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collection_duration_seconds",
		Help:      "Duration of collection cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	StationsReporting = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stations_reporting",
		Help:      "Number of active stations that reported within the offline window.",
	})
)

// NOAA API metrics.
var (
	NOAAAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "noaa_api_calls_total",
		Help:      "Total cumulative NOAA CO-OPS API calls.",
	})

	NOAADailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "noaa_daily_usage",
		Help:      "NOAA API call count for the current UTC day.",
	})

	NOAADailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "noaa_daily_limit_hits_total",
		Help:      "Total number of times the daily NOAA API quota was reached.",
	})
)

// Weather API metrics.
var (
	WeatherAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_api_calls_total",
		Help:      "Total cumulative weather API calls.",
	})

	WeatherAPIErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_api_errors_total",
		Help:      "Total number of weather API call failures.",
	})
)

// Hazard metrics.
var (
	FloodRiskProbability = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "flood_risk_probability",
		Help:      "Latest computed flood risk probability per station.",
	}, []string{"station"})
)

// Alert metrics.
var (
	AlertsFiredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_fired_total",
		Help:      "Total number of alerts fired, by type and severity.",
	}, []string{"type", "severity"})

	AlertsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alerts_active",
		Help:      "Number of currently active alerts.",
	})

	AlertsDedupedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_deduped_total",
		Help:      "Total number of alerts suppressed by deduplication.",
	})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications sent, by channel.",
	}, []string{"channel"})

	NotificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures, by channel.",
	}, []string{"channel"})

	NotificationRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_retries_total",
		Help:      "Total number of notification retry attempts.",
	})
)
