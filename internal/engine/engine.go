// Package engine orchestrates data collection, alert evaluation, and
// notification dispatch.
package engine

import (
	"log/slog"
	"time"

	"github.com/coastalops/ctas/internal/noaa"
	"github.com/coastalops/ctas/internal/notify"
	"github.com/coastalops/ctas/internal/store"
	"github.com/coastalops/ctas/internal/weather"
	"github.com/coastalops/ctas/pkg/hazard"
)

const (
	defaultDedupWindow     = 2 * time.Hour
	defaultOfflineWindow   = 30 * time.Minute
	defaultOfflineFraction = 0.5
	defaultMaxAttempts     = 3
	defaultConcurrency     = 10
	defaultRetryBackoff    = time.Minute
	defaultStaggerOffset   = 2 * time.Second

	// Readings older than this are treated as absent during evaluation.
	readingFreshness = time.Hour
)

// Engine orchestrates collection, evaluation, and dispatch.
type Engine struct {
	store      store.Store
	tides      noaa.Client
	weather    weather.Client
	forecaster *hazard.Forecaster
	thresholds hazard.Thresholds
	notifiers  map[string]notify.Notifier
	log        *slog.Logger

	staggerOffset   time.Duration
	dedupWindow     time.Duration
	offlineWindow   time.Duration
	offlineFraction float64
	maxAttempts     int
	concurrency     int
	retryBackoff    time.Duration
	nowFunc         func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	tides noaa.Client,
	wx weather.Client,
	notifiers []notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:           s,
		tides:           tides,
		weather:         wx,
		forecaster:      hazard.NewForecaster(),
		thresholds:      hazard.DefaultThresholds(),
		notifiers:       make(map[string]notify.Notifier, len(notifiers)),
		log:             slog.Default(),
		staggerOffset:   defaultStaggerOffset,
		dedupWindow:     defaultDedupWindow,
		offlineWindow:   defaultOfflineWindow,
		offlineFraction: defaultOfflineFraction,
		maxAttempts:     defaultMaxAttempts,
		concurrency:     defaultConcurrency,
		retryBackoff:    defaultRetryBackoff,
		nowFunc:         time.Now,
	}
	for _, n := range notifiers {
		eng.notifiers[string(n.Channel())] = n
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithForecaster sets the forecaster used for risk assessment.
func WithForecaster(f *hazard.Forecaster) EngineOption {
	return func(e *Engine) {
		e.forecaster = f
	}
}

// WithThresholds overrides the default severity breakpoints.
func WithThresholds(t hazard.Thresholds) EngineOption {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// WithStaggerOffset sets the delay between processing each station.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithDedupWindow sets how long an alert suppresses repeats of the same
// type for the same station.
func WithDedupWindow(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.dedupWindow = d
	}
}

// WithOfflineCheck sets the window and fraction for the station network
// health check.
func WithOfflineCheck(window time.Duration, fraction float64) EngineOption {
	return func(e *Engine) {
		e.offlineWindow = window
		e.offlineFraction = fraction
	}
}

// WithNotificationPolicy sets delivery attempt limits, fan-out concurrency,
// and the base retry backoff.
func WithNotificationPolicy(maxAttempts, concurrency int, backoff time.Duration) EngineOption {
	return func(e *Engine) {
		e.maxAttempts = maxAttempts
		e.concurrency = concurrency
		e.retryBackoff = backoff
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}
