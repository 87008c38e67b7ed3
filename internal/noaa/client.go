// Package noaa provides a NOAA CO-OPS data API client abstracted behind an
// interface for testability.
package noaa

import (
	"context"
	"time"
)

// WaterLevel is a single verified or preliminary water level observation,
// in meters relative to the MLLW datum.
type WaterLevel struct {
	Time    time.Time
	LevelM  float64
	Quality string
	Station string
}

// TidePrediction is a predicted high or low tide event.
type TidePrediction struct {
	Time    time.Time
	LevelM  float64
	Type    string // "H" or "L"
	Station string
}

// Client defines the interface for fetching tide data from NOAA CO-OPS.
type Client interface {
	// WaterLevels returns observations for the station over the trailing
	// window, oldest first.
	WaterLevels(ctx context.Context, station string, window time.Duration) ([]WaterLevel, error)

	// Predictions returns high/low tide predictions for the station from
	// half a tidal day back through the coming window, oldest first. The
	// lookback lets callers interpolate predicted levels for recent
	// observations.
	Predictions(ctx context.Context, station string, window time.Duration) ([]TidePrediction, error)
}
