// Package weather provides an OpenWeather API client abstracted behind an
// interface for testability.
package weather

import (
	"context"
	"time"
)

// Observation is a point-in-time weather observation for a location.
// Wind speed is km/h, precipitation is mm, visibility is km.
type Observation struct {
	Time          time.Time
	TemperatureC  float64
	HumidityPct   float64
	PressureHPa   float64
	WindSpeedKmh  float64
	WindDirection float64
	Precipitation float64
	VisibilityKm  float64
	Condition     string
}

// ForecastPoint is a forecast observation at a future time.
type ForecastPoint struct {
	Observation
}

// Client defines the interface for fetching weather conditions.
type Client interface {
	// Current returns the present conditions at the coordinates.
	Current(ctx context.Context, lat, lon float64) (*Observation, error)

	// Forecast returns 3-hourly forecast points covering up to the given
	// number of days, oldest first.
	Forecast(ctx context.Context, lat, lon float64, days int) ([]ForecastPoint, error)
}
