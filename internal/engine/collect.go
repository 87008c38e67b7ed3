package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coastalops/ctas/internal/metrics"
	"github.com/coastalops/ctas/internal/noaa"
	"github.com/coastalops/ctas/pkg/hazard"
	domain "github.com/coastalops/ctas/pkg/types"
)

// systemAlertDedup and systemAlertExpiry are tighter than the per-station
// defaults: a degraded network should re-alert sooner.
const (
	systemAlertDedup  = time.Hour
	systemAlertExpiry = 4 * time.Hour
)

// RunCollection executes one collection cycle: fetch readings for every
// active station, evaluate alert conditions, check network health, and
// deliver any due notifications.
func (eng *Engine) RunCollection(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.CollectionDuration.Observe(time.Since(start).Seconds())
	}()

	stations, err := eng.store.ListStations(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("listing stations: %w", err)
	}

	var collected int

	for i := range stations {
		if ctx.Err() != nil {
			return collected, ctx.Err()
		}

		st := &stations[i]
		n, collectErr := eng.collectStation(ctx, st)
		collected += n

		if collectErr != nil {
			if errors.Is(collectErr, noaa.ErrDailyQuotaReached) {
				eng.log.Warn("NOAA daily quota reached, tide collection degraded",
					"station", st.Code,
				)
			} else {
				eng.log.Error("station collection failed",
					"station", st.Code,
					"error", collectErr,
				)
			}
		}

		if evalErr := eng.EvaluateStation(ctx, st, false); evalErr != nil {
			eng.log.Error("station evaluation failed",
				"station", st.Code,
				"error", evalErr,
			)
		}

		// Stagger between stations to avoid API bursts.
		if i < len(stations)-1 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				return collected, ctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	if err := eng.checkNetworkHealth(ctx); err != nil {
		eng.log.Error("network health check failed", "error", err)
	}

	// Always flush due notifications, even after a degraded cycle.
	if _, err := eng.RunRetrySweep(ctx); err != nil {
		eng.log.Error("notification sweep failed", "error", err)
	}

	return collected, nil
}

// collectStation fetches whatever the station measures and persists the
// readings. It returns how many readings were stored; partial failures are
// joined into the returned error.
func (eng *Engine) collectStation(ctx context.Context, st *domain.Station) (int, error) {
	var (
		stored int
		errs   []error
	)

	if st.MeasuresTide {
		n, err := eng.collectTide(ctx, st)
		stored += n
		if err != nil {
			metrics.CollectionErrorsTotal.WithLabelValues("tide").Inc()
			errs = append(errs, fmt.Errorf("tide: %w", err))
		}
	}

	var wx *domain.WeatherReading
	if st.MeasuresWeather {
		obs, err := eng.collectWeather(ctx, st)
		if err != nil {
			metrics.CollectionErrorsTotal.WithLabelValues("weather").Inc()
			errs = append(errs, fmt.Errorf("weather: %w", err))
		} else {
			wx = obs
			stored++
		}
	}

	// Wave height is modeled from observed wind; there is no buoy feed.
	if st.MeasuresWaves && wx != nil {
		if err := eng.deriveWave(ctx, st, wx); err != nil {
			metrics.CollectionErrorsTotal.WithLabelValues("wave").Inc()
			errs = append(errs, fmt.Errorf("wave: %w", err))
		} else {
			stored++
		}
	}

	return stored, errors.Join(errs...)
}

func (eng *Engine) collectTide(ctx context.Context, st *domain.Station) (int, error) {
	levels, err := eng.tides.WaterLevels(ctx, st.Code, time.Hour)
	if err != nil {
		return 0, err
	}
	if len(levels) == 0 {
		return 0, nil
	}

	// Predictions enrich each observation with its expected level; the
	// residual is the surge signal. Collection proceeds without them.
	preds, err := eng.tides.Predictions(ctx, st.Code, time.Hour)
	if err != nil {
		eng.log.Warn("fetching tide predictions", "station", st.Code, "error", err)
		preds = nil
	}

	var stored int
	for _, lvl := range levels {
		r := &domain.TideReading{
			StationID:  st.ID,
			ObservedAt: lvl.Time,
			WaterLevel: lvl.LevelM,
			Quality:    lvl.Quality,
			Source:     "noaa",
		}
		if p, ok := noaa.InterpolateLevel(preds, lvl.Time); ok {
			r.PredictedLevel = &p
		}
		if err := eng.store.InsertTideReading(ctx, r); err != nil {
			return stored, fmt.Errorf("inserting tide reading: %w", err)
		}
		stored++
	}
	metrics.CollectionReadingsTotal.WithLabelValues("tide").Add(float64(stored))

	latest := levels[len(levels)-1]
	if err := eng.store.TouchStationData(ctx, st.ID, latest.Time); err != nil {
		return stored, fmt.Errorf("stamping station data: %w", err)
	}
	return stored, nil
}

func (eng *Engine) collectWeather(ctx context.Context, st *domain.Station) (*domain.WeatherReading, error) {
	obs, err := eng.weather.Current(ctx, st.Latitude, st.Longitude)
	if err != nil {
		return nil, err
	}

	r := &domain.WeatherReading{
		StationID:     st.ID,
		ObservedAt:    obs.Time,
		TemperatureC:  obs.TemperatureC,
		HumidityPct:   obs.HumidityPct,
		PressureHPa:   obs.PressureHPa,
		WindSpeedKmh:  obs.WindSpeedKmh,
		WindDirection: obs.WindDirection,
		Precipitation: obs.Precipitation,
		VisibilityKm:  obs.VisibilityKm,
		Condition:     obs.Condition,
		Source:        "openweather",
	}
	if err := eng.store.InsertWeatherReading(ctx, r); err != nil {
		return nil, fmt.Errorf("inserting weather reading: %w", err)
	}
	metrics.CollectionReadingsTotal.WithLabelValues("weather").Inc()

	if err := eng.store.TouchStationData(ctx, st.ID, obs.Time); err != nil {
		return nil, fmt.Errorf("stamping station data: %w", err)
	}
	return r, nil
}

func (eng *Engine) deriveWave(ctx context.Context, st *domain.Station, wx *domain.WeatherReading) error {
	height := eng.forecaster.WaveHeight(wx.WindSpeedKmh)

	r := &domain.WaveReading{
		StationID:    st.ID,
		ObservedAt:   wx.ObservedAt,
		HeightM:      height,
		PeriodS:      hazard.WavePeriod(height),
		DirectionDeg: wx.WindDirection,
		Source:       "derived",
	}
	if err := eng.store.InsertWaveReading(ctx, r); err != nil {
		return fmt.Errorf("inserting wave reading: %w", err)
	}
	metrics.CollectionReadingsTotal.WithLabelValues("wave").Inc()
	return nil
}

// checkNetworkHealth raises a system alert when too few stations report
// within the offline window.
func (eng *Engine) checkNetworkHealth(ctx context.Context) error {
	reporting, active, err := eng.store.CountStationsReporting(ctx, eng.offlineWindow)
	if err != nil {
		return fmt.Errorf("counting reporting stations: %w", err)
	}

	metrics.StationsReporting.Set(float64(reporting))

	if active == 0 || float64(reporting) >= eng.offlineFraction*float64(active) {
		return nil
	}

	recent, err := eng.store.HasRecentAlert(ctx, domain.AlertSystem, "", systemAlertDedup)
	if err != nil {
		return fmt.Errorf("checking recent system alert: %w", err)
	}
	if recent {
		return nil
	}

	offline := active - reporting
	meta, _ := json.Marshal(map[string]int{
		"stations_active":    active,
		"stations_reporting": reporting,
		"stations_offline":   offline,
	})

	expires := eng.nowFunc().Add(systemAlertExpiry)
	alert := &domain.Alert{
		Type:         domain.AlertSystem,
		Severity:     domain.SeverityHigh,
		Title:        "Monitoring network degraded",
		Description:  fmt.Sprintf("%d of %d active stations have not reported in the last %s.", offline, active, eng.offlineWindow),
		LocationName: "Monitoring network",
		Source:       "system",
		Metadata:     meta,
		ExpiresAt:    &expires,
	}
	if err := eng.createAlert(ctx, alert); err != nil {
		return err
	}
	return nil
}
