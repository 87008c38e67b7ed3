package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coastalops/ctas/internal/metrics"
	"github.com/coastalops/ctas/internal/store"
	"github.com/coastalops/ctas/pkg/hazard"
	domain "github.com/coastalops/ctas/pkg/types"
)

// Trigger conditions. Severity is classified separately once a trigger
// fires.
const (
	floodTriggerProbability = 0.3
	stormTriggerWindKmh     = 60.0
	stormTriggerPressureHPa = 990.0
)

// Affected radius per alert type, km.
var alertRadiusKm = map[domain.AlertType]float64{
	domain.AlertFlood: 15,
	domain.AlertTide:  10,
	domain.AlertWave:  8,
	domain.AlertStorm: 25,
}

// Time-to-live per alert type.
var alertTTL = map[domain.AlertType]time.Duration{
	domain.AlertFlood: 12 * time.Hour,
	domain.AlertTide:  6 * time.Hour,
	domain.AlertWave:  8 * time.Hour,
	domain.AlertStorm: 24 * time.Hour,
}

// EvaluateStation checks the station's latest readings against every alert
// condition and raises alerts for those that trigger. With bypassDedup the
// recent-alert window is ignored (manual checks re-raise on demand).
func (eng *Engine) EvaluateStation(ctx context.Context, st *domain.Station, bypassDedup bool) error {
	now := eng.nowFunc()

	var tide *domain.TideReading
	if r, err := eng.store.LatestTideReading(ctx, st.ID); err != nil {
		eng.logReadingError(st, "tide", err)
	} else if now.Sub(r.ObservedAt) <= readingFreshness {
		tide = r
	}

	var wx *domain.WeatherReading
	if r, err := eng.store.LatestWeatherReading(ctx, st.ID); err != nil {
		eng.logReadingError(st, "weather", err)
	} else if now.Sub(r.ObservedAt) <= readingFreshness {
		wx = r
	}

	var wave *domain.WaveReading
	if r, err := eng.store.LatestWaveReading(ctx, st.ID); err != nil {
		eng.logReadingError(st, "wave", err)
	} else if now.Sub(r.ObservedAt) <= readingFreshness {
		wave = r
	}

	if tide == nil && wx == nil && wave == nil {
		return nil
	}

	for _, alert := range eng.buildCandidates(st, tide, wx, wave) {
		if !bypassDedup {
			recent, err := eng.store.HasRecentAlert(ctx, alert.Type, st.ID, eng.dedupWindow)
			if err != nil {
				return fmt.Errorf("checking recent %s alert: %w", alert.Type, err)
			}
			if recent {
				metrics.AlertsDedupedTotal.Inc()
				continue
			}
		}
		if err := eng.createAlert(ctx, alert); err != nil {
			return err
		}
	}
	return nil
}

// logReadingError surfaces store failures during evaluation. A station
// with no stored sample yet is normal and stays quiet.
func (eng *Engine) logReadingError(st *domain.Station, kind string, err error) {
	if errors.Is(err, store.ErrNoReading) {
		return
	}
	eng.log.Error("loading latest reading",
		"station", st.Code,
		"kind", kind,
		"error", err,
	)
}

// buildCandidates evaluates each trigger against the available readings and
// returns the alerts that should fire.
func (eng *Engine) buildCandidates(
	st *domain.Station,
	tide *domain.TideReading,
	wx *domain.WeatherReading,
	wave *domain.WaveReading,
) []*domain.Alert {
	var out []*domain.Alert

	if tide != nil {
		if levels, ok := eng.thresholds[domain.AlertTide]; ok && tide.WaterLevel > levels.Medium {
			meta, _ := json.Marshal(map[string]any{
				"water_level_m": tide.WaterLevel,
				"threshold_m":   levels.Medium,
			})
			out = append(out, eng.newAlert(st, domain.AlertTide,
				eng.thresholds.Classify(domain.AlertTide, tide.WaterLevel),
				"High tide warning",
				fmt.Sprintf("Water level %.2f m exceeds the %.1f m threshold at %s.", tide.WaterLevel, levels.Medium, st.Name),
				meta,
			))
		}
	}

	if wave != nil {
		if levels, ok := eng.thresholds[domain.AlertWave]; ok && wave.HeightM > levels.Medium {
			meta, _ := json.Marshal(map[string]any{
				"wave_height_m": wave.HeightM,
				"period_s":      wave.PeriodS,
				"threshold_m":   levels.Medium,
			})
			out = append(out, eng.newAlert(st, domain.AlertWave,
				eng.thresholds.Classify(domain.AlertWave, wave.HeightM),
				"High wave warning",
				fmt.Sprintf("Significant wave height %.1f m exceeds the %.1f m threshold near %s.", wave.HeightM, levels.Medium, st.Name),
				meta,
			))
		}
	}

	if wx != nil && (wx.WindSpeedKmh > stormTriggerWindKmh || wx.PressureHPa < stormTriggerPressureHPa) {
		intensity := hazard.StormIntensity(wx.WindSpeedKmh)
		meta, _ := json.Marshal(map[string]any{
			"wind_speed_kmh": wx.WindSpeedKmh,
			"pressure_hpa":   wx.PressureHPa,
			"intensity":      intensity,
		})
		out = append(out, eng.newAlert(st, domain.AlertStorm,
			eng.thresholds.Classify(domain.AlertStorm, intensity),
			"Storm conditions",
			fmt.Sprintf("Wind %.0f km/h, pressure %.0f hPa at %s.", wx.WindSpeedKmh, wx.PressureHPa, st.Name),
			meta,
		))
	}

	if risk, ok := eng.assessFlood(tide, wx, wave); ok && risk.Probability > floodTriggerProbability {
		metrics.FloodRiskProbability.WithLabelValues(st.Code).Set(risk.Probability)
		meta, _ := json.Marshal(risk)
		out = append(out, eng.newAlert(st, domain.AlertFlood,
			eng.thresholds.Classify(domain.AlertFlood, risk.Probability),
			"Coastal flooding expected",
			fmt.Sprintf("Flood probability %.0f%% at %s.", risk.Probability*100, st.Name),
			meta,
		))
	} else if ok {
		metrics.FloodRiskProbability.WithLabelValues(st.Code).Set(risk.Probability)
	}

	return out
}

// assessFlood combines whatever readings exist into a flood risk. Weather
// is required; tide and wave default to zero contribution when absent.
func (eng *Engine) assessFlood(
	tide *domain.TideReading,
	wx *domain.WeatherReading,
	wave *domain.WaveReading,
) (hazard.RiskAssessment, bool) {
	if wx == nil {
		return hazard.RiskAssessment{}, false
	}

	in := hazard.FloodInputs{
		RainfallMm:   wx.Precipitation,
		WindSpeedKmh: wx.WindSpeedKmh,
	}
	if tide != nil {
		in.TideLevelM = tide.WaterLevel
	}
	if wave != nil {
		in.WaveHeightM = wave.HeightM
	}
	in.StormSurgeM = eng.forecaster.StormSurge(
		wx.WindSpeedKmh,
		wx.PressureHPa,
		0,
		float64(eng.nowFunc().UTC().Hour()),
	)

	// An observed residual above the modeled surge is the better estimate:
	// the water is already higher than the tide prediction accounts for.
	if tide != nil {
		if resid, ok := tide.Residual(); ok && resid > in.StormSurgeM {
			in.StormSurgeM = resid
		}
	}

	return eng.forecaster.FloodRisk(in), true
}

func (eng *Engine) newAlert(
	st *domain.Station,
	typ domain.AlertType,
	sev domain.Severity,
	title, description string,
	meta json.RawMessage,
) *domain.Alert {
	expires := eng.nowFunc().Add(alertTTL[typ])
	return &domain.Alert{
		Type:          typ,
		Severity:      sev,
		Title:         title,
		Description:   description,
		LocationName:  st.Name,
		Latitude:      st.Latitude,
		Longitude:     st.Longitude,
		RadiusKm:      alertRadiusKm[typ],
		SourceStation: st.ID,
		Source:        "monitor",
		Metadata:      meta,
		ExpiresAt:     &expires,
	}
}

// createAlert persists the alert and enqueues its notifications. When an
// active alert for the same (type, station) already exists, the store
// refreshes that row and hands back its ID, so a trigger past the dedup
// window (or a bypassed check) re-notifies instead of silently vanishing.
func (eng *Engine) createAlert(ctx context.Context, alert *domain.Alert) error {
	if err := eng.store.CreateAlert(ctx, alert); err != nil {
		return fmt.Errorf("creating %s alert: %w", alert.Type, err)
	}

	metrics.AlertsFiredTotal.WithLabelValues(string(alert.Type), string(alert.Severity)).Inc()
	eng.log.Info("alert raised",
		"type", alert.Type,
		"severity", alert.Severity,
		"location", alert.LocationName,
		"alert_id", alert.ID,
	)

	if err := eng.dispatchAlert(ctx, alert); err != nil {
		return fmt.Errorf("dispatching alert %s: %w", alert.ID, err)
	}
	return nil
}
