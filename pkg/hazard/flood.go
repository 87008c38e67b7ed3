package hazard

import (
	"math"

	domain "github.com/coastalops/ctas/pkg/types"
)

// FloodInputs holds the environmental drivers of coastal flooding.
type FloodInputs struct {
	TideLevelM   float64 // water level, m MLLW
	WaveHeightM  float64 // significant wave height, m
	StormSurgeM  float64 // surge component, m
	RainfallMm   float64 // recent precipitation, mm
	WindSpeedKmh float64
}

// Saturation levels above which each driver contributes its full weight.
const (
	floodTideSaturation  = 3.0  // m
	floodWaveSaturation  = 5.0  // m
	floodSurgeSaturation = 2.0  // m
	floodRainSaturation  = 50.0 // mm
)

// Driver weights in the composite flood probability.
const (
	floodTideWeight  = 0.30
	floodWaveWeight  = 0.25
	floodSurgeWeight = 0.30
	floodRainWeight  = 0.15
)

// RiskAssessment is the output of a flood risk evaluation.
type RiskAssessment struct {
	Probability float64            `json:"probability"`
	Level       domain.Severity    `json:"level"`
	Factors     map[string]float64 `json:"factors"`
}

// FloodRisk computes the flood probability for the given conditions.
// Each driver saturates at its reference level and contributes a fixed
// weight; a small noise term models unresolved local effects.
func (f *Forecaster) FloodRisk(in FloodInputs) RiskAssessment {
	factors := map[string]float64{
		"tide":  math.Min(in.TideLevelM/floodTideSaturation, 1) * floodTideWeight,
		"wave":  math.Min(in.WaveHeightM/floodWaveSaturation, 1) * floodWaveWeight,
		"surge": math.Min(in.StormSurgeM/floodSurgeSaturation, 1) * floodSurgeWeight,
		"rain":  math.Min(in.RainfallMm/floodRainSaturation, 1) * floodRainWeight,
	}

	p := factors["tide"] + factors["wave"] + factors["surge"] + factors["rain"]
	p += f.noise() * 0.1
	p = clamp(p, 0, 1)

	return RiskAssessment{
		Probability: p,
		Level:       floodLevel(p),
		Factors:     factors,
	}
}

// floodLevel buckets a probability into a severity. The breakpoints are
// looser than the alerting thresholds so forecasts read conservatively.
func floodLevel(p float64) domain.Severity {
	switch {
	case p >= 0.8:
		return domain.SeverityCritical
	case p >= 0.5:
		return domain.SeverityHigh
	case p >= 0.2:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
