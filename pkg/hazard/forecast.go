package hazard

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/coastalops/ctas/pkg/geo"
)

// Tidal constituent amplitudes (m) and periods (h) for a generic
// mid-latitude Atlantic coast station.
const (
	meanSeaLevel = 1.5

	m2Amplitude = 1.2
	m2PeriodH   = 12.42
	s2Amplitude = 0.3
	s2PeriodH   = 12.0
	o1Amplitude = 0.4
	o1PeriodH   = 25.82
	k1Amplitude = 0.2
	k1PeriodH   = 23.93
)

const (
	standardPressureHPa = 1013.25
	waveFetchKm         = 100.0
	gravity             = 9.81
)

// Forecaster produces closed-form hazard forecasts. The zero value is
// not usable; construct with NewForecaster.
type Forecaster struct {
	noise func() float64
}

// ForecastOption configures a Forecaster.
type ForecastOption func(*Forecaster)

// WithNoise overrides the stochastic term. The function must return
// values in [-1, 1]; tests pass a constant for determinism.
func WithNoise(fn func() float64) ForecastOption {
	return func(f *Forecaster) {
		f.noise = fn
	}
}

// NewForecaster returns a Forecaster with seeded default noise.
func NewForecaster(opts ...ForecastOption) *Forecaster {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	f := &Forecaster{
		noise: func() float64 { return rng.Float64()*2 - 1 },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TidePoint is one sample of a predicted tide curve.
type TidePoint struct {
	Time   time.Time `json:"time"`
	LevelM float64   `json:"level_m"`
	State  string    `json:"state"`
}

// TideLevel returns the harmonic tide height at t for the station
// identified by code. The station code seeds a fixed datum offset so
// nearby stations produce distinct but stable curves.
func (f *Forecaster) TideLevel(stationCode string, t time.Time) float64 {
	h := hoursSinceEpoch(t)
	level := meanSeaLevel +
		m2Amplitude*math.Sin(2*math.Pi*h/m2PeriodH) +
		s2Amplitude*math.Sin(2*math.Pi*h/s2PeriodH) +
		o1Amplitude*math.Sin(2*math.Pi*h/o1PeriodH) +
		k1Amplitude*math.Sin(2*math.Pi*h/k1PeriodH)
	return level + stationOffset(stationCode)
}

// TideSeries returns an hourly tide forecast starting at start.
func (f *Forecaster) TideSeries(stationCode string, start time.Time, hours int) []TidePoint {
	points := make([]TidePoint, 0, hours)
	prev := f.TideLevel(stationCode, start.Add(-time.Hour))
	for i := 0; i < hours; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		level := f.TideLevel(stationCode, at)
		next := f.TideLevel(stationCode, at.Add(time.Hour))
		points = append(points, TidePoint{
			Time:   at,
			LevelM: level,
			State:  TideState(prev, level, next),
		})
		prev = level
	}
	return points
}

// TideState classifies a sample against its neighbors.
func TideState(prev, cur, next float64) string {
	switch {
	case cur >= prev && cur >= next:
		return "high"
	case cur <= prev && cur <= next:
		return "low"
	case next > cur:
		return "rising"
	default:
		return "falling"
	}
}

// SurgePoint is one sample of a storm surge forecast.
type SurgePoint struct {
	Time        time.Time `json:"time"`
	SurgeM      float64   `json:"surge_m"`
	TotalWaterM float64   `json:"total_water_m"`
}

// StormSurge estimates the surge height for the given wind speed (km/h),
// barometric pressure (hPa) and storm distance (km). Wind setup grows
// quadratically; the inverse barometer effect adds roughly 1 cm per hPa
// of pressure deficit.
func (f *Forecaster) StormSurge(windKmh, pressureHPa, distanceKm float64, hourOfPassage float64) float64 {
	windSetup := math.Pow(windKmh/100, 2) * 0.5
	pressureSetup := (standardPressureHPa - pressureHPa) * 0.01
	if pressureSetup < 0 {
		pressureSetup = 0
	}

	distanceFactor := 1.0
	if distanceKm > 0 {
		distanceFactor = math.Max(1-distanceKm/500, 0.1)
	}

	passage := math.Sin(math.Pi * math.Mod(hourOfPassage, 24) / 24)
	return (windSetup + pressureSetup) * distanceFactor * passage
}

// SurgeSeries returns an hourly surge forecast over the storm passage,
// with total water level combining surge and the harmonic tide.
func (f *Forecaster) SurgeSeries(stationCode string, windKmh, pressureHPa, distanceKm float64, start time.Time, hours int) []SurgePoint {
	points := make([]SurgePoint, 0, hours)
	for i := 0; i < hours; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		surge := f.StormSurge(windKmh, pressureHPa, distanceKm, float64(i))
		points = append(points, SurgePoint{
			Time:        at,
			SurgeM:      surge,
			TotalWaterM: surge + f.TideLevel(stationCode, at),
		})
	}
	return points
}

// WavePoint is one sample of a wave forecast.
type WavePoint struct {
	Time      time.Time `json:"time"`
	HeightM   float64   `json:"height_m"`
	PeriodS   float64   `json:"period_s"`
	Direction string    `json:"direction"`
}

// WaveHeight estimates fetch-limited significant wave height for a
// sustained wind speed in km/h.
func (f *Forecaster) WaveHeight(windKmh float64) float64 {
	windMs := windKmh / 3.6
	return 0.0016 * math.Pow(windMs, 2) * math.Sqrt(waveFetchKm*1000/gravity)
}

// WavePeriod estimates the dominant period in seconds for a significant
// wave height, floored at 2 s.
func WavePeriod(heightM float64) float64 {
	period := 3.5 * math.Sqrt(heightM)
	if period < 2 {
		period = 2
	}
	return period
}

// WaveSeries returns an hourly wave forecast. Height carries a diurnal
// modulation plus noise; period follows height.
func (f *Forecaster) WaveSeries(windKmh, directionDeg float64, start time.Time, hours int) []WavePoint {
	base := f.WaveHeight(windKmh)
	points := make([]WavePoint, 0, hours)
	for i := 0; i < hours; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		diurnal := 1 + 0.15*math.Sin(2*math.Pi*float64(at.Hour())/24)
		height := base*diurnal + f.noise()*0.2
		if height < 0.1 {
			height = 0.1
		}
		period := WavePeriod(height)
		points = append(points, WavePoint{
			Time:      at,
			HeightM:   height,
			PeriodS:   period,
			Direction: geo.Compass(directionDeg),
		})
	}
	return points
}

// StormIntensity maps wind speed onto the dimensionless storm scale
// used by the severity thresholds.
func StormIntensity(windKmh float64) float64 {
	return clamp(windKmh/100, 0, 1)
}

func hoursSinceEpoch(t time.Time) float64 {
	return float64(t.Unix()) / 3600.0
}

// stationOffset derives a stable datum offset in [-0.25, 0.25] from the
// station code.
func stationOffset(code string) float64 {
	h := fnv.New32a()
	h.Write([]byte(code))
	return (float64(h.Sum32()%100)/100 - 0.5) * 0.5
}
