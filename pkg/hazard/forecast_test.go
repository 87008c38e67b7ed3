package hazard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/coastalops/ctas/pkg/types"
)

// quiet returns a Forecaster with the noise term zeroed for determinism.
func quiet() *Forecaster {
	return NewForecaster(WithNoise(func() float64 { return 0 }))
}

func TestFloodRisk_Calm(t *testing.T) {
	t.Parallel()

	r := quiet().FloodRisk(FloodInputs{
		TideLevelM:  1.0,
		WaveHeightM: 0.5,
	})

	assert.Less(t, r.Probability, 0.2)
	assert.Equal(t, domain.SeverityLow, r.Level)
}

func TestFloodRisk_Saturated(t *testing.T) {
	t.Parallel()

	r := quiet().FloodRisk(FloodInputs{
		TideLevelM:  5.0,
		WaveHeightM: 8.0,
		StormSurgeM: 3.0,
		RainfallMm:  120,
	})

	// All drivers saturated: weights sum to 1.
	assert.InDelta(t, 1.0, r.Probability, 0.001)
	assert.Equal(t, domain.SeverityCritical, r.Level)
	assert.InDelta(t, 0.30, r.Factors["tide"], 0.001)
	assert.InDelta(t, 0.30, r.Factors["surge"], 0.001)
}

func TestFloodRisk_ProbabilityClamped(t *testing.T) {
	t.Parallel()

	f := NewForecaster(WithNoise(func() float64 { return 1 }))
	r := f.FloodRisk(FloodInputs{TideLevelM: 5, WaveHeightM: 8, StormSurgeM: 3, RainfallMm: 120})
	assert.LessOrEqual(t, r.Probability, 1.0)

	f = NewForecaster(WithNoise(func() float64 { return -1 }))
	r = f.FloodRisk(FloodInputs{})
	assert.GreaterOrEqual(t, r.Probability, 0.0)
}

func TestTideSeries_Bounds(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	points := quiet().TideSeries("8518750", start, 48)
	require.Len(t, points, 48)

	for _, p := range points {
		// MSL plus all constituent amplitudes and the station offset.
		assert.Greater(t, p.LevelM, meanSeaLevel-2.1-0.25)
		assert.Less(t, p.LevelM, meanSeaLevel+2.1+0.25)
		assert.Contains(t, []string{"high", "low", "rising", "falling"}, p.State)
	}

	// The dominant constituent is semidiurnal, so 48 hours must span
	// multiple highs and lows.
	var highs, lows int
	for _, p := range points {
		switch p.State {
		case "high":
			highs++
		case "low":
			lows++
		}
	}
	assert.GreaterOrEqual(t, highs, 2)
	assert.GreaterOrEqual(t, lows, 2)
}

func TestTideLevel_StationOffsetStable(t *testing.T) {
	t.Parallel()

	f := quiet()
	at := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	a1 := f.TideLevel("8518750", at)
	a2 := f.TideLevel("8518750", at)
	b := f.TideLevel("8510560", at)

	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b, "distinct stations should carry distinct offsets")
}

func TestStormSurge(t *testing.T) {
	t.Parallel()

	f := quiet()

	tests := []struct {
		name     string
		windKmh  float64
		pressure float64
		distance float64
		hour     float64
		check    func(t *testing.T, surge float64)
	}{
		{
			name: "calm conditions produce negligible surge",
			windKmh: 10, pressure: 1013, distance: 0, hour: 12,
			check: func(t *testing.T, s float64) { assert.Less(t, s, 0.1) },
		},
		{
			name: "hurricane force at peak passage",
			windKmh: 150, pressure: 960, distance: 0, hour: 12,
			check: func(t *testing.T, s float64) { assert.Greater(t, s, 1.0) },
		},
		{
			name: "distance attenuates surge",
			windKmh: 150, pressure: 960, distance: 400, hour: 12,
			check: func(t *testing.T, s float64) {
				peak := f.StormSurge(150, 960, 0, 12)
				assert.Less(t, s, peak)
			},
		},
		{
			name: "pressure above standard adds nothing",
			windKmh: 0, pressure: 1030, distance: 0, hour: 12,
			check: func(t *testing.T, s float64) { assert.Equal(t, 0.0, s) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, f.StormSurge(tt.windKmh, tt.pressure, tt.distance, tt.hour))
		})
	}
}

func TestSurgeSeries_TotalIncludesTide(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	points := quiet().SurgeSeries("8518750", 120, 975, 50, start, 24)
	require.Len(t, points, 24)

	f := quiet()
	for _, p := range points {
		assert.InDelta(t, p.SurgeM+f.TideLevel("8518750", p.Time), p.TotalWaterM, 0.001)
	}
}

func TestWaveHeight_GrowsWithWind(t *testing.T) {
	t.Parallel()

	f := quiet()
	calm := f.WaveHeight(15)
	gale := f.WaveHeight(80)

	assert.Less(t, calm, gale)
	assert.Greater(t, gale, 1.0)
}

func TestWaveSeries(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	points := quiet().WaveSeries(60, 90, start, 12)
	require.Len(t, points, 12)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.HeightM, 0.1)
		assert.GreaterOrEqual(t, p.PeriodS, 2.0)
		assert.Equal(t, "E", p.Direction)
	}
}

func TestStormIntensity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, StormIntensity(0))
	assert.InDelta(t, 0.65, StormIntensity(65), 0.001)
	assert.Equal(t, 1.0, StormIntensity(140), "intensity caps at 1")
}
