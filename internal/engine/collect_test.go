package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coastalops/ctas/internal/noaa"
	noaaMocks "github.com/coastalops/ctas/internal/noaa/mocks"
	"github.com/coastalops/ctas/internal/notify"
	"github.com/coastalops/ctas/internal/store"
	storeMocks "github.com/coastalops/ctas/internal/store/mocks"
	"github.com/coastalops/ctas/internal/weather"
	weatherMocks "github.com/coastalops/ctas/internal/weather/mocks"
	domain "github.com/coastalops/ctas/pkg/types"
)

func TestRunCollection_FullStation(t *testing.T) {
	t.Parallel()

	st := testStation()
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListStations(mock.Anything, true).Return([]domain.Station{*st}, nil)

	levels := []noaa.WaterLevel{
		{Time: testNow.Add(-30 * time.Minute), LevelM: 1.4, Quality: "v", Station: st.Code},
		{Time: testNow.Add(-24 * time.Minute), LevelM: 1.5, Quality: "v", Station: st.Code},
	}
	tides := noaaMocks.NewMockClient(t)
	tides.EXPECT().WaterLevels(mock.Anything, st.Code, time.Hour).Return(levels, nil)
	tides.EXPECT().Predictions(mock.Anything, st.Code, time.Hour).Return([]noaa.TidePrediction{
		{Time: testNow.Add(-4 * time.Hour), LevelM: 0.5, Type: "L", Station: st.Code},
		{Time: testNow.Add(2 * time.Hour), LevelM: 1.9, Type: "H", Station: st.Code},
	}, nil)

	var inserted []float64
	ms.EXPECT().InsertTideReading(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r *domain.TideReading) {
			assert.Equal(t, "st1", r.StationID)
			assert.Equal(t, "noaa", r.Source)
			// Bracketed by the prediction extremes, so every sample
			// carries an expected level.
			require.NotNil(t, r.PredictedLevel)
			assert.Greater(t, *r.PredictedLevel, 0.5)
			assert.Less(t, *r.PredictedLevel, 1.9)
			inserted = append(inserted, r.WaterLevel)
		}).
		Return(nil).
		Times(2)

	obsTime := testNow.Add(-2 * time.Minute)
	wx := weatherMocks.NewMockClient(t)
	wx.EXPECT().Current(mock.Anything, st.Latitude, st.Longitude).Return(&weather.Observation{
		Time:         obsTime,
		TemperatureC: 21.5,
		PressureHPa:  1013,
		WindSpeedKmh: 10,
	}, nil)

	ms.EXPECT().InsertWeatherReading(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r *domain.WeatherReading) {
			assert.Equal(t, "st1", r.StationID)
			assert.Equal(t, "openweather", r.Source)
			assert.InDelta(t, 10, r.WindSpeedKmh, 0.001)
		}).
		Return(nil)

	// 10 km/h of wind over the standard fetch gives roughly 1.25 m of
	// significant wave height.
	ms.EXPECT().InsertWaveReading(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r *domain.WaveReading) {
			assert.Equal(t, "st1", r.StationID)
			assert.Equal(t, "derived", r.Source)
			assert.InDelta(t, 1.25, r.HeightM, 0.01)
			assert.Greater(t, r.PeriodS, 3.0)
		}).
		Return(nil)

	// Tide stamps with the newest sample, weather with its own time.
	ms.EXPECT().TouchStationData(mock.Anything, "st1", levels[1].Time).Return(nil).Once()
	ms.EXPECT().TouchStationData(mock.Anything, "st1", obsTime).Return(nil).Once()

	// Calm conditions, nothing triggers.
	ms.EXPECT().LatestTideReading(mock.Anything, "st1").Return(&domain.TideReading{
		StationID: "st1", ObservedAt: levels[1].Time, WaterLevel: 1.5,
	}, nil)
	ms.EXPECT().LatestWeatherReading(mock.Anything, "st1").Return(&domain.WeatherReading{
		StationID: "st1", ObservedAt: obsTime, WindSpeedKmh: 10, PressureHPa: 1013,
	}, nil)
	ms.EXPECT().LatestWaveReading(mock.Anything, "st1").Return(&domain.WaveReading{
		StationID: "st1", ObservedAt: obsTime, HeightM: 1.25,
	}, nil)

	ms.EXPECT().CountStationsReporting(mock.Anything, defaultOfflineWindow).Return(1, 1, nil)
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).Return(nil, nil)

	eng := newTestEngine(ms, tides, wx, nil)
	collected, err := eng.RunCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, collected)
	assert.Equal(t, []float64{1.4, 1.5}, inserted)
}

func TestRunCollection_QuotaExhaustedDegradesGracefully(t *testing.T) {
	t.Parallel()

	st := testStation()
	st.Type = domain.StationTideGauge
	st.MeasuresWeather = false
	st.MeasuresWaves = false

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListStations(mock.Anything, true).Return([]domain.Station{*st}, nil)

	tides := noaaMocks.NewMockClient(t)
	tides.EXPECT().WaterLevels(mock.Anything, st.Code, time.Hour).
		Return(nil, noaa.ErrDailyQuotaReached)

	expectNoReadings(ms, "st1")
	ms.EXPECT().CountStationsReporting(mock.Anything, defaultOfflineWindow).Return(1, 1, nil)
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).Return(nil, nil)

	eng := newTestEngine(ms, tides, nil, nil)
	collected, err := eng.RunCollection(context.Background())
	require.NoError(t, err)
	assert.Zero(t, collected)
}

func TestRunCollection_CanceledContext(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListStations(mock.Anything, true).
		Return([]domain.Station{*testStation()}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := newTestEngine(ms, noaaMocks.NewMockClient(t), nil, nil)
	_, err := eng.RunCollection(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckNetworkHealth_RaisesSystemAlert(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CountStationsReporting(mock.Anything, defaultOfflineWindow).Return(1, 4, nil)
	ms.EXPECT().HasRecentAlert(mock.Anything, domain.AlertSystem, "", systemAlertDedup).
		Return(false, nil)

	ms.EXPECT().CreateAlert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.Alert) {
			a.ID = "sys-1"
			assert.Equal(t, domain.AlertSystem, a.Type)
			assert.Equal(t, domain.SeverityHigh, a.Severity)
			assert.Equal(t, "system", a.Source)
			assert.Empty(t, a.SourceStation)
			require.NotNil(t, a.ExpiresAt)
			assert.Equal(t, testNow.Add(systemAlertExpiry), *a.ExpiresAt)

			var meta map[string]int
			require.NoError(t, json.Unmarshal(a.Metadata, &meta))
			assert.Equal(t, 3, meta["stations_offline"])
		}).
		Return(nil)

	// System alerts bypass geography and reach every active subscription.
	sub := domain.Subscription{
		ID:          "sub-1",
		Email:       "ops@example.com",
		MinSeverity: domain.SeverityLow,
		Channels:    []domain.Channel{domain.ChannelEmail},
		Active:      true,
	}
	ms.EXPECT().ListSubscriptions(mock.Anything, true).Return([]domain.Subscription{sub}, nil)
	ms.EXPECT().EnqueueNotification(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *domain.Notification) {
			n.ID = "ntf-1"
			assert.Equal(t, "sys-1", n.AlertID)
			assert.Equal(t, "ops@example.com", n.Recipient)
		}).
		Return(nil).
		Once()

	eng := newTestEngine(ms, nil, nil, []notify.Notifier{emailNotifier(t)})
	require.NoError(t, eng.checkNetworkHealth(context.Background()))
}

func TestCheckNetworkHealth_HealthyNetwork(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CountStationsReporting(mock.Anything, defaultOfflineWindow).Return(3, 4, nil)

	eng := newTestEngine(ms, nil, nil, nil)
	require.NoError(t, eng.checkNetworkHealth(context.Background()))
}

func TestCheckNetworkHealth_RecentAlertSuppresses(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CountStationsReporting(mock.Anything, defaultOfflineWindow).Return(0, 4, nil)
	ms.EXPECT().HasRecentAlert(mock.Anything, domain.AlertSystem, "", systemAlertDedup).
		Return(true, nil)

	eng := newTestEngine(ms, nil, nil, nil)
	require.NoError(t, eng.checkNetworkHealth(context.Background()))
}

// Readings older than an hour should not drive alerts; collection keeps
// going for the remaining stations when one fails.
func TestRunCollection_StationErrorDoesNotAbort(t *testing.T) {
	t.Parallel()

	a := testStation()
	a.MeasuresWeather = false
	a.MeasuresWaves = false
	b := testStation()
	b.ID = "st2"
	b.Code = "8516945"
	b.Name = "Kings Point, NY"
	b.MeasuresWeather = false
	b.MeasuresWaves = false

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListStations(mock.Anything, true).Return([]domain.Station{*a, *b}, nil)

	tides := noaaMocks.NewMockClient(t)
	tides.EXPECT().WaterLevels(mock.Anything, "8518750", time.Hour).
		Return(nil, assert.AnError)
	tides.EXPECT().WaterLevels(mock.Anything, "8516945", time.Hour).
		Return([]noaa.WaterLevel{{Time: testNow.Add(-10 * time.Minute), LevelM: 1.1, Station: "8516945"}}, nil)
	// Missing predictions cost the residual, not the reading.
	tides.EXPECT().Predictions(mock.Anything, "8516945", time.Hour).
		Return(nil, assert.AnError)

	ms.EXPECT().InsertTideReading(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().TouchStationData(mock.Anything, "st2", testNow.Add(-10*time.Minute)).Return(nil)

	expectNoReadings(ms, "st1")
	ms.EXPECT().LatestTideReading(mock.Anything, "st2").Return(&domain.TideReading{
		StationID: "st2", ObservedAt: testNow.Add(-10 * time.Minute), WaterLevel: 1.1,
	}, nil)
	ms.EXPECT().LatestWeatherReading(mock.Anything, "st2").Return(nil, store.ErrNoReading)
	ms.EXPECT().LatestWaveReading(mock.Anything, "st2").Return(nil, store.ErrNoReading)

	ms.EXPECT().CountStationsReporting(mock.Anything, defaultOfflineWindow).Return(1, 2, nil)
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).Return(nil, nil)

	eng := newTestEngine(ms, tides, nil, nil)
	collected, err := eng.RunCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, collected)
}
