//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/coastalops/ctas/internal/store"
	"github.com/coastalops/ctas/pkg/geo"
	domain "github.com/coastalops/ctas/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ctas_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testStation(code string) *domain.Station {
	return &domain.Station{
		Code:            code,
		Name:            "Test Station " + code,
		Type:            domain.StationMultiSensor,
		Operator:        "NOAA",
		Latitude:        40.7002,
		Longitude:       -74.0142,
		MeasuresTide:    true,
		MeasuresWaves:   true,
		MeasuresWeather: true,
		Active:          true,
	}
}

func testAlert(stationID string) *domain.Alert {
	expires := time.Now().Add(6 * time.Hour)
	return &domain.Alert{
		Type:          domain.AlertTide,
		Severity:      domain.SeverityHigh,
		Title:         "High tide warning",
		Description:   "Water level 3.1 m exceeds the high threshold",
		LocationName:  "The Battery, NY",
		Latitude:      40.7002,
		Longitude:     -74.0142,
		RadiusKm:      10,
		SourceStation: stationID,
		Source:        "monitor",
		Metadata:      json.RawMessage(`{"water_level": 3.1}`),
		ExpiresAt:     &expires,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrationsSeedStations(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st, err := s.GetStationByCode(ctx, "8518750")
	require.NoError(t, err)
	assert.Equal(t, "The Battery, NY", st.Name)
	assert.True(t, st.Active)
}

func TestPostgresStore_StationCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	// Create.
	st := testStation("crud-1")
	err := s.CreateStation(ctx, st)
	require.NoError(t, err)
	assert.NotEmpty(t, st.ID)

	// Get.
	got, err := s.GetStation(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "crud-1", got.Code)
	assert.Equal(t, domain.StationMultiSensor, got.Type)
	assert.True(t, got.Active)
	assert.Nil(t, got.LastDataAt)

	// Update.
	got.Name = "Renamed Station"
	got.MeasuresWaves = false
	err = s.UpdateStation(ctx, got)
	require.NoError(t, err)

	updated, err := s.GetStation(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Station", updated.Name)
	assert.False(t, updated.MeasuresWaves)

	// Touch last_data_at.
	now := time.Now().Truncate(time.Microsecond)
	require.NoError(t, s.TouchStationData(ctx, st.ID, now))
	touched, err := s.GetStation(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, touched.LastDataAt)

	// Disable, then list active only (seed stations remain).
	require.NoError(t, s.SetStationActive(ctx, st.ID, false))
	active, err := s.ListStations(ctx, true)
	require.NoError(t, err)
	for _, a := range active {
		assert.NotEqual(t, st.ID, a.ID, "disabled station should not appear")
	}

	// Delete.
	require.NoError(t, s.DeleteStation(ctx, st.ID))
	_, err = s.GetStation(ctx, st.ID)
	assert.Error(t, err)
}

func TestPostgresStore_CountStationsReporting(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	// The three seed stations are active and have never reported.
	reporting, active, err := s.CountStationsReporting(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, reporting)
	assert.Equal(t, 3, active)

	st, err := s.GetStationByCode(ctx, "8518750")
	require.NoError(t, err)
	require.NoError(t, s.TouchStationData(ctx, st.ID, time.Now()))

	reporting, active, err = s.CountStationsReporting(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, reporting)
	assert.Equal(t, 3, active)
}

func TestPostgresStore_TideReadings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("tide-1")
	require.NoError(t, s.CreateStation(ctx, st))

	base := time.Now().Truncate(time.Microsecond).Add(-time.Hour)
	for i := range 4 {
		pred := 2.0 + float64(i)*0.1
		r := &domain.TideReading{
			StationID:      st.ID,
			ObservedAt:     base.Add(time.Duration(i) * 15 * time.Minute),
			WaterLevel:     2.1 + float64(i)*0.1,
			PredictedLevel: &pred,
			Quality:        "v",
			Source:         "noaa",
		}
		require.NoError(t, s.InsertTideReading(ctx, r))
		assert.NotEmpty(t, r.ID)
	}

	t.Run("upsert replaces same timestamp", func(t *testing.T) {
		r := &domain.TideReading{
			StationID:  st.ID,
			ObservedAt: base,
			WaterLevel: 9.9,
			Source:     "noaa",
		}
		require.NoError(t, s.InsertTideReading(ctx, r))

		readings, err := s.ListTideReadings(ctx, st.ID, base.Add(-time.Minute), 10)
		require.NoError(t, err)
		assert.Len(t, readings, 4, "upsert must not add a row")
	})

	t.Run("latest returns newest", func(t *testing.T) {
		latest, err := s.LatestTideReading(ctx, st.ID)
		require.NoError(t, err)
		assert.InDelta(t, 2.4, latest.WaterLevel, 0.001)
	})

	t.Run("since filter", func(t *testing.T) {
		readings, err := s.ListTideReadings(ctx, st.ID, base.Add(20*time.Minute), 10)
		require.NoError(t, err)
		assert.Len(t, readings, 3)
	})

	t.Run("no readings for unknown station", func(t *testing.T) {
		other := testStation("tide-2")
		require.NoError(t, s.CreateStation(ctx, other))
		_, err := s.LatestTideReading(ctx, other.ID)
		assert.ErrorIs(t, err, store.ErrNoReading)
	})
}

func TestPostgresStore_WeatherAndWaveReadings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("wx-1")
	require.NoError(t, s.CreateStation(ctx, st))

	now := time.Now().Truncate(time.Microsecond)
	w := &domain.WeatherReading{
		StationID:     st.ID,
		ObservedAt:    now,
		TemperatureC:  18.5,
		HumidityPct:   72,
		PressureHPa:   1008.2,
		WindSpeedKmh:  45.3,
		WindDirection: 120,
		Precipitation: 2.5,
		VisibilityKm:  8,
		Condition:     "rain",
		Source:        "openweather",
	}
	require.NoError(t, s.InsertWeatherReading(ctx, w))

	gotW, err := s.LatestWeatherReading(ctx, st.ID)
	require.NoError(t, err)
	assert.InDelta(t, 45.3, gotW.WindSpeedKmh, 0.001)
	assert.Equal(t, "rain", gotW.Condition)

	list, err := s.ListWeatherReadings(ctx, st.ID, now.Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	wv := &domain.WaveReading{
		StationID:    st.ID,
		ObservedAt:   now,
		HeightM:      3.2,
		PeriodS:      6.5,
		DirectionDeg: 90,
		Source:       "buoy",
	}
	require.NoError(t, s.InsertWaveReading(ctx, wv))

	gotWv, err := s.LatestWaveReading(ctx, st.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.2, gotWv.HeightM, 0.001)
}

func TestPostgresStore_AlertLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("alert-1")
	require.NoError(t, s.CreateStation(ctx, st))

	// Create.
	a := testAlert(st.ID)
	err := s.CreateAlert(ctx, a)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.False(t, a.IssuedAt.IsZero())

	// A second insert of the same type for the same station refreshes
	// the active row instead of creating another: same ID, updated
	// fields, bumped issued_at.
	dup := testAlert(st.ID)
	dup.Severity = domain.SeverityCritical
	dup.Description = "Water level 3.6 m exceeds the critical threshold"
	err = s.CreateAlert(ctx, dup)
	require.NoError(t, err)
	assert.Equal(t, a.ID, dup.ID)
	assert.False(t, dup.IssuedAt.Before(a.IssuedAt))

	refreshed, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityCritical, refreshed.Severity)
	assert.Equal(t, dup.Description, refreshed.Description)

	active, err := s.ListActiveAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// HasRecentAlert sees it.
	recent, err := s.HasRecentAlert(ctx, domain.AlertTide, st.ID, 2*time.Hour)
	require.NoError(t, err)
	assert.True(t, recent)

	recent, err = s.HasRecentAlert(ctx, domain.AlertFlood, st.ID, 2*time.Hour)
	require.NoError(t, err)
	assert.False(t, recent)

	// Get.
	got, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertTide, got.Type)
	assert.Equal(t, domain.SeverityCritical, got.Severity)
	assert.Equal(t, st.ID, got.SourceStation)
	assert.True(t, got.Active)
	assert.JSONEq(t, `{"water_level": 3.1}`, string(got.Metadata))

	// Acknowledge.
	require.NoError(t, s.AcknowledgeAlert(ctx, a.ID, "operator@example.com"))
	got, err = s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AcknowledgedAt)
	assert.Equal(t, "operator@example.com", got.AcknowledgedBy)

	// Resolve deactivates.
	require.NoError(t, s.ResolveAlert(ctx, a.ID, "operator@example.com", "water receded"))
	got, err = s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, "water receded", got.ResolutionNotes)

	// With the slot freed, the same type can alert again.
	next := testAlert(st.ID)
	require.NoError(t, s.CreateAlert(ctx, next))
	assert.NotEmpty(t, next.ID)
}

func TestPostgresStore_ExpireAlerts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("expire-1")
	require.NoError(t, s.CreateStation(ctx, st))

	past := time.Now().Add(-time.Hour)
	a := testAlert(st.ID)
	a.ExpiresAt = &past
	require.NoError(t, s.CreateAlert(ctx, a))

	n, err := s.ExpireAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.GetAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.Equal(t, "system", got.ResolvedBy)

	// Nothing left to expire.
	n, err = s.ExpireAlerts(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostgresStore_ListAlerts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("list-1")
	require.NoError(t, s.CreateStation(ctx, st))

	types := []domain.AlertType{domain.AlertTide, domain.AlertWave, domain.AlertStorm}
	for _, typ := range types {
		a := testAlert(st.ID)
		a.Type = typ
		require.NoError(t, s.CreateAlert(ctx, a))
	}

	t.Run("no filters", func(t *testing.T) {
		alerts, total, err := s.ListAlerts(ctx, &store.AlertQuery{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, alerts, 3)
	})

	t.Run("type filter", func(t *testing.T) {
		typ := "wave"
		alerts, total, err := s.ListAlerts(ctx, &store.AlertQuery{Type: &typ})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, alerts, 1)
		assert.Equal(t, domain.AlertWave, alerts[0].Type)
	})

	t.Run("bounding box filter", func(t *testing.T) {
		box := geo.BoxAround(geo.Point{Lat: 40.7002, Lon: -74.0142}, 5)
		alerts, total, err := s.ListAlerts(ctx, &store.AlertQuery{Box: &box})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, alerts, 3)

		far := geo.BoxAround(geo.Point{Lat: 25.76, Lon: -80.19}, 5)
		_, total, err = s.ListAlerts(ctx, &store.AlertQuery{Box: &far})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("pagination", func(t *testing.T) {
		alerts, total, err := s.ListAlerts(ctx, &store.AlertQuery{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, alerts, 1)
	})
}

func TestPostgresStore_GetAlertStats(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("stats-1")
	require.NoError(t, s.CreateStation(ctx, st))

	a := testAlert(st.ID)
	require.NoError(t, s.CreateAlert(ctx, a))

	b := testAlert(st.ID)
	b.Type = domain.AlertStorm
	b.Severity = domain.SeverityCritical
	require.NoError(t, s.CreateAlert(ctx, b))
	require.NoError(t, s.ResolveAlert(ctx, b.ID, "op", "passed"))

	stats, err := s.GetAlertStats(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.BySeverity[domain.SeverityHigh])
	assert.Equal(t, 1, stats.BySeverity[domain.SeverityCritical])
	assert.Equal(t, 1, stats.ByType[domain.AlertTide])
	assert.Equal(t, 1, stats.ByType[domain.AlertStorm])
}

func TestPostgresStore_SubscriptionCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	sub := &domain.Subscription{
		Name:        "Harbor Master",
		Email:       "harbor@example.com",
		Phone:       "+15550100",
		Latitude:    40.71,
		Longitude:   -74.01,
		RadiusKm:    25,
		AlertTypes:  []domain.AlertType{domain.AlertFlood, domain.AlertStorm},
		MinSeverity: domain.SeverityMedium,
		Channels:    []domain.Channel{domain.ChannelEmail, domain.ChannelSMS},
		Active:      true,
	}
	require.NoError(t, s.CreateSubscription(ctx, sub))
	assert.NotEmpty(t, sub.ID)

	got, err := s.GetSubscription(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Master", got.Name)
	assert.Equal(t, []domain.AlertType{domain.AlertFlood, domain.AlertStorm}, got.AlertTypes)
	assert.Equal(t, []domain.Channel{domain.ChannelEmail, domain.ChannelSMS}, got.Channels)
	assert.Equal(t, domain.SeverityMedium, got.MinSeverity)

	got.MinSeverity = domain.SeverityHigh
	got.Channels = []domain.Channel{domain.ChannelEmail}
	require.NoError(t, s.UpdateSubscription(ctx, got))

	updated, err := s.GetSubscription(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityHigh, updated.MinSeverity)
	assert.Equal(t, []domain.Channel{domain.ChannelEmail}, updated.Channels)

	subs, err := s.ListSubscriptions(ctx, false)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	require.NoError(t, s.SetSubscriptionActive(ctx, sub.ID, false))
	subs, err = s.ListSubscriptions(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, subs)

	require.NoError(t, s.DeleteSubscription(ctx, sub.ID))
	_, err = s.GetSubscription(ctx, sub.ID)
	assert.Error(t, err)
}

func TestPostgresStore_ListSubscriptionCandidates(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	near := &domain.Subscription{
		Name: "Near", Latitude: 40.71, Longitude: -74.01, RadiusKm: 10,
		MinSeverity: domain.SeverityLow, Channels: []domain.Channel{domain.ChannelEmail},
		Active: true,
	}
	far := &domain.Subscription{
		Name: "Far", Latitude: 25.76, Longitude: -80.19, RadiusKm: 10,
		MinSeverity: domain.SeverityLow, Channels: []domain.Channel{domain.ChannelEmail},
		Active: true,
	}
	inactive := &domain.Subscription{
		Name: "Inactive", Latitude: 40.71, Longitude: -74.01, RadiusKm: 10,
		MinSeverity: domain.SeverityLow, Channels: []domain.Channel{domain.ChannelEmail},
		Active: false,
	}
	for _, sub := range []*domain.Subscription{near, far, inactive} {
		require.NoError(t, s.CreateSubscription(ctx, sub))
	}

	box := geo.BoxAround(geo.Point{Lat: 40.7002, Lon: -74.0142}, 15)
	candidates, err := s.ListSubscriptionCandidates(ctx, box)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Near", candidates[0].Name)
}

func TestPostgresStore_NotificationLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("notif-1")
	require.NoError(t, s.CreateStation(ctx, st))
	a := testAlert(st.ID)
	require.NoError(t, s.CreateAlert(ctx, a))

	sub := &domain.Subscription{
		Name: "Recipient", Email: "r@example.com",
		Latitude: 40.71, Longitude: -74.01, RadiusKm: 10,
		MinSeverity: domain.SeverityLow,
		Channels:    []domain.Channel{domain.ChannelEmail},
		Active:      true,
	}
	require.NoError(t, s.CreateSubscription(ctx, sub))

	n := &domain.Notification{
		AlertID:        a.ID,
		SubscriptionID: sub.ID,
		Channel:        domain.ChannelEmail,
		Recipient:      "r@example.com",
		MaxAttempts:    3,
	}
	require.NoError(t, s.EnqueueNotification(ctx, n))
	assert.NotEmpty(t, n.ID)

	// Duplicate enqueue is silently dropped.
	dup := &domain.Notification{
		AlertID:        a.ID,
		SubscriptionID: sub.ID,
		Channel:        domain.ChannelEmail,
		Recipient:      "r@example.com",
		MaxAttempts:    3,
	}
	require.NoError(t, s.EnqueueNotification(ctx, dup))
	assert.Empty(t, dup.ID)

	// Due immediately.
	due, err := s.ListDueNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, domain.NotificationPending, due[0].Status)

	// Reschedule into the future removes it from the due set.
	require.NoError(t, s.RescheduleNotification(ctx, n.ID, "smtp timeout", time.Now().Add(time.Hour)))
	due, err = s.ListDueNotifications(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	// Bring it back and mark sent.
	require.NoError(t, s.RescheduleNotification(ctx, n.ID, "smtp timeout", time.Now().Add(-time.Second)))
	due, err = s.ListDueNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, 2, due[0].Attempts)
	assert.Equal(t, "smtp timeout", due[0].LastError)

	require.NoError(t, s.MarkNotificationSent(ctx, n.ID))
	due, err = s.ListDueNotifications(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	summary, err := s.NotificationSummary(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary[domain.NotificationSent])
}

func TestPostgresStore_MarkNotificationFailed(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	st := testStation("notif-2")
	require.NoError(t, s.CreateStation(ctx, st))
	a := testAlert(st.ID)
	require.NoError(t, s.CreateAlert(ctx, a))

	sub := &domain.Subscription{
		Name: "Recipient", Phone: "+15550100",
		Latitude: 40.71, Longitude: -74.01, RadiusKm: 10,
		MinSeverity: domain.SeverityLow,
		Channels:    []domain.Channel{domain.ChannelSMS},
		Active:      true,
	}
	require.NoError(t, s.CreateSubscription(ctx, sub))

	n := &domain.Notification{
		AlertID: a.ID, SubscriptionID: sub.ID,
		Channel: domain.ChannelSMS, Recipient: "+15550100", MaxAttempts: 3,
	}
	require.NoError(t, s.EnqueueNotification(ctx, n))

	require.NoError(t, s.MarkNotificationFailed(ctx, n.ID, "invalid number"))

	due, err := s.ListDueNotifications(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	summary, err := s.NotificationSummary(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary[domain.NotificationFailed])
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "collection")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "success", "", 12))

	runs, err := s.ListJobRuns(ctx, "collection", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "success", runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 12, *runs[0].RowsAffected)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}

func TestPostgresStore_RecoverStaleJobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.InsertJobRun(ctx, "collection")
	require.NoError(t, err)

	// Nothing stale yet.
	n, err := s.RecoverStaleJobRuns(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	// With a zero threshold the running row is already stale.
	time.Sleep(10 * time.Millisecond)
	n, err = s.RecoverStaleJobRuns(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	runs, err := s.ListJobRuns(ctx, "collection", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "crashed", runs[0].Status)
}

func TestPostgresStore_SchedulerLock(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	ok, err := s.AcquireSchedulerLock(ctx, "collection", "holder-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second holder cannot steal an unexpired lock.
	ok, err = s.AcquireSchedulerLock(ctx, "collection", "holder-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// Release, then the other holder succeeds.
	require.NoError(t, s.ReleaseSchedulerLock(ctx, "collection", "holder-a"))
	ok, err = s.AcquireSchedulerLock(ctx, "collection", "holder-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgresStore_GetSystemState(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	state, err := s.GetSystemState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.StationsTotal, "seed stations")
	assert.Equal(t, 3, state.StationsActive)
	assert.Zero(t, state.AlertsActive)

	st, err := s.GetStationByCode(ctx, "8518750")
	require.NoError(t, err)
	a := testAlert(st.ID)
	require.NoError(t, s.CreateAlert(ctx, a))

	state, err = s.GetSystemState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.AlertsActive)
	assert.Equal(t, 1, state.AlertsUnacknowledged)
}
