package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coastalops/ctas/pkg/geo"
	domain "github.com/coastalops/ctas/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateStation inserts a new monitoring station.
func (s *PostgresStore) CreateStation(ctx context.Context, st *domain.Station) error {
	args := pgx.NamedArgs{
		"code":             st.Code,
		"name":             st.Name,
		"type":             string(st.Type),
		"operator":         st.Operator,
		"latitude":         st.Latitude,
		"longitude":        st.Longitude,
		"measures_tide":    st.MeasuresTide,
		"measures_waves":   st.MeasuresWaves,
		"measures_weather": st.MeasuresWeather,
		"active":           st.Active,
	}

	return s.pool.QueryRow(ctx, queryCreateStation, args).Scan(
		&st.ID, &st.CreatedAt, &st.UpdatedAt,
	)
}

// GetStation retrieves a station by its internal UUID.
func (s *PostgresStore) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	st := &domain.Station{}
	if err := scanStation(s.pool.QueryRow(ctx, queryGetStation, id), st); err != nil {
		return nil, err
	}
	return st, nil
}

// GetStationByCode retrieves a station by its external code.
func (s *PostgresStore) GetStationByCode(ctx context.Context, code string) (*domain.Station, error) {
	st := &domain.Station{}
	if err := scanStation(s.pool.QueryRow(ctx, queryGetStationByCode, code), st); err != nil {
		return nil, err
	}
	return st, nil
}

// ListStations returns all stations, optionally filtered to active only.
func (s *PostgresStore) ListStations(ctx context.Context, activeOnly bool) ([]domain.Station, error) {
	query := queryListStationsAll
	if activeOnly {
		query = queryListStationsActive
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stations: %w", err)
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		var st domain.Station
		if err := scanStation(rows, &st); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}
		stations = append(stations, st)
	}

	return stations, rows.Err()
}

// UpdateStation updates an existing station.
func (s *PostgresStore) UpdateStation(ctx context.Context, st *domain.Station) error {
	args := pgx.NamedArgs{
		"id":               st.ID,
		"code":             st.Code,
		"name":             st.Name,
		"type":             string(st.Type),
		"operator":         st.Operator,
		"latitude":         st.Latitude,
		"longitude":        st.Longitude,
		"measures_tide":    st.MeasuresTide,
		"measures_waves":   st.MeasuresWaves,
		"measures_weather": st.MeasuresWeather,
		"active":           st.Active,
	}

	if _, err := s.pool.Exec(ctx, queryUpdateStation, args); err != nil {
		return fmt.Errorf("updating station: %w", err)
	}
	return nil
}

// DeleteStation removes a station and its readings.
func (s *PostgresStore) DeleteStation(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteStation, id); err != nil {
		return fmt.Errorf("deleting station: %w", err)
	}
	return nil
}

// SetStationActive enables or disables a station.
func (s *PostgresStore) SetStationActive(ctx context.Context, id string, active bool) error {
	if _, err := s.pool.Exec(ctx, querySetStationActive, id, active); err != nil {
		return fmt.Errorf("setting station active: %w", err)
	}
	return nil
}

// TouchStationData stamps the time the station last delivered data.
func (s *PostgresStore) TouchStationData(ctx context.Context, id string, t time.Time) error {
	if _, err := s.pool.Exec(ctx, queryTouchStationData, id, t); err != nil {
		return fmt.Errorf("updating station last_data_at: %w", err)
	}
	return nil
}

// CountStationsReporting returns how many active stations delivered data
// within the window, alongside the total active count.
func (s *PostgresStore) CountStationsReporting(
	ctx context.Context,
	window time.Duration,
) (int, int, error) {
	cutoff := time.Now().Add(-window)
	var reporting, active int
	if err := s.pool.QueryRow(ctx, queryCountStationsReporting, cutoff).Scan(&reporting, &active); err != nil {
		return 0, 0, fmt.Errorf("counting reporting stations: %w", err)
	}
	return reporting, active, nil
}

// InsertTideReading upserts a water level sample keyed by (station, time).
func (s *PostgresStore) InsertTideReading(ctx context.Context, r *domain.TideReading) error {
	err := s.pool.QueryRow(ctx, queryInsertTideReading,
		r.StationID, r.ObservedAt, r.WaterLevel, r.PredictedLevel, r.Quality, r.Source,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("inserting tide reading: %w", err)
	}
	return nil
}

// InsertWeatherReading upserts an atmospheric sample keyed by (station, time).
func (s *PostgresStore) InsertWeatherReading(ctx context.Context, r *domain.WeatherReading) error {
	err := s.pool.QueryRow(ctx, queryInsertWeatherReading,
		r.StationID, r.ObservedAt, r.TemperatureC, r.HumidityPct, r.PressureHPa,
		r.WindSpeedKmh, r.WindDirection, r.Precipitation, r.VisibilityKm,
		r.Condition, r.Source,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("inserting weather reading: %w", err)
	}
	return nil
}

// InsertWaveReading upserts a wave sample keyed by (station, time).
func (s *PostgresStore) InsertWaveReading(ctx context.Context, r *domain.WaveReading) error {
	err := s.pool.QueryRow(ctx, queryInsertWaveReading,
		r.StationID, r.ObservedAt, r.HeightM, r.PeriodS, r.DirectionDeg, r.Source,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("inserting wave reading: %w", err)
	}
	return nil
}

// LatestTideReading returns the most recent tide sample for a station.
func (s *PostgresStore) LatestTideReading(ctx context.Context, stationID string) (*domain.TideReading, error) {
	r := &domain.TideReading{}
	err := s.pool.QueryRow(ctx, queryLatestTideReading, stationID).Scan(
		&r.ID, &r.StationID, &r.ObservedAt, &r.WaterLevel, &r.PredictedLevel, &r.Quality, &r.Source,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoReading
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// LatestWeatherReading returns the most recent weather sample for a station.
func (s *PostgresStore) LatestWeatherReading(ctx context.Context, stationID string) (*domain.WeatherReading, error) {
	r := &domain.WeatherReading{}
	err := scanWeatherReading(s.pool.QueryRow(ctx, queryLatestWeatherReading, stationID), r)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoReading
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// LatestWaveReading returns the most recent wave sample for a station.
func (s *PostgresStore) LatestWaveReading(ctx context.Context, stationID string) (*domain.WaveReading, error) {
	r := &domain.WaveReading{}
	err := s.pool.QueryRow(ctx, queryLatestWaveReading, stationID).Scan(
		&r.ID, &r.StationID, &r.ObservedAt, &r.HeightM, &r.PeriodS, &r.DirectionDeg, &r.Source,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoReading
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListTideReadings returns tide samples for a station since the given time,
// newest first.
func (s *PostgresStore) ListTideReadings(
	ctx context.Context,
	stationID string,
	since time.Time,
	limit int,
) ([]domain.TideReading, error) {
	rows, err := s.pool.Query(ctx, queryListTideReadings, stationID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("querying tide readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.TideReading
	for rows.Next() {
		var r domain.TideReading
		if err := rows.Scan(
			&r.ID, &r.StationID, &r.ObservedAt, &r.WaterLevel, &r.PredictedLevel, &r.Quality, &r.Source,
		); err != nil {
			return nil, fmt.Errorf("scanning tide reading: %w", err)
		}
		readings = append(readings, r)
	}

	return readings, rows.Err()
}

// ListWeatherReadings returns weather samples for a station since the given
// time, newest first.
func (s *PostgresStore) ListWeatherReadings(
	ctx context.Context,
	stationID string,
	since time.Time,
	limit int,
) ([]domain.WeatherReading, error) {
	rows, err := s.pool.Query(ctx, queryListWeatherReadings, stationID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("querying weather readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.WeatherReading
	for rows.Next() {
		var r domain.WeatherReading
		if err := scanWeatherReading(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning weather reading: %w", err)
		}
		readings = append(readings, r)
	}

	return readings, rows.Err()
}

// CreateAlert inserts a new alert. When an active alert of the same type
// already exists for the station, that row is refreshed instead: severity,
// description, metadata, and expiry take the new values and issued_at is
// bumped, restarting the dedup window. Either way the alert's ID and
// issued_at are filled in from the surviving row.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.Alert) error {
	var station any
	if a.SourceStation != "" {
		station = a.SourceStation
	}

	args := pgx.NamedArgs{
		"type":           string(a.Type),
		"severity":       string(a.Severity),
		"title":          a.Title,
		"description":    a.Description,
		"location_name":  a.LocationName,
		"latitude":       a.Latitude,
		"longitude":      a.Longitude,
		"radius_km":      a.RadiusKm,
		"source_station": station,
		"source":         a.Source,
		"metadata":       a.Metadata,
		"expires_at":     a.ExpiresAt,
	}

	return s.pool.QueryRow(ctx, queryCreateAlert, args).Scan(&a.ID, &a.IssuedAt)
}

// GetAlert retrieves an alert by its ID.
func (s *PostgresStore) GetAlert(ctx context.Context, id string) (*domain.Alert, error) {
	a := &domain.Alert{}
	if err := scanAlert(s.pool.QueryRow(ctx, queryGetAlert, id), a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAlerts queries alerts with optional filters, returning results and
// total count.
func (s *PostgresStore) ListAlerts(
	ctx context.Context,
	opts *AlertQuery,
) ([]domain.Alert, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting alerts: %w", err)
	}

	// Get data rows.
	alerts, err := s.queryAlerts(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

// ListActiveAlerts returns all currently active alerts, newest first.
func (s *PostgresStore) ListActiveAlerts(ctx context.Context) ([]domain.Alert, error) {
	return s.queryAlerts(ctx, queryListActiveAlerts)
}

// HasRecentAlert returns true if an active alert of the given type for the
// station was issued within the window. An empty stationID matches
// station-less (system) alerts.
func (s *PostgresStore) HasRecentAlert(
	ctx context.Context,
	typ domain.AlertType,
	stationID string,
	window time.Duration,
) (bool, error) {
	cutoff := time.Now().Add(-window)

	var station *string
	if stationID != "" {
		station = &stationID
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, queryHasRecentAlert, string(typ), station, cutoff).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking recent alert: %w", err)
	}
	return exists, nil
}

// AcknowledgeAlert records who acknowledged the alert. Re-acknowledging is
// a no-op.
func (s *PostgresStore) AcknowledgeAlert(ctx context.Context, id string, by string) error {
	if _, err := s.pool.Exec(ctx, queryAcknowledgeAlert, id, by); err != nil {
		return fmt.Errorf("acknowledging alert: %w", err)
	}
	return nil
}

// ResolveAlert deactivates the alert and records the resolution.
func (s *PostgresStore) ResolveAlert(ctx context.Context, id string, by string, notes string) error {
	if _, err := s.pool.Exec(ctx, queryResolveAlert, id, by, notes); err != nil {
		return fmt.Errorf("resolving alert: %w", err)
	}
	return nil
}

// ExpireAlerts deactivates alerts past their expiry time, returning the
// number affected.
func (s *PostgresStore) ExpireAlerts(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, queryExpireAlerts)
	if err != nil {
		return 0, fmt.Errorf("expiring alerts: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// GetAlertStats aggregates alert counts issued since the given time.
func (s *PostgresStore) GetAlertStats(ctx context.Context, since time.Time) (*domain.AlertStats, error) {
	rows, err := s.pool.Query(ctx, queryAlertStats, since)
	if err != nil {
		return nil, fmt.Errorf("querying alert stats: %w", err)
	}
	defer rows.Close()

	stats := &domain.AlertStats{
		BySeverity: make(map[domain.Severity]int),
		ByType:     make(map[domain.AlertType]int),
	}
	for rows.Next() {
		var severity, typ string
		var active bool
		var count int
		if err := rows.Scan(&severity, &typ, &active, &count); err != nil {
			return nil, fmt.Errorf("scanning alert stats: %w", err)
		}
		stats.Total += count
		if active {
			stats.Active += count
		}
		stats.BySeverity[domain.Severity(severity)] += count
		stats.ByType[domain.AlertType(typ)] += count
	}

	return stats, rows.Err()
}

// CreateSubscription inserts a new subscription.
func (s *PostgresStore) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	args := pgx.NamedArgs{
		"name":         sub.Name,
		"email":        sub.Email,
		"phone":        sub.Phone,
		"device_token": sub.DeviceToken,
		"latitude":     sub.Latitude,
		"longitude":    sub.Longitude,
		"radius_km":    sub.RadiusKm,
		"alert_types":  alertTypeStrings(sub.AlertTypes),
		"min_severity": string(sub.MinSeverity),
		"channels":     channelStrings(sub.Channels),
		"active":       sub.Active,
	}

	return s.pool.QueryRow(ctx, queryCreateSubscription, args).Scan(
		&sub.ID, &sub.CreatedAt, &sub.UpdatedAt,
	)
}

// GetSubscription retrieves a subscription by its ID.
func (s *PostgresStore) GetSubscription(ctx context.Context, id string) (*domain.Subscription, error) {
	sub := &domain.Subscription{}
	if err := scanSubscription(s.pool.QueryRow(ctx, queryGetSubscription, id), sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ListSubscriptions returns all subscriptions, optionally active only.
func (s *PostgresStore) ListSubscriptions(ctx context.Context, activeOnly bool) ([]domain.Subscription, error) {
	query := queryListSubscriptionsAll
	if activeOnly {
		query = queryListSubscriptionsActive
	}
	return s.querySubscriptions(ctx, query)
}

// UpdateSubscription updates an existing subscription.
func (s *PostgresStore) UpdateSubscription(ctx context.Context, sub *domain.Subscription) error {
	args := pgx.NamedArgs{
		"id":           sub.ID,
		"name":         sub.Name,
		"email":        sub.Email,
		"phone":        sub.Phone,
		"device_token": sub.DeviceToken,
		"latitude":     sub.Latitude,
		"longitude":    sub.Longitude,
		"radius_km":    sub.RadiusKm,
		"alert_types":  alertTypeStrings(sub.AlertTypes),
		"min_severity": string(sub.MinSeverity),
		"channels":     channelStrings(sub.Channels),
		"active":       sub.Active,
	}

	if _, err := s.pool.Exec(ctx, queryUpdateSubscription, args); err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}
	return nil
}

// DeleteSubscription removes a subscription by its ID.
func (s *PostgresStore) DeleteSubscription(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteSubscription, id); err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}
	return nil
}

// SetSubscriptionActive enables or disables a subscription.
func (s *PostgresStore) SetSubscriptionActive(ctx context.Context, id string, active bool) error {
	if _, err := s.pool.Exec(ctx, querySetSubscriptionActive, id, active); err != nil {
		return fmt.Errorf("setting subscription active: %w", err)
	}
	return nil
}

// ListSubscriptionCandidates returns active subscriptions whose location
// lies inside the bounding box. Callers apply the exact distance check.
func (s *PostgresStore) ListSubscriptionCandidates(
	ctx context.Context,
	box geo.BoundingBox,
) ([]domain.Subscription, error) {
	return s.querySubscriptions(ctx, queryListSubscriptionCandidates,
		box.MinLat, box.MaxLat, box.MinLon, box.MaxLon,
	)
}

// EnqueueNotification inserts a pending notification. Duplicate
// (alert, subscription, channel) rows are silently dropped.
func (s *PostgresStore) EnqueueNotification(ctx context.Context, n *domain.Notification) error {
	err := s.pool.QueryRow(ctx, queryEnqueueNotification,
		n.AlertID, n.SubscriptionID, string(n.Channel), n.Recipient, n.MaxAttempts,
	).Scan(&n.ID, &n.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueuing notification: %w", err)
	}
	return nil
}

// ListDueNotifications returns pending notifications whose next attempt
// time has passed, oldest first.
func (s *PostgresStore) ListDueNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := s.pool.Query(ctx, queryListDueNotifications, limit)
	if err != nil {
		return nil, fmt.Errorf("querying due notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.AlertID, &n.SubscriptionID, &n.Channel, &n.Recipient, &n.Status,
			&n.Attempts, &n.MaxAttempts, &n.NextAttemptAt, &n.LastError, &n.SentAt, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationSent records a successful delivery.
func (s *PostgresStore) MarkNotificationSent(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, queryMarkNotificationSent, id); err != nil {
		return fmt.Errorf("marking notification sent: %w", err)
	}
	return nil
}

// MarkNotificationFailed records a terminal delivery failure.
func (s *PostgresStore) MarkNotificationFailed(ctx context.Context, id string, errText string) error {
	if _, err := s.pool.Exec(ctx, queryMarkNotificationFailed, id, errText); err != nil {
		return fmt.Errorf("marking notification failed: %w", err)
	}
	return nil
}

// RescheduleNotification records a failed attempt and sets the next retry
// time, leaving the notification pending.
func (s *PostgresStore) RescheduleNotification(
	ctx context.Context,
	id string,
	errText string,
	nextAttempt time.Time,
) error {
	if _, err := s.pool.Exec(ctx, queryRescheduleNotification, id, errText, nextAttempt); err != nil {
		return fmt.Errorf("rescheduling notification: %w", err)
	}
	return nil
}

// NotificationSummary returns per-status notification counts for an alert.
func (s *PostgresStore) NotificationSummary(
	ctx context.Context,
	alertID string,
) (map[domain.NotificationStatus]int, error) {
	rows, err := s.pool.Query(ctx, queryNotificationSummary, alertID)
	if err != nil {
		return nil, fmt.Errorf("querying notification summary: %w", err)
	}
	defer rows.Close()

	summary := make(map[domain.NotificationStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scanning notification summary: %w", err)
		}
		summary[domain.NotificationStatus(status)] = count
	}

	return summary, rows.Err()
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// GetSystemState returns a snapshot of aggregate system metrics.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, querySystemState).Scan(
		&st.StationsTotal, &st.StationsActive, &st.StationsReporting,
		&st.AlertsActive, &st.AlertsUnacknowledged,
		&st.SubscriptionsActive,
		&st.NotificationsPending, &st.NotificationsFailed,
		&st.TideReadingsTotal, &st.WeatherReadingsTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return st, nil
}

// queryAlerts is a helper for alert queries.
func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Alert, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// querySubscriptions is a helper for subscription queries.
func (s *PostgresStore) querySubscriptions(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Subscription, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		if err := scanSubscription(rows, &sub); err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanStation scans a full station row.
func scanStation(row scannable, st *domain.Station) error {
	return row.Scan(
		&st.ID, &st.Code, &st.Name, &st.Type, &st.Operator,
		&st.Latitude, &st.Longitude,
		&st.MeasuresTide, &st.MeasuresWaves, &st.MeasuresWeather,
		&st.Active, &st.LastDataAt, &st.CreatedAt, &st.UpdatedAt,
	)
}

// scanWeatherReading scans a full weather_readings row.
func scanWeatherReading(row scannable, r *domain.WeatherReading) error {
	return row.Scan(
		&r.ID, &r.StationID, &r.ObservedAt,
		&r.TemperatureC, &r.HumidityPct, &r.PressureHPa,
		&r.WindSpeedKmh, &r.WindDirection, &r.Precipitation, &r.VisibilityKm,
		&r.Condition, &r.Source,
	)
}

// scanAlert scans a full alert row, mapping the nullable station UUID onto
// an empty string.
func scanAlert(row scannable, a *domain.Alert) error {
	var station *string
	err := row.Scan(
		&a.ID, &a.Type, &a.Severity, &a.Title, &a.Description,
		&a.LocationName, &a.Latitude, &a.Longitude, &a.RadiusKm,
		&station, &a.Source, &a.Metadata, &a.IssuedAt, &a.ExpiresAt, &a.Active,
		&a.AcknowledgedAt, &a.AcknowledgedBy, &a.ResolvedAt, &a.ResolvedBy, &a.ResolutionNotes,
	)
	if err != nil {
		return err
	}
	if station != nil {
		a.SourceStation = *station
	}
	return nil
}

// scanSubscription scans a full subscription row, converting the text
// arrays into typed slices.
func scanSubscription(row scannable, sub *domain.Subscription) error {
	var alertTypes, channels []string
	err := row.Scan(
		&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.DeviceToken,
		&sub.Latitude, &sub.Longitude, &sub.RadiusKm,
		&alertTypes, &sub.MinSeverity, &channels, &sub.Active,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return err
	}

	sub.AlertTypes = make([]domain.AlertType, len(alertTypes))
	for i, t := range alertTypes {
		sub.AlertTypes[i] = domain.AlertType(t)
	}
	sub.Channels = make([]domain.Channel, len(channels))
	for i, c := range channels {
		sub.Channels[i] = domain.Channel(c)
	}
	return nil
}

func alertTypeStrings(types []domain.AlertType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func channelStrings(channels []domain.Channel) []string {
	out := make([]string, len(channels))
	for i, c := range channels {
		out[i] = string(c)
	}
	return out
}
