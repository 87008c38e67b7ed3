// Package store defines the datastore abstraction for the coastal threat
// alert system. All business logic depends on the Store interface, never on
// concrete implementations. This enables mock-based testing without a
// running database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/coastalops/ctas/pkg/geo"
	domain "github.com/coastalops/ctas/pkg/types"
)

// ErrNoReading reports that a station has no stored sample of the
// requested kind.
var ErrNoReading = errors.New("no reading")

// AlertQuery defines optional filters for alert queries.
type AlertQuery struct {
	Type     *string
	Severity *string
	Active   *bool
	Station  *string
	Since    *time.Time
	Box      *geo.BoundingBox
	Limit    int // default 50
	Offset   int
	OrderBy  string // "issued_at", "severity"
}

// Store defines all data access operations for the alert system.
type Store interface {
	// Stations
	CreateStation(ctx context.Context, st *domain.Station) error
	GetStation(ctx context.Context, id string) (*domain.Station, error)
	GetStationByCode(ctx context.Context, code string) (*domain.Station, error)
	ListStations(ctx context.Context, activeOnly bool) ([]domain.Station, error)
	UpdateStation(ctx context.Context, st *domain.Station) error
	DeleteStation(ctx context.Context, id string) error
	SetStationActive(ctx context.Context, id string, active bool) error
	TouchStationData(ctx context.Context, id string, t time.Time) error
	CountStationsReporting(ctx context.Context, window time.Duration) (reporting int, active int, err error)

	// Readings
	InsertTideReading(ctx context.Context, r *domain.TideReading) error
	InsertWeatherReading(ctx context.Context, r *domain.WeatherReading) error
	InsertWaveReading(ctx context.Context, r *domain.WaveReading) error
	LatestTideReading(ctx context.Context, stationID string) (*domain.TideReading, error)
	LatestWeatherReading(ctx context.Context, stationID string) (*domain.WeatherReading, error)
	LatestWaveReading(ctx context.Context, stationID string) (*domain.WaveReading, error)
	ListTideReadings(ctx context.Context, stationID string, since time.Time, limit int) ([]domain.TideReading, error)
	ListWeatherReadings(ctx context.Context, stationID string, since time.Time, limit int) ([]domain.WeatherReading, error)

	// Alerts
	CreateAlert(ctx context.Context, a *domain.Alert) error
	GetAlert(ctx context.Context, id string) (*domain.Alert, error)
	ListAlerts(ctx context.Context, opts *AlertQuery) ([]domain.Alert, int, error)
	ListActiveAlerts(ctx context.Context) ([]domain.Alert, error)
	HasRecentAlert(ctx context.Context, typ domain.AlertType, stationID string, window time.Duration) (bool, error)
	AcknowledgeAlert(ctx context.Context, id string, by string) error
	ResolveAlert(ctx context.Context, id string, by string, notes string) error
	ExpireAlerts(ctx context.Context) (int, error)
	GetAlertStats(ctx context.Context, since time.Time) (*domain.AlertStats, error)

	// Subscriptions
	CreateSubscription(ctx context.Context, sub *domain.Subscription) error
	GetSubscription(ctx context.Context, id string) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context, activeOnly bool) ([]domain.Subscription, error)
	UpdateSubscription(ctx context.Context, sub *domain.Subscription) error
	DeleteSubscription(ctx context.Context, id string) error
	SetSubscriptionActive(ctx context.Context, id string, active bool) error
	ListSubscriptionCandidates(ctx context.Context, box geo.BoundingBox) ([]domain.Subscription, error)

	// Notifications
	EnqueueNotification(ctx context.Context, n *domain.Notification) error
	ListDueNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkNotificationSent(ctx context.Context, id string) error
	MarkNotificationFailed(ctx context.Context, id string, errText string) error
	RescheduleNotification(ctx context.Context, id string, errText string, nextAttempt time.Time) error
	NotificationSummary(ctx context.Context, alertID string) (map[domain.NotificationStatus]int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// System
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
