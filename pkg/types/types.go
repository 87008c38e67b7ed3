// Package domain defines the core business types for the coastal threat alert system.
package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// AlertType represents the category of coastal hazard an alert describes.
type AlertType string

// Alert type constants.
const (
	AlertFlood  AlertType = "flood"
	AlertTide   AlertType = "tide"
	AlertWave   AlertType = "wave"
	AlertStorm  AlertType = "storm"
	AlertSystem AlertType = "system"
)

// Severity represents how dangerous a detected condition is.
type Severity string

// Severity constants, ordered from least to most dangerous.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities for threshold comparisons.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// AtLeast reports whether s is equal to or more dangerous than min.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}

// Channel represents a notification delivery medium.
type Channel string

// Channel constants.
const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

// NotificationStatus represents the delivery state of a notification.
type NotificationStatus string

// Notification status constants.
const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// StationType represents the kind of monitoring installation.
type StationType string

// Station type constants.
const (
	StationTideGauge   StationType = "tide_gauge"
	StationWaveBuoy    StationType = "wave_buoy"
	StationWeather     StationType = "weather"
	StationMultiSensor StationType = "multi_sensor"
)

// Station represents a coastal monitoring station.
type Station struct {
	ID       string      `json:"id"                 db:"id"`
	Code     string      `json:"code"               db:"code"`
	Name     string      `json:"name"               db:"name"`
	Type     StationType `json:"type"               db:"type"`
	Operator string      `json:"operator,omitempty" db:"operator"`

	// Location
	Latitude  float64 `json:"latitude"  db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`

	// Capabilities
	MeasuresTide    bool `json:"measures_tide"    db:"measures_tide"`
	MeasuresWaves   bool `json:"measures_waves"   db:"measures_waves"`
	MeasuresWeather bool `json:"measures_weather" db:"measures_weather"`

	Active     bool       `json:"active"                 db:"active"`
	LastDataAt *time.Time `json:"last_data_at,omitempty" db:"last_data_at"`
	CreatedAt  time.Time  `json:"created_at"             db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"             db:"updated_at"`
}

// TideReading is a single observed or predicted water level sample.
type TideReading struct {
	ID         string    `json:"id"                  db:"id"`
	StationID  string    `json:"station_id"          db:"station_id"`
	ObservedAt time.Time `json:"observed_at"         db:"observed_at"`
	// WaterLevel is meters relative to the MLLW datum.
	WaterLevel     float64  `json:"water_level"               db:"water_level"`
	PredictedLevel *float64 `json:"predicted_level,omitempty" db:"predicted_level"`
	Quality        string   `json:"quality,omitempty"         db:"quality"`
	Source         string   `json:"source"                    db:"source"`
}

// Residual returns the observed minus predicted water level, when a
// prediction is available. Large positive residuals indicate surge.
func (r *TideReading) Residual() (float64, bool) {
	if r.PredictedLevel == nil {
		return 0, false
	}
	return r.WaterLevel - *r.PredictedLevel, true
}

// WeatherReading is a single atmospheric observation at a station.
type WeatherReading struct {
	ID         string    `json:"id"          db:"id"`
	StationID  string    `json:"station_id"  db:"station_id"`
	ObservedAt time.Time `json:"observed_at" db:"observed_at"`

	TemperatureC  float64 `json:"temperature_c"           db:"temperature_c"`
	HumidityPct   float64 `json:"humidity_pct"            db:"humidity_pct"`
	PressureHPa   float64 `json:"pressure_hpa"            db:"pressure_hpa"`
	WindSpeedKmh  float64 `json:"wind_speed_kmh"          db:"wind_speed_kmh"`
	WindDirection float64 `json:"wind_direction_deg"      db:"wind_direction_deg"`
	Precipitation float64 `json:"precipitation_mm"        db:"precipitation_mm"`
	VisibilityKm  float64 `json:"visibility_km,omitempty" db:"visibility_km"`
	Condition     string  `json:"condition,omitempty"     db:"condition"`
	Source        string  `json:"source"                  db:"source"`
}

// WaveReading is a single wave state observation at a station.
type WaveReading struct {
	ID         string    `json:"id"          db:"id"`
	StationID  string    `json:"station_id"  db:"station_id"`
	ObservedAt time.Time `json:"observed_at" db:"observed_at"`

	// HeightM is the significant wave height in meters.
	HeightM      float64 `json:"height_m"                db:"height_m"`
	PeriodS      float64 `json:"period_s,omitempty"      db:"period_s"`
	DirectionDeg float64 `json:"direction_deg,omitempty" db:"direction_deg"`
	Source       string  `json:"source"                  db:"source"`
}

// Alert represents a detected coastal hazard condition.
type Alert struct {
	ID          string    `json:"id"          db:"id"`
	Type        AlertType `json:"type"        db:"type"`
	Severity    Severity  `json:"severity"    db:"severity"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`

	// Location
	LocationName   string  `json:"location_name,omitempty" db:"location_name"`
	Latitude       float64 `json:"latitude"                db:"latitude"`
	Longitude      float64 `json:"longitude"               db:"longitude"`
	RadiusKm       float64 `json:"radius_km"               db:"radius_km"`
	SourceStation  string  `json:"source_station,omitempty" db:"source_station"`
	Source         string  `json:"source"                  db:"source"`

	// Metadata holds the trigger values that produced the alert.
	Metadata json.RawMessage `json:"metadata,omitempty" db:"metadata"`

	IssuedAt  time.Time  `json:"issued_at"            db:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	Active    bool       `json:"active"               db:"active"`

	// Lifecycle
	AcknowledgedAt  *time.Time `json:"acknowledged_at,omitempty"  db:"acknowledged_at"`
	AcknowledgedBy  string     `json:"acknowledged_by,omitempty"  db:"acknowledged_by"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"      db:"resolved_at"`
	ResolvedBy      string     `json:"resolved_by,omitempty"      db:"resolved_by"`
	ResolutionNotes string     `json:"resolution_notes,omitempty" db:"resolution_notes"`
}

// Expired reports whether the alert has passed its expiry time.
func (a *Alert) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}

// Subscription represents a recipient's alert preferences and location.
type Subscription struct {
	ID          string `json:"id"                     db:"id"`
	Name        string `json:"name"                   db:"name"`
	Email       string `json:"email,omitempty"        db:"email"`
	Phone       string `json:"phone,omitempty"        db:"phone"`
	DeviceToken string `json:"device_token,omitempty" db:"device_token"`

	// Location of interest
	Latitude  float64 `json:"latitude"  db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	RadiusKm  float64 `json:"radius_km" db:"radius_km"`

	// Preferences
	AlertTypes  []AlertType `json:"alert_types"  db:"alert_types"`
	MinSeverity Severity    `json:"min_severity" db:"min_severity"`
	Channels    []Channel   `json:"channels"     db:"channels"`

	Active    bool      `json:"active"     db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Wants reports whether the subscription's preferences accept an alert
// of the given type and severity. Location is checked separately.
func (s *Subscription) Wants(t AlertType, sev Severity) bool {
	if !sev.AtLeast(s.MinSeverity) {
		return false
	}
	if len(s.AlertTypes) == 0 {
		return true
	}
	return slices.Contains(s.AlertTypes, t)
}

// Recipient returns the delivery address for the given channel, or
// empty when the subscription has none configured.
func (s *Subscription) Recipient(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return s.Email
	case ChannelSMS:
		return s.Phone
	case ChannelPush:
		return s.DeviceToken
	default:
		return ""
	}
}

// Notification records a single delivery attempt stream for one
// subscription and channel of an alert.
type Notification struct {
	ID             string             `json:"id"              db:"id"`
	AlertID        string             `json:"alert_id"        db:"alert_id"`
	SubscriptionID string             `json:"subscription_id" db:"subscription_id"`
	Channel        Channel            `json:"channel"         db:"channel"`
	Recipient      string             `json:"recipient"       db:"recipient"`
	Status         NotificationStatus `json:"status"          db:"status"`

	Attempts      int        `json:"attempts"                  db:"attempts"`
	MaxAttempts   int        `json:"max_attempts"              db:"max_attempts"`
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty" db:"next_attempt_at"`
	LastError     string     `json:"last_error,omitempty"      db:"last_error"`

	SentAt    *time.Time `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt time.Time  `json:"created_at"        db:"created_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// SystemState holds a precomputed snapshot of aggregate system metrics.
type SystemState struct {
	StationsTotal        int `json:"stations_total"         db:"stations_total"`
	StationsActive       int `json:"stations_active"        db:"stations_active"`
	StationsReporting    int `json:"stations_reporting"     db:"stations_reporting"`
	AlertsActive         int `json:"alerts_active"          db:"alerts_active"`
	AlertsUnacknowledged int `json:"alerts_unacknowledged"  db:"alerts_unacknowledged"`
	SubscriptionsActive  int `json:"subscriptions_active"   db:"subscriptions_active"`
	NotificationsPending int `json:"notifications_pending"  db:"notifications_pending"`
	NotificationsFailed  int `json:"notifications_failed"   db:"notifications_failed"`
	TideReadingsTotal    int `json:"tide_readings_total"    db:"tide_readings_total"`
	WeatherReadingsTotal int `json:"weather_readings_total" db:"weather_readings_total"`
}

// AlertStats summarizes alert volume over a reporting window.
type AlertStats struct {
	Total      int               `json:"total"`
	Active     int               `json:"active"`
	BySeverity map[Severity]int  `json:"by_severity"`
	ByType     map[AlertType]int `json:"by_type"`
}
