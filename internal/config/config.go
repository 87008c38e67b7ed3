// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	NOAA          NOAAConfig          `yaml:"noaa"`
	Weather       WeatherConfig       `yaml:"weather"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// NOAAConfig defines the NOAA Tides & Currents API settings.
type NOAAConfig struct {
	BaseURL   string          `yaml:"base_url"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// WeatherConfig defines the OpenWeather API settings. The API key is
// normally supplied via ${OPENWEATHER_API_KEY} in the config file.
type WeatherConfig struct {
	BaseURL   string          `yaml:"base_url"`
	APIKey    string          `yaml:"api_key"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines upstream API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ScheduleConfig defines cron intervals for the background jobs.
type ScheduleConfig struct {
	CollectionInterval time.Duration `yaml:"collection_interval"`
	RetryInterval      time.Duration `yaml:"retry_interval"`
	ExpiryInterval     time.Duration `yaml:"expiry_interval"`
	StaggerOffset      time.Duration `yaml:"stagger_offset"`
}

// AlertsConfig defines alert evaluation behavior.
type AlertsConfig struct {
	DedupWindow     time.Duration `yaml:"dedup_window"`     // default: 2h
	OfflineWindow   time.Duration `yaml:"offline_window"`   // reporting window for the system check
	OfflineFraction float64       `yaml:"offline_fraction"` // alert when reporting fraction drops below this
}

// NotificationsConfig defines notification channel settings.
type NotificationsConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Concurrency int           `yaml:"concurrency"`
	Backoff     time.Duration `yaml:"backoff"` // base for exponential retry backoff
	Email       EmailConfig   `yaml:"email"`
	SMS         SMSConfig     `yaml:"sms"`
	Push        PushConfig    `yaml:"push"`
}

// EmailConfig defines SMTP settings.
type EmailConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// SMSConfig defines Twilio settings.
type SMSConfig struct {
	Enabled    bool   `yaml:"enabled"`
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	From       string `yaml:"from"`
	BaseURL    string `yaml:"base_url"`
}

// PushConfig defines push delivery settings.
type PushConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	ServerKey string `yaml:"server_key"`
}

// TracingConfig defines OTLP trace export settings.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // OTLP gRPC endpoint, host:port
	Service  string `yaml:"service"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyNOAADefaults(&cfg.NOAA)
	applyWeatherDefaults(&cfg.Weather)
	applyScheduleDefaults(&cfg.Schedule)
	applyAlertsDefaults(&cfg.Alerts)
	applyNotificationsDefaults(&cfg.Notifications)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyNOAADefaults(n *NOAAConfig) {
	if n.BaseURL == "" {
		n.BaseURL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	}
	if n.Timeout == 0 {
		n.Timeout = 15 * time.Second
	}
	applyRateLimitDefaults(&n.RateLimit)
}

func applyWeatherDefaults(w *WeatherConfig) {
	if w.BaseURL == "" {
		w.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if w.Timeout == 0 {
		w.Timeout = 15 * time.Second
	}
	applyRateLimitDefaults(&w.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CollectionInterval == 0 {
		s.CollectionInterval = 5 * time.Minute
	}
	if s.RetryInterval == 0 {
		s.RetryInterval = time.Minute
	}
	if s.ExpiryInterval == 0 {
		s.ExpiryInterval = 10 * time.Minute
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 2 * time.Second
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.DedupWindow == 0 {
		a.DedupWindow = 2 * time.Hour
	}
	if a.OfflineWindow == 0 {
		a.OfflineWindow = 30 * time.Minute
	}
	if a.OfflineFraction == 0 {
		a.OfflineFraction = 0.5
	}
}

func applyNotificationsDefaults(n *NotificationsConfig) {
	if n.MaxAttempts == 0 {
		n.MaxAttempts = 3
	}
	if n.Concurrency == 0 {
		n.Concurrency = 10
	}
	if n.Backoff == 0 {
		n.Backoff = time.Minute
	}
	if n.Email.Port == 0 {
		n.Email.Port = 587
	}
	if n.SMS.BaseURL == "" {
		n.SMS.BaseURL = "https://api.twilio.com"
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.Service == "" {
		t.Service = "ctas"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Weather.APIKey == "" {
		errs = append(errs, fmt.Errorf("weather.api_key is required"))
	}

	if cfg.Alerts.OfflineFraction < 0 || cfg.Alerts.OfflineFraction > 1 {
		errs = append(errs, fmt.Errorf(
			"alerts.offline_fraction must be in [0, 1] (got %v)",
			cfg.Alerts.OfflineFraction,
		))
	}

	if cfg.Notifications.Email.Enabled {
		if cfg.Notifications.Email.Host == "" {
			errs = append(errs, fmt.Errorf("notifications.email.host is required when email is enabled"))
		}
		if cfg.Notifications.Email.From == "" {
			errs = append(errs, fmt.Errorf("notifications.email.from is required when email is enabled"))
		}
	}
	if cfg.Notifications.SMS.Enabled {
		if cfg.Notifications.SMS.AccountSID == "" {
			errs = append(errs, fmt.Errorf("notifications.sms.account_sid is required when sms is enabled"))
		}
		if cfg.Notifications.SMS.From == "" {
			errs = append(errs, fmt.Errorf("notifications.sms.from is required when sms is enabled"))
		}
	}
	if cfg.Notifications.Push.Enabled && cfg.Notifications.Push.Endpoint == "" {
		errs = append(errs, fmt.Errorf("notifications.push.endpoint is required when push is enabled"))
	}

	return errors.Join(errs...)
}
