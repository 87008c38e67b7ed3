package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
weather:
  api_key: ow-key
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "ow-key", cfg.Weather.APIKey)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
weather:
  api_key: ow-key
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter", cfg.NOAA.BaseURL)
				assert.Equal(t, 15*time.Second, cfg.NOAA.Timeout)
				assert.Equal(t, 5.0, cfg.NOAA.RateLimit.PerSecond)
				assert.Equal(t, int64(5000), cfg.NOAA.RateLimit.DailyLimit)
				assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.BaseURL)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.CollectionInterval)
				assert.Equal(t, time.Minute, cfg.Schedule.RetryInterval)
				assert.Equal(t, 10*time.Minute, cfg.Schedule.ExpiryInterval)
				assert.Equal(t, 2*time.Second, cfg.Schedule.StaggerOffset)
				assert.Equal(t, 2*time.Hour, cfg.Alerts.DedupWindow)
				assert.Equal(t, 30*time.Minute, cfg.Alerts.OfflineWindow)
				assert.Equal(t, 0.5, cfg.Alerts.OfflineFraction)
				assert.Equal(t, 3, cfg.Notifications.MaxAttempts)
				assert.Equal(t, 10, cfg.Notifications.Concurrency)
				assert.Equal(t, time.Minute, cfg.Notifications.Backoff)
				assert.Equal(t, 587, cfg.Notifications.Email.Port)
				assert.Equal(t, "https://api.twilio.com", cfg.Notifications.SMS.BaseURL)
				assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
				assert.Equal(t, "ctas", cfg.Tracing.Service)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
weather:
  api_key: "${TEST_OW_KEY}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_OW_KEY":      "ow-secret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "ow-secret", cfg.Weather.APIKey)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
weather:
  api_key: ow-key
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
weather:
  api_key: ow-key
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
weather:
  api_key: ow-key
`,
			wantErr: "database.user is required",
		},
		{
			name: "missing weather api key",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			wantErr: "weather.api_key is required",
		},
		{
			name: "offline fraction out of range",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
weather:
  api_key: ow-key
alerts:
  offline_fraction: 1.5
`,
			wantErr: "alerts.offline_fraction must be in [0, 1]",
		},
		{
			name: "email enabled without host",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
weather:
  api_key: ow-key
notifications:
  email:
    enabled: true
    from: alerts@example.com
`,
			wantErr: "notifications.email.host is required when email is enabled",
		},
		{
			name: "sms enabled without account sid",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
weather:
  api_key: ow-key
notifications:
  sms:
    enabled: true
    from: "+15550100"
`,
			wantErr: "notifications.sms.account_sid is required when sms is enabled",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: ctas_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
noaa:
  timeout: 30s
  rate_limit:
    per_second: 2
    burst: 4
    daily_limit: 1000
weather:
  api_key: ow-key
  timeout: 20s
schedule:
  collection_interval: 10m
  retry_interval: 2m
  expiry_interval: 30m
  stagger_offset: 5s
alerts:
  dedup_window: 1h
  offline_window: 15m
  offline_fraction: 0.25
notifications:
  max_attempts: 5
  concurrency: 4
  backoff: 30s
  email:
    enabled: true
    host: smtp.example.com
    port: 465
    from: alerts@example.com
  sms:
    enabled: true
    account_sid: AC123
    auth_token: tok
    from: "+15550100"
  push:
    enabled: true
    endpoint: https://fcm.googleapis.com/v1/projects/ctas/messages:send
    server_key: key
tracing:
  enabled: true
  endpoint: otel:4317
  service: ctas-prod
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, 30*time.Second, cfg.NOAA.Timeout)
				assert.Equal(t, 2.0, cfg.NOAA.RateLimit.PerSecond)
				assert.Equal(t, int64(1000), cfg.NOAA.RateLimit.DailyLimit)
				assert.Equal(t, 10*time.Minute, cfg.Schedule.CollectionInterval)
				assert.Equal(t, time.Hour, cfg.Alerts.DedupWindow)
				assert.Equal(t, 0.25, cfg.Alerts.OfflineFraction)
				assert.Equal(t, 5, cfg.Notifications.MaxAttempts)
				assert.True(t, cfg.Notifications.Email.Enabled)
				assert.Equal(t, 465, cfg.Notifications.Email.Port)
				assert.True(t, cfg.Notifications.SMS.Enabled)
				assert.Equal(t, "AC123", cfg.Notifications.SMS.AccountSID)
				assert.True(t, cfg.Notifications.Push.Enabled)
				assert.True(t, cfg.Tracing.Enabled)
				assert.Equal(t, "otel:4317", cfg.Tracing.Endpoint)
				assert.Equal(t, "ctas-prod", cfg.Tracing.Service)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			// Set env vars for this test.
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			// Write YAML to a temp file.
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "ctas",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=ctas user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
