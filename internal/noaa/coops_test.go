package noaa_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastalops/ctas/internal/noaa"
)

func TestCOOPSClient_WaterLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
		wantLevels int
	}{
		{
			name: "successful fetch with observations",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "water_level", r.URL.Query().Get("product"))
				assert.Equal(t, "8518750", r.URL.Query().Get("station"))
				assert.Equal(t, "MLLW", r.URL.Query().Get("datum"))
				assert.Equal(t, "metric", r.URL.Query().Get("units"))
				assert.Equal(t, "gmt", r.URL.Query().Get("time_zone"))
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				assert.NotEmpty(t, r.URL.Query().Get("begin_date"))
				assert.NotEmpty(t, r.URL.Query().Get("end_date"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"metadata": {"id": "8518750", "name": "The Battery"},
					"data": [
						{"t": "2026-08-30 11:48", "v": "1.523", "s": "0.003", "f": "0,0,0,0", "q": "v"},
						{"t": "2026-08-30 11:54", "v": "1.541", "s": "0.004", "f": "0,0,0,0", "q": "v"},
						{"t": "2026-08-30 12:00", "v": "1.560", "s": "0.003", "f": "0,0,0,0", "q": "p"}
					]
				}`))
			},
			wantLevels: 3,
		},
		{
			name: "skips observations with empty values",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"data": [
						{"t": "2026-08-30 11:48", "v": "1.523", "q": "v"},
						{"t": "2026-08-30 11:54", "v": "", "q": "v"},
						{"t": "2026-08-30 12:00", "v": "1.560", "q": "v"}
					]
				}`))
			},
			wantLevels: 2,
		},
		{
			name: "error payload with status 200",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"error": {"message": "No data was found for this station"}}`))
			},
			wantErr:    true,
			errContain: "No data was found",
		},
		{
			name: "503 server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr:    true,
			errContain: "status 503",
		},
		{
			name: "invalid JSON response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			errContain: "parsing CO-OPS response",
		},
		{
			name: "malformed observation time",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"data": [{"t": "yesterday", "v": "1.5", "q": "v"}]}`))
			},
			wantErr:    true,
			errContain: "parsing observation time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := noaa.NewCOOPSClient(noaa.WithBaseURL(srv.URL))

			levels, err := client.WaterLevels(context.Background(), "8518750", 6*time.Hour)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
			require.Len(t, levels, tt.wantLevels)
			for _, lvl := range levels {
				assert.Equal(t, "8518750", lvl.Station)
				assert.Equal(t, time.UTC, lvl.Time.Location())
			}
		})
	}
}

func TestCOOPSClient_WaterLevels_ParsesValues(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"t": "2026-08-30 12:00", "v": "1.523", "q": "v"}]}`))
	}))
	defer srv.Close()

	client := noaa.NewCOOPSClient(noaa.WithBaseURL(srv.URL))

	levels, err := client.WaterLevels(context.Background(), "8518750", time.Hour)
	require.NoError(t, err)
	require.Len(t, levels, 1)

	assert.InDelta(t, 1.523, levels[0].LevelM, 0.0001)
	assert.Equal(t, "v", levels[0].Quality)
	assert.Equal(t,
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		levels[0].Time,
	)
}

func TestCOOPSClient_Predictions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
		wantPreds  int
	}{
		{
			name: "successful fetch with hilo predictions",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "predictions", r.URL.Query().Get("product"))
				assert.Equal(t, "hilo", r.URL.Query().Get("interval"))

				// The request reaches back so extremes bracket
				// recent observations, not just the window ahead.
				begin, err := time.Parse("20060102 15:04", r.URL.Query().Get("begin_date"))
				require.NoError(t, err)
				assert.True(t, begin.Before(time.Now().UTC().Add(-11*time.Hour)))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"predictions": [
						{"t": "2026-08-30 14:12", "v": "2.810", "type": "H"},
						{"t": "2026-08-30 20:36", "v": "0.310", "type": "L"}
					]
				}`))
			},
			wantPreds: 2,
		},
		{
			name: "malformed prediction value",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"predictions": [{"t": "2026-08-30 14:12", "v": "high", "type": "H"}]}`))
			},
			wantErr:    true,
			errContain: "parsing prediction value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := noaa.NewCOOPSClient(noaa.WithBaseURL(srv.URL))

			preds, err := client.Predictions(context.Background(), "8518750", 48*time.Hour)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
			require.Len(t, preds, tt.wantPreds)
			assert.Equal(t, "H", preds[0].Type)
			assert.Equal(t, "L", preds[1].Type)
		})
	}
}

func TestCOOPSClient_QuotaExhausted(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	client := noaa.NewCOOPSClient(
		noaa.WithBaseURL(srv.URL),
		noaa.WithQuotaLimiter(noaa.NewQuotaLimiter(100, 10, 1)),
	)

	_, err := client.WaterLevels(context.Background(), "8518750", time.Hour)
	require.NoError(t, err)

	_, err = client.WaterLevels(context.Background(), "8518750", time.Hour)
	require.Error(t, err)
	assert.ErrorIs(t, err, noaa.ErrDailyQuotaReached)
	assert.Equal(t, 1, calls, "second call must not reach the server")
}
