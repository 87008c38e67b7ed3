package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/coastalops/ctas/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListStations(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListStations(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListStations(t *testing.T) {
	t.Parallel()

	stations := []domain.Station{
		{ID: "st1", Code: "8518750", Name: "The Battery, NY"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stations", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stations)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.ListStations(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "st1", result[0].ID)
}

func TestClient_CreateStation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var st domain.Station
		err := json.NewDecoder(r.Body).Decode(&st)
		assert.NoError(t, err)
		assert.Equal(t, "8531680", st.Code)
		st.ID = "st-created"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(st)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.CreateStation(context.Background(), &domain.Station{
		Code:         "8531680",
		Name:         "Sandy Hook, NJ",
		MeasuresTide: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "st-created", result.ID)
}

func TestClient_DeleteStation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/stations/st1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteStation(context.Background(), "st1")
	require.NoError(t, err)
}

func TestClient_ListAlerts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/alerts", r.URL.Path)
		assert.Equal(t, "storm", r.URL.Query().Get("type"))
		assert.Equal(t, "high", r.URL.Query().Get("severity"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AlertList{
			Alerts: []AlertListItem{{Alert: domain.Alert{ID: "a1"}}},
			Total:  1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListAlerts(context.Background(), AlertFilter{
		Type:     "storm",
		Severity: "high",
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Alerts, 1)
}

func TestClient_ListAlerts_RadiusFilter(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40.7", r.URL.Query().Get("lat"))
		assert.Equal(t, "-74", r.URL.Query().Get("lon"))
		assert.Equal(t, "25", r.URL.Query().Get("radius_km"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AlertList{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListAlerts(context.Background(), AlertFilter{
		Lat:      40.7,
		Lon:      -74,
		RadiusKm: 25,
	})
	require.NoError(t, err)
}

func TestClient_AcknowledgeAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/alerts/a1/ack", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "operator-7", body["by"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "acknowledged"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.AcknowledgeAlert(context.Background(), "a1", "operator-7")
	require.NoError(t, err)
}

func TestClient_TriggerCollect(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/collect", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CollectResult{Status: "collection completed", Readings: 8})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.TriggerCollect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, result.Readings)
}

func TestClient_TestSubscription(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/subscriptions/sub-1/test", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "email", body["channel"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "sent"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.TestSubscription(context.Background(), "sub-1", domain.ChannelEmail)
	require.NoError(t, err)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
