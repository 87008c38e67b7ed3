package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coastalops/ctas/internal/api/handlers"
	storeMocks "github.com/coastalops/ctas/internal/store/mocks"
	domain "github.com/coastalops/ctas/pkg/types"
)

// serveStations runs one request through a fresh Echo router with the
// station routes mounted.
func serveStations(t *testing.T, ms *storeMocks.MockStore, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handlers.RegisterStationRoutes(e, handlers.NewStationsHandler(ms))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStationHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns stations",
			path: "/api/v1/stations",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListStations(mock.Anything, false).
					Return([]domain.Station{
						{ID: "st1", Code: "8518750", Name: "The Battery, NY"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"The Battery, NY"`,
		},
		{
			name: "active only filter",
			path: "/api/v1/stations?active=true",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListStations(mock.Anything, true).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			path: "/api/v1/stations",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListStations(mock.Anything, false).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing stations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			rec := serveStations(t, ms, http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestStationHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetStation(mock.Anything, "st1").
			Return(&domain.Station{ID: "st1", Code: "8518750"}, nil).
			Once()

		rec := serveStations(t, ms, http.MethodGet, "/api/v1/stations/st1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"8518750"`)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetStation(mock.Anything, "missing").
			Return(nil, pgx.ErrNoRows).
			Once()

		rec := serveStations(t, ms, http.MethodGet, "/api/v1/stations/missing", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "station not found")
	})
}

func TestStationHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid station",
			body: `{"code":"8531680","name":"Sandy Hook, NJ","type":"tide_gauge","latitude":40.4669,"longitude":-74.0094,"measures_tide":true}`,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateStation(mock.Anything, mock.MatchedBy(func(st *domain.Station) bool {
						return st.Code == "8531680" && st.MeasuresTide
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"Sandy Hook, NJ"`,
		},
		{
			name:       "missing code",
			body:       `{"name":"Sandy Hook, NJ"}`,
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "code and name are required",
		},
		{
			name: "store error",
			body: `{"code":"8531680","name":"Sandy Hook, NJ"}`,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateStation(mock.Anything, mock.Anything).
					Return(errors.New("duplicate code")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "creating station",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			rec := serveStations(t, ms, http.MethodPost, "/api/v1/stations", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestStationHandler_SetActive(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().SetStationActive(mock.Anything, "st1", false).
		Return(nil).
		Once()

	rec := serveStations(t, ms, http.MethodPut, "/api/v1/stations/st1/active", `{"active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "updated")
}

func TestStationHandler_Delete(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().DeleteStation(mock.Anything, "st1").
		Return(nil).
		Once()

	rec := serveStations(t, ms, http.MethodDelete, "/api/v1/stations/st1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStationHandler_Readings(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetStation(mock.Anything, "st1").
		Return(&domain.Station{ID: "st1"}, nil).
		Once()
	ms.EXPECT().LatestTideReading(mock.Anything, "st1").
		Return(&domain.TideReading{StationID: "st1", WaterLevel: 2.1}, nil)
	ms.EXPECT().LatestWeatherReading(mock.Anything, "st1").
		Return(nil, pgx.ErrNoRows)
	ms.EXPECT().LatestWaveReading(mock.Anything, "st1").
		Return(nil, pgx.ErrNoRows)

	rec := serveStations(t, ms, http.MethodGet, "/api/v1/stations/st1/readings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"water_level":2.1`)
	assert.Contains(t, body, `"weather":null`)
}

func TestStationHandler_TideHistory(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListTideReadings(mock.Anything, "st1", mock.Anything, 10).
		Return([]domain.TideReading{
			{StationID: "st1", WaterLevel: 1.8},
		}, nil).
		Once()

	rec := serveStations(t, ms, http.MethodGet, "/api/v1/stations/st1/tides?hours=6&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"water_level":1.8`)
}
