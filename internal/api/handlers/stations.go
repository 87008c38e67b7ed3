package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coastalops/ctas/internal/store"
	domain "github.com/coastalops/ctas/pkg/types"
)

const defaultReadingHistoryHours = 24

// StationsHandler handles station CRUD and reading history operations.
type StationsHandler struct {
	store store.Store
}

// NewStationsHandler creates a new StationsHandler.
func NewStationsHandler(s store.Store) *StationsHandler {
	return &StationsHandler{store: s}
}

// List handles GET /api/v1/stations.
func (h *StationsHandler) List(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	stations, err := h.store.ListStations(c.Request().Context(), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing stations: " + err.Error(),
		})
	}

	if stations == nil {
		stations = []domain.Station{}
	}

	return c.JSON(http.StatusOK, stations)
}

// Get handles GET /api/v1/stations/:id.
func (h *StationsHandler) Get(c echo.Context) error {
	id := c.Param("id")

	st, err := h.store.GetStation(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "station not found",
		})
	}

	return c.JSON(http.StatusOK, st)
}

// Create handles POST /api/v1/stations.
func (h *StationsHandler) Create(c echo.Context) error {
	var st domain.Station
	if err := c.Bind(&st); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if st.Code == "" || st.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "code and name are required",
		})
	}

	if err := h.store.CreateStation(c.Request().Context(), &st); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating station: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, st)
}

// Update handles PUT /api/v1/stations/:id.
func (h *StationsHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var st domain.Station
	if err := c.Bind(&st); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	st.ID = id
	if err := h.store.UpdateStation(c.Request().Context(), &st); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating station: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, st)
}

type setActiveRequest struct {
	Active bool `json:"active" example:"true"`
}

// SetActive handles PUT /api/v1/stations/:id/active.
func (h *StationsHandler) SetActive(c echo.Context) error {
	id := c.Param("id")

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if err := h.store.SetStationActive(c.Request().Context(), id, req.Active); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "setting station active: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "updated",
	})
}

// Delete handles DELETE /api/v1/stations/:id.
func (h *StationsHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeleteStation(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting station: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// latestReadings bundles the newest reading of each kind for a station.
// Kinds with no stored reading are null.
type latestReadings struct {
	Tide    *domain.TideReading    `json:"tide"`
	Weather *domain.WeatherReading `json:"weather"`
	Wave    *domain.WaveReading    `json:"wave"`
}

// Readings handles GET /api/v1/stations/:id/readings.
func (h *StationsHandler) Readings(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.store.GetStation(ctx, id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "station not found",
		})
	}

	out := latestReadings{}
	if r, err := h.store.LatestTideReading(ctx, id); err == nil {
		out.Tide = r
	}
	if r, err := h.store.LatestWeatherReading(ctx, id); err == nil {
		out.Weather = r
	}
	if r, err := h.store.LatestWaveReading(ctx, id); err == nil {
		out.Wave = r
	}

	return c.JSON(http.StatusOK, out)
}

// TideHistory handles GET /api/v1/stations/:id/tides.
func (h *StationsHandler) TideHistory(c echo.Context) error {
	id := c.Param("id")
	since, limit := historyWindow(c)

	readings, err := h.store.ListTideReadings(c.Request().Context(), id, since, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing tide readings: " + err.Error(),
		})
	}

	if readings == nil {
		readings = []domain.TideReading{}
	}

	return c.JSON(http.StatusOK, readings)
}

// WeatherHistory handles GET /api/v1/stations/:id/weather.
func (h *StationsHandler) WeatherHistory(c echo.Context) error {
	id := c.Param("id")
	since, limit := historyWindow(c)

	readings, err := h.store.ListWeatherReadings(c.Request().Context(), id, since, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing weather readings: " + err.Error(),
		})
	}

	if readings == nil {
		readings = []domain.WeatherReading{}
	}

	return c.JSON(http.StatusOK, readings)
}

// historyWindow parses the hours and limit query params for reading
// history endpoints.
func historyWindow(c echo.Context) (time.Time, int) {
	hours := defaultReadingHistoryHours
	if v, err := strconv.Atoi(c.QueryParam("hours")); err == nil && v > 0 {
		hours = v
	}

	limit := 0
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	return time.Now().Add(-time.Duration(hours) * time.Hour), limit
}

// RegisterStationRoutes registers station endpoints on the Echo router.
func RegisterStationRoutes(e *echo.Echo, h *StationsHandler) {
	g := e.Group("/api/v1/stations")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PUT("/:id/active", h.SetActive)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/readings", h.Readings)
	g.GET("/:id/tides", h.TideHistory)
	g.GET("/:id/weather", h.WeatherHistory)
}
