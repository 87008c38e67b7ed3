package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/coastalops/ctas/internal/noaa"
	"github.com/coastalops/ctas/internal/store"
	"github.com/coastalops/ctas/internal/weather"
	"github.com/coastalops/ctas/pkg/hazard"
	domain "github.com/coastalops/ctas/pkg/types"
)

// Forecast horizons in hours.
const (
	defaultTideForecastHours  = 48
	defaultSurgeForecastHours = 24
	defaultWaveForecastHours  = 48
)

// ForecastsHandler serves forecasts backed by live provider data when the
// clients are configured, falling back to the harmonic model seeded from a
// station's latest observations.
type ForecastsHandler struct {
	store      store.Store
	forecaster *hazard.Forecaster
	tides      noaa.Client
	wx         weather.Client
}

// ForecastsOption configures optional live data sources.
type ForecastsOption func(*ForecastsHandler)

// WithTideClient backs the tide forecast with CO-OPS predictions.
func WithTideClient(c noaa.Client) ForecastsOption {
	return func(h *ForecastsHandler) {
		h.tides = c
	}
}

// WithWeatherClient drives the surge forecast with forecast conditions
// instead of holding the latest observation constant.
func WithWeatherClient(c weather.Client) ForecastsOption {
	return func(h *ForecastsHandler) {
		h.wx = c
	}
}

// NewForecastsHandler creates a new ForecastsHandler.
func NewForecastsHandler(s store.Store, f *hazard.Forecaster, opts ...ForecastsOption) *ForecastsHandler {
	h := &ForecastsHandler{store: s, forecaster: f}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// --- Input/Output types ---

// TideForecastInput is the input for the tide forecast endpoint.
type TideForecastInput struct {
	Station string `query:"station" doc:"Station code"              required:"true"`
	Hours   int    `query:"hours"   doc:"Forecast horizon in hours"                  minimum:"1" maximum:"168"`
}

// TideForecastOutput is the response for the tide forecast endpoint.
type TideForecastOutput struct {
	Body struct {
		Station string             `json:"station"`
		Points  []hazard.TidePoint `json:"points"`
	}
}

// SurgeForecastInput is the input for the storm surge forecast endpoint.
type SurgeForecastInput struct {
	Station     string  `query:"station"      doc:"Station code"                                 required:"true"`
	Hours       int     `query:"hours"        doc:"Forecast horizon in hours"                                    minimum:"1" maximum:"168"`
	WindKmh     float64 `query:"wind_kmh"     doc:"Override wind speed (default: latest observation)"            minimum:"0" maximum:"400"`
	PressureHPa float64 `query:"pressure_hpa" doc:"Override pressure (default: latest observation)"              minimum:"800" maximum:"1100"`
	DistanceKm  float64 `query:"distance_km"  doc:"Storm center distance"                                        minimum:"0" maximum:"2000"`
}

// SurgeForecastOutput is the response for the storm surge forecast endpoint.
type SurgeForecastOutput struct {
	Body struct {
		Station     string              `json:"station"`
		WindKmh     float64             `json:"wind_kmh"`
		PressureHPa float64             `json:"pressure_hpa"`
		Points      []hazard.SurgePoint `json:"points"`
	}
}

// WaveForecastInput is the input for the wave forecast endpoint.
type WaveForecastInput struct {
	Station string  `query:"station"  doc:"Station code"                                      required:"true"`
	Hours   int     `query:"hours"    doc:"Forecast horizon in hours"                                         minimum:"1" maximum:"168"`
	WindKmh float64 `query:"wind_kmh" doc:"Override wind speed (default: latest observation)"                 minimum:"0" maximum:"400"`
}

// WaveForecastOutput is the response for the wave forecast endpoint.
type WaveForecastOutput struct {
	Body struct {
		Station string             `json:"station"`
		WindKmh float64            `json:"wind_kmh"`
		Points  []hazard.WavePoint `json:"points"`
	}
}

// FloodRiskInput is the input for the flood risk endpoint.
type FloodRiskInput struct {
	Station string `query:"station" doc:"Station code" required:"true"`
}

// FloodRiskOutput is the response for the flood risk endpoint.
type FloodRiskOutput struct {
	Body struct {
		Station    string                `json:"station"`
		Assessment hazard.RiskAssessment `json:"assessment"`
	}
}

// --- Handlers ---

// TideForecast returns the tide prediction for a station, from CO-OPS
// when a tide client is configured, otherwise from the harmonic model.
func (h *ForecastsHandler) TideForecast(
	ctx context.Context,
	input *TideForecastInput,
) (*TideForecastOutput, error) {
	st, err := h.store.GetStationByCode(ctx, input.Station)
	if err != nil {
		return nil, huma.Error404NotFound("station not found")
	}

	hours := input.Hours
	if hours == 0 {
		hours = defaultTideForecastHours
	}

	resp := &TideForecastOutput{}
	resp.Body.Station = st.Code
	if pts := h.liveTideSeries(ctx, st.Code, hours); pts != nil {
		resp.Body.Points = pts
		return resp, nil
	}
	resp.Body.Points = h.forecaster.TideSeries(st.Code, time.Now().UTC(), hours)
	return resp, nil
}

// liveTideSeries builds an hourly series by interpolating CO-OPS high/low
// predictions. Returns nil when no client is configured or when the
// predictions do not cover the horizon, letting the caller fall back to
// the harmonic model.
func (h *ForecastsHandler) liveTideSeries(ctx context.Context, code string, hours int) []hazard.TidePoint {
	if h.tides == nil {
		return nil
	}

	// An extra half tidal day guarantees a bracketing extreme past the
	// horizon.
	window := time.Duration(hours+13) * time.Hour
	preds, err := h.tides.Predictions(ctx, code, window)
	if err != nil || len(preds) < 2 {
		return nil
	}

	start := time.Now().UTC().Truncate(time.Hour)
	levels := make([]float64, hours+2)
	for i := range levels {
		lvl, ok := noaa.InterpolateLevel(preds, start.Add(time.Duration(i-1)*time.Hour))
		if !ok {
			return nil
		}
		levels[i] = lvl
	}

	points := make([]hazard.TidePoint, 0, hours)
	for i := 0; i < hours; i++ {
		points = append(points, hazard.TidePoint{
			Time:   start.Add(time.Duration(i) * time.Hour),
			LevelM: levels[i+1],
			State:  hazard.TideState(levels[i], levels[i+1], levels[i+2]),
		})
	}
	return points
}

// SurgeForecast returns an hourly storm surge forecast. With a weather
// client configured the surge model follows forecast conditions; with
// overrides or no client it holds the seed conditions constant.
func (h *ForecastsHandler) SurgeForecast(
	ctx context.Context,
	input *SurgeForecastInput,
) (*SurgeForecastOutput, error) {
	st, err := h.store.GetStationByCode(ctx, input.Station)
	if err != nil {
		return nil, huma.Error404NotFound("station not found")
	}

	hours := input.Hours
	if hours == 0 {
		hours = defaultSurgeForecastHours
	}

	wind, pressure := h.latestConditions(ctx, st)
	override := input.WindKmh != 0 || input.PressureHPa != 0
	if input.WindKmh != 0 {
		wind = input.WindKmh
	}
	if input.PressureHPa != 0 {
		pressure = input.PressureHPa
	}

	resp := &SurgeForecastOutput{}
	resp.Body.Station = st.Code
	resp.Body.WindKmh = wind
	resp.Body.PressureHPa = pressure
	if !override {
		if pts := h.liveSurgeSeries(ctx, st, input.DistanceKm, hours); pts != nil {
			resp.Body.Points = pts
			return resp, nil
		}
	}
	resp.Body.Points = h.forecaster.SurgeSeries(st.Code, wind, pressure, input.DistanceKm, time.Now().UTC(), hours)
	return resp, nil
}

// liveSurgeSeries drives the surge model with forecast wind and pressure
// for each hour of the horizon. Returns nil when no weather client is
// configured or the forecast fetch fails.
func (h *ForecastsHandler) liveSurgeSeries(
	ctx context.Context,
	st *domain.Station,
	distanceKm float64,
	hours int,
) []hazard.SurgePoint {
	if h.wx == nil {
		return nil
	}

	fc, err := h.wx.Forecast(ctx, st.Latitude, st.Longitude, (hours+23)/24)
	if err != nil || len(fc) == 0 {
		return nil
	}

	start := time.Now().UTC().Truncate(time.Hour)
	points := make([]hazard.SurgePoint, 0, hours)
	idx := 0
	for i := 0; i < hours; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		for idx+1 < len(fc) && !fc[idx+1].Time.After(at) {
			idx++
		}
		surge := h.forecaster.StormSurge(fc[idx].WindSpeedKmh, fc[idx].PressureHPa, distanceKm, float64(i))
		points = append(points, hazard.SurgePoint{
			Time:        at,
			SurgeM:      surge,
			TotalWaterM: surge + h.forecaster.TideLevel(st.Code, at),
		})
	}
	return points
}

// WaveForecast returns an hourly wave forecast seeded from the station's
// latest observed wind.
func (h *ForecastsHandler) WaveForecast(
	ctx context.Context,
	input *WaveForecastInput,
) (*WaveForecastOutput, error) {
	st, err := h.store.GetStationByCode(ctx, input.Station)
	if err != nil {
		return nil, huma.Error404NotFound("station not found")
	}

	hours := input.Hours
	if hours == 0 {
		hours = defaultWaveForecastHours
	}

	wind, _ := h.latestConditions(ctx, st)
	direction := 0.0
	if wx, err := h.store.LatestWeatherReading(ctx, st.ID); err == nil {
		direction = wx.WindDirection
	}
	if input.WindKmh != 0 {
		wind = input.WindKmh
	}

	resp := &WaveForecastOutput{}
	resp.Body.Station = st.Code
	resp.Body.WindKmh = wind
	resp.Body.Points = h.forecaster.WaveSeries(wind, direction, time.Now().UTC(), hours)
	return resp, nil
}

// FloodRisk assesses flood risk from the station's latest readings.
func (h *ForecastsHandler) FloodRisk(
	ctx context.Context,
	input *FloodRiskInput,
) (*FloodRiskOutput, error) {
	st, err := h.store.GetStationByCode(ctx, input.Station)
	if err != nil {
		return nil, huma.Error404NotFound("station not found")
	}

	in := hazard.FloodInputs{}
	if r, err := h.store.LatestTideReading(ctx, st.ID); err == nil {
		in.TideLevelM = r.WaterLevel
	}
	if r, err := h.store.LatestWaveReading(ctx, st.ID); err == nil {
		in.WaveHeightM = r.HeightM
	}
	if wx, err := h.store.LatestWeatherReading(ctx, st.ID); err == nil {
		in.RainfallMm = wx.Precipitation
		in.WindSpeedKmh = wx.WindSpeedKmh
		in.StormSurgeM = h.forecaster.StormSurge(
			wx.WindSpeedKmh,
			wx.PressureHPa,
			0,
			float64(time.Now().UTC().Hour()),
		)
	}

	resp := &FloodRiskOutput{}
	resp.Body.Station = st.Code
	resp.Body.Assessment = h.forecaster.FloodRisk(in)
	return resp, nil
}

// latestConditions returns the station's latest observed wind and
// pressure, defaulting to calm standard conditions.
func (h *ForecastsHandler) latestConditions(ctx context.Context, st *domain.Station) (wind, pressure float64) {
	wind, pressure = 0, 1013.25
	if wx, err := h.store.LatestWeatherReading(ctx, st.ID); err == nil {
		wind = wx.WindSpeedKmh
		pressure = wx.PressureHPa
	}
	return wind, pressure
}

// RegisterForecastRoutes registers forecast endpoints with the Huma API.
func RegisterForecastRoutes(api huma.API, h *ForecastsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "tide-forecast",
		Method:      http.MethodGet,
		Path:        "/api/v1/forecasts/tide",
		Summary:     "Tide forecast",
		Description: "Returns the harmonic tide prediction for a station.",
		Tags:        []string{"forecasts"},
		Errors:      []int{http.StatusNotFound},
	}, h.TideForecast)

	huma.Register(api, huma.Operation{
		OperationID: "surge-forecast",
		Method:      http.MethodGet,
		Path:        "/api/v1/forecasts/surge",
		Summary:     "Storm surge forecast",
		Description: "Returns an hourly storm surge forecast seeded from the latest observation.",
		Tags:        []string{"forecasts"},
		Errors:      []int{http.StatusNotFound},
	}, h.SurgeForecast)

	huma.Register(api, huma.Operation{
		OperationID: "wave-forecast",
		Method:      http.MethodGet,
		Path:        "/api/v1/forecasts/wave",
		Summary:     "Wave forecast",
		Description: "Returns an hourly wave forecast seeded from the latest observed wind.",
		Tags:        []string{"forecasts"},
		Errors:      []int{http.StatusNotFound},
	}, h.WaveForecast)

	huma.Register(api, huma.Operation{
		OperationID: "flood-risk",
		Method:      http.MethodGet,
		Path:        "/api/v1/forecasts/flood-risk",
		Summary:     "Flood risk assessment",
		Description: "Assesses flood risk from the station's latest readings.",
		Tags:        []string{"forecasts"},
		Errors:      []int{http.StatusNotFound},
	}, h.FloodRisk)
}
