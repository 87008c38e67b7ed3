package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coastalops/ctas/internal/metrics"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// The free forecast endpoint returns 3-hour steps, 8 per day.
	forecastStepsPerDay = 8
	maxForecastDays     = 5

	mpsToKmh           = 3.6
	defaultVisibilityM = 10000
)

// OpenWeatherClient implements Client against the OpenWeather data API.
type OpenWeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	nowFunc func() time.Time
}

// Option configures the OpenWeatherClient.
type Option func(*OpenWeatherClient)

// WithBaseURL overrides the default OpenWeather endpoint.
func WithBaseURL(u string) Option {
	return func(c *OpenWeatherClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *OpenWeatherClient) {
		c.client = hc
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *OpenWeatherClient) {
		c.nowFunc = f
	}
}

// NewOpenWeatherClient creates an OpenWeather API client.
func NewOpenWeatherClient(apiKey string, opts ...Option) *OpenWeatherClient {
	c := &OpenWeatherClient{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type owMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
	Pressure float64 `json:"pressure"`
}

type owWind struct {
	Speed float64 `json:"speed"` // m/s in metric units
	Deg   float64 `json:"deg"`
}

type owCondition struct {
	Description string `json:"description"`
}

type owRain struct {
	OneH   float64 `json:"1h"`
	ThreeH float64 `json:"3h"`
}

type owCurrentResponse struct {
	Main       owMain        `json:"main"`
	Wind       owWind        `json:"wind"`
	Weather    []owCondition `json:"weather"`
	Rain       *owRain       `json:"rain"`
	Visibility *float64      `json:"visibility"` // meters
	DT         int64         `json:"dt"`
}

type owForecastEntry struct {
	DT      int64         `json:"dt"`
	Main    owMain        `json:"main"`
	Wind    owWind        `json:"wind"`
	Weather []owCondition `json:"weather"`
	Rain    *owRain       `json:"rain"`
}

type owForecastResponse struct {
	List []owForecastEntry `json:"list"`
}

// Current implements Client.Current using the /weather endpoint.
func (c *OpenWeatherClient) Current(ctx context.Context, lat, lon float64) (*Observation, error) {
	body, err := c.get(ctx, "/weather", lat, lon, nil)
	if err != nil {
		return nil, err
	}

	var resp owCurrentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing weather response: %w", err)
	}

	obs := &Observation{
		Time:          c.nowFunc().UTC(),
		TemperatureC:  resp.Main.Temp,
		HumidityPct:   resp.Main.Humidity,
		PressureHPa:   resp.Main.Pressure,
		WindSpeedKmh:  resp.Wind.Speed * mpsToKmh,
		WindDirection: resp.Wind.Deg,
		VisibilityKm:  defaultVisibilityM / 1000,
	}
	if resp.Visibility != nil {
		obs.VisibilityKm = *resp.Visibility / 1000
	}
	if resp.Rain != nil {
		obs.Precipitation = resp.Rain.OneH
	}
	if len(resp.Weather) > 0 {
		obs.Condition = resp.Weather[0].Description
	}
	return obs, nil
}

// Forecast implements Client.Forecast using the /forecast endpoint.
func (c *OpenWeatherClient) Forecast(
	ctx context.Context,
	lat, lon float64,
	days int,
) ([]ForecastPoint, error) {
	if days <= 0 || days > maxForecastDays {
		days = maxForecastDays
	}

	extra := url.Values{}
	extra.Set("cnt", strconv.Itoa(days*forecastStepsPerDay))

	body, err := c.get(ctx, "/forecast", lat, lon, extra)
	if err != nil {
		return nil, err
	}

	var resp owForecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing forecast response: %w", err)
	}

	points := make([]ForecastPoint, 0, len(resp.List))
	for _, e := range resp.List {
		p := ForecastPoint{Observation{
			Time:          time.Unix(e.DT, 0).UTC(),
			TemperatureC:  e.Main.Temp,
			HumidityPct:   e.Main.Humidity,
			PressureHPa:   e.Main.Pressure,
			WindSpeedKmh:  e.Wind.Speed * mpsToKmh,
			WindDirection: e.Wind.Deg,
		}}
		if e.Rain != nil {
			p.Precipitation = e.Rain.ThreeH
		}
		if len(e.Weather) > 0 {
			p.Condition = e.Weather[0].Description
		}
		points = append(points, p)
	}
	return points, nil
}

func (c *OpenWeatherClient) get(
	ctx context.Context,
	path string,
	lat, lon float64,
	extra url.Values,
) ([]byte, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}

	u := c.baseURL + path + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	metrics.WeatherAPICallsTotal.Inc()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.WeatherAPIErrorsTotal.Inc()
		return nil, fmt.Errorf("executing weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.WeatherAPIErrorsTotal.Inc()
		return nil, fmt.Errorf(
			"weather API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}
	return body, nil
}
