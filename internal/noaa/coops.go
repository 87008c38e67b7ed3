package noaa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coastalops/ctas/internal/metrics"
)

const (
	defaultBaseURL     = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	defaultApplication = "ctas"
	defaultDatum       = "MLLW"

	// CO-OPS timestamps are GMT with minute precision.
	coopsTimeLayout = "2006-01-02 15:04"
	coopsDateFormat = "20060102 15:04"

	// Prediction requests reach back half a tidal day so the extremes
	// bracket recent observations as well as the forecast window.
	predictionLookback = 12 * time.Hour
)

// COOPSClient implements Client against the NOAA CO-OPS data API.
type COOPSClient struct {
	baseURL     string
	application string
	datum       string
	client      *http.Client
	quota       *QuotaLimiter
}

// COOPSOption configures the COOPSClient.
type COOPSOption func(*COOPSClient)

// WithBaseURL overrides the default CO-OPS endpoint.
func WithBaseURL(u string) COOPSOption {
	return func(c *COOPSClient) {
		c.baseURL = u
	}
}

// WithDatum overrides the default MLLW datum.
func WithDatum(d string) COOPSOption {
	return func(c *COOPSClient) {
		c.datum = d
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) COOPSOption {
	return func(c *COOPSClient) {
		c.client = hc
	}
}

// WithQuotaLimiter injects a limiter that controls per-second and daily
// API call quotas. When set, every request goes through Wait() first.
func WithQuotaLimiter(q *QuotaLimiter) COOPSOption {
	return func(c *COOPSClient) {
		c.quota = q
	}
}

// NewCOOPSClient creates a NOAA CO-OPS data API client.
func NewCOOPSClient(opts ...COOPSOption) *COOPSClient {
	c := &COOPSClient{
		baseURL:     defaultBaseURL,
		application: defaultApplication,
		datum:       defaultDatum,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CO-OPS error payloads arrive with HTTP 200 and an error object in the
// body, so both paths have to be checked.
type coopsError struct {
	Message string `json:"message"`
}

type coopsObservation struct {
	Time    string `json:"t"`
	Value   string `json:"v"`
	Quality string `json:"q"`
}

type coopsPrediction struct {
	Time  string `json:"t"`
	Value string `json:"v"`
	Type  string `json:"type"`
}

type coopsResponse struct {
	Data        []coopsObservation `json:"data"`
	Predictions []coopsPrediction  `json:"predictions"`
	Error       *coopsError        `json:"error"`
}

// WaterLevels implements Client.WaterLevels using the water_level product.
func (c *COOPSClient) WaterLevels(
	ctx context.Context,
	station string,
	window time.Duration,
) ([]WaterLevel, error) {
	end := time.Now().UTC()
	begin := end.Add(-window)

	params := c.baseParams(station)
	params.Set("product", "water_level")
	params.Set("begin_date", begin.Format(coopsDateFormat))
	params.Set("end_date", end.Format(coopsDateFormat))

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	levels := make([]WaterLevel, 0, len(resp.Data))
	for _, obs := range resp.Data {
		t, err := time.ParseInLocation(coopsTimeLayout, obs.Time, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing observation time %q: %w", obs.Time, err)
		}
		v, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			// Stations emit empty values during sensor outages.
			continue
		}
		levels = append(levels, WaterLevel{
			Time:    t,
			LevelM:  v,
			Quality: obs.Quality,
			Station: station,
		})
	}
	return levels, nil
}

// Predictions implements Client.Predictions using the predictions product
// with hilo interval.
func (c *COOPSClient) Predictions(
	ctx context.Context,
	station string,
	window time.Duration,
) ([]TidePrediction, error) {
	now := time.Now().UTC()
	begin := now.Add(-predictionLookback)
	end := now.Add(window)

	params := c.baseParams(station)
	params.Set("product", "predictions")
	params.Set("interval", "hilo")
	params.Set("begin_date", begin.Format(coopsDateFormat))
	params.Set("end_date", end.Format(coopsDateFormat))

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	preds := make([]TidePrediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		t, err := time.ParseInLocation(coopsTimeLayout, p.Time, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing prediction time %q: %w", p.Time, err)
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing prediction value %q: %w", p.Value, err)
		}
		preds = append(preds, TidePrediction{
			Time:    t,
			LevelM:  v,
			Type:    p.Type,
			Station: station,
		})
	}
	return preds, nil
}

func (c *COOPSClient) baseParams(station string) url.Values {
	params := url.Values{}
	params.Set("station", station)
	params.Set("application", c.application)
	params.Set("datum", c.datum)
	params.Set("units", "metric")
	params.Set("time_zone", "gmt")
	params.Set("format", "json")
	return params
}

func (c *COOPSClient) get(ctx context.Context, params url.Values) (*coopsResponse, error) {
	if c.quota != nil {
		if err := c.quota.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyQuotaReached) {
				metrics.NOAADailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("quota: %w", err)
		}
		metrics.NOAAAPICallsTotal.Inc()
		metrics.NOAADailyUsage.Set(float64(c.quota.DailyCount()))
	}

	u := c.baseURL + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing CO-OPS request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"CO-OPS API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var apiResp coopsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing CO-OPS response: %w", err)
	}
	if apiResp.Error != nil {
		return nil, fmt.Errorf("CO-OPS API error: %s", apiResp.Error.Message)
	}
	return &apiResp, nil
}
