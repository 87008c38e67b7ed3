package client

import (
	"context"
	"fmt"

	domain "github.com/coastalops/ctas/pkg/types"
)

// stationRequest contains only the fields the API accepts for create/update.
type stationRequest struct {
	Code            string             `json:"code,omitempty"`
	Name            string             `json:"name,omitempty"`
	Type            domain.StationType `json:"type,omitempty"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	MeasuresTide    bool               `json:"measures_tide"`
	MeasuresWeather bool               `json:"measures_weather"`
	MeasuresWaves   bool               `json:"measures_waves"`
	Active          bool               `json:"active"`
}

// StationReadings holds the latest reading of each kind for a station.
// Kinds the station does not measure are nil.
type StationReadings struct {
	Tide    *domain.TideReading    `json:"tide"`
	Weather *domain.WeatherReading `json:"weather"`
	Wave    *domain.WaveReading    `json:"wave"`
}

// ListStations returns all stations, optionally active ones only.
func (c *Client) ListStations(ctx context.Context, activeOnly bool) ([]domain.Station, error) {
	path := "/api/v1/stations"
	if activeOnly {
		path += "?active=true"
	}
	var stations []domain.Station
	if err := c.get(ctx, path, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// GetStation returns a single station by ID.
func (c *Client) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	var st domain.Station
	if err := c.get(ctx, "/api/v1/stations/"+id, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// CreateStation registers a new station.
func (c *Client) CreateStation(ctx context.Context, st *domain.Station) (*domain.Station, error) {
	var created domain.Station
	req := stationRequest{
		Code:            st.Code,
		Name:            st.Name,
		Type:            st.Type,
		Latitude:        st.Latitude,
		Longitude:       st.Longitude,
		MeasuresTide:    st.MeasuresTide,
		MeasuresWeather: st.MeasuresWeather,
		MeasuresWaves:   st.MeasuresWaves,
		Active:          st.Active,
	}
	if err := c.post(ctx, "/api/v1/stations", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStation updates an existing station.
func (c *Client) UpdateStation(ctx context.Context, st *domain.Station) (*domain.Station, error) {
	var updated domain.Station
	req := stationRequest{
		Code:            st.Code,
		Name:            st.Name,
		Type:            st.Type,
		Latitude:        st.Latitude,
		Longitude:       st.Longitude,
		MeasuresTide:    st.MeasuresTide,
		MeasuresWeather: st.MeasuresWeather,
		MeasuresWaves:   st.MeasuresWaves,
		Active:          st.Active,
	}
	if err := c.put(ctx, "/api/v1/stations/"+st.ID, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetStationActive enables or disables a station.
func (c *Client) SetStationActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, fmt.Sprintf("/api/v1/stations/%s/active", id), body, nil)
}

// DeleteStation deletes a station and its readings.
func (c *Client) DeleteStation(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/stations/"+id, nil)
}

// GetStationReadings returns the latest reading of each kind for a station.
func (c *Client) GetStationReadings(ctx context.Context, id string) (*StationReadings, error) {
	var readings StationReadings
	if err := c.get(ctx, fmt.Sprintf("/api/v1/stations/%s/readings", id), &readings); err != nil {
		return nil, err
	}
	return &readings, nil
}

// GetTideHistory returns tide readings for a station over the past hours.
func (c *Client) GetTideHistory(ctx context.Context, id string, hours int) ([]domain.TideReading, error) {
	var readings []domain.TideReading
	path := fmt.Sprintf("/api/v1/stations/%s/tides?hours=%d", id, hours)
	if err := c.get(ctx, path, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

// GetWeatherHistory returns weather readings for a station over the past hours.
func (c *Client) GetWeatherHistory(ctx context.Context, id string, hours int) ([]domain.WeatherReading, error) {
	var readings []domain.WeatherReading
	path := fmt.Sprintf("/api/v1/stations/%s/weather?hours=%d", id, hours)
	if err := c.get(ctx, path, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}
