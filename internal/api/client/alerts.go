package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/coastalops/ctas/pkg/types"
)

// AlertFilter narrows an alert listing. Zero values are omitted from the
// query string.
type AlertFilter struct {
	Type       string
	Severity   string
	ActiveOnly bool
	Station    string
	SinceHours int
	Lat        float64
	Lon        float64
	RadiusKm   float64
	Limit      int
	Offset     int
	OrderBy    string
}

func (f AlertFilter) encode() string {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Severity != "" {
		q.Set("severity", f.Severity)
	}
	if f.ActiveOnly {
		q.Set("active", "true")
	}
	if f.Station != "" {
		q.Set("station", f.Station)
	}
	if f.SinceHours > 0 {
		q.Set("since_hours", strconv.Itoa(f.SinceHours))
	}
	if f.RadiusKm > 0 {
		q.Set("lat", strconv.FormatFloat(f.Lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(f.Lon, 'f', -1, 64))
		q.Set("radius_km", strconv.FormatFloat(f.RadiusKm, 'f', -1, 64))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.OrderBy != "" {
		q.Set("order_by", f.OrderBy)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// AlertListItem is an alert annotated with its distance from the search
// point when the listing used a radius filter.
type AlertListItem struct {
	domain.Alert
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// AlertList is a page of alerts.
type AlertList struct {
	Alerts []AlertListItem `json:"alerts"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// AlertDetail is a single alert with its notification delivery counts.
type AlertDetail struct {
	Alert         domain.Alert                      `json:"alert"`
	Notifications map[domain.NotificationStatus]int `json:"notifications"`
}

// ListAlerts returns alerts matching the filter.
func (c *Client) ListAlerts(ctx context.Context, filter AlertFilter) (*AlertList, error) {
	var list AlertList
	if err := c.get(ctx, "/api/v1/alerts"+filter.encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetAlert returns a single alert with its notification summary.
func (c *Client) GetAlert(ctx context.Context, id string) (*AlertDetail, error) {
	var detail AlertDetail
	if err := c.get(ctx, "/api/v1/alerts/"+id, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListActiveAlerts returns all unexpired, unresolved alerts.
func (c *Client) ListActiveAlerts(ctx context.Context) ([]domain.Alert, error) {
	var alerts []domain.Alert
	if err := c.get(ctx, "/api/v1/alerts/active", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// GetAlertStats returns aggregate alert counts for the past sinceHours.
func (c *Client) GetAlertStats(ctx context.Context, sinceHours int) (*domain.AlertStats, error) {
	path := "/api/v1/alerts/stats"
	if sinceHours > 0 {
		path += "?since_hours=" + strconv.Itoa(sinceHours)
	}
	var stats domain.AlertStats
	if err := c.get(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AcknowledgeAlert marks an alert as acknowledged by an operator.
func (c *Client) AcknowledgeAlert(ctx context.Context, id, by string) error {
	body := map[string]string{"by": by}
	return c.post(ctx, fmt.Sprintf("/api/v1/alerts/%s/ack", id), body, nil)
}

// ResolveAlert resolves an alert with optional notes.
func (c *Client) ResolveAlert(ctx context.Context, id, by, notes string) error {
	body := map[string]string{"by": by}
	if notes != "" {
		body["notes"] = notes
	}
	return c.post(ctx, fmt.Sprintf("/api/v1/alerts/%s/resolve", id), body, nil)
}
