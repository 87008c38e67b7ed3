package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/coastalops/ctas/internal/store"
	"github.com/coastalops/ctas/pkg/geo"
	domain "github.com/coastalops/ctas/pkg/types"
)

const (
	// defaultPageLimit mirrors the store's default page size so the
	// response can echo the limit actually applied.
	defaultPageLimit = 50

	// radiusFetchLimit bounds the candidate set pulled for a radius
	// search before exact-distance confirmation.
	radiusFetchLimit = 1000
)

// AlertsHandler handles alert query and lifecycle endpoints.
type AlertsHandler struct {
	store store.Store
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(s store.Store) *AlertsHandler {
	return &AlertsHandler{store: s}
}

// --- Input/Output types ---

// ListAlertsInput is the input for listing alerts with optional filters.
type ListAlertsInput struct {
	Type       string  `query:"type"        doc:"Filter by alert type"                   enum:"flood,tide,wave,storm,system,"`
	Severity   string  `query:"severity"    doc:"Filter by severity"                     enum:"low,medium,high,critical,"`
	Active     string  `query:"active"      doc:"Filter by active state"                 enum:"true,false,"`
	Station    string  `query:"station"     doc:"Filter by source station ID"`
	SinceHours int     `query:"since_hours" doc:"Only alerts issued in the last N hours"                                      minimum:"0" maximum:"8760"`
	Lat        float64 `query:"lat"         doc:"Center latitude for a radius search"                                         minimum:"-90" maximum:"90"`
	Lon        float64 `query:"lon"         doc:"Center longitude for a radius search"                                        minimum:"-180" maximum:"180"`
	RadiusKm   float64 `query:"radius_km"   doc:"Search radius in km (requires lat/lon)"                                      minimum:"0" maximum:"1000"`
	Limit      int     `query:"limit"       doc:"Number of results (default 50)"                                              minimum:"1" maximum:"500"`
	Offset     int     `query:"offset"      doc:"Pagination offset"                                                           minimum:"0"`
	OrderBy    string  `query:"order_by"    doc:"Sort field"                             enum:"issued_at,severity,"`
}

// AlertWithDistance is an alert annotated with its distance from a radius
// search center.
type AlertWithDistance struct {
	domain.Alert
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// ListAlertsOutput is the response for listing alerts.
type ListAlertsOutput struct {
	Body struct {
		Alerts []AlertWithDistance `json:"alerts"`
		Total  int                 `json:"total"`
		Limit  int                 `json:"limit"`
		Offset int                 `json:"offset"`
	}
}

// GetAlertInput is the input for getting a single alert.
type GetAlertInput struct {
	ID string `path:"id" doc:"Alert UUID"`
}

// GetAlertOutput is the response for getting a single alert, including its
// notification delivery summary.
type GetAlertOutput struct {
	Body struct {
		Alert         domain.Alert                      `json:"alert"`
		Notifications map[domain.NotificationStatus]int `json:"notifications"`
	}
}

// ActiveAlertsOutput is the response for listing active alerts.
type ActiveAlertsOutput struct {
	Body []domain.Alert
}

// AlertStatsInput is the input for the alert stats endpoint.
type AlertStatsInput struct {
	SinceHours int `query:"since_hours" doc:"Reporting window in hours (default 24)" minimum:"0" maximum:"8760"`
}

// AlertStatsOutput is the response for the alert stats endpoint.
type AlertStatsOutput struct {
	Body *domain.AlertStats
}

// AcknowledgeAlertInput is the input for acknowledging an alert.
type AcknowledgeAlertInput struct {
	ID   string `path:"id" doc:"Alert UUID"`
	Body struct {
		By string `json:"by" doc:"Operator acknowledging the alert" minLength:"1"`
	}
}

// ResolveAlertInput is the input for resolving an alert.
type ResolveAlertInput struct {
	ID   string `path:"id" doc:"Alert UUID"`
	Body struct {
		By    string `json:"by"              doc:"Operator resolving the alert" minLength:"1"`
		Notes string `json:"notes,omitempty" doc:"Resolution notes"`
	}
}

// AlertActionOutput is the response for alert lifecycle actions.
type AlertActionOutput struct {
	Body struct {
		Status string `json:"status" example:"acknowledged"`
	}
}

// --- Handlers ---

// ListAlerts returns alerts with optional type, severity, station, time,
// and location filters. With lat/lon/radius_km set, results are confirmed
// by exact distance and annotated with distance_km.
func (h *AlertsHandler) ListAlerts(
	ctx context.Context,
	input *ListAlertsInput,
) (*ListAlertsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}

	q := &store.AlertQuery{
		OrderBy: input.OrderBy,
	}

	if input.Type != "" {
		q.Type = &input.Type
	}

	if input.Severity != "" {
		q.Severity = &input.Severity
	}

	if input.Active != "" {
		active := input.Active == "true"
		q.Active = &active
	}

	if input.Station != "" {
		q.Station = &input.Station
	}

	if input.SinceHours != 0 {
		since := time.Now().Add(-time.Duration(input.SinceHours) * time.Hour)
		q.Since = &since
	}

	var center *geo.Point
	if input.RadiusKm > 0 {
		center = &geo.Point{Lat: input.Lat, Lon: input.Lon}
		box := geo.BoxAround(*center, input.RadiusKm)
		q.Box = &box
		// The box over-selects near its corners, so distance confirmation
		// and pagination happen here on the full candidate set.
		q.Limit = radiusFetchLimit
	} else {
		q.Limit = limit
		q.Offset = input.Offset
	}

	alerts, total, err := h.store.ListAlerts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("alert query failed: " + err.Error())
	}

	resp := &ListAlertsOutput{}

	if center != nil {
		matched := make([]AlertWithDistance, 0, len(alerts))
		for _, a := range alerts {
			d := geo.DistanceKm(*center, geo.Point{Lat: a.Latitude, Lon: a.Longitude})
			if d > input.RadiusKm {
				continue
			}
			matched = append(matched, AlertWithDistance{Alert: a, DistanceKm: &d})
		}
		total = len(matched)

		start := min(input.Offset, total)
		end := min(start+limit, total)
		resp.Body.Alerts = matched[start:end]
	} else {
		out := make([]AlertWithDistance, 0, len(alerts))
		for _, a := range alerts {
			out = append(out, AlertWithDistance{Alert: a})
		}
		resp.Body.Alerts = out
	}

	resp.Body.Total = total
	resp.Body.Limit = limit
	resp.Body.Offset = input.Offset

	return resp, nil
}

// GetAlert returns a single alert with its notification delivery counts.
func (h *AlertsHandler) GetAlert(
	ctx context.Context,
	input *GetAlertInput,
) (*GetAlertOutput, error) {
	alert, err := h.store.GetAlert(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("alert not found")
	}

	summary, err := h.store.NotificationSummary(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("notification summary failed: " + err.Error())
	}

	resp := &GetAlertOutput{}
	resp.Body.Alert = *alert
	resp.Body.Notifications = summary
	return resp, nil
}

// ActiveAlerts returns all currently active alerts, most severe first.
func (h *AlertsHandler) ActiveAlerts(
	ctx context.Context,
	_ *struct{},
) (*ActiveAlertsOutput, error) {
	alerts, err := h.store.ListActiveAlerts(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing active alerts failed: " + err.Error())
	}

	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return &ActiveAlertsOutput{Body: alerts}, nil
}

// AlertStats returns alert volume aggregates over the reporting window.
func (h *AlertsHandler) AlertStats(
	ctx context.Context,
	input *AlertStatsInput,
) (*AlertStatsOutput, error) {
	hours := input.SinceHours
	if hours == 0 {
		hours = 24
	}

	stats, err := h.store.GetAlertStats(ctx, time.Now().Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		return nil, huma.Error500InternalServerError("alert stats failed: " + err.Error())
	}

	return &AlertStatsOutput{Body: stats}, nil
}

// AcknowledgeAlert marks an alert as acknowledged by an operator.
func (h *AlertsHandler) AcknowledgeAlert(
	ctx context.Context,
	input *AcknowledgeAlertInput,
) (*AlertActionOutput, error) {
	if err := h.store.AcknowledgeAlert(ctx, input.ID, input.Body.By); err != nil {
		return nil, huma.Error500InternalServerError("acknowledging alert failed: " + err.Error())
	}

	resp := &AlertActionOutput{}
	resp.Body.Status = "acknowledged"
	return resp, nil
}

// ResolveAlert deactivates an alert and records who resolved it.
func (h *AlertsHandler) ResolveAlert(
	ctx context.Context,
	input *ResolveAlertInput,
) (*AlertActionOutput, error) {
	if err := h.store.ResolveAlert(ctx, input.ID, input.Body.By, input.Body.Notes); err != nil {
		return nil, huma.Error500InternalServerError("resolving alert failed: " + err.Error())
	}

	resp := &AlertActionOutput{}
	resp.Body.Status = "resolved"
	return resp, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List alerts",
		Description: "Returns alerts with optional type, severity, station, time, and location filters.",
		Tags:        []string{"alerts"},
	}, h.ListAlerts)

	huma.Register(api, huma.Operation{
		OperationID: "list-active-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/active",
		Summary:     "List active alerts",
		Description: "Returns all currently active alerts, most severe first.",
		Tags:        []string{"alerts"},
	}, h.ActiveAlerts)

	huma.Register(api, huma.Operation{
		OperationID: "alert-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/stats",
		Summary:     "Alert statistics",
		Description: "Returns alert volume by type and severity over the reporting window.",
		Tags:        []string{"alerts"},
	}, h.AlertStats)

	huma.Register(api, huma.Operation{
		OperationID: "get-alert",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Get an alert by ID",
		Description: "Returns a single alert with its notification delivery summary.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAlert)

	huma.Register(api, huma.Operation{
		OperationID: "acknowledge-alert",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/ack",
		Summary:     "Acknowledge an alert",
		Description: "Marks an alert as acknowledged by an operator.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.AcknowledgeAlert)

	huma.Register(api, huma.Operation{
		OperationID: "resolve-alert",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/{id}/resolve",
		Summary:     "Resolve an alert",
		Description: "Deactivates an alert and records who resolved it.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ResolveAlert)
}
