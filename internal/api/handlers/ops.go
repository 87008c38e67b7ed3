package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/coastalops/ctas/pkg/types"
)

// Collector defines the interface for triggering a collection cycle.
type Collector interface {
	RunCollection(ctx context.Context) (int, error)
}

// Evaluator defines the interface for on-demand threat evaluation.
type Evaluator interface {
	EvaluateStation(ctx context.Context, st *domain.Station, bypassDedup bool) error
}

// OpsStore defines the store methods the ops handlers need.
type OpsStore interface {
	ListStations(ctx context.Context, activeOnly bool) ([]domain.Station, error)
	GetStation(ctx context.Context, id string) (*domain.Station, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	GetSystemState(ctx context.Context) (*domain.SystemState, error)
}

// OpsHandler handles manual triggers and operational visibility.
type OpsHandler struct {
	store     OpsStore
	collector Collector
	evaluator Evaluator
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(s OpsStore, c Collector, e Evaluator) *OpsHandler {
	return &OpsHandler{store: s, collector: c, evaluator: e}
}

// --- Input/Output types ---

// CollectOutput is the response body for the collect endpoint.
type CollectOutput struct {
	Body struct {
		Status   string `json:"status" example:"collection completed"`
		Readings int    `json:"readings" doc:"Readings stored during the cycle"`
	}
}

// CheckInput is the input for the manual evaluation endpoint.
type CheckInput struct {
	Body struct {
		StationID string `json:"station_id,omitempty" doc:"Limit the check to one station"`
	}
}

// CheckOutput is the response body for the manual evaluation endpoint.
type CheckOutput struct {
	Body struct {
		Status   string `json:"status" example:"check completed"`
		Stations int    `json:"stations" doc:"Stations evaluated"`
	}
}

// ListJobsOutput is the response body for listing the latest job runs.
type ListJobsOutput struct {
	Body []domain.JobRun
}

// GetJobHistoryInput is the request path for job history.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name (e.g. collection, retry_sweep)"`
}

// GetJobHistoryOutput is the response body for a single job's history.
type GetJobHistoryOutput struct {
	Body []domain.JobRun
}

// SystemStateOutput is the response for GET /api/v1/system/state.
type SystemStateOutput struct {
	Body *domain.SystemState
}

const defaultJobHistoryLimit = 20

// --- Handlers ---

// Collect triggers a full collection cycle outside the schedule.
func (h *OpsHandler) Collect(ctx context.Context, _ *struct{}) (*CollectOutput, error) {
	readings, err := h.collector.RunCollection(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("collection failed: " + err.Error())
	}

	resp := &CollectOutput{}
	resp.Body.Status = "collection completed"
	resp.Body.Readings = readings
	return resp, nil
}

// Check re-evaluates alert conditions against the stored readings without
// waiting for the next cycle. Deduplication is bypassed: anything that
// currently triggers is raised, refreshing a still-active alert and
// notifying its subscribers again.
func (h *OpsHandler) Check(ctx context.Context, input *CheckInput) (*CheckOutput, error) {
	var stations []domain.Station

	if input.Body.StationID != "" {
		st, err := h.store.GetStation(ctx, input.Body.StationID)
		if err != nil {
			return nil, huma.Error404NotFound("station not found")
		}
		stations = []domain.Station{*st}
	} else {
		var err error
		stations, err = h.store.ListStations(ctx, true)
		if err != nil {
			return nil, huma.Error500InternalServerError("listing stations failed: " + err.Error())
		}
	}

	for i := range stations {
		if err := h.evaluator.EvaluateStation(ctx, &stations[i], true); err != nil {
			return nil, huma.Error500InternalServerError("evaluating station " + stations[i].Code + ": " + err.Error())
		}
	}

	resp := &CheckOutput{}
	resp.Body.Status = "check completed"
	resp.Body.Stations = len(stations)
	return resp, nil
}

// ListJobs returns the most recent run for each distinct scheduler job.
func (h *OpsHandler) ListJobs(ctx context.Context, _ *struct{}) (*ListJobsOutput, error) {
	runs, err := h.store.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return &ListJobsOutput{Body: runs}, nil
}

// GetJobHistory returns the run history for a specific scheduler job.
func (h *OpsHandler) GetJobHistory(
	ctx context.Context,
	input *GetJobHistoryInput,
) (*GetJobHistoryOutput, error) {
	runs, err := h.store.ListJobRuns(ctx, input.JobName, defaultJobHistoryLimit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return &GetJobHistoryOutput{Body: runs}, nil
}

// GetSystemState returns current aggregate system counts from the DB view.
func (h *OpsHandler) GetSystemState(
	ctx context.Context,
	_ *struct{},
) (*SystemStateOutput, error) {
	state, err := h.store.GetSystemState(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to get system state")
	}
	return &SystemStateOutput{Body: state}, nil
}

// RegisterOpsRoutes registers operational endpoints with the Huma API.
func RegisterOpsRoutes(api huma.API, h *OpsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-collect",
		Method:      http.MethodPost,
		Path:        "/api/v1/collect",
		Summary:     "Trigger a collection cycle",
		Description: "Fetches readings for every active station, evaluates alert conditions, and delivers due notifications.",
		Tags:        []string{"ops"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Collect)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/check",
		Summary:     "Re-evaluate alert conditions",
		Description: "Evaluates stored readings without a new collection, bypassing alert deduplication; still-active alerts are refreshed and re-sent.",
		Tags:        []string{"ops"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Check)

	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List latest scheduler job runs",
		Description: "Returns the most recent run record for each distinct scheduled job.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Get scheduler job history",
		Description: "Returns the run history for a specific scheduled job (newest first).",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetJobHistory)

	huma.Register(api, huma.Operation{
		OperationID: "get-system-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/system/state",
		Summary:     "Get system state",
		Description: "Returns aggregate system counts from the DB view.",
		Tags:        []string{"system"},
	}, h.GetSystemState)
}
