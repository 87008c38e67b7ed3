package client

import (
	"context"
	"fmt"

	domain "github.com/coastalops/ctas/pkg/types"
)

// CollectResult reports the outcome of a manually triggered collection.
type CollectResult struct {
	Status   string `json:"status"`
	Readings int    `json:"readings"`
}

// CheckResult reports the outcome of a manual re-evaluation.
type CheckResult struct {
	Status   string `json:"status"`
	Stations int    `json:"stations"`
}

// TriggerCollect runs a full collection cycle outside the schedule.
func (c *Client) TriggerCollect(ctx context.Context) (*CollectResult, error) {
	var result CollectResult
	if err := c.post(ctx, "/api/v1/collect", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TriggerCheck re-evaluates alert conditions against stored readings.
// With stationID empty, every active station is checked.
func (c *Client) TriggerCheck(ctx context.Context, stationID string) (*CheckResult, error) {
	body := map[string]string{}
	if stationID != "" {
		body["station_id"] = stationID
	}
	var result CheckResult
	if err := c.post(ctx, "/api/v1/check", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for a specific scheduled job.
func (c *Client) GetJobHistory(ctx context.Context, jobName string) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, fmt.Sprintf("/api/v1/jobs/%s", jobName), &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetSystemState returns the aggregate system counts snapshot.
func (c *Client) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/system/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
