package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/coastalops/ctas/internal/store"
)

// Job names recorded in job_runs and scheduler_locks.
const (
	JobCollection = "collection"
	JobRetrySweep = "retry_sweep"
	JobExpiry     = "alert_expiry"
)

// Runs older than this with no completion are assumed crashed.
const staleRunThreshold = time.Hour

// Scheduler runs the engine's periodic jobs. Each job takes an advisory
// lock so concurrent instances do not double-run, and records a job_runs
// row for observability.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	holder string
	log    *slog.Logger
}

// NewScheduler creates a Scheduler running collection, the notification
// retry sweep, and alert expiry at the given intervals.
func NewScheduler(
	eng *Engine,
	s store.Store,
	collectionInterval time.Duration,
	retryInterval time.Duration,
	expiryInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sch := &Scheduler{
		cron:   c,
		engine: eng,
		store:  s,
		holder: uuid.NewString(),
		log:    log,
	}

	jobs := []struct {
		name     string
		interval time.Duration
		run      func(context.Context) (int, error)
	}{
		{JobCollection, collectionInterval, eng.RunCollection},
		{JobRetrySweep, retryInterval, eng.RunRetrySweep},
		{JobExpiry, expiryInterval, eng.RunExpiry},
	}

	for _, job := range jobs {
		if _, err := c.AddFunc(
			"@every "+job.interval.String(),
			func() { sch.runJob(job.name, job.interval, job.run) },
		); err != nil {
			return nil, fmt.Errorf("registering %s job: %w", job.name, err)
		}
	}

	return sch, nil
}

// Start recovers stale runs from a previous crash, then begins running
// scheduled jobs.
func (s *Scheduler) Start(ctx context.Context) error {
	recovered, err := s.store.RecoverStaleJobRuns(ctx, staleRunThreshold)
	if err != nil {
		return fmt.Errorf("recovering stale job runs: %w", err)
	}
	if recovered > 0 {
		s.log.Warn("recovered stale job runs", "count", recovered)
	}

	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// runJob wraps one job execution with the scheduler lock and a job_runs
// record. The lock TTL is twice the interval so a crashed holder expires.
func (s *Scheduler) runJob(name string, interval time.Duration, run func(context.Context) (int, error)) {
	ctx := context.Background()

	ok, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, 2*interval)
	if err != nil {
		s.log.Error("acquiring scheduler lock failed", "job", name, "error", err)
		return
	}
	if !ok {
		s.log.Debug("scheduler lock held elsewhere, skipping", "job", name)
		return
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(ctx, name, s.holder); err != nil {
			s.log.Error("releasing scheduler lock failed", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Error("recording job run failed", "job", name, "error", err)
		return
	}

	s.log.Info("scheduled job starting", "job", name, "run_id", runID)

	rows, runErr := run(ctx)

	status, errText := "success", ""
	if runErr != nil {
		status, errText = "failed", runErr.Error()
		s.log.Error("scheduled job failed", "job", name, "error", runErr)
	}

	if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		s.log.Error("completing job run failed", "job", name, "error", err)
	}
}
