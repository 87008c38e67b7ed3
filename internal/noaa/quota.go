package noaa

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyQuotaReached is returned when the daily API call quota has been
// exhausted.
var ErrDailyQuotaReached = errors.New("daily API quota reached")

// QuotaLimiter controls API call rate and daily usage. It uses a token
// bucket for per-second limiting and a per-UTC-day counter for the daily
// quota, resetting at midnight UTC.
type QuotaLimiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	day      string
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// QuotaOption configures the QuotaLimiter.
type QuotaOption func(*QuotaLimiter)

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) QuotaOption {
	return func(q *QuotaLimiter) {
		q.nowFunc = f
	}
}

// NewQuotaLimiter creates a limiter with the given per-second rate, burst
// size, and daily quota.
func NewQuotaLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...QuotaOption,
) *QuotaLimiter {
	q := &QuotaLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.day = q.nowFunc().UTC().Format(time.DateOnly)
	return q
}

// Wait blocks until the limiter allows the call, or the context is canceled.
// Returns ErrDailyQuotaReached if the daily quota has been exhausted.
func (q *QuotaLimiter) Wait(ctx context.Context) error {
	q.rollover()

	if q.daily.Load() >= q.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyQuotaReached, q.daily.Load(), q.maxDaily)
	}

	if err := q.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	q.daily.Add(1)
	return nil
}

// DailyCount returns the call count for the current UTC day.
func (q *QuotaLimiter) DailyCount() int64 {
	return q.daily.Load()
}

// Remaining returns the number of API calls left for the current UTC day.
func (q *QuotaLimiter) Remaining() int64 {
	remaining := q.maxDaily - q.daily.Load()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// rollover resets the daily counter when the UTC day changes.
func (q *QuotaLimiter) rollover() {
	q.mu.Lock()
	defer q.mu.Unlock()

	day := q.nowFunc().UTC().Format(time.DateOnly)
	if day != q.day {
		q.daily.Store(0)
		q.day = day
	}
}
