package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coastalops/ctas/internal/metrics"
	"github.com/coastalops/ctas/internal/notify"
	"github.com/coastalops/ctas/pkg/geo"
	domain "github.com/coastalops/ctas/pkg/types"
)

const (
	sweepBatchSize = 200

	// Exponential backoff doubles per attempt; past this many doublings
	// the shift would overflow, so the delay plateaus instead.
	maxBackoffShift = 16
)

// retryDelay returns the backoff before the next delivery attempt: base,
// 2x base, 4x base, capped at base << maxBackoffShift.
func retryDelay(base time.Duration, attempts int) time.Duration {
	if attempts > maxBackoffShift {
		attempts = maxBackoffShift
	}
	return base << attempts
}

// dispatchAlert enqueues one notification per (affected subscription,
// enabled channel). Delivery happens in the sweep.
func (eng *Engine) dispatchAlert(ctx context.Context, alert *domain.Alert) error {
	subs, err := eng.resolveSubscriptions(ctx, alert)
	if err != nil {
		return err
	}

	var enqueued int
	for i := range subs {
		sub := &subs[i]
		if !sub.Wants(alert.Type, alert.Severity) {
			continue
		}
		for _, ch := range sub.Channels {
			if _, ok := eng.notifiers[string(ch)]; !ok {
				continue
			}
			recipient := sub.Recipient(ch)
			if recipient == "" {
				continue
			}
			n := &domain.Notification{
				AlertID:        alert.ID,
				SubscriptionID: sub.ID,
				Channel:        ch,
				Recipient:      recipient,
				MaxAttempts:    eng.maxAttempts,
			}
			if err := eng.store.EnqueueNotification(ctx, n); err != nil {
				return fmt.Errorf("enqueueing %s notification for %s: %w", ch, sub.ID, err)
			}
			if n.ID != "" {
				enqueued++
			}
		}
	}

	eng.log.Info("alert dispatched",
		"alert_id", alert.ID,
		"subscriptions", len(subs),
		"notifications", enqueued,
	)
	return nil
}

// resolveSubscriptions finds the subscriptions inside the alert's affected
// area. System alerts have no geography and go to everyone.
func (eng *Engine) resolveSubscriptions(ctx context.Context, alert *domain.Alert) ([]domain.Subscription, error) {
	if alert.Type == domain.AlertSystem {
		subs, err := eng.store.ListSubscriptions(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("listing subscriptions: %w", err)
		}
		return subs, nil
	}

	center := geo.Point{Lat: alert.Latitude, Lon: alert.Longitude}
	box := geo.BoxAround(center, alert.RadiusKm)

	candidates, err := eng.store.ListSubscriptionCandidates(ctx, box)
	if err != nil {
		return nil, fmt.Errorf("listing subscription candidates: %w", err)
	}

	// The box over-selects near its corners; confirm with exact distance.
	subs := candidates[:0]
	for _, sub := range candidates {
		p := geo.Point{Lat: sub.Latitude, Lon: sub.Longitude}
		if geo.Within(center, p, alert.RadiusKm) {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

// RunRetrySweep delivers every due pending notification with bounded
// concurrency. Failures are rescheduled with exponential backoff until
// their attempts run out. Returns the number delivered.
func (eng *Engine) RunRetrySweep(ctx context.Context) (int, error) {
	due, err := eng.store.ListDueNotifications(ctx, sweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("listing due notifications: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	alerts := make(map[string]*domain.Alert)
	for i := range due {
		id := due[i].AlertID
		if _, ok := alerts[id]; ok {
			continue
		}
		a, err := eng.store.GetAlert(ctx, id)
		if err != nil {
			eng.log.Error("loading alert for notification", "alert_id", id, "error", err)
			continue
		}
		alerts[id] = a
	}

	var (
		mu   sync.Mutex
		sent int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.concurrency)

	for i := range due {
		n := &due[i]
		alert, ok := alerts[n.AlertID]
		if !ok {
			continue
		}
		g.Go(func() error {
			if eng.deliver(gctx, n, alert) {
				mu.Lock()
				sent++
				mu.Unlock()
			}
			return nil
		})
	}

	// Workers never return errors; the group exists for the limit and
	// context propagation.
	_ = g.Wait()

	return sent, ctx.Err()
}

// deliver sends one notification and records the outcome. Returns true on
// success.
func (eng *Engine) deliver(ctx context.Context, n *domain.Notification, alert *domain.Alert) bool {
	notifier, ok := eng.notifiers[string(n.Channel)]
	if !ok {
		// Channel was unconfigured after enqueue.
		if err := eng.store.MarkNotificationFailed(ctx, n.ID, "channel not configured"); err != nil {
			eng.log.Error("marking notification failed", "notification_id", n.ID, "error", err)
		}
		return false
	}

	if n.Attempts > 0 {
		metrics.NotificationRetriesTotal.Inc()
	}

	sendErr := notifier.Send(ctx, &notify.Message{
		Alert:     alert,
		Recipient: n.Recipient,
	})
	if sendErr == nil {
		if err := eng.store.MarkNotificationSent(ctx, n.ID); err != nil {
			eng.log.Error("marking notification sent", "notification_id", n.ID, "error", err)
			return false
		}
		metrics.NotificationsSentTotal.WithLabelValues(string(n.Channel)).Inc()
		return true
	}

	metrics.NotificationFailuresTotal.WithLabelValues(string(n.Channel)).Inc()
	eng.log.Warn("notification delivery failed",
		"notification_id", n.ID,
		"channel", n.Channel,
		"attempt", n.Attempts+1,
		"error", sendErr,
	)

	if n.Attempts+1 >= n.MaxAttempts {
		if err := eng.store.MarkNotificationFailed(ctx, n.ID, sendErr.Error()); err != nil {
			eng.log.Error("marking notification failed", "notification_id", n.ID, "error", err)
		}
		return false
	}

	next := eng.nowFunc().Add(retryDelay(eng.retryBackoff, n.Attempts))
	if err := eng.store.RescheduleNotification(ctx, n.ID, sendErr.Error(), next); err != nil {
		eng.log.Error("rescheduling notification", "notification_id", n.ID, "error", err)
	}
	return false
}

// RunExpiry deactivates alerts past their expiry and refreshes the active
// alert gauge.
func (eng *Engine) RunExpiry(ctx context.Context) (int, error) {
	n, err := eng.store.ExpireAlerts(ctx)
	if err != nil {
		return 0, fmt.Errorf("expiring alerts: %w", err)
	}
	if n > 0 {
		eng.log.Info("alerts expired", "count", n)
	}

	active, err := eng.store.ListActiveAlerts(ctx)
	if err != nil {
		return n, fmt.Errorf("listing active alerts: %w", err)
	}
	metrics.AlertsActive.Set(float64(len(active)))

	return n, nil
}
