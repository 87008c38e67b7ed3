package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coastalops/ctas/internal/notify"
	notifyMocks "github.com/coastalops/ctas/internal/notify/mocks"
	storeMocks "github.com/coastalops/ctas/internal/store/mocks"
	domain "github.com/coastalops/ctas/pkg/types"
)

func sendTo(recipient string) interface{} {
	return mock.MatchedBy(func(m *notify.Message) bool {
		return m.Recipient == recipient
	})
}

func TestRunRetrySweep_NoDueNotifications(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).Return(nil, nil)

	eng := newTestEngine(ms, nil, nil, nil)
	sent, err := eng.RunRetrySweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestRunRetrySweep_MixedOutcomes(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	due := []domain.Notification{
		{ID: "ntf-ok", AlertID: "a1", Channel: domain.ChannelEmail, Recipient: "ok@example.com", Attempts: 0, MaxAttempts: 3},
		{ID: "ntf-exhausted", AlertID: "a1", Channel: domain.ChannelEmail, Recipient: "gone@example.com", Attempts: 2, MaxAttempts: 3},
		{ID: "ntf-retry", AlertID: "a1", Channel: domain.ChannelEmail, Recipient: "later@example.com", Attempts: 1, MaxAttempts: 3},
		{ID: "ntf-nochan", AlertID: "a1", Channel: domain.ChannelSMS, Recipient: "+15550100", Attempts: 0, MaxAttempts: 3},
	}
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).Return(due, nil)

	alert := &domain.Alert{
		ID:       "a1",
		Type:     domain.AlertTide,
		Severity: domain.SeverityHigh,
		Title:    "High tide warning",
	}
	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(alert, nil).Once()

	mn := notifyMocks.NewMockNotifier(t)
	mn.EXPECT().Channel().Return(domain.ChannelEmail).Maybe()
	mn.EXPECT().Send(mock.Anything, sendTo("ok@example.com")).Return(nil).Once()
	mn.EXPECT().Send(mock.Anything, sendTo("gone@example.com")).
		Return(errors.New("smtp timeout")).Once()
	mn.EXPECT().Send(mock.Anything, sendTo("later@example.com")).
		Return(errors.New("smtp timeout")).Once()

	ms.EXPECT().MarkNotificationSent(mock.Anything, "ntf-ok").Return(nil).Once()
	// Third failed attempt of three exhausts the stream.
	ms.EXPECT().MarkNotificationFailed(mock.Anything, "ntf-exhausted", "smtp timeout").
		Return(nil).Once()
	// Second attempt reschedules with doubled backoff.
	ms.EXPECT().RescheduleNotification(mock.Anything, "ntf-retry", "smtp timeout", testNow.Add(2*defaultRetryBackoff)).
		Return(nil).Once()
	// No SMS notifier is configured.
	ms.EXPECT().MarkNotificationFailed(mock.Anything, "ntf-nochan", "channel not configured").
		Return(nil).Once()

	eng := newTestEngine(ms, nil, nil, []notify.Notifier{mn})
	sent, err := eng.RunRetrySweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestRunRetrySweep_MissingAlertSkipsDelivery(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	due := []domain.Notification{
		{ID: "ntf-1", AlertID: "a-gone", Channel: domain.ChannelEmail, Recipient: "x@example.com", MaxAttempts: 3},
	}
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).Return(due, nil)
	ms.EXPECT().GetAlert(mock.Anything, "a-gone").Return(nil, errors.New("not found"))

	eng := newTestEngine(ms, nil, nil, []notify.Notifier{emailNotifier(t)})
	sent, err := eng.RunRetrySweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestRunRetrySweep_ListError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).
		Return(nil, errors.New("connection refused"))

	eng := newTestEngine(ms, nil, nil, nil)
	_, err := eng.RunRetrySweep(context.Background())
	require.ErrorContains(t, err, "listing due notifications")
}

func TestRunRetrySweep_BackoffDoubles(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	due := []domain.Notification{
		{ID: "ntf-1", AlertID: "a1", Channel: domain.ChannelEmail, Recipient: "x@example.com", Attempts: 0, MaxAttempts: 5},
	}
	ms.EXPECT().ListDueNotifications(mock.Anything, sweepBatchSize).Return(due, nil)
	ms.EXPECT().GetAlert(mock.Anything, "a1").Return(&domain.Alert{ID: "a1", Type: domain.AlertWave, Severity: domain.SeverityMedium}, nil)

	mn := notifyMocks.NewMockNotifier(t)
	mn.EXPECT().Channel().Return(domain.ChannelEmail).Maybe()
	mn.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("boom"))

	// First failure reschedules at the base interval.
	ms.EXPECT().RescheduleNotification(mock.Anything, "ntf-1", "boom", testNow.Add(30*time.Second)).
		Return(nil)

	eng := newTestEngine(ms, nil, nil, []notify.Notifier{mn},
		WithNotificationPolicy(5, 1, 30*time.Second))
	sent, err := eng.RunRetrySweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestRetryDelay_PlateausAtShiftCap(t *testing.T) {
	t.Parallel()

	base := time.Second

	assert.Equal(t, time.Second, retryDelay(base, 0))
	assert.Equal(t, 4*time.Second, retryDelay(base, 2))

	// Attempt counts past the cap keep the plateau delay; an uncapped
	// shift would wrap into garbage.
	ceiling := base << maxBackoffShift
	assert.Equal(t, ceiling, retryDelay(base, maxBackoffShift))
	assert.Equal(t, ceiling, retryDelay(base, 40))
	assert.Equal(t, ceiling, retryDelay(base, 1000))
	assert.Positive(t, retryDelay(base, 1000))
}

func TestRunExpiry(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ExpireAlerts(mock.Anything).Return(3, nil)
	ms.EXPECT().ListActiveAlerts(mock.Anything).Return([]domain.Alert{{ID: "a1"}}, nil)

	eng := newTestEngine(ms, nil, nil, nil)
	n, err := eng.RunExpiry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRunExpiry_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ExpireAlerts(mock.Anything).Return(0, errors.New("deadlock"))

	eng := newTestEngine(ms, nil, nil, nil)
	_, err := eng.RunExpiry(context.Background())
	require.ErrorContains(t, err, "expiring alerts")
}
