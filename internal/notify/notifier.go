// Package notify defines the notification interface and channel
// implementations for alert delivery.
package notify

import (
	"context"

	domain "github.com/coastalops/ctas/pkg/types"
)

// Message carries one alert notification to a single recipient.
type Message struct {
	Alert         *domain.Alert
	Recipient     string
	RecipientName string
}

// Notifier defines the interface for sending alert notifications over a
// single delivery channel.
type Notifier interface {
	// Channel identifies which subscription channel this notifier serves.
	Channel() domain.Channel

	// Send delivers the message to its recipient. A nil error means the
	// provider accepted the message, not that it reached the recipient.
	Send(ctx context.Context, msg *Message) error
}
