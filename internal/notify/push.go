package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domain "github.com/coastalops/ctas/pkg/types"
)

const defaultFCMURL = "https://fcm.googleapis.com/fcm/send"

// PushNotifier implements Notifier via FCM HTTP messaging.
type PushNotifier struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

// PushOption configures a PushNotifier.
type PushOption func(*PushNotifier)

// WithPushEndpoint overrides the default FCM endpoint.
func WithPushEndpoint(u string) PushOption {
	return func(n *PushNotifier) {
		n.endpoint = u
	}
}

// WithPushHTTPClient overrides the default HTTP client.
func WithPushHTTPClient(c *http.Client) PushOption {
	return func(n *PushNotifier) {
		n.client = c
	}
}

// NewPushNotifier creates an FCM push notifier.
func NewPushNotifier(serverKey string, opts ...PushOption) *PushNotifier {
	n := &PushNotifier{
		endpoint:  defaultFCMURL,
		serverKey: serverKey,
		client:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmPayload struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

// Channel implements Notifier.
func (n *PushNotifier) Channel() domain.Channel {
	return domain.ChannelPush
}

// Send implements Notifier by posting a message to FCM.
func (n *PushNotifier) Send(ctx context.Context, msg *Message) error {
	if msg.Recipient == "" {
		return fmt.Errorf("subscription has no device token")
	}

	a := msg.Alert
	payload := fcmPayload{
		To: msg.Recipient,
		Notification: fcmNotification{
			Title: PushTitle(a),
			Body:  a.Title,
		},
		Data: map[string]string{
			"alert_id": a.ID,
			"type":     string(a.Type),
			"severity": string(a.Severity),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		n.endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating push request: %w", err)
	}
	req.Header.Set("Authorization", "key="+n.serverKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("push service returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("push service returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
