package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	domain "github.com/coastalops/ctas/pkg/types"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

// SMSNotifier implements Notifier via the Twilio Messages API.
type SMSNotifier struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

// SMSOption configures an SMSNotifier.
type SMSOption func(*SMSNotifier)

// WithTwilioBaseURL overrides the default Twilio endpoint.
func WithTwilioBaseURL(u string) SMSOption {
	return func(n *SMSNotifier) {
		n.baseURL = u
	}
}

// WithSMSHTTPClient overrides the default HTTP client.
func WithSMSHTTPClient(c *http.Client) SMSOption {
	return func(n *SMSNotifier) {
		n.client = c
	}
}

// NewSMSNotifier creates a Twilio SMS notifier.
func NewSMSNotifier(accountSID, authToken, from string, opts ...SMSOption) *SMSNotifier {
	n := &SMSNotifier{
		baseURL:    defaultTwilioBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Channel implements Notifier.
func (n *SMSNotifier) Channel() domain.Channel {
	return domain.ChannelSMS
}

// Send implements Notifier by posting a message to the Twilio API.
func (n *SMSNotifier) Send(ctx context.Context, msg *Message) error {
	if msg.Recipient == "" {
		return fmt.Errorf("subscription has no phone number")
	}

	form := url.Values{}
	form.Set("To", msg.Recipient)
	form.Set("From", n.from)
	form.Set("Body", SMSText(msg.Alert))

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, n.accountSID)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("creating twilio request: %w", err)
	}
	req.SetBasicAuth(n.accountSID, n.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending twilio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("twilio rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("twilio returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
