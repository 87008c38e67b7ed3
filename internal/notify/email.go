package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	domain "github.com/coastalops/ctas/pkg/types"
)

// sendMailFunc matches smtp.SendMail, injectable for testing.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier implements Notifier by sending plain text email over SMTP.
type EmailNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	sendMail sendMailFunc
}

// EmailOption configures an EmailNotifier.
type EmailOption func(*EmailNotifier)

// WithSendMail overrides the SMTP send function for testing.
func WithSendMail(f sendMailFunc) EmailOption {
	return func(n *EmailNotifier) {
		n.sendMail = f
	}
}

// NewEmailNotifier creates an SMTP email notifier.
func NewEmailNotifier(host string, port int, username, password, from string, opts ...EmailOption) *EmailNotifier {
	n := &EmailNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		sendMail: smtp.SendMail,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Channel implements Notifier.
func (n *EmailNotifier) Channel() domain.Channel {
	return domain.ChannelEmail
}

// Send implements Notifier by delivering the alert as a plain text email.
func (n *EmailNotifier) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("email send canceled: %w", err)
	}
	if msg.Recipient == "" {
		return fmt.Errorf("subscription has no email address")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", Subject(msg.Alert))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(TextBody(msg.Alert, msg.RecipientName))

	addr := fmt.Sprintf("%s:%d", n.host, n.port)

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	if err := n.sendMail(addr, auth, n.from, []string{msg.Recipient}, []byte(b.String())); err != nil {
		return fmt.Errorf("sending email via %s: %w", addr, err)
	}
	return nil
}
