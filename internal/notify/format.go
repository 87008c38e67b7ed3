package notify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domain "github.com/coastalops/ctas/pkg/types"
)

const smsMaxLen = 160

var alertTypeTitles = map[domain.AlertType]string{
	domain.AlertFlood:  "Coastal Flood Alert",
	domain.AlertTide:   "High Tide Alert",
	domain.AlertWave:   "High Wave Alert",
	domain.AlertStorm:  "Storm Alert",
	domain.AlertSystem: "System Alert",
}

// Subject builds the email subject line for an alert.
func Subject(a *domain.Alert) string {
	title := alertTypeTitles[a.Type]
	if title == "" {
		title = "Coastal Alert"
	}
	return fmt.Sprintf("[%s] %s - %s", strings.ToUpper(string(a.Severity)), title, a.LocationName)
}

// TextBody builds the plain text email body for an alert.
func TextBody(a *domain.Alert, recipientName string) string {
	var b strings.Builder

	b.WriteString("COASTAL THREAT ALERT SYSTEM\n\n")
	if recipientName != "" {
		fmt.Fprintf(&b, "Hello %s,\n\n", recipientName)
	}
	fmt.Fprintf(&b, "Alert: %s\n", a.Title)
	fmt.Fprintf(&b, "Severity: %s\n", strings.ToUpper(string(a.Severity)))
	fmt.Fprintf(&b, "Location: %s\n", a.LocationName)
	fmt.Fprintf(&b, "Issued: %s\n\n", a.IssuedAt.UTC().Format("2006-01-02 15:04 UTC"))
	b.WriteString("DETAILS:\n")
	b.WriteString(a.Description)
	b.WriteString("\n\nRECOMMENDED ACTIONS:\n")
	b.WriteString("- Stay informed about current conditions\n")
	b.WriteString("- Avoid coastal areas if conditions are severe\n")
	b.WriteString("- Follow local emergency management guidance\n")
	b.WriteString("- Keep emergency supplies ready\n\n")
	b.WriteString("This is an automated alert. To manage your subscription, visit your dashboard.\n")

	return b.String()
}

// SMSText builds the SMS body for an alert, capped at 160 characters.
func SMSText(a *domain.Alert) string {
	title := alertTypeTitles[a.Type]
	if title == "" {
		title = "Coastal Alert"
	}

	msg := fmt.Sprintf("COASTAL ALERT: %s (%s) in %s. ",
		title, strings.ToUpper(string(a.Severity)), a.LocationName)
	if a.Severity == domain.SeverityHigh || a.Severity == domain.SeverityCritical {
		msg += "Take immediate precautions. "
	}
	msg += "Check app for details."

	if len(msg) > smsMaxLen {
		cut := smsMaxLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}

// PushTitle builds the push notification title for an alert.
func PushTitle(a *domain.Alert) string {
	title := alertTypeTitles[a.Type]
	if title == "" {
		title = "Coastal Alert"
	}
	return fmt.Sprintf("%s: %s", strings.ToUpper(string(a.Severity)), title)
}
