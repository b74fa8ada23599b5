// Package mailer sends the contact-notification email through SendGrid.
// An unconfigured client is a no-op that reports every send as failed, so
// the rest of the system never has to check whether email is enabled.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/brightelectricals/backend/internal/model"
)

// Config carries the SendGrid settings. An empty APIKey disables sending.
type Config struct {
	APIKey string
	To     string
	From   string
}

// Mailer delivers contact-notification emails. Send failures are reported
// as a bool and logged; they never become errors for the caller.
type Mailer struct {
	client *sendgrid.Client
	to     string
	from   string
}

// New creates a Mailer. When cfg.APIKey is empty the returned Mailer is
// disabled and SendContactNotification always returns false.
func New(cfg Config) *Mailer {
	m := &Mailer{to: cfg.To, from: cfg.From}
	if cfg.APIKey != "" && cfg.To != "" && cfg.From != "" {
		m.client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return m
}

// Enabled reports whether the mailer is configured to send.
func (m *Mailer) Enabled() bool { return m.client != nil }

// SendContactNotification renders the submission into an HTML and a
// plain-text body and hands it to SendGrid. Returns true only when the
// provider accepted the message.
func (m *Mailer) SendContactNotification(ctx context.Context, sub *model.ContactSubmission) bool {
	if m.client == nil {
		return false
	}

	subject := fmt.Sprintf("New Contact Form Submission - %s", sub.Service)
	msg := mail.NewSingleEmail(
		mail.NewEmail("", m.from),
		subject,
		mail.NewEmail("", m.to),
		plainBody(sub),
		htmlBody(sub),
	)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		slog.Error("sendgrid send failed", "error", err, "submission_id", sub.ID)
		return false
	}
	if resp.StatusCode >= 300 {
		slog.Error("sendgrid rejected message", "status", resp.StatusCode, "submission_id", sub.ID)
		return false
	}
	return true
}

func plainBody(sub *model.ContactSubmission) string {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString("Customer Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	fmt.Fprintf(&b, "Service Required: %s\n\n", sub.Service)
	fmt.Fprintf(&b, "Message:\n%s\n", sub.Message)
	return b.String()
}

func htmlBody(sub *model.ContactSubmission) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	b.WriteString(`<h3>Customer Details</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, escape(sub.Name))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, escape(sub.Email))
	if sub.Phone != "" {
		fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, escape(sub.Phone))
	}
	fmt.Fprintf(&b, `<p><strong>Service Required:</strong> %s</p>`, escape(sub.Service))
	b.WriteString(`<h3>Message</h3>`)
	fmt.Fprintf(&b, `<p style="white-space: pre-wrap;">%s</p>`, escape(sub.Message))
	b.WriteString(`</div>`)
	return b.String()
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
)

func escape(s string) string { return htmlEscaper.Replace(s) }
