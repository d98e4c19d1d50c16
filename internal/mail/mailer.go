// Package mail implements outbound delivery of accepted contact submissions.
//
// Two implementations of the services.Mailer contract live here:
//   - SMTPMailer relays the submission to a configured SMTP host.
//   - LogMailer writes the submission to the structured log; it is the
//     development fallback when no SMTP host is configured.
//
// The plain net/smtp client is deliberate: submissions are short text-only
// notifications to a single operator inbox, which needs no templating or
// provider SDK.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// SMTPMailer delivers contact submissions through an SMTP relay using
// PLAIN auth (when a username is set) over STARTTLS-capable connections.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string

	// sendMail is swappable in tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer constructs an SMTPMailer for the given relay settings.
func NewSMTPMailer(host, port, username, password, from, to string) *SMTPMailer {
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		To:       to,
		sendMail: smtp.SendMail,
	}
}

// Send relays one submission. The ctx deadline is honored by running the
// SMTP exchange in a goroutine; smtp.SendMail itself has no context support.
func (m *SMTPMailer) Send(ctx context.Context, msg *domain.ContactMessage) error {
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	addr := net.JoinHostPort(m.Host, m.Port)
	body := renderMessage(m.From, m.To, msg)

	done := make(chan error, 1)
	go func() {
		done <- m.sendMail(addr, auth, m.From, []string{m.To}, body)
	}()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// renderMessage builds the RFC 5322 notification body for one submission.
func renderMessage(from, to string, msg *domain.ContactMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: [contact] %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\n", msg.Name, msg.Email)
	if msg.Company != "" {
		fmt.Fprintf(&b, "Company: %s\r\n", msg.Company)
	}
	if msg.ProjectType != "" {
		fmt.Fprintf(&b, "Project type: %s\r\n", msg.ProjectType)
	}
	if msg.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\r\n", msg.Budget)
	}
	if msg.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\r\n", msg.Timeline)
	}
	if msg.Attachments > 0 {
		fmt.Fprintf(&b, "Attachments: %d\r\n", msg.Attachments)
	}
	b.WriteString("\r\n")
	b.WriteString(msg.Message)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// LogMailer is the development fallback: it records the submission in the
// structured log and always succeeds.
type LogMailer struct {
	Log zerolog.Logger
}

// Send logs the submission metadata. The message body is omitted so PII
// stays out of the logs.
func (m LogMailer) Send(ctx context.Context, msg *domain.ContactMessage) error {
	m.Log.Info().
		Str("message_id", msg.ID).
		Str("subject", msg.Subject).
		Int("attachments", msg.Attachments).
		Msg("contact submission (log mailer, no SMTP host configured)")
	return nil
}
