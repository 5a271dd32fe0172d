package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/fsi-tue/rri/utils"
)

// Mailer is the outbound notification channel. Callers treat delivery as
// fire-and-forget: failures are logged at the call site, never propagated.
type Mailer interface {
	Send(recipient, subject, body string) error
}

// SMTPMailer delivers mail through a plain SMTP endpoint
type SMTPMailer struct {
	addr string // host:port
	from string
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) Send(recipient, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, recipient, subject, body)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", recipient, err)
	}
	return nil
}

// LogMailer writes the mail to the log instead of sending it. Used when no
// SMTP endpoint is configured, e.g. in development and tests.
type LogMailer struct{}

func (LogMailer) Send(recipient, subject, body string) error {
	utils.Info("mail (log only)", map[string]any{
		"recipient": recipient,
		"subject":   subject,
		"body":      body,
	})
	return nil
}
