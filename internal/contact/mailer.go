// Package contact delivers contact form submissions by email.
package contact

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// ErrIncomplete is returned for a submission missing a required field.
var ErrIncomplete = errors.New("name, email and message are required")

// Message is one contact form submission.
type Message struct {
	Name    string
	Email   string
	Message string
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Mailer struct {
	cfg    config.SMTPConfig
	send   SendFunc
	logger *zap.Logger
}

// NewMailer returns a mailer sending through cfg. A nil send uses
// smtp.SendMail.
func NewMailer(cfg config.SMTPConfig, send SendFunc, logger *zap.Logger) *Mailer {
	if send == nil {
		send = smtp.SendMail
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{cfg: cfg, send: send, logger: logger}
}

// Send emails m to the configured recipient, with Reply-To set to the sender.
func (m *Mailer) Send(msg Message) error {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		return ErrIncomplete
	}
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return ErrNotConfigured
	}
	to := m.cfg.To
	if to == "" {
		to = m.cfg.User
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	body := Compose(m.cfg.User, to, msg)
	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{to}, body); err != nil {
		m.logger.Error("sending contact email", zap.Error(err))
		return fmt.Errorf("sending contact email: %w", err)
	}

	m.logger.Info("contact email sent", zap.String("name", msg.Name))
	return nil
}

// Compose builds the raw RFC 5322 message. Header values are stripped of
// line breaks so a submission cannot inject headers.
func Compose(from, to string, msg Message) []byte {
	name := headerSafe(msg.Name)
	replyTo := headerSafe(msg.Email)

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + name + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + replyTo + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
}
