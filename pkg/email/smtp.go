package email

import (
	"context"
	"fmt"

	"sportloods-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

// dialer is the part of gomail.Dialer the SMTP sender needs
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends emails through an SMTP relay
type SMTPSender struct {
	host     string
	username string
	password string
	dialer   dialer
}

// NewSMTPSender creates a sender for host:port with PLAIN auth
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		username: username,
		password: password,
		dialer:   gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers msg. gomail has no context support, so a cancelled context is
// only honoured before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg domain.OutboundEmail) error {
	if !s.IsConfigured() {
		return domain.ErrMailNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func buildMessage(msg domain.OutboundEmail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}
	return m
}
