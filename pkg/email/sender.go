package email

import (
	"fmt"

	"sportloods-backend/config"
	"sportloods-backend/internal/domain"
)

const (
	TransportSMTP    = "smtp"
	TransportMailgun = "mailgun"
)

// NewSender picks the mail transport named by cfg.MailTransport
func NewSender(cfg *config.Config) (domain.Mailer, error) {
	switch cfg.MailTransport {
	case "", TransportSMTP:
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case TransportMailgun:
		return NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunEU), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
	}
}
