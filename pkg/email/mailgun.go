package email

import (
	"context"
	"fmt"
	"time"

	"sportloods-backend/internal/domain"

	"github.com/mailgun/mailgun-go/v4"
)

const mailgunSendTimeout = 30 * time.Second

// MailgunSender sends emails via the Mailgun API
type MailgunSender struct {
	domain string
	apiKey string
	client *mailgun.MailgunImpl
}

// NewMailgunSender creates a Mailgun sender. eu selects the EU API region.
func NewMailgunSender(domainName, apiKey string, eu bool) *MailgunSender {
	s := &MailgunSender{domain: domainName, apiKey: apiKey}
	if !s.IsConfigured() {
		return s
	}
	s.client = mailgun.NewMailgun(domainName, apiKey)
	if eu {
		s.client.SetAPIBase(mailgun.APIBaseEU)
	}
	return s
}

// Send delivers msg with a bounded timeout
func (s *MailgunSender) Send(ctx context.Context, msg domain.OutboundEmail) error {
	if !s.IsConfigured() || s.client == nil {
		return domain.ErrMailNotConfigured
	}

	m := s.client.NewMessage(msg.From, msg.Subject, msg.TextBody, msg.To)
	m.SetHtml(msg.HTMLBody)
	if msg.ReplyTo != "" {
		m.SetReplyTo(msg.ReplyTo)
	}

	sendCtx, cancel := context.WithTimeout(ctx, mailgunSendTimeout)
	defer cancel()

	if _, _, err := s.client.Send(sendCtx, m); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}

func (s *MailgunSender) IsConfigured() bool {
	return s.domain != "" && s.apiKey != ""
}
