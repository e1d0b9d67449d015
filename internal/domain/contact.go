package domain

import (
	"context"
	"errors"
)

// Visitor-facing messages returned by the contact endpoint
const (
	MsgContactSent       = "E-mail succesvol verzonden!"
	MsgRequiredFields    = "Naam, e-mail en bericht zijn verplicht"
	MsgInvalidEmail      = "Ongeldig e-mailadres"
	MsgInvalidSubject    = "Ongeldig onderwerp"
	MsgNameLineBreak     = "Naam mag geen regeleinden bevatten"
	MsgInvalidRequest    = "Ongeldig verzoek"
	MsgDispatchFailed    = "Er is een fout opgetreden bij het verzenden van de e-mail"
	MsgTooManySubmission = "Te veel berichten verzonden. Probeer het later opnieuw."
)

// ErrMailNotConfigured is returned by a Mailer without credentials
var ErrMailNotConfigured = errors.New("mail transport is not configured")

// ContactSubmission is one visitor's contact form input. It lives for a single request.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// OutboundEmail is one composed message handed to the mail transport
type OutboundEmail struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers an OutboundEmail. Any returned error counts as a dispatch failure.
type Mailer interface {
	Send(ctx context.Context, msg OutboundEmail) error
	IsConfigured() bool
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and dispatches both emails
	SendContactMessage(ctx context.Context, sub *ContactSubmission) error
}
