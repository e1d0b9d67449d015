package contactclient

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"
)

// Banner texts shown above the form
const (
	MsgSuccess       = "Bedankt! Je bericht is verzonden. We nemen zo spoedig mogelijk contact met je op."
	MsgServerFailure = "Er is iets misgegaan. Probeer het later opnieuw."
	MsgNetworkError  = "Er is een fout opgetreden. Probeer het later opnieuw of bel ons direct."
)

// SuccessResetDelay is how long the success banner stays before the form returns to idle
const SuccessResetDelay = 5 * time.Second

// ErrSubmitting is returned while a submission is in flight; the submit control is disabled
var ErrSubmitting = errors.New("contact: submission already in progress")

type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Disabled reports whether the submit control is disabled in this state
func (s Status) Disabled() bool {
	return s == StatusSending
}

// FieldError is a client-side check failing before any request is made
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "contact: " + e.Field + " " + e.Reason
}

// Sender is the part of Client the form needs
type Sender interface {
	Send(ctx context.Context, sub Submission) (string, error)
}

// State is a snapshot of the form for rendering
type State struct {
	Status Status
	Banner string
	Fields Submission
}

// Form holds the visitor's input and the submission state
type Form struct {
	mu       sync.Mutex
	sender   Sender
	clock    Clock
	onChange func(State)

	status     Status
	banner     string
	fields     Submission
	resetTimer Timer
	// generation invalidates a reset timer that fired after a newer submission started
	generation uint64
}

type FormOption func(*Form)

// WithClock replaces the wall clock used for the success reset
func WithClock(c Clock) FormOption {
	return func(f *Form) { f.clock = c }
}

// OnChange registers a callback invoked after every state transition.
// It runs without the form's lock held.
func OnChange(fn func(State)) FormOption {
	return func(f *Form) { f.onChange = fn }
}

func NewForm(sender Sender, opts ...FormOption) *Form {
	f := &Form{
		sender: sender,
		clock:  realClock{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetFields replaces all field values
func (f *Form) SetFields(s Submission) {
	f.mu.Lock()
	f.fields = s
	f.mu.Unlock()
}

func (f *Form) SetName(v string)    { f.edit(func(s *Submission) { s.Name = v }) }
func (f *Form) SetEmail(v string)   { f.edit(func(s *Submission) { s.Email = v }) }
func (f *Form) SetPhone(v string)   { f.edit(func(s *Submission) { s.Phone = v }) }
func (f *Form) SetSubject(v string) { f.edit(func(s *Submission) { s.Subject = v }) }
func (f *Form) SetMessage(v string) { f.edit(func(s *Submission) { s.Message = v }) }

func (f *Form) edit(fn func(*Submission)) {
	f.mu.Lock()
	fn(&f.fields)
	f.mu.Unlock()
}

// Fields returns the current field values
func (f *Form) Fields() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *Form) snapshot() State {
	return State{Status: f.status, Banner: f.banner, Fields: f.fields}
}

// Validate applies the form's native constraints: every field but phone is
// required and the email must parse as an address.
func (f *Form) Validate() error {
	return validate(f.Fields())
}

func validate(s Submission) error {
	required := []struct{ name, value string }{
		{"name", s.Name},
		{"email", s.Email},
		{"subject", s.Subject},
		{"message", s.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &FieldError{Field: r.name, Reason: "is required"}
		}
	}
	if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != strings.TrimSpace(s.Email) {
		return &FieldError{Field: "email", Reason: "is not a valid address"}
	}
	return nil
}

// Submit sends the current fields once. Invalid input returns a *FieldError
// without changing state. On success the fields are cleared and the form
// returns to idle after the reset delay; on failure the fields are kept and
// the error banner stays until the next submission.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSending {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if err := validate(f.fields); err != nil {
		f.mu.Unlock()
		return err
	}
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
	f.generation++
	gen := f.generation
	f.status = StatusSending
	f.banner = ""
	sub := f.fields
	sending := f.snapshot()
	f.mu.Unlock()
	f.notify(sending)

	_, err := f.sender.Send(ctx, sub)

	f.mu.Lock()
	if err != nil {
		f.status = StatusError
		f.banner = bannerFor(err)
	} else {
		f.status = StatusSuccess
		f.banner = MsgSuccess
		f.fields = Submission{}
		f.resetTimer = f.clock.AfterFunc(SuccessResetDelay, func() { f.reset(gen) })
	}
	done := f.snapshot()
	f.mu.Unlock()
	f.notify(done)

	return err
}

// reset returns a success state to idle unless a newer submission started
func (f *Form) reset(gen uint64) {
	f.mu.Lock()
	if gen != f.generation || f.status != StatusSuccess {
		f.mu.Unlock()
		return
	}
	f.status = StatusIdle
	f.banner = ""
	f.resetTimer = nil
	idle := f.snapshot()
	f.mu.Unlock()
	f.notify(idle)
}

func (f *Form) notify(s State) {
	if f.onChange != nil {
		f.onChange(s)
	}
}

// bannerFor prefers the server's own message and falls back to a generic one
func bannerFor(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgServerFailure
	}
	return MsgNetworkError
}
