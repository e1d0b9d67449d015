package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"sportloods-backend/internal/domain"
	"sportloods-backend/pkg/apperror"
	"sportloods-backend/pkg/audit"
	"sportloods-backend/pkg/email"
	"sportloods-backend/pkg/logger"
	"sportloods-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// sendTimeout bounds both sends once they are detached from the request
const sendTimeout = 30 * time.Second

var submissionMessages = validation.Messages{
	ByTag:    map[string]string{"single_line": domain.MsgNameLineBreak},
	ByField:  map[string]string{"Email": domain.MsgInvalidEmail, "Subject": domain.MsgInvalidSubject},
	Fallback: domain.MsgInvalidRequest,
}

// ContactSettings are the fixed addresses and names the emails are built from
type ContactSettings struct {
	From           string
	OwnerAddress   string
	SiteName       string
	DefaultSubject string
}

// contactInput is the trimmed view of a submission the validator runs against
type contactInput struct {
	Name    string `validate:"required,single_line,max=200"`
	Email   string `validate:"required,email,max=254"`
	Phone   string `validate:"max=50"`
	Subject string `validate:"omitempty,contact_subject"`
	Message string `validate:"required,max=10000"`
}

type contactUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
	settings ContactSettings
	audit    *audit.Logger
}

// NewContactUsecase creates a new contact usecase. validate must have the
// pkg/validation rules registered.
func NewContactUsecase(mailer domain.Mailer, validate *validator.Validate, settings ContactSettings, auditLog *audit.Logger) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: validate,
		settings: settings,
		audit:    auditLog,
	}
}

// SendContactMessage validates the submission and sends the owner notification
// and the visitor auto-reply. Both sends always run; either failing fails the call.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.ContactSubmission) error {
	requestID, _ := ctx.Value(domain.KeyRequestID).(string)
	clientIP, _ := ctx.Value(domain.KeyClientIP).(string)
	uc.audit.Submission(ctx, audit.EventContactReceived, sub.Email, clientIP, requestID, nil)

	if err := uc.validateSubmission(sub); err != nil {
		uc.audit.Submission(ctx, audit.EventContactRejected, sub.Email, clientIP, requestID, map[string]interface{}{
			"reason": err.Message,
		})
		return err
	}

	subject := strings.TrimSpace(sub.Subject)
	if subject == "" {
		subject = uc.settings.DefaultSubject
	}

	// The auto-reply goes to the address exactly as submitted
	data := email.ContactEmailData{
		SiteName:    uc.settings.SiteName,
		SenderName:  strings.TrimSpace(sub.Name),
		SenderEmail: sub.Email,
		Phone:       strings.TrimSpace(sub.Phone),
		Subject:     subject,
		Message:     sub.Message,
	}

	owner, err := email.OwnerNotification(uc.settings.From, uc.settings.OwnerAddress, data)
	if err != nil {
		return apperror.Internal(err)
	}
	reply, err := email.AutoReply(uc.settings.From, data)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := uc.dispatch(ctx, owner, reply); err != nil {
		uc.audit.Submission(ctx, audit.EventContactDispatchFailed, sub.Email, clientIP, requestID, map[string]interface{}{
			"error": err.Error(),
		})
		return apperror.Dispatch(domain.MsgDispatchFailed, err)
	}

	uc.audit.Submission(ctx, audit.EventContactDelivered, sub.Email, clientIP, requestID, nil)
	return nil
}

func (uc *contactUsecase) validateSubmission(sub *domain.ContactSubmission) *apperror.AppError {
	input := contactInput{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Phone:   strings.TrimSpace(sub.Phone),
		Subject: strings.TrimSpace(sub.Subject),
		Message: strings.TrimSpace(sub.Message),
	}
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return apperror.Validation(domain.MsgRequiredFields)
	}

	err := uc.validate.Struct(input)
	if err == nil {
		return nil
	}

	logger.Log.Debug("Contact submission rejected",
		slog.Any("fields", validation.FormatValidationErrors(err)))
	return apperror.Validation(submissionMessages.For(err))
}

// dispatch sends both messages concurrently and waits for both to finish.
// A visitor leaving the page must not stop delivery, so the sends only keep
// the request's values.
func (uc *contactUsecase) dispatch(ctx context.Context, msgs ...domain.OutboundEmail) error {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	var g errgroup.Group
	errs := make([]error, len(msgs))
	for i, msg := range msgs {
		i, msg := i, msg
		g.Go(func() error {
			if err := uc.mailer.Send(sendCtx, msg); err != nil {
				logger.Log.Error("Failed to send contact email",
					slog.String("subject", msg.Subject),
					slog.String("to", audit.MaskEmail(msg.To)),
					slog.String("error", err.Error()))
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
