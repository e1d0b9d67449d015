package apperror

import "net/http"

// Kind classifies an error by who can correct it
type Kind string

const (
	KindValidation Kind = "validation"
	KindDispatch   Kind = "dispatch"
	KindRateLimit  Kind = "rate_limit"
	KindInternal   Kind = "internal"
)

// MsgUnexpected is shown for any failure the visitor cannot correct
const MsgUnexpected = "Er is iets misgegaan. Probeer het later opnieuw."

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Validation is a client-correctable error; the message is shown to the visitor verbatim
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

// Dispatch wraps a mail transport failure behind a generic message
func Dispatch(message string, err error) *AppError {
	return New(http.StatusInternalServerError, KindDispatch, message, err)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, KindRateLimit, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, MsgUnexpected, err)
}
