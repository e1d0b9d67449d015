package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SubjectChecker reports whether a subject is one of the configured categories
type SubjectChecker func(subject string) bool

// New returns a validator with the contact form rules registered
func New(subjects SubjectChecker) *validator.Validate {
	v := validator.New()
	RegisterValidators(v, subjects)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, subjects SubjectChecker) {
	_ = v.RegisterValidation("single_line", SingleLine)
	_ = v.RegisterValidation("contact_subject", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" || subjects == nil {
			return true
		}
		return subjects(val)
	})
}

// SingleLine rejects values containing CR or LF; these end up in mail headers
func SingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}
