package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the Dutch labels used on the form
var FieldLabels = map[string]string{
	"Name":    "Naam",
	"Email":   "E-mail",
	"Phone":   "Telefoon",
	"Subject": "Onderwerp",
	"Message": "Bericht",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Messages picks the single visitor-facing message for a failed struct
// validation. A tag match wins over a field match.
type Messages struct {
	ByTag    map[string]string
	ByField  map[string]string
	Fallback string
}

// For returns the message for the first failing field of err
func (m Messages) For(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return m.Fallback
	}
	first := validationErrors[0]
	if msg, ok := m.ByTag[first.Tag()]; ok {
		return msg
	}
	if msg, ok := m.ByField[first.Field()]; ok {
		return msg
	}
	return m.Fallback
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Verplicht veld", label)
	case "email":
		return fmt.Sprintf("%s: Ongeldig e-mailadres", label)
	case "max":
		return fmt.Sprintf("%s: Maximaal %s tekens", label, e.Param())
	case "single_line":
		return fmt.Sprintf("%s: Mag geen regeleinden bevatten", label)
	case "contact_subject":
		return fmt.Sprintf("%s: Onbekend onderwerp", label)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Ongeldige waarde (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
