package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Violation is a single failed rule, keyed by the json field name.
type Violation struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// FieldLabels maps json field names to user-friendly labels
var FieldLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"company": "Company",
	"phone":   "Phone number",
	"subject": "Subject",
	"message": "Message",
}

// FieldMessages overrides the generated message for a field/tag pair.
var FieldMessages = map[string]string{
	"name.trimmed_min":    "Name must be at least 2 characters",
	"email.contact_email": "Please enter a valid email address",
	"phone.trimmed_min":   "Please enter a valid phone number",
	"subject.trimmed_min": "Subject must be at least 5 characters",
	"message.trimmed_min": "Message must be at least 10 characters",
}

// Violations converts validator.ValidationErrors to one Violation per field.
// ok is false when err is not a validation error.
func Violations(err error) (violations []Violation, ok bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	for _, e := range validationErrors {
		violations = append(violations, Violation{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Param:   e.Param(),
			Message: formatSingleError(e),
		})
	}
	return violations, true
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	if msg, ok := FieldMessages[fieldName+"."+e.Tag()]; ok {
		return msg
	}

	label := getFieldLabel(fieldName)
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min", "trimmed_min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)

	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, param)

	case "email", "contact_email":
		return fmt.Sprintf("%s must be a valid email address", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
