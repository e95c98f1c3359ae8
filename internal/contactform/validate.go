package contactform

import (
	"errors"
	"fmt"

	"europlast-backend/internal/domain"
	"europlast-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ErrValidatorMisconfigured means a validator lacks the custom contact tags
// or reports fields by something other than their json name.
var ErrValidatorMisconfigured = errors.New("contact validator misconfigured")

var defaultValidator = validation.New()

var tagKinds = map[string]domain.ErrorKind{
	"trimmed_min":   domain.KindTooShort,
	"min":           domain.KindTooShort,
	"contact_email": domain.KindInvalidFormat,
	"email":         domain.KindInvalidFormat,
}

// Validate checks every field of input independently and returns either a
// ContactRequest (no violations) or one FieldError per violated field.
func Validate(input domain.ContactInput) (domain.ContactRequest, domain.FieldErrors) {
	// defaultValidator comes from validation.New and always carries the tags
	req, errs, _ := ValidateWith(defaultValidator, input)
	return req, errs
}

// ValidateWith is Validate using a caller-provided validator, which must
// have the custom tags from pkg/validation registered. A nil or
// misconfigured validator yields ErrValidatorMisconfigured.
func ValidateWith(v *validator.Validate, input domain.ContactInput) (domain.ContactRequest, domain.FieldErrors, error) {
	if v == nil {
		return domain.ContactRequest{}, nil, fmt.Errorf("%w: nil validator", ErrValidatorMisconfigured)
	}
	err := v.Struct(input)
	if err == nil {
		return domain.NewContactRequest(input), nil, nil
	}

	violations, ok := validation.Violations(err)
	if !ok {
		return domain.ContactRequest{}, nil, fmt.Errorf("%w: %v", ErrValidatorMisconfigured, err)
	}

	errs := make(domain.FieldErrors, len(violations))
	for _, violation := range violations {
		if _, known := input.Get(violation.Field); !known {
			return domain.ContactRequest{}, nil, fmt.Errorf("%w: unknown field %q", ErrValidatorMisconfigured, violation.Field)
		}
		kind, known := tagKinds[violation.Tag]
		if !known {
			kind = domain.KindInvalidFormat
		}
		errs[violation.Field] = domain.FieldError{
			Field:   violation.Field,
			Kind:    kind,
			Message: violation.Message,
		}
	}
	return domain.ContactRequest{}, errs, nil
}

// CheckValidator runs v once against an empty form, which must violate
// every constrained field. The validator package panics on unregistered
// tags; that panic is reported as ErrValidatorMisconfigured.
func CheckValidator(v *validator.Validate) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrValidatorMisconfigured, r)
		}
	}()

	_, errs, err := ValidateWith(v, domain.ContactInput{})
	if err != nil {
		return err
	}
	for _, field := range []string{domain.FieldName, domain.FieldEmail, domain.FieldPhone, domain.FieldSubject, domain.FieldMessage} {
		if _, ok := errs[field]; !ok {
			return fmt.Errorf("%w: %s is not checked", ErrValidatorMisconfigured, field)
		}
	}
	return nil
}
