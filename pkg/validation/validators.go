package validation

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// emailRules checks the address grammar with the library's own email tag.
var emailRules = validator.New()

// New returns a validator with the custom tags registered and
// field names reported by their json tag.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("trimmed_min", TrimmedMin)
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// TrimmedMin checks the rune count of the value after trimming surrounding whitespace.
// Usage: `validate:"trimmed_min=8"`
func TrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
}

// ContactEmail validates an address of the form local@domain.tld.
// An empty value is invalid.
func ContactEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// IsEmail reports whether s (trimmed) is a well-formed address whose
// domain contains at least one dot.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.LastIndexByte(s, '@')
	if at < 0 || !strings.Contains(s[at+1:], ".") {
		return false
	}
	return emailRules.Var(s, "email") == nil
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
