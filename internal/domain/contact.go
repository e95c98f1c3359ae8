package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ContactInput is the raw contact form as typed by the user.
type ContactInput struct {
	Name    string `json:"name" validate:"trimmed_min=2"`
	Email   string `json:"email" validate:"contact_email"`
	Company string `json:"company"`
	Phone   string `json:"phone" validate:"trimmed_min=8"`
	Subject string `json:"subject" validate:"trimmed_min=5"`
	Message string `json:"message" validate:"trimmed_min=10"`
}

// Contact form field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// ContactFields lists the form fields in display order.
var ContactFields = []string{FieldName, FieldEmail, FieldCompany, FieldPhone, FieldSubject, FieldMessage}

// Get returns the raw value of a named field.
func (in ContactInput) Get(field string) (string, bool) {
	switch field {
	case FieldName:
		return in.Name, true
	case FieldEmail:
		return in.Email, true
	case FieldCompany:
		return in.Company, true
	case FieldPhone:
		return in.Phone, true
	case FieldSubject:
		return in.Subject, true
	case FieldMessage:
		return in.Message, true
	}
	return "", false
}

// Set assigns a named field. It returns false for unknown fields.
func (in *ContactInput) Set(field, value string) bool {
	switch field {
	case FieldName:
		in.Name = value
	case FieldEmail:
		in.Email = value
	case FieldCompany:
		in.Company = value
	case FieldPhone:
		in.Phone = value
	case FieldSubject:
		in.Subject = value
	case FieldMessage:
		in.Message = value
	default:
		return false
	}
	return true
}

// ContactRequest is a validated contact submission. It cannot be modified
// after construction.
type ContactRequest struct {
	name    string
	email   string
	company string
	phone   string
	subject string
	message string
}

// NewContactRequest builds a request from already validated input,
// trimming every value.
func NewContactRequest(in ContactInput) ContactRequest {
	return ContactRequest{
		name:    strings.TrimSpace(in.Name),
		email:   strings.TrimSpace(in.Email),
		company: strings.TrimSpace(in.Company),
		phone:   strings.TrimSpace(in.Phone),
		subject: strings.TrimSpace(in.Subject),
		message: strings.TrimSpace(in.Message),
	}
}

func (r ContactRequest) Name() string    { return r.name }
func (r ContactRequest) Email() string   { return r.email }
func (r ContactRequest) Company() string { return r.company }
func (r ContactRequest) Phone() string   { return r.phone }
func (r ContactRequest) Subject() string { return r.subject }
func (r ContactRequest) Message() string { return r.message }

// IsZero reports whether r was never built.
func (r ContactRequest) IsZero() bool {
	return r == ContactRequest{}
}

// Input returns the request as a wire/form payload.
func (r ContactRequest) Input() ContactInput {
	return ContactInput{
		Name:    r.name,
		Email:   r.email,
		Company: r.company,
		Phone:   r.phone,
		Subject: r.subject,
		Message: r.message,
	}
}

// ErrorKind classifies a field violation.
type ErrorKind string

const (
	KindTooShort      ErrorKind = "TooShort"
	KindInvalidFormat ErrorKind = "InvalidFormat"
)

// FieldError is a violation attached to a single form field.
type FieldError struct {
	Field   string    `json:"-"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// FieldErrors maps field name to its violation.
type FieldErrors map[string]FieldError

// Fields returns the violated field names, sorted.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// ValidationError is returned when a contact form is rejected before dispatch.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact form invalid: %s", strings.Join(e.Fields.Fields(), ", "))
}

// DeliveryError is a transport-level failure of the delivery collaborator.
type DeliveryError struct {
	Timeout bool
	Err     error
}

func (e *DeliveryError) Error() string {
	if e.Timeout {
		return "contact delivery timed out"
	}
	return fmt.Sprintf("contact delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

var (
	// ErrSubmissionInFlight rejects a submit while another is pending.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrDeliveryUnavailable means no delivery collaborator is configured.
	ErrDeliveryUnavailable = errors.New("contact delivery is not configured")
)

// ContactSubmission is a request accepted by the API, ready for delivery.
type ContactSubmission struct {
	ID         string
	ReceivedAt time.Time
	ClientIP   string
	UserAgent  string
	RequestID  string
	Request    ContactRequest
}

// ContactReceipt confirms an accepted submission.
type ContactReceipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

// ContactDispatcher hands a submission to one delivery collaborator.
type ContactDispatcher interface {
	Dispatch(ctx context.Context, sub *ContactSubmission) error
}

// ContactInboxRepository stores accepted submissions.
type ContactInboxRepository interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, sub *ContactSubmission) error
}

// ContactMeta carries request metadata from the transport layer.
type ContactMeta struct {
	ClientKey string
	ClientIP  string
	UserAgent string
	RequestID string
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Validate checks the input and returns every field violation.
	Validate(input ContactInput) (ContactRequest, FieldErrors, error)
	// SendContactMessage delivers a validated request.
	SendContactMessage(ctx context.Context, meta ContactMeta, req ContactRequest) (*ContactReceipt, error)
}
