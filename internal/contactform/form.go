// Package contactform drives a contact form through validation and
// submission: Idle -> Submitting -> Succeeded, or back to Idle when the
// delivery collaborator fails. Validation failures park the form in Failed
// with every field error attached.
package contactform

import (
	"context"
	"errors"
	"sync"
	"time"

	"europlast-backend/internal/domain"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 15 * time.Second

const (
	SuccessMessage = "Message sent successfully! We'll get back to you within 24 hours."
	FailureMessage = "Failed to send message. Please try again later."
)

var (
	ErrUnknownField = errors.New("unknown contact form field")
	ErrNotValidated = errors.New("contact request was not produced by Validate")
)

// State is the lifecycle of one contact form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitting:
		return "Submitting"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	}
	return "Unknown"
}

// Delivery transmits a validated request to whatever actually handles it.
type Delivery interface {
	Deliver(ctx context.Context, req domain.ContactRequest) error
}

// DeliveryFunc adapts a function to Delivery.
type DeliveryFunc func(ctx context.Context, req domain.ContactRequest) error

func (f DeliveryFunc) Deliver(ctx context.Context, req domain.ContactRequest) error {
	return f(ctx, req)
}

type Option func(*Form)

// WithTimeout sets the ceiling on a delivery attempt. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.timeout = d
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(f *Form) {
		f.notifier = n
	}
}

// WithTransitionHook registers fn to observe every state change. fn runs
// outside the form's lock and may call back into the form.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(f *Form) {
		f.onTransition = fn
	}
}

// Form holds the fields and submission state of one contact form.
// It is safe for concurrent use.
type Form struct {
	delivery     Delivery
	notifier     Notifier
	timeout      time.Duration
	onTransition func(from, to State)

	mu     sync.Mutex
	state  State
	input  domain.ContactInput
	errors domain.FieldErrors
}

// New creates an Idle form with empty fields.
func New(delivery Delivery, opts ...Option) *Form {
	f := &Form{
		delivery: delivery,
		notifier: NopNotifier,
		timeout:  DefaultTimeout,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a submission is in flight; the trigger must be disabled.
func (f *Form) Busy() bool {
	return f.State() == StateSubmitting
}

// Input returns a copy of the current field values.
func (f *Form) Input() domain.ContactInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Errors returns the field errors of the last failed validation.
func (f *Form) Errors() domain.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.errors) == 0 {
		return nil
	}
	out := make(domain.FieldErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Set edits one field.
func (f *Form) Set(field, value string) error {
	return f.edit(func(in *domain.ContactInput) error {
		if !in.Set(field, value) {
			return ErrUnknownField
		}
		return nil
	}, false)
}

// Fill replaces every field.
func (f *Form) Fill(input domain.ContactInput) error {
	return f.edit(func(in *domain.ContactInput) error {
		*in = input
		return nil
	}, false)
}

// Reset clears the fields and errors and returns to Idle.
func (f *Form) Reset() error {
	return f.edit(func(in *domain.ContactInput) error {
		*in = domain.ContactInput{}
		return nil
	}, true)
}

func (f *Form) edit(apply func(*domain.ContactInput) error, reset bool) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	if err := apply(&f.input); err != nil {
		f.mu.Unlock()
		return err
	}
	from := f.state
	if from == StateSucceeded || reset {
		f.state = StateIdle
	}
	if reset {
		f.errors = nil
	}
	to := f.state
	f.mu.Unlock()

	f.transition(from, to)
	return nil
}

// Validate runs validation on the current fields. Violations move the form
// to Failed; a clean result clears a previous Failed state. While a
// submission is in flight the state is left alone.
func (f *Form) Validate() (domain.ContactRequest, domain.FieldErrors) {
	input := f.Input()
	req, errs := Validate(input)

	f.mu.Lock()
	from := f.state
	switch {
	case from == StateSubmitting:
	case len(errs) > 0:
		f.state = StateFailed
		f.errors = errs
	case from == StateFailed:
		f.state = StateIdle
		f.errors = nil
	}
	to := f.state
	f.mu.Unlock()

	f.transition(from, to)
	return req, errs
}

// SubmitForm validates the current fields and submits them. A rejected
// form returns *domain.ValidationError and nothing is dispatched.
func (f *Form) SubmitForm(ctx context.Context) error {
	if f.Busy() {
		return domain.ErrSubmissionInFlight
	}
	req, errs := f.Validate()
	if len(errs) > 0 {
		return &domain.ValidationError{Fields: errs}
	}
	return f.Submit(ctx, req)
}

// Submit dispatches req to the delivery collaborator and waits at most the
// configured timeout. It returns domain.ErrSubmissionInFlight without side
// effects while another submission is pending, and *domain.DeliveryError
// when delivery fails; the fields are kept so the user can retry. On success
// the fields are cleared only if they still hold req.
func (f *Form) Submit(ctx context.Context, req domain.ContactRequest) error {
	if req.IsZero() {
		return ErrNotValidated
	}

	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	from := f.state
	f.state = StateSubmitting
	f.errors = nil
	f.mu.Unlock()
	f.transition(from, StateSubmitting)

	err := f.deliver(ctx, req)

	f.mu.Lock()
	if err != nil {
		f.state = StateIdle
		f.mu.Unlock()
		f.transition(StateSubmitting, StateIdle)
		f.notifier.Notify(Notification{Level: LevelError, Message: FailureMessage})
		return err
	}
	f.state = StateSucceeded
	// fields edited after req was validated were never sent; keep them
	if domain.NewContactRequest(f.input) == req {
		f.input = domain.ContactInput{}
	}
	f.mu.Unlock()
	f.transition(StateSubmitting, StateSucceeded)
	f.notifier.Notify(Notification{Level: LevelSuccess, Message: SuccessMessage})
	return nil
}

func (f *Form) deliver(ctx context.Context, req domain.ContactRequest) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f.delivery.Deliver(ctx, req)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err == nil {
		return nil
	}

	var derr *domain.DeliveryError
	if errors.As(err, &derr) {
		return derr
	}
	return &domain.DeliveryError{
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
}

func (f *Form) transition(from, to State) {
	if from != to && f.onTransition != nil {
		f.onTransition(from, to)
	}
}
