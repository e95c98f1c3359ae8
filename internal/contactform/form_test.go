package contactform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"europlast-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu            sync.Mutex
	transitions   []string
	notifications []Notification
}

func (r *recorder) hook(from, to State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, from.String()+"->"+to.String())
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorder) Transitions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.transitions...)
}

func (r *recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}

func newForm(t *testing.T, d Delivery, opts ...Option) (*Form, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithNotifier(rec), WithTransitionHook(rec.hook)}, opts...)
	return New(d, opts...), rec
}

func TestFormStartsIdle(t *testing.T) {
	f, _ := newForm(t, DeliveryFunc(func(context.Context, domain.ContactRequest) error { return nil }))

	assert.Equal(t, StateIdle, f.State())
	assert.False(t, f.Busy())
	assert.Empty(t, f.Errors())
}

func TestFormSubmitSucceeds(t *testing.T) {
	defer goleak.VerifyNone(t)

	var delivered []domain.ContactRequest
	f, rec := newForm(t, DeliveryFunc(func(_ context.Context, req domain.ContactRequest) error {
		delivered = append(delivered, req)
		return nil
	}))
	require.NoError(t, f.Fill(validInput()))

	require.NoError(t, f.SubmitForm(context.Background()))

	assert.Equal(t, StateSucceeded, f.State())
	assert.Equal(t, []string{"Idle->Submitting", "Submitting->Succeeded"}, rec.Transitions())
	assert.Equal(t, domain.ContactInput{}, f.Input(), "fields are cleared after success")
	assert.Equal(t, []Notification{{Level: LevelSuccess, Message: SuccessMessage}}, rec.Notifications())
	require.Len(t, delivered, 1)
	assert.Equal(t, "alice@example.com", delivered[0].Email())

	require.NoError(t, f.Set(domain.FieldName, "Bob"))
	assert.Equal(t, StateIdle, f.State())
}

func TestFormSuccessKeepsFieldsEditedAfterValidation(t *testing.T) {
	var delivered domain.ContactRequest
	f, _ := newForm(t, DeliveryFunc(func(_ context.Context, req domain.ContactRequest) error {
		delivered = req
		return nil
	}))
	require.NoError(t, f.Fill(validInput()))
	req, errs := f.Validate()
	require.Empty(t, errs)

	require.NoError(t, f.Set(domain.FieldSubject, "Follow-up on pricing"))
	require.NoError(t, f.Submit(context.Background(), req))

	assert.Equal(t, StateSucceeded, f.State())
	assert.Equal(t, "Partnership Inquiry", delivered.Subject())
	assert.Equal(t, "Follow-up on pricing", f.Input().Subject, "unsent edit survives")
}

func TestFormDeliveryFailureKeepsFields(t *testing.T) {
	defer goleak.VerifyNone(t)

	fail := true
	f, rec := newForm(t, DeliveryFunc(func(context.Context, domain.ContactRequest) error {
		if fail {
			return errors.New("smtp: connection refused")
		}
		return nil
	}))
	require.NoError(t, f.Fill(validInput()))

	err := f.SubmitForm(context.Background())

	var derr *domain.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.False(t, derr.Timeout)
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, []string{"Idle->Submitting", "Submitting->Idle"}, rec.Transitions())
	assert.Equal(t, validInput(), f.Input())
	assert.Equal(t, []Notification{{Level: LevelError, Message: FailureMessage}}, rec.Notifications())

	// manual retry without retyping
	fail = false
	require.NoError(t, f.SubmitForm(context.Background()))
	assert.Equal(t, StateSucceeded, f.State())
}

func TestFormValidationFailureDoesNotDispatch(t *testing.T) {
	calls := 0
	f, rec := newForm(t, DeliveryFunc(func(context.Context, domain.ContactRequest) error {
		calls++
		return nil
	}))
	in := validInput()
	in.Name = "A"
	in.Email = "not-an-email"
	require.NoError(t, f.Fill(in))

	err := f.SubmitForm(context.Background())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email", "name"}, verr.Fields.Fields())
	assert.Equal(t, StateFailed, f.State())
	assert.Equal(t, verr.Fields, f.Errors())
	assert.Zero(t, calls)
	assert.Empty(t, rec.Notifications())

	require.NoError(t, f.Set(domain.FieldName, "Alice"))
	require.NoError(t, f.Set(domain.FieldEmail, "alice@example.com"))
	_, errs := f.Validate()
	assert.Empty(t, errs)
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, []string{"Idle->Failed", "Failed->Idle"}, rec.Transitions())
}

func TestFormRejectsConcurrentSubmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex
	f, rec := newForm(t, DeliveryFunc(func(ctx context.Context, _ domain.ContactRequest) error {
		mu.Lock()
		calls++
		mu.Unlock()
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}))
	require.NoError(t, f.Fill(validInput()))
	req, errs := f.Validate()
	require.Empty(t, errs)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- f.Submit(context.Background(), req)
	}()
	require.Eventually(t, f.Busy, time.Second, time.Millisecond)

	assert.ErrorIs(t, f.Submit(context.Background(), req), domain.ErrSubmissionInFlight)
	assert.ErrorIs(t, f.SubmitForm(context.Background()), domain.ErrSubmissionInFlight)
	assert.ErrorIs(t, f.Set(domain.FieldName, "Mallory"), domain.ErrSubmissionInFlight)
	assert.Equal(t, StateSubmitting, f.State())
	assert.Empty(t, rec.Notifications())

	close(release)
	require.NoError(t, <-firstDone)

	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
	assert.Equal(t, []string{"Idle->Submitting", "Submitting->Succeeded"}, rec.Transitions())
}

func TestFormDeliveryTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	f, rec := newForm(t, DeliveryFunc(func(ctx context.Context, _ domain.ContactRequest) error {
		<-ctx.Done()
		return ctx.Err()
	}), WithTimeout(20*time.Millisecond))
	require.NoError(t, f.Fill(validInput()))

	err := f.SubmitForm(context.Background())

	var derr *domain.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.True(t, derr.Timeout)
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, validInput(), f.Input())
	assert.Equal(t, []Notification{{Level: LevelError, Message: FailureMessage}}, rec.Notifications())
}

func TestFormSubmitRequiresValidatedRequest(t *testing.T) {
	f, rec := newForm(t, DeliveryFunc(func(context.Context, domain.ContactRequest) error { return nil }))

	assert.ErrorIs(t, f.Submit(context.Background(), domain.ContactRequest{}), ErrNotValidated)
	assert.Equal(t, StateIdle, f.State())
	assert.Empty(t, rec.Transitions())
}

func TestFormSetUnknownField(t *testing.T) {
	f, _ := newForm(t, nil)

	assert.ErrorIs(t, f.Set("fax", "123"), ErrUnknownField)
}

func TestFormReset(t *testing.T) {
	f, _ := newForm(t, nil)
	require.NoError(t, f.Set(domain.FieldName, "A"))
	f.Validate()
	require.Equal(t, StateFailed, f.State())

	require.NoError(t, f.Reset())

	assert.Equal(t, StateIdle, f.State())
	assert.Empty(t, f.Errors())
	assert.Equal(t, domain.ContactInput{}, f.Input())
}
