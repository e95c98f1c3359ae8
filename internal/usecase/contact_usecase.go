package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"europlast-backend/internal/contactform"
	"europlast-backend/internal/domain"
	"europlast-backend/pkg/security"
	"europlast-backend/pkg/submission"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// leaseGrace keeps the in-flight lease alive slightly past the delivery timeout.
const leaseGrace = 5 * time.Second

type contactUsecase struct {
	validate    *validator.Validate
	guard       submission.Guard
	dispatchers []domain.ContactDispatcher
	timeout     time.Duration
	secLogger   *security.SecurityLogger
	now         func() time.Time
}

// NewContactUsecase creates a new contact usecase. Every dispatcher must
// accept a submission for it to count as delivered. validate must carry the
// tags from pkg/validation.
func NewContactUsecase(validate *validator.Validate, guard submission.Guard, timeout time.Duration, dispatchers ...domain.ContactDispatcher) (domain.ContactUsecase, error) {
	if err := contactform.CheckValidator(validate); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = contactform.DefaultTimeout
	}
	if guard == nil {
		guard = submission.NewMemoryGuard()
	}
	return &contactUsecase{
		validate:    validate,
		guard:       guard,
		dispatchers: dispatchers,
		timeout:     timeout,
		secLogger:   security.DefaultLogger(),
		now:         time.Now,
	}, nil
}

func (uc *contactUsecase) Validate(input domain.ContactInput) (domain.ContactRequest, domain.FieldErrors, error) {
	return contactform.ValidateWith(uc.validate, input)
}

// SendContactMessage hands req to every dispatcher and waits for all of them.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, meta domain.ContactMeta, req domain.ContactRequest) (*domain.ContactReceipt, error) {
	if req.IsZero() {
		return nil, contactform.ErrNotValidated
	}
	if len(uc.dispatchers) == 0 {
		return nil, domain.ErrDeliveryUnavailable
	}

	key := meta.ClientKey
	if key == "" {
		key = meta.ClientIP
	}
	lease, err := uc.guard.Acquire(ctx, key, uc.timeout+leaseGrace)
	if errors.Is(err, submission.ErrHeld) {
		uc.secLogger.LogDuplicateSubmission(ctx, key, meta.ClientIP, meta.RequestID)
		return nil, domain.ErrSubmissionInFlight
	}
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submission lease: %w", err)
	}

	sub := &domain.ContactSubmission{
		ID:         uuid.NewString(),
		ReceivedAt: uc.now().UTC(),
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
		RequestID:  meta.RequestID,
		Request:    req,
	}

	err = uc.dispatch(ctx, sub)

	// A timed-out dispatcher may still be sending; its lease runs out on its own.
	var derr *domain.DeliveryError
	if !errors.As(err, &derr) || !derr.Timeout {
		_ = lease.Release(context.WithoutCancel(ctx))
	}

	uc.secLogger.LogSubmission(ctx, sub.ID, req.Email(), meta.ClientIP, meta.RequestID, err)
	if err != nil {
		return nil, err
	}

	return &domain.ContactReceipt{ID: sub.ID, ReceivedAt: sub.ReceivedAt}, nil
}

func (uc *contactUsecase) dispatch(ctx context.Context, sub *domain.ContactSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, d := range uc.dispatchers {
		d := d
		g.Go(func() error {
			return d.Dispatch(gctx, sub)
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
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
	return &domain.DeliveryError{
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
}

// InboxDispatcher archives submissions in the contact inbox.
type InboxDispatcher struct {
	Repo domain.ContactInboxRepository
}

func (d InboxDispatcher) Dispatch(ctx context.Context, sub *domain.ContactSubmission) error {
	if err := d.Repo.Save(ctx, sub); err != nil {
		return fmt.Errorf("failed to archive contact submission: %w", err)
	}
	return nil
}

// SimulatedDispatcher stands in for a real mail backend by waiting Delay
// before reporting success.
type SimulatedDispatcher struct {
	Delay time.Duration
}

func (d SimulatedDispatcher) Dispatch(ctx context.Context, _ *domain.ContactSubmission) error {
	if d.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(d.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
