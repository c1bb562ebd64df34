// File: services/booking/session.go
package booking

import (
	"context"
	"time"

	"glossify/models"
	"glossify/services/pricing"
	"glossify/services/validation"
	"glossify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one customer's booking wizard state: the canonical form data,
// the current step, recorded validation errors and the derived price. It is
// client-local interactive state mutated by a single control flow; there is
// no locking because there is no concurrent writer.
type Session struct {
	id          string
	createdAt   time.Time
	form        *models.BookingFormData
	currentStep int

	// validationErrors holds the last recorded violations per step. They
	// are cleared as soon as the user edits that step again.
	validationErrors map[int][]models.ValidationError

	// breakdown is nil until pricing preconditions are met; it is replaced
	// wholesale on every recompute, never patched.
	breakdown *models.PricingBreakdown

	isLoading    bool
	isSubmitting bool

	// submissionError is the last transport failure message, for display.
	submissionError string

	// activeMonthKey is the month of the most recent availability request;
	// responses for any other month are stale and get discarded.
	activeMonthKey string

	listeners map[string]EventListener
	store     SessionStore
	logger    *zap.Logger
}

// NewSession starts an empty booking session at step 1. The store may be nil
// for purely in-memory use; when present the session checkpoints itself
// after every mutation.
func NewSession(store SessionStore) *Session {
	return &Session{
		id:               uuid.New().String(),
		createdAt:        time.Now(),
		form:             models.NewBookingFormData(),
		currentStep:      models.StepFirst,
		validationErrors: make(map[int][]models.ValidationError),
		listeners:        make(map[string]EventListener),
		store:            store,
		logger:           utils.GetLogger(),
	}
}

// Resume rebuilds a session from a stored checkpoint.
func Resume(ctx context.Context, store SessionStore, id string) (*Session, error) {
	snap, err := store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	s := NewSession(store)
	s.id = snap.ID
	s.createdAt = snap.CreatedAt
	s.currentStep = snap.CurrentStep
	if snap.Form != nil {
		s.form = snap.Form
	}
	s.breakdown = snap.Pricing
	return s, nil
}

func (s *Session) ID() string                        { return s.id }
func (s *Session) CurrentStep() int                  { return s.currentStep }
func (s *Session) FormData() *models.BookingFormData { return s.form }
func (s *Session) Pricing() *models.PricingBreakdown { return s.breakdown }
func (s *Session) IsLoading() bool                   { return s.isLoading }
func (s *Session) IsSubmitting() bool                { return s.isSubmitting }
func (s *Session) SubmissionError() string           { return s.submissionError }

// IsLastStep reports whether the wizard is on the confirmation step.
func (s *Session) IsLastStep() bool {
	return s.currentStep == models.StepLast
}

// CanProceed reports whether the current step allows forward navigation.
func (s *Session) CanProceed() bool {
	return validation.CanProceed(s.currentStep, s.form)
}

// ValidationErrors returns the recorded violations for a step.
func (s *Session) ValidationErrors(step int) []models.ValidationError {
	return s.validationErrors[step]
}

// GoToStep moves the wizard to step n. Forward moves are gated: when the
// current step does not validate or is incomplete, fresh violations are
// recorded, a validation_error event fires and the step does not change.
// Backward moves are never validated.
func (s *Session) GoToStep(ctx context.Context, n int) error {
	if n < models.StepFirst || n > models.StepLast {
		return ErrStepOutOfRange
	}
	if n > s.currentStep && !validation.CanProceed(s.currentStep, s.form) {
		errs := validation.ValidateStep(s.currentStep, s.form)
		s.validationErrors[s.currentStep] = errs
		s.emit(EventValidationError, s.currentStep, map[string]any{
			"errorCount": len(errs),
		})
		s.logger.Debug("navigation blocked",
			zap.String("sessionId", s.id),
			zap.Int("fromStep", s.currentStep),
			zap.Int("toStep", n),
			zap.Int("errors", len(errs)))
		return ErrNavigationBlocked
	}
	if n == s.currentStep {
		return nil
	}
	from := s.currentStep
	s.currentStep = n
	s.emit(EventStepChanged, n, map[string]any{"fromStep": from})
	s.checkpoint(ctx)
	return nil
}

// NextStep advances one step, subject to the forward gate.
func (s *Session) NextStep(ctx context.Context) error {
	return s.GoToStep(ctx, s.currentStep+1)
}

// PreviousStep moves one step back. Below step 1 it is a no-op.
func (s *Session) PreviousStep(ctx context.Context) error {
	if s.currentStep <= models.StepFirst {
		return nil
	}
	return s.GoToStep(ctx, s.currentStep-1)
}

// UpdateStepData shallow-merges a partial patch into the step's sub-record:
// only the named subfields are replaced. Recorded validation errors for the
// step are cleared before anything else, so stale errors never outlive an
// edit, and pricing is recomputed when a pricing-relevant step (1-4)
// changed. A recompute that fails its preconditions simply leaves pricing
// unset; it never blocks the data update.
func (s *Session) UpdateStepData(ctx context.Context, step int, patch StepPatch) error {
	if step < models.StepFirst || step > models.StepLast {
		return ErrStepOutOfRange
	}
	if patch == nil {
		return nil
	}
	if patch.step() != step {
		return &PreconditionError{
			Op:     "UpdateStepData",
			Reason: "patch does not belong to the requested step",
		}
	}

	delete(s.validationErrors, step)
	patch.apply(s.form)

	if step != models.StepConfirm {
		s.recomputePricing()
	}

	s.emit(EventDataUpdated, step, nil)
	s.checkpoint(ctx)
	return nil
}

// Reset restores the empty initial form at step 1 and discards validation
// errors, pricing and any stored checkpoint.
func (s *Session) Reset(ctx context.Context) {
	s.form = models.NewBookingFormData()
	s.currentStep = models.StepFirst
	s.validationErrors = make(map[int][]models.ValidationError)
	s.breakdown = nil
	s.submissionError = ""
	s.activeMonthKey = ""
	if s.store != nil {
		if err := s.store.Drop(ctx, s.id); err != nil {
			s.logger.Warn("failed to drop session checkpoint",
				zap.String("sessionId", s.id), zap.Error(err))
		}
	}
	s.emit(EventDataUpdated, models.StepFirst, map[string]any{"reset": true})
}

func (s *Session) recomputePricing() {
	breakdown, err := pricing.Calculate(s.form)
	if err != nil {
		// Not all selections exist yet; leave pricing unset.
		s.breakdown = nil
		return
	}
	s.breakdown = breakdown
}

// checkpoint persists a snapshot, best effort. Store failures never block
// local mutation.
func (s *Session) checkpoint(ctx context.Context) {
	if s.store == nil {
		return
	}
	snap := &SessionSnapshot{
		ID:          s.id,
		CreatedAt:   s.createdAt,
		CurrentStep: s.currentStep,
		Form:        s.form,
		Pricing:     s.breakdown,
		SavedAt:     time.Now(),
	}
	if err := s.store.Save(ctx, snap); err != nil {
		s.logger.Warn("failed to checkpoint session",
			zap.String("sessionId", s.id), zap.Error(err))
	}
}
