// File: services/booking/submit.go
package booking

import (
	"context"

	"glossify/models"
	"glossify/services/validation"

	"go.uber.org/zap"
)

// Submit revalidates the whole form, assembles the booking record and posts
// it to the backend.
//
// Any validation failure aborts before the network is touched and carries
// the full violation list. A missing price breakdown is a precondition
// failure: submission requires a previously successful computation and does
// not recompute inline. On transport failure the form is left untouched and
// the error message is recorded on the session for display.
func (svc *Service) Submit(ctx context.Context, sess *Session) (*models.BookingCreationResponse, error) {
	form := sess.FormData()

	errs := validation.ValidateAll(form)
	// Field rules cannot express object presence (e.g. a slot must actually
	// be selected), so incomplete steps are reported alongside them.
	for step := models.StepFirst; step <= models.StepLast; step++ {
		if !validation.IsStepComplete(step, form) {
			errs = append(errs, models.ValidationError{
				Step:    step,
				Field:   "step",
				Message: "step is incomplete",
				Code:    "incomplete",
			})
		}
	}
	if len(errs) > 0 {
		// Recorded errors are replaced per step, never accumulated across
		// attempts.
		grouped := make(map[int][]models.ValidationError)
		for _, ve := range errs {
			grouped[ve.Step] = append(grouped[ve.Step], ve)
		}
		for step, stepErrs := range grouped {
			sess.validationErrors[step] = stepErrs
		}
		sess.emit(EventValidationError, sess.CurrentStep(), map[string]any{
			"errorCount": len(errs),
		})
		return nil, &ValidationFailedError{Errors: errs}
	}

	breakdown := sess.Pricing()
	if breakdown == nil {
		return nil, &PreconditionError{Op: "Submit", Reason: "pricing has not been computed"}
	}

	record := assembleRecord(form, *breakdown)

	sess.isSubmitting = true
	sess.submissionError = ""
	sess.emit(EventSubmissionStarted, sess.CurrentStep(), nil)

	resp, err := svc.API.CreateBooking(ctx, record)
	sess.isSubmitting = false

	if err != nil {
		sess.submissionError = err.Error()
		sess.emit(EventSubmissionFailed, sess.CurrentStep(), map[string]any{
			"error": err.Error(),
		})
		svc.logger.Error("booking submission failed",
			zap.String("sessionId", sess.ID()), zap.Error(err))
		return nil, &TransportError{Op: "Submit", Err: err}
	}

	sess.emit(EventSubmissionCompleted, sess.CurrentStep(), map[string]any{
		"confirmationNumber": resp.ConfirmationNumber,
	})
	svc.logger.Info("booking submitted",
		zap.String("sessionId", sess.ID()),
		zap.String("confirmationNumber", resp.ConfirmationNumber))
	return resp, nil
}

// assembleRecord flattens the stepped form into the wire payload. The form
// is guaranteed complete by ValidateAll before this runs.
func assembleRecord(form *models.BookingFormData, breakdown models.PricingBreakdown) models.BookingRecord {
	record := models.BookingRecord{
		Service:       *form.ServiceStep.Service,
		ServiceLevel:  *form.ServiceStep.Level,
		Vehicle:       *form.VehicleStep.Vehicle,
		ScheduledDate: form.ScheduleStep.SelectedDate,
		TimeSlot:      *form.ScheduleStep.SelectedSlot,
		Location:      *form.LocationStep.Location,
		ContactInfo:   *form.LocationStep.Contact,
		Pricing:       breakdown,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}
	if form.ConfirmStep != nil {
		record.SpecialInstructions = form.ConfirmStep.SpecialRequest
	}
	return record
}
