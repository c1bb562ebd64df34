// File: services/booking/availability.go
package booking

import (
	"context"

	"glossify/models"

	"go.uber.org/zap"
)

// LoadAvailability fetches the backend's computed availability for one
// month (key "2006-01") and merges it into the session's schedule step.
//
// Requests are not deduplicated here; rapid month switching can put several
// requests in flight, and the UI layer is expected to debounce. What this
// layer does guarantee is staleness handling: each call records its month
// key as the active one, and a response is applied only if its key is still
// active at resolution time. A superseded response is discarded silently.
func (svc *Service) LoadAvailability(ctx context.Context, sess *Session, monthKey string) error {
	form := sess.FormData()
	if form.ServiceStep == nil || form.ServiceStep.Service == nil {
		return &PreconditionError{Op: "LoadAvailability", Reason: "no service selected"}
	}
	if form.VehicleStep == nil || form.VehicleStep.Vehicle == nil {
		return &PreconditionError{Op: "LoadAvailability", Reason: "no vehicle selected"}
	}

	req := models.AvailabilityRequest{
		ServiceID:     form.ServiceStep.Service.ID,
		VehicleSize:   form.VehicleStep.Vehicle.Size,
		LocationType:  locationTypeOf(form),
		PreferredDate: preferredDateOf(form, monthKey),
	}

	sess.activeMonthKey = monthKey
	sess.isLoading = true
	resp, err := svc.API.GetAvailability(ctx, req)
	sess.isLoading = false

	if sess.activeMonthKey != monthKey {
		// A newer request superseded this one while it was in flight; its
		// outcome, success or failure, no longer matters.
		svc.logger.Debug("discarding stale availability response",
			zap.String("sessionId", sess.ID()),
			zap.String("staleKey", monthKey),
			zap.String("activeKey", sess.activeMonthKey),
			zap.Error(err))
		return nil
	}

	if err != nil {
		svc.logger.Error("availability fetch failed",
			zap.String("sessionId", sess.ID()),
			zap.String("monthKey", monthKey),
			zap.Error(err))
		return &TransportError{Op: "LoadAvailability", Err: err}
	}

	if form.ScheduleStep == nil {
		form.ScheduleStep = &models.ScheduleStepData{}
	}
	if form.ScheduleStep.MonthsFetched == nil {
		form.ScheduleStep.MonthsFetched = make(map[string][]models.DayAvailability)
	}
	form.ScheduleStep.MonthsFetched[monthKey] = resp.AvailableDays
	if resp.TimeZone != "" {
		form.ScheduleStep.TimeZone = resp.TimeZone
	}

	sess.emit(EventDataUpdated, models.StepSchedule, map[string]any{
		"monthKey": monthKey,
		"days":     len(resp.AvailableDays),
	})
	sess.checkpoint(ctx)
	return nil
}

func locationTypeOf(form *models.BookingFormData) models.LocationType {
	if form.LocationStep != nil && form.LocationStep.Location != nil {
		return form.LocationStep.Location.Type
	}
	return models.LocationMobile
}

func preferredDateOf(form *models.BookingFormData, monthKey string) string {
	if form.ScheduleStep != nil && form.ScheduleStep.SelectedDate != "" {
		return form.ScheduleStep.SelectedDate
	}
	// Ask for the month being browsed when no date is picked yet.
	return monthKey + "-01"
}
