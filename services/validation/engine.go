// File: services/validation/engine.go
package validation

import (
	"glossify/models"
)

// ValidateStep evaluates the step's rule table against the form and returns
// every violation in schema order. It never fails; an unknown step yields an
// empty list. Callers decide whether the result blocks navigation.
func ValidateStep(step int, form *models.BookingFormData) []models.ValidationError {
	if form == nil {
		return nil
	}
	var errs []models.ValidationError
	for _, fr := range stepSchema[step] {
		errs = append(errs, evaluateField(step, fr, form)...)
	}
	return errs
}

// ValidateAll evaluates every step in order and concatenates the results.
func ValidateAll(form *models.BookingFormData) []models.ValidationError {
	var errs []models.ValidationError
	for step := models.StepFirst; step <= models.StepLast; step++ {
		errs = append(errs, ValidateStep(step, form)...)
	}
	return errs
}

// IsStepValid reports whether the step has zero rule violations.
func IsStepValid(step int, form *models.BookingFormData) bool {
	return len(ValidateStep(step, form)) == 0
}

// CanProceed gates forward navigation: the step must validate cleanly and
// satisfy its business completeness requirements. Completeness covers
// object-presence conditions the per-field rule tables cannot express, such
// as "both a date and a slot are selected".
func CanProceed(step int, form *models.BookingFormData) bool {
	if form == nil {
		return false
	}
	if !IsStepValid(step, form) {
		return false
	}
	return IsStepComplete(step, form)
}

// IsStepComplete reports the business completeness of a step on its own,
// independent of the field rule tables.
func IsStepComplete(step int, form *models.BookingFormData) bool {
	if form == nil {
		return false
	}
	switch step {
	case models.StepService:
		return form.ServiceStep != nil &&
			form.ServiceStep.Service != nil &&
			form.ServiceStep.Level != nil
	case models.StepVehicle:
		return form.VehicleStep != nil && form.VehicleStep.Vehicle != nil
	case models.StepSchedule:
		return form.ScheduleStep != nil &&
			form.ScheduleStep.SelectedDate != "" &&
			form.ScheduleStep.SelectedSlot != nil
	case models.StepLocation:
		return isLocationComplete(form)
	case models.StepConfirm:
		return form.ConfirmStep != nil && form.ConfirmStep.TermsAccepted
	default:
		return false
	}
}

// isLocationComplete enforces the one-of invariant on Location: a mobile
// booking needs an address record, a shop booking needs a shop reference.
func isLocationComplete(form *models.BookingFormData) bool {
	if form.LocationStep == nil || form.LocationStep.Location == nil || form.LocationStep.Contact == nil {
		return false
	}
	loc := form.LocationStep.Location
	switch loc.Type {
	case models.LocationMobile:
		return loc.Address != nil
	case models.LocationShop:
		return loc.ShopID != ""
	default:
		return false
	}
}
