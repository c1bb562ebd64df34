package validation

import (
	"fmt"
	"time"

	"glossify/models"
	"glossify/utils"
)

// Custom validator codes.
const (
	CodeYearRange        = "year_out_of_range"
	CodeDatePast         = "date_in_past"
	CodeRequiredMobile   = "required_for_mobile"
	CodeSlotUnavailable  = "slot_unavailable"
	CodePhoneInvalid     = "phone_invalid"
	CodeTermsNotAccepted = "terms_not_accepted"
)

// vehicleYearInRange accepts model years from 1900 through next year, so
// early releases of the upcoming model year pass.
func vehicleYearInRange(value any, _ *models.BookingFormData) string {
	year, ok := value.(int)
	if !ok {
		return ""
	}
	maxYear := time.Now().Year() + 1
	if year < 1900 || year > maxYear {
		return fmt.Sprintf("year must be between 1900 and %d", maxYear)
	}
	return ""
}

// dateNotInPast compares on the calendar date alone; booking for later today
// is allowed.
func dateNotInPast(value any, _ *models.BookingFormData) string {
	raw, ok := value.(string)
	if !ok || raw == "" {
		return ""
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "date must use the YYYY-MM-DD format"
	}
	if utils.IsDateBeforeToday(date, time.Now()) {
		return "date cannot be in the past"
	}
	return ""
}

// requiredForMobile makes an address field mandatory only when the chosen
// location type is mobile; for shop drop-off the address is ignored. The
// location type is re-read from the full form, not the field schema.
func requiredForMobile(fieldName string) func(any, *models.BookingFormData) string {
	return func(value any, form *models.BookingFormData) string {
		if form.LocationStep == nil || form.LocationStep.Location == nil {
			return ""
		}
		if form.LocationStep.Location.Type != models.LocationMobile {
			return ""
		}
		if isEmpty(value) {
			return fmt.Sprintf("%s is required for mobile service", fieldName)
		}
		return ""
	}
}

// slotSelectable rejects slots flagged unavailable and slots whose start time
// has already passed.
func slotSelectable(value any, _ *models.BookingFormData) string {
	slot, ok := value.(*models.TimeSlot)
	if !ok || slot == nil {
		return ""
	}
	if !slot.Available {
		return "the selected time slot is no longer available"
	}
	if !slot.StartTime.After(time.Now()) {
		return "the selected time slot has already started"
	}
	return ""
}

// phoneDialable defers emptiness to the required rule and checks shape only.
func phoneDialable(value any, _ *models.BookingFormData) string {
	phone, ok := value.(string)
	if !ok || phone == "" {
		return ""
	}
	if !utils.IsValidPhoneNumber(phone) {
		return "phone number is not valid"
	}
	return ""
}

// termsStrictlyTrue requires an explicit acceptance; anything but true fails.
func termsStrictlyTrue(value any, _ *models.BookingFormData) string {
	accepted, ok := value.(bool)
	if !ok || !accepted {
		return "you must accept the terms of service"
	}
	return ""
}
