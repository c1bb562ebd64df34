package validation

import (
	"regexp"

	"glossify/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	platePattern = regexp.MustCompile(`^[A-Za-z0-9 \-]+$`)
)

// stepSchema maps each wizard step to its ordered field rule table.
var stepSchema = map[int][]FieldRules{
	models.StepService:  serviceStepRules(),
	models.StepVehicle:  vehicleStepRules(),
	models.StepSchedule: scheduleStepRules(),
	models.StepLocation: locationStepRules(),
	models.StepConfirm:  confirmStepRules(),
}

func serviceStepRules() []FieldRules {
	return []FieldRules{
		{
			Path: "service",
			Get: func(f *models.BookingFormData) any {
				if f.ServiceStep == nil || f.ServiceStep.Service == nil {
					return nil
				}
				return f.ServiceStep.Service
			},
			Rules: []Rule{Required{Message: "please choose a detailing service"}},
		},
		{
			Path: "serviceLevel",
			Get: func(f *models.BookingFormData) any {
				if f.ServiceStep == nil || f.ServiceStep.Level == nil {
					return nil
				}
				return f.ServiceStep.Level
			},
			Rules: []Rule{Required{Message: "please choose a service level"}},
		},
	}
}

func vehicleStepRules() []FieldRules {
	return []FieldRules{
		{
			Path: "vehicle",
			Get: func(f *models.BookingFormData) any {
				if f.VehicleStep == nil || f.VehicleStep.Vehicle == nil {
					return nil
				}
				return f.VehicleStep.Vehicle
			},
			Rules: []Rule{Required{Message: "please add a vehicle"}},
		},
		{
			Path: "vehicle.make",
			Get: func(f *models.BookingFormData) any {
				if v := vehicleOf(f); v != nil {
					return v.Make
				}
				return nil
			},
			Rules: []Rule{
				Required{Message: "vehicle make is required"},
				MinLength{N: 2, Message: "vehicle make must be at least 2 characters"},
				MaxLength{N: 50, Message: "vehicle make must be at most 50 characters"},
			},
		},
		{
			Path: "vehicle.model",
			Get: func(f *models.BookingFormData) any {
				if v := vehicleOf(f); v != nil {
					return v.Model
				}
				return nil
			},
			Rules: []Rule{
				Required{Message: "vehicle model is required"},
				MaxLength{N: 50, Message: "vehicle model must be at most 50 characters"},
			},
		},
		{
			Path: "vehicle.year",
			Get: func(f *models.BookingFormData) any {
				if v := vehicleOf(f); v != nil {
					return v.Year
				}
				return nil
			},
			Rules: []Rule{Custom{Code: CodeYearRange, Check: vehicleYearInRange}},
		},
		{
			Path: "vehicle.color",
			Get: func(f *models.BookingFormData) any {
				if v := vehicleOf(f); v != nil {
					return v.Color
				}
				return nil
			},
			Rules: []Rule{Required{Message: "vehicle color is required"}},
		},
		{
			Path: "vehicle.licensePlate",
			Get: func(f *models.BookingFormData) any {
				if v := vehicleOf(f); v != nil {
					return v.LicensePlate
				}
				return nil
			},
			Rules: []Rule{
				Required{Message: "license plate is required"},
				MaxLength{N: 12, Message: "license plate must be at most 12 characters"},
				Pattern{Regexp: platePattern, Message: "license plate may only contain letters, digits, spaces and dashes"},
			},
		},
	}
}

func scheduleStepRules() []FieldRules {
	return []FieldRules{
		{
			Path: "schedule.date",
			Get: func(f *models.BookingFormData) any {
				if f.ScheduleStep == nil {
					return nil
				}
				return f.ScheduleStep.SelectedDate
			},
			Rules: []Rule{
				Required{Message: "please pick an appointment date"},
				Custom{Code: CodeDatePast, Check: dateNotInPast},
			},
		},
		{
			Path: "schedule.slot",
			Get: func(f *models.BookingFormData) any {
				if f.ScheduleStep == nil || f.ScheduleStep.SelectedSlot == nil {
					return nil
				}
				return f.ScheduleStep.SelectedSlot
			},
			Rules: []Rule{Custom{Code: CodeSlotUnavailable, Check: slotSelectable}},
		},
	}
}

func locationStepRules() []FieldRules {
	return []FieldRules{
		{
			Path: "location.address.street",
			Get: func(f *models.BookingFormData) any {
				if a := addressOf(f); a != nil {
					return a.Street
				}
				return nil
			},
			Rules: []Rule{Custom{Code: CodeRequiredMobile, Check: requiredForMobile("street")}},
		},
		{
			Path: "location.address.city",
			Get: func(f *models.BookingFormData) any {
				if a := addressOf(f); a != nil {
					return a.City
				}
				return nil
			},
			Rules: []Rule{Custom{Code: CodeRequiredMobile, Check: requiredForMobile("city")}},
		},
		{
			Path: "location.address.zipCode",
			Get: func(f *models.BookingFormData) any {
				if a := addressOf(f); a != nil {
					return a.ZipCode
				}
				return nil
			},
			Rules: []Rule{
				Custom{Code: CodeRequiredMobile, Check: requiredForMobile("zip code")},
				Pattern{Regexp: zipPattern, Message: "zip code must look like 12345 or 12345-6789"},
			},
		},
		{
			Path: "contact.name",
			Get: func(f *models.BookingFormData) any {
				if c := contactOf(f); c != nil {
					return c.Name
				}
				return nil
			},
			Rules: []Rule{
				Required{Message: "contact name is required"},
				MinLength{N: 2, Message: "contact name must be at least 2 characters"},
				MaxLength{N: 100, Message: "contact name must be at most 100 characters"},
			},
		},
		{
			Path: "contact.email",
			Get: func(f *models.BookingFormData) any {
				if c := contactOf(f); c != nil {
					return c.Email
				}
				return nil
			},
			Rules: []Rule{
				Required{Message: "email address is required"},
				Pattern{Regexp: emailPattern, Message: "email address is not valid"},
			},
		},
		{
			Path: "contact.phone",
			Get: func(f *models.BookingFormData) any {
				if c := contactOf(f); c != nil {
					return c.Phone
				}
				return nil
			},
			Rules: []Rule{
				Required{Message: "phone number is required"},
				Custom{Code: CodePhoneInvalid, Check: phoneDialable},
			},
		},
	}
}

func confirmStepRules() []FieldRules {
	return []FieldRules{
		{
			Path: "confirm.termsAccepted",
			// Returns false (not nil) when the step is untouched so the
			// strict-acceptance check still fires on submission.
			Get: func(f *models.BookingFormData) any {
				if f.ConfirmStep == nil {
					return false
				}
				return f.ConfirmStep.TermsAccepted
			},
			Rules: []Rule{Custom{Code: CodeTermsNotAccepted, Check: termsStrictlyTrue}},
		},
		{
			Path: "confirm.specialRequest",
			Get: func(f *models.BookingFormData) any {
				if f.ConfirmStep == nil {
					return nil
				}
				return f.ConfirmStep.SpecialRequest
			},
			Rules: []Rule{MaxLength{N: 500, Message: "special request must be at most 500 characters"}},
		},
	}
}

func vehicleOf(f *models.BookingFormData) *models.Vehicle {
	if f.VehicleStep == nil {
		return nil
	}
	return f.VehicleStep.Vehicle
}

func addressOf(f *models.BookingFormData) *models.Address {
	if f.LocationStep == nil || f.LocationStep.Location == nil {
		return nil
	}
	return f.LocationStep.Location.Address
}

func contactOf(f *models.BookingFormData) *models.ContactInfo {
	if f.LocationStep == nil {
		return nil
	}
	return f.LocationStep.Contact
}
