package booking

import (
	"glossify/models"
)

// StepPatch is a partial update for one step's sub-record. Nil fields are
// left untouched; non-nil fields replace the named subfield wholesale.
type StepPatch interface {
	step() int
	apply(form *models.BookingFormData)
}

// ServicePatch updates the step 1 selections.
type ServicePatch struct {
	Service *models.Service
	Level   *models.ServiceLevel
}

func (ServicePatch) step() int { return models.StepService }

func (p ServicePatch) apply(form *models.BookingFormData) {
	if form.ServiceStep == nil {
		form.ServiceStep = &models.ServiceStepData{}
	}
	if p.Service != nil {
		form.ServiceStep.Service = p.Service
	}
	if p.Level != nil {
		form.ServiceStep.Level = p.Level
	}
}

// VehiclePatch updates the step 2 vehicle.
type VehiclePatch struct {
	Vehicle    *models.Vehicle
	IsExisting *bool
}

func (VehiclePatch) step() int { return models.StepVehicle }

func (p VehiclePatch) apply(form *models.BookingFormData) {
	if form.VehicleStep == nil {
		form.VehicleStep = &models.VehicleStepData{}
	}
	if p.Vehicle != nil {
		form.VehicleStep.Vehicle = p.Vehicle
	}
	if p.IsExisting != nil {
		form.VehicleStep.IsExisting = *p.IsExisting
	}
}

// SchedulePatch updates the step 3 date and slot.
type SchedulePatch struct {
	SelectedDate *string
	SelectedSlot *models.TimeSlot
	TimeZone     *string
}

func (SchedulePatch) step() int { return models.StepSchedule }

func (p SchedulePatch) apply(form *models.BookingFormData) {
	if form.ScheduleStep == nil {
		form.ScheduleStep = &models.ScheduleStepData{}
	}
	if p.SelectedDate != nil {
		form.ScheduleStep.SelectedDate = *p.SelectedDate
	}
	if p.SelectedSlot != nil {
		form.ScheduleStep.SelectedSlot = p.SelectedSlot
	}
	if p.TimeZone != nil {
		form.ScheduleStep.TimeZone = *p.TimeZone
	}
}

// LocationPatch updates the step 4 location and contact info.
type LocationPatch struct {
	Location *models.Location
	Contact  *models.ContactInfo
}

func (LocationPatch) step() int { return models.StepLocation }

func (p LocationPatch) apply(form *models.BookingFormData) {
	if form.LocationStep == nil {
		form.LocationStep = &models.LocationStepData{}
	}
	if p.Location != nil {
		form.LocationStep.Location = p.Location
	}
	if p.Contact != nil {
		form.LocationStep.Contact = p.Contact
	}
}

// ConfirmPatch updates the step 5 acknowledgements.
type ConfirmPatch struct {
	TermsAccepted  *bool
	MarketingOptIn *bool
	SpecialRequest *string
}

func (ConfirmPatch) step() int { return models.StepConfirm }

func (p ConfirmPatch) apply(form *models.BookingFormData) {
	if form.ConfirmStep == nil {
		form.ConfirmStep = &models.ConfirmStepData{}
	}
	if p.TermsAccepted != nil {
		form.ConfirmStep.TermsAccepted = *p.TermsAccepted
	}
	if p.MarketingOptIn != nil {
		form.ConfirmStep.MarketingOptIn = *p.MarketingOptIn
	}
	if p.SpecialRequest != nil {
		form.ConfirmStep.SpecialRequest = *p.SpecialRequest
	}
}
