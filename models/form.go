package models

// Wizard step numbers. Steps are strictly sequential; forward movement is
// gated by validation plus per-step completeness.
const (
	StepService  = 1
	StepVehicle  = 2
	StepSchedule = 3
	StepLocation = 4
	StepConfirm  = 5

	StepFirst = StepService
	StepLast  = StepConfirm
)

// ServiceStepData holds the step 1 selections.
type ServiceStepData struct {
	Service *Service      `json:"service,omitempty"`
	Level   *ServiceLevel `json:"level,omitempty"`
}

// VehicleStepData holds the step 2 vehicle. IsExisting distinguishes a saved
// vehicle from one entered during the wizard.
type VehicleStepData struct {
	Vehicle    *Vehicle `json:"vehicle,omitempty"`
	IsExisting bool     `json:"isExisting"`
}

// ScheduleStepData holds the step 3 date and slot, plus availability fetched
// lazily per month keyed by "2006-01".
type ScheduleStepData struct {
	SelectedDate  string                       `json:"selectedDate,omitempty"` // "2006-01-02"
	SelectedSlot  *TimeSlot                    `json:"selectedSlot,omitempty"`
	MonthsFetched map[string][]DayAvailability `json:"monthsFetched,omitempty"`
	TimeZone      string                       `json:"timeZone,omitempty"`
}

// LocationStepData holds the step 4 location and contact info.
type LocationStepData struct {
	Location *Location    `json:"location,omitempty"`
	Contact  *ContactInfo `json:"contact,omitempty"`
}

// ConfirmStepData holds the step 5 acknowledgements.
type ConfirmStepData struct {
	TermsAccepted  bool   `json:"termsAccepted"`
	MarketingOptIn bool   `json:"marketingOptIn"`
	SpecialRequest string `json:"specialRequest,omitempty"`
}

// BookingFormData is the canonical wizard state. Each step sub-record stays
// nil until the user reaches it.
type BookingFormData struct {
	ServiceStep  *ServiceStepData  `json:"serviceStep,omitempty"`
	VehicleStep  *VehicleStepData  `json:"vehicleStep,omitempty"`
	ScheduleStep *ScheduleStepData `json:"scheduleStep,omitempty"`
	LocationStep *LocationStepData `json:"locationStep,omitempty"`
	ConfirmStep  *ConfirmStepData  `json:"confirmStep,omitempty"`
}

// NewBookingFormData builds the empty initial form: mobile service in the US
// and email as the preferred contact channel.
func NewBookingFormData() *BookingFormData {
	return &BookingFormData{
		LocationStep: &LocationStepData{
			Location: &Location{
				Type:    LocationMobile,
				Address: &Address{Country: "US"},
			},
			Contact: &ContactInfo{PreferredContact: ContactEmail},
		},
	}
}
