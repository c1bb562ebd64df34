package booking

import (
	"context"
	"errors"
	"time"

	"glossify/models"
)

// Shared test doubles for the service collaborators.

type fakeAPI struct {
	availability    *models.AvailabilityResponse
	availabilityErr error
	availabilityDly func() // runs between request and response, for staleness tests

	createdVehicle *models.Vehicle
	vehicleErr     error

	bookingResp *models.BookingCreationResponse
	bookingErr  error

	bookingCalls      int
	availabilityCalls int
	lastAvailability  models.AvailabilityRequest
}

func (f *fakeAPI) GetAvailability(_ context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error) {
	f.availabilityCalls++
	f.lastAvailability = req
	if f.availabilityDly != nil {
		f.availabilityDly()
	}
	if f.availabilityErr != nil {
		return nil, f.availabilityErr
	}
	return f.availability, nil
}

func (f *fakeAPI) CreateVehicle(_ context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	if f.vehicleErr != nil {
		return nil, f.vehicleErr
	}
	if f.createdVehicle != nil {
		return f.createdVehicle, nil
	}
	created := vehicle
	created.ID = "veh-assigned"
	return &created, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, _ models.BookingRecord) (*models.BookingCreationResponse, error) {
	f.bookingCalls++
	if f.bookingErr != nil {
		return nil, f.bookingErr
	}
	return f.bookingResp, nil
}

type fakeNotifier struct {
	requests []models.NotificationRequest
	failOn   map[string]error // keyed by template ID
}

func (f *fakeNotifier) Dispatch(_ context.Context, req models.NotificationRequest) error {
	f.requests = append(f.requests, req)
	if err, ok := f.failOn[req.TemplateID]; ok {
		return err
	}
	return nil
}

type fakeReminderQueue struct {
	scheduled []models.ReminderPayload
	err       error
}

func (f *fakeReminderQueue) Schedule(_ context.Context, payload models.ReminderPayload) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, payload)
	return nil
}

var errBackendDown = errors.New("backend down")

// completeForm fills every step with valid data for a mobile booking.
func completeForm() *models.BookingFormData {
	tomorrow := time.Now().Add(24 * time.Hour)
	return &models.BookingFormData{
		ServiceStep: &models.ServiceStepData{
			Service: &models.Service{ID: "svc-full", Name: "Full Detail", BasePrice: 75, DurationMinutes: 180},
			Level:   &models.ServiceLevel{ID: "lvl-premium", Name: "Premium", PriceMultiplier: 1.3},
		},
		VehicleStep: &models.VehicleStepData{
			Vehicle: &models.Vehicle{
				ID:           "veh-1",
				Make:         "Honda",
				Model:        "CR-V",
				Year:         2022,
				Color:        "blue",
				LicensePlate: "XYZ-987",
				Type:         models.VehicleTypeSUV,
				Size:         models.SizeMedium,
			},
			IsExisting: true,
		},
		ScheduleStep: &models.ScheduleStepData{
			SelectedDate: tomorrow.Format("2006-01-02"),
			SelectedSlot: &models.TimeSlot{
				ID:        "slot-9",
				StartTime: tomorrow,
				EndTime:   tomorrow.Add(3 * time.Hour),
				Available: true,
			},
		},
		LocationStep: &models.LocationStepData{
			Location: &models.Location{
				Type: models.LocationMobile,
				Address: &models.Address{
					Street:  "42 Elm St",
					City:    "Springfield",
					State:   "IL",
					ZipCode: "62704",
					Country: "US",
				},
			},
			Contact: &models.ContactInfo{
				Name:             "Dana Smith",
				Email:            "dana@example.com",
				Phone:            "+13125550142",
				PreferredContact: models.ContactEmail,
			},
		},
		ConfirmStep: &models.ConfirmStepData{TermsAccepted: true},
	}
}

// completeSession returns a session whose form is fully filled and whose
// pricing has been computed.
func completeSession(store SessionStore) *Session {
	sess := NewSession(store)
	sess.form = completeForm()
	sess.recomputePricing()
	return sess
}

func newTestService(api *fakeAPI, notifier *fakeNotifier, reminders ReminderScheduler) *Service {
	return NewService(api, notifier, reminders, nil)
}
