package booking

import (
	"context"
	"testing"

	"glossify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthResponse(days ...string) *models.AvailabilityResponse {
	resp := &models.AvailabilityResponse{TimeZone: "America/Chicago"}
	for _, d := range days {
		resp.AvailableDays = append(resp.AvailableDays, models.DayAvailability{Date: d})
	}
	return resp
}

func TestLoadAvailabilityMergesMonth(t *testing.T) {
	api := &fakeAPI{availability: monthResponse("2026-09-03", "2026-09-04")}
	svc := newTestService(api, &fakeNotifier{}, nil)
	sess := completeSession(nil)

	require.NoError(t, svc.LoadAvailability(context.Background(), sess, "2026-09"))

	schedule := sess.FormData().ScheduleStep
	require.Contains(t, schedule.MonthsFetched, "2026-09")
	assert.Len(t, schedule.MonthsFetched["2026-09"], 2)
	assert.Equal(t, "America/Chicago", schedule.TimeZone)
	assert.False(t, sess.IsLoading())
	assert.Equal(t, models.SizeMedium, api.lastAvailability.VehicleSize)
	assert.Equal(t, models.LocationMobile, api.lastAvailability.LocationType)
}

func TestLoadAvailabilityKeepsEarlierMonths(t *testing.T) {
	api := &fakeAPI{availability: monthResponse("2026-09-03")}
	svc := newTestService(api, &fakeNotifier{}, nil)
	sess := completeSession(nil)

	require.NoError(t, svc.LoadAvailability(context.Background(), sess, "2026-09"))
	api.availability = monthResponse("2026-10-12")
	require.NoError(t, svc.LoadAvailability(context.Background(), sess, "2026-10"))

	fetched := sess.FormData().ScheduleStep.MonthsFetched
	assert.Contains(t, fetched, "2026-09")
	assert.Contains(t, fetched, "2026-10")
}

func TestLoadAvailabilityPreconditions(t *testing.T) {
	svc := newTestService(&fakeAPI{}, &fakeNotifier{}, nil)

	sess := NewSession(nil)
	err := svc.LoadAvailability(context.Background(), sess, "2026-09")
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)

	sess.form.ServiceStep = &models.ServiceStepData{Service: &models.Service{ID: "svc-1"}}
	err = svc.LoadAvailability(context.Background(), sess, "2026-09")
	require.ErrorAs(t, err, &pre)
}

func TestLoadAvailabilityTransportFailure(t *testing.T) {
	api := &fakeAPI{availabilityErr: errBackendDown}
	svc := newTestService(api, &fakeNotifier{}, nil)
	sess := completeSession(nil)

	err := svc.LoadAvailability(context.Background(), sess, "2026-09")
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.False(t, sess.IsLoading())
	assert.NotContains(t, sess.FormData().ScheduleStep.MonthsFetched, "2026-09")
}

func TestLoadAvailabilityDiscardsStaleResponse(t *testing.T) {
	api := &fakeAPI{availability: monthResponse("2026-09-03")}
	svc := newTestService(api, &fakeNotifier{}, nil)
	sess := completeSession(nil)

	// While the September request is in flight the user switches to October.
	api.availabilityDly = func() {
		if api.availabilityCalls == 1 {
			sess.activeMonthKey = "2026-10"
		}
	}

	require.NoError(t, svc.LoadAvailability(context.Background(), sess, "2026-09"))
	assert.NotContains(t, sess.FormData().ScheduleStep.MonthsFetched, "2026-09")
}

func TestLoadAvailabilityStaleFailureDiscardedToo(t *testing.T) {
	api := &fakeAPI{availabilityErr: errBackendDown}
	svc := newTestService(api, &fakeNotifier{}, nil)
	sess := completeSession(nil)

	// The request fails, but the user already moved on to another month; the
	// failure belongs to a superseded request and must not surface.
	api.availabilityDly = func() {
		sess.activeMonthKey = "2026-10"
	}

	assert.NoError(t, svc.LoadAvailability(context.Background(), sess, "2026-09"))
	assert.False(t, sess.IsLoading())
}

func TestSaveNewVehicleAssignsID(t *testing.T) {
	api := &fakeAPI{}
	svc := newTestService(api, &fakeNotifier{}, nil)

	sess := completeSession(nil)
	sess.FormData().VehicleStep.IsExisting = false
	sess.FormData().VehicleStep.Vehicle.ID = ""

	require.NoError(t, svc.SaveNewVehicle(context.Background(), sess))
	assert.Equal(t, "veh-assigned", sess.FormData().VehicleStep.Vehicle.ID)
	assert.True(t, sess.FormData().VehicleStep.IsExisting)
}

func TestSaveNewVehiclePassThroughForExisting(t *testing.T) {
	api := &fakeAPI{vehicleErr: errBackendDown}
	svc := newTestService(api, &fakeNotifier{}, nil)

	sess := completeSession(nil) // IsExisting is true
	require.NoError(t, svc.SaveNewVehicle(context.Background(), sess))
	assert.Equal(t, "veh-1", sess.FormData().VehicleStep.Vehicle.ID)
}

func TestSaveNewVehicleTransportFailure(t *testing.T) {
	api := &fakeAPI{vehicleErr: errBackendDown}
	svc := newTestService(api, &fakeNotifier{}, nil)

	sess := completeSession(nil)
	sess.FormData().VehicleStep.IsExisting = false

	err := svc.SaveNewVehicle(context.Background(), sess)
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.False(t, sess.FormData().VehicleStep.IsExisting)
}
