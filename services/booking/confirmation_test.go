package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"glossify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedResponse(sess *Session) *models.BookingCreationResponse {
	return &models.BookingCreationResponse{
		Booking: models.CreatedBooking{
			ID:     "bk-1",
			Record: assembleRecord(sess.FormData(), *sess.Pricing()),
		},
		ConfirmationNumber: "GL-20260830-042",
	}
}

func templateIDs(requests []models.NotificationRequest) []string {
	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.TemplateID)
	}
	return ids
}

func TestConfirmationEmailPreferredSkipsSMS(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newTestService(&fakeAPI{}, notifier, nil)
	sess := completeSession(nil)

	result := svc.SendConfirmation(context.Background(), sess, confirmedResponse(sess), nil)

	assert.True(t, result.Success)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"email", "calendar"}, result.ChannelsAttempted)
	assert.Equal(t,
		[]string{TemplateConfirmationEmail, TemplateCalendarInvite},
		templateIDs(notifier.requests))
}

func TestConfirmationSMSSentForPhonePreference(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newTestService(&fakeAPI{}, notifier, nil)
	sess := completeSession(nil)
	sess.FormData().LocationStep.Contact.PreferredContact = models.ContactSMS

	result := svc.SendConfirmation(context.Background(), sess, confirmedResponse(sess), nil)

	assert.True(t, result.Success)
	assert.Equal(t, []string{"email", "sms", "calendar"}, result.ChannelsAttempted)
	assert.Equal(t, models.ChannelSMS, notifier.requests[1].Channel)
}

func TestConfirmationFailuresAreWarnings(t *testing.T) {
	notifier := &fakeNotifier{
		failOn: map[string]error{
			TemplateConfirmationEmail: errors.New("smtp relay refused"),
		},
	}
	svc := newTestService(&fakeAPI{}, notifier, nil)
	sess := completeSession(nil)

	result := svc.SendConfirmation(context.Background(), sess, confirmedResponse(sess), nil)

	// The failed email did not stop the calendar invite.
	assert.False(t, result.Success)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "email")
	assert.Equal(t, []string{"email", "calendar"}, result.ChannelsAttempted)
	assert.Len(t, notifier.requests, 2)
}

func TestConfirmationSchedulesReminders(t *testing.T) {
	notifier := &fakeNotifier{}
	queue := &fakeReminderQueue{}
	svc := newTestService(&fakeAPI{}, notifier, queue)
	sess := completeSession(nil)

	settings := &models.ReminderSettings{Enabled: true, OffsetHours: []int{2}}
	result := svc.SendConfirmation(context.Background(), sess, confirmedResponse(sess), settings)

	assert.True(t, result.Success)
	assert.Contains(t, result.ChannelsAttempted, "reminders")
	require.Len(t, queue.scheduled, 1)

	slotStart := sess.FormData().ScheduleStep.SelectedSlot.StartTime
	assert.Equal(t, slotStart.Add(-2*time.Hour), queue.scheduled[0].FireAt)
	assert.Equal(t, "GL-20260830-042", queue.scheduled[0].ConfirmationNumber)
	assert.Equal(t, models.ChannelEmail, queue.scheduled[0].Channel)
}

func TestConfirmationSkipsPastReminderOffsets(t *testing.T) {
	queue := &fakeReminderQueue{}
	svc := newTestService(&fakeAPI{}, &fakeNotifier{}, queue)
	sess := completeSession(nil)

	// The appointment is ~24h out, so a 48h-before reminder is already past.
	settings := &models.ReminderSettings{Enabled: true, OffsetHours: []int{48, 2}}
	result := svc.SendConfirmation(context.Background(), sess, confirmedResponse(sess), settings)

	assert.True(t, result.Success)
	require.Len(t, queue.scheduled, 1)
	assert.Equal(t, 2*time.Hour, sess.FormData().ScheduleStep.SelectedSlot.StartTime.Sub(queue.scheduled[0].FireAt))
}

func TestConfirmationRemindersWithoutQueue(t *testing.T) {
	svc := newTestService(&fakeAPI{}, &fakeNotifier{}, nil)
	sess := completeSession(nil)

	settings := &models.ReminderSettings{Enabled: true, OffsetHours: []int{2}}
	result := svc.SendConfirmation(context.Background(), sess, confirmedResponse(sess), settings)

	assert.False(t, result.Success)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "reminder")
}

func TestConfirmationVariables(t *testing.T) {
	sess := completeSession(nil)
	resp := confirmedResponse(sess)
	resp.EstimatedArrival = "09:45"

	vars := confirmationVariables(sess.FormData(), resp)
	assert.Equal(t, "GL-20260830-042", vars["confirmationNumber"])
	assert.Equal(t, "Full Detail", vars["serviceName"])
	assert.Equal(t, "Premium", vars["levelName"])
	assert.Equal(t, "2022 Honda CR-V", vars["vehicle"])
	assert.Equal(t, "09:45", vars["estimatedArrival"])
}
