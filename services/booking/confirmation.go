// File: services/booking/confirmation.go
package booking

import (
	"context"
	"fmt"
	"time"

	"glossify/models"

	"go.uber.org/zap"
)

// Notification templates used by the confirmation fan-out.
const (
	TemplateConfirmationEmail = "booking_confirmation_email"
	TemplateConfirmationSMS   = "booking_confirmation_sms"
	TemplateCalendarInvite    = "booking_calendar_invite"
	TemplateReminder          = "booking_reminder"
)

// ConfirmationResult aggregates the post-booking notification fan-out.
// Success is true only when every attempted channel went through; single
// channel failures are recorded as warnings and never abort the others.
type ConfirmationResult struct {
	ConfirmationNumber string   `json:"confirmationNumber"`
	Success            bool     `json:"success"`
	ChannelsAttempted  []string `json:"channelsAttempted"`
	Warnings           []string `json:"warnings,omitempty"`
}

// SendConfirmation runs the confirmation workflow for a freshly created
// booking: a confirmation email, an SMS unless the customer prefers email,
// a calendar invite, and optional scheduled reminders. Each dispatch is
// attempted independently.
func (svc *Service) SendConfirmation(
	ctx context.Context,
	sess *Session,
	resp *models.BookingCreationResponse,
	reminders *models.ReminderSettings,
) *ConfirmationResult {
	result := &ConfirmationResult{ConfirmationNumber: resp.ConfirmationNumber}

	form := sess.FormData()
	contact := form.LocationStep.Contact
	recipient := models.Recipient{
		Email: contact.Email,
		Phone: contact.Phone,
		Name:  contact.Name,
	}
	variables := confirmationVariables(form, resp)

	// Confirmation email always goes out.
	svc.attemptDispatch(ctx, result, "email", models.NotificationRequest{
		TemplateID: TemplateConfirmationEmail,
		Recipient:  recipient,
		Variables:  variables,
		Channel:    models.ChannelEmail,
	})

	// SMS is skipped when the preferred channel is email.
	if contact.PreferredContact != models.ContactEmail {
		svc.attemptDispatch(ctx, result, "sms", models.NotificationRequest{
			TemplateID: TemplateConfirmationSMS,
			Recipient:  recipient,
			Variables:  variables,
			Channel:    models.ChannelSMS,
		})
	}

	// Calendar invite rides the email channel.
	svc.attemptDispatch(ctx, result, "calendar", models.NotificationRequest{
		TemplateID: TemplateCalendarInvite,
		Recipient:  recipient,
		Variables:  variables,
		Channel:    models.ChannelEmail,
	})

	if reminders != nil && reminders.Enabled {
		svc.scheduleReminders(ctx, result, resp, recipient, variables, reminders, form)
	}

	result.Success = len(result.Warnings) == 0
	return result
}

func (svc *Service) attemptDispatch(ctx context.Context, result *ConfirmationResult, channel string, req models.NotificationRequest) {
	result.ChannelsAttempted = append(result.ChannelsAttempted, channel)
	if err := svc.Notifier.Dispatch(ctx, req); err != nil {
		warning := fmt.Sprintf("%s dispatch failed: %v", channel, err)
		result.Warnings = append(result.Warnings, warning)
		svc.logger.Warn("confirmation dispatch failed",
			zap.String("channel", channel),
			zap.String("templateId", req.TemplateID),
			zap.Error(err))
	}
}

func (svc *Service) scheduleReminders(
	ctx context.Context,
	result *ConfirmationResult,
	resp *models.BookingCreationResponse,
	recipient models.Recipient,
	variables map[string]any,
	settings *models.ReminderSettings,
	form *models.BookingFormData,
) {
	result.ChannelsAttempted = append(result.ChannelsAttempted, "reminders")

	if svc.Reminders == nil {
		result.Warnings = append(result.Warnings, "reminders requested but no reminder queue is configured")
		return
	}

	slot := form.ScheduleStep.SelectedSlot
	for _, offsetHours := range settings.OffsetHours {
		fireAt := slot.StartTime.Add(-time.Duration(offsetHours) * time.Hour)
		if !fireAt.After(time.Now()) {
			continue
		}
		payload := models.ReminderPayload{
			ConfirmationNumber: resp.ConfirmationNumber,
			TemplateID:         TemplateReminder,
			Recipient:          recipient,
			Variables:          variables,
			Channel:            reminderChannelFor(form.LocationStep.Contact.PreferredContact),
			FireAt:             fireAt,
		}
		if err := svc.Reminders.Schedule(ctx, payload); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("reminder at %s failed to schedule: %v", fireAt.Format(time.RFC3339), err))
			svc.logger.Warn("reminder scheduling failed",
				zap.Time("fireAt", fireAt), zap.Error(err))
		}
	}
}

func reminderChannelFor(preferred models.ContactMethod) models.NotificationChannel {
	switch preferred {
	case models.ContactSMS, models.ContactPhone:
		return models.ChannelSMS
	default:
		return models.ChannelEmail
	}
}

func confirmationVariables(form *models.BookingFormData, resp *models.BookingCreationResponse) map[string]any {
	variables := map[string]any{
		"confirmationNumber": resp.ConfirmationNumber,
		"serviceName":        form.ServiceStep.Service.Name,
		"levelName":          form.ServiceStep.Level.Name,
		"scheduledDate":      form.ScheduleStep.SelectedDate,
		"slotStart":          form.ScheduleStep.SelectedSlot.StartTime.Format(time.RFC3339),
		"vehicle": fmt.Sprintf("%d %s %s",
			form.VehicleStep.Vehicle.Year,
			form.VehicleStep.Vehicle.Make,
			form.VehicleStep.Vehicle.Model),
		"total": fmt.Sprintf("%.2f", resp.Booking.Record.Pricing.Total),
	}
	if resp.EstimatedArrival != "" {
		variables["estimatedArrival"] = resp.EstimatedArrival
	}
	return variables
}
