package models

import "time"

// NotificationChannel selects the delivery medium for a dispatch request.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelPush  NotificationChannel = "push"
)

// Recipient identifies who a notification is addressed to.
type Recipient struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Name  string `json:"name"`
}

// NotificationRequest is the payload handed to the external dispatcher. The
// dispatcher owns delivery; the core only decides what to send and when.
type NotificationRequest struct {
	TemplateID   string              `json:"templateId"`
	Recipient    Recipient           `json:"recipient"`
	Variables    map[string]any      `json:"variables"`
	ScheduledFor *time.Time          `json:"scheduledFor,omitempty"`
	Channel      NotificationChannel `json:"channel"`
}

// ReminderSettings controls optional post-booking reminders.
type ReminderSettings struct {
	Enabled     bool  `json:"enabled"`
	OffsetHours []int `json:"offsetHours"` // hours before the appointment
}

// ReminderPayload is the asynq task body for a scheduled reminder.
type ReminderPayload struct {
	ConfirmationNumber string              `json:"confirmationNumber"`
	TemplateID         string              `json:"templateId"`
	Recipient          Recipient           `json:"recipient"`
	Variables          map[string]any      `json:"variables"`
	Channel            NotificationChannel `json:"channel"`
	FireAt             time.Time           `json:"fireAt"`
}
