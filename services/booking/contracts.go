package booking

import (
	"context"

	"glossify/models"
)

// DetailingAPI is the opaque backend boundary: availability lookups, vehicle
// creation and booking submission all live behind it.
type DetailingAPI interface {
	GetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error)
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	CreateBooking(ctx context.Context, record models.BookingRecord) (*models.BookingCreationResponse, error)
}

// Notifier hands a composed notification to the external dispatcher, which
// owns actual delivery.
type Notifier interface {
	Dispatch(ctx context.Context, req models.NotificationRequest) error
}

// ReminderScheduler enqueues a reminder for delivery at a future time.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload) error
}
