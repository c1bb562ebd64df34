package models

import "time"

// BookingStatus values carried on a submitted booking record.
const (
	BookingStatusPending = "pending"
	PaymentStatusPending = "pending"
)

// BookingRecord is the payload submitted to the backend booking API.
type BookingRecord struct {
	Service             Service          `json:"service"`
	ServiceLevel        ServiceLevel     `json:"serviceLevel"`
	Vehicle             Vehicle          `json:"vehicle"`
	ScheduledDate       string           `json:"scheduledDate"`
	TimeSlot            TimeSlot         `json:"timeSlot"`
	Location            Location         `json:"location"`
	ContactInfo         ContactInfo      `json:"contactInfo"`
	Pricing             PricingBreakdown `json:"pricing"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	Status              string           `json:"status"`
	PaymentStatus       string           `json:"paymentStatus"`
}

// CreatedBooking is the backend's durable booking record.
type CreatedBooking struct {
	ID        string        `json:"id"`
	Record    BookingRecord `json:"record"`
	CreatedAt time.Time     `json:"createdAt"`
}

// BookingCreationResponse is returned by the backend on successful submission.
type BookingCreationResponse struct {
	Booking            CreatedBooking `json:"booking"`
	ConfirmationNumber string         `json:"confirmationNumber"`
	EstimatedArrival   string         `json:"estimatedArrival,omitempty"`
	PaymentRequired    bool           `json:"paymentRequired"`
	NextSteps          []string       `json:"nextSteps"`
}
