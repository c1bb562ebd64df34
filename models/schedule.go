package models

import "time"

// TimeSlot is a bookable interval on a given day. SurgePrice is a flat
// surcharge applied when demand pricing is active for the slot.
type TimeSlot struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Available  bool      `json:"available"`
	SurgePrice *float64  `json:"surgePrice,omitempty"`
}

// DayAvailability is one calendar day's computed slot set.
type DayAvailability struct {
	Date        string     `json:"date"` // "2006-01-02"
	Slots       []TimeSlot `json:"slots"`
	FullyBooked bool       `json:"fullyBooked"`
}

// AvailabilityRequest asks the backend for open slots matching the current
// selections.
type AvailabilityRequest struct {
	ServiceID     string       `json:"serviceId"`
	VehicleSize   SizeCategory `json:"vehicleSize"`
	LocationType  LocationType `json:"locationType"`
	PreferredDate string       `json:"preferredDate,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AvailabilityResponse is the backend's per-request availability payload.
type AvailabilityResponse struct {
	AvailableDays     []DayAvailability `json:"availableDays"`
	NextAvailableDate string            `json:"nextAvailableDate,omitempty"`
	BlackoutDates     []string          `json:"blackoutDates"`
	TimeZone          string            `json:"timeZone"`
}
