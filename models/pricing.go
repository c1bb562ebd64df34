package models

// PricingBreakdown is the derived price for the current selections. It is a
// value type: recomputed wholesale on every relevant change, never patched.
type PricingBreakdown struct {
	ServicePrice          float64 `json:"servicePrice"` // base price with level and size multipliers applied
	LevelMultiplier       float64 `json:"levelMultiplier"`
	VehicleSizeMultiplier float64 `json:"vehicleSizeMultiplier"`
	TimeSlotSurcharge     float64 `json:"timeSlotSurcharge"`
	LocationSurcharge     float64 `json:"locationSurcharge"`
	Taxes                 float64 `json:"taxes"`
	Discounts             float64 `json:"discounts"` // reserved, always 0
	Total                 float64 `json:"total"`
}
