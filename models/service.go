package models

// Service is a detailing package offered by the shop.
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	BasePrice       float64 `json:"basePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category"` // e.g. "exterior", "interior", "full"
}

// ServiceLevel scales a service up or down (e.g. express, standard, premium).
type ServiceLevel struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	PriceMultiplier float64  `json:"priceMultiplier"`
	Features        []string `json:"features,omitempty"`
}
