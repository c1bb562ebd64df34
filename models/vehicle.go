package models

// VehicleType categorizes the body style of a customer vehicle.
type VehicleType string

const (
	VehicleTypeSedan      VehicleType = "sedan"
	VehicleTypeSUV        VehicleType = "suv"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeVan        VehicleType = "van"
	VehicleTypeCoupe      VehicleType = "coupe"
	VehicleTypeWagon      VehicleType = "wagon"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
)

// SizeCategory drives the vehicle size pricing multiplier.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeXLarge SizeCategory = "xlarge"
)

// Vehicle is a customer vehicle, either saved previously or entered during
// the wizard. ID is empty until the backend assigns one.
type Vehicle struct {
	ID           string       `json:"id,omitempty"`
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Color        string       `json:"color"`
	LicensePlate string       `json:"licensePlate"`
	Type         VehicleType  `json:"type"`
	Size         SizeCategory `json:"size"`
	Condition    string       `json:"condition,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}
