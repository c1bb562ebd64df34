// File: services/pricing/calculator.go
package pricing

import (
	"errors"
	"fmt"

	"glossify/models"
)

// TaxRate is the flat sales tax applied on top of subtotal plus surcharges.
const TaxRate = 0.08

// MobileSurcharge is the flat travel fee for mobile service; shop drop-off
// carries no surcharge.
const MobileSurcharge = 25.0

// ErrMissingSelections is returned when pricing is requested before the
// service, level and vehicle selections exist. Computing a price without
// them is a sequencing error, not a case for defaults.
var ErrMissingSelections = errors.New("pricing: service, level and vehicle selections are required")

// sizeMultipliers maps a vehicle size category to its price factor.
var sizeMultipliers = map[models.SizeCategory]float64{
	models.SizeSmall:  1.0,
	models.SizeMedium: 1.2,
	models.SizeLarge:  1.5,
	models.SizeXLarge: 2.0,
}

// locationSurcharges maps a location type to its flat surcharge.
var locationSurcharges = map[models.LocationType]float64{
	models.LocationMobile: MobileSurcharge,
	models.LocationShop:   0,
}

// SizeMultiplier returns the factor for a size category, defaulting to the
// small-vehicle factor for unknown values.
func SizeMultiplier(size models.SizeCategory) float64 {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return 1.0
}

// Calculate derives a fresh price breakdown from the current selections.
// It is a pure function of the form data: identical inputs always produce
// identical output and nothing is mutated or fetched.
//
// The derivation order is fixed:
//
//	subtotal   = basePrice x levelMultiplier x sizeMultiplier
//	surcharges = slot surge (if any) + location surcharge
//	taxes      = (subtotal + surcharges) x TaxRate
//	total      = subtotal + surcharges + taxes
func Calculate(form *models.BookingFormData) (*models.PricingBreakdown, error) {
	if form == nil || form.ServiceStep == nil || form.ServiceStep.Service == nil || form.ServiceStep.Level == nil {
		return nil, fmt.Errorf("%w: no service or level selected", ErrMissingSelections)
	}
	if form.VehicleStep == nil || form.VehicleStep.Vehicle == nil {
		return nil, fmt.Errorf("%w: no vehicle selected", ErrMissingSelections)
	}

	service := form.ServiceStep.Service
	level := form.ServiceStep.Level
	vehicle := form.VehicleStep.Vehicle

	levelMultiplier := level.PriceMultiplier
	sizeMultiplier := SizeMultiplier(vehicle.Size)
	subtotal := service.BasePrice * levelMultiplier * sizeMultiplier

	slotSurcharge := 0.0
	if form.ScheduleStep != nil && form.ScheduleStep.SelectedSlot != nil {
		// Surge is additive only; a negative input from the backend must not
		// push the total below the subtotal.
		if surge := form.ScheduleStep.SelectedSlot.SurgePrice; surge != nil && *surge > 0 {
			slotSurcharge = *surge
		}
	}

	locationSurcharge := 0.0
	if form.LocationStep != nil && form.LocationStep.Location != nil {
		locationSurcharge = locationSurcharges[form.LocationStep.Location.Type]
	}

	surcharges := slotSurcharge + locationSurcharge
	taxes := (subtotal + surcharges) * TaxRate

	return &models.PricingBreakdown{
		ServicePrice:          subtotal,
		LevelMultiplier:       levelMultiplier,
		VehicleSizeMultiplier: sizeMultiplier,
		TimeSlotSurcharge:     slotSurcharge,
		LocationSurcharge:     locationSurcharge,
		Taxes:                 taxes,
		Discounts:             0, // promotional discounts are not computed here
		Total:                 subtotal + surcharges + taxes,
	}, nil
}
