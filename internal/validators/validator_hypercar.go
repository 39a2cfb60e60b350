// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/vip-motors/models"
)

// Field groups understood by [HypercarValidator].
const (
	FieldBrand       = "brand"
	FieldCarName     = "name"
	FieldYear        = "year"
	FieldPrice       = "price"
	FieldImages      = "images"
	FieldSpecs       = "specs"
	FieldDescription = "description"
	FieldFeatures    = "features"
	FieldProduction  = "production"
	FieldStatus      = "status"
)

const minModelYear = 1900

var (
	allowedCurrencies     = []string{"USD", "EUR", "GBP", "JPY", "CHF"}
	allowedPowerUnits     = []string{"HP", "kW", "PS"}
	allowedSpeedUnits     = []string{"MPH", "KMH"}
	allowedWeightUnits    = []string{"kg", "lbs"}
	allowedConfigurations = []string{"I4", "I6", "V6", "V8", "V10", "V12", "W12", "W16", "Hybrid", "Electric"}
	allowedTransmissions  = []string{"Manual", "Automatic", "Semi-Automatic", "CVT"}
	allowedDrivetrains    = []string{"RWD", "FWD", "AWD", "4WD"}
	allowedCategories     = []string{"Performance", "Comfort", "Technology", "Safety", "Design"}
	allowedStatuses       = []models.HypercarStatus{
		models.StatusAvailable,
		models.StatusSold,
		models.StatusReserved,
		models.StatusComingSoon,
		models.StatusDiscontinued,
	}
)

// HypercarValidator implements [Validator] for catalog entries. It expects
// defaults (currency, units, status) to be applied already.
type HypercarValidator struct {
	now func() time.Time
}

// NewHypercarValidator constructs a HypercarValidator using the wall clock
// for the model year bound.
func NewHypercarValidator() Validator {
	return &HypercarValidator{now: time.Now}
}

// Validate accepts models.Hypercar or *models.Hypercar.
func (v *HypercarValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Hypercar:
		return v.validateHypercar(value, fields...)
	case *models.Hypercar:
		return v.validateHypercar(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *HypercarValidator) validateHypercar(car models.Hypercar, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldBrand, FieldCarName, FieldYear, FieldPrice, FieldImages, FieldSpecs,
			FieldDescription, FieldFeatures, FieldProduction, FieldStatus,
		}
	}

	c := &collector{}
	for _, f := range fields {
		switch f {
		case FieldBrand:
			c.check(lengthBetween(car.Brand, 1, 50), "brand", "Brand must be between 1 and 50 characters")
		case FieldCarName:
			c.check(lengthBetween(car.Name, 1, 100), "name", "Car name must be between 1 and 100 characters")
		case FieldYear:
			maxYear := v.now().Year() + 5
			c.check(car.Year >= minModelYear && car.Year <= maxYear, "year", "Year must be a valid year")
		case FieldPrice:
			c.check(car.Price.Amount >= 0, "price.amount", "Price must be a positive number")
			c.check(oneOf(car.Price.Currency, allowedCurrencies...), "price.currency", "Currency must be one of "+strings.Join(allowedCurrencies, ", "))
		case FieldImages:
			for i, image := range car.Images {
				c.check(strings.TrimSpace(image.URL) != "", fmt.Sprintf("images[%d].url", i), "Image URL is required")
				c.check(image.Order >= 0, fmt.Sprintf("images[%d].order", i), "Image order must not be negative")
			}
		case FieldSpecs:
			v.checkSpecs(c, car.Specs)
		case FieldDescription:
			c.check(lengthBetween(car.Description.Short, 1, 200), "description.short", "Short description must be between 1 and 200 characters")
			c.check(utf8.RuneCountInString(car.Description.Long) <= 2000, "description.long", "Long description must be at most 2000 characters")
		case FieldFeatures:
			for i, feature := range car.Features {
				c.check(strings.TrimSpace(feature.Name) != "", fmt.Sprintf("features[%d].name", i), "Feature name is required")
				if feature.Category != "" {
					c.check(oneOf(feature.Category, allowedCategories...), fmt.Sprintf("features[%d].category", i), "Category must be one of "+strings.Join(allowedCategories, ", "))
				}
			}
		case FieldProduction:
			p := car.Production
			c.check(p.Units >= 0, "production.units", "Units must not be negative")
			if p.StartYear != 0 && p.EndYear != 0 {
				c.check(p.EndYear >= p.StartYear, "production.endYear", "End year must not precede start year")
			}
		case FieldStatus:
			c.check(oneOf(car.Status, allowedStatuses...), "status", "Status must be one of available, sold, reserved, coming-soon, discontinued")
		default:
			return ErrUnknownField
		}
	}

	return c.err()
}

func (v *HypercarValidator) checkSpecs(c *collector, specs models.Specs) {
	c.check(specs.Power.Value >= 0, "specs.power.value", "Power must be a positive number")
	if specs.Power.Unit != "" {
		c.check(oneOf(specs.Power.Unit, allowedPowerUnits...), "specs.power.unit", "Power unit must be one of HP, kW, PS")
	}

	c.check(specs.TopSpeed.Value >= 0, "specs.topSpeed.value", "Top speed must be a positive number")
	if specs.TopSpeed.Unit != "" {
		c.check(oneOf(specs.TopSpeed.Unit, allowedSpeedUnits...), "specs.topSpeed.unit", "Top speed unit must be one of MPH, KMH")
	}

	c.check(specs.Acceleration.Value >= 0, "specs.acceleration.value", "Acceleration must be a positive number")

	engine := specs.Engine
	c.check(lengthBetween(engine.Description, 1, 100), "specs.engine.description", "Engine description must be between 1 and 100 characters")
	c.check(engine.Displacement >= 0, "specs.engine.displacement", "Displacement must not be negative")
	c.check(engine.Cylinders >= 0, "specs.engine.cylinders", "Cylinders must be at least 1")
	if engine.Configuration != "" {
		c.check(oneOf(engine.Configuration, allowedConfigurations...), "specs.engine.configuration", "Unknown engine configuration")
	}

	c.check(specs.Weight.Value >= 0, "specs.weight.value", "Weight must not be negative")
	if specs.Weight.Unit != "" {
		c.check(oneOf(specs.Weight.Unit, allowedWeightUnits...), "specs.weight.unit", "Weight unit must be kg or lbs")
	}
	if specs.Transmission != "" {
		c.check(oneOf(specs.Transmission, allowedTransmissions...), "specs.transmission", "Unknown transmission")
	}
	if specs.Drivetrain != "" {
		c.check(oneOf(specs.Drivetrain, allowedDrivetrains...), "specs.drivetrain", "Unknown drivetrain")
	}
}
