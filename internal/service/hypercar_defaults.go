package service

import (
	"math"
	"strconv"

	"github.com/MKhiriev/vip-motors/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultCurrency         = "USD"
	defaultEmoji            = "🏎️"
	defaultPowerUnit        = "HP"
	defaultSpeedUnit        = "MPH"
	defaultAccelerationUnit = "s"
	defaultWeightUnit       = "kg"
)

var amountPrinter = message.NewPrinter(language.English)

// applyHypercarDefaults fills the unit, status and display fields a client
// may omit. It runs before every write.
func applyHypercarDefaults(car *models.Hypercar) {
	setDefault(&car.Price.Currency, defaultCurrency)
	setDefault(&car.Emoji, defaultEmoji)
	setDefault(&car.Specs.Power.Unit, defaultPowerUnit)
	setDefault(&car.Specs.TopSpeed.Unit, defaultSpeedUnit)
	setDefault(&car.Specs.Acceleration.Unit, defaultAccelerationUnit)
	setDefault(&car.Specs.Weight.Unit, defaultWeightUnit)
	if car.Status == "" {
		car.Status = models.StatusAvailable
	}

	setDefault(&car.Price.Formatted, car.Price.Currency+" "+formatAmount(car.Price.Amount))
	setDefault(&car.Specs.Power.Formatted, formatNumber(car.Specs.Power.Value)+" "+car.Specs.Power.Unit)
	setDefault(&car.Specs.TopSpeed.Formatted, formatNumber(car.Specs.TopSpeed.Value)+" "+car.Specs.TopSpeed.Unit)
	setDefault(&car.Specs.Acceleration.Formatted, formatNumber(car.Specs.Acceleration.Value)+"s 0-60")

	car.FullName = car.DisplayName()
}

// clearStaleFormatting drops display strings whose source value changed
// while the string itself was left as it was.
func clearStaleFormatting(before models.Hypercar, after *models.Hypercar) {
	if after.Price.Formatted == before.Price.Formatted &&
		(after.Price.Amount != before.Price.Amount || after.Price.Currency != before.Price.Currency) {
		after.Price.Formatted = ""
	}
	clearStaleMeasure(before.Specs.Power, &after.Specs.Power)
	clearStaleMeasure(before.Specs.TopSpeed, &after.Specs.TopSpeed)
	clearStaleMeasure(before.Specs.Acceleration, &after.Specs.Acceleration)
}

func clearStaleMeasure(before models.Measure, after *models.Measure) {
	if after.Formatted == before.Formatted && (after.Value != before.Value || after.Unit != before.Unit) {
		after.Formatted = ""
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// formatAmount renders 3000000 as "3,000,000".
func formatAmount(amount float64) string {
	if amount == math.Trunc(amount) && math.Abs(amount) < math.MaxInt64 {
		return amountPrinter.Sprintf("%d", int64(amount))
	}
	return amountPrinter.Sprintf("%.2f", amount)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
