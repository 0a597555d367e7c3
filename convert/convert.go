package convert

import (
	"sort"

	"github.com/h-mp/unitconv/units"
	"github.com/h-mp/unitconv/validate"
)

// formula is one pure pairwise conversion.
type formula func(float64) float64

// resolvers maps each category to its alias-table lookup. Unit resolution is
// category-scoped: an alias only resolves within the category it belongs to.
var resolvers = map[Category]func(string) (units.Unit, bool){
	Temperature: units.ResolveTemperatureUnit,
	Length:      units.ResolveLengthUnit,
	Weight:      units.ResolveWeightUnit,
	Volume:      units.ResolveVolumeUnit,
	Speed:       units.ResolveSpeedUnit,
}

// positiveOnly lists the categories whose input must be a non-negative
// magnitude. Temperature is absent: its domain is bounded by absolute zero
// instead (see rangeGates).
var positiveOnly = map[Category]bool{
	Length: true,
	Weight: true,
	Volume: true,
	Speed:  true,
}

// rangeGates holds per-source-unit physical-domain checks, applied after the
// source unit resolves and before dispatch.
var rangeGates = map[units.Unit]func(float64) error{
	units.Celsius:    validate.CelsiusRange,
	units.Fahrenheit: validate.FahrenheitRange,
}

// conversions is the dispatch table: one entry per supported ordered
// (category, from, to) triple, populated at initialization and read-only
// afterwards. Pairs without a listed inverse are one-way on purpose.
var conversions = map[Triple]formula{
	{Temperature, units.Celsius, units.Fahrenheit}: units.CelsiusToFahrenheit,
	{Temperature, units.Fahrenheit, units.Celsius}: units.FahrenheitToCelsius,

	{Length, units.Meters, units.Feet}:      units.MetersToFeet,
	{Length, units.Feet, units.Meters}:      units.FeetToMeters,
	{Length, units.Kilometers, units.Miles}: units.KilometersToMiles, // one-way

	{Weight, units.Kilograms, units.Pounds}: units.KilogramsToPounds,
	{Weight, units.Pounds, units.Kilograms}: units.PoundsToKilograms,
	{Weight, units.Grams, units.Ounces}:     units.GramsToOunces, // one-way

	{Volume, units.Liters, units.Gallons}: units.LitersToGallons,
	{Volume, units.Gallons, units.Liters}: units.GallonsToLiters,
	{Volume, units.Liters, units.Pints}:   units.LitersToPints, // one-way

	{Speed, units.KilometersPerHour, units.MilesPerHour}:    units.KmhToMph,
	{Speed, units.MilesPerHour, units.KilometersPerHour}:    units.MphToKmh,
	{Speed, units.MetersPerSecond, units.KilometersPerHour}: units.MpsToKmh, // one-way
}

// Convert resolves the (category, fromUnit, toUnit) triple and applies the
// matching formula to value.
//
// Validation runs in a fixed order: unit strings, value finiteness,
// positivity (non-temperature categories), then category/unit/pair
// resolution with the temperature range gate between source resolution and
// dispatch. Resolution failures all surface ErrConversionNotAvailable.
//
// Complexity: O(1) — constant-size map lookups and one formula application.
func Convert(category, fromUnit, toUnit string, value float64) (float64, error) {
	if err := validate.UnitName(fromUnit); err != nil {
		return 0, err
	}
	if err := validate.UnitName(toUnit); err != nil {
		return 0, err
	}
	if err := validate.Number(value); err != nil {
		return 0, err
	}

	cat := Category(units.Normalize(category))
	resolveUnit, ok := resolvers[cat]
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	if positiveOnly[cat] {
		if err := validate.Positive(value); err != nil {
			return 0, err
		}
	}

	from, ok := resolveUnit(fromUnit)
	if !ok {
		return 0, ErrConversionNotAvailable
	}
	to, ok := resolveUnit(toUnit)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	if gate, gated := rangeGates[from]; gated {
		if err := gate(value); err != nil {
			return 0, err
		}
	}

	fn, ok := conversions[Triple{Category: cat, From: from, To: to}]
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	return fn(value), nil
}

// ConvertTemperature converts a temperature value between the named units.
func ConvertTemperature(fromUnit, toUnit string, value float64) (float64, error) {
	return Convert(string(Temperature), fromUnit, toUnit, value)
}

// ConvertLength converts a length value between the named units.
func ConvertLength(fromUnit, toUnit string, value float64) (float64, error) {
	return Convert(string(Length), fromUnit, toUnit, value)
}

// ConvertWeight converts a weight value between the named units.
func ConvertWeight(fromUnit, toUnit string, value float64) (float64, error) {
	return Convert(string(Weight), fromUnit, toUnit, value)
}

// ConvertVolume converts a volume value between the named units.
func ConvertVolume(fromUnit, toUnit string, value float64) (float64, error) {
	return Convert(string(Volume), fromUnit, toUnit, value)
}

// ConvertSpeed converts a speed value between the named units.
func ConvertSpeed(fromUnit, toUnit string, value float64) (float64, error) {
	return Convert(string(Speed), fromUnit, toUnit, value)
}

// SupportedConversions returns every triple in the dispatch table, sorted by
// category, source and target unit. The result is a fresh slice; mutating it
// does not affect the table.
func SupportedConversions() []Triple {
	triples := make([]Triple, 0, len(conversions))
	for key := range conversions {
		triples = append(triples, key)
	}
	sort.Slice(triples, func(i, j int) bool {
		a, b := triples[i], triples[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})

	return triples
}
