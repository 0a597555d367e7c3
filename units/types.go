// Package units defines canonical unit identifiers, alias tables and
// sentinel errors for the unitconv category converters.
package units

import (
	"errors"
	"strings"
)

// ErrConversionNotAvailable indicates that a requested unit, or the specific
// ordered (from, to) pair, is not implemented. The message deliberately does
// not say which part of the request failed.
var ErrConversionNotAvailable = errors.New("units: conversion not available")

// Unit is a canonical unit identifier. Aliases resolve to exactly one Unit
// within their category.
type Unit string

// Canonical units, grouped by category.
const (
	// Temperature.
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"

	// Length.
	Meters     Unit = "meters"
	Feet       Unit = "feet"
	Kilometers Unit = "kilometers"
	Miles      Unit = "miles"

	// Weight.
	Kilograms Unit = "kilograms"
	Pounds    Unit = "pounds"
	Grams     Unit = "grams"
	Ounces    Unit = "ounces"

	// Volume.
	Liters  Unit = "liters"
	Gallons Unit = "gallons"
	Pints   Unit = "pints"

	// Speed.
	KilometersPerHour Unit = "kilometers per hour"
	MilesPerHour      Unit = "miles per hour"
	MetersPerSecond   Unit = "meters per second"
)

// Normalize lower-cases and trims a unit or category name so that alias
// lookup never depends on case or stray whitespace.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Per-category alias tables. Keys are pre-normalized; each maps a full word
// and its common abbreviation to the canonical unit.
var (
	temperatureAliases = map[string]Unit{
		"celsius":    Celsius,
		"c":          Celsius,
		"fahrenheit": Fahrenheit,
		"f":          Fahrenheit,
	}

	lengthAliases = map[string]Unit{
		"meters":     Meters,
		"m":          Meters,
		"feet":       Feet,
		"ft":         Feet,
		"kilometers": Kilometers,
		"km":         Kilometers,
		"miles":      Miles,
		"mi":         Miles,
	}

	weightAliases = map[string]Unit{
		"kilograms": Kilograms,
		"kg":        Kilograms,
		"pounds":    Pounds,
		"lb":        Pounds,
		"lbs":       Pounds,
		"grams":     Grams,
		"g":         Grams,
		"ounces":    Ounces,
		"oz":        Ounces,
	}

	volumeAliases = map[string]Unit{
		"liters":  Liters,
		"l":       Liters,
		"gallons": Gallons,
		"gal":     Gallons,
		"pints":   Pints,
		"pt":      Pints,
	}

	speedAliases = map[string]Unit{
		"kilometers per hour": KilometersPerHour,
		"kmh":                 KilometersPerHour,
		"km/h":                KilometersPerHour,
		"kph":                 KilometersPerHour,
		"miles per hour":      MilesPerHour,
		"mph":                 MilesPerHour,
		"meters per second":   MetersPerSecond,
		"m/s":                 MetersPerSecond,
		"mps":                 MetersPerSecond,
	}
)

// resolve normalizes name and looks it up in the given alias table.
func resolve(table map[string]Unit, name string) (Unit, bool) {
	u, ok := table[Normalize(name)]

	return u, ok
}

// ResolveTemperatureUnit resolves a temperature alias ("celsius", "C", "f", …)
// to its canonical Unit. The second result reports whether the alias is known.
func ResolveTemperatureUnit(name string) (Unit, bool) { return resolve(temperatureAliases, name) }

// ResolveLengthUnit resolves a length alias ("meters", "M", "ft", …).
func ResolveLengthUnit(name string) (Unit, bool) { return resolve(lengthAliases, name) }

// ResolveWeightUnit resolves a weight alias ("kilograms", "KG", "lbs", …).
func ResolveWeightUnit(name string) (Unit, bool) { return resolve(weightAliases, name) }

// ResolveVolumeUnit resolves a volume alias ("liters", "GAL", "pt", …).
func ResolveVolumeUnit(name string) (Unit, bool) { return resolve(volumeAliases, name) }

// ResolveSpeedUnit resolves a speed alias ("kmh", "km/h", "MPH", …).
func ResolveSpeedUnit(name string) (Unit, bool) { return resolve(speedAliases, name) }
