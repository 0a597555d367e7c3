package validate

import (
	"errors"
	"math"
	"strings"
)

// Sentinel errors returned by the validators. Callers match them with
// errors.Is; the validators never wrap them.
var (
	// ErrNotANumber indicates the value is NaN or ±Inf.
	ErrNotANumber = errors.New("validate: input must be a number")
	// ErrNotAString indicates a unit or category name is empty or blank.
	ErrNotAString = errors.New("validate: input must be a string")
	// ErrNotASlice indicates a nil slice was passed where a batch is required.
	ErrNotASlice = errors.New("validate: input must be an array")
	// ErrNegativeNumber indicates a negative value where a magnitude is required.
	ErrNegativeNumber = errors.New("validate: number must be positive")
	// ErrBelowAbsoluteZeroC indicates a temperature below absolute zero in Celsius.
	ErrBelowAbsoluteZeroC = errors.New("validate: temperature must be greater than or equal to -273.15°C")
	// ErrBelowAbsoluteZeroF indicates a temperature below absolute zero in Fahrenheit.
	ErrBelowAbsoluteZeroF = errors.New("validate: temperature must be greater than or equal to -459.67°F")
)

// Physical floor for temperature inputs, per scale.
const (
	// AbsoluteZeroCelsius is the lowest admissible Celsius temperature.
	AbsoluteZeroCelsius = -273.15
	// AbsoluteZeroFahrenheit is the lowest admissible Fahrenheit temperature.
	AbsoluteZeroFahrenheit = -459.67
)

// Number reports whether x is a usable finite number.
// Returns ErrNotANumber for NaN and ±Inf, nil otherwise. O(1).
func Number(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNotANumber
	}

	return nil
}

// UnitName checks that s names a unit or category: non-empty after trimming
// whitespace. Returns ErrNotAString on failure. O(len(s)).
func UnitName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrNotAString
	}

	return nil
}

// Slice checks that xs is a usable batch. Only nil is rejected; an empty
// non-nil slice is a valid (empty) batch. Returns ErrNotASlice on failure.
func Slice(xs []float64) error {
	if xs == nil {
		return ErrNotASlice
	}

	return nil
}

// Positive checks that x is a non-negative magnitude.
// Returns ErrNegativeNumber when x < 0. Assumes x is finite (see Number).
func Positive(x float64) error {
	if x < 0 {
		return ErrNegativeNumber
	}

	return nil
}

// CelsiusRange checks that x is a physically possible Celsius temperature.
// Returns ErrBelowAbsoluteZeroC when x < -273.15.
func CelsiusRange(x float64) error {
	if x < AbsoluteZeroCelsius {
		return ErrBelowAbsoluteZeroC
	}

	return nil
}

// FahrenheitRange checks that x is a physically possible Fahrenheit
// temperature. Returns ErrBelowAbsoluteZeroF when x < -459.67.
func FahrenheitRange(x float64) error {
	if x < AbsoluteZeroFahrenheit {
		return ErrBelowAbsoluteZeroF
	}

	return nil
}
