package units

// Length conversion factors.
const (
	feetPerMeter      = 3.28084
	milesPerKilometer = 0.621371
)

// MetersToFeet converts meters to feet.
func MetersToFeet(m float64) float64 { return m * feetPerMeter }

// FeetToMeters converts feet to meters.
func FeetToMeters(ft float64) float64 { return ft / feetPerMeter }

// KilometersToMiles converts kilometers to miles. The inverse direction is
// not implemented; see the package doc on asymmetries.
func KilometersToMiles(km float64) float64 { return km * milesPerKilometer }

// FromMeters converts v meters into the target unit named by to.
// Supported targets: feet. Sign policy belongs to the caller.
func FromMeters(to string, v float64) (float64, error) {
	target, ok := ResolveLengthUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Feet:
		return MetersToFeet(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromFeet converts v feet into the target unit named by to.
// Supported targets: meters.
func FromFeet(to string, v float64) (float64, error) {
	target, ok := ResolveLengthUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Meters:
		return FeetToMeters(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromKilometers converts v kilometers into the target unit named by to.
// Supported targets: miles (one-way; miles→kilometers is not implemented).
func FromKilometers(to string, v float64) (float64, error) {
	target, ok := ResolveLengthUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Miles:
		return KilometersToMiles(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}
