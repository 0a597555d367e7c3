package units

// Speed conversion factors. The mile is the international mile (1609.344 m),
// so km/h↔mph round-trips exactly up to float rounding.
const (
	kilometersPerMile = 1.609344
	kmhPerMps         = 3.6
)

// KmhToMph converts kilometers per hour to miles per hour.
func KmhToMph(kmh float64) float64 { return kmh / kilometersPerMile }

// MphToKmh converts miles per hour to kilometers per hour.
func MphToKmh(mph float64) float64 { return mph * kilometersPerMile }

// MpsToKmh converts meters per second to kilometers per hour. The inverse
// direction is not implemented; see the package doc on asymmetries.
func MpsToKmh(mps float64) float64 { return mps * kmhPerMps }

// FromKilometersPerHour converts v km/h into the target unit named by to.
// Supported targets: miles per hour.
func FromKilometersPerHour(to string, v float64) (float64, error) {
	target, ok := ResolveSpeedUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case MilesPerHour:
		return KmhToMph(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromMilesPerHour converts v mph into the target unit named by to.
// Supported targets: kilometers per hour.
func FromMilesPerHour(to string, v float64) (float64, error) {
	target, ok := ResolveSpeedUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case KilometersPerHour:
		return MphToKmh(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromMetersPerSecond converts v m/s into the target unit named by to.
// Supported targets: kilometers per hour (one-way).
func FromMetersPerSecond(to string, v float64) (float64, error) {
	target, ok := ResolveSpeedUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case KilometersPerHour:
		return MpsToKmh(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}
