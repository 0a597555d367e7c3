package units

// Weight conversion factors.
const (
	poundsPerKilogram = 2.20462
	gramsPerOunce     = 28.349523125
)

// KilogramsToPounds converts kilograms to pounds.
func KilogramsToPounds(kg float64) float64 { return kg * poundsPerKilogram }

// PoundsToKilograms converts pounds to kilograms.
func PoundsToKilograms(lb float64) float64 { return lb / poundsPerKilogram }

// GramsToOunces converts grams to ounces. The inverse direction is not
// implemented; see the package doc on asymmetries.
func GramsToOunces(g float64) float64 { return g / gramsPerOunce }

// FromKilograms converts v kilograms into the target unit named by to.
// Supported targets: pounds.
func FromKilograms(to string, v float64) (float64, error) {
	target, ok := ResolveWeightUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Pounds:
		return KilogramsToPounds(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromPounds converts v pounds into the target unit named by to.
// Supported targets: kilograms.
func FromPounds(to string, v float64) (float64, error) {
	target, ok := ResolveWeightUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Kilograms:
		return PoundsToKilograms(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromGrams converts v grams into the target unit named by to.
// Supported targets: ounces (one-way; ounces→grams is not implemented).
func FromGrams(to string, v float64) (float64, error) {
	target, ok := ResolveWeightUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Ounces:
		return GramsToOunces(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}
