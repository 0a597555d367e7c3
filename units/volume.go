package units

// Volume conversion factors (US liquid gallon and pint).
const (
	litersPerGallon = 3.785411784
	pintsPerLiter   = 2.11337642
)

// LitersToGallons converts liters to US gallons.
func LitersToGallons(l float64) float64 { return l / litersPerGallon }

// GallonsToLiters converts US gallons to liters.
func GallonsToLiters(gal float64) float64 { return gal * litersPerGallon }

// LitersToPints converts liters to US pints. The inverse direction is not
// implemented; see the package doc on asymmetries.
func LitersToPints(l float64) float64 { return l * pintsPerLiter }

// FromLiters converts v liters into the target unit named by to.
// Supported targets: gallons, pints.
func FromLiters(to string, v float64) (float64, error) {
	target, ok := ResolveVolumeUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Gallons:
		return LitersToGallons(v), nil
	case Pints:
		return LitersToPints(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromGallons converts v US gallons into the target unit named by to.
// Supported targets: liters.
func FromGallons(to string, v float64) (float64, error) {
	target, ok := ResolveVolumeUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Liters:
		return GallonsToLiters(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}
