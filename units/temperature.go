package units

import "github.com/h-mp/unitconv/validate"

// Fahrenheit is an affine rescaling of Celsius: F = C·9/5 + 32.
const (
	fahrenheitScale  = 9.0 / 5.0
	fahrenheitOffset = 32.0
)

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
// Total over finite floats; range policy belongs to the caller.
func CelsiusToFahrenheit(c float64) float64 {
	return c*fahrenheitScale + fahrenheitOffset
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - fahrenheitOffset) / fahrenheitScale
}

// FromCelsius converts v degrees Celsius into the target unit named by to.
// The input is gated against the -273.15°C absolute-zero floor before any
// dispatch. Unknown or unsupported targets return ErrConversionNotAvailable.
func FromCelsius(to string, v float64) (float64, error) {
	if err := validate.CelsiusRange(v); err != nil {
		return 0, err
	}

	target, ok := ResolveTemperatureUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Fahrenheit:
		return CelsiusToFahrenheit(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}

// FromFahrenheit converts v degrees Fahrenheit into the target unit named by
// to, gating the input against the -459.67°F absolute-zero floor first.
func FromFahrenheit(to string, v float64) (float64, error) {
	if err := validate.FahrenheitRange(v); err != nil {
		return 0, err
	}

	target, ok := ResolveTemperatureUnit(to)
	if !ok {
		return 0, ErrConversionNotAvailable
	}

	switch target {
	case Celsius:
		return FahrenheitToCelsius(v), nil
	default:
		return 0, ErrConversionNotAvailable
	}
}
