package convert

import (
	"math"

	"github.com/h-mp/unitconv/validate"
)

// decimalBase is the radix used by ConvertAndRoundUp's place scaling.
const decimalBase = 10

// ConvertMultipleValues converts every element of values from fromUnit to
// toUnit within the given category. The result keeps the input's length and
// order. The category name and the batch shape are validated first; after
// that each element passes through the same gates as Convert, and the first
// failing element aborts the whole batch — no partial results are returned.
//
// Complexity: O(len(values)).
func ConvertMultipleValues(category, fromUnit, toUnit string, values []float64) ([]float64, error) {
	if err := validate.UnitName(category); err != nil {
		return nil, err
	}
	if err := validate.Slice(values); err != nil {
		return nil, err
	}

	converted := make([]float64, len(values))
	for i, v := range values {
		out, err := Convert(category, fromUnit, toUnit, v)
		if err != nil {
			return nil, err
		}
		converted[i] = out
	}

	return converted, nil
}

// ConvertWithSummary performs the conversion and wraps the result in a
// Summary echoing the request exactly as it was phrased. Numeric semantics
// are identical to Convert.
func ConvertWithSummary(category, fromUnit, toUnit string, value float64) (Summary, error) {
	converted, err := Convert(category, fromUnit, toUnit, value)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		ConversionType:  category,
		ConvertFrom:     fromUnit,
		ConvertTo:       toUnit,
		NumberToConvert: value,
		ConvertedNumber: converted,
	}, nil
}

// ConvertAndRoundUp performs the conversion and rounds the result to
// decimalPlaces using standard decimal rounding (half away from zero at the
// float level), returning a number. decimalPlaces must be non-negative; zero
// rounds to a whole number.
func ConvertAndRoundUp(category, fromUnit, toUnit string, value float64, decimalPlaces int) (float64, error) {
	if decimalPlaces < 0 {
		return 0, validate.ErrNegativeNumber
	}

	converted, err := Convert(category, fromUnit, toUnit, value)
	if err != nil {
		return 0, err
	}

	scale := math.Pow(decimalBase, float64(decimalPlaces))

	return math.Round(converted*scale) / scale, nil
}
