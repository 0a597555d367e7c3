package convert_test

import (
	"math"
	"testing"

	"github.com/h-mp/unitconv/convert"
	"github.com/h-mp/unitconv/units"
	"github.com/h-mp/unitconv/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatTol is the tolerance for values that are exact in decimal but not in
// binary floating point.
const floatTol = 1e-9

// TestConvert_ReferenceValues pins the facade to the library's reference
// conversions across all five categories.
func TestConvert_ReferenceValues(t *testing.T) {
	cases := []struct {
		name               string
		category, from, to string
		value, want, tol   float64
	}{
		{"celsius to fahrenheit", "temperature", "celsius", "fahrenheit", 18, 64.4, floatTol},
		{"fahrenheit to celsius", "temperature", "fahrenheit", "celsius", 68, 20, floatTol},
		{"meters to feet", "length", "meters", "feet", 2, 6.561, 0.01},
		{"kilograms to pounds", "weight", "kilograms", "pounds", 12, 26.455, 0.01},
		{"liters to gallons", "volume", "liters", "gallons", 12, 3.170, 0.01},
		{"liters to pints", "volume", "liters", "pints", 19, 40.154, 0.01},
		{"kmh to mph", "speed", "kmh", "mph", 100, 62.137, 0.001},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := convert.Convert(tc.category, tc.from, tc.to, tc.value)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tc.tol)
		})
	}
}

// TestConvert_CaseInsensitiveMatching verifies that category and unit
// matching ignores case and surrounding whitespace.
func TestConvert_CaseInsensitiveMatching(t *testing.T) {
	got, err := convert.Convert("TEMPERATURE", "Celsius", "FAHRENHEIT", 18)
	require.NoError(t, err)
	assert.InDelta(t, 64.4, got, floatTol, "upper-cased request must behave identically")

	got, err = convert.Convert(" Length ", " M ", "Ft", 2)
	require.NoError(t, err)
	assert.InDelta(t, 6.561, got, 0.01, "abbreviations with stray spaces must resolve")
}

// TestConvert_UnsupportedTriples verifies that unknown categories, unknown
// units and unimplemented pairs all surface the single
// ErrConversionNotAvailable sentinel, never a numeric result.
func TestConvert_UnsupportedTriples(t *testing.T) {
	cases := []struct {
		name               string
		category, from, to string
		value              float64
	}{
		{"unknown category", "pressure", "pascal", "bar", 1},
		{"unknown target unit", "temperature", "celsius", "kelvin", 20},
		{"unknown source unit", "length", "inches", "meters", 1},
		{"cross-category unit", "weight", "meters", "pounds", 1},
		{"identity pair not listed", "volume", "liters", "liters", 1},
		{"asymmetric inverse miles", "length", "miles", "kilometers", 1},
		{"asymmetric inverse ounces", "weight", "ounces", "grams", 1},
		{"asymmetric inverse pints", "volume", "pints", "liters", 1},
		{"asymmetric inverse mps", "speed", "kmh", "m/s", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := convert.Convert(tc.category, tc.from, tc.to, tc.value)
			assert.ErrorIs(t, err, convert.ErrConversionNotAvailable)
		})
	}
}

// TestConvert_ValidationOrdering pins the gate sequence: blank unit strings
// fail before the value check, non-finite values fail before positivity, and
// positivity fails before unit resolution.
func TestConvert_ValidationOrdering(t *testing.T) {
	// Blank unit string outranks the bad value.
	_, err := convert.Convert("length", "", "feet", math.NaN())
	assert.ErrorIs(t, err, validate.ErrNotAString, "blank from-unit must be reported first")

	// Non-finite value outranks positivity and resolution.
	_, err = convert.Convert("length", "meters", "nonsense", math.Inf(-1))
	assert.ErrorIs(t, err, validate.ErrNotANumber, "non-finite value must be reported before resolution")

	// Negative magnitude outranks the unknown target unit.
	_, err = convert.Convert("length", "meters", "inches", -2)
	assert.ErrorIs(t, err, validate.ErrNegativeNumber, "positivity must be checked before pair resolution")
}

// TestConvert_NegativeMagnitudes verifies positivity gating for the four
// magnitude categories, and its deliberate absence for temperature.
func TestConvert_NegativeMagnitudes(t *testing.T) {
	for _, category := range []string{"length", "weight", "volume", "speed"} {
		_, err := convert.Convert(category, "x", "y", -1)
		assert.ErrorIs(t, err, validate.ErrNegativeNumber, "category %s must reject negatives", category)
	}

	got, err := convert.Convert("temperature", "celsius", "fahrenheit", -25)
	require.NoError(t, err, "negative temperatures above absolute zero are valid")
	assert.InDelta(t, -13, got, floatTol)
}

// TestConvert_TemperatureRangeGates verifies that the absolute-zero floors
// apply per source scale at the facade level.
func TestConvert_TemperatureRangeGates(t *testing.T) {
	_, err := convert.Convert("temperature", "celsius", "fahrenheit", -273.16)
	assert.ErrorIs(t, err, validate.ErrBelowAbsoluteZeroC)

	_, err = convert.Convert("temperature", "f", "c", -459.68)
	assert.ErrorIs(t, err, validate.ErrBelowAbsoluteZeroF)

	// The Celsius floor does not apply to Fahrenheit sources: -300°F is valid.
	got, err := convert.Convert("temperature", "fahrenheit", "celsius", -300)
	require.NoError(t, err)
	assert.InDelta(t, -184.444, got, 0.001)
}

// TestConvertCategory_Wrappers verifies the per-category entry points
// delegate with the category pinned.
func TestConvertCategory_Wrappers(t *testing.T) {
	got, err := convert.ConvertTemperature("c", "f", 18)
	require.NoError(t, err)
	assert.InDelta(t, 64.4, got, floatTol)

	got, err = convert.ConvertLength("feet", "meters", 6.56168)
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 0.001)

	got, err = convert.ConvertWeight("pounds", "kg", 26.45544)
	require.NoError(t, err)
	assert.InDelta(t, 12, got, 0.001)

	got, err = convert.ConvertVolume("gal", "liters", 1)
	require.NoError(t, err)
	assert.InDelta(t, 3.785, got, 0.001)

	got, err = convert.ConvertSpeed("mph", "kmh", 60)
	require.NoError(t, err)
	assert.InDelta(t, 96.561, got, 0.001)
}

// TestSupportedConversions_RoundTripConsistency walks the dispatch table:
// every listed triple must convert, and whenever the reversed triple is also
// listed the two must round-trip back to the input.
func TestSupportedConversions_RoundTripConsistency(t *testing.T) {
	triples := convert.SupportedConversions()
	require.NotEmpty(t, triples)
	assert.True(t, sortedByCategoryFromTo(triples), "result must be sorted")

	listed := make(map[convert.Triple]bool, len(triples))
	for _, tr := range triples {
		listed[tr] = true
	}

	const probe = 7.5
	for _, tr := range triples {
		out, err := convert.Convert(string(tr.Category), string(tr.From), string(tr.To), probe)
		require.NoError(t, err, "listed triple %v must convert", tr)

		reverse := convert.Triple{Category: tr.Category, From: tr.To, To: tr.From}
		if !listed[reverse] {
			continue // known one-way pair
		}
		back, err := convert.Convert(string(tr.Category), string(tr.To), string(tr.From), out)
		require.NoError(t, err)
		assert.InDelta(t, probe, back, floatTol, "round-trip for %v", tr)
	}
}

// TestSupportedConversions_KnownAsymmetries pins the deliberate one-way
// pairs so a future "fix" shows up as a test change.
func TestSupportedConversions_KnownAsymmetries(t *testing.T) {
	listed := make(map[convert.Triple]bool)
	for _, tr := range convert.SupportedConversions() {
		listed[tr] = true
	}

	oneWay := []convert.Triple{
		{Category: convert.Length, From: units.Kilometers, To: units.Miles},
		{Category: convert.Weight, From: units.Grams, To: units.Ounces},
		{Category: convert.Volume, From: units.Liters, To: units.Pints},
		{Category: convert.Speed, From: units.MetersPerSecond, To: units.KilometersPerHour},
	}
	for _, tr := range oneWay {
		assert.True(t, listed[tr], "%v must be supported", tr)
		reverse := convert.Triple{Category: tr.Category, From: tr.To, To: tr.From}
		assert.False(t, listed[reverse], "%v must stay unsupported", reverse)
	}
}

// sortedByCategoryFromTo reports whether triples are in the documented order.
func sortedByCategoryFromTo(triples []convert.Triple) bool {
	for i := 1; i < len(triples); i++ {
		a, b := triples[i-1], triples[i]
		if a.Category != b.Category {
			if a.Category > b.Category {
				return false
			}
			continue
		}
		if a.From != b.From {
			if a.From > b.From {
				return false
			}
			continue
		}
		if a.To > b.To {
			return false
		}
	}

	return true
}
