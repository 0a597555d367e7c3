// Package convert defines the category identifiers, the Summary record and
// the sentinel error surfaced by the dispatch facade.
package convert

import (
	"fmt"

	"github.com/h-mp/unitconv/units"
)

// ErrConversionNotAvailable is returned for any unknown category, unknown
// unit alias, or recognized-but-unimplemented (from, to) pair. It is the
// same sentinel the units layer raises, re-exported so facade callers need
// only this package.
var ErrConversionNotAvailable = units.ErrConversionNotAvailable

// Category names a conversion domain. Matching is case-insensitive; the
// canonical form is lower-case.
type Category string

// Supported categories.
const (
	Temperature Category = "temperature"
	Length      Category = "length"
	Weight      Category = "weight"
	Volume      Category = "volume"
	Speed       Category = "speed"
)

// Summary is the descriptive record returned by ConvertWithSummary. It
// echoes the request exactly as the caller phrased it plus the converted
// result; it never alters numeric semantics.
type Summary struct {
	ConversionType  string  // category as passed by the caller
	ConvertFrom     string  // source unit as passed by the caller
	ConvertTo       string  // target unit as passed by the caller
	NumberToConvert float64 // input value
	ConvertedNumber float64 // conversion result
}

// String renders the summary in a single human-readable line.
func (s Summary) String() string {
	return fmt.Sprintf("%s: %g %s = %g %s",
		s.ConversionType, s.NumberToConvert, s.ConvertFrom, s.ConvertedNumber, s.ConvertTo)
}

// Triple identifies one supported conversion in the dispatch table.
type Triple struct {
	Category Category
	From, To units.Unit
}
