// Package convert is the dispatch facade of unitconv: it resolves a
// (category, fromUnit, toUnit) triple to one conversion formula and layers
// the convenience operations on top.
//
// What:
//
//   - Convert resolves the triple through a finite table built at package
//     init and applies the formula: one map lookup, O(1).
//   - ConvertTemperature, ConvertLength, ConvertWeight, ConvertVolume and
//     ConvertSpeed pin the category and delegate to Convert.
//   - ConvertMultipleValues applies one resolved conversion to a whole batch,
//     preserving length and order; the first failing element aborts the batch
//     with no partial results.
//   - ConvertWithSummary echoes the request alongside the result in a
//     Summary record for display and audit purposes.
//   - ConvertAndRoundUp rounds the converted value half-away-from-zero to a
//     number of decimal places, returning a number.
//
// Validation ordering (identical for every entry point):
//
//  1. fromUnit and toUnit must be non-blank strings.
//  2. the value must be a finite number.
//  3. for length, weight, volume and speed the value must be non-negative.
//  4. temperature values are range-gated against the absolute-zero floor.
//
// Category and unit resolution run only after these gates pass; any unknown
// category, unknown alias, or recognized-but-unimplemented pair surfaces the
// single ErrConversionNotAvailable sentinel, which deliberately does not say
// which part of the triple failed.
//
// All matching is case-insensitive; aliases are normalized (trimmed,
// lower-cased) before table lookup.
//
// Errors:
//
//   - ErrConversionNotAvailable: unknown category, unit, or pair.
//   - validate.ErrNotAString / ErrNotANumber / ErrNotASlice: malformed input.
//   - validate.ErrNegativeNumber: negative magnitude outside temperature.
//   - validate.ErrBelowAbsoluteZeroC / ErrBelowAbsoluteZeroF: impossible
//     temperatures.
package convert
