// Package validate provides the pure input-validation gates shared by the
// unitconv conversion layers.
//
// What:
//
//   - Number rejects NaN and ±Inf values (the residual "not a number" cases
//     a float64 can still carry).
//   - UnitName rejects empty or blank unit/category strings.
//   - Slice rejects a nil batch of values.
//   - Positive rejects negative magnitudes for categories that require
//     non-negative input.
//   - CelsiusRange / FahrenheitRange enforce the absolute-zero floor for
//     temperature conversions.
//
// Why:
//
//   - Centralizing the checks keeps the converters and the dispatch facade
//     free of guard logic and guarantees every entry point fails the same way.
//   - Each validator is independently callable and composable; all are pure,
//     allocate nothing, and run in O(1).
//
// Errors:
//
//   - ErrNotANumber: value is NaN or ±Inf.
//   - ErrNotAString: unit or category name is empty or blank.
//   - ErrNotASlice: batch input slice is nil.
//   - ErrNegativeNumber: value is negative where a magnitude is required.
//   - ErrBelowAbsoluteZeroC: temperature below -273.15°C.
//   - ErrBelowAbsoluteZeroF: temperature below -459.67°F.
package validate
