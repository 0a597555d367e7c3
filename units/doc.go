// Package units holds the category converters of unitconv: canonical unit
// identifiers, case-insensitive alias tables, the pairwise conversion
// formulas, and one From<Unit> handler per supported source unit.
//
// What:
//
//   - Five categories: temperature, length, weight, volume, speed.
//   - Formulas are total pure functions over finite floats; each formula
//     covers exactly one ordered (from, to) pair. No inverse is derived and
//     no pairs are chained: meters→feet being supported says nothing about
//     feet→meters.
//   - From<Unit> handlers (FromCelsius, FromMeters, FromLiters, …) resolve
//     the target alias through the category's table and dispatch to the
//     matching formula. Temperature handlers additionally gate the input
//     against the absolute-zero floor; all other range policy lives in the
//     convert facade.
//
// Why:
//
//   - Keeping formulas and alias tables next to each other makes the
//     supported pair set auditable in one place per category.
//   - Handlers are usable directly when the caller already knows the source
//     unit and does not need the facade's category resolution.
//
// Known asymmetries (deliberate, not bugs):
//
//   - kilometers→miles has no miles→kilometers counterpart.
//   - grams→ounces has no ounces→grams counterpart.
//   - liters→pints has no pints→liters counterpart.
//   - meters per second→km/h has no km/h→meters per second counterpart.
//
// Errors:
//
//   - ErrConversionNotAvailable: unknown target alias, or a recognized pair
//     that is simply not implemented.
//   - validate.ErrBelowAbsoluteZeroC / ErrBelowAbsoluteZeroF: temperature
//     input below the physical floor (temperature handlers only).
package units
