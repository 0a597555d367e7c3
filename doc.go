// Package unitconv converts measured values between named units across five
// everyday categories: temperature, length, weight, volume and speed.
//
// What is unitconv?
//
//	A small, stateless, pure-Go library that brings together:
//		• Pairwise formulas: fixed, explicitly supported (from, to) unit pairs
//		• Alias tables: case-insensitive unit names and abbreviations ("meters"/"m")
//		• Validation gates: finite-number, positivity and absolute-zero checks
//		• A dispatch facade: one table lookup from (category, from, to) to a formula
//		• Convenience operations: batch conversion, summary records, decimal rounding
//
// Why choose unitconv?
//
//   - Predictable – only the listed unit pairs convert; nothing is derived or chained
//   - Fail-fast – every entry point validates its inputs before touching arithmetic
//   - Pure Go – no cgo, no hidden deps, safe for concurrent callers (no mutable state)
//
// Everything is organized under three subpackages:
//
//	convert/  — the dispatch facade: Convert, per-category entry points,
//	            ConvertMultipleValues, ConvertWithSummary, ConvertAndRoundUp
//	units/    — canonical unit identifiers, alias tables, and the pairwise
//	            formulas with their per-source-unit handlers (FromCelsius, …)
//	validate/ — pure input validators shared by the layers above
//
// Quick example:
//
//	fahrenheit, err := convert.ConvertTemperature("celsius", "fahrenheit", 18)
//	// fahrenheit == 64.4
//
// Note that conversions are directional: a supported meters→feet pair does not
// imply feet→meters unless that pair is listed too. See convert.SupportedConversions
// for the authoritative set.
//
//	go get github.com/h-mp/unitconv
package unitconv
