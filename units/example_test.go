package units_test

import (
	"errors"
	"fmt"

	"github.com/h-mp/unitconv/units"
)

// ExampleFromCelsius demonstrates a direct temperature handler call with an
// abbreviated, differently-cased target alias.
func ExampleFromCelsius() {
	f, err := units.FromCelsius("F", 18)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("18°C = %.1f°F\n", f)

	// Output:
	// 18°C = 64.4°F
}

// ExampleFromLiters demonstrates one source unit dispatching to two
// different targets.
func ExampleFromLiters() {
	gal, _ := units.FromLiters("gallons", 12)
	pt, _ := units.FromLiters("pints", 19)
	fmt.Printf("12 L = %.2f gal\n", gal)
	fmt.Printf("19 L = %.2f pt\n", pt)

	// Output:
	// 12 L = 3.17 gal
	// 19 L = 40.15 pt
}

// ExampleFromKilometers demonstrates a deliberately one-way pair: the
// kilometers→miles formula exists, its inverse does not.
func ExampleFromKilometers() {
	mi, _ := units.FromKilometers("miles", 42.195)
	fmt.Printf("42.195 km = %.2f mi\n", mi)

	_, err := units.FromMeters("miles", 1)
	fmt.Println("meters→miles supported:", !errors.Is(err, units.ErrConversionNotAvailable))

	// Output:
	// 42.195 km = 26.22 mi
	// meters→miles supported: false
}
