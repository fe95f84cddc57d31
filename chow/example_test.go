package chow_test

import (
	"fmt"

	"github.com/arithgeo/hodgeriemann/chow"
)

// ExampleCheckGeometric verifies the graded signature pattern of the
// (2,2) ring and prints the per-grade signatures.
func ExampleCheckGeometric() {
	report, err := chow.CheckGeometric(2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("ok:", report.OK)
	fmt.Println("dimensions:", report.Dimensions)
	fmt.Println("signatures:", report.Actual)
	// Output:
	// ok: true
	// dimensions: [1 1 2 1 1]
	// signatures: [1 1 2]
}

// ExampleCheckArithmetic runs the extended-ring checker with shared
// auxiliary tables.
func ExampleCheckArithmetic() {
	aux, err := chow.NewAux(1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	report, err := chow.CheckArithmetic(1, 1, chow.WithAux(aux))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("ok:", report.OK)
	fmt.Println("signatures:", report.Actual)
	// Output:
	// ok: true
	// signatures: [1 0]
}

// ExampleGeometricDegree evaluates a single intersection number: the
// square of the middle special class on the (2,2) ring.
func ExampleGeometricDegree() {
	deg, err := chow.GeometricDegree(chow.Vector{4, 0}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(deg.RatString())
	// Output:
	// 2
}
