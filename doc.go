// Package lvgauss is exact linear algebra over abstract fields: build a
// matrix of field elements, reduce it with Gauss–Jordan elimination and read
// back the reduced row-echelon form together with its pivot columns.
//
// What is inside?
//
//	field/  - the Field[E] contract and Rational, an arbitrary-precision
//	          fraction type that always compares in lowest terms
//	matrix/ - Matrix[E], elementary row operations and GaussianElimination
//	cmd/gauss/ - a small CLI: demo, reduce (text or YAML) and rational
//	examples/  - a runnable chemical-equation balancer
//
// Quick start
//
//	m, _ := matrix.New([][]field.Rational{
//		{field.Int(2), field.Int(1), field.Int(-1)},
//		{field.Int(-3), field.Int(-1), field.Int(2)},
//	})
//	_ = matrix.GaussianElimination(m)
//	fmt.Print(m)          // reduced rows
//	fmt.Println(m.Pivots()) // pivot columns in discovery order
//
// Every result is exact: no rounding, no tolerance, no floating point.
// Elimination is deterministic; the first non-zero entry at or below the
// current pivot row is chosen, so identical input always gives identical
// output and pivot maps.
//
//	go get github.com/katalvlaran/lvgauss
package lvgauss
