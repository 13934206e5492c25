// SPDX-License-Identifier: MIT
package field_test

import (
	"testing"

	"github.com/katalvlaran/lvgauss/field"
)

// BenchmarkRational_Add measures one add with normalization.
func BenchmarkRational_Add(b *testing.B) {
	x := field.MustParseRational("355/113")
	y := field.MustParseRational("-22/7")

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}

// BenchmarkRational_Div measures one division (inverse + multiply).
func BenchmarkRational_Div(b *testing.B) {
	x := field.MustParseRational("355/113")
	y := field.MustParseRational("-22/7")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Div(y)
	}
}
