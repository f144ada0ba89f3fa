// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/wta/matrix"
	"gonum.org/v1/gonum/mat"
)

// BenchmarkRank_8x8 measures the SVD-based rank on a dense 8×8 matrix.
func BenchmarkRank_8x8(b *testing.B) {
	data := make([]float64, 64)
	for i := range data {
		data[i] = float64(i%7) + 0.5 // deterministic, full rank is not required
	}
	m := mat.NewDense(8, 8, data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Rank(m, matrix.DefaultEpsilon); err != nil {
			b.Fatalf("Rank failed: %v", err)
		}
	}
}

// BenchmarkKronPowers_3 measures the memoised powers of a 3×3 basis.
func BenchmarkKronPowers_3(b *testing.B) {
	f := mat.NewDense(3, 3, []float64{1, 0, 0, 1, 1, 0, 1, 2, 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.KronPowers(f, 3); err != nil {
			b.Fatalf("KronPowers failed: %v", err)
		}
	}
}
