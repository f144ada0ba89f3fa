// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/wta/matrix"
)

// ExampleRowBasis grows a basis from candidate rows and reports which rows
// were kept.
func ExampleRowBasis() {
	b, err := matrix.NewRowBasis(2, 2, matrix.DefaultEpsilon)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range [][]float64{{1, 0}, {3, 0}, {1, 1}} {
		kept, _ := b.TryAdd(row)
		fmt.Println(row, kept)
	}
	fmt.Println("rank:", b.Len())
	// Output:
	// [1 0] true
	// [3 0] false
	// [1 1] true
	// rank: 2
}
