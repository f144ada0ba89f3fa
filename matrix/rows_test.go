// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/wta/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNonZeroRows_SelectRows compacts a matrix with interleaved zero rows.
func TestNonZeroRows_SelectRows(t *testing.T) {
	m := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 0,
		0, 3,
		0, 0,
	})
	set := matrix.NonZeroRows(m)
	assert.Equal(t, uint(2), set.Count())
	assert.True(t, set.Test(0))
	assert.True(t, set.Test(2))

	clean, err := matrix.SelectRows(m, set)
	require.NoError(t, err)
	r, _ := clean.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, []float64{0, 3}, clean.RawRowView(1))
}

func TestSelectRows_EmptyAndOutOfRange(t *testing.T) {
	m := mat.NewDense(2, 2, nil)

	clean, err := matrix.SelectRows(m, matrix.NonZeroRows(m))
	require.NoError(t, err)
	assert.Nil(t, clean)

	_, err = matrix.SelectRows(m, bitset.New(8).Set(5))
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
