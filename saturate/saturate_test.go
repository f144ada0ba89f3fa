// SPDX-License-Identifier: MIT
package saturate_test

import (
	"testing"

	"github.com/katalvlaran/wta/matrix"
	"github.com/katalvlaran/wta/saturate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// swap exchanges coordinates 0<->1 and 2<->3 of R^4.
func swap() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

// TestSaturate_ClosureOfSwap finds span{e0, e1} from e0 under a swap.
func TestSaturate_ClosureOfSwap(t *testing.T) {
	b := mat.NewDense(4, 4, nil)
	seed := mat.NewVecDense(4, []float64{1, 0, 0, 0})

	filled, err := saturate.Saturate(seed, b, []mat.Matrix{swap()}, matrix.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, 2, filled)

	assert.Equal(t, []float64{1, 0, 0, 0}, mat.Col(nil, 0, b))
	assert.Equal(t, []float64{0, 1, 0, 0}, mat.Col(nil, 1, b))
	assert.Equal(t, []float64{0, 0, 0, 0}, mat.Col(nil, 2, b))

	rank, err := matrix.Rank(b, matrix.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, filled, rank)
}

// TestSaturate_TransformsAppliedToAcceptedColumns reaches e2 only through M·(M·e0).
func TestSaturate_TransformsAppliedToAcceptedColumns(t *testing.T) {
	shift := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	})
	b := mat.NewDense(3, 3, nil)
	seed := mat.NewVecDense(3, []float64{1, 0, 0})

	filled, err := saturate.Saturate(seed, b, []mat.Matrix{shift}, matrix.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, 3, filled)
	assert.Equal(t, []float64{0, 0, 1}, mat.Col(nil, 2, b))
}

// TestSaturate_OrderIndependentRank checks that transform order only changes the basis.
func TestSaturate_OrderIndependentRank(t *testing.T) {
	m1 := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		1, 0, 0,
		0, 0, 0,
	})
	m2 := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 0, 0,
		0, 2, 0,
	})
	seed := mat.NewVecDense(3, []float64{1, 0, 0})

	b1 := mat.NewDense(3, 3, nil)
	f1, err := saturate.Saturate(seed, b1, []mat.Matrix{m1, m2}, matrix.DefaultEpsilon)
	require.NoError(t, err)

	b2 := mat.NewDense(3, 3, nil)
	f2, err := saturate.Saturate(seed, b2, []mat.Matrix{m2, m1}, matrix.DefaultEpsilon)
	require.NoError(t, err)

	assert.Equal(t, 3, f1)
	assert.Equal(t, f1, f2)
}

// TestSaturate_ZeroSeed leaves the target untouched.
func TestSaturate_ZeroSeed(t *testing.T) {
	b := mat.NewDense(2, 2, nil)
	filled, err := saturate.Saturate(mat.NewVecDense(2, nil), b, []mat.Matrix{swap().Slice(0, 2, 0, 2)}, matrix.DefaultEpsilon)
	require.NoError(t, err)
	assert.Zero(t, filled)
	assert.True(t, matrix.IsZero(b))
}

// TestSaturate_NoTransforms accepts only the seed.
func TestSaturate_NoTransforms(t *testing.T) {
	b := mat.NewDense(3, 2, nil)
	filled, err := saturate.Saturate(mat.NewVecDense(3, []float64{1, 2, 3}), b, nil, matrix.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, 1, filled)
	assert.Equal(t, []float64{1, 2, 3}, mat.Col(nil, 0, b))
}

// TestSaturate_Errors covers contract violations.
func TestSaturate_Errors(t *testing.T) {
	seed := mat.NewVecDense(2, []float64{1, 0})

	_, err := saturate.Saturate(mat.NewVecDense(3, nil), mat.NewDense(2, 2, nil), nil, matrix.DefaultEpsilon)
	assert.ErrorIs(t, err, saturate.ErrDimensionMismatch)

	_, err = saturate.Saturate(seed, mat.NewDense(2, 2, nil), []mat.Matrix{mat.NewDense(3, 3, nil)}, matrix.DefaultEpsilon)
	assert.ErrorIs(t, err, saturate.ErrDimensionMismatch)

	dirty := mat.NewDense(2, 2, []float64{0, 0, 0, 1})
	_, err = saturate.Saturate(seed, dirty, nil, matrix.DefaultEpsilon)
	assert.ErrorIs(t, err, saturate.ErrTargetNotEmpty)
}
