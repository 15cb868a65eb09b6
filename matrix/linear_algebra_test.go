// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_KnownProduct(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})
	require.NoError(t, err)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestMul_ColumnTimesRowIsOuterProduct(t *testing.T) {
	col, err := matrix.NewDenseFrom(3, 1, []int{1, 2, 3})
	require.NoError(t, err)
	row, err := matrix.NewDenseFrom(1, 3, []int{4, 5, 6})
	require.NoError(t, err)

	outer, err := matrix.Mul(col, row)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 8, 10, 12, 12, 15, 18}, outer.Data())

	inner, err := matrix.Mul(row, col)
	require.NoError(t, err)
	assert.Equal(t, []int{32}, inner.Data())
}

func TestMul_Errors(t *testing.T) {
	a, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())

	// original untouched
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())

	_, err = matrix.Transpose[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEqual(t *testing.T) {
	a, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	b, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	c, _ := matrix.NewDenseFrom(2, 1, []float64{1, 2})
	n, _ := matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})

	eq, err := matrix.Equal(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = matrix.Equal(a, c)
	require.NoError(t, err)
	assert.False(t, eq, "shapes differ")

	eq, err = matrix.Equal(n, n)
	require.NoError(t, err)
	assert.False(t, eq, "NaN is never equal")

	_, err = matrix.Equal(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
