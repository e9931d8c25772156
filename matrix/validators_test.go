// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linstep/matrix"
)

func TestValidateNotNil_TypedNil(t *testing.T) {
	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustRows(t, [][]float64{{1}})))
}

func TestValidateRectangular(t *testing.T) {
	require.NoError(t, matrix.ValidateRectangular([][]float64{{1, 2}, {3, 4}}))
	for name, rows := range map[string][][]float64{
		"empty":     {},
		"empty row": {{}},
		"ragged":    {{1, 2}, {3}},
	} {
		require.ErrorIs(t, matrix.ValidateRectangular(rows), matrix.ErrInvalidShape, name)
	}
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite([][]float64{{1, -2}}))
	require.ErrorIs(t, matrix.ValidateFinite([][]float64{{1, math.NaN()}}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite([][]float64{{math.Inf(-1)}}), matrix.ErrNaNInf)
}

func TestValidateShapes(t *testing.T) {
	sq := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	wide := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSize(sq, 2))
	require.ErrorIs(t, matrix.ValidateSize(sq, 3), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(sq, wide))
	require.ErrorIs(t, matrix.ValidateMulCompatible(wide, wide), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSameShape(sq, sq))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(sq, nil), matrix.ErrNilMatrix)
}
