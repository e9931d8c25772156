// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linstep/matrix"
)

func TestMatVec(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(A, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(A, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_EntryDefinition(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustRows(t, [][]float64{{5, 6}, {7, 8}})
	AB, err := matrix.Mul(A, B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, AB.ToRows())

	// Rectangular: (2×3)·(3×1) = 2×1.
	C := MustRows(t, [][]float64{{1, 0, 2}, {0, 1, 1}})
	x := MustRows(t, [][]float64{{1}, {2}, {3}})
	Cx, err := matrix.Mul(C, x)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7}, {5}}, Cx.ToRows())
}

func TestMul_DimensionMismatch(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2, 3}})
	B := MustRows(t, [][]float64{{1, 2}})
	_, err := matrix.Mul(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, B)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_GenericPathMatchesDense(t *testing.T) {
	A := MustRows(t, [][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})
	B := MustRows(t, [][]float64{{1, 0, 1}, {0, 2, 0}, {1, 1, 1}})
	fast, err := matrix.Mul(A, B)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)
	require.Equal(t, fast.ToRows(), slow.ToRows())
}

func TestMulColumns_StacksToProduct(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustRows(t, [][]float64{{5, 6}, {7, 8}})
	cols, err := matrix.MulColumns(A, B)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, []float64{5, 7}, cols[0].BColumn)
	require.Equal(t, []float64{19, 43}, cols[0].Product)
	require.Equal(t, []float64{22, 50}, cols[1].Product)
}

func TestLinearCombination_SumsToMatVec(t *testing.T) {
	A := MustRows(t, [][]float64{{2, -1}, {1, 3}})
	x := []float64{3, 2}
	terms, err := matrix.LinearCombination(A, x)
	require.NoError(t, err)
	sum := make([]float64, 2)
	for _, term := range terms {
		for i, v := range term.Scaled {
			sum[i] += v
		}
	}
	y, err := matrix.MatVec(A, x)
	require.NoError(t, err)
	require.Equal(t, y, sum)
	require.Equal(t, []float64{6, 3}, terms[0].Scaled)
}

func TestTranspose(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	At, err := matrix.Transpose(A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, At.ToRows())
}

func TestDeterminants(t *testing.T) {
	d2, err := matrix.Det2x2(MustRows(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)
	require.Equal(t, 5.0, d2)

	d3, err := matrix.Det3x3(MustRows(t, [][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}}))
	require.NoError(t, err)
	require.InDelta(t, 4.0, d3, 1e-12) // product of U's diagonal: 2·1·2

	d4, err := matrix.Det(MustRows(t, [][]float64{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{1, 1, 1, 4},
	}))
	require.NoError(t, err)
	require.InDelta(t, 24.0, d4, 1e-12)

	_, err = matrix.Det2x2(MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Det(MustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse2x2(t *testing.T) {
	inv, ok, err := matrix.Inverse2x2(MustRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	require.True(t, ok)
	RequireClose(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 1e-12)

	inv, ok, err = matrix.Inverse2x2(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err, "singular input is a result, not an error")
	require.False(t, ok)
	require.Nil(t, inv)
}

func TestIsInvertible(t *testing.T) {
	ok, err := matrix.IsInvertible(MustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsInvertible(MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMul_Associativity_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(AB)C == A(BC)", prop.ForAll(
		func(a, b, c [][]float64) bool {
			A, B, C := matrix.MustFromRows(a), matrix.MustFromRows(b), matrix.MustFromRows(c)
			AB, err := matrix.Mul(A, B)
			if err != nil {
				return false
			}
			left, err := matrix.Mul(AB, C)
			if err != nil {
				return false
			}
			BC, err := matrix.Mul(B, C)
			if err != nil {
				return false
			}
			right, err := matrix.Mul(A, BC)
			if err != nil {
				return false
			}

			return matrix.Equal(left, right, matrix.DefaultTolerance)
		},
		genRows(2, 3), genRows(3, 4), genRows(4, 2),
	))

	properties.TestingRun(t)
}

func TestMulColumns_Property(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("column view equals entry view", prop.ForAll(
		func(a, b [][]float64) bool {
			A, B := matrix.MustFromRows(a), matrix.MustFromRows(b)
			AB, err := matrix.Mul(A, B)
			if err != nil {
				return false
			}
			cols, err := matrix.MulColumns(A, B)
			if err != nil {
				return false
			}
			for _, cp := range cols {
				want, _ := AB.Col(cp.Col)
				if !matrix.VecAllClose(want, cp.Product, matrix.DefaultTolerance) {
					return false
				}
			}

			return true
		},
		genRows(3, 3), genRows(3, 2),
	))

	properties.TestingRun(t)
}
