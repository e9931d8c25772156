// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linstep/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the generic
// (non-*Dense) read path inside kernels.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts that got matches want entry-wise within tol.
func RequireClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, got, i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}

// genEntry yields small integers as floats, the shape of hand-entered course data.
func genEntry() gopter.Gen {
	return gen.IntRange(-9, 9).Map(func(v int) float64 { return float64(v) })
}

// genRows yields an r×c literal of small integer entries.
func genRows(r, c int) gopter.Gen {
	return gen.SliceOfN(r*c, genEntry()).Map(func(flat []float64) [][]float64 {
		rows := make([][]float64, r)
		for i := 0; i < r; i++ {
			rows[i] = append([]float64(nil), flat[i*c:(i+1)*c]...)
		}

		return rows
	})
}
