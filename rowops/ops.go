// SPDX-License-Identifier: MIT

// Package rowops: the three elementary row operations.
//
// Every operation:
//   - validates row indices (matrix.ErrOutOfRange),
//   - returns a NEW System; the input is never modified,
//   - returns the human-readable description shown by step players
//     (1-based row labels, numbers rendered with matrix.FormatNumber).
package rowops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
)

// Description templates (1-based rows).
const (
	fmtSwap      = "Swap row %d and row %d"
	fmtScale     = "R%d ← (%s)·R%d"
	fmtCombine   = "R%d ← R%d + (%s)·R%d"
	fmtEliminate = "R%d ← R%d − (%s)·R%d"
)

func (s *System) checkRow(i int) error {
	if i < 0 || i >= s.Rows() {
		return fmt.Errorf("row %d of %d: %w", i, s.Rows(), matrix.ErrOutOfRange)
	}

	return nil
}

// Swap exchanges rows i and j of A and b.
func Swap(s *System, i, j int) (*System, string, error) {
	if err := s.checkRow(i); err != nil {
		return nil, "", rowopsErrorf(opSwap, err)
	}
	if err := s.checkRow(j); err != nil {
		return nil, "", rowopsErrorf(opSwap, err)
	}

	out := s.Clone()
	if err := out.A.SwapRows(i, j); err != nil {
		return nil, "", rowopsErrorf(opSwap, err)
	}
	if out.B != nil {
		out.B[i], out.B[j] = out.B[j], out.B[i]
	}

	return out, fmt.Sprintf(fmtSwap, i+1, j+1), nil
}

// Scale multiplies row i by k.
//
// Errors:
//   - matrix.ErrOutOfRange for a bad row index.
//   - ErrZeroScale when |k| < matrix.DefaultEpsilon.
//   - matrix.ErrNaNInf when k is not finite or a scaled entry overflows.
//
// Complexity: O(cols).
func Scale(s *System, i int, k float64) (*System, string, error) {
	if err := s.checkRow(i); err != nil {
		return nil, "", rowopsErrorf(opScale, err)
	}
	if matrix.IsZero(k, matrix.DefaultEpsilon) {
		return nil, "", rowopsErrorf(opScale, ErrZeroScale)
	}

	out := s.Clone()
	for c := 0; c < out.Cols(); c++ {
		v, _ := out.A.At(i, c)
		if err := store(out, i, c, k*v); err != nil {
			return nil, "", rowopsErrorf(opScale, err)
		}
	}
	if out.B != nil {
		if err := storeRHS(out, i, k*out.B[i]); err != nil {
			return nil, "", rowopsErrorf(opScale, err)
		}
	}

	return out, fmt.Sprintf(fmtScale, i+1, matrix.FormatNumber(k), i+1), nil
}

// Combine performs R_target ← R_target + k·R_source.
//
// Errors:
//   - matrix.ErrOutOfRange for bad indices or target == source.
//   - matrix.ErrNaNInf when an updated entry is not finite (overflow or k = ±Inf).
//
// Complexity: O(cols).
func Combine(s *System, target, source int, k float64) (*System, string, error) {
	out, err := addMultiple(s, target, source, k)
	if err != nil {
		return nil, "", rowopsErrorf(opCombine, err)
	}

	return out, fmt.Sprintf(fmtCombine, target+1, target+1, matrix.FormatNumber(k), source+1), nil
}

// Eliminate performs R_target ← R_target − k·R_source, the form used by
// Gaussian elimination where k = entry / pivot.
//
// Errors:
//   - As Combine.
func Eliminate(s *System, target, source int, k float64) (*System, string, error) {
	out, err := addMultiple(s, target, source, -k)
	if err != nil {
		return nil, "", rowopsErrorf(opEliminate, err)
	}

	return out, fmt.Sprintf(fmtEliminate, target+1, target+1, matrix.FormatNumber(k), source+1), nil
}

// addMultiple returns a copy of s with row target += k·row source.
func addMultiple(s *System, target, source int, k float64) (*System, error) {
	if err := s.checkRow(target); err != nil {
		return nil, err
	}
	if err := s.checkRow(source); err != nil {
		return nil, err
	}
	if target == source {
		return nil, fmt.Errorf("target and source are both row %d: %w", target, matrix.ErrOutOfRange)
	}

	out := s.Clone()
	src, _ := out.A.Row(source)
	for c, sv := range src {
		v, _ := out.A.At(target, c)
		if err := store(out, target, c, v+k*sv); err != nil {
			return nil, err
		}
	}
	if out.B != nil {
		if err := storeRHS(out, target, out.B[target]+k*out.B[source]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// store writes A[i][j] = v, rejecting non-finite results whatever the
// matrix's own NaN/Inf policy is.
func store(s *System, i, j int, v float64) error {
	if !finite(v) {
		return fmt.Errorf("entry (%d,%d) = %v: %w", i, j, v, matrix.ErrNaNInf)
	}

	return s.A.Set(i, j, v)
}

func storeRHS(s *System, i int, v float64) error {
	if !finite(v) {
		return fmt.Errorf("rhs %d = %v: %w", i, v, matrix.ErrNaNInf)
	}
	s.B[i] = v

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
