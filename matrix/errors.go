// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the engines built on top of it (rowops, elimination, lu).
// Callers MUST match them via errors.Is. No function panics on user-triggered
// error conditions; panics are reserved for invalid option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels
// are returned wrapped with an operation tag ("Mul: matrix: dimension mismatch");
// errors.Is still matches the sentinel through the %w chain.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> non-finite values -> dimension mismatch -> index range.

var (
	// ErrInvalidShape is returned for ragged rows, empty input, non-positive
	// dimensions, or a right-hand side whose length differs from the row count.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a square matrix was required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opFromRows     = "FromRows"
	opFromMatrix   = "FromMatrix"
	opNewDense     = "NewDense"
	opIdentity     = "NewIdentity"
	opMul          = "Mul"
	opMulColumns   = "MulColumns"
	opMatVec       = "MatVec"
	opCombination  = "LinearCombination"
	opTranspose    = "Transpose"
	opDet          = "Det"
	opDet2         = "Det2x2"
	opDet3         = "Det3x3"
	opInverse2     = "Inverse2x2"
	opIsInvertible = "IsInvertible"
	opAllClose     = "AllClose"
	opRound        = "Round"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
