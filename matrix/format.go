// SPDX-License-Identifier: MIT

// Package matrix - display helpers and approximate comparisons.
//
// Purpose:
//   - Render numbers the way step descriptions show them: integers plainly,
//     fractions with at most two decimals and no trailing zeros.
//   - Provide epsilon-based zero tests and whole-matrix comparisons.
package matrix

import (
	"math"
	"strconv"
	"strings"
)

// displayDecimals is the number of decimals kept by FormatNumber.
const displayDecimals = 2

// FormatNumber renders v for human-readable step descriptions.
//   - Integral values print without decimals: 2, -3, 0.
//   - Other values keep at most two decimals with trailing zeros removed:
//     0.5, 1.33, -0.25.
//   - A value that rounds to zero never prints as "-0".
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	var s string
	if v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', displayDecimals, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}

	return s
}

// IsZero reports whether |v| < eps.
func IsZero(v, eps float64) bool {
	return math.Abs(v) < eps
}

// Round returns a copy of m with every entry rounded to the given number of
// decimals (display rounding; the source matrix is not modified).
func Round(m Matrix, decimals int) (*Dense, error) {
	if decimals < 0 {
		return nil, matrixErrorf(opRound, ErrOutOfRange)
	}
	out, err := FromMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	scale := math.Pow(10, float64(decimals))
	for k, v := range out.data {
		out.data[k] = math.Round(v*scale) / scale
	}
	normalizeNegZero(out.data)

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	tol = math.Abs(tol)
	var x, y float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if x, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if y, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(x-y) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal is AllClose that treats a shape mismatch as plain inequality.
func Equal(a, b Matrix, tol float64) bool {
	ok, err := AllClose(a, b, tol)

	return err == nil && ok
}

// VecAllClose reports whether x and y have the same length and agree within tol.
func VecAllClose(x, y []float64, tol float64) bool {
	if len(x) != len(y) {
		return false
	}
	tol = math.Abs(tol)
	for i := range x {
		if math.Abs(x[i]-y[i]) > tol {
			return false
		}
	}

	return true
}
