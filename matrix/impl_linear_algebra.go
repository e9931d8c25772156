// SPDX-License-Identifier: MIT
// Package matrix provides pure linear-algebra kernels over any Matrix
// implementation: matrix-vector and matrix-matrix products (entry and column
// perspectives), transpose, small determinants and the 2×2 inverse.
// All functions validate first, never mutate their operands and return
// freshly allocated results.
//
// Determinism:
//   - Fixed i→j→k loop orders; no map iteration.
//
// Notes:
//   - Inputs are tiny in practice (≤4×4), so the kernels are naive triple
//     loops with no blocking or fast-multiplication tricks.

package matrix

import "math"

// ZeroSum is the initial accumulator for dot products.
const ZeroSum = 0.0

// readOnly returns m as *Dense for reading. A *Dense is returned as-is
// (callers must not write to it); other implementations are copied.
func readOnly(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return FromMatrix(m)
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols(m)).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	a, err := readOnly(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, a.r)
	var sum float64
	for i := 0; i < a.r; i++ {
		sum = ZeroSum
		base := i * a.c
		for j := 0; j < a.c; j++ {
			sum += a.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Mul computes the matrix product a·b.
// Result has Rows(a) rows and Cols(b) columns; entry (i,j) = Σ_k a[i,k]·b[k,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Cols(a) != Rows(b)).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := readOnly(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := readOnly(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := ad.c
	var sum float64
	for i := 0; i < ad.r; i++ {
		for j := 0; j < bd.c; j++ {
			sum = ZeroSum
			for k := 0; k < n; k++ {
				sum += ad.data[i*n+k] * bd.data[k*bd.c+j]
			}
			out.data[i*out.c+j] = sum
		}
	}

	return out, nil
}

// MulColumns returns the column-perspective view of a·b: for each column j
// of b, the column B[:,j] and the product column A·B[:,j]. Stacking the
// Product columns side by side equals Mul(a, b).
//
// Errors: same as Mul.
func MulColumns(a, b Matrix) ([]ColumnProduct, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulColumns, err)
	}
	bd, err := readOnly(b)
	if err != nil {
		return nil, matrixErrorf(opMulColumns, err)
	}

	out := make([]ColumnProduct, bd.c)
	for j := 0; j < bd.c; j++ {
		col, _ := bd.Col(j) // j is in range by construction
		prod, err := MatVec(a, col)
		if err != nil {
			return nil, matrixErrorf(opMulColumns, err)
		}
		out[j] = ColumnProduct{Col: j, BColumn: col, Product: prod}
	}

	return out, nil
}

// LinearCombination returns the column view of m·x as the terms x[j]·A[:,j].
// Summing the Scaled vectors of all terms equals MatVec(m, x).
//
// Errors: same as MatVec.
func LinearCombination(m Matrix, x []float64) ([]Term, error) {
	a, err := readOnly(m)
	if err != nil {
		return nil, matrixErrorf(opCombination, err)
	}
	if err = ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opCombination, err)
	}

	terms := make([]Term, a.c)
	for j := 0; j < a.c; j++ {
		col, _ := a.Col(j)
		scaled := make([]float64, a.r)
		for i := range col {
			scaled[i] = x[j] * col[i]
		}
		terms[j] = Term{Col: j, Weight: x[j], Column: col, Scaled: scaled}
	}

	return terms, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	a, err := readOnly(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*out.c+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// Det2x2 returns ad − bc for a 2×2 matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m is not 2×2.
func Det2x2(m Matrix) (float64, error) {
	if err := ValidateSize(m, 2); err != nil {
		return 0, matrixErrorf(opDet2, err)
	}
	a, err := readOnly(m)
	if err != nil {
		return 0, matrixErrorf(opDet2, err)
	}

	return det2(a.data), nil
}

// Det3x3 returns the determinant of a 3×3 matrix by cofactor expansion
// along the first row.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m is not 3×3.
func Det3x3(m Matrix) (float64, error) {
	if err := ValidateSize(m, 3); err != nil {
		return 0, matrixErrorf(opDet3, err)
	}
	a, err := readOnly(m)
	if err != nil {
		return 0, matrixErrorf(opDet3, err)
	}

	return det3(a.data), nil
}

// Det returns the determinant of a square matrix. Sizes 1 to 3 use closed
// forms; larger matrices use recursive cofactor expansion along the first
// row, which is O(n!) and meant for the ≤4×4 inputs this package targets.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a, err := readOnly(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return detCofactor(a.data, a.r), nil
}

// det2 expects a row-major 2×2 buffer.
func det2(d []float64) float64 {
	return d[0]*d[3] - d[1]*d[2]
}

// det3 expects a row-major 3×3 buffer.
func det3(d []float64) float64 {
	return d[0]*(d[4]*d[8]-d[5]*d[7]) -
		d[1]*(d[3]*d[8]-d[5]*d[6]) +
		d[2]*(d[3]*d[7]-d[4]*d[6])
}

// detCofactor expands along the first row of the n×n row-major buffer d.
func detCofactor(d []float64, n int) float64 {
	switch n {
	case 1:
		return d[0]
	case 2:
		return det2(d)
	case 3:
		return det3(d)
	}

	var det float64
	sign := 1.0
	minor := make([]float64, (n-1)*(n-1))
	for col := 0; col < n; col++ {
		if d[col] != 0 {
			fillMinor(minor, d, n, col)
			det += sign * d[col] * detCofactor(minor, n-1)
		}
		sign = -sign
	}

	return det
}

// fillMinor writes the (n-1)×(n-1) minor of d without row 0 and column skip.
func fillMinor(dst, d []float64, n, skip int) {
	k := 0
	for i := 1; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == skip {
				continue
			}
			dst[k] = d[i*n+j]
			k++
		}
	}
}

// normalizeNegZero rewrites -0 entries as +0 so they print as "0".
func normalizeNegZero(d []float64) {
	for k, v := range d {
		if v == 0 {
			d[k] = 0
		}
	}
}

// Inverse2x2 returns the inverse of a 2×2 matrix.
// A singular matrix (|det| < eps) is a result, not an error: ok is false and
// the returned matrix is nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when m is not 2×2.
func Inverse2x2(m Matrix, opts ...Option) (inv *Dense, ok bool, err error) {
	det, err := Det2x2(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse2, err)
	}
	o := gatherOptions(opts...)
	if IsZero(det, o.eps) {
		return nil, false, nil
	}

	a, _ := readOnly(m) // validated by Det2x2
	inv, err = FromRows([][]float64{
		{a.data[3] / det, -a.data[1] / det},
		{-a.data[2] / det, a.data[0] / det},
	}, WithNoValidateNaNInf())
	if err != nil {
		return nil, false, matrixErrorf(opInverse2, err)
	}
	normalizeNegZero(inv.data)

	return inv, true, nil
}

// IsInvertible reports whether m is square with |det(m)| ≥ eps.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func IsInvertible(m Matrix, opts ...Option) (bool, error) {
	det, err := Det(m)
	if err != nil {
		return false, matrixErrorf(opIsInvertible, err)
	}
	o := gatherOptions(opts...)

	return !IsZero(det, o.eps) && !math.IsNaN(det), nil
}
