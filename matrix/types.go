// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the public Matrix interface and the small value
// types returned by algebra helpers. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional array of float64 values.
// Every row has exactly Cols() entries.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// ColumnProduct is the column-perspective view of one column of A·B:
// Product = A · BColumn, where BColumn = B[:,Col].
type ColumnProduct struct {
	Col     int       // column index j in B and in A·B
	BColumn []float64 // B[:,j]
	Product []float64 // (A·B)[:,j]
}

// Term is one column contribution Weight·Column in the linear-combination
// view of a matrix-vector product.
type Term struct {
	Col    int       // column index j of A
	Weight float64   // x[j]
	Column []float64 // A[:,j]
	Scaled []float64 // x[j]·A[:,j]
}
