// SPDX-License-Identifier: MIT

// Package rowops: augmented systems [A | b].
package rowops

import (
	"fmt"

	"github.com/katalvlaran/linstep/matrix"
)

// System is the augmented system [A | b].
// B is nil when the system has no right-hand side; otherwise len(B) == A.Rows().
type System struct {
	A *matrix.Dense
	B []float64
}

// NewSystem copies a and b into a fresh System.
//
// Errors:
//   - matrix.ErrNilMatrix when a is nil.
//   - matrix.ErrInvalidShape when b != nil and len(b) != a.Rows().
//   - matrix.ErrNaNInf when a or b holds a non-finite value. A is checked
//     even when the caller's matrix was built with WithNoValidateNaNInf.
//
// Complexity: O(rows*cols).
func NewSystem(a matrix.Matrix, b []float64) (*System, error) {
	A, err := matrix.FromMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSystem, err)
	}
	if err = matrix.ValidateFinite(A.ToRows()); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSystem, err)
	}
	if b != nil {
		if len(b) != A.Rows() {
			return nil, fmt.Errorf("%s: rhs length %d for %d rows: %w", opNewSystem, len(b), A.Rows(), matrix.ErrInvalidShape)
		}
		if err = matrix.ValidateFinite([][]float64{b}); err != nil {
			return nil, fmt.Errorf("%s: rhs: %w", opNewSystem, err)
		}
	}

	return &System{A: A, B: copyVec(b)}, nil
}

// FromRows builds a System from literal rows and an optional right-hand side.
func FromRows(rows [][]float64, b []float64) (*System, error) {
	A, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSystem, err)
	}

	return NewSystem(A, b)
}

// Rows returns the number of equations.
func (s *System) Rows() int { return s.A.Rows() }

// Cols returns the number of unknowns (columns of A, excluding b).
func (s *System) Cols() int { return s.A.Cols() }

// HasRHS reports whether the system carries a right-hand side.
func (s *System) HasRHS() bool { return s.B != nil }

// Clone returns a deep copy.
func (s *System) Clone() *System {
	return &System{A: s.A.Clone().(*matrix.Dense), B: copyVec(s.B)}
}

// Augmented returns the rows of [A | b] (or of A when there is no rhs).
func (s *System) Augmented() [][]float64 {
	rows := s.A.ToRows()
	if s.B == nil {
		return rows
	}
	for i := range rows {
		rows[i] = append(rows[i], s.B[i])
	}

	return rows
}

// RHS returns b[i], or 0 when the system has no right-hand side.
func (s *System) RHS(i int) float64 {
	if s.B == nil {
		return 0
	}

	return s.B[i]
}

// SnapZeros sets every entry of A and b with |v| < eps to exact 0, in place.
// Engines call it on their private copies to absorb floating-point residue.
func (s *System) SnapZeros(eps float64) {
	s.A.SnapZeros(eps)
	for i, v := range s.B {
		if matrix.IsZero(v, eps) {
			s.B[i] = 0
		}
	}
}

func copyVec(v []float64) []float64 {
	if v == nil {
		return nil
	}

	return append([]float64(nil), v...)
}
