// SPDX-License-Identifier: MIT

// Package lu: Doolittle LU factorization with replayable steps.
//
// Factorize never reorders rows. When a diagonal pivot is (near) zero while
// entries below it are not, that column cannot be eliminated: it is listed
// in Result.Skipped and the factorization is reported incomplete.
// FactorizePivoted uses partial pivoting and always completes, returning
// the permutation with P·A = L·U.
package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/rowops"
	"github.com/katalvlaran/linstep/steps"
)

const (
	descInitial         = "Initial matrix A = U, L = I"
	descInitialPivoted  = "Initial matrix A = U, L = I, P = I"
	fmtEliminate        = "Eliminate col %d, row %d: L[%d,%d] = %s"
	fmtSwap             = "Swap row %d and row %d (P updated)"
	descComplete        = "LU decomposition complete: A = L·U"
	descCompletePivoted = "LU decomposition complete: P·A = L·U"
	fmtIncomplete       = "LU decomposition incomplete: zero pivot in column %d"
)

// Result holds the factors and the step sequence that produced them.
type Result struct {
	L *matrix.Dense // unit lower triangular
	U *matrix.Dense // upper triangular when Complete
	// P and Perm are nil for Factorize. Row i of P·A is row Perm[i] of A.
	P    *matrix.Dense
	Perm []int
	// Skipped lists columns whose zero pivot blocked elimination.
	Skipped []int
	Steps   []steps.Step
}

// Complete reports whether L·U (or P·A = L·U) holds.
func (r *Result) Complete() bool { return len(r.Skipped) == 0 }

// Pivoted reports whether the result came from FactorizePivoted.
func (r *Result) Pivoted() bool { return r.Perm != nil }

// Reconstruct returns L·U, or Pᵀ·L·U for a pivoted result; for a complete
// factorization this equals A within floating-point tolerance.
func (r *Result) Reconstruct() (*matrix.Dense, error) {
	lu, err := matrix.Mul(r.L, r.U)
	if err != nil {
		return nil, luErrorf(opReconstruct, err)
	}
	if r.P == nil {
		return lu, nil
	}
	pt, err := matrix.Transpose(r.P)
	if err != nil {
		return nil, luErrorf(opReconstruct, err)
	}
	out, err := matrix.Mul(pt, lu)
	if err != nil {
		return nil, luErrorf(opReconstruct, err)
	}

	return out, nil
}

// Factorize computes A = L·U without row exchanges.
//
// Implementation:
//   - Stage 1: validate squareness and finiteness; U = copy(A), L = I.
//   - Stage 2: per column, for each row below with |U[r][c]| >= eps, store
//     L[r][c] = U[r][c]/U[c][c] and subtract that multiple of the pivot row
//     (one step carrying both U and L).
//   - Stage 3: a (near) zero pivot with nonzero entries below is recorded in
//     Skipped and the column is left as is.
//   - Stage 4: close with a complete or incomplete step.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (A not square).
//   - matrix.ErrNaNInf for non-finite input or a multiplier/entry that overflows.
//   - A blocked column is not an error; see Result.Skipped.
//
// Complexity:
//   - Time O(n³) arithmetic plus O(n²) per emitted snapshot, Space O(steps·n²).
func Factorize(a matrix.Matrix, opts ...Option) (*Result, error) {
	return factorize(opFactorize, a, false, gatherOptions(opts...))
}

// FactorizePivoted computes P·A = L·U with partial pivoting.
// Singular matrices still factor; U then carries zero diagonal entries.
func FactorizePivoted(a matrix.Matrix, opts ...Option) (*Result, error) {
	return factorize(opFactorizePivoted, a, true, gatherOptions(opts...))
}

func factorize(tag string, a matrix.Matrix, pivoted bool, o Options) (*Result, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, luErrorf(tag, err)
	}
	sys, err := rowops.NewSystem(a, nil)
	if err != nil {
		return nil, luErrorf(tag, err)
	}
	n := sys.Rows()
	L, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, luErrorf(tag, err)
	}

	var perm []int
	desc := descInitial
	if pivoted {
		perm = make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		desc = descInitialPivoted
	}

	em := steps.NewEmitter(o.observer)
	em.Emit(snapshot(steps.New(steps.KindInitial, desc), sys, L, perm))

	var skipped []int
	for col := 0; col < n; col++ {
		if pivoted {
			best := col
			for r := col + 1; r < n; r++ {
				if math.Abs(entry(sys.A, r, col)) > math.Abs(entry(sys.A, best, col)) {
					best = r
				}
			}
			if best != col && !matrix.IsZero(entry(sys.A, best, col), o.eps) {
				if sys, _, err = rowops.Swap(sys, col, best); err != nil {
					return nil, luErrorf(tag, err)
				}
				if err = swapLowerRows(L, col, best); err != nil {
					return nil, luErrorf(tag, err)
				}
				perm[col], perm[best] = perm[best], perm[col]

				st := steps.New(steps.KindSwap, fmt.Sprintf(fmtSwap, col+1, best+1))
				st.PivotRow, st.PivotCol, st.SwapRow = col, col, best
				em.Emit(snapshot(st, sys, L, perm))
			}
		}

		pivot := entry(sys.A, col, col)
		if matrix.IsZero(pivot, o.eps) {
			if blocked(sys.A, col, o.eps) {
				skipped = append(skipped, col)
			}
			continue
		}

		for row := col + 1; row < n; row++ {
			v := entry(sys.A, row, col)
			if matrix.IsZero(v, o.eps) {
				continue
			}
			factor := v / pivot
			if math.IsInf(factor, 0) {
				return nil, luErrorf(tag, fmt.Errorf("multiplier L[%d,%d] overflows: %w", row, col, matrix.ErrNaNInf))
			}
			if err = L.Set(row, col, factor); err != nil {
				return nil, luErrorf(tag, err)
			}
			if sys, _, err = rowops.Eliminate(sys, row, col, factor); err != nil {
				return nil, luErrorf(tag, err)
			}
			if err = sys.A.Set(row, col, 0); err != nil {
				return nil, luErrorf(tag, err)
			}
			sys.SnapZeros(o.eps)

			st := steps.New(steps.KindEliminate,
				fmt.Sprintf(fmtEliminate, col+1, row+1, row+1, col+1, matrix.FormatNumber(factor)))
			st.PivotRow, st.PivotCol, st.EliminateRow, st.Factor = col, col, row, factor
			em.Emit(snapshot(st, sys, L, perm))
		}
	}

	switch {
	case len(skipped) > 0:
		desc = fmt.Sprintf(fmtIncomplete, skipped[0]+1)
	case pivoted:
		desc = descCompletePivoted
	default:
		desc = descComplete
	}
	em.Emit(snapshot(steps.New(steps.KindComplete, desc), sys, L, perm))

	res := &Result{L: L, U: sys.A, Perm: perm, Skipped: skipped, Steps: em.Steps()}
	if pivoted {
		if res.P, err = permutationMatrix(perm); err != nil {
			return nil, luErrorf(tag, err)
		}
	}

	return res, nil
}

// swapLowerRows exchanges the already computed multipliers (columns < k)
// of rows i and j of L.
func swapLowerRows(L *matrix.Dense, i, j int) error {
	for c := 0; c < min(i, j); c++ {
		vi, _ := L.At(i, c)
		vj, _ := L.At(j, c)
		if err := L.Set(i, c, vj); err != nil {
			return err
		}
		if err := L.Set(j, c, vi); err != nil {
			return err
		}
	}

	return nil
}

// blocked reports whether some entry below the (zero) diagonal of column
// col is nonzero, i.e. the column cannot be cleared without a row exchange.
func blocked(U *matrix.Dense, col int, eps float64) bool {
	for r := col + 1; r < U.Rows(); r++ {
		if !matrix.IsZero(entry(U, r, col), eps) {
			return true
		}
	}

	return false
}

func permutationMatrix(perm []int) (*matrix.Dense, error) {
	P, err := matrix.NewDense(len(perm), len(perm))
	if err != nil {
		return nil, err
	}
	for i, src := range perm {
		if err = P.Set(i, src, 1); err != nil {
			return nil, err
		}
	}

	return P, nil
}

func snapshot(st steps.Step, sys *rowops.System, L *matrix.Dense, perm []int) steps.Step {
	st.Matrix = sys.A.ToRows()
	st.L = L.ToRows()
	if perm != nil {
		st.Perm = append([]int(nil), perm...)
	}

	return st
}

func entry(m *matrix.Dense, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}
