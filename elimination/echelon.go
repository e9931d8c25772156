// SPDX-License-Identifier: MIT

// Package elimination: row reduction with partial pivoting.
//
// Echelon and Reduce share one engine loop. Both:
//   - copy the input into a private rowops.System (the caller's data is never touched),
//   - pick, per column, the row at or below the current pivot row with the
//     largest |entry| (partial pivoting),
//   - treat a column whose best |entry| is below eps as free,
//   - snap near-zero residue to exact 0 after every elimination.
//
// Reduce additionally scales each pivot to 1 and clears entries above it.
package elimination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/rowops"
	"github.com/katalvlaran/linstep/steps"
)

const (
	descInitialAugmented = "Initial augmented matrix"
	descInitialMatrix    = "Initial matrix"
)

// Result is the outcome of Echelon or Reduce.
type Result struct {
	// Steps is the full replayable sequence, starting with the initial snapshot.
	Steps []steps.Step
	// Rank is the number of pivots found.
	Rank int
	// PivotColumns lists pivot columns in increasing order; PivotColumns[i]
	// is the pivot of row i in Final.
	PivotColumns []int
	// FreeColumns lists the remaining columns in increasing order.
	FreeColumns []int
	// Final is the reduced system (equal to the last step's snapshot).
	Final *rowops.System

	eps float64
}

// Echelon reduces [A | b] to row echelon form. b may be nil.
//
// Implementation:
//   - Stage 1: copy A and b into a private rowops.System (finite values only).
//   - Stage 2: emit the initial snapshot.
//   - Stage 3: per column, pick the largest |entry| at or below the pivot row;
//     below eps the column is free and the pivot row does not advance.
//   - Stage 4: swap it up (swap step), then clear every row below with
//     R_r ← R_r − (entry/pivot)·R_p (one eliminate step each), snapping residue to 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidShape (len(b) != rows).
//   - matrix.ErrNaNInf for non-finite input or an entry overflowing during elimination.
//   - Rank deficiency and inconsistency are never errors.
//
// Complexity:
//   - Time O(r·c·min(r,c)) arithmetic plus O(r·c) per emitted snapshot, Space O(steps·r·c).
func Echelon(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	return run(opEchelon, a, b, false, gatherOptions(opts...))
}

// Reduce reduces [A | b] to reduced row echelon form: every pivot is 1 and
// is the only nonzero entry of its column.
//
// Implementation:
//   - Stage 1: same copy, snapshot and partial-pivot search as Echelon.
//   - Stage 2: scale the pivot row by 1/pivot (scale step) unless the pivot is
//     already within eps of 1; the pivot is then pinned to exactly 1.
//   - Stage 3: clear the pivot column in every other row, above and below.
//
// Errors:
//   - As Echelon.
//
// Complexity:
//   - Time O(r²·c) arithmetic plus O(r·c) per emitted snapshot, Space O(steps·r·c).
func Reduce(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	return run(opReduce, a, b, true, gatherOptions(opts...))
}

// InconsistentRow returns the index of the first row of [A | b] in the
// final system that reads [0 ... 0 | c] with c != 0, or steps.None.
func (r *Result) InconsistentRow() int {
	return inconsistentRow(r.Final, r.eps)
}

// Consistent reports whether the reduced system has at least one solution.
func (r *Result) Consistent() bool { return r.InconsistentRow() == steps.None }

// InconsistentRow inspects a step snapshot for a row [0 ... 0 | c] with
// |c| >= eps. Steps without a right-hand side never match.
func InconsistentRow(s steps.Step, eps float64) int {
	if s.RHS == nil {
		return steps.None
	}
	for i, row := range s.Matrix {
		if zeroRow(row, eps) && !matrix.IsZero(s.RHS[i], eps) {
			return i
		}
	}

	return steps.None
}

func run(tag string, a matrix.Matrix, b []float64, reduced bool, o Options) (*Result, error) {
	sys, err := rowops.NewSystem(a, b)
	if err != nil {
		return nil, eliminationErrorf(tag, err)
	}

	em := steps.NewEmitter(o.observer)
	desc := descInitialMatrix
	if sys.HasRHS() {
		desc = descInitialAugmented
	}
	em.Emit(snapshot(steps.New(steps.KindInitial, desc), sys))

	rows, cols := sys.Rows(), sys.Cols()
	pivots := make([]int, 0, min(rows, cols))
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		best, bestAbs := pivotRow, math.Abs(entry(sys, pivotRow, col))
		for r := pivotRow + 1; r < rows; r++ {
			if v := math.Abs(entry(sys, r, col)); v > bestAbs {
				best, bestAbs = r, v
			}
		}
		if bestAbs < o.eps {
			continue
		}

		if best != pivotRow {
			if sys, desc, err = rowops.Swap(sys, pivotRow, best); err != nil {
				return nil, eliminationErrorf(tag, err)
			}
			st := steps.New(steps.KindSwap, desc)
			st.PivotRow, st.PivotCol, st.SwapRow = pivotRow, col, best
			em.Emit(snapshot(st, sys))
		}

		if reduced {
			if sys, err = normalizePivot(sys, pivotRow, col, o.eps, em); err != nil {
				return nil, eliminationErrorf(tag, err)
			}
		}

		first := pivotRow + 1
		if reduced {
			first = 0
		}
		pivot := entry(sys, pivotRow, col)
		for r := first; r < rows; r++ {
			v := entry(sys, r, col)
			if r == pivotRow || matrix.IsZero(v, o.eps) {
				continue
			}
			factor := v / pivot
			if sys, desc, err = rowops.Eliminate(sys, r, pivotRow, factor); err != nil {
				return nil, eliminationErrorf(tag, err)
			}
			if err = sys.A.Set(r, col, 0); err != nil {
				return nil, eliminationErrorf(tag, err)
			}
			sys.SnapZeros(o.eps)

			st := steps.New(steps.KindEliminate, desc)
			st.PivotRow, st.PivotCol, st.EliminateRow, st.Factor = pivotRow, col, r, factor
			em.Emit(snapshot(st, sys))
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return &Result{
		Steps:        em.Steps(),
		Rank:         len(pivots),
		PivotColumns: pivots,
		FreeColumns:  complement(pivots, cols),
		Final:        sys,
		eps:          o.eps,
	}, nil
}

// normalizePivot scales row p so that A[p][col] becomes exactly 1.
// A pivot already within eps of 1 is pinned to 1 without emitting a step.
func normalizePivot(sys *rowops.System, p, col int, eps float64, em *steps.Emitter) (*rowops.System, error) {
	pivot := entry(sys, p, col)
	if math.Abs(pivot-1) < eps {
		return sys, sys.A.Set(p, col, 1)
	}

	k := 1 / pivot
	out, desc, err := rowops.Scale(sys, p, k)
	if err != nil {
		return nil, err
	}
	if err = out.A.Set(p, col, 1); err != nil {
		return nil, err
	}
	out.SnapZeros(eps)

	st := steps.New(steps.KindScale, desc)
	st.PivotRow, st.PivotCol, st.EliminateRow, st.Factor = p, col, p, k
	em.Emit(snapshot(st, out))

	return out, nil
}

// snapshot fills the matrix/rhs copies of st from sys.
func snapshot(st steps.Step, sys *rowops.System) steps.Step {
	st.Matrix = sys.A.ToRows()
	st.RHS = steps.CopyVec(sys.B)

	return st
}

// entry reads A[i][j]; indices are always in range inside the engine.
func entry(sys *rowops.System, i, j int) float64 {
	v, _ := sys.A.At(i, j)
	return v
}

func inconsistentRow(sys *rowops.System, eps float64) int {
	if !sys.HasRHS() {
		return steps.None
	}
	for i := 0; i < sys.Rows(); i++ {
		row, _ := sys.A.Row(i)
		if zeroRow(row, eps) && !matrix.IsZero(sys.B[i], eps) {
			return i
		}
	}

	return steps.None
}

func zeroRow(row []float64, eps float64) bool {
	for _, v := range row {
		if !matrix.IsZero(v, eps) {
			return false
		}
	}

	return true
}

// complement returns [0, n) minus the sorted set cols, in increasing order.
func complement(cols []int, n int) []int {
	out := make([]int, 0, n-len(cols))
	k := 0
	for j := 0; j < n; j++ {
		if k < len(cols) && cols[k] == j {
			k++
			continue
		}
		out = append(out, j)
	}

	return out
}

// String renders the final system with its rank, e.g. for debugging output.
func (r *Result) String() string {
	return fmt.Sprintf("rank %d, pivots %v, free %v\n%s", r.Rank, r.PivotColumns, r.FreeColumns, r.Final.A)
}
