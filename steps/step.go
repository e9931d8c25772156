// SPDX-License-Identifier: MIT

// Package steps: immutable step records emitted by the engines.
package steps

// None marks an unset index field (pivot row, eliminated row, ...).
const None = -1

// Kind classifies what produced a step.
type Kind int

const (
	// KindInitial is the snapshot of the input before any operation.
	KindInitial Kind = iota
	// KindSwap exchanges two rows.
	KindSwap
	// KindScale multiplies a row by a nonzero constant.
	KindScale
	// KindEliminate subtracts a multiple of the pivot row from another row.
	KindEliminate
	// KindSolve isolates one basic variable during back-substitution.
	KindSolve
	// KindComplete closes a sequence with a summary.
	KindComplete
)

var kindNames = [...]string{
	KindInitial:   "initial",
	KindSwap:      "swap",
	KindScale:     "scale",
	KindEliminate: "eliminate",
	KindSolve:     "solve",
	KindComplete:  "complete",
}

// String returns the lower-case kind name used in logs and metric labels.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Step is a snapshot of one stage of a computation.
// All slices are owned by the step; engines never share them between steps.
type Step struct {
	Kind        Kind
	Description string      // human-readable operation, e.g. "R2 ← R2 − (1.5)·R1"
	Matrix      [][]float64 // coefficient matrix (U for LU) after the operation
	RHS         []float64   // right-hand side after the operation, nil when absent
	L           [][]float64 // evolving L factor, LU steps only
	Perm        []int       // row permutation so far, pivoted LU steps only

	PivotRow     int // row holding the pivot, or None
	PivotCol     int // column holding the pivot, or None
	EliminateRow int // row being eliminated or scaled, or None
	SwapRow      int // row exchanged with PivotRow, or None
	Variable     int // variable solved in this step, or None

	Factor float64 // multiplier applied by the operation, 0 when not applicable
}

// New returns a step of the given kind with every index field set to None.
func New(kind Kind, description string) Step {
	return Step{
		Kind:         kind,
		Description:  description,
		PivotRow:     None,
		PivotCol:     None,
		EliminateRow: None,
		SwapRow:      None,
		Variable:     None,
	}
}

// HasPivot reports whether the step highlights a pivot position.
func (s Step) HasPivot() bool { return s.PivotRow != None && s.PivotCol != None }

// Augmented returns the rows of [Matrix | RHS] as a fresh copy.
// Without a right-hand side it returns a copy of Matrix.
func (s Step) Augmented() [][]float64 {
	out := make([][]float64, len(s.Matrix))
	for i, row := range s.Matrix {
		n := len(row)
		if s.RHS != nil {
			n++
		}
		r := make([]float64, 0, n)
		r = append(r, row...)
		if s.RHS != nil {
			r = append(r, s.RHS[i])
		}
		out[i] = r
	}

	return out
}

// Count returns how many steps in seq have the given kind.
func Count(seq []Step, kind Kind) int {
	n := 0
	for i := range seq {
		if seq[i].Kind == kind {
			n++
		}
	}

	return n
}

// Last returns the final step of seq, or false when seq is empty.
func Last(seq []Step) (Step, bool) {
	if len(seq) == 0 {
		return Step{}, false
	}

	return seq[len(seq)-1], true
}

// CopyRows deep-copies a row slice; nil stays nil.
func CopyRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}

	return out
}

// CopyVec copies a vector; nil stays nil.
func CopyVec(v []float64) []float64 {
	if v == nil {
		return nil
	}

	return append([]float64(nil), v...)
}
