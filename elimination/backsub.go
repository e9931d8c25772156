// SPDX-License-Identifier: MIT

// Package elimination: back-substitution over an echelon system.
package elimination

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/rowops"
	"github.com/katalvlaran/linstep/steps"
)

const (
	descIdentifyPivots = "Row echelon form — identify pivot positions"
	fmtSolveFor        = "Back-substitute: solve for %s"
	descUnique         = "Solution found!"
	descInfinite       = "General solution expressed"
	fmtNoSolution      = "No solution: row %d reads 0 = %s"

	// minus is the sign glyph used throughout expressions, leading or infix.
	minus = "−"
)

// SolutionKind classifies the solution set of a linear system.
type SolutionKind int

const (
	// Unique means exactly one solution (no free variables).
	Unique SolutionKind = iota
	// Infinite means a family parameterized by the free variables.
	Infinite
	// NoSolution means the system is inconsistent.
	NoSolution
)

func (k SolutionKind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case NoSolution:
		return "none"
	default:
		return "unknown"
	}
}

// Term is Coefficient·x_Free inside an Expression.
type Term struct {
	Coefficient float64
	Free        int
}

// Expression writes basic variable x_Variable as Constant + Σ Terms.
type Expression struct {
	Variable int
	Constant float64
	Terms    []Term
}

// String renders the expression with default names, e.g. "x1 = 3 − 2·x3"
// or "x2 = −1 − x3". Every minus sign is U+2212.
func (e Expression) String() string { return e.Format(nil) }

// Format renders the expression using names (falling back to x1, x2, ...).
func (e Expression) Format(names []string) string {
	o := Options{names: names}
	var sb strings.Builder
	sb.WriteString(o.name(e.Variable))
	sb.WriteString(" = ")

	wrote := false
	if e.Constant != 0 || len(e.Terms) == 0 {
		if e.Constant < 0 {
			sb.WriteString(minus)
		}
		sb.WriteString(matrix.FormatNumber(math.Abs(e.Constant)))
		wrote = true
	}
	for _, t := range e.Terms {
		switch {
		case wrote && t.Coefficient < 0:
			sb.WriteString(" " + minus + " ")
		case wrote:
			sb.WriteString(" + ")
		case t.Coefficient < 0:
			sb.WriteString(minus)
		}
		if mag := matrix.FormatNumber(math.Abs(t.Coefficient)); mag != "1" {
			sb.WriteString(mag)
			sb.WriteString("·")
		}
		sb.WriteString(o.name(t.Free))
		wrote = true
	}

	return sb.String()
}

// Solution is the outcome of BackSubstitute.
type Solution struct {
	Kind SolutionKind
	// Values holds x when Kind == Unique, nil otherwise.
	Values []float64
	// Expressions holds one entry per basic variable, in increasing
	// variable order. Nil when Kind == NoSolution.
	Expressions []Expression
	// Basic and Free are the sorted index sets the solution was built from.
	Basic []int
	Free  []int
	// InconsistentRow is the row reading 0 = c, or steps.None.
	InconsistentRow int
	Steps           []steps.Step

	names []string
}

// String lists the expressions one per line, or reports inconsistency.
func (s *Solution) String() string {
	if s.Kind == NoSolution {
		return fmt.Sprintf("no solution (row %d is inconsistent)", s.InconsistentRow+1)
	}
	lines := make([]string, len(s.Expressions))
	for i, e := range s.Expressions {
		lines[i] = e.Format(s.names)
	}

	return strings.Join(lines, "\n")
}

// Evaluate returns the particular solution obtained by assigning
// freeValues[k] to variable Free[k].
//
// Errors: ErrInconsistent for NoSolution, matrix.ErrInvalidShape when
// len(freeValues) != len(Free).
func (s *Solution) Evaluate(freeValues []float64) ([]float64, error) {
	if s.Kind == NoSolution {
		return nil, eliminationErrorf(opEvaluate, ErrInconsistent)
	}
	if len(freeValues) != len(s.Free) {
		return nil, eliminationErrorf(opEvaluate,
			fmt.Errorf("%d free values for %d free variables: %w", len(freeValues), len(s.Free), matrix.ErrInvalidShape))
	}

	x := make([]float64, len(s.Basic)+len(s.Free))
	for k, j := range s.Free {
		x[j] = freeValues[k]
	}
	for _, e := range s.Expressions {
		v := e.Constant
		for _, t := range e.Terms {
			v += t.Coefficient * x[t.Free]
		}
		x[e.Variable] = v
	}

	return x, nil
}

// BackSubstitute solves an echelon system given its basic (pivot) and free
// column sets. Pivot i is expected in row i, so basic sorted increasingly
// must match the rows from the top.
//
// Implementation:
//   - Stage 1: validate and sort the index sets against the nonzero pattern of sys.
//   - Stage 2: a row [0 … 0 | c] with c != 0 ends the run with Kind == NoSolution.
//   - Stage 3: walk pivot rows bottom-up; substitute the already solved basic
//     variables (constants and free-variable terms), keep free columns as
//     terms, divide by the pivot. One solve step per basic variable.
//   - Stage 4: no free columns gives Unique with Values, otherwise Infinite.
//
// Errors:
//   - matrix.ErrNilMatrix when sys is nil.
//   - ErrInvalidPivots when the sets overlap, leave a column uncovered, point
//     out of range, or disagree with the nonzero pattern of sys.
//
// Complexity:
//   - Time O(rank·c²), Space O(c²) for the symbolic coefficients.
func BackSubstitute(sys *rowops.System, basic, free []int, opts ...Option) (*Solution, error) {
	if sys == nil || sys.A == nil {
		return nil, eliminationErrorf(opBackSubstitute, matrix.ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	basic, free, err := checkPivots(sys, basic, free, o.eps)
	if err != nil {
		return nil, eliminationErrorf(opBackSubstitute, err)
	}

	em := steps.NewEmitter(o.observer)
	start := snapshot(steps.New(steps.KindInitial, descIdentifyPivots), sys)
	em.Emit(start)

	sol := &Solution{Basic: basic, Free: free, InconsistentRow: steps.None, names: o.names}
	if row := inconsistentRow(sys, o.eps); row != steps.None {
		sol.Kind = NoSolution
		sol.InconsistentRow = row
		em.Emit(snapshot(steps.New(steps.KindComplete,
			fmt.Sprintf(fmtNoSolution, row+1, matrix.FormatNumber(sys.B[row]))), sys))
		sol.Steps = em.Steps()

		return sol, nil
	}

	n := sys.Cols()
	isFree := make([]bool, n)
	for _, j := range free {
		isFree[j] = true
	}
	exprs := make([]Expression, n)
	coef := make([]float64, n)

	for i := len(basic) - 1; i >= 0; i-- {
		col := basic[i]
		row, _ := sys.A.Row(i)
		constant := sys.RHS(i)
		for j := range coef {
			coef[j] = 0
		}
		for j := col + 1; j < n; j++ {
			v := row[j]
			if matrix.IsZero(v, o.eps) {
				continue
			}
			if isFree[j] {
				coef[j] -= v
				continue
			}
			known := exprs[j]
			constant -= v * known.Constant
			for _, t := range known.Terms {
				coef[t.Free] -= v * t.Coefficient
			}
		}

		pivot := row[col]
		e := Expression{Variable: col, Constant: snap(constant/pivot, o.eps)}
		for _, f := range free {
			if c := coef[f] / pivot; !matrix.IsZero(c, o.eps) {
				e.Terms = append(e.Terms, Term{Coefficient: c, Free: f})
			}
		}
		exprs[col] = e

		st := steps.New(steps.KindSolve, fmt.Sprintf(fmtSolveFor, o.name(col)))
		st.PivotRow, st.PivotCol, st.Variable = i, col, col
		em.Emit(snapshot(st, sys))
	}

	sol.Expressions = make([]Expression, 0, len(basic))
	for _, j := range basic {
		sol.Expressions = append(sol.Expressions, exprs[j])
	}

	desc := descInfinite
	if len(free) == 0 {
		sol.Kind = Unique
		sol.Values = make([]float64, n)
		for _, e := range sol.Expressions {
			sol.Values[e.Variable] = e.Constant
		}
		desc = descUnique
	} else {
		sol.Kind = Infinite
	}
	em.Emit(snapshot(steps.New(steps.KindComplete, desc), sys))
	sol.Steps = em.Steps()

	return sol, nil
}

// Solve runs Echelon on [A | b] and back-substitutes the result.
// b may be nil for the homogeneous system A·x = 0.
func Solve(a matrix.Matrix, b []float64, opts ...Option) (*Solution, *Result, error) {
	res, err := Echelon(a, b, opts...)
	if err != nil {
		return nil, nil, eliminationErrorf(opSolve, err)
	}
	sol, err := BackSubstitute(res.Final, res.PivotColumns, res.FreeColumns, opts...)
	if err != nil {
		return nil, res, eliminationErrorf(opSolve, err)
	}

	return sol, res, nil
}

// checkPivots validates the index sets against sys and returns sorted copies.
func checkPivots(sys *rowops.System, basic, free []int, eps float64) ([]int, []int, error) {
	n := sys.Cols()
	if len(basic)+len(free) != n {
		return nil, nil, fmt.Errorf("%d basic + %d free for %d columns: %w", len(basic), len(free), n, ErrInvalidPivots)
	}
	if len(basic) > sys.Rows() {
		return nil, nil, fmt.Errorf("%d pivots for %d rows: %w", len(basic), sys.Rows(), ErrInvalidPivots)
	}

	seen := make([]bool, n)
	for _, set := range [][]int{basic, free} {
		for _, j := range set {
			if j < 0 || j >= n {
				return nil, nil, fmt.Errorf("column %d of %d: %w", j, n, ErrInvalidPivots)
			}
			if seen[j] {
				return nil, nil, fmt.Errorf("column %d listed twice: %w", j, ErrInvalidPivots)
			}
			seen[j] = true
		}
	}

	basic = append([]int(nil), basic...)
	free = append([]int(nil), free...)
	sort.Ints(basic)
	sort.Ints(free)

	for i := 0; i < sys.Rows(); i++ {
		row, _ := sys.A.Row(i)
		if i >= len(basic) {
			if !zeroRow(row, eps) {
				return nil, nil, fmt.Errorf("row %d has no pivot but is nonzero: %w", i, ErrInvalidPivots)
			}
			continue
		}
		col := basic[i]
		if matrix.IsZero(row[col], eps) {
			return nil, nil, fmt.Errorf("zero pivot at (%d,%d): %w", i, col, ErrInvalidPivots)
		}
		if !zeroRow(row[:col], eps) {
			return nil, nil, fmt.Errorf("row %d has entries left of pivot column %d: %w", i, col, ErrInvalidPivots)
		}
	}

	return basic, free, nil
}

func snap(v, eps float64) float64 {
	if matrix.IsZero(v, eps) {
		return 0
	}

	return v
}
