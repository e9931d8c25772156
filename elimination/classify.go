// SPDX-License-Identifier: MIT
package elimination

import (
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/steps"
)

// Classification describes the column space structure of a matrix.
type Classification struct {
	Rank         int
	Nullity      int // Cols(A) - Rank
	PivotColumns []int
	FreeColumns  []int
	RREF         [][]float64
	Steps        []steps.Step
}

// Classify reduces A to RREF and reads each pivot as the leading entry of
// a nonzero row. Rank + Nullity == Cols(A) always holds.
//
// Implementation:
//   - Stage 1: Reduce(A) without a right-hand side.
//   - Stage 2: scan each RREF row for its first |v| >= eps; that column is a pivot.
//   - Stage 3: free columns are the complement of the pivots.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - Dominated by Reduce; the scan is O(r·c).
func Classify(a matrix.Matrix, opts ...Option) (*Classification, error) {
	o := gatherOptions(opts...)
	res, err := run(opClassify, a, nil, true, o)
	if err != nil {
		return nil, err
	}

	rref := res.Final.A.ToRows()
	cols := res.Final.Cols()
	pivots := make([]int, 0, res.Rank)
	for _, row := range rref {
		for j, v := range row {
			if !matrix.IsZero(v, o.eps) {
				pivots = append(pivots, j)
				break
			}
		}
	}

	return &Classification{
		Rank:         len(pivots),
		Nullity:      cols - len(pivots),
		PivotColumns: pivots,
		FreeColumns:  complement(pivots, cols),
		RREF:         rref,
		Steps:        res.Steps,
	}, nil
}

// IsPivot reports whether column j holds a pivot.
func (c *Classification) IsPivot(j int) bool {
	for _, p := range c.PivotColumns {
		if p == j {
			return true
		}
	}

	return false
}
