// SPDX-License-Identifier: MIT
package elimination

import (
	"errors"
	"fmt"
)

// ErrInvalidPivots is returned by BackSubstitute when the basic/free index
// sets do not describe the given echelon matrix: overlapping or out-of-range
// indices, |basic|+|free| != cols, a (near) zero coefficient at a claimed
// pivot, or a nonzero entry left of a claimed pivot.
var ErrInvalidPivots = errors.New("elimination: pivot sets do not match echelon form")

// ErrInconsistent is returned when a particular solution is requested from
// a system that has none.
var ErrInconsistent = errors.New("elimination: system is inconsistent")

const (
	opEchelon        = "Echelon"
	opReduce         = "Reduce"
	opClassify       = "Classify"
	opBackSubstitute = "BackSubstitute"
	opSolve          = "Solve"
	opEvaluate       = "Evaluate"
)

func eliminationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
