// Package lu factors a square matrix as A = L·U (Factorize) or P·A = L·U
// (FactorizePivoted) and records every elimination as a step carrying both
// the evolving U (Step.Matrix) and L (Step.L).
//
// L is unit lower triangular; each multiplier L[r][c] is the factor used to
// clear U[r][c]. Non-square input is matrix.ErrDimensionMismatch. A zero
// pivot is not an error: Factorize lists the blocked column in
// Result.Skipped and closes the sequence with an "incomplete" step.
package lu
