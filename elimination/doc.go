// Package elimination is the row-reduction engine.
//
// Entry points:
//
//	Echelon         row echelon form with partial pivoting
//	Reduce          reduced row echelon form (pivots scaled to 1, cleared above and below)
//	Classify        rank, nullity, pivot and free columns of a matrix
//	BackSubstitute  unique values or a parametric general solution of an echelon system
//	Solve           Echelon followed by BackSubstitute
//
// Every call works on a private copy of its input and returns the complete
// step sequence (see package steps), so a caller can replay, rewind or log
// the computation. Degenerate numerics are results, not errors: a singular
// matrix has lower rank, an inconsistent system yields Kind == NoSolution.
// Errors are reserved for malformed input and wrap the matrix sentinels,
// ErrInvalidPivots or ErrInconsistent; match them with errors.Is.
//
// Approximate-zero tests use matrix.DefaultEpsilon unless WithEpsilon
// overrides it.
package elimination
