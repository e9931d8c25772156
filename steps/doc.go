// Package steps defines the replayable step sequences produced by the
// elimination and LU engines.
//
// A Step is a plain, immutable snapshot: a description of the operation, the
// matrix (and right-hand side, and L factor for LU) after it, and optional
// highlight indices (pivot row/column, eliminated row, swapped row, solved
// variable) that presentation layers use for emphasis. Unset indices are None.
//
// Engines build sequences through an Emitter, which forwards each step to an
// optional Observer as it is produced:
//
//	rec := steps.NewRecorder()
//	obs := steps.Multi(rec, steps.NewLoggingObserver(logger))
//	res, err := elimination.Echelon(A, b, elimination.WithObserver(obs))
//
// Cursor holds the "current step index" of a player and keeps it in range
// when the sequence is recomputed after an edit.
package steps
