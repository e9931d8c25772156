// Package linstep is a small numeric core for teaching linear algebra one
// step at a time: every algorithm returns the full sequence of intermediate
// matrices so a player can replay, rewind or explain the computation.
//
// 🚀 What is inside?
//
//	• Dense matrices with strict validation and display formatting
//	• Elementary row operations on augmented systems [A | b]
//	• Gaussian elimination with partial pivoting, RREF, rank and nullity
//	• Back-substitution with unique or parametric (free-variable) solutions
//	• LU factorization, unpivoted (A = L·U) and pivoted (P·A = L·U)
//	• Step observers: zerolog logging, Prometheus counters, recorders
//
// ✨ Guarantees
//
//   - Pure functions: inputs are copied, never mutated; no state between calls
//   - Degenerate numerics are results: singular means lower rank, not an error
//   - Tunable approximate zero: matrix.DefaultEpsilon (1e-10) for pivots,
//     matrix.DefaultTolerance (1e-9) for round-trip checks
//
// Subpackages:
//
//	matrix/       Dense type, validators, Mul/MatVec/Transpose, determinants, formatting
//	rowops/       System [A | b] with Swap, Scale, Combine, Eliminate
//	steps/        Step records, Emitter, Cursor and Observer implementations
//	elimination/  Echelon, Reduce, Classify, BackSubstitute, Solve
//	lu/           Factorize, FactorizePivoted
//
// Quick example:
//
//	[ 2  1 -1 |   8 ]        x1 = 2
//	[-3 -1  2 | -11 ]  ──▶   x2 = 3
//	[-2  1  2 |  -3 ]        x3 = −1
//
//	sol, res, err := elimination.Solve(A, b)
//	for _, st := range res.Steps { fmt.Println(st.Description) }
//
//	go get github.com/katalvlaran/linstep
package linstep
