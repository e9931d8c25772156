// Package matrix provides the dense primitives shared by the step engines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     copy-on-read accessors (Row, Col, ToRows).
//   - Construction from plain rows (FromRows) with strict shape checks:
//     ragged input is ErrInvalidShape, never silently padded or truncated.
//   - Pure kernels: MatVec, Mul, the column view MulColumns, the linear
//     combination view of A·x, Transpose, Det2x2/Det3x3/Det and Inverse2x2.
//   - Display helpers: FormatNumber (used in every step description) and Round.
//   - Approximate comparisons: IsZero, AllClose, Equal, VecAllClose.
//
// Numeric policy: DefaultEpsilon (1e-10) is the approximate-zero threshold,
// DefaultTolerance (1e-9) the round-trip comparison tolerance. Both are
// tunable through options and carry no meaning beyond "close enough to zero".
//
// Inputs are small (≤4×4 in practice). Every function returns freshly
// allocated results and never mutates its arguments.
package matrix
