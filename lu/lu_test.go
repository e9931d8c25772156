// SPDX-License-Identifier: MIT
package lu_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linstep/lu"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/steps"
)

func requireReconstructs(t *testing.T, A *matrix.Dense, res *lu.Result) {
	t.Helper()
	got, err := res.Reconstruct()
	require.NoError(t, err)
	ok, err := matrix.AllClose(A, got, matrix.DefaultTolerance)
	require.NoError(t, err)
	require.True(t, ok, "reconstruction\n%v\ndiffers from\n%v", got, A)
}

func TestFactorize_Doolittle3x3(t *testing.T) {
	A := matrix.MustFromRows([][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})
	res, err := lu.Factorize(A)
	require.NoError(t, err)

	require.True(t, res.Complete())
	require.False(t, res.Pivoted())
	require.Nil(t, res.P)
	require.Equal(t, [][]float64{{1, 0, 0}, {2, 1, 0}, {4, 3, 1}}, res.L.ToRows())
	require.Equal(t, [][]float64{{2, 1, 1}, {0, 1, 1}, {0, 0, 2}}, res.U.ToRows())
	requireReconstructs(t, A, res)

	seq := res.Steps
	require.Len(t, seq, 5)
	require.Equal(t, "Initial matrix A = U, L = I", seq[0].Description)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, seq[0].L)
	require.Equal(t, "Eliminate col 1, row 2: L[2,1] = 2", seq[1].Description)
	require.Equal(t, 1, seq[1].EliminateRow)
	require.Equal(t, 2.0, seq[1].Factor)
	require.Equal(t, "Eliminate col 2, row 3: L[3,2] = 3", seq[3].Description)
	require.Equal(t, "LU decomposition complete: A = L·U", seq[4].Description)
	require.Equal(t, steps.KindComplete, seq[4].Kind)
	require.Nil(t, seq[4].Perm)

	// The caller's matrix is untouched.
	require.Equal(t, [][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}}, A.ToRows())
}

func TestFactorize_ZeroPivotIsReported(t *testing.T) {
	A := matrix.MustFromRows([][]float64{{0, 1}, {1, 1}})
	res, err := lu.Factorize(A)
	require.NoError(t, err)
	require.False(t, res.Complete())
	require.Equal(t, []int{0}, res.Skipped)

	last, ok := steps.Last(res.Steps)
	require.True(t, ok)
	require.Equal(t, "LU decomposition incomplete: zero pivot in column 1", last.Description)
}

func TestFactorize_SingularStillComplete(t *testing.T) {
	A := matrix.MustFromRows([][]float64{{1, 2}, {2, 4}})
	res, err := lu.Factorize(A)
	require.NoError(t, err)
	require.True(t, res.Complete(), "a zero pivot with nothing below needs no elimination")
	require.Equal(t, [][]float64{{1, 2}, {0, 0}}, res.U.ToRows())
	requireReconstructs(t, A, res)
}

func TestFactorizePivoted(t *testing.T) {
	A := matrix.MustFromRows([][]float64{{0, 1}, {1, 1}})
	res, err := lu.FactorizePivoted(A)
	require.NoError(t, err)
	require.True(t, res.Complete())
	require.True(t, res.Pivoted())
	require.Equal(t, []int{1, 0}, res.Perm)
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, res.P.ToRows())
	require.Equal(t, [][]float64{{1, 1}, {0, 1}}, res.U.ToRows())
	requireReconstructs(t, A, res)

	require.Equal(t, steps.KindSwap, res.Steps[1].Kind)
	require.Equal(t, "Swap row 1 and row 2 (P updated)", res.Steps[1].Description)
	require.Equal(t, []int{1, 0}, res.Steps[1].Perm)
	require.Equal(t, "LU decomposition complete: P·A = L·U", res.Steps[len(res.Steps)-1].Description)
}

func TestFactorizePivoted_PAEqualsLU(t *testing.T) {
	A := matrix.MustFromRows([][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})
	res, err := lu.FactorizePivoted(A)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, res.Perm)
	require.Equal(t, 2, steps.Count(res.Steps, steps.KindSwap))

	PA, err := matrix.Mul(res.P, A)
	require.NoError(t, err)
	LU, err := matrix.Mul(res.L, res.U)
	require.NoError(t, err)
	require.True(t, matrix.Equal(PA, LU, matrix.DefaultTolerance))

	// |multipliers| <= 1 under partial pivoting.
	for i, row := range res.L.ToRows() {
		for j := 0; j < i; j++ {
			assert.LessOrEqual(t, row[j], 1.0)
			assert.GreaterOrEqual(t, row[j], -1.0)
		}
	}
}

func TestFactorize_Errors(t *testing.T) {
	_, err := lu.Factorize(matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = lu.FactorizePivoted(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	assert.Panics(t, func() { lu.WithEpsilon(-1) })

	nan, err := matrix.FromRows([][]float64{{math.NaN(), 1}, {1, 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = lu.Factorize(nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestFactorize_OverflowIsAnError(t *testing.T) {
	A := matrix.MustFromRows([][]float64{{1e308, 1e308}, {1e308, -1e308}})
	res, err := lu.Factorize(A)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Nil(t, res)

	_, err = lu.FactorizePivoted(A)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// 1e300 / 1e-300 does not fit in a float64.
	tiny := matrix.MustFromRows([][]float64{{1e-300, 1}, {1e300, 1}})
	_, err = lu.Factorize(tiny, lu.WithEpsilon(1e-310))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestFactorize_Observers(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := steps.NewMetricsObserver(reg, "linstep")
	require.NoError(t, err)
	var buf bytes.Buffer
	logs := steps.NewLoggingObserver(zerolog.New(&buf))

	A := matrix.MustFromRows([][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})
	_, err = lu.Factorize(A, lu.WithObserver(steps.Multi(metrics, logs)))
	require.NoError(t, err)

	const want = `
# HELP linstep_steps_emitted_total Number of steps emitted by the elimination and factorization engines.
# TYPE linstep_steps_emitted_total counter
linstep_steps_emitted_total{kind="complete"} 1
linstep_steps_emitted_total{kind="eliminate"} 3
linstep_steps_emitted_total{kind="initial"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "linstep_steps_emitted_total"))
	require.Equal(t, 5, strings.Count(buf.String(), "\n"))
}

// genInvertible yields A = L·U with unit lower L and a U whose diagonal is
// bounded away from zero, so Factorize never meets a zero pivot.
func genInvertible(n int) gopter.Gen {
	entry := gen.IntRange(-5, 5).Map(func(v int) float64 { return float64(v) })
	diag := gen.IntRange(1, 5).Map(func(v int) float64 { return float64(v) })

	return gopter.CombineGens(
		gen.SliceOfN(n*n, entry),
		gen.SliceOfN(n, diag),
	).Map(func(vs []interface{}) [][]float64 {
		flat := vs[0].([]float64)
		d := vs[1].([]float64)
		l := make([][]float64, n)
		u := make([][]float64, n)
		for i := 0; i < n; i++ {
			l[i] = make([]float64, n)
			u[i] = make([]float64, n)
			for j := 0; j < n; j++ {
				switch {
				case i == j:
					l[i][j], u[i][j] = 1, d[i]
				case i > j:
					l[i][j] = flat[i*n+j]
				default:
					u[i][j] = flat[i*n+j]
				}
			}
		}
		A, _ := matrix.Mul(matrix.MustFromRows(l), matrix.MustFromRows(u))

		return A.ToRows()
	})
}

func TestFactorize_RoundTrip_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, n := range []int{2, 3, 4} {
		properties.Property("L·U == A", prop.ForAll(
			func(rows [][]float64) bool {
				A := matrix.MustFromRows(rows)
				res, err := lu.Factorize(A)
				if err != nil || !res.Complete() {
					return false
				}
				LU, err := res.Reconstruct()
				if err != nil {
					return false
				}

				return matrix.Equal(A, LU, matrix.DefaultTolerance)
			},
			genInvertible(n),
		))
		properties.Property("P·A == L·U", prop.ForAll(
			func(rows [][]float64) bool {
				A := matrix.MustFromRows(rows)
				res, err := lu.FactorizePivoted(A)
				if err != nil || !res.Complete() {
					return false
				}
				LU, err := res.Reconstruct()
				if err != nil {
					return false
				}

				return matrix.Equal(A, LU, 1e-8)
			},
			genInvertible(n),
		))
	}

	properties.TestingRun(t)
}
