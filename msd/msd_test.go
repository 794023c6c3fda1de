package msd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percwalk/msd"
	"github.com/katalvlaran/percwalk/tensor"
)

// ballisticCube builds nWalks identical trajectories x(t)=t, y(t)=0.
func ballisticCube(t *testing.T, length, nWalks int) *tensor.Cube {
	t.Helper()
	q, err := tensor.NewCube(2, length, nWalks)
	require.NoError(t, err)
	for i := 0; i < nWalks; i++ {
		for j := 0; j < length; j++ {
			require.NoError(t, q.Set(0, j, i, float64(j)))
		}
	}
	return q
}

// TestAnalyze_Errors covers the shape validation.
func TestAnalyze_Errors(t *testing.T) {
	_, err := msd.Analyze(nil, msd.Options{})
	assert.ErrorIs(t, err, msd.ErrNilWalks)

	bad, err := tensor.NewCube(3, 4, 2)
	require.NoError(t, err)
	_, err = msd.Analyze(bad, msd.Options{})
	assert.ErrorIs(t, err, msd.ErrBadShape)

	short, err := tensor.NewCube(2, 1, 2)
	require.NoError(t, err)
	_, err = msd.Analyze(short, msd.Options{})
	assert.ErrorIs(t, err, msd.ErrWalkTooShort)
}

// TestAnalyze_Stationary feeds motionless walks: every statistic is zero,
// including the ergodicity parameter despite its 0/0 form.
func TestAnalyze_Stationary(t *testing.T) {
	q, err := tensor.NewCube(2, 8, 3)
	require.NoError(t, err)

	res, err := msd.Analyze(q, msd.Options{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Lags())

	for _, v := range res.Table().Data() {
		assert.Zero(t, v)
	}
}

// TestAnalyze_Ballistic checks the closed forms for x(t)=t: the
// ensemble-average and time-average MSD at lag j are both j², the
// one-step time average over a prefix of length j is 1 (0 at the first
// lag, where the window is empty), and identical walks break no
// ergodicity.
func TestAnalyze_Ballistic(t *testing.T) {
	const (
		length = 10
		nWalks = 4
	)
	q := ballisticCube(t, length, nWalks)

	res, err := msd.Analyze(q, msd.Options{})
	require.NoError(t, err)
	assert.Equal(t, length, res.WalkLength())
	assert.Equal(t, nWalks, res.NWalks())

	ea := res.EAMSD()
	eata := res.EATAMSD()
	eb := res.Ergodicity()
	require.Len(t, ea, length-1)

	for j := 1; j < length; j++ {
		assert.InDelta(t, float64(j*j), ea[j-1], 1e-12, "eaMSD lag %d", j)
		assert.Zero(t, eb[j-1], "EB lag %d", j)
	}
	assert.Zero(t, eata[0], "one-step average over a single point")
	for j := 2; j < length; j++ {
		assert.InDelta(t, 1.0, eata[j-1], 1e-12, "eataMSD prefix %d", j)
	}

	for i := 0; i < nWalks; i++ {
		ta, err := res.TAMSD(i)
		require.NoError(t, err)
		for j := 1; j < length; j++ {
			assert.InDelta(t, float64(j*j), ta[j-1], 1e-12, "taMSD walk %d lag %d", i, j)
		}
	}
}

// TestAnalyze_TableLayout pins the column order of the assembled table:
// ea, eata, EB, then one TAMSD column per walk.
func TestAnalyze_TableLayout(t *testing.T) {
	q := ballisticCube(t, 5, 2)
	res, err := msd.Analyze(q, msd.Options{})
	require.NoError(t, err)

	table := res.Table()
	assert.Equal(t, 4, table.Rows())
	assert.Equal(t, 5, table.Cols())

	v, err := table.At(2, 0) // lag 3 ensemble average
	require.NoError(t, err)
	assert.InDelta(t, 9.0, v, 1e-12)
	v, err = table.At(2, 3) // lag 3 TAMSD of walk 0
	require.NoError(t, err)
	assert.InDelta(t, 9.0, v, 1e-12)
}

// TestAnalyze_WorkerInvariance checks the reduction is independent of
// the worker count.
func TestAnalyze_WorkerInvariance(t *testing.T) {
	q, err := tensor.NewCube(2, 12, 5)
	require.NoError(t, err)
	// A deterministic non-trivial pattern, distinct per walk.
	for i := 0; i < 5; i++ {
		for j := 0; j < 12; j++ {
			require.NoError(t, q.Set(0, j, i, float64((j*(i+1))%7)))
			require.NoError(t, q.Set(1, j, i, float64((j+i)%5)))
		}
	}

	one, err := msd.Analyze(q, msd.Options{Workers: 1})
	require.NoError(t, err)
	many, err := msd.Analyze(q, msd.Options{Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, one.Table().Data(), many.Table().Data())
}

func BenchmarkAnalyze(b *testing.B) {
	q, err := tensor.NewCube(2, 256, 32)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 32; i++ {
		for j := 0; j < 256; j++ {
			_ = q.Set(0, j, i, float64(j%17))
			_ = q.Set(1, j, i, float64((j*i)%13))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := msd.Analyze(q, msd.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
