package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gomosek/portfolio"
)

func TestReturns(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0.1, -0.1}, Returns([]float64{100, 110, 99}), 1e-12)
	assert.Nil(t, Returns([]float64{100}))
}

func TestCompute(t *testing.T) {
	portfolio := []float64{100, 110, 99}
	index := []float64{100, 100, 100}
	enhanced := []float64{100, 105, 105}

	rep, err := Compute(portfolio, index, enhanced, 0.8)
	require.NoError(t, err)

	const tol = 1e-9
	assert.InDelta(t, -0.025, rep.AverageExcessReturn, tol)
	assert.InDelta(t, 0.0, rep.AverageReturn, tol)
	assert.InDelta(t, math.Sqrt(0.005), rep.DownsideSemiStandardDeviation, tol)
	assert.InDelta(t, math.Sqrt(0.00125), rep.UpsideSemiStandardDeviation, tol)
	assert.InDelta(t, math.Sqrt(0.00625), rep.RMSE, tol)
	assert.InDelta(t, 0.075, rep.MAD, tol)
	assert.InDelta(t, 0.5, rep.BeatBenchmarkRatio, tol)
	assert.InDelta(t, 0.1, rep.BeatBenchmarkExcess, tol)
	assert.InDelta(t, -0.1, rep.BeatBenchmarkShortfall, tol)
	assert.InDelta(t, -0.025/math.Sqrt(0.005), rep.SortinoIndex, tol)
	assert.InDelta(t, 0.1/math.Sqrt(0.00125), rep.BeatBenchmarkRewardRiskRatio, tol)
	assert.InDelta(t, -0.07, rep.VaR, tol)
	assert.InDelta(t, 0.1, rep.CVaR, tol)
	assert.InDelta(t, -0.09, rep.VaRAbs, tol)
	assert.InDelta(t, 0.1, rep.CVaRAbs, tol)
	assert.InDelta(t, -6, rep.ExcessReturn, tol)
	assert.InDelta(t, -1, rep.TotalReturn, tol)
	assert.Equal(t, 0.0, rep.MarketBeta, "flat index has no variance")
	assert.InDelta(t, -0.0925, rep.P5, tol)
	assert.InDelta(t, 0.0425, rep.P95, tol)
	assert.Greater(t, rep.P95, rep.P90)
}

func TestMarketBeta(t *testing.T) {
	index := []float64{100, 110, 99, 108.9}
	portfolio := []float64{100, 120, 96, 115.2}
	rep, err := Compute(portfolio, index, index, 0.9)
	require.NoError(t, err)
	assert.InDelta(t, 2, rep.MarketBeta, 1e-9)
}

func TestComputeZeroDenominators(t *testing.T) {
	path := []float64{100, 101, 102}
	rep, err := Compute(path, path, path, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.SortinoIndex)
	assert.Equal(t, 0.0, rep.BeatBenchmarkRewardRiskRatio)
	assert.Equal(t, 0.0, rep.BeatBenchmarkRatio)
	assert.Equal(t, 0.0, rep.BeatBenchmarkExcess)
}

func TestComputeErrors(t *testing.T) {
	_, err := Compute([]float64{100}, []float64{100}, []float64{100}, 0.9)
	assert.ErrorIs(t, err, ErrShortPath)

	_, err = Compute([]float64{100, 101}, []float64{100}, []float64{100, 101}, 0.9)
	assert.Error(t, err)
}

func TestPercentile(t *testing.T) {
	x := []float64{3, 1, 2, 4, 5}
	assert.Equal(t, 3.0, Percentile(x, 50))
	assert.InDelta(t, 1.4, Percentile(x, 10), 1e-12)
	assert.Equal(t, 5.0, Percentile(x, 100))
	assert.True(t, math.IsNaN(Percentile(nil, 50)))
	assert.Equal(t, []float64{3, 1, 2, 4, 5}, x, "input is not sorted in place")

	for _, p := range []float64{0, 5, 33, 90, 95} {
		assert.Equal(t, portfolio.Quantile(x, p/100), Percentile(x, p), p)
	}
}

func TestValues(t *testing.T) {
	rep := Report{Objective: 1.5, RMSE: 0.2, P95: 0.3}
	v := rep.Values([]string{"P95", "Objective", "RMSE", "Nope"})
	assert.Equal(t, []float64{0.3, 1.5, 0.2}, v[:3])
	assert.True(t, math.IsNaN(v[3]))

	all := rep.Values(Columns)
	assert.Len(t, all, len(Columns))
	for i, c := range Columns {
		_, ok := rep.Value(c)
		assert.True(t, ok, c)
		assert.False(t, math.IsNaN(all[i]), c)
	}
}
