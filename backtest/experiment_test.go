//go:build mosek

package backtest

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gomosek/marketdata"
)

func syntheticRunner(t *testing.T) *Runner {
	t.Helper()
	m, err := marketdata.Synthetic(marketdata.SyntheticConfig{
		Assets: 6, Periods: 160, Drift: 0.06, Volatility: 0.2, Seed: 42,
	})
	require.NoError(t, err)
	return &Runner{Market: m}
}

func TestExperiment1Synthetic(t *testing.T) {
	r := syntheticRunner(t)
	r.Checkpoint = filepath.Join(t.TempDir(), "e1.ckpt")
	cfg := Experiment1Config{
		TrainingSizes: []int{40, 60},
		TestSize:      20,
		Simulations:   3,
		Rho:           0.3,
		Beta:          0.8,
		AnnualExcess:  0.05,
		Radii:         []float64{0, 0.01, 0.1},
	}
	res, err := r.Experiment1(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3, len(res.Columns)}, res.IS.Dims)
	assert.Equal(t, []int{2, 3, 7}, res.Weights.Dims)

	// weights of every solved window sum to one
	var sum float64
	for _, v := range res.Weights.Row(0, 0) {
		sum += v
	}
	assert.InDelta(t, 3, sum, 1e-5)
	assert.False(t, math.IsNaN(res.OoS.At(1, 2, 0, 0)))

	again, err := r.Experiment1(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, res.IS.Data[:10], again.IS.Data[:10], "second run is served from the checkpoint")

	files, err := res.Write(t.TempDir())
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestExperiment2Synthetic(t *testing.T) {
	r := syntheticRunner(t)
	cfg := Experiment2Config{
		TrainingSizes:      []int{50},
		TestSize:           20,
		ValidationFraction: 0.2,
		Simulations:        2,
		Rho:                0.3,
		Beta:               0.8,
		Radii:              []float64{0, 0.001, 0.01, 0.1},
	}
	res, err := r.Experiment2(context.Background(), cfg)
	require.NoError(t, err)
	for i := range 2 {
		eps := res.EpsOpt.At(0, i)
		assert.Contains(t, cfg.Radii[1:], eps)
		assert.LessOrEqual(t, res.Certificate.At(ModelSAA, 0, i), res.Certificate.At(ModelDRO, 0, i)+1e-8)
	}
}

func TestExcessExperimentsSynthetic(t *testing.T) {
	r := syntheticRunner(t)
	e1 := Experiment1Config{
		Study:         Excess,
		TrainingSizes: []int{40},
		TestSize:      20,
		Simulations:   2,
		Rho:           2,
		Beta:          0.9,
		Radii:         []float64{0, 1e-4, 1e-2},
	}
	res1, err := r.Experiment1(context.Background(), e1)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(res1.IS.At(0, 1, 0, 0)))

	files, err := res1.Write(t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Contains(t, files[0], "Chapter5_Experiment1_ExcessModelDRO_WassersteinWeights_T_40_P_0.9_2_S_2")

	e2 := Experiment2Config{
		Study:              Excess,
		TrainingSizes:      []int{50},
		TestSize:           20,
		ValidationFraction: 0.2,
		Simulations:        2,
		Rho:                2,
		Beta:               0.9,
		Radii:              []float64{0, 1e-5, 1e-3},
	}
	res2, err := r.Experiment2(context.Background(), e2)
	require.NoError(t, err)
	for i := range 2 {
		assert.Contains(t, e2.Radii[1:], res2.EpsOpt.At(0, i))
	}
}

func TestExperimentCancelled(t *testing.T) {
	r := syntheticRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Experiment1(ctx, DefaultExperiment1())
	assert.Error(t, err)
}
