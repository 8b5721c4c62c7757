package backtest

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gomosek/marketdata"
	"github.com/bartolsthoorn/gomosek/metrics"
	"github.com/bartolsthoorn/gomosek/portfolio"
)

func TestArray(t *testing.T) {
	a := NewArray(2, 3, 4)
	require.Len(t, a.Data, 24)
	a.Set(7, 1, 2, 3)
	assert.Equal(t, 7.0, a.Data[23])
	assert.Equal(t, 7.0, a.At(1, 2, 3))

	row := a.Row(1, 0)
	require.Len(t, row, 4)
	row[2] = 5
	assert.Equal(t, 5.0, a.At(1, 0, 2))

	assert.Panics(t, func() { a.At(2, 0, 0) })
	assert.Panics(t, func() { a.At(0, 0) })
}

func TestFileName(t *testing.T) {
	name := FileName("Chapter4_Experiment2_TrackingModel_J", []int{2, 10, 200})
	assert.Equal(t, "Chapter4_Experiment2_TrackingModel_J_recover_2_10_200.csv", name)

	dims, err := ParseDims(filepath.Join("results", name))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 10, 200}, dims)

	_, err = ParseDims("plain.csv")
	assert.Error(t, err)
}

func TestWriteReadArray(t *testing.T) {
	dir := t.TempDir()
	a := NewArray(2, 2)
	a.Data = []float64{1.5, -2.25e-7, math.NaN(), 3}

	path, err := WriteArray(dir, "values", a)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "values_recover_2_2.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "1.500000000000000000e+00\n")

	b, err := ReadArray(path)
	require.NoError(t, err)
	assert.Equal(t, a.Dims, b.Dims)
	assert.Equal(t, 1.5, b.Data[0])
	assert.Equal(t, -2.25e-7, b.Data[1])
	assert.True(t, math.IsNaN(b.Data[2]))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "short_recover_3.csv"), []byte("1\n2\n"), 0o644))
	_, err = ReadArray(filepath.Join(dir, "short_recover_3.csv"))
	assert.Error(t, err)
}

func TestWindows(t *testing.T) {
	starts, err := Windows(1000, 189, 200)
	require.NoError(t, err)
	require.Len(t, starts, 200)
	assert.Equal(t, 0, starts[0])
	assert.Equal(t, 4, starts[1])
	for _, s := range starts {
		assert.LessOrEqual(t, s+189, 1000)
	}

	starts, err = Windows(105, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, starts)

	_, err = Windows(100, 100, 10)
	assert.Error(t, err)
}

func TestCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ckpt")

	c, err := OpenCheckpoint(path, "abc")
	require.NoError(t, err)
	require.NoError(t, c.save(&window{Size: 0, Sim: 1, EpsOpt: 0.01, J: []float64{1, 2}}))
	require.NoError(t, c.save(&window{Size: 1, Sim: 0, IS: [][]float64{{math.NaN(), 2}}}))
	require.NoError(t, c.Close())

	// a torn record at the end is discarded
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.Write([]byte{0, 0, 0, 9, 1, 2})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	c, err = OpenCheckpoint(path, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	w, ok := c.lookup(0, 1)
	require.True(t, ok)
	assert.Equal(t, 0.01, w.EpsOpt)
	assert.Equal(t, []float64{1, 2}, w.J)
	w, ok = c.lookup(1, 0)
	require.True(t, ok)
	assert.True(t, math.IsNaN(w.IS[0][0]))
	require.NoError(t, c.save(&window{Size: 2, Sim: 2}))
	require.NoError(t, c.Close())

	c, err = OpenCheckpoint(path, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	require.NoError(t, c.Close())

	other, err := OpenCheckpoint(path, "other")
	require.NoError(t, err)
	defer other.Close()
	assert.Equal(t, 0, other.Len())
	_, ok = other.lookup(0, 1)
	assert.False(t, ok)

	var none *Checkpoint
	assert.NoError(t, none.save(&window{}))
	assert.NoError(t, none.Close())
	assert.Equal(t, 0, none.Len())
}

func TestFingerprint(t *testing.T) {
	m, err := marketdata.Synthetic(marketdata.SyntheticConfig{Assets: 3, Periods: 20, Volatility: 0.1, Seed: 1})
	require.NoError(t, err)

	a := DefaultExperiment1()
	b := DefaultExperiment1()
	assert.Equal(t, fingerprint(a, m), fingerprint(b, m))
	b.Simulations = 10
	assert.NotEqual(t, fingerprint(a, m), fingerprint(b, m))
	assert.NotEqual(t, fingerprint(a, m), fingerprint(DefaultExperiment2(), m))
}

func TestDefaults(t *testing.T) {
	e1 := DefaultExperiment1()
	assert.Len(t, e1.Radii, 31)
	assert.Equal(t, 0.0, e1.Radii[0])

	e2 := DefaultExperiment2()
	assert.Equal(t, []int{63, 126, 189, 252, 315, 378, 441, 504, 567, 630}, e2.TrainingSizes)
	assert.Len(t, e2.Radii, 21)
}

func TestDefaultExcessExperiments(t *testing.T) {
	e1 := DefaultExcessExperiment1()
	assert.Equal(t, Excess, e1.Study)
	assert.Equal(t, []int{63, 126, 189, 252, 504}, e1.TrainingSizes)
	assert.Equal(t, 2.0, e1.Rho)
	assert.Equal(t, 0.9, e1.Beta)
	assert.Equal(t, 0.0, e1.AnnualExcess)
	assert.Len(t, e1.Radii, 51)

	e2 := DefaultExcessExperiment2()
	assert.Equal(t, Excess, e2.Study)
	assert.Equal(t, DefaultExperiment2().TrainingSizes, e2.TrainingSizes)
	require.Len(t, e2.Radii, 41)
	assert.Equal(t, 0.0, e2.Radii[0])
	assert.InDelta(t, 1e-7, e2.Radii[1], 1e-19)
	assert.InDelta(t, 1.0, e2.Radii[40], 1e-12)
}

func TestStudy(t *testing.T) {
	s, err := ParseStudy("excess")
	require.NoError(t, err)
	assert.Equal(t, Excess, s)
	_, err = ParseStudy("minvar")
	assert.Error(t, err)

	radii := []float64{0, 0.1}
	assert.Equal(t, portfolio.ExcessCVaRDRO{Radii: radii}, Excess.model(portfolio.Options{}, radii))
	assert.Equal(t, portfolio.TrackingDRO{Radii: radii}, Study("").model(portfolio.Options{}, radii))
	assert.Equal(t, "Chapter5_Experiment1_ExcessModelDRO", Excess.prefix(1))
	assert.Equal(t, "Chapter4_Experiment2_TrackingModel", Tracking.prefix(2))
}

func TestExperiment2WriteExcess(t *testing.T) {
	dir := t.TempDir()
	res := &Experiment2Result{
		Config:      Experiment2Config{Study: Excess},
		Certificate: NewArray(numModels, 1, 2),
		J:           NewArray(numModels, 1, 2),
		EpsOpt:      NewArray(1, 2),
	}
	files, err := res.Write(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Chapter5_Experiment2_ExcessModelDRO_Certificate_recover_2_1_2.csv",
		"Chapter5_Experiment2_ExcessModelDRO_J_recover_2_1_2.csv",
		"Chapter5_Experiment2_ExcessModelDRO_epsOpt_recover_1_2.csv",
	}, files)
}

func TestExperiment1Store(t *testing.T) {
	cfg := Experiment1Config{TrainingSizes: []int{10}, Simulations: 2, Radii: []float64{0, 1}}
	cols := len(metrics.Columns)
	res := &Experiment1Result{
		Config:  cfg,
		Columns: metrics.Columns,
		IS:      NewArray(1, 2, 2, cols),
		OoS:     NewArray(1, 2, 2, cols),
		Weights: NewArray(1, 2, 3),
	}
	is := nanRow(cols)
	is[0] = 4
	for sim := range 2 {
		res.store(&window{
			Size:    0,
			Sim:     sim,
			IS:      [][]float64{is, nanRow(cols)},
			OoS:     [][]float64{is, nanRow(cols)},
			Weights: [][]float64{{0.2, 0.3, 0.5}, nanRow(3)},
		})
	}
	assert.Equal(t, 4.0, res.IS.At(0, 1, 0, 0))
	assert.True(t, math.IsNaN(res.OoS.At(0, 1, 1, 0)))
	assert.InDeltaSlice(t, []float64{0.4, 0.6, 1.0}, res.Weights.Row(0, 0), 1e-12)
	assert.Equal(t, []float64{0, 0, 0}, res.Weights.Row(0, 1), "unsolved radii add nothing")
}

func TestExperimentConfigErrors(t *testing.T) {
	m, err := marketdata.Synthetic(marketdata.SyntheticConfig{Assets: 2, Periods: 30, Seed: 3})
	require.NoError(t, err)
	r := &Runner{Market: m}

	_, err = r.Experiment1(context.Background(), Experiment1Config{})
	assert.Error(t, err)

	cfg := DefaultExperiment2()
	cfg.Radii = []float64{0.1, 1}
	_, err = r.Experiment2(context.Background(), cfg)
	assert.Error(t, err)

	cfg = DefaultExperiment2()
	cfg.ValidationFraction = 1
	_, err = r.Experiment2(context.Background(), cfg)
	assert.Error(t, err)

	bad := DefaultExperiment1()
	bad.Study = "minvar"
	_, err = r.Experiment1(context.Background(), bad)
	assert.ErrorContains(t, err, "unknown study")

	// training windows longer than the market
	_, err = r.Experiment1(context.Background(), DefaultExperiment1())
	assert.Error(t, err)
}
