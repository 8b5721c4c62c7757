package backtest

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/metrics"
	"github.com/bartolsthoorn/gomosek/portfolio"
)

// Experiment1Config describes the sensitivity of a DRO model to the
// Wasserstein radius.
type Experiment1Config struct {
	Study          Study
	TrainingSizes  []int
	TestSize       int
	Simulations    int
	Rho            float64
	Beta           float64
	AnnualExcess   float64
	AnnualRiskFree float64
	Radii          []float64
}

// DefaultExperiment1 returns the configuration of the published tracking
// study.
func DefaultExperiment1() Experiment1Config {
	return Experiment1Config{
		Study:          Tracking,
		TrainingSizes:  []int{63, 126, 189, 252, 378, 504},
		TestSize:       126,
		Simulations:    200,
		Rho:            0.3,
		Beta:           0.8,
		AnnualExcess:   0.0511,
		AnnualRiskFree: 0.02,
		Radii:          portfolio.RadiusGrid(-3, 1, 30),
	}
}

// DefaultExcessExperiment1 returns the configuration of the published excess
// CVaR study.
func DefaultExcessExperiment1() Experiment1Config {
	return Experiment1Config{
		Study:          Excess,
		TrainingSizes:  []int{63, 126, 189, 252, 504},
		TestSize:       126,
		Simulations:    200,
		Rho:            2,
		Beta:           0.9,
		AnnualExcess:   0,
		AnnualRiskFree: 0.02,
		Radii:          portfolio.ExcessRadii(),
	}
}

func (c Experiment1Config) params() params {
	return params{Rho: c.Rho, Beta: c.Beta, AnnualExcess: c.AnnualExcess, AnnualRiskFree: c.AnnualRiskFree}
}

// Experiment1Result holds the statistics of every window and radius.
type Experiment1Result struct {
	Config  Experiment1Config
	Columns []string

	IS      *Array // [size, simulation, radius, column]
	OoS     *Array // [size, simulation, radius, column]
	Weights *Array // [size, radius, asset], summed over simulations; asset 0 is risk free
}

// Experiment1 solves the DRO model of the study on evenly spaced training windows
// for every training size and evaluates every radius in-sample and on the
// test period directly after the training window. Radii without an optimal
// solution are recorded as NaN.
func (r *Runner) Experiment1(ctx context.Context, cfg Experiment1Config) (*Experiment1Result, error) {
	if len(cfg.Radii) == 0 {
		return nil, errors.New("backtest: experiment 1 needs radii")
	}
	if _, err := ParseStudy(string(cfg.study())); err != nil {
		return nil, err
	}
	T := r.Market.Len()
	N := len(r.Market.Tickers) + 1
	cols := metrics.Columns

	res := &Experiment1Result{
		Config:  cfg,
		Columns: cols,
		IS:      NewArray(len(cfg.TrainingSizes), cfg.Simulations, len(cfg.Radii), len(cols)),
		OoS:     NewArray(len(cfg.TrainingSizes), cfg.Simulations, len(cfg.Radii), len(cols)),
		Weights: NewArray(len(cfg.TrainingSizes), len(cfg.Radii), N),
	}
	for i := range res.IS.Data {
		res.IS.Data[i] = math.NaN()
		res.OoS.Data[i] = math.NaN()
	}

	ckpt, err := r.openCheckpoint(cfg)
	if err != nil {
		return nil, err
	}
	defer ckpt.Close()

	model := cfg.study().model(r.Solver, cfg.Radii)
	bar := r.progress(len(cfg.TrainingSizes)*cfg.Simulations, "experiment 1")

	for h, size := range cfg.TrainingSizes {
		starts, err := Windows(T, size+cfg.TestSize, cfg.Simulations)
		if err != nil {
			return nil, err
		}
		for i, start := range starts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			w, ok := ckpt.lookup(h, i)
			if !ok {
				w, err = r.experiment1Window(ctx, model, cfg, h, i, start, size)
				if err != nil {
					return nil, err
				}
				if err := ckpt.save(w); err != nil {
					return nil, err
				}
			}
			res.store(w)
			advance(bar)
		}
	}
	return res, nil
}

func (r *Runner) experiment1Window(ctx context.Context, model portfolio.Strategy, cfg Experiment1Config, h, i, start, size int) (*window, error) {
	end := start + size
	train := r.data(start, end, cfg.params())
	test := r.data(end, end+cfg.TestSize, cfg.params())

	logger := r.logger().WithFields(log.Fields{"size": size, "window": i, "start": start})
	results, err := model.Solve(ctx, train)
	if err != nil {
		if errors.Cause(err) != portfolio.ErrNoSolution {
			return nil, errors.Wrapf(err, "experiment 1 window %d of size %d", i, size)
		}
		logger.WithError(err).Warn("no radius solved")
		results = nil
	}
	solved := byRadius(results)

	_, N := train.Dims()
	w := &window{Size: h, Sim: i}
	for _, eps := range cfg.Radii {
		res, ok := solved[eps]
		if !ok {
			w.IS = append(w.IS, nanRow(len(metrics.Columns)))
			w.OoS = append(w.OoS, nanRow(len(metrics.Columns)))
			w.Weights = append(w.Weights, nanRow(N))
			continue
		}
		is, err := evaluate(train, res.Weights, res.Objective)
		if err != nil {
			return nil, err
		}
		oos, err := evaluate(test, res.Weights, model.Approximate(test, res.Weights))
		if err != nil {
			return nil, err
		}
		w.IS = append(w.IS, is)
		w.OoS = append(w.OoS, oos)
		w.Weights = append(w.Weights, res.Weights)
	}
	logger.WithField("radii", len(results)).Debug("window done")
	return w, nil
}

// evaluate simulates w on d and returns the statistics in metrics.Columns
// order with the given objective.
func evaluate(d portfolio.Data, w []float64, objective float64) ([]float64, error) {
	p := portfolio.Simulate(d, w)
	rep, err := metrics.Compute(p.Portfolio, p.Index, p.Enhanced, d.Beta)
	if err != nil {
		return nil, err
	}
	rep.Objective = objective
	return rep.Values(metrics.Columns), nil
}

func nanRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.NaN()
	}
	return row
}

func (res *Experiment1Result) store(w *window) {
	for j := range res.Config.Radii {
		copy(res.IS.Row(w.Size, w.Sim, j), w.IS[j])
		copy(res.OoS.Row(w.Size, w.Sim, j), w.OoS[j])
		if math.IsNaN(w.Weights[j][0]) {
			continue
		}
		acc := res.Weights.Row(w.Size, j)
		for k, v := range w.Weights[j] {
			acc[k] += v
		}
	}
}

// Write stores the three arrays in dir and returns the file paths.
func (res *Experiment1Result) Write(dir string) ([]string, error) {
	c := res.Config
	sizes := make([]string, len(c.TrainingSizes))
	for i, s := range c.TrainingSizes {
		sizes[i] = strconv.Itoa(s)
	}
	tag := "T_" + strings.Join(sizes, "_") +
		"_P_" + fmtFloat(c.Beta) + "_" + fmtFloat(c.Rho) +
		"_S_" + strconv.Itoa(c.Simulations)
	prefix := c.study().prefix(1)

	var files []string
	for _, out := range []struct {
		name string
		a    *Array
	}{
		{prefix + "_WassersteinWeights_" + tag, res.Weights},
		{prefix + "_IS_statistics_" + tag, res.IS},
		{prefix + "_OoS_statistics_" + tag, res.OoS},
	} {
		path, err := WriteArray(dir, out.name, out.a)
		if err != nil {
			return files, err
		}
		files = append(files, filepath.Base(path))
	}
	return files, nil
}

func (c Experiment1Config) study() Study {
	if c.Study == "" {
		return Tracking
	}
	return c.Study
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
