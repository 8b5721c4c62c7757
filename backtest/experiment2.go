package backtest

import (
	"context"
	"math"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/portfolio"
)

// Experiment2Config describes the comparison of SAA and DRO when the radius
// is selected on a validation period.
type Experiment2Config struct {
	Study              Study
	TrainingSizes      []int // training plus validation periods
	TestSize           int
	ValidationFraction float64
	Simulations        int
	Rho                float64
	Beta               float64
	AnnualExcess       float64
	AnnualRiskFree     float64
	Radii              []float64 // must start with 0, the SAA solution
}

// DefaultExperiment2 returns the configuration of the published tracking
// study.
func DefaultExperiment2() Experiment2Config {
	sizes := make([]int, 10)
	for i := range sizes {
		sizes[i] = 63 * (i + 1)
	}
	return Experiment2Config{
		Study:              Tracking,
		TrainingSizes:      sizes,
		TestSize:           126,
		ValidationFraction: 0.2,
		Simulations:        200,
		Rho:                0.3,
		Beta:               0.8,
		AnnualExcess:       0.0511,
		AnnualRiskFree:     0.02,
		Radii:              portfolio.RadiusGrid(-3, 0, 20),
	}
}

// DefaultExcessExperiment2 returns the configuration of the published excess
// CVaR study.
func DefaultExcessExperiment2() Experiment2Config {
	cfg := DefaultExperiment2()
	cfg.Study = Excess
	cfg.Rho = 2
	cfg.Beta = 0.9
	cfg.AnnualExcess = 0
	cfg.Radii = portfolio.RadiusGrid(-7, 0, 40)
	return cfg
}

func (c Experiment2Config) study() Study {
	if c.Study == "" {
		return Tracking
	}
	return c.Study
}

func (c Experiment2Config) params() params {
	return params{Rho: c.Rho, Beta: c.Beta, AnnualExcess: c.AnnualExcess, AnnualRiskFree: c.AnnualRiskFree}
}

// Model indices of the Certificate and J arrays.
const (
	ModelSAA = iota
	ModelDRO
	numModels
)

// Experiment2Result holds the in-sample certificates, out-of-sample
// objectives and selected radii.
type Experiment2Result struct {
	Config Experiment2Config

	Certificate *Array // [model, size, simulation]
	J           *Array // [model, size, simulation]
	EpsOpt      *Array // [size, simulation]
}

// Experiment2 splits every window into training, validation and test
// periods. The SAA portfolio is the radius 0 solution; the DRO portfolio uses
// the positive radius with the best validation objective. Both are scored on
// the test period.
func (r *Runner) Experiment2(ctx context.Context, cfg Experiment2Config) (*Experiment2Result, error) {
	if len(cfg.Radii) < 2 || cfg.Radii[0] != 0 {
		return nil, errors.New("backtest: experiment 2 needs radius 0 followed by positive radii")
	}
	if cfg.ValidationFraction <= 0 || cfg.ValidationFraction >= 1 {
		return nil, errors.Errorf("backtest: validation fraction %g not in (0, 1)", cfg.ValidationFraction)
	}
	if _, err := ParseStudy(string(cfg.study())); err != nil {
		return nil, err
	}
	T := r.Market.Len()
	res := &Experiment2Result{
		Config:      cfg,
		Certificate: NewArray(numModels, len(cfg.TrainingSizes), cfg.Simulations),
		J:           NewArray(numModels, len(cfg.TrainingSizes), cfg.Simulations),
		EpsOpt:      NewArray(len(cfg.TrainingSizes), cfg.Simulations),
	}
	for _, a := range []*Array{res.Certificate, res.J, res.EpsOpt} {
		for i := range a.Data {
			a.Data[i] = math.NaN()
		}
	}

	ckpt, err := r.openCheckpoint(cfg)
	if err != nil {
		return nil, err
	}
	defer ckpt.Close()

	model := cfg.study().model(r.Solver, cfg.Radii)
	bar := r.progress(len(cfg.TrainingSizes)*cfg.Simulations, "experiment 2")

	for h, size := range cfg.TrainingSizes {
		validation := int(math.Floor(float64(size) * cfg.ValidationFraction))
		train := size - validation
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
				w, err = r.experiment2Window(ctx, model, cfg, h, i, start, train, validation)
				if err != nil {
					return nil, err
				}
				if err := ckpt.save(w); err != nil {
					return nil, err
				}
			}
			for m := range numModels {
				res.Certificate.Set(w.Certificate[m], m, h, i)
				res.J.Set(w.J[m], m, h, i)
			}
			res.EpsOpt.Set(w.EpsOpt, h, i)
			advance(bar)
		}
	}
	return res, nil
}

func (r *Runner) experiment2Window(ctx context.Context, model portfolio.Strategy, cfg Experiment2Config, h, i, start, train, validation int) (*window, error) {
	p := cfg.params()
	trainData := r.data(start, start+train, p)
	validData := r.data(start+train, start+train+validation, p)
	testData := r.data(start+train+validation, start+train+validation+cfg.TestSize, p)

	logger := r.logger().WithFields(log.Fields{"size": train + validation, "window": i, "start": start})
	w := &window{
		Size:        h,
		Sim:         i,
		Certificate: []float64{math.NaN(), math.NaN()},
		J:           []float64{math.NaN(), math.NaN()},
		EpsOpt:      math.NaN(),
	}

	results, err := model.Solve(ctx, trainData)
	if err != nil {
		if errors.Cause(err) != portfolio.ErrNoSolution {
			return nil, errors.Wrapf(err, "experiment 2 window %d", i)
		}
		logger.WithError(err).Warn("no radius solved")
		return w, nil
	}
	solved := byRadius(results)

	if saa, ok := solved[0]; ok {
		w.Certificate[ModelSAA] = saa.Objective
		w.J[ModelSAA] = model.Approximate(testData, saa.Weights)
	}

	best := math.Inf(1)
	var dro *portfolio.Result
	for _, eps := range cfg.Radii[1:] {
		res, ok := solved[eps]
		if !ok {
			continue
		}
		if v := model.Approximate(validData, res.Weights); v < best {
			best = v
			dro = &res
		}
	}
	if dro != nil {
		w.EpsOpt = dro.Eps
		w.Certificate[ModelDRO] = dro.Objective
		w.J[ModelDRO] = model.Approximate(testData, dro.Weights)
	}
	logger.WithFields(log.Fields{"eps": w.EpsOpt, "validation": best}).Debug("window done")
	return w, nil
}

// Write stores the three arrays in dir and returns the file paths.
func (res *Experiment2Result) Write(dir string) ([]string, error) {
	prefix := res.Config.study().prefix(2)
	var files []string
	for _, out := range []struct {
		name string
		a    *Array
	}{
		{prefix + "_Certificate", res.Certificate},
		{prefix + "_J", res.J},
		{prefix + "_epsOpt", res.EpsOpt},
	} {
		path, err := WriteArray(dir, out.name, out.a)
		if err != nil {
			return files, err
		}
		files = append(files, filepath.Base(path))
	}
	return files, nil
}
