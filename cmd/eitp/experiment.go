package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gomosek/backtest"
	"github.com/bartolsthoorn/gomosek/marketdata"
	"github.com/bartolsthoorn/gomosek/store"
)

var (
	expCheckpoint  bool
	expSynthetic   bool
	expSimulations int
	expSizes       []int
	expStart       string
	expEnd         string
	expSeed        uint64
	expAssets      int
	expPeriods     int
	expModel       string
)

var experimentCmd = &cobra.Command{
	Use:   "experiment 1|2",
	Short: "Run a rolling-window experiment",
	Long: `Experiment runs one of the studies of a DRO model and writes its result
arrays to the results directory.

  1  sensitivity of in-sample and out-of-sample statistics to the radius
  2  radius selection on a validation period against the SAA model

--model picks the tracking model (the default) or the excess return CVaR
model, each with the parameters of its published study.

With --checkpoint, completed windows are kept in <results-dir>/experimentN.ckpt
(excess-experimentN.ckpt for the excess model) and skipped when the same
experiment is run again. Interrupting a run keeps the checkpoint.

Example:
  eitp experiment 1 --checkpoint
  eitp experiment 2 --model excess --synthetic --simulations 20`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"1", "2"},
	RunE:      runExperiment,
}

func init() {
	f := experimentCmd.Flags()
	f.BoolVar(&expCheckpoint, "checkpoint", false, "resume from and append to a checkpoint file")
	f.BoolVar(&expSynthetic, "synthetic", false, "use simulated GBM returns instead of S&P 500 data")
	f.IntVar(&expSimulations, "simulations", 0, "windows per training size (default: 200)")
	f.IntSliceVar(&expSizes, "sizes", nil, "training sizes (default: the study's sizes)")
	f.StringVar(&expStart, "start", "2012-01-01", "first date of the S&P 500 data")
	f.StringVar(&expEnd, "end", "2019-12-31", "last date of the S&P 500 data")
	f.Uint64Var(&expSeed, "seed", 1, "seed of the synthetic market")
	f.IntVar(&expAssets, "assets", 50, "assets of the synthetic market")
	f.IntVar(&expPeriods, "periods", 1500, "returns of the synthetic market")
	f.StringVar(&expModel, "model", string(backtest.Tracking), "model: tracking or excess")
}

func runExperiment(cmd *cobra.Command, args []string) error {
	n := args[0]
	if n != "1" && n != "2" {
		return errors.Errorf("unknown experiment %q (valid: 1, 2)", n)
	}
	study, err := backtest.ParseStudy(expModel)
	if err != nil {
		return err
	}
	name := experimentName(study, n)

	market, err := loadMarket()
	if err != nil {
		return err
	}
	resultsDir := cfg.GetString(cfgKeyResultsDir)
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return errors.Wrap(err, "results dir")
	}

	st, err := store.Open(storePath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	runner := &backtest.Runner{
		Market:   market,
		Solver:   solverOptions(),
		Logger:   log.Log,
		Progress: os.Stderr,
	}
	if expCheckpoint {
		runner.Checkpoint = filepath.Join(resultsDir, name+".ckpt")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var (
		run   *store.Run
		files []string
	)
	started := time.Now()
	switch n {
	case "1":
		c := backtest.DefaultExperiment1()
		if study == backtest.Excess {
			c = backtest.DefaultExcessExperiment1()
		}
		if expSimulations > 0 {
			c.Simulations = expSimulations
		}
		if len(expSizes) > 0 {
			c.TrainingSizes = expSizes
		}
		params := experimentParams(study, c.TrainingSizes, c.TestSize, c.Simulations, c.Rho, c.Beta, c.AnnualExcess, c.AnnualRiskFree, c.Radii)
		if run, err = st.Begin(name, params); err != nil {
			return err
		}
		res, err := runner.Experiment1(ctx, c)
		if err != nil {
			return err
		}
		if files, err = res.Write(resultsDir); err != nil {
			return err
		}
		summarizeExperiment1(cmd.OutOrStdout(), res)
	case "2":
		c := backtest.DefaultExperiment2()
		if study == backtest.Excess {
			c = backtest.DefaultExcessExperiment2()
		}
		if expSimulations > 0 {
			c.Simulations = expSimulations
		}
		if len(expSizes) > 0 {
			c.TrainingSizes = expSizes
		}
		params := experimentParams(study, c.TrainingSizes, c.TestSize, c.Simulations, c.Rho, c.Beta, c.AnnualExcess, c.AnnualRiskFree, c.Radii)
		params["validation_fraction"] = c.ValidationFraction
		if run, err = st.Begin(name, params); err != nil {
			return err
		}
		res, err := runner.Experiment2(ctx, c)
		if err != nil {
			return err
		}
		if files, err = res.Write(resultsDir); err != nil {
			return err
		}
		summarizeExperiment2(cmd.OutOrStdout(), res)
	}

	if err := st.Finish(run, files); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"run":      run.ID,
		"sequence": run.Sequence,
		"files":    len(files),
		"took":     time.Since(started).Round(time.Second),
	}).Info(color.GreenString("%s finished", name))
	return nil
}

func loadMarket() (*marketdata.Returns, error) {
	if expSynthetic {
		return marketdata.Synthetic(marketdata.SyntheticConfig{
			Assets:     expAssets,
			Periods:    expPeriods,
			Drift:      0.07,
			Volatility: 0.2,
			Seed:       expSeed,
		})
	}
	start, err := time.Parse(marketdata.DateLayout, expStart)
	if err != nil {
		return nil, errors.Wrap(err, "--start")
	}
	end, err := time.Parse(marketdata.DateLayout, expEnd)
	if err != nil {
		return nil, errors.Wrap(err, "--end")
	}
	loader := marketdata.Loader{Dir: cfg.GetString(cfgKeyDataDir), Logger: log.Log}
	prices, err := loader.SP500(marketdata.Daily, start, end)
	if err != nil {
		return nil, err
	}
	return prices.Returns(), nil
}

// experimentName is the run and checkpoint name of experiment n.
func experimentName(study backtest.Study, n string) string {
	if study == backtest.Excess {
		return "excess-experiment" + n
	}
	return "experiment" + n
}

func experimentParams(study backtest.Study, sizes []int, test, sims int, rho, beta, excess, rf float64, radii []float64) map[string]any {
	p := map[string]any{
		"model":            string(study),
		"training_sizes":   sizes,
		"test_size":        test,
		"simulations":      sims,
		"rho":              rho,
		"beta":             beta,
		"annual_excess":    excess,
		"annual_risk_free": rf,
		"radii":            radii,
	}
	if expSynthetic {
		p["market"] = fmt.Sprintf("synthetic(assets=%d, periods=%d, seed=%d)", expAssets, expPeriods, expSeed)
	} else {
		p["market"] = fmt.Sprintf("sp500(%s..%s)", expStart, expEnd)
	}
	return p
}

// nanMean averages the finite values of x, NaN when there are none.
func nanMean(x []float64) float64 {
	var finite []float64
	for _, v := range x {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	m, err := stats.Mean(finite)
	if err != nil {
		return math.NaN()
	}
	return m
}

// summarizeExperiment1 prints the mean out-of-sample objective per training
// size for the radius with the lowest mean.
func summarizeExperiment1(out io.Writer, res *backtest.Experiment1Result) {
	c := res.Config
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tBEST EPS\tOOS OBJECTIVE\tSAA OOS OBJECTIVE")
	for h, size := range c.TrainingSizes {
		means := make([]float64, len(c.Radii))
		for j := range c.Radii {
			vals := make([]float64, c.Simulations)
			for i := range vals {
				vals[i] = res.OoS.At(h, i, j, 0)
			}
			means[j] = nanMean(vals)
		}
		best := 0
		for j, m := range means {
			if !math.IsNaN(m) && (math.IsNaN(means[best]) || m < means[best]) {
				best = j
			}
		}
		fmt.Fprintf(w, "%d\t%.4g\t%.6g\t%.6g\n", size, c.Radii[best], means[best], means[0])
	}
	w.Flush()
}

// summarizeExperiment2 prints the mean certificate and out-of-sample
// objective of both models per training size.
func summarizeExperiment2(out io.Writer, res *backtest.Experiment2Result) {
	c := res.Config
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSAA CERT\tSAA J\tDRO CERT\tDRO J\tMEAN EPS")
	for h, size := range c.TrainingSizes {
		mean := func(a *backtest.Array, idx ...int) float64 {
			vals := make([]float64, c.Simulations)
			for i := range vals {
				vals[i] = a.At(append(idx, i)...)
			}
			return nanMean(vals)
		}
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.4g\n", size,
			mean(res.Certificate, backtest.ModelSAA, h), mean(res.J, backtest.ModelSAA, h),
			mean(res.Certificate, backtest.ModelDRO, h), mean(res.J, backtest.ModelDRO, h),
			mean(res.EpsOpt, h))
	}
	w.Flush()
}
