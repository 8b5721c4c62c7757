package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gomosek/marketdata"
	"github.com/bartolsthoorn/gomosek/portfolio"
)

var (
	trackModel     string
	trackData      string
	trackStart     string
	trackEnd       string
	trackWindow    int
	trackFrequency string
	trackRho       float64
	trackBeta      float64
	trackExcess    float64
	trackRiskFree  float64
	trackRadii     string
	trackMinWeight float64
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Solve a tracking model on S&P 500 data",
	Long: `Track loads S&P 500 prices, keeps the last --window returns up to --end and
solves one model on them:

  saa         sample average approximation of the tracking model
  dro         Wasserstein distributionally robust tracking model over --radii
  excess      excess return CVaR model over its rho and beta grid
  excess-dro  Wasserstein distributionally robust excess CVaR model over --radii

A risk-free asset is always available to the portfolio.

Example:
  eitp track --model saa --start 2015-01-01 --end 2017-12-31 --window 252
  eitp track --model dro --radii 0,0.001,0.01,0.1
  eitp track --model excess-dro --rho 2 --beta 0.9 --excess 0`,
	Args: cobra.NoArgs,
	RunE: runTrack,
}

func init() {
	f := trackCmd.Flags()
	f.StringVar(&trackModel, "model", "saa", "model: saa, dro, excess or excess-dro")
	f.StringVar(&trackData, "data", "", "data directory (default: data_dir from the config)")
	f.StringVar(&trackStart, "start", "2012-01-01", "first date, "+marketdata.DateLayout)
	f.StringVar(&trackEnd, "end", "2019-12-31", "last date, "+marketdata.DateLayout)
	f.IntVar(&trackWindow, "window", 252, "number of most recent returns to use, 0 for all")
	f.StringVar(&trackFrequency, "freq", string(marketdata.Daily), "price frequency: daily or weekly")
	f.Float64Var(&trackRho, "rho", 0.3, "CVaR penalty")
	f.Float64Var(&trackBeta, "beta", 0.8, "CVaR confidence level")
	f.Float64Var(&trackExcess, "excess", 0.0511, "annual excess return of the enhanced index")
	f.Float64Var(&trackRiskFree, "risk-free", 0.02, "annual risk-free rate")
	f.StringVar(&trackRadii, "radii", "", "comma separated Wasserstein radii (default: the model's log-spaced grid)")
	f.Float64Var(&trackMinWeight, "min-weight", 1e-4, "hide weights below this value")
}

func runTrack(cmd *cobra.Command, args []string) error {
	start, err := time.Parse(marketdata.DateLayout, trackStart)
	if err != nil {
		return errors.Wrap(err, "--start")
	}
	end, err := time.Parse(marketdata.DateLayout, trackEnd)
	if err != nil {
		return errors.Wrap(err, "--end")
	}
	dir := trackData
	if dir == "" {
		dir = cfg.GetString(cfgKeyDataDir)
	}

	loader := marketdata.Loader{Dir: dir, Logger: log.Log}
	prices, err := loader.SP500(marketdata.Frequency(trackFrequency), start, end)
	if err != nil {
		return err
	}
	returns := prices.Returns()
	if returns.Len() == 0 {
		return errors.Errorf("no returns between %s and %s", trackStart, trackEnd)
	}
	from := 0
	if trackWindow > 0 {
		if trackWindow > returns.Len() {
			return errors.Errorf("window of %d exceeds the %d available returns", trackWindow, returns.Len())
		}
		from = returns.Len() - trackWindow
	}

	data := portfolio.Data{
		Assets:   returns.Assets[from:],
		Index:    returns.Index[from:],
		Alpha:    portfolio.DailyRate(trackExcess),
		Beta:     trackBeta,
		Rho:      trackRho,
		RiskFree: portfolio.DailyRate(trackRiskFree),
	}.WithRiskFreeAsset()

	strategy, err := newStrategy(trackModel, trackRadii)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"model":   strategy.Name(),
		"returns": len(data.Index),
		"tickers": len(returns.Tickers),
		"from":    returns.Dates[from].Format(marketdata.DateLayout),
	}).Info("solving")

	results, err := strategy.Solve(cmd.Context(), data)
	if err != nil {
		return err
	}
	tickers := append([]string{"RF"}, returns.Tickers...)
	printResults(cmd.OutOrStdout(), strategy, results, tickers)
	return nil
}

// newStrategy builds the model selected by name.
func newStrategy(name, radii string) (portfolio.Strategy, error) {
	opts := solverOptions()
	switch name {
	case "saa":
		return portfolio.TrackingSAA{Options: opts}, nil
	case "dro":
		grid, err := radiusFlag(radii, portfolio.ExperimentRadii())
		if err != nil {
			return nil, err
		}
		return portfolio.TrackingDRO{Options: opts, Radii: grid}, nil
	case "excess":
		return portfolio.ExcessCVaRSAA{Options: opts}, nil
	case "excess-dro":
		grid, err := radiusFlag(radii, portfolio.ExcessRadii())
		if err != nil {
			return nil, err
		}
		return portfolio.ExcessCVaRDRO{Options: opts, Radii: grid}, nil
	}
	return nil, errors.Errorf("unknown model %q (valid: saa, dro, excess, excess-dro)", name)
}

// radiusFlag parses --radii, falling back to def when it is empty.
func radiusFlag(radii string, def []float64) ([]float64, error) {
	if radii == "" {
		return def, nil
	}
	grid, err := parseFloats(radii)
	return grid, errors.Wrap(err, "--radii")
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func printResults(out io.Writer, s portfolio.Strategy, results []portfolio.Result, tickers []string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EPS\tRHO\tBETA\tOBJECTIVE\tTRACKING\tEXCESS\tVAR\tCVAR")
	for _, r := range results {
		fmt.Fprintf(w, "%.4g\t%.4g\t%.4g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			r.Eps, r.Rho, r.Beta, r.Objective, r.TrackingError, r.ExcessReturn, r.VaR, r.CVaR)
	}
	w.Flush()

	if len(results) == 0 {
		return
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Objective < best.Objective {
			best = r
		}
	}
	fmt.Fprintf(out, "\n%s weights (objective %s)\n", s.Name(), color.GreenString("%.6g", best.Objective))
	type holding struct {
		ticker string
		weight float64
	}
	var hs []holding
	for j, x := range best.Weights {
		if x >= trackMinWeight {
			hs = append(hs, holding{tickers[j], x})
		}
	}
	sort.Slice(hs, func(a, b int) bool { return hs[a].weight > hs[b].weight })
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, h := range hs {
		fmt.Fprintf(w, "  %s\t%.4f\n", h.ticker, h.weight)
	}
	w.Flush()
}
