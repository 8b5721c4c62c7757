// Package backtest runs the rolling-window experiments of the enhanced index
// tracking study and writes their results as flattened arrays.
package backtest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/bartolsthoorn/gomosek/marketdata"
	"github.com/bartolsthoorn/gomosek/portfolio"
)

// Runner executes experiments on one market.
type Runner struct {
	Market *marketdata.Returns

	// Solver configures the MOSEK tasks of the models.
	Solver portfolio.Options

	Logger log.Interface

	// Progress receives a progress bar when set.
	Progress io.Writer

	// Checkpoint is the path of the checkpoint file; empty disables it.
	Checkpoint string
}

func (r *Runner) logger() log.Interface {
	if r.Logger == nil {
		return log.Log
	}
	return r.Logger
}

// Windows returns the start offsets of n evenly spaced windows of length
// window over total periods.
func Windows(total, window, n int) ([]int, error) {
	rollingMax := total - window
	if rollingMax <= 0 || n <= 0 {
		return nil, errors.Errorf("backtest: %d periods do not fit windows of %d", total, window)
	}
	slide := max(rollingMax/n, 1)
	var out []int
	for s := 0; s < rollingMax && len(out) < n; s += slide {
		out = append(out, s)
	}
	return out, nil
}

// data returns the scenarios [from, to) of the market with the risk-free
// asset prepended.
func (r *Runner) data(from, to int, p params) portfolio.Data {
	d := portfolio.Data{
		Assets:   r.Market.Assets[from:to],
		Index:    r.Market.Index[from:to],
		Alpha:    portfolio.DailyRate(p.AnnualExcess),
		Beta:     p.Beta,
		Rho:      p.Rho,
		RiskFree: portfolio.DailyRate(p.AnnualRiskFree),
	}
	return d.WithRiskFreeAsset()
}

// params are shared by both experiments.
type params struct {
	Rho            float64
	Beta           float64
	AnnualExcess   float64
	AnnualRiskFree float64
}

func (r *Runner) openCheckpoint(cfg any) (*Checkpoint, error) {
	if r.Checkpoint == "" {
		return nil, nil
	}
	c, err := OpenCheckpoint(r.Checkpoint, fingerprint(cfg, r.Market))
	if err != nil {
		return nil, err
	}
	if c.Len() > 0 {
		r.logger().WithField("windows", c.Len()).Info("resuming from checkpoint")
	}
	return c, nil
}

// fingerprint identifies a configuration on a market.
func fingerprint(cfg any, m *marketdata.Returns) string {
	h := sha256.New()
	fmt.Fprintf(h, "%#v|%d|%d", cfg, m.Len(), len(m.Tickers))
	if m.Len() > 0 {
		fmt.Fprintf(h, "|%v|%v", m.Dates[0], m.Dates[m.Len()-1])
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

func (r *Runner) progress(total int, description string) *progressbar.ProgressBar {
	if r.Progress == nil {
		return nil
	}
	return progressbar.NewOptions64(
		int64(total),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(r.Progress, "\n")
		}),
		progressbar.OptionSetWriter(r.Progress),
	)
}

func advance(bar *progressbar.ProgressBar) {
	if bar != nil {
		bar.Add(1)
	}
}

// byRadius indexes results by their radius.
func byRadius(results []portfolio.Result) map[float64]portfolio.Result {
	m := make(map[float64]portfolio.Result, len(results))
	for _, res := range results {
		m[res.Eps] = res
	}
	return m
}
