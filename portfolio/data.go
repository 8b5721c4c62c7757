// Package portfolio implements enhanced index tracking models on top of the
// mosek binding: a sample average approximation (SAA) of the tracking-error
// plus CVaR objective, its Wasserstein distributionally robust counterpart
// (DRO) and an excess-return CVaR model.
//
// All models work on a window of simple returns. Assets is a T×N matrix
// (scenarios by assets), Index holds the T benchmark returns and Alpha is the
// per-period excess return the enhanced index adds on top of the benchmark.
package portfolio

import (
	"math"

	"github.com/pkg/errors"
)

// TradingDays is the number of trading days used to convert annual rates.
const TradingDays = 252

// Data is one estimation window of asset and index returns together with the
// risk preferences of the investor.
type Data struct {
	Assets [][]float64 // T×N simple returns
	Index  []float64   // T benchmark returns

	Alpha    float64 // per-period excess return of the enhanced index
	Beta     float64 // CVaR confidence level
	Rho      float64 // CVaR penalty
	RiskFree float64 // per-period risk-free return
}

// ErrNoData is returned for windows without scenarios or assets.
var ErrNoData = errors.New("portfolio: empty return window")

// Dims returns the number of scenarios and assets.
func (d Data) Dims() (scenarios, assets int) {
	if len(d.Assets) == 0 {
		return 0, 0
	}
	return len(d.Assets), len(d.Assets[0])
}

// Validate checks shapes and parameter ranges.
func (d Data) Validate() error {
	T, N := d.Dims()
	if T == 0 || N == 0 {
		return ErrNoData
	}
	if len(d.Index) != T {
		return errors.Errorf("portfolio: index has %d returns, assets have %d scenarios", len(d.Index), T)
	}
	for t, row := range d.Assets {
		if len(row) != N {
			return errors.Errorf("portfolio: scenario %d has %d assets, want %d", t, len(row), N)
		}
	}
	if d.Beta <= 0 || d.Beta >= 1 {
		return errors.Errorf("portfolio: beta must lie in (0, 1), got %g", d.Beta)
	}
	if d.Rho < 0 {
		return errors.Errorf("portfolio: rho must be non-negative, got %g", d.Rho)
	}
	return nil
}

// ExcessReturns returns the asset returns minus the enhanced index return of
// the same scenario.
func (d Data) ExcessReturns() [][]float64 {
	out := make([][]float64, len(d.Assets))
	for t, row := range d.Assets {
		target := d.Index[t] + d.Alpha
		out[t] = make([]float64, len(row))
		for i, r := range row {
			out[t][i] = r - target
		}
	}
	return out
}

// Probabilities returns equal scenario weights.
func (d Data) Probabilities() []float64 {
	T, _ := d.Dims()
	pi := make([]float64, T)
	for t := range pi {
		pi[t] = 1 / float64(T)
	}
	return pi
}

// WithRiskFreeAsset returns a copy of d whose first asset earns RiskFree in
// every scenario.
func (d Data) WithRiskFreeAsset() Data {
	out := d
	out.Assets = make([][]float64, len(d.Assets))
	for t, row := range d.Assets {
		out.Assets[t] = append([]float64{d.RiskFree}, row...)
	}
	return out
}

// Slice returns the scenarios in [from, to).
func (d Data) Slice(from, to int) Data {
	out := d
	out.Assets = d.Assets[from:to]
	out.Index = d.Index[from:to]
	return out
}

// DailyRate converts an annual rate to a per-trading-day rate.
func DailyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/TradingDays) - 1
}

// AnnualRate is the inverse of DailyRate.
func AnnualRate(daily float64) float64 {
	return math.Pow(1+daily, TradingDays) - 1
}

// PortfolioReturns returns R·w for a T×N matrix R.
func PortfolioReturns(r [][]float64, w []float64) []float64 {
	out := make([]float64, len(r))
	for t, row := range r {
		var s float64
		for i, v := range row {
			s += v * w[i]
		}
		out[t] = s
	}
	return out
}
