package marketdata

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// SimulateGBM simulates a multivariate geometric Brownian motion
//
//	X[t+1] = X[t] · exp((μ - ½ diag(ΣΣᵀ)) dt + Σ √dt Z)
//
// with independent standard normal Z. The result has steps+1 rows; the
// first row is x0 for every asset.
func SimulateGBM(mu []float64, sigma [][]float64, steps int, dt, x0 float64, rng *rand.Rand) ([][]float64, error) {
	n := len(mu)
	if len(sigma) != n {
		return nil, errors.Errorf("marketdata: sigma has %d rows, want %d", len(sigma), n)
	}
	for i, row := range sigma {
		if len(row) != n {
			return nil, errors.Errorf("marketdata: sigma row %d has %d entries, want %d", i, len(row), n)
		}
	}
	if steps < 0 || dt <= 0 {
		return nil, errors.Errorf("marketdata: invalid grid (%d steps, dt=%g)", steps, dt)
	}

	drift := make([]float64, n)
	for i := range n {
		var d float64
		for _, s := range sigma[i] {
			d += s * s
		}
		drift[i] = (mu[i] - d/2) * dt
	}

	out := make([][]float64, steps+1)
	out[0] = make([]float64, n)
	for i := range out[0] {
		out[0][i] = x0
	}
	z := make([]float64, n)
	sqdt := math.Sqrt(dt)
	for t := 1; t <= steps; t++ {
		for i := range z {
			z[i] = rng.NormFloat64()
		}
		out[t] = make([]float64, n)
		for i := range n {
			var diffusion float64
			for j, s := range sigma[i] {
				diffusion += s * z[j]
			}
			out[t][i] = out[t-1][i] * math.Exp(drift[i]+diffusion*sqdt)
		}
	}
	return out, nil
}

// SyntheticConfig describes a simulated market whose index is the equally
// weighted average of its assets.
type SyntheticConfig struct {
	Assets     int
	Periods    int
	Drift      float64 // annual
	Volatility float64 // annual
	Seed       uint64
}

// Synthetic returns daily returns of a simulated market with independent
// assets. Dates are consecutive weekdays starting 2012-01-02.
func Synthetic(cfg SyntheticConfig) (*Returns, error) {
	if cfg.Assets <= 0 || cfg.Periods <= 0 {
		return nil, errors.New("marketdata: synthetic market needs assets and periods")
	}
	mu := make([]float64, cfg.Assets)
	sigma := make([][]float64, cfg.Assets)
	for i := range mu {
		mu[i] = cfg.Drift
		sigma[i] = make([]float64, cfg.Assets)
		sigma[i][i] = cfg.Volatility
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	path, err := SimulateGBM(mu, sigma, cfg.Periods, 1.0/252, 100, rng)
	if err != nil {
		return nil, err
	}

	p := &Prices{}
	date := time.Date(2012, time.January, 2, 0, 0, 0, 0, time.UTC)
	for _, row := range path {
		for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			date = date.AddDate(0, 0, 1)
		}
		var sum float64
		for _, v := range row {
			sum += v
		}
		p.Dates = append(p.Dates, date)
		p.Index = append(p.Index, sum/float64(len(row)))
		p.Values = append(p.Values, row)
		date = date.AddDate(0, 0, 1)
	}
	for i := range cfg.Assets {
		p.Tickers = append(p.Tickers, fmt.Sprintf("SIM%03d", i))
	}
	return p.Returns(), nil
}
