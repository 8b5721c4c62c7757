package portfolio

import (
	"context"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/mosek"
)

// ExcessCVaRSAA maximises the expected excess return over the enhanced index
// minus a CVaR penalty:
//
//	min  -πᵀRw + ρ(ν + 1/(1-β) πᵀu)
//	s.t. Σw = 1,  Rw + ν + u ≥ 0,  w, u ≥ 0.
//
// Every (ρ, β) pair of the grid is solved by changing the costs of ν and u
// and re-optimising the same task.
type ExcessCVaRSAA struct {
	Options

	Rhos  []float64 // defaults to DefaultRhos
	Betas []float64 // defaults to DefaultBetas
}

// DefaultRhos returns 40 penalties evenly spaced in [0.1, 4].
func DefaultRhos() []float64 { return linspace(0.1, 4, 40) }

// DefaultBetas returns the confidence levels of the excess CVaR frontier.
func DefaultBetas() []float64 { return []float64{0.8, 0.85, 0.9, 0.95, 0.99} }

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if n == 1 {
			out[i] = lo
			continue
		}
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func (ExcessCVaRSAA) Name() string { return "ExcessCVaRSAA" }

func (ExcessCVaRSAA) Approximate(d Data, w []float64) float64 { return ApproximateExcess(d, w) }

type excessCols struct{ w, nu, u int }

func excessModel(d Data) (*mosek.Model, excessCols) {
	T, N := d.Dims()
	R := d.ExcessReturns()
	pi := d.Probabilities()

	m := &mosek.Model{Name: "ExcessCVaRSAA"}
	var c excessCols
	wCost := make([]float64, N)
	for t, row := range R {
		for i, v := range row {
			wCost[i] -= pi[t] * v
		}
	}
	lo, up := nonNegative(N)
	c.w = appendCols(m, "w", wCost, lo, up)
	lo, up = free(1)
	c.nu = appendCols(m, "nu", []float64{0}, lo, up)
	lo, up = nonNegative(T)
	c.u = appendCols(m, "u", make([]float64, T), lo, up)

	budgetRow(m, N)
	for t := range T {
		cols, vals := scaledRow(R[t], 1, c.w)
		cols = append(cols, c.nu, c.u+t)
		vals = append(vals, 1, 1)
		m.AddSparseRow(0, cols, vals, mosek.Inf())
	}
	return m, c
}

// Solve returns one result per optimal (ρ, β) pair in row-major order of the
// grid. d.Rho and d.Beta are only used for validation.
func (s ExcessCVaRSAA) Solve(ctx context.Context, d Data) ([]Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	rhos, betas := s.Rhos, s.Betas
	if len(rhos) == 0 {
		rhos = DefaultRhos()
	}
	if len(betas) == 0 {
		betas = DefaultBetas()
	}
	for _, beta := range betas {
		if beta <= 0 || beta >= 1 {
			return nil, errors.Errorf("portfolio: beta must lie in (0, 1), got %g", beta)
		}
	}

	m, c := excessModel(d)
	task, err := s.newTask(m)
	if err != nil {
		return nil, err
	}
	defer task.Close()

	T, N := d.Dims()
	R := d.ExcessReturns()
	pi := d.Probabilities()
	logger := s.logger().WithField("model", s.Name())
	uCost := make([]float64, T)

	results := make([]Result, 0, len(rhos)*len(betas))
	for _, rho := range rhos {
		for _, beta := range betas {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			for t := range uCost {
				uCost[t] = rho * pi[t] / (1 - beta)
			}
			if err := task.PutCj(c.nu, rho); err != nil {
				return results, err
			}
			if err := task.PutCSlice(c.u, c.u+T, uCost); err != nil {
				return results, err
			}
			sol, err := optimize(task)
			if err != nil {
				return results, errors.Wrapf(err, "optimize ExcessCVaRSAA at rho=%g beta=%g", rho, beta)
			}
			if !sol.IsOptimal() {
				logger.WithFields(log.Fields{
					"rho":    rho,
					"beta":   beta,
					"solsta": sol.SolSta,
					"prosta": sol.ProSta,
				}).Warn("no optimal solution")
				continue
			}

			w := sol.ColValues[c.w : c.w+N]
			r := PortfolioReturns(R, w)
			valueAtRisk := sol.ColValues[c.nu]
			results = append(results, Result{
				Objective:    sol.Objective,
				Rho:          rho,
				Beta:         beta,
				ExcessReturn: mean(r),
				VaR:          valueAtRisk,
				CVaR:         ConditionalValueAtRisk(r, valueAtRisk, beta),
				Weights:      append([]float64(nil), w...),
			})
		}
	}
	if len(results) == 0 {
		return nil, errors.Wrap(ErrNoSolution, s.Name())
	}
	return results, nil
}

// ExcessCVaRDRO is the Wasserstein distributionally robust version of the
// excess CVaR model at a single (ρ, β) taken from the data. The loss
// -r + ρ(ν + 1/(1-β)(-r-ν)⁺) is the maximum of two affine pieces, so the
// problem has the shape of TrackingDRO with two pieces instead of four.
type ExcessCVaRDRO struct {
	Options

	// Radii is the grid of Wasserstein radii; defaults to ExcessRadii.
	Radii []float64
}

func (ExcessCVaRDRO) Name() string { return "ExcessCVaRDRO" }

func (ExcessCVaRDRO) Approximate(d Data, w []float64) float64 { return ApproximateExcess(d, w) }

// ExcessRadii is the radius grid of the excess CVaR sensitivity experiment.
func ExcessRadii() []float64 { return RadiusGrid(-6, 0.5, 50) }

// excessAffine returns the coefficients of w and ν in the two affine pieces
// of the excess CVaR loss.
func excessAffine(rho, beta float64) (a, b [2]float64) {
	tail := rho / (1 - beta)
	a = [2]float64{-1 - tail, -1}
	b = [2]float64{rho - tail, rho}
	return a, b
}

func excessDROModel(d Data) (*mosek.Model, droCols) {
	a, b := excessAffine(d.Rho, d.Beta)
	return wassersteinModel("ExcessCVaRDRO", d, a[:], b[:])
}

// Solve returns one result per radius with an optimal solution.
func (s ExcessCVaRDRO) Solve(ctx context.Context, d Data) ([]Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	radii := s.Radii
	if len(radii) == 0 {
		radii = ExcessRadii()
	}
	m, c := excessDROModel(d)
	return solveRadii(ctx, s.Options, s.Name(), d, radii, m, c, func(res *Result, r []float64) {
		res.ExcessReturn = mean(r)
	})
}
