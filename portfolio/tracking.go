package portfolio

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/mosek"
)

// TrackingSAA minimises the expected absolute tracking error plus a CVaR
// penalty on the excess returns under the empirical distribution:
//
//	min  πᵀy + ρ(ν + 1/(1-β) πᵀu)
//	s.t. Σw = 1,  ±Rw - y ≤ 0,  Rw + ν + u ≥ 0,  w, y, u ≥ 0.
type TrackingSAA struct {
	Options
}

func (TrackingSAA) Name() string { return "TrackingSAA" }

func (TrackingSAA) Approximate(d Data, w []float64) float64 { return ApproximateTracking(d, w) }

// layout of the SAA tracking columns
type saaCols struct{ w, y, nu, u int }

func trackingSAAModel(d Data) (*mosek.Model, saaCols) {
	T, N := d.Dims()
	R := d.ExcessReturns()
	pi := d.Probabilities()

	m := &mosek.Model{Name: "TrackingSAA"}
	var c saaCols
	lo, up := nonNegative(N)
	c.w = appendCols(m, "w", make([]float64, N), lo, up)
	lo, up = nonNegative(T)
	c.y = appendCols(m, "y", pi, lo, up)
	lo, up = free(1)
	c.nu = appendCols(m, "nu", []float64{d.Rho}, lo, up)
	uCost := make([]float64, T)
	for t := range uCost {
		uCost[t] = d.Rho * pi[t] / (1 - d.Beta)
	}
	lo, up = nonNegative(T)
	c.u = appendCols(m, "u", uCost, lo, up)

	budgetRow(m, N)
	for _, sign := range []float64{1, -1} {
		for t := range T {
			cols, vals := scaledRow(R[t], sign, c.w)
			cols = append(cols, c.y+t)
			vals = append(vals, -1)
			m.AddSparseRow(mosek.NegInf(), cols, vals, 0)
		}
	}
	for t := range T {
		cols, vals := scaledRow(R[t], 1, c.w)
		cols = append(cols, c.nu, c.u+t)
		vals = append(vals, 1, 1)
		m.AddSparseRow(0, cols, vals, mosek.Inf())
	}
	return m, c
}

// scaledRow returns the nonzeros of scale·row shifted to start at column
// first.
func scaledRow(row []float64, scale float64, first int) ([]int, []float64) {
	cols := make([]int, 0, len(row)+2)
	vals := make([]float64, 0, len(row)+2)
	for i, v := range row {
		if v == 0 {
			continue
		}
		cols = append(cols, first+i)
		vals = append(vals, scale*v)
	}
	return cols, vals
}

// Solve returns a single result.
func (s TrackingSAA) Solve(ctx context.Context, d Data) ([]Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, c := trackingSAAModel(d)
	task, err := s.newTask(m)
	if err != nil {
		return nil, err
	}
	defer task.Close()

	sol, err := optimize(task)
	if err != nil {
		return nil, errors.Wrap(err, "optimize TrackingSAA")
	}
	if !sol.IsOptimal() {
		return nil, errors.Wrapf(ErrNoSolution, "TrackingSAA: %s/%s", sol.SolSta, sol.ProSta)
	}

	_, N := d.Dims()
	w := sol.ColValues[c.w : c.w+N]
	r := PortfolioReturns(d.ExcessReturns(), w)
	valueAtRisk := sol.ColValues[c.nu]
	return []Result{{
		Objective:     sol.Objective,
		Rho:           d.Rho,
		Beta:          d.Beta,
		TrackingError: meanAbs(r),
		VaR:           valueAtRisk,
		CVaR:          ConditionalValueAtRisk(r, valueAtRisk, d.Beta),
		Weights:       append([]float64(nil), w...),
	}}, nil
}

// TrackingDRO is the Wasserstein distributionally robust version of
// TrackingSAA with respect to the 1-norm. The ambiguity set is a ball of
// radius ε around the empirical distribution; the loss is the maximum of
// four affine functions of the excess return, which gives
//
//	min  ελ + 1/T Σs
//	s.t. Σw = 1,  b_k + R a_k - s ≤ 0,  |a_k| ≤ λ  (k = 1..4),  w ≥ 0.
//
// The problem is built once and each radius only changes the cost of λ.
type TrackingDRO struct {
	Options

	// Radii is the grid of Wasserstein radii; defaults to ExperimentRadii.
	Radii []float64
}

func (TrackingDRO) Name() string { return "TrackingDRO" }

func (TrackingDRO) Approximate(d Data, w []float64) float64 { return ApproximateTracking(d, w) }

// RadiusGrid returns 0 followed by n radii spaced evenly on a log scale
// between 10^minExp and 10^maxExp.
func RadiusGrid(minExp, maxExp float64, n int) []float64 {
	out := make([]float64, 0, n+1)
	out = append(out, 0)
	for i := range n {
		e := minExp
		if n > 1 {
			e += (maxExp - minExp) * float64(i) / float64(n-1)
		}
		out = append(out, math.Pow(10, e))
	}
	return out
}

// ExperimentRadii is the radius grid of the sensitivity experiment.
func ExperimentRadii() []float64 { return RadiusGrid(-3, 1, 30) }

// droAffine returns the coefficients of w and ν in the four affine pieces
// of the tracking loss for CVaR penalty gamma.
func droAffine(gamma, beta float64) (a, b [4]float64) {
	tail := gamma / (1 - beta)
	a = [4]float64{1 - tail, -1 - tail, 1, -1}
	b = [4]float64{gamma - tail, gamma - tail, gamma, gamma}
	return a, b
}

func trackingDROModel(d Data) (*mosek.Model, droCols) {
	a, b := droAffine(d.Rho, d.Beta)
	return wassersteinModel("TrackingDRO", d, a[:], b[:])
}

// Solve returns one result per radius for which both the primal and the
// dual solution are optimal. Other radii are logged and skipped.
func (s TrackingDRO) Solve(ctx context.Context, d Data) ([]Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	m, c := trackingDROModel(d)
	return solveRadii(ctx, s.Options, s.Name(), d, s.Radii, m, c, func(res *Result, r []float64) {
		res.TrackingError = meanAbs(r)
	})
}
