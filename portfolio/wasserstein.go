package portfolio

import (
	"context"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/mosek"
)

type droCols struct{ w, s, lambda, nu int }

// wassersteinModel builds the 1-norm Wasserstein DRO problem for a loss that
// is the maximum of the affine pieces a_k·Rw + b_k·ν:
//
//	min  ελ + 1/T Σs
//	s.t. Σw = 1,  b_k ν + a_k R_t w - s_t ≤ 0,  ±a_k w_i - λ ≤ 0,  w ≥ 0.
//
// λ starts with cost 0; solveRadii sets it to ε.
func wassersteinModel(name string, d Data, a, b []float64) (*mosek.Model, droCols) {
	T, N := d.Dims()
	R := d.ExcessReturns()

	m := &mosek.Model{Name: name}
	var c droCols
	lo, up := nonNegative(N)
	c.w = appendCols(m, "w", make([]float64, N), lo, up)
	sCost := make([]float64, T)
	for t := range sCost {
		sCost[t] = 1 / float64(T)
	}
	lo, up = free(T)
	c.s = appendCols(m, "s", sCost, lo, up)
	lo, up = free(1)
	c.lambda = appendCols(m, "lambda", []float64{0}, lo, up)
	lo, up = free(1)
	c.nu = appendCols(m, "nu", []float64{0}, lo, up)

	budgetRow(m, N)
	for k := range a {
		for t := range T {
			cols, vals := scaledRow(R[t], a[k], c.w)
			cols = append(cols, c.nu, c.s+t)
			vals = append(vals, b[k], -1)
			m.AddSparseRow(mosek.NegInf(), cols, vals, 0)
		}
		for _, sign := range []float64{1, -1} {
			for i := range N {
				m.AddSparseRow(mosek.NegInf(), []int{c.w + i, c.lambda}, []float64{sign * a[k], -1}, 0)
			}
		}
	}
	return m, c
}

// solveRadii re-optimises the model once per radius. fill adds the
// model-specific statistics of the portfolio returns r to each result.
func solveRadii(ctx context.Context, o Options, name string, d Data, radii []float64, m *mosek.Model, c droCols, fill func(res *Result, r []float64)) ([]Result, error) {
	if len(radii) == 0 {
		radii = ExperimentRadii()
	}
	task, err := o.newTask(m)
	if err != nil {
		return nil, err
	}
	defer task.Close()

	_, N := d.Dims()
	R := d.ExcessReturns()
	logger := o.logger().WithField("model", name)

	results := make([]Result, 0, len(radii))
	for _, eps := range radii {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if err := task.PutCj(c.lambda, eps); err != nil {
			return results, err
		}
		sol, err := optimize(task)
		if err != nil {
			return results, errors.Wrapf(err, "optimize %s at eps=%g", name, eps)
		}
		if !sol.IsOptimal() {
			logger.WithFields(log.Fields{
				"eps":    eps,
				"solsta": sol.SolSta,
				"prosta": sol.ProSta,
			}).Warn("no optimal solution for radius")
			continue
		}

		w := sol.ColValues[c.w : c.w+N]
		r := PortfolioReturns(R, w)
		valueAtRisk := sol.ColValues[c.nu]
		res := Result{
			Objective: sol.Objective,
			Eps:       eps,
			Rho:       d.Rho,
			Beta:      d.Beta,
			VaR:       valueAtRisk,
			CVaR:      ConditionalValueAtRisk(r, valueAtRisk, d.Beta),
			Weights:   append([]float64(nil), w...),
		}
		fill(&res, r)
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, errors.Wrap(ErrNoSolution, name)
	}
	return results, nil
}
