package portfolio

import (
	"context"
	"strconv"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/mosek"
)

// ErrNoSolution is returned when no point of a parameter grid produced an
// optimal portfolio.
var ErrNoSolution = errors.New("portfolio: no optimal solution")

// Result is one optimal portfolio together with the parameters it was
// computed for and its in-sample risk measures.
type Result struct {
	Objective float64 // solver objective
	Eps       float64 // Wasserstein radius, zero for SAA models
	Rho       float64
	Beta      float64

	TrackingError float64 // πᵀ|Rw|, tracking models only
	ExcessReturn  float64 // πᵀRw, excess models only
	VaR           float64
	CVaR          float64

	Weights []float64
}

// Strategy is an investment model that can be fitted to a return window and
// evaluated on another one.
type Strategy interface {
	// Name identifies the model in logs and result files.
	Name() string
	// Solve fits the model and returns one result per parameter point.
	Solve(ctx context.Context, d Data) ([]Result, error)
	// Approximate estimates the model objective of w on d empirically.
	Approximate(d Data, w []float64) float64
}

// Options are shared by all models.
type Options struct {
	Env       *mosek.Env    // optional shared environment
	Logger    log.Interface // defaults to the global apex logger
	SolverLog bool          // forward the MOSEK log to Logger
	Threads   int           // solver threads, 0 lets MOSEK decide
}

func (o Options) logger() log.Interface {
	if o.Logger == nil {
		return log.Log
	}
	return o.Logger
}

// newTask loads m into a fresh task configured from o.
func (o Options) newTask(m *mosek.Model) (*mosek.Task, error) {
	task, err := mosek.NewTask(o.Env)
	if err != nil {
		return nil, err
	}
	if o.SolverLog {
		err = task.SetLogger(o.logger().WithField("model", m.Name))
	} else {
		err = task.PutIntParam(mosek.IParLog, 0)
	}
	if err == nil && o.Threads > 0 {
		err = task.PutIntParam(mosek.IParNumThreads, o.Threads)
	}
	if err == nil {
		err = m.Build(task)
	}
	if err != nil {
		task.Close()
		return nil, errors.Wrapf(err, "build %s", m.Name)
	}
	return task, nil
}

// optimize solves the loaded problem and reads the basic solution when the
// optimizer produced one, the interior-point solution otherwise.
func optimize(task *mosek.Task) (*mosek.Solution, error) {
	trm, err := task.Optimize()
	if err != nil {
		return nil, err
	}
	soltype := mosek.SolItr
	if def, err := task.SolutionDefined(mosek.SolBas); err == nil && def {
		soltype = mosek.SolBas
	}
	sol, err := task.GetSolution(soltype)
	if err != nil {
		return nil, err
	}
	sol.Termination = trm
	return sol, nil
}

// budgetRow adds Σ w = 1 over the first n columns.
func budgetRow(m *mosek.Model, n int) {
	cols := make([]int, n)
	vals := make([]float64, n)
	for i := range cols {
		cols[i] = i
		vals[i] = 1
	}
	m.AddSparseRow(1, cols, vals, 1)
}

// nonNegative returns n lower bounds of zero and n infinite upper bounds.
func nonNegative(n int) (lo, up []float64) {
	lo = make([]float64, n)
	up = make([]float64, n)
	for i := range up {
		up[i] = mosek.Inf()
	}
	return lo, up
}

// free returns n infinite bound pairs.
func free(n int) (lo, up []float64) {
	lo = make([]float64, n)
	up = make([]float64, n)
	for i := range lo {
		lo[i], up[i] = mosek.NegInf(), mosek.Inf()
	}
	return lo, up
}

// appendCols adds len(cost) named columns and returns the index of the first.
func appendCols(m *mosek.Model, name string, cost, lo, up []float64) int {
	first := len(m.ColCosts)
	m.ColCosts = append(m.ColCosts, cost...)
	m.ColLower = append(m.ColLower, lo...)
	m.ColUpper = append(m.ColUpper, up...)
	for j := range cost {
		if len(cost) == 1 {
			m.ColNames = append(m.ColNames, name)
			continue
		}
		m.ColNames = append(m.ColNames, name+"["+strconv.Itoa(j)+"]")
	}
	return first
}
