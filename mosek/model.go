package mosek

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/apex/log"
)

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// ConeConstraint restricts an affine expression to a cone:
//
//	F·x + G ∈ Domain
//
// F is given as nonzeros whose Row is the position within the cone
// (0..Dim-1) and whose Col is a variable index.
type ConeConstraint struct {
	Domain DomainType
	Dim    int
	F      []Nonzero
	G      []float64 // optional constant term, length Dim
	Alpha  []float64 // power cone weights
	Name   string
}

// Model represents a high-level optimization model.
// It provides a convenient way to define LP, conic and MIP problems
// without dealing with the low-level task API directly.
//
// The model solves problems of the form:
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	                        F_k·x + g_k ∈ K_k   for each cone k
//	And:                    ColLower ≤ x ≤ ColUpper
//
// Where A is the constraint matrix specified by ConstMatrix.
type Model struct {
	// Name is the task name, used in written files.
	Name string

	// Maximize indicates whether to maximize (true) or minimize (false).
	Maximize bool

	// Offset is a constant added to the objective function.
	Offset float64

	// ColCosts are the objective function coefficients for each variable.
	// If empty, all costs are 0.
	ColCosts []float64

	// ColLower are the lower bounds for each variable.
	// If empty, every variable is unbounded below; otherwise it needs one
	// entry per variable.
	ColLower []float64

	// ColUpper are the upper bounds for each variable.
	// If empty, every variable is unbounded above; otherwise it needs one
	// entry per variable.
	ColUpper []float64

	// RowLower are the lower bounds for each constraint, one per row when
	// set. Use NegInf() for no lower bound.
	RowLower []float64

	// RowUpper are the upper bounds for each constraint, one per row when
	// set. Use Inf() for no upper bound.
	RowUpper []float64

	// ConstMatrix defines the constraint matrix as a list of non-zero entries.
	// Each entry specifies (row, column, value).
	ConstMatrix []Nonzero

	// Cones are affine conic constraints.
	Cones []ConeConstraint

	// VarTypes specifies the type of each variable (continuous or integer).
	// If empty, all variables are treated as continuous.
	VarTypes []VariableType

	// ColNames and RowNames optionally name variables and constraints.
	ColNames []string
	RowNames []string
}

// AddDenseRow adds a constraint to the model using a dense coefficient vector.
// Zero coefficients are automatically filtered out.
//
// Example:
//
//	model.AddDenseRow(1.0, []float64{1.0, 2.0, 0.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) int {
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for col, val := range coeffs {
		if val != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: row, Col: col, Val: val})
		}
	}
	return row
}

// AddSparseRow adds a constraint using sparse coefficient representation
// and returns its index.
func (m *Model) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) int {
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for i, col := range cols {
		if vals[i] != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: row, Col: col, Val: vals[i]})
		}
	}
	return row
}

// AddEqRow adds an equality constraint: sum(coeffs * x) = rhs.
func (m *Model) AddEqRow(coeffs []float64, rhs float64) int {
	return m.AddDenseRow(rhs, coeffs, rhs)
}

// AddLeRow adds a less-than-or-equal constraint: sum(coeffs * x) <= rhs.
func (m *Model) AddLeRow(coeffs []float64, rhs float64) int {
	return m.AddDenseRow(math.Inf(-1), coeffs, rhs)
}

// AddGeRow adds a greater-than-or-equal constraint: sum(coeffs * x) >= rhs.
func (m *Model) AddGeRow(coeffs []float64, rhs float64) int {
	return m.AddDenseRow(rhs, coeffs, math.Inf(1))
}

// AddCone appends a conic constraint and returns its index.
func (m *Model) AddCone(c ConeConstraint) int {
	m.Cones = append(m.Cones, c)
	return len(m.Cones) - 1
}

// AddQuadraticCone constrains (x[cols[0]], ..., x[cols[n-1]]) to the
// quadratic cone x0 >= ||(x1, ..., xn-1)||.
func (m *Model) AddQuadraticCone(cols ...int) int {
	f := make([]Nonzero, len(cols))
	for i, c := range cols {
		f[i] = Nonzero{Row: i, Col: c, Val: 1}
	}
	return m.AddCone(ConeConstraint{Domain: DomainQuadraticCone, Dim: len(cols), F: f})
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int {
	maxCol := -1
	for _, nz := range m.ConstMatrix {
		maxCol = max(maxCol, nz.Col)
	}
	for _, c := range m.Cones {
		for _, nz := range c.F {
			maxCol = max(maxCol, nz.Col)
		}
	}
	n := maxCol + 1
	for _, l := range []int{len(m.ColCosts), len(m.ColLower), len(m.ColUpper), len(m.VarTypes), len(m.ColNames)} {
		n = max(n, l)
	}
	return n
}

// NumConstraints returns the number of linear constraints in the model.
func (m *Model) NumConstraints() int {
	maxRow := -1
	for _, nz := range m.ConstMatrix {
		maxRow = max(maxRow, nz.Row)
	}
	return max(maxRow+1, len(m.RowLower), len(m.RowUpper), len(m.RowNames))
}

// isInteger reports whether any variable is integer.
func (m *Model) isInteger() bool {
	for _, vt := range m.VarTypes {
		if vt == Integer {
			return true
		}
	}
	return false
}

// Build loads the model into an empty task.
func (m *Model) Build(t *Task) error {
	numCol := m.NumVars()
	numRow := m.NumConstraints()

	// Prepare column data with defaults
	colCosts, err := expandSlice(numCol, m.ColCosts, 0.0)
	if err != nil {
		return newErrorMsg("Build", "inconsistent ColCosts length")
	}
	colLower, err := expandSlice(numCol, m.ColLower, math.Inf(-1))
	if err != nil {
		return newErrorMsg("Build", "inconsistent ColLower length")
	}
	colUpper, err := expandSlice(numCol, m.ColUpper, math.Inf(1))
	if err != nil {
		return newErrorMsg("Build", "inconsistent ColUpper length")
	}

	// Prepare row data with defaults
	rowLower, err := expandSlice(numRow, m.RowLower, math.Inf(-1))
	if err != nil {
		return newErrorMsg("Build", "inconsistent RowLower length")
	}
	rowUpper, err := expandSlice(numRow, m.RowUpper, math.Inf(1))
	if err != nil {
		return newErrorMsg("Build", "inconsistent RowUpper length")
	}

	ptrb, ptre, asub, aval, err := nonzerosToCSR(m.ConstMatrix, numRow)
	if err != nil {
		return err
	}
	if err := m.validateCones(numCol); err != nil {
		return err
	}

	if m.Name != "" {
		if err := t.PutTaskName(m.Name); err != nil {
			return err
		}
	}
	sense := ObjSenseMinimize
	if m.Maximize {
		sense = ObjSenseMaximize
	}
	if err := t.PutObjSense(sense); err != nil {
		return err
	}
	if err := t.PutCFix(m.Offset); err != nil {
		return err
	}

	// Variables
	if numCol > 0 {
		if err := t.AppendVars(numCol); err != nil {
			return err
		}
		if err := t.PutCSlice(0, numCol, colCosts); err != nil {
			return err
		}
		bk, bl, bu := boundKeys(colLower, colUpper)
		if err := t.PutVarBoundSlice(0, numCol, bk, bl, bu); err != nil {
			return err
		}
	}

	// Constraints
	if numRow > 0 {
		if err := t.AppendCons(numRow); err != nil {
			return err
		}
		bk, bl, bu := boundKeys(rowLower, rowUpper)
		if err := t.PutConBoundSlice(0, numRow, bk, bl, bu); err != nil {
			return err
		}
		if len(asub) > 0 {
			if err := t.PutARowList(sequence(0, numRow), ptrb, ptre, asub, aval); err != nil {
				return err
			}
		}
	}

	// Integrality
	var intCols []int
	for j, vt := range m.VarTypes {
		if vt == Integer {
			intCols = append(intCols, j)
		}
	}
	if len(intCols) > 0 {
		types := make([]VariableType, len(intCols))
		for i := range types {
			types[i] = Integer
		}
		if err := t.PutVarTypeList(intCols, types); err != nil {
			return err
		}
	}

	if err := m.buildCones(t); err != nil {
		return err
	}
	return m.putNames(t)
}

func (m *Model) validateCones(numCol int) error {
	for k, c := range m.Cones {
		if c.Dim <= 0 {
			return newErrorMsg("Build", fmt.Sprintf("cone %d has no dimension", k))
		}
		if c.G != nil && len(c.G) != c.Dim {
			return newErrorMsg("Build", fmt.Sprintf("cone %d: G has length %d, want %d", k, len(c.G), c.Dim))
		}
		for _, nz := range c.F {
			if nz.Row < 0 || nz.Row >= c.Dim || nz.Col < 0 || nz.Col >= numCol {
				return newErrorMsg("Build", fmt.Sprintf("cone %d: entry (%d, %d) out of range", k, nz.Row, nz.Col))
			}
		}
	}
	return nil
}

// buildCones stores each cone as a block of consecutive affine
// expressions and one affine conic constraint over the block.
func (m *Model) buildCones(t *Task) error {
	if len(m.Cones) == 0 {
		return nil
	}
	total := 0
	for _, c := range m.Cones {
		total += c.Dim
	}
	if err := t.AppendAfes(int64(total)); err != nil {
		return err
	}

	var afe []int64
	var vars []int
	var vals []float64
	g := make([]float64, total)
	first := 0
	for _, c := range m.Cones {
		for _, nz := range c.F {
			afe = append(afe, int64(first+nz.Row))
			vars = append(vars, nz.Col)
			vals = append(vals, nz.Val)
		}
		copy(g[first:], c.G)
		first += c.Dim
	}
	if len(vals) > 0 {
		if err := t.PutAfeFEntryList(afe, vars, vals); err != nil {
			return err
		}
	}
	if err := t.PutAfeGSlice(0, int64(total), g); err != nil {
		return err
	}

	first = 0
	for k, c := range m.Cones {
		dom, err := t.AppendDomain(c.Domain, int64(c.Dim), c.Alpha)
		if err != nil {
			return err
		}
		if err := t.AppendAccSeq(dom, int64(c.Dim), int64(first), nil); err != nil {
			return err
		}
		if c.Name != "" {
			if err := t.PutAccName(int64(k), c.Name); err != nil {
				return err
			}
		}
		first += c.Dim
	}
	return nil
}

func (m *Model) putNames(t *Task) error {
	for j, name := range m.ColNames {
		if name == "" {
			continue
		}
		if err := t.PutVarName(j, name); err != nil {
			return err
		}
	}
	for i, name := range m.RowNames {
		if name == "" {
			continue
		}
		if err := t.PutConName(i, name); err != nil {
			return err
		}
	}
	return nil
}

// Solve builds and solves the model, returning the solution.
//
// Options can be set using SolveOptions:
//
//	solution, err := model.Solve(
//		mosek.WithTimeLimit(60),
//		mosek.WithMIORelGap(0.01),
//		mosek.WithOutput(os.Stdout),
//	)
func (m *Model) Solve(opts ...SolveOption) (*Solution, error) {
	if m.NumVars() == 0 && len(m.Cones) == 0 {
		return &Solution{SolSta: SolStaOptimal, ProSta: ProStaPrimAndDualFeas, Objective: m.Offset}, nil
	}

	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	task, err := NewTask(cfg.env)
	if err != nil {
		return nil, err
	}
	defer task.Close()

	if err := cfg.apply(task); err != nil {
		return nil, err
	}
	if err := m.Build(task); err != nil {
		return nil, err
	}

	trm, err := task.Optimize()
	if err != nil {
		return nil, err
	}
	sol, err := task.GetSolution(m.solType(task, cfg))
	if err != nil {
		return nil, err
	}
	sol.Termination = trm
	return sol, nil
}

// solType picks the solution to report: the requested one, the integer
// solution for MIPs, else the basic solution when the simplex or basis
// identification produced one.
func (m *Model) solType(t *Task, cfg *solveConfig) SolType {
	if cfg.solType != nil {
		return *cfg.solType
	}
	if m.isInteger() {
		return SolItg
	}
	if def, err := t.SolutionDefined(SolBas); err == nil && def {
		return SolBas
	}
	return SolItr
}

// SolveOption configures the solver behavior.
type SolveOption func(*solveConfig)

type solveConfig struct {
	env       *Env
	output    io.Writer
	logger    log.Interface
	timeLimit *float64
	mioRelGap *float64
	threads   *int
	optimizer *OptimizerType
	solType   *SolType
	extraInt  map[IntParam]int
	extraDou  map[DouParam]float64
	extraStr  map[StrParam]string
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		extraInt: make(map[IntParam]int),
		extraDou: make(map[DouParam]float64),
		extraStr: make(map[StrParam]string),
	}
}

func (c *solveConfig) apply(t *Task) error {
	if c.logger != nil {
		if err := t.SetLogger(c.logger); err != nil {
			return err
		}
	} else if c.output != nil {
		w := c.output
		if err := t.SetStreamHandler(StreamLog, func(s string) { io.WriteString(w, s) }); err != nil {
			return err
		}
	}
	if c.timeLimit != nil {
		if err := t.PutDouParam(DParOptimizerMaxTime, *c.timeLimit); err != nil {
			return err
		}
	}
	if c.mioRelGap != nil {
		if err := t.PutDouParam(DParMioTolRelGap, *c.mioRelGap); err != nil {
			return err
		}
	}
	if c.threads != nil {
		if err := t.PutIntParam(IParNumThreads, *c.threads); err != nil {
			return err
		}
	}
	if c.optimizer != nil {
		if err := t.SetParam(string(IParOptimizer), c.optimizer.String()); err != nil {
			return err
		}
	}
	for k, v := range c.extraInt {
		if err := t.PutIntParam(k, v); err != nil {
			return err
		}
	}
	for k, v := range c.extraDou {
		if err := t.PutDouParam(k, v); err != nil {
			return err
		}
	}
	for k, v := range c.extraStr {
		if err := t.PutStrParam(k, v); err != nil {
			return err
		}
	}
	return nil
}

// WithOutput writes the solver log to w. Pass os.Stdout for the console.
func WithOutput(w io.Writer) SolveOption {
	return func(c *solveConfig) {
		c.output = w
	}
}

// WithConsoleOutput enables or disables solver output on stdout.
func WithConsoleOutput(enabled bool) SolveOption {
	return func(c *solveConfig) {
		if enabled {
			c.output = os.Stdout
		} else {
			c.output = nil
		}
	}
}

// WithLogger forwards the solver output to an apex/log logger.
func WithLogger(l log.Interface) SolveOption {
	return func(c *solveConfig) {
		c.logger = l
	}
}

// WithEnv solves in the given environment instead of the implicit one.
func WithEnv(env *Env) SolveOption {
	return func(c *solveConfig) {
		c.env = env
	}
}

// WithTimeLimit sets the time limit in seconds.
func WithTimeLimit(seconds float64) SolveOption {
	return func(c *solveConfig) {
		c.timeLimit = &seconds
	}
}

// WithMIORelGap sets the relative optimality gap of the mixed-integer optimizer.
func WithMIORelGap(gap float64) SolveOption {
	return func(c *solveConfig) {
		c.mioRelGap = &gap
	}
}

// WithThreads sets the number of threads to use.
func WithThreads(n int) SolveOption {
	return func(c *solveConfig) {
		c.threads = &n
	}
}

// WithOptimizer selects the optimizer.
func WithOptimizer(o OptimizerType) SolveOption {
	return func(c *solveConfig) {
		c.optimizer = &o
	}
}

// WithSolType chooses which solution Solve reports.
func WithSolType(s SolType) SolveOption {
	return func(c *solveConfig) {
		c.solType = &s
	}
}

// WithIntParam sets a custom integer parameter.
func WithIntParam(name IntParam, value int) SolveOption {
	return func(c *solveConfig) {
		c.extraInt[name] = value
	}
}

// WithDouParam sets a custom floating-point parameter.
func WithDouParam(name DouParam, value float64) SolveOption {
	return func(c *solveConfig) {
		c.extraDou[name] = value
	}
}

// WithStrParam sets a custom string parameter.
func WithStrParam(name StrParam, value string) SolveOption {
	return func(c *solveConfig) {
		c.extraStr[name] = value
	}
}
