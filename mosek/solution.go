package mosek

// solVector selects one of the per-variable or per-constraint solution
// vectors.
type solVector int

const (
	vecXx solVector = iota
	vecXc
	vecY
	vecSlc
	vecSuc
	vecSlx
	vecSux
)

// Solution contains the results from solving an optimization model.
type Solution struct {
	// SolType is the solution that was read (interior, basic or integer).
	SolType SolType

	// SolSta and ProSta are the solution and problem status.
	SolSta SolSta
	ProSta ProSta

	// Termination is the code the optimizer terminated with.
	Termination Rescode

	// ColValues contains the primal solution values for each variable.
	ColValues []float64

	// ColDuals contains the reduced costs slx - sux for each variable.
	// Not populated for integer solutions.
	ColDuals []float64

	// RowValues contains the activity of each constraint.
	RowValues []float64

	// RowDuals contains the dual values y for each constraint.
	// Not populated for integer solutions.
	RowDuals []float64

	// Objective is the primal objective value.
	Objective float64

	// DualObjective is the dual objective value, zero for integer solutions.
	DualObjective float64
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool {
	return s.SolSta.IsOptimal()
}

// IsInfeasible returns true if the problem is primal infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.SolSta == SolStaPrimInfeasCer ||
		s.ProSta == ProStaPrimInfeas ||
		s.ProSta == ProStaPrimAndDualInfeas ||
		s.ProSta == ProStaPrimInfeasOrUnbounded
}

// IsUnbounded returns true if the problem is unbounded, i.e. dual infeasible.
func (s *Solution) IsUnbounded() bool {
	return s.SolSta == SolStaDualInfeasCer ||
		s.ProSta == ProStaDualInfeas ||
		s.ProSta == ProStaPrimInfeasOrUnbounded
}

// IsTimeLimit returns true if the solve terminated due to time limit.
func (s *Solution) IsTimeLimit() bool {
	return s.Termination == ResTrmMaxTime
}

// HasSolution returns true if the solution contains feasible primal values.
func (s *Solution) HasSolution() bool {
	switch s.SolSta {
	case SolStaOptimal, SolStaIntegerOptimal, SolStaPrimFeas, SolStaPrimAndDualFeas:
		return true
	}
	return false
}

// Value returns the solution value for a variable by index.
// Returns 0 if the index is out of range.
func (s *Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.ColValues) {
		return 0
	}
	return s.ColValues[index]
}

// ----------------------------------------------------------------------------
// Task solution access
// ----------------------------------------------------------------------------

// SolutionDefined reports whether the given solution exists.
func (t *Task) SolutionDefined(sol SolType) (bool, error) {
	if err := t.live("SolutionDefined"); err != nil {
		return false, err
	}
	def, r := nativeSolutionDef(t.ptr, sol)
	return def, t.check("SolutionDefined", r)
}

// GetSolSta returns the solution status.
func (t *Task) GetSolSta(sol SolType) (SolSta, error) {
	if err := t.live("GetSolSta"); err != nil {
		return SolStaUnknown, err
	}
	s, r := nativeGetSolSta(t.ptr, sol)
	return s, t.check("GetSolSta", r)
}

// GetProSta returns the problem status.
func (t *Task) GetProSta(sol SolType) (ProSta, error) {
	if err := t.live("GetProSta"); err != nil {
		return ProStaUnknown, err
	}
	s, r := nativeGetProSta(t.ptr, sol)
	return s, t.check("GetProSta", r)
}

func (t *Task) solVector(op string, sol SolType, item solVector, byVar bool) ([]float64, error) {
	if err := t.live(op); err != nil {
		return nil, err
	}
	var n int32
	var r Rescode
	if byVar {
		n, r = nativeNumVar(t.ptr)
	} else {
		n, r = nativeNumCon(t.ptr)
	}
	if err := t.check(op, r); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}
	if err := t.check(op, nativeGetSolVector(t.ptr, sol, item, out)); err != nil {
		return nil, err
	}
	return out, nil
}

// GetXx returns the primal variable values.
func (t *Task) GetXx(sol SolType) ([]float64, error) {
	return t.solVector("GetXx", sol, vecXx, true)
}

// GetXxSlice returns the primal values of variables [first, last).
func (t *Task) GetXxSlice(sol SolType, first, last int) ([]float64, error) {
	if err := t.live("GetXxSlice"); err != nil {
		return nil, err
	}
	f, l, err := span("GetXxSlice", first, last, -1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, last-first)
	if err := t.check("GetXxSlice", nativeGetXxSlice(t.ptr, sol, f, l, out)); err != nil {
		return nil, err
	}
	return out, nil
}

// GetXc returns the constraint activities.
func (t *Task) GetXc(sol SolType) ([]float64, error) {
	return t.solVector("GetXc", sol, vecXc, false)
}

// GetY returns the constraint duals.
func (t *Task) GetY(sol SolType) ([]float64, error) {
	return t.solVector("GetY", sol, vecY, false)
}

// GetSlc returns the duals of the constraint lower bounds.
func (t *Task) GetSlc(sol SolType) ([]float64, error) {
	return t.solVector("GetSlc", sol, vecSlc, false)
}

// GetSuc returns the duals of the constraint upper bounds.
func (t *Task) GetSuc(sol SolType) ([]float64, error) {
	return t.solVector("GetSuc", sol, vecSuc, false)
}

// GetSlx returns the duals of the variable lower bounds.
func (t *Task) GetSlx(sol SolType) ([]float64, error) {
	return t.solVector("GetSlx", sol, vecSlx, true)
}

// GetSux returns the duals of the variable upper bounds.
func (t *Task) GetSux(sol SolType) ([]float64, error) {
	return t.solVector("GetSux", sol, vecSux, true)
}

// GetPrimalObj returns the primal objective value.
func (t *Task) GetPrimalObj(sol SolType) (float64, error) {
	if err := t.live("GetPrimalObj"); err != nil {
		return 0, err
	}
	v, r := nativeGetPrimalObj(t.ptr, sol)
	return v, t.check("GetPrimalObj", r)
}

// GetDualObj returns the dual objective value.
func (t *Task) GetDualObj(sol SolType) (float64, error) {
	if err := t.live("GetDualObj"); err != nil {
		return 0, err
	}
	v, r := nativeGetDualObj(t.ptr, sol)
	return v, t.check("GetDualObj", r)
}

// GetSolution collects statuses, values and duals of one solution. An
// undefined solution yields unknown statuses and no values. On error the
// returned solution is nil.
func (t *Task) GetSolution(sol SolType) (*Solution, error) {
	def, err := t.SolutionDefined(sol)
	if err != nil {
		return nil, err
	}
	s := &Solution{SolType: sol}
	if !def {
		return s, nil
	}
	if s.SolSta, err = t.GetSolSta(sol); err != nil {
		return nil, err
	}
	if s.ProSta, err = t.GetProSta(sol); err != nil {
		return nil, err
	}
	if s.ColValues, err = t.GetXx(sol); err != nil {
		return nil, err
	}
	if s.RowValues, err = t.GetXc(sol); err != nil {
		return nil, err
	}
	if s.Objective, err = t.GetPrimalObj(sol); err != nil {
		return nil, err
	}
	if sol == SolItg {
		return s, nil
	}

	if s.RowDuals, err = t.GetY(sol); err != nil {
		return nil, err
	}
	slx, err := t.GetSlx(sol)
	if err != nil {
		return nil, err
	}
	sux, err := t.GetSux(sol)
	if err != nil {
		return nil, err
	}
	s.ColDuals = make([]float64, len(slx))
	for j := range slx {
		s.ColDuals[j] = slx[j] - sux[j]
	}
	if s.DualObjective, err = t.GetDualObj(sol); err != nil {
		return nil, err
	}
	return s, nil
}
