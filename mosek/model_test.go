package mosek

import (
	"math"
	"strings"
	"testing"
)

func TestModelDimensions(t *testing.T) {
	model := Model{
		ColCosts: []float64{1, 2},
	}
	if r := model.AddDenseRow(-1e30, []float64{0, 1, 0, 3}, 7); r != 0 {
		t.Errorf("first row index = %d", r)
	}
	if r := model.AddSparseRow(0, []int{0, 1}, []float64{1, 0}, 5); r != 1 {
		t.Errorf("second row index = %d", r)
	}

	if n := model.NumVars(); n != 4 {
		t.Errorf("NumVars = %d, expected 4", n)
	}
	if n := model.NumConstraints(); n != 2 {
		t.Errorf("NumConstraints = %d, expected 2", n)
	}
	// zero coefficients are dropped
	if len(model.ConstMatrix) != 3 {
		t.Errorf("len(ConstMatrix) = %d, expected 3", len(model.ConstMatrix))
	}
}

func TestModelRowHelpers(t *testing.T) {
	var model Model
	model.AddEqRow([]float64{1, 1}, 1)
	model.AddLeRow([]float64{1, 0}, 0.5)
	model.AddGeRow([]float64{0, 1}, 0.1)

	if model.RowLower[0] != 1 || model.RowUpper[0] != 1 {
		t.Errorf("eq row bounds = [%g, %g]", model.RowLower[0], model.RowUpper[0])
	}
	if !math.IsInf(model.RowLower[1], -1) || model.RowUpper[1] != 0.5 {
		t.Errorf("le row bounds = [%g, %g]", model.RowLower[1], model.RowUpper[1])
	}
	if model.RowLower[2] != 0.1 || !math.IsInf(model.RowUpper[2], 1) {
		t.Errorf("ge row bounds = [%g, %g]", model.RowLower[2], model.RowUpper[2])
	}
}

func TestModelCones(t *testing.T) {
	var model Model
	k := model.AddQuadraticCone(3, 0, 1)
	if k != 0 {
		t.Errorf("cone index = %d", k)
	}
	if n := model.NumVars(); n != 4 {
		t.Errorf("NumVars = %d, expected 4 (cone references x3)", n)
	}
	if err := model.validateCones(4); err != nil {
		t.Errorf("validateCones failed: %v", err)
	}

	model.AddCone(ConeConstraint{Domain: DomainRPlus, Dim: 1, F: []Nonzero{{1, 0, 1}}})
	if err := model.validateCones(4); err == nil {
		t.Error("expected error for entry beyond cone dimension")
	}
}

func TestModelConeConstantLength(t *testing.T) {
	model := Model{Cones: []ConeConstraint{{Domain: DomainRZero, Dim: 2, G: []float64{1}}}}
	if err := model.validateCones(1); err == nil {
		t.Error("expected error for mismatched G")
	}
}

func TestModelShortBounds(t *testing.T) {
	tests := []struct {
		field string
		model Model
	}{
		{"ColLower", Model{ColCosts: []float64{1, 1}, ColLower: []float64{0}}},
		{"ColUpper", Model{ColCosts: []float64{1, 1}, ColUpper: []float64{1}}},
		{"RowUpper", Model{
			ColCosts:    []float64{1},
			RowLower:    []float64{0, 0},
			RowUpper:    []float64{1},
			ConstMatrix: []Nonzero{{Row: 1, Col: 0, Val: 1}},
		}},
	}
	for _, tt := range tests {
		err := tt.model.Build(&Task{})
		if err == nil || !strings.Contains(err.Error(), tt.field) {
			t.Errorf("short %s: err = %v", tt.field, err)
		}
	}
}

func TestEmptyModel(t *testing.T) {
	model := Model{Offset: 2}

	sol, err := model.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal for empty model, got %s", sol.SolSta)
	}
	if sol.Objective != 2 {
		t.Errorf("Objective = %g, expected the offset", sol.Objective)
	}
}

func TestGetSolutionError(t *testing.T) {
	var task Task
	sol, err := task.GetSolution(SolItr)
	if err == nil {
		t.Fatal("expected error on closed task")
	}
	if sol != nil {
		t.Errorf("GetSolution returned %+v with error %v", sol, err)
	}
}

func TestSolutionPredicates(t *testing.T) {
	s := &Solution{SolSta: SolStaPrimInfeasCer, ProSta: ProStaPrimInfeas}
	if !s.IsInfeasible() || s.IsUnbounded() || s.HasSolution() {
		t.Error("primal infeasible certificate misclassified")
	}
	s = &Solution{SolSta: SolStaDualInfeasCer, ProSta: ProStaDualInfeas}
	if !s.IsUnbounded() || s.IsInfeasible() {
		t.Error("dual infeasible certificate misclassified")
	}
	s = &Solution{SolSta: SolStaPrimFeas, Termination: ResTrmMaxTime, ColValues: []float64{4}}
	if !s.HasSolution() || !s.IsTimeLimit() || s.IsOptimal() {
		t.Error("time-limited feasible solution misclassified")
	}
	if s.Value(0) != 4 || s.Value(1) != 0 || s.Value(-1) != 0 {
		t.Error("Value out of range handling is wrong")
	}
}
