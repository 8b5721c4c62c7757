//go:build mosek

package mosek

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
)

// lpModel is the textbook LP used by several tests.
//
//	Min    f  =  x_0 +  x_1 + 3
//	s.t.                x_1 <= 7
//	       5 <=  x_0 + 2x_1 <= 15
//	       6 <= 3x_0 + 2x_1
//	0 <= x_0 <= 4; 1 <= x_1
func lpModel() Model {
	return Model{
		Offset:   3.0,
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 1.0},
		ColUpper: []float64{4.0, 1e30},
		ConstMatrix: []Nonzero{
			{0, 1, 1.0},
			{1, 0, 1.0},
			{1, 1, 2.0},
			{2, 0, 3.0},
			{2, 1, 2.0},
		},
		RowLower: []float64{-1e30, 5.0, 6.0},
		RowUpper: []float64{7.0, 15.0, 1e30},
	}
}

func TestLP(t *testing.T) {
	model := lpModel()

	sol, err := model.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.SolSta)
	}

	if !almostEqual(sol.ColValues[0], 0.5, 0.01) {
		t.Errorf("x0 = %f, expected 0.5", sol.ColValues[0])
	}
	if !almostEqual(sol.ColValues[1], 2.25, 0.01) {
		t.Errorf("x1 = %f, expected 2.25", sol.ColValues[1])
	}
	if !almostEqual(sol.Objective, 5.75, 0.01) {
		t.Errorf("Objective = %f, expected 5.75", sol.Objective)
	}
	if len(sol.RowDuals) != 3 {
		t.Errorf("len(RowDuals) = %d, expected 3", len(sol.RowDuals))
	}
}

func TestLPMaximize(t *testing.T) {
	model := lpModel()
	model.Maximize = true

	sol, err := model.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.SolSta)
	}

	if !almostEqual(sol.ColValues[0], 4.0, 0.01) {
		t.Errorf("x0 = %f, expected 4.0", sol.ColValues[0])
	}
	if !almostEqual(sol.ColValues[1], 5.5, 0.01) {
		t.Errorf("x1 = %f, expected 5.5", sol.ColValues[1])
	}
	if !almostEqual(sol.Objective, 12.5, 0.01) {
		t.Errorf("Objective = %f, expected 12.5", sol.Objective)
	}
}

func TestMIP(t *testing.T) {
	model := lpModel()
	model.Maximize = true
	model.VarTypes = []VariableType{Integer, Integer}

	sol, err := model.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if sol.SolType != SolItg {
		t.Errorf("SolType = %s, expected integer solution", sol.SolType)
	}
	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.SolSta)
	}

	if !almostEqual(sol.ColValues[0], 4.0, 0.01) {
		t.Errorf("x0 = %f, expected 4.0", sol.ColValues[0])
	}
	if !almostEqual(sol.ColValues[1], 5.0, 0.01) {
		t.Errorf("x1 = %f, expected 5.0", sol.ColValues[1])
	}
	if !almostEqual(sol.Objective, 12.0, 0.01) {
		t.Errorf("Objective = %f, expected 12.0", sol.Objective)
	}
}

// TestConic solves
//
//	maximize   x + y
//	subject to t >= ||(x, y)||, t = 1
//
// whose optimum is x = y = 1/sqrt(2).
func TestConic(t *testing.T) {
	model := Model{
		Maximize: true,
		ColCosts: []float64{0, 1, 1},
		ColLower: []float64{1, -1e30, -1e30},
		ColUpper: []float64{1, 1e30, 1e30},
	}
	model.AddQuadraticCone(0, 1, 2)

	sol, err := model.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.SolType != SolItr {
		t.Errorf("SolType = %s, expected interior solution", sol.SolType)
	}
	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.SolSta)
	}
	want := 1 / math.Sqrt2
	if !almostEqual(sol.ColValues[1], want, 1e-5) || !almostEqual(sol.ColValues[2], want, 1e-5) {
		t.Errorf("x, y = %f, %f, expected %f", sol.ColValues[1], sol.ColValues[2], want)
	}
}

func TestDiceProblem(t *testing.T) {
	model := Model{
		Maximize: true,
		VarTypes: []VariableType{Integer, Integer, Integer},
		ColCosts: []float64{1.0, 1.0, 1.0},
		ColLower: []float64{1.0, 1.0, 1.0},
		ColUpper: []float64{6.0, 6.0, 6.0},
	}
	// A - 3B + 2C = 0 (from A - B = 2(B - C))
	model.AddDenseRow(0.0, []float64{1.0, -3.0, 2.0}, 0.0)
	// B - C >= 1
	model.AddDenseRow(1.0, []float64{0.0, 1.0, -1.0}, math.Inf(1))

	sol, err := model.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.SolSta)
	}
	if !almostEqual(sol.Objective, 13.0, 0.01) {
		t.Errorf("Objective = %f, expected 13.0", sol.Objective)
	}
}

func TestInfeasible(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0},
		ColLower: []float64{0.0},
		ColUpper: []float64{10.0},
	}
	model.AddDenseRow(5.0, []float64{1.0}, math.Inf(1))
	model.AddDenseRow(math.Inf(-1), []float64{1.0}, 3.0)

	sol, err := model.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsInfeasible() {
		t.Errorf("Expected infeasible, got %s / %s", sol.SolSta, sol.ProSta)
	}
}

// TestLowLevelAPI builds a small LP through the task API.
func TestLowLevelAPI(t *testing.T) {
	task, err := NewTask(nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	defer task.Close()

	// 0 <= x0 <= 10, 0 <= x1 <= 10
	if err := task.AppendVars(2); err != nil {
		t.Fatalf("AppendVars failed: %v", err)
	}
	if err := task.PutVarBoundSliceConst(0, 2, BkRa, 0, 10); err != nil {
		t.Fatalf("PutVarBoundSliceConst failed: %v", err)
	}
	if err := task.PutCSlice(0, 2, []float64{1.0, 1.0}); err != nil {
		t.Fatalf("PutCSlice failed: %v", err)
	}

	// 5 <= x0 + 2*x1 <= 15
	if err := task.AppendCons(1); err != nil {
		t.Fatalf("AppendCons failed: %v", err)
	}
	if err := task.PutARow(0, []int{0, 1}, []float64{1.0, 2.0}); err != nil {
		t.Fatalf("PutARow failed: %v", err)
	}
	if err := task.PutConBound(0, BkRa, 5, 15); err != nil {
		t.Fatalf("PutConBound failed: %v", err)
	}

	trm, err := task.Optimize()
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if trm != ResOK {
		t.Errorf("termination = %s, expected MSK_RES_OK", trm)
	}

	xx, err := task.GetXx(SolItr)
	if err != nil {
		t.Fatalf("GetXx failed: %v", err)
	}
	if !almostEqual(xx[0], 0.0, 1e-6) || !almostEqual(xx[1], 2.5, 1e-6) {
		t.Errorf("x = %v, expected [0 2.5]", xx)
	}

	sub, val, err := task.GetARow(0)
	if err != nil {
		t.Fatalf("GetARow failed: %v", err)
	}
	if len(sub) != 2 || len(val) != 2 {
		t.Errorf("GetARow returned %d/%d entries, expected 2", len(sub), len(val))
	}
}

func TestCSliceRoundTrip(t *testing.T) {
	task, err := NewTask(nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	defer task.Close()

	c := []float64{1.5, -2.25, 0, math.Pi, 1e-300}
	if err := task.AppendVars(len(c)); err != nil {
		t.Fatalf("AppendVars failed: %v", err)
	}
	if err := task.PutCSlice(0, len(c), c); err != nil {
		t.Fatalf("PutCSlice failed: %v", err)
	}
	got, err := task.GetCSlice(0, len(c))
	if err != nil {
		t.Fatalf("GetCSlice failed: %v", err)
	}
	if len(got) != len(c) {
		t.Fatalf("len = %d, expected %d", len(got), len(c))
	}
	for i := range c {
		if math.Float64bits(got[i]) != math.Float64bits(c[i]) {
			t.Errorf("c[%d] = %v, expected %v", i, got[i], c[i])
		}
	}
}

func TestNativeErrors(t *testing.T) {
	task, err := NewTask(nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	defer task.Close()

	err = task.PutCj(3, 1.0)
	if err == nil {
		t.Fatal("expected an index error")
	}
	if CodeOf(err).Class() != ResponseErr {
		t.Errorf("class = %s, expected error", CodeOf(err).Class())
	}

	if err := task.PutIntParam("MSK_IPAR_NO_SUCH_PARAMETER", 1); err == nil {
		t.Error("expected an unknown parameter error")
	}
}

func TestParametersAndNames(t *testing.T) {
	task, err := NewTask(nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	defer task.Close()

	if err := task.PutIntParam(IParNumThreads, 2); err != nil {
		t.Fatalf("PutIntParam failed: %v", err)
	}
	n, err := task.GetIntParam(IParNumThreads)
	if err != nil || n != 2 {
		t.Errorf("GetIntParam = %d, %v, expected 2", n, err)
	}
	if err := task.SetParam(string(DParOptimizerMaxTime), "12.5"); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	v, err := task.GetDouParam(DParOptimizerMaxTime)
	if err != nil || v != 12.5 {
		t.Errorf("GetDouParam = %f, %v, expected 12.5", v, err)
	}

	if err := task.AppendVars(1); err != nil {
		t.Fatal(err)
	}
	if err := task.PutVarName(0, "weight"); err != nil {
		t.Fatal(err)
	}
	name, err := task.GetVarName(0)
	if err != nil || name != "weight" {
		t.Errorf("GetVarName = %q, %v", name, err)
	}
}

func TestWriteReadData(t *testing.T) {
	model := lpModel()
	model.ColNames = []string{"x0", "x1"}

	task, err := NewTask(nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	defer task.Close()
	if err := model.Build(task); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "lp.ptf")
	if err := task.WriteData(path); err != nil {
		t.Fatalf("WriteData failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	other, err := NewTask(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer other.Close()
	if err := other.ReadPTFString(string(data)); err != nil {
		t.Fatalf("ReadPTFString failed: %v", err)
	}
	if n, _ := other.NumVar(); n != 2 {
		t.Errorf("NumVar = %d, expected 2", n)
	}
	if n, _ := other.NumCon(); n != 3 {
		t.Errorf("NumCon = %d, expected 3", n)
	}
}

func TestStreamHandler(t *testing.T) {
	task, err := NewTask(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer task.Close()

	var out strings.Builder
	if err := task.SetStreamHandler(StreamLog, func(s string) { out.WriteString(s) }); err != nil {
		t.Fatalf("SetStreamHandler failed: %v", err)
	}
	model := lpModel()
	if err := model.Build(task); err != nil {
		t.Fatal(err)
	}
	if _, err := task.Optimize(); err != nil {
		t.Fatal(err)
	}
	if out.Len() == 0 {
		t.Error("expected solver log output")
	}
}

func TestLoggerDetachFlushesTail(t *testing.T) {
	task, err := NewTask(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer task.Close()

	h := memory.New()
	if err := task.SetLogger(&log.Logger{Handler: h, Level: log.DebugLevel}); err != nil {
		t.Fatal(err)
	}
	task.splitters[StreamLog].write("Optimizer terminated. Time: 0.01")
	if len(h.Entries) != 0 {
		t.Fatalf("partial line logged early: %v", h.Entries)
	}
	if err := task.SetStreamHandler(StreamLog, nil); err != nil {
		t.Fatal(err)
	}
	if len(h.Entries) != 1 || h.Entries[0].Message != "Optimizer terminated. Time: 0.01" {
		t.Errorf("entries = %v, expected the tail", h.Entries)
	}
}

func TestOptimizeBatch(t *testing.T) {
	env, err := NewEnv()
	if err != nil {
		t.Fatalf("NewEnv failed: %v", err)
	}
	defer env.Close()

	tasks := make([]*Task, 3)
	for i := range tasks {
		task, err := env.NewTask()
		if err != nil {
			t.Fatal(err)
		}
		defer task.Close()
		model := lpModel()
		if err := model.Build(task); err != nil {
			t.Fatal(err)
		}
		tasks[i] = task
	}

	results, err := env.OptimizeBatch(tasks, BatchOptions{NumThreads: 2})
	if err != nil {
		t.Fatalf("OptimizeBatch failed: %v", err)
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("task %d: %v", i, r.Err)
		}
		obj, err := tasks[i].GetPrimalObj(SolItr)
		if err != nil || !almostEqual(obj, 5.75, 1e-4) {
			t.Errorf("task %d objective = %f, %v", i, obj, err)
		}
	}
}

func TestVersion(t *testing.T) {
	v, err := LibraryVersion()
	if err != nil {
		t.Fatalf("LibraryVersion failed: %v", err)
	}
	if v.Major < 10 {
		t.Errorf("version %s, expected MOSEK 10 or later", v)
	}
}

func TestAsyncWaitCancelled(t *testing.T) {
	addr := os.Getenv("MOSEK_OPTSERVER")
	if addr == "" {
		t.Skip("MOSEK_OPTSERVER not set")
	}
	task, err := NewTask(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer task.Close()
	model := lpModel()
	if err := model.Build(task); err != nil {
		t.Fatal(err)
	}
	ticket, err := task.AsyncOptimize(addr, "")
	if err != nil {
		t.Fatalf("AsyncOptimize failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	st, err := task.AsyncWait(ctx, addr, "", ticket, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("AsyncWait failed: %v", err)
	}
	if !st.Available {
		t.Error("expected result to be available")
	}
}

func BenchmarkLPSolve(b *testing.B) {
	model := Model{
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 0.0},
		ColUpper: []float64{10.0, 10.0},
	}
	model.AddDenseRow(1.0, []float64{1.0, 1.0}, 5.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := model.Solve()
		if err != nil {
			b.Fatal(err)
		}
	}
}
