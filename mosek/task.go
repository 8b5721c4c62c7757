package mosek

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

// ----------------------------------------------------------------------------
// Task (Low-Level API)
// ----------------------------------------------------------------------------

// Task holds one optimization problem, its parameters and its solutions.
// Methods map onto the MOSEK C functions of the same name; indices are
// zero-based and slices are half-open [first, last).
//
// Always call Close() when done to release resources:
//
//	task, _ := NewTask(env)
//	defer task.Close()
type Task struct {
	ptr     unsafe.Pointer
	env     *Env
	streams map[StreamType]uintptr

	// line splitters installed by SetLogger, flushed when detached
	splitters map[StreamType]*lineSplitter
}

// NewTask creates an empty task. A nil env lets MOSEK use an implicit
// global environment.
func NewTask(env *Env) (*Task, error) {
	if !linked {
		return nil, ErrNotLinked
	}
	if env != nil && env.ptr == nil {
		return nil, newErrorMsg("NewTask", "environment is closed")
	}
	ptr, r := nativeMakeTask(env.handle())
	if err := newError("NewTask", r); err != nil {
		return nil, err
	}
	if ptr == nil {
		return nil, newErrorMsg("NewTask", "failed to create MOSEK task")
	}
	return newTask(ptr, env), nil
}

func newTask(ptr unsafe.Pointer, env *Env) *Task {
	t := &Task{ptr: ptr, env: env}
	runtime.SetFinalizer(t, (*Task).Close)
	return t
}

// Close releases the task and any stream handlers attached to it.
// It is safe to call Close multiple times.
func (t *Task) Close() {
	if t.ptr != nil {
		nativeDeleteTask(t.ptr)
		t.ptr = nil
	}
	for s, h := range t.streams {
		deleteStreamHandle(h)
		delete(t.streams, s)
	}
	for s := range t.splitters {
		t.flushSplitter(s)
	}
	t.env = nil
}

// Clone returns a deep copy of the task. Stream handlers are not copied.
func (t *Task) Clone() (*Task, error) {
	if err := t.live("Clone"); err != nil {
		return nil, err
	}
	ptr, r := nativeCloneTask(t.ptr)
	if err := t.check("Clone", r); err != nil {
		return nil, err
	}
	return newTask(ptr, t.env), nil
}

// live fails when the task has been closed.
func (t *Task) live(op string) error {
	if t == nil || t.ptr == nil {
		return newErrorMsg(op, "task is closed")
	}
	return nil
}

// check converts a response code into an error, attaching the message
// MOSEK recorded for the failed call.
func (t *Task) check(op string, r Rescode) error {
	err := newError(op, r)
	if err == nil {
		return nil
	}
	if t != nil && t.ptr != nil {
		if last, msg := nativeLastError(t.ptr); last == r && msg != "" {
			err.(*Error).Msg = msg
		}
	}
	return err
}

// ----------------------------------------------------------------------------
// Argument conversion
// ----------------------------------------------------------------------------

func toInt32(op, what string, v int) (int32, error) {
	if v < 0 || v > math.MaxInt32 {
		return 0, newErrorMsg(op, fmt.Sprintf("%s %d out of range", what, v))
	}
	return int32(v), nil
}

func toInt32s(op, what string, vs []int) ([]int32, error) {
	out := make([]int32, len(vs))
	for i, v := range vs {
		c, err := toInt32(op, what, v)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// span validates a half-open range against a slice length.
func span(op string, first, last, n int) (int32, int32, error) {
	if first < 0 || last < first {
		return 0, 0, newErrorMsg(op, fmt.Sprintf("invalid range [%d, %d)", first, last))
	}
	if n >= 0 && last-first != n {
		return 0, 0, newErrorMsg(op, fmt.Sprintf("range [%d, %d) needs %d values, got %d", first, last, last-first, n))
	}
	f, err := toInt32(op, "first", first)
	if err != nil {
		return 0, 0, err
	}
	l, err := toInt32(op, "last", last)
	if err != nil {
		return 0, 0, err
	}
	return f, l, nil
}

func sameLen(op string, lens ...int) error {
	for _, n := range lens[1:] {
		if n != lens[0] {
			return newErrorMsg(op, fmt.Sprintf("argument lengths differ: %v", lens))
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Dimensions
// ----------------------------------------------------------------------------

// AppendVars appends num variables. New variables are fixed at zero.
func (t *Task) AppendVars(num int) error {
	if err := t.live("AppendVars"); err != nil {
		return err
	}
	n, err := toInt32("AppendVars", "count", num)
	if err != nil {
		return err
	}
	return t.check("AppendVars", nativeAppendVars(t.ptr, n))
}

// AppendCons appends num empty constraints.
func (t *Task) AppendCons(num int) error {
	if err := t.live("AppendCons"); err != nil {
		return err
	}
	n, err := toInt32("AppendCons", "count", num)
	if err != nil {
		return err
	}
	return t.check("AppendCons", nativeAppendCons(t.ptr, n))
}

// AppendAfes appends num affine expressions, all initially zero.
func (t *Task) AppendAfes(num int64) error {
	if err := t.live("AppendAfes"); err != nil {
		return err
	}
	if num < 0 {
		return newErrorMsg("AppendAfes", "negative count")
	}
	return t.check("AppendAfes", nativeAppendAfes(t.ptr, num))
}

// NumVar returns the number of variables.
func (t *Task) NumVar() (int, error) {
	if err := t.live("NumVar"); err != nil {
		return 0, err
	}
	n, r := nativeNumVar(t.ptr)
	return int(n), t.check("NumVar", r)
}

// NumCon returns the number of constraints.
func (t *Task) NumCon() (int, error) {
	if err := t.live("NumCon"); err != nil {
		return 0, err
	}
	n, r := nativeNumCon(t.ptr)
	return int(n), t.check("NumCon", r)
}

// NumAfe returns the number of affine expressions.
func (t *Task) NumAfe() (int64, error) {
	if err := t.live("NumAfe"); err != nil {
		return 0, err
	}
	n, r := nativeNumAfe(t.ptr)
	return n, t.check("NumAfe", r)
}

// NumAcc returns the number of affine conic constraints.
func (t *Task) NumAcc() (int64, error) {
	if err := t.live("NumAcc"); err != nil {
		return 0, err
	}
	n, r := nativeNumAcc(t.ptr)
	return n, t.check("NumAcc", r)
}

// RemoveVars deletes the listed variables. Remaining variables are
// renumbered.
func (t *Task) RemoveVars(subset []int) error {
	if err := t.live("RemoveVars"); err != nil {
		return err
	}
	sub, err := toInt32s("RemoveVars", "variable", subset)
	if err != nil {
		return err
	}
	return t.check("RemoveVars", nativeRemoveVars(t.ptr, sub))
}

// RemoveCons deletes the listed constraints.
func (t *Task) RemoveCons(subset []int) error {
	if err := t.live("RemoveCons"); err != nil {
		return err
	}
	sub, err := toInt32s("RemoveCons", "constraint", subset)
	if err != nil {
		return err
	}
	return t.check("RemoveCons", nativeRemoveCons(t.ptr, sub))
}

// ----------------------------------------------------------------------------
// Objective
// ----------------------------------------------------------------------------

// PutObjSense sets the objective sense.
func (t *Task) PutObjSense(sense ObjSense) error {
	if err := t.live("PutObjSense"); err != nil {
		return err
	}
	return t.check("PutObjSense", nativePutObjSense(t.ptr, sense))
}

// GetObjSense returns the objective sense.
func (t *Task) GetObjSense() (ObjSense, error) {
	if err := t.live("GetObjSense"); err != nil {
		return 0, err
	}
	s, r := nativeGetObjSense(t.ptr)
	return s, t.check("GetObjSense", r)
}

// PutCj sets the objective coefficient of variable j.
func (t *Task) PutCj(j int, cj float64) error {
	if err := t.live("PutCj"); err != nil {
		return err
	}
	cj32, err := toInt32("PutCj", "variable", j)
	if err != nil {
		return err
	}
	return t.check("PutCj", nativePutCj(t.ptr, cj32, cj))
}

// PutCSlice sets the objective coefficients of variables [first, last).
func (t *Task) PutCSlice(first, last int, c []float64) error {
	if err := t.live("PutCSlice"); err != nil {
		return err
	}
	f, l, err := span("PutCSlice", first, last, len(c))
	if err != nil {
		return err
	}
	return t.check("PutCSlice", nativePutCSlice(t.ptr, f, l, c))
}

// GetCSlice returns the objective coefficients of variables [first, last).
func (t *Task) GetCSlice(first, last int) ([]float64, error) {
	if err := t.live("GetCSlice"); err != nil {
		return nil, err
	}
	f, l, err := span("GetCSlice", first, last, -1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, last-first)
	if err := t.check("GetCSlice", nativeGetCSlice(t.ptr, f, l, out)); err != nil {
		return nil, err
	}
	return out, nil
}

// PutCFix sets the constant term of the objective.
func (t *Task) PutCFix(cfix float64) error {
	if err := t.live("PutCFix"); err != nil {
		return err
	}
	return t.check("PutCFix", nativePutCFix(t.ptr, cfix))
}

// PutObjName names the objective.
func (t *Task) PutObjName(name string) error {
	if err := t.live("PutObjName"); err != nil {
		return err
	}
	return t.check("PutObjName", nativePutObjName(t.ptr, name))
}

// ----------------------------------------------------------------------------
// Bounds
// ----------------------------------------------------------------------------

// PutVarBound sets the bound of variable j.
func (t *Task) PutVarBound(j int, bk BoundKey, bl, bu float64) error {
	if err := t.live("PutVarBound"); err != nil {
		return err
	}
	j32, err := toInt32("PutVarBound", "variable", j)
	if err != nil {
		return err
	}
	return t.check("PutVarBound", nativePutVarBound(t.ptr, j32, bk, bl, bu))
}

// PutVarBoundSlice sets the bounds of variables [first, last).
func (t *Task) PutVarBoundSlice(first, last int, bk []BoundKey, bl, bu []float64) error {
	if err := t.live("PutVarBoundSlice"); err != nil {
		return err
	}
	if err := sameLen("PutVarBoundSlice", len(bk), len(bl), len(bu)); err != nil {
		return err
	}
	f, l, err := span("PutVarBoundSlice", first, last, len(bk))
	if err != nil {
		return err
	}
	return t.check("PutVarBoundSlice", nativePutVarBoundSlice(t.ptr, f, l, bk, bl, bu))
}

// PutVarBoundSliceConst applies one bound to variables [first, last).
func (t *Task) PutVarBoundSliceConst(first, last int, bk BoundKey, bl, bu float64) error {
	if err := t.live("PutVarBoundSliceConst"); err != nil {
		return err
	}
	f, l, err := span("PutVarBoundSliceConst", first, last, -1)
	if err != nil {
		return err
	}
	return t.check("PutVarBoundSliceConst", nativePutVarBoundSliceConst(t.ptr, f, l, bk, bl, bu))
}

// PutConBound sets the bound of constraint i.
func (t *Task) PutConBound(i int, bk BoundKey, bl, bu float64) error {
	if err := t.live("PutConBound"); err != nil {
		return err
	}
	i32, err := toInt32("PutConBound", "constraint", i)
	if err != nil {
		return err
	}
	return t.check("PutConBound", nativePutConBound(t.ptr, i32, bk, bl, bu))
}

// PutConBoundSlice sets the bounds of constraints [first, last).
func (t *Task) PutConBoundSlice(first, last int, bk []BoundKey, bl, bu []float64) error {
	if err := t.live("PutConBoundSlice"); err != nil {
		return err
	}
	if err := sameLen("PutConBoundSlice", len(bk), len(bl), len(bu)); err != nil {
		return err
	}
	f, l, err := span("PutConBoundSlice", first, last, len(bk))
	if err != nil {
		return err
	}
	return t.check("PutConBoundSlice", nativePutConBoundSlice(t.ptr, f, l, bk, bl, bu))
}

// GetVarBound returns the bound of variable j.
func (t *Task) GetVarBound(j int) (BoundKey, float64, float64, error) {
	if err := t.live("GetVarBound"); err != nil {
		return 0, 0, 0, err
	}
	j32, err := toInt32("GetVarBound", "variable", j)
	if err != nil {
		return 0, 0, 0, err
	}
	bk, bl, bu, r := nativeGetVarBound(t.ptr, j32)
	return bk, bl, bu, t.check("GetVarBound", r)
}

// ----------------------------------------------------------------------------
// Constraint matrix
// ----------------------------------------------------------------------------

// PutAij sets a single coefficient of the constraint matrix.
func (t *Task) PutAij(i, j int, aij float64) error {
	if err := t.live("PutAij"); err != nil {
		return err
	}
	i32, err := toInt32("PutAij", "constraint", i)
	if err != nil {
		return err
	}
	j32, err := toInt32("PutAij", "variable", j)
	if err != nil {
		return err
	}
	return t.check("PutAij", nativePutAij(t.ptr, i32, j32, aij))
}

// PutAijList sets a list of constraint matrix coefficients.
func (t *Task) PutAijList(subi, subj []int, val []float64) error {
	if err := t.live("PutAijList"); err != nil {
		return err
	}
	if err := sameLen("PutAijList", len(subi), len(subj), len(val)); err != nil {
		return err
	}
	si, err := toInt32s("PutAijList", "constraint", subi)
	if err != nil {
		return err
	}
	sj, err := toInt32s("PutAijList", "variable", subj)
	if err != nil {
		return err
	}
	return t.check("PutAijList", nativePutAijList(t.ptr, si, sj, val))
}

// PutARow replaces row i of the constraint matrix.
func (t *Task) PutARow(i int, sub []int, val []float64) error {
	if err := t.live("PutARow"); err != nil {
		return err
	}
	if err := sameLen("PutARow", len(sub), len(val)); err != nil {
		return err
	}
	i32, err := toInt32("PutARow", "constraint", i)
	if err != nil {
		return err
	}
	s, err := toInt32s("PutARow", "variable", sub)
	if err != nil {
		return err
	}
	return t.check("PutARow", nativePutARow(t.ptr, i32, s, val))
}

// PutARowList replaces several rows given in compressed sparse row form:
// row rows[k] holds the entries asub/aval[ptrb[k]:ptre[k]].
func (t *Task) PutARowList(rows []int, ptrb, ptre []int64, asub []int, aval []float64) error {
	if err := t.live("PutARowList"); err != nil {
		return err
	}
	if err := sameLen("PutARowList", len(rows), len(ptrb), len(ptre)); err != nil {
		return err
	}
	if err := sameLen("PutARowList", len(asub), len(aval)); err != nil {
		return err
	}
	for k := range rows {
		if ptrb[k] < 0 || ptre[k] < ptrb[k] || ptre[k] > int64(len(asub)) {
			return newErrorMsg("PutARowList", fmt.Sprintf("row %d: invalid pointers [%d, %d)", rows[k], ptrb[k], ptre[k]))
		}
	}
	r32, err := toInt32s("PutARowList", "constraint", rows)
	if err != nil {
		return err
	}
	s32, err := toInt32s("PutARowList", "variable", asub)
	if err != nil {
		return err
	}
	return t.check("PutARowList", nativePutARowList(t.ptr, r32, ptrb, ptre, s32, aval))
}

// GetARow returns the nonzeros of row i.
func (t *Task) GetARow(i int) ([]int, []float64, error) {
	if err := t.live("GetARow"); err != nil {
		return nil, nil, err
	}
	i32, err := toInt32("GetARow", "constraint", i)
	if err != nil {
		return nil, nil, err
	}
	nz, r := nativeGetARowNumNz(t.ptr, i32)
	if err := t.check("GetARow", r); err != nil {
		return nil, nil, err
	}
	sub := make([]int32, nz)
	val := make([]float64, nz)
	got, r := nativeGetARow(t.ptr, i32, sub, val)
	if err := t.check("GetARow", r); err != nil {
		return nil, nil, err
	}
	out := make([]int, got)
	for k := range out {
		out[k] = int(sub[k])
	}
	return out, val[:got], nil
}

// ----------------------------------------------------------------------------
// Integrality and names
// ----------------------------------------------------------------------------

// PutVarType sets the type of variable j.
func (t *Task) PutVarType(j int, vt VariableType) error {
	if err := t.live("PutVarType"); err != nil {
		return err
	}
	j32, err := toInt32("PutVarType", "variable", j)
	if err != nil {
		return err
	}
	return t.check("PutVarType", nativePutVarType(t.ptr, j32, vt))
}

// PutVarTypeList sets the types of the listed variables.
func (t *Task) PutVarTypeList(sub []int, vt []VariableType) error {
	if err := t.live("PutVarTypeList"); err != nil {
		return err
	}
	if err := sameLen("PutVarTypeList", len(sub), len(vt)); err != nil {
		return err
	}
	s, err := toInt32s("PutVarTypeList", "variable", sub)
	if err != nil {
		return err
	}
	return t.check("PutVarTypeList", nativePutVarTypeList(t.ptr, s, vt))
}

// PutTaskName names the task.
func (t *Task) PutTaskName(name string) error {
	if err := t.live("PutTaskName"); err != nil {
		return err
	}
	return t.check("PutTaskName", nativePutTaskName(t.ptr, name))
}

// PutVarName names variable j.
func (t *Task) PutVarName(j int, name string) error {
	if err := t.live("PutVarName"); err != nil {
		return err
	}
	j32, err := toInt32("PutVarName", "variable", j)
	if err != nil {
		return err
	}
	return t.check("PutVarName", nativePutVarName(t.ptr, j32, name))
}

// PutConName names constraint i.
func (t *Task) PutConName(i int, name string) error {
	if err := t.live("PutConName"); err != nil {
		return err
	}
	i32, err := toInt32("PutConName", "constraint", i)
	if err != nil {
		return err
	}
	return t.check("PutConName", nativePutConName(t.ptr, i32, name))
}

// PutAccName names an affine conic constraint.
func (t *Task) PutAccName(acc int64, name string) error {
	if err := t.live("PutAccName"); err != nil {
		return err
	}
	return t.check("PutAccName", nativePutAccName(t.ptr, acc, name))
}

// GetVarName returns the name of variable j.
func (t *Task) GetVarName(j int) (string, error) {
	if err := t.live("GetVarName"); err != nil {
		return "", err
	}
	j32, err := toInt32("GetVarName", "variable", j)
	if err != nil {
		return "", err
	}
	name, r := nativeGetVarName(t.ptr, j32)
	return name, t.check("GetVarName", r)
}

// ----------------------------------------------------------------------------
// Affine conic constraints
// ----------------------------------------------------------------------------

// PutAfeFEntryList sets entries of the F matrix: expression afeidx[k]
// gets coefficient val[k] on variable varidx[k].
func (t *Task) PutAfeFEntryList(afeidx []int64, varidx []int, val []float64) error {
	if err := t.live("PutAfeFEntryList"); err != nil {
		return err
	}
	if err := sameLen("PutAfeFEntryList", len(afeidx), len(varidx), len(val)); err != nil {
		return err
	}
	v32, err := toInt32s("PutAfeFEntryList", "variable", varidx)
	if err != nil {
		return err
	}
	return t.check("PutAfeFEntryList", nativePutAfeFEntryList(t.ptr, afeidx, v32, val))
}

// PutAfeG sets the constant term of one affine expression.
func (t *Task) PutAfeG(afe int64, g float64) error {
	if err := t.live("PutAfeG"); err != nil {
		return err
	}
	return t.check("PutAfeG", nativePutAfeG(t.ptr, afe, g))
}

// PutAfeGSlice sets the constant terms of expressions [first, last).
func (t *Task) PutAfeGSlice(first, last int64, g []float64) error {
	if err := t.live("PutAfeGSlice"); err != nil {
		return err
	}
	if first < 0 || last < first || last-first != int64(len(g)) {
		return newErrorMsg("PutAfeGSlice", fmt.Sprintf("range [%d, %d) does not match %d values", first, last, len(g)))
	}
	return t.check("PutAfeGSlice", nativePutAfeGSlice(t.ptr, first, last, g))
}

func (t *Task) appendDomain(op string, kind DomainType, n int64, alpha []float64) (int64, error) {
	if err := t.live(op); err != nil {
		return -1, err
	}
	if n < 0 {
		return -1, newErrorMsg(op, "negative dimension")
	}
	dom, r := nativeAppendDomain(t.ptr, kind, n, alpha)
	if err := t.check(op, r); err != nil {
		return -1, err
	}
	return dom, nil
}

// AppendDomain appends a domain of the given type and dimension. alpha
// holds the weights of power cones and is ignored otherwise.
func (t *Task) AppendDomain(kind DomainType, n int64, alpha []float64) (int64, error) {
	if kind == DomainPrimalPowerCone || kind == DomainDualPowerCone {
		if len(alpha) == 0 || int64(len(alpha)) > n {
			return -1, newErrorMsg("AppendDomain", fmt.Sprintf("need 1..%d weights, got %d", n, len(alpha)))
		}
	} else {
		alpha = nil
	}
	return t.appendDomain("AppendDomain", kind, n, alpha)
}

// AppendRDomain appends the free domain of dimension n.
func (t *Task) AppendRDomain(n int64) (int64, error) {
	return t.appendDomain("AppendRDomain", DomainR, n, nil)
}

// AppendRZeroDomain appends the zero domain {0}^n.
func (t *Task) AppendRZeroDomain(n int64) (int64, error) {
	return t.appendDomain("AppendRZeroDomain", DomainRZero, n, nil)
}

// AppendRPlusDomain appends the nonnegative orthant of dimension n.
func (t *Task) AppendRPlusDomain(n int64) (int64, error) {
	return t.appendDomain("AppendRPlusDomain", DomainRPlus, n, nil)
}

// AppendRMinusDomain appends the nonpositive orthant of dimension n.
func (t *Task) AppendRMinusDomain(n int64) (int64, error) {
	return t.appendDomain("AppendRMinusDomain", DomainRMinus, n, nil)
}

// AppendQuadraticConeDomain appends a quadratic cone x0 >= ||x1:||.
func (t *Task) AppendQuadraticConeDomain(n int64) (int64, error) {
	return t.appendDomain("AppendQuadraticConeDomain", DomainQuadraticCone, n, nil)
}

// AppendRQuadraticConeDomain appends a rotated quadratic cone
// 2 x0 x1 >= ||x2:||^2.
func (t *Task) AppendRQuadraticConeDomain(n int64) (int64, error) {
	return t.appendDomain("AppendRQuadraticConeDomain", DomainRQuadraticCone, n, nil)
}

// AppendPrimalExpConeDomain appends the three-dimensional exponential cone.
func (t *Task) AppendPrimalExpConeDomain() (int64, error) {
	return t.appendDomain("AppendPrimalExpConeDomain", DomainPrimalExpCone, 3, nil)
}

// AppendPrimalGeoMeanConeDomain appends a geometric mean cone.
func (t *Task) AppendPrimalGeoMeanConeDomain(n int64) (int64, error) {
	return t.appendDomain("AppendPrimalGeoMeanConeDomain", DomainPrimalGeoMeanCone, n, nil)
}

// AppendPrimalPowerConeDomain appends a power cone of dimension n whose
// leading len(alpha) entries carry the given weights.
func (t *Task) AppendPrimalPowerConeDomain(n int64, alpha []float64) (int64, error) {
	if len(alpha) == 0 || int64(len(alpha)) > n {
		return -1, newErrorMsg("AppendPrimalPowerConeDomain",
			fmt.Sprintf("need 1..%d weights, got %d", n, len(alpha)))
	}
	return t.appendDomain("AppendPrimalPowerConeDomain", DomainPrimalPowerCone, n, alpha)
}

// AppendSvecPSDConeDomain appends a scaled vectorized PSD cone.
func (t *Task) AppendSvecPSDConeDomain(n int64) (int64, error) {
	return t.appendDomain("AppendSvecPSDConeDomain", DomainSvecPSDCone, n, nil)
}

// AppendAcc appends the constraint F[afeidx]x + g[afeidx] - b in domain dom.
// b may be nil.
func (t *Task) AppendAcc(dom int64, afeidx []int64, b []float64) error {
	if err := t.live("AppendAcc"); err != nil {
		return err
	}
	if b != nil && len(b) != len(afeidx) {
		return newErrorMsg("AppendAcc", fmt.Sprintf("%d expressions but %d offsets", len(afeidx), len(b)))
	}
	return t.check("AppendAcc", nativeAppendAcc(t.ptr, dom, afeidx, b))
}

// AppendAccSeq appends an affine conic constraint over the num consecutive
// expressions starting at first. b may be nil.
func (t *Task) AppendAccSeq(dom int64, num, first int64, b []float64) error {
	if err := t.live("AppendAccSeq"); err != nil {
		return err
	}
	if num < 0 || first < 0 {
		return newErrorMsg("AppendAccSeq", "negative index")
	}
	if b != nil && int64(len(b)) != num {
		return newErrorMsg("AppendAccSeq", fmt.Sprintf("%d expressions but %d offsets", num, len(b)))
	}
	return t.check("AppendAccSeq", nativeAppendAccSeq(t.ptr, dom, num, first, b))
}

// ----------------------------------------------------------------------------
// Parameters
// ----------------------------------------------------------------------------

// PutIntParam sets an integer parameter.
func (t *Task) PutIntParam(name IntParam, value int) error {
	if err := t.live("PutIntParam"); err != nil {
		return err
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return newErrorMsg("PutIntParam", fmt.Sprintf("%s: value %d out of range", name, value))
	}
	return t.check("PutIntParam", nativePutNaIntParam(t.ptr, string(name), int32(value)))
}

// PutDouParam sets a floating-point parameter.
func (t *Task) PutDouParam(name DouParam, value float64) error {
	if err := t.live("PutDouParam"); err != nil {
		return err
	}
	return t.check("PutDouParam", nativePutNaDouParam(t.ptr, string(name), value))
}

// PutStrParam sets a string parameter.
func (t *Task) PutStrParam(name StrParam, value string) error {
	if err := t.live("PutStrParam"); err != nil {
		return err
	}
	return t.check("PutStrParam", nativePutNaStrParam(t.ptr, string(name), value))
}

// SetParam sets any parameter from its textual form, for example
// SetParam("MSK_IPAR_OPTIMIZER", "MSK_OPTIMIZER_INTPNT").
func (t *Task) SetParam(name, value string) error {
	if err := t.live("SetParam"); err != nil {
		return err
	}
	return t.check("SetParam", nativePutParam(t.ptr, name, value))
}

// GetIntParam returns an integer parameter.
func (t *Task) GetIntParam(name IntParam) (int, error) {
	if err := t.live("GetIntParam"); err != nil {
		return 0, err
	}
	v, r := nativeGetNaIntParam(t.ptr, string(name))
	return int(v), t.check("GetIntParam", r)
}

// GetDouParam returns a floating-point parameter.
func (t *Task) GetDouParam(name DouParam) (float64, error) {
	if err := t.live("GetDouParam"); err != nil {
		return 0, err
	}
	v, r := nativeGetNaDouParam(t.ptr, string(name))
	return v, t.check("GetDouParam", r)
}

// ReadParamFile loads parameters from a MOSEK parameter file.
func (t *Task) ReadParamFile(filename string) error {
	if err := t.live("ReadParamFile"); err != nil {
		return err
	}
	return t.check("ReadParamFile", nativeReadParamFile(t.ptr, filename))
}

// ----------------------------------------------------------------------------
// Optimization
// ----------------------------------------------------------------------------

// Optimize solves the problem. The termination code reports why the
// optimizer stopped (ResOK or a ResTrm* code); it is returned even when
// err is nil.
func (t *Task) Optimize() (Rescode, error) {
	if err := t.live("Optimize"); err != nil {
		return ResOK, err
	}
	trm, r := nativeOptimize(t.ptr)
	return trm, t.check("Optimize", r)
}

// SolutionSummary writes a short solution report to the given stream.
func (t *Task) SolutionSummary(stream StreamType) error {
	if err := t.live("SolutionSummary"); err != nil {
		return err
	}
	return t.check("SolutionSummary", nativeSolutionSummary(t.ptr, stream))
}

// ----------------------------------------------------------------------------
// Information items
// ----------------------------------------------------------------------------

// GetIntInf returns an integer information item.
func (t *Task) GetIntInf(item IntInfItem) (int, error) {
	if err := t.live("GetIntInf"); err != nil {
		return 0, err
	}
	v, r := nativeGetNaIntInf(t.ptr, string(item))
	return int(v), t.check("GetIntInf", r)
}

// GetDouInf returns a floating-point information item.
func (t *Task) GetDouInf(item DouInfItem) (float64, error) {
	if err := t.live("GetDouInf"); err != nil {
		return 0, err
	}
	v, r := nativeGetNaDouInf(t.ptr, string(item))
	return v, t.check("GetDouInf", r)
}

// ----------------------------------------------------------------------------
// Files
// ----------------------------------------------------------------------------

// ReadData loads a problem file. The format follows the extension (.lp,
// .mps, .opf, .ptf, .task, .jtask, optionally compressed).
func (t *Task) ReadData(filename string) error {
	if err := t.live("ReadData"); err != nil {
		return err
	}
	return t.check("ReadData", nativeReadData(t.ptr, filename))
}

// WriteData saves the problem. The format follows the extension.
func (t *Task) WriteData(filename string) error {
	if err := t.live("WriteData"); err != nil {
		return err
	}
	return t.check("WriteData", nativeWriteData(t.ptr, filename))
}

// ReadPTFString loads a problem given in PTF text form.
func (t *Task) ReadPTFString(data string) error {
	if err := t.live("ReadPTFString"); err != nil {
		return err
	}
	return t.check("ReadPTFString", nativeReadPTFString(t.ptr, data))
}

// WriteSolution writes one solution to a file.
func (t *Task) WriteSolution(sol SolType, filename string) error {
	if err := t.live("WriteSolution"); err != nil {
		return err
	}
	return t.check("WriteSolution", nativeWriteSolution(t.ptr, sol, filename))
}
