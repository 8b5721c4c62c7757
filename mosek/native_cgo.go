//go:build mosek

package mosek

/*
#cgo LDFLAGS: -lmosek64

#include <stdlib.h>
#include <stdint.h>
#include "mosek.h"

extern void gomosekStream(uintptr_t handle, char *msg);

static void MSKAPI gomosek_stream(MSKuserhandle_t handle, const char *str) {
	gomosekStream((uintptr_t)handle, (char *)str);
}

static MSKrescodee gomosek_linkstream(MSKtask_t task, MSKstreamtypee whichstream, uintptr_t handle) {
	return MSK_linkfunctotaskstream(task, whichstream, (MSKuserhandle_t)handle, gomosek_stream);
}
*/
import "C"
import (
	"unsafe"
)

const linked = true

// maxStrLen matches MSK_MAX_STR_LEN.
const maxStrLen = C.MSK_MAX_STR_LEN

func cInt32(s []int32) *C.MSKint32t {
	if len(s) == 0 {
		return nil
	}
	return (*C.MSKint32t)(unsafe.Pointer(&s[0]))
}

func cInt64(s []int64) *C.MSKint64t {
	if len(s) == 0 {
		return nil
	}
	return (*C.MSKint64t)(unsafe.Pointer(&s[0]))
}

func cReal(s []float64) *C.MSKrealt {
	if len(s) == 0 {
		return nil
	}
	return (*C.MSKrealt)(unsafe.Pointer(&s[0]))
}

func task(t unsafe.Pointer) C.MSKtask_t { return C.MSKtask_t(t) }

func cBool(b bool) C.MSKbooleant {
	if b {
		return 1
	}
	return 0
}

// ----------------------------------------------------------------------------
// Environment
// ----------------------------------------------------------------------------

func nativeMakeEnv() (unsafe.Pointer, Rescode) {
	var env C.MSKenv_t
	r := Rescode(C.MSK_makeenv(&env, nil))
	return unsafe.Pointer(env), r
}

func nativeDeleteEnv(env unsafe.Pointer) Rescode {
	e := C.MSKenv_t(env)
	return Rescode(C.MSK_deleteenv(&e))
}

func nativeVersion() (major, minor, revision int32, r Rescode) {
	var ma, mi, rev C.MSKint32t
	r = Rescode(C.MSK_getversion(&ma, &mi, &rev))
	return int32(ma), int32(mi), int32(rev), r
}

func nativeCheckoutLicense(env unsafe.Pointer, feature Feature) Rescode {
	return Rescode(C.MSK_checkoutlicense(C.MSKenv_t(env), C.MSKfeaturee(feature)))
}

func nativeOptimizeBatch(env unsafe.Pointer, race bool, maxTime float64, numThreads int32, tasks []unsafe.Pointer) (trm, res []Rescode, r Rescode) {
	n := len(tasks)
	cTasks := make([]C.MSKtask_t, n)
	for i, t := range tasks {
		cTasks[i] = task(t)
	}
	cTrm := make([]C.MSKrescodee, n)
	cRes := make([]C.MSKrescodee, n)
	r = Rescode(C.MSK_optimizebatch(C.MSKenv_t(env),
		cBool(race), C.MSKrealt(maxTime), C.MSKint32t(numThreads),
		C.MSKint64t(n), &cTasks[0], &cTrm[0], &cRes[0]))

	trm = make([]Rescode, n)
	res = make([]Rescode, n)
	for i := range cTrm {
		trm[i] = Rescode(cTrm[i])
		res[i] = Rescode(cRes[i])
	}
	return trm, res, r
}

func nativeCodeDesc(code Rescode) (symname, desc string, r Rescode) {
	var sym, str [maxStrLen]C.char
	r = Rescode(C.MSK_getcodedesc(C.MSKrescodee(code), &sym[0], &str[0]))
	return C.GoString(&sym[0]), C.GoString(&str[0]), r
}

// ----------------------------------------------------------------------------
// Task lifecycle
// ----------------------------------------------------------------------------

func nativeMakeTask(env unsafe.Pointer) (unsafe.Pointer, Rescode) {
	var t C.MSKtask_t
	r := Rescode(C.MSK_maketask(C.MSKenv_t(env), 0, 0, &t))
	return unsafe.Pointer(t), r
}

func nativeDeleteTask(t unsafe.Pointer) Rescode {
	ct := task(t)
	return Rescode(C.MSK_deletetask(&ct))
}

func nativeCloneTask(t unsafe.Pointer) (unsafe.Pointer, Rescode) {
	var clone C.MSKtask_t
	r := Rescode(C.MSK_clonetask(task(t), &clone))
	return unsafe.Pointer(clone), r
}

func nativeLastError(t unsafe.Pointer) (Rescode, string) {
	var last C.MSKrescodee
	var msgLen C.MSKint32t
	var buf [maxStrLen]C.char
	r := Rescode(C.MSK_getlasterror(task(t), &last, C.MSKint32t(maxStrLen), &msgLen, &buf[0]))
	if r != ResOK {
		return r, ""
	}
	return Rescode(last), C.GoString(&buf[0])
}

// ----------------------------------------------------------------------------
// Dimensions
// ----------------------------------------------------------------------------

func nativeAppendVars(t unsafe.Pointer, num int32) Rescode {
	return Rescode(C.MSK_appendvars(task(t), C.MSKint32t(num)))
}

func nativeAppendCons(t unsafe.Pointer, num int32) Rescode {
	return Rescode(C.MSK_appendcons(task(t), C.MSKint32t(num)))
}

func nativeAppendAfes(t unsafe.Pointer, num int64) Rescode {
	return Rescode(C.MSK_appendafes(task(t), C.MSKint64t(num)))
}

func nativeNumVar(t unsafe.Pointer) (int32, Rescode) {
	var n C.MSKint32t
	r := Rescode(C.MSK_getnumvar(task(t), &n))
	return int32(n), r
}

func nativeNumCon(t unsafe.Pointer) (int32, Rescode) {
	var n C.MSKint32t
	r := Rescode(C.MSK_getnumcon(task(t), &n))
	return int32(n), r
}

func nativeNumAfe(t unsafe.Pointer) (int64, Rescode) {
	var n C.MSKint64t
	r := Rescode(C.MSK_getnumafe(task(t), &n))
	return int64(n), r
}

func nativeNumAcc(t unsafe.Pointer) (int64, Rescode) {
	var n C.MSKint64t
	r := Rescode(C.MSK_getnumacc(task(t), &n))
	return int64(n), r
}

func nativeRemoveVars(t unsafe.Pointer, subset []int32) Rescode {
	return Rescode(C.MSK_removevars(task(t), C.MSKint32t(len(subset)), cInt32(subset)))
}

func nativeRemoveCons(t unsafe.Pointer, subset []int32) Rescode {
	return Rescode(C.MSK_removecons(task(t), C.MSKint32t(len(subset)), cInt32(subset)))
}

// ----------------------------------------------------------------------------
// Objective
// ----------------------------------------------------------------------------

func nativePutObjSense(t unsafe.Pointer, sense ObjSense) Rescode {
	return Rescode(C.MSK_putobjsense(task(t), C.MSKobjsensee(sense)))
}

func nativeGetObjSense(t unsafe.Pointer) (ObjSense, Rescode) {
	var sense C.MSKobjsensee
	r := Rescode(C.MSK_getobjsense(task(t), &sense))
	return ObjSense(sense), r
}

func nativePutCj(t unsafe.Pointer, j int32, cj float64) Rescode {
	return Rescode(C.MSK_putcj(task(t), C.MSKint32t(j), C.MSKrealt(cj)))
}

func nativePutCSlice(t unsafe.Pointer, first, last int32, slice []float64) Rescode {
	return Rescode(C.MSK_putcslice(task(t), C.MSKint32t(first), C.MSKint32t(last), cReal(slice)))
}

func nativeGetCSlice(t unsafe.Pointer, first, last int32, out []float64) Rescode {
	return Rescode(C.MSK_getcslice(task(t), C.MSKint32t(first), C.MSKint32t(last), cReal(out)))
}

func nativePutCFix(t unsafe.Pointer, cfix float64) Rescode {
	return Rescode(C.MSK_putcfix(task(t), C.MSKrealt(cfix)))
}

func nativePutObjName(t unsafe.Pointer, name string) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_putobjname(task(t), cName))
}

// ----------------------------------------------------------------------------
// Bounds
// ----------------------------------------------------------------------------

func cBoundKeys(bk []BoundKey) *C.MSKboundkeye {
	if len(bk) == 0 {
		return nil
	}
	out := make([]C.MSKboundkeye, len(bk))
	for i, k := range bk {
		out[i] = C.MSKboundkeye(k)
	}
	return &out[0]
}

func nativePutVarBound(t unsafe.Pointer, j int32, bk BoundKey, bl, bu float64) Rescode {
	return Rescode(C.MSK_putvarbound(task(t), C.MSKint32t(j), C.MSKboundkeye(bk), C.MSKrealt(bl), C.MSKrealt(bu)))
}

func nativePutVarBoundSlice(t unsafe.Pointer, first, last int32, bk []BoundKey, bl, bu []float64) Rescode {
	return Rescode(C.MSK_putvarboundslice(task(t), C.MSKint32t(first), C.MSKint32t(last),
		cBoundKeys(bk), cReal(bl), cReal(bu)))
}

func nativePutVarBoundSliceConst(t unsafe.Pointer, first, last int32, bk BoundKey, bl, bu float64) Rescode {
	return Rescode(C.MSK_putvarboundsliceconst(task(t), C.MSKint32t(first), C.MSKint32t(last),
		C.MSKboundkeye(bk), C.MSKrealt(bl), C.MSKrealt(bu)))
}

func nativePutConBound(t unsafe.Pointer, i int32, bk BoundKey, bl, bu float64) Rescode {
	return Rescode(C.MSK_putconbound(task(t), C.MSKint32t(i), C.MSKboundkeye(bk), C.MSKrealt(bl), C.MSKrealt(bu)))
}

func nativePutConBoundSlice(t unsafe.Pointer, first, last int32, bk []BoundKey, bl, bu []float64) Rescode {
	return Rescode(C.MSK_putconboundslice(task(t), C.MSKint32t(first), C.MSKint32t(last),
		cBoundKeys(bk), cReal(bl), cReal(bu)))
}

func nativeGetVarBound(t unsafe.Pointer, j int32) (BoundKey, float64, float64, Rescode) {
	var bk C.MSKboundkeye
	var bl, bu C.MSKrealt
	r := Rescode(C.MSK_getvarbound(task(t), C.MSKint32t(j), &bk, &bl, &bu))
	return BoundKey(bk), float64(bl), float64(bu), r
}

// ----------------------------------------------------------------------------
// Constraint matrix
// ----------------------------------------------------------------------------

func nativePutAij(t unsafe.Pointer, i, j int32, aij float64) Rescode {
	return Rescode(C.MSK_putaij(task(t), C.MSKint32t(i), C.MSKint32t(j), C.MSKrealt(aij)))
}

func nativePutAijList(t unsafe.Pointer, subi, subj []int32, val []float64) Rescode {
	return Rescode(C.MSK_putaijlist(task(t), C.MSKint32t(len(val)), cInt32(subi), cInt32(subj), cReal(val)))
}

func nativePutARow(t unsafe.Pointer, i int32, sub []int32, val []float64) Rescode {
	return Rescode(C.MSK_putarow(task(t), C.MSKint32t(i), C.MSKint32t(len(sub)), cInt32(sub), cReal(val)))
}

func nativePutARowList(t unsafe.Pointer, rows []int32, ptrb, ptre []int64, asub []int32, aval []float64) Rescode {
	return Rescode(C.MSK_putarowlist(task(t), C.MSKint32t(len(rows)), cInt32(rows),
		cInt64(ptrb), cInt64(ptre), cInt32(asub), cReal(aval)))
}

func nativeGetARowNumNz(t unsafe.Pointer, i int32) (int32, Rescode) {
	var nz C.MSKint32t
	r := Rescode(C.MSK_getarownumnz(task(t), C.MSKint32t(i), &nz))
	return int32(nz), r
}

func nativeGetARow(t unsafe.Pointer, i int32, sub []int32, val []float64) (int32, Rescode) {
	var nz C.MSKint32t
	r := Rescode(C.MSK_getarow(task(t), C.MSKint32t(i), &nz, cInt32(sub), cReal(val)))
	return int32(nz), r
}

// ----------------------------------------------------------------------------
// Integrality and names
// ----------------------------------------------------------------------------

func nativePutVarType(t unsafe.Pointer, j int32, vt VariableType) Rescode {
	return Rescode(C.MSK_putvartype(task(t), C.MSKint32t(j), C.MSKvariabletypee(vt)))
}

func nativePutVarTypeList(t unsafe.Pointer, sub []int32, vt []VariableType) Rescode {
	if len(vt) == 0 {
		return ResOK
	}
	cVt := make([]C.MSKvariabletypee, len(vt))
	for i, v := range vt {
		cVt[i] = C.MSKvariabletypee(v)
	}
	return Rescode(C.MSK_putvartypelist(task(t), C.MSKint32t(len(sub)), cInt32(sub), &cVt[0]))
}

func nativePutTaskName(t unsafe.Pointer, name string) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_puttaskname(task(t), cName))
}

func nativePutVarName(t unsafe.Pointer, j int32, name string) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_putvarname(task(t), C.MSKint32t(j), cName))
}

func nativePutConName(t unsafe.Pointer, i int32, name string) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_putconname(task(t), C.MSKint32t(i), cName))
}

func nativePutAccName(t unsafe.Pointer, acc int64, name string) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_putaccname(task(t), C.MSKint64t(acc), cName))
}

func nativeGetVarName(t unsafe.Pointer, j int32) (string, Rescode) {
	var n C.MSKint32t
	if r := Rescode(C.MSK_getvarnamelen(task(t), C.MSKint32t(j), &n)); r != ResOK {
		return "", r
	}
	buf := make([]C.char, int(n)+1)
	r := Rescode(C.MSK_getvarname(task(t), C.MSKint32t(j), n+1, &buf[0]))
	return C.GoString(&buf[0]), r
}

// ----------------------------------------------------------------------------
// Affine conic constraints
// ----------------------------------------------------------------------------

func nativePutAfeFEntryList(t unsafe.Pointer, afeidx []int64, varidx []int32, val []float64) Rescode {
	return Rescode(C.MSK_putafefentrylist(task(t), C.MSKint64t(len(val)), cInt64(afeidx), cInt32(varidx), cReal(val)))
}

func nativePutAfeG(t unsafe.Pointer, afe int64, g float64) Rescode {
	return Rescode(C.MSK_putafeg(task(t), C.MSKint64t(afe), C.MSKrealt(g)))
}

func nativePutAfeGSlice(t unsafe.Pointer, first, last int64, g []float64) Rescode {
	return Rescode(C.MSK_putafegslice(task(t), C.MSKint64t(first), C.MSKint64t(last), cReal(g)))
}

func nativeAppendDomain(t unsafe.Pointer, kind DomainType, n int64, alpha []float64) (int64, Rescode) {
	var dom C.MSKint64t
	var r C.MSKrescodee
	ct, cn := task(t), C.MSKint64t(n)
	switch kind {
	case DomainR:
		r = C.MSK_appendrdomain(ct, cn, &dom)
	case DomainRZero:
		r = C.MSK_appendrzerodomain(ct, cn, &dom)
	case DomainRPlus:
		r = C.MSK_appendrplusdomain(ct, cn, &dom)
	case DomainRMinus:
		r = C.MSK_appendrminusdomain(ct, cn, &dom)
	case DomainQuadraticCone:
		r = C.MSK_appendquadraticconedomain(ct, cn, &dom)
	case DomainRQuadraticCone:
		r = C.MSK_appendrquadraticconedomain(ct, cn, &dom)
	case DomainPrimalExpCone:
		r = C.MSK_appendprimalexpconedomain(ct, &dom)
	case DomainDualExpCone:
		r = C.MSK_appenddualexpconedomain(ct, &dom)
	case DomainPrimalGeoMeanCone:
		r = C.MSK_appendprimalgeomeanconedomain(ct, cn, &dom)
	case DomainDualGeoMeanCone:
		r = C.MSK_appenddualgeomeanconedomain(ct, cn, &dom)
	case DomainPrimalPowerCone:
		r = C.MSK_appendprimalpowerconedomain(ct, cn, C.MSKint64t(len(alpha)), cReal(alpha), &dom)
	case DomainDualPowerCone:
		r = C.MSK_appenddualpowerconedomain(ct, cn, C.MSKint64t(len(alpha)), cReal(alpha), &dom)
	case DomainSvecPSDCone:
		r = C.MSK_appendsvecpsdconedomain(ct, cn, &dom)
	default:
		return -1, ResErrIndex
	}
	return int64(dom), Rescode(r)
}

func nativeAppendAcc(t unsafe.Pointer, dom int64, afeidx []int64, b []float64) Rescode {
	return Rescode(C.MSK_appendacc(task(t), C.MSKint64t(dom), C.MSKint64t(len(afeidx)), cInt64(afeidx), cReal(b)))
}

func nativeAppendAccSeq(t unsafe.Pointer, dom, num, first int64, b []float64) Rescode {
	return Rescode(C.MSK_appendaccseq(task(t), C.MSKint64t(dom), C.MSKint64t(num), C.MSKint64t(first), cReal(b)))
}

// ----------------------------------------------------------------------------
// Parameters
// ----------------------------------------------------------------------------

func nativePutNaIntParam(t unsafe.Pointer, name string, v int32) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_putnaintparam(task(t), cName, C.MSKint32t(v)))
}

func nativePutNaDouParam(t unsafe.Pointer, name string, v float64) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_putnadouparam(task(t), cName, C.MSKrealt(v)))
}

func nativePutNaStrParam(t unsafe.Pointer, name, v string) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(v)
	defer C.free(unsafe.Pointer(cVal))
	return Rescode(C.MSK_putnastrparam(task(t), cName, cVal))
}

func nativePutParam(t unsafe.Pointer, name, v string) Rescode {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(v)
	defer C.free(unsafe.Pointer(cVal))
	return Rescode(C.MSK_putparam(task(t), cName, cVal))
}

func nativeGetNaIntParam(t unsafe.Pointer, name string) (int32, Rescode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.MSKint32t
	r := Rescode(C.MSK_getnaintparam(task(t), cName, &v))
	return int32(v), r
}

func nativeGetNaDouParam(t unsafe.Pointer, name string) (float64, Rescode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.MSKrealt
	r := Rescode(C.MSK_getnadouparam(task(t), cName, &v))
	return float64(v), r
}

func nativeReadParamFile(t unsafe.Pointer, filename string) Rescode {
	cName := C.CString(filename)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_readparamfile(task(t), cName))
}

// ----------------------------------------------------------------------------
// Optimization and solutions
// ----------------------------------------------------------------------------

func nativeOptimize(t unsafe.Pointer) (trm, r Rescode) {
	var cTrm C.MSKrescodee
	r = Rescode(C.MSK_optimizetrm(task(t), &cTrm))
	return Rescode(cTrm), r
}

func nativeSolutionSummary(t unsafe.Pointer, stream StreamType) Rescode {
	return Rescode(C.MSK_solutionsummary(task(t), C.MSKstreamtypee(stream)))
}

func nativeSolutionDef(t unsafe.Pointer, sol SolType) (bool, Rescode) {
	var def C.MSKbooleant
	r := Rescode(C.MSK_solutiondef(task(t), C.MSKsoltypee(sol), &def))
	return def != 0, r
}

func nativeGetSolSta(t unsafe.Pointer, sol SolType) (SolSta, Rescode) {
	var s C.MSKsolstae
	r := Rescode(C.MSK_getsolsta(task(t), C.MSKsoltypee(sol), &s))
	return SolSta(s), r
}

func nativeGetProSta(t unsafe.Pointer, sol SolType) (ProSta, Rescode) {
	var s C.MSKprostae
	r := Rescode(C.MSK_getprosta(task(t), C.MSKsoltypee(sol), &s))
	return ProSta(s), r
}

func nativeGetSolVector(t unsafe.Pointer, sol SolType, item solVector, out []float64) Rescode {
	ct, cs, p := task(t), C.MSKsoltypee(sol), cReal(out)
	switch item {
	case vecXx:
		return Rescode(C.MSK_getxx(ct, cs, p))
	case vecY:
		return Rescode(C.MSK_gety(ct, cs, p))
	case vecSlc:
		return Rescode(C.MSK_getslc(ct, cs, p))
	case vecSuc:
		return Rescode(C.MSK_getsuc(ct, cs, p))
	case vecSlx:
		return Rescode(C.MSK_getslx(ct, cs, p))
	case vecSux:
		return Rescode(C.MSK_getsux(ct, cs, p))
	case vecXc:
		return Rescode(C.MSK_getxc(ct, cs, p))
	}
	return ResErrSolitem
}

func nativeGetXxSlice(t unsafe.Pointer, sol SolType, first, last int32, out []float64) Rescode {
	return Rescode(C.MSK_getxxslice(task(t), C.MSKsoltypee(sol), C.MSKint32t(first), C.MSKint32t(last), cReal(out)))
}

func nativeGetPrimalObj(t unsafe.Pointer, sol SolType) (float64, Rescode) {
	var v C.MSKrealt
	r := Rescode(C.MSK_getprimalobj(task(t), C.MSKsoltypee(sol), &v))
	return float64(v), r
}

func nativeGetDualObj(t unsafe.Pointer, sol SolType) (float64, Rescode) {
	var v C.MSKrealt
	r := Rescode(C.MSK_getdualobj(task(t), C.MSKsoltypee(sol), &v))
	return float64(v), r
}

func nativeGetNaIntInf(t unsafe.Pointer, name string) (int32, Rescode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.MSKint32t
	r := Rescode(C.MSK_getnaintinf(task(t), cName, &v))
	return int32(v), r
}

func nativeGetNaDouInf(t unsafe.Pointer, name string) (float64, Rescode) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.MSKrealt
	r := Rescode(C.MSK_getnadouinf(task(t), cName, &v))
	return float64(v), r
}

// ----------------------------------------------------------------------------
// Files and streams
// ----------------------------------------------------------------------------

func nativeReadData(t unsafe.Pointer, filename string) Rescode {
	cName := C.CString(filename)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_readdata(task(t), cName))
}

func nativeWriteData(t unsafe.Pointer, filename string) Rescode {
	cName := C.CString(filename)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_writedata(task(t), cName))
}

func nativeReadPTFString(t unsafe.Pointer, data string) Rescode {
	cData := C.CString(data)
	defer C.free(unsafe.Pointer(cData))
	return Rescode(C.MSK_readptfstring(task(t), cData))
}

func nativeWriteSolution(t unsafe.Pointer, sol SolType, filename string) Rescode {
	cName := C.CString(filename)
	defer C.free(unsafe.Pointer(cName))
	return Rescode(C.MSK_writesolution(task(t), C.MSKsoltypee(sol), cName))
}

func nativeLinkStream(t unsafe.Pointer, stream StreamType, handle uintptr) Rescode {
	return Rescode(C.gomosek_linkstream(task(t), C.MSKstreamtypee(stream), C.uintptr_t(handle)))
}

func nativeUnlinkStream(t unsafe.Pointer, stream StreamType) Rescode {
	return Rescode(C.MSK_unlinkfuncfromtaskstream(task(t), C.MSKstreamtypee(stream)))
}

// ----------------------------------------------------------------------------
// Remote optimization
// ----------------------------------------------------------------------------

// tokenLen is the size of an OptServer job token including the terminator.
const tokenLen = 33

func nativeOptimizeRemote(t unsafe.Pointer, addr, accessToken string) (trm, r Rescode) {
	cAddr := C.CString(addr)
	defer C.free(unsafe.Pointer(cAddr))
	cTok := C.CString(accessToken)
	defer C.free(unsafe.Pointer(cTok))
	var cTrm C.MSKrescodee
	r = Rescode(C.MSK_optimizermt(task(t), cAddr, cTok, &cTrm))
	return Rescode(cTrm), r
}

func nativeAsyncOptimize(t unsafe.Pointer, addr, accessToken string) (string, Rescode) {
	cAddr := C.CString(addr)
	defer C.free(unsafe.Pointer(cAddr))
	cTok := C.CString(accessToken)
	defer C.free(unsafe.Pointer(cTok))
	var ticket [tokenLen]C.char
	r := Rescode(C.MSK_asyncoptimize(task(t), cAddr, cTok, &ticket[0]))
	return C.GoString(&ticket[0]), r
}

func nativeAsyncPoll(t unsafe.Pointer, addr, accessToken, ticket string, fetch bool) (available bool, resp, trm, r Rescode) {
	cAddr := C.CString(addr)
	defer C.free(unsafe.Pointer(cAddr))
	cTok := C.CString(accessToken)
	defer C.free(unsafe.Pointer(cTok))
	cTicket := C.CString(ticket)
	defer C.free(unsafe.Pointer(cTicket))

	var avail C.MSKbooleant
	var cResp, cTrm C.MSKrescodee
	if fetch {
		r = Rescode(C.MSK_asyncgetresult(task(t), cAddr, cTok, cTicket, &avail, &cResp, &cTrm))
	} else {
		r = Rescode(C.MSK_asyncpoll(task(t), cAddr, cTok, cTicket, &avail, &cResp, &cTrm))
	}
	return avail != 0, Rescode(cResp), Rescode(cTrm), r
}

func nativeAsyncStop(t unsafe.Pointer, addr, accessToken, ticket string) Rescode {
	cAddr := C.CString(addr)
	defer C.free(unsafe.Pointer(cAddr))
	cTok := C.CString(accessToken)
	defer C.free(unsafe.Pointer(cTok))
	cTicket := C.CString(ticket)
	defer C.free(unsafe.Pointer(cTicket))
	return Rescode(C.MSK_asyncstop(task(t), cAddr, cTok, cTicket))
}
