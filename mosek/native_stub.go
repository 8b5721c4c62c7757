//go:build !mosek

package mosek

import "unsafe"

// Without the native library every handle stays nil. Constructors check
// linked and report ErrNotLinked; the remaining calls fail the way MOSEK
// does when handed a null task.

const linked = false

const stubCode = ResErrNullTask

func nativeMakeEnv() (unsafe.Pointer, Rescode)      { return nil, ResErrNullEnv }
func nativeDeleteEnv(unsafe.Pointer) Rescode        { return ResOK }
func nativeVersion() (int32, int32, int32, Rescode) { return 0, 0, 0, ResErrNullEnv }

func nativeCheckoutLicense(unsafe.Pointer, Feature) Rescode { return ResErrNullEnv }

func nativeOptimizeBatch(_ unsafe.Pointer, _ bool, _ float64, _ int32, tasks []unsafe.Pointer) ([]Rescode, []Rescode, Rescode) {
	return make([]Rescode, len(tasks)), make([]Rescode, len(tasks)), ResErrNullEnv
}

func nativeCodeDesc(code Rescode) (string, string, Rescode) {
	return code.String(), "", ResOK
}

func nativeMakeTask(unsafe.Pointer) (unsafe.Pointer, Rescode)  { return nil, stubCode }
func nativeDeleteTask(unsafe.Pointer) Rescode                  { return ResOK }
func nativeCloneTask(unsafe.Pointer) (unsafe.Pointer, Rescode) { return nil, stubCode }
func nativeLastError(unsafe.Pointer) (Rescode, string)         { return stubCode, "" }

func nativeAppendVars(unsafe.Pointer, int32) Rescode   { return stubCode }
func nativeAppendCons(unsafe.Pointer, int32) Rescode   { return stubCode }
func nativeAppendAfes(unsafe.Pointer, int64) Rescode   { return stubCode }
func nativeNumVar(unsafe.Pointer) (int32, Rescode)     { return 0, stubCode }
func nativeNumCon(unsafe.Pointer) (int32, Rescode)     { return 0, stubCode }
func nativeNumAfe(unsafe.Pointer) (int64, Rescode)     { return 0, stubCode }
func nativeNumAcc(unsafe.Pointer) (int64, Rescode)     { return 0, stubCode }
func nativeRemoveVars(unsafe.Pointer, []int32) Rescode { return stubCode }
func nativeRemoveCons(unsafe.Pointer, []int32) Rescode { return stubCode }

func nativePutObjSense(unsafe.Pointer, ObjSense) Rescode              { return stubCode }
func nativeGetObjSense(unsafe.Pointer) (ObjSense, Rescode)            { return 0, stubCode }
func nativePutCj(unsafe.Pointer, int32, float64) Rescode              { return stubCode }
func nativePutCSlice(unsafe.Pointer, int32, int32, []float64) Rescode { return stubCode }
func nativeGetCSlice(unsafe.Pointer, int32, int32, []float64) Rescode { return stubCode }
func nativePutCFix(unsafe.Pointer, float64) Rescode                   { return stubCode }
func nativePutObjName(unsafe.Pointer, string) Rescode                 { return stubCode }

func nativePutVarBound(unsafe.Pointer, int32, BoundKey, float64, float64) Rescode { return stubCode }
func nativePutVarBoundSlice(unsafe.Pointer, int32, int32, []BoundKey, []float64, []float64) Rescode {
	return stubCode
}
func nativePutVarBoundSliceConst(unsafe.Pointer, int32, int32, BoundKey, float64, float64) Rescode {
	return stubCode
}
func nativePutConBound(unsafe.Pointer, int32, BoundKey, float64, float64) Rescode { return stubCode }
func nativePutConBoundSlice(unsafe.Pointer, int32, int32, []BoundKey, []float64, []float64) Rescode {
	return stubCode
}
func nativeGetVarBound(unsafe.Pointer, int32) (BoundKey, float64, float64, Rescode) {
	return 0, 0, 0, stubCode
}

func nativePutAij(unsafe.Pointer, int32, int32, float64) Rescode               { return stubCode }
func nativePutAijList(unsafe.Pointer, []int32, []int32, []float64) Rescode     { return stubCode }
func nativePutARow(unsafe.Pointer, int32, []int32, []float64) Rescode          { return stubCode }
func nativeGetARowNumNz(unsafe.Pointer, int32) (int32, Rescode)                { return 0, stubCode }
func nativeGetARow(unsafe.Pointer, int32, []int32, []float64) (int32, Rescode) { return 0, stubCode }
func nativePutARowList(unsafe.Pointer, []int32, []int64, []int64, []int32, []float64) Rescode {
	return stubCode
}

func nativePutVarType(unsafe.Pointer, int32, VariableType) Rescode         { return stubCode }
func nativePutVarTypeList(unsafe.Pointer, []int32, []VariableType) Rescode { return stubCode }
func nativePutTaskName(unsafe.Pointer, string) Rescode                     { return stubCode }
func nativePutVarName(unsafe.Pointer, int32, string) Rescode               { return stubCode }
func nativePutConName(unsafe.Pointer, int32, string) Rescode               { return stubCode }
func nativePutAccName(unsafe.Pointer, int64, string) Rescode               { return stubCode }
func nativeGetVarName(unsafe.Pointer, int32) (string, Rescode)             { return "", stubCode }

func nativePutAfeFEntryList(unsafe.Pointer, []int64, []int32, []float64) Rescode { return stubCode }
func nativePutAfeG(unsafe.Pointer, int64, float64) Rescode                       { return stubCode }
func nativePutAfeGSlice(unsafe.Pointer, int64, int64, []float64) Rescode         { return stubCode }
func nativeAppendDomain(unsafe.Pointer, DomainType, int64, []float64) (int64, Rescode) {
	return -1, stubCode
}
func nativeAppendAcc(unsafe.Pointer, int64, []int64, []float64) Rescode         { return stubCode }
func nativeAppendAccSeq(unsafe.Pointer, int64, int64, int64, []float64) Rescode { return stubCode }

func nativePutNaIntParam(unsafe.Pointer, string, int32) Rescode     { return stubCode }
func nativePutNaDouParam(unsafe.Pointer, string, float64) Rescode   { return stubCode }
func nativePutNaStrParam(unsafe.Pointer, string, string) Rescode    { return stubCode }
func nativePutParam(unsafe.Pointer, string, string) Rescode         { return stubCode }
func nativeGetNaIntParam(unsafe.Pointer, string) (int32, Rescode)   { return 0, stubCode }
func nativeGetNaDouParam(unsafe.Pointer, string) (float64, Rescode) { return 0, stubCode }
func nativeReadParamFile(unsafe.Pointer, string) Rescode            { return stubCode }

func nativeOptimize(unsafe.Pointer) (Rescode, Rescode)              { return ResOK, stubCode }
func nativeSolutionSummary(unsafe.Pointer, StreamType) Rescode      { return stubCode }
func nativeSolutionDef(unsafe.Pointer, SolType) (bool, Rescode)     { return false, stubCode }
func nativeGetSolSta(unsafe.Pointer, SolType) (SolSta, Rescode)     { return 0, stubCode }
func nativeGetProSta(unsafe.Pointer, SolType) (ProSta, Rescode)     { return 0, stubCode }
func nativeGetPrimalObj(unsafe.Pointer, SolType) (float64, Rescode) { return 0, stubCode }
func nativeGetDualObj(unsafe.Pointer, SolType) (float64, Rescode)   { return 0, stubCode }
func nativeGetNaIntInf(unsafe.Pointer, string) (int32, Rescode)     { return 0, stubCode }
func nativeGetNaDouInf(unsafe.Pointer, string) (float64, Rescode)   { return 0, stubCode }
func nativeGetSolVector(unsafe.Pointer, SolType, solVector, []float64) Rescode {
	return stubCode
}
func nativeGetXxSlice(unsafe.Pointer, SolType, int32, int32, []float64) Rescode {
	return stubCode
}

func nativeReadData(unsafe.Pointer, string) Rescode                { return stubCode }
func nativeWriteData(unsafe.Pointer, string) Rescode               { return stubCode }
func nativeReadPTFString(unsafe.Pointer, string) Rescode           { return stubCode }
func nativeWriteSolution(unsafe.Pointer, SolType, string) Rescode  { return stubCode }
func nativeLinkStream(unsafe.Pointer, StreamType, uintptr) Rescode { return stubCode }
func nativeUnlinkStream(unsafe.Pointer, StreamType) Rescode        { return stubCode }

func nativeOptimizeRemote(unsafe.Pointer, string, string) (Rescode, Rescode) {
	return ResOK, stubCode
}
func nativeAsyncOptimize(unsafe.Pointer, string, string) (string, Rescode) { return "", stubCode }
func nativeAsyncPoll(unsafe.Pointer, string, string, string, bool) (bool, Rescode, Rescode, Rescode) {
	return false, ResOK, ResOK, stubCode
}
func nativeAsyncStop(unsafe.Pointer, string, string, string) Rescode { return stubCode }

func newStreamHandle(func(string)) uintptr { return 0 }
func deleteStreamHandle(uintptr)           {}
