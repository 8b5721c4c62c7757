package mosek

// Parameters and information items are addressed by their symbolic MOSEK
// names. The native library resolves the name, so any parameter from the
// MOSEK manual can be used, not only the ones listed here.

// IntParam names an integer parameter.
type IntParam string

// DouParam names a floating-point parameter.
type DouParam string

// StrParam names a string parameter.
type StrParam string

const (
	IParLog                IntParam = "MSK_IPAR_LOG"
	IParLogIntpnt          IntParam = "MSK_IPAR_LOG_INTPNT"
	IParNumThreads         IntParam = "MSK_IPAR_NUM_THREADS"
	IParOptimizer          IntParam = "MSK_IPAR_OPTIMIZER"
	IParPresolveUse        IntParam = "MSK_IPAR_PRESOLVE_USE"
	IParIntpntBasis        IntParam = "MSK_IPAR_INTPNT_BASIS"
	IParMioMaxNumSolutions IntParam = "MSK_IPAR_MIO_MAX_NUM_SOLUTIONS"
	IParWriteDataParam     IntParam = "MSK_IPAR_WRITE_DATA_PARAM"
	IParAutoUpdateSolInfo  IntParam = "MSK_IPAR_AUTO_UPDATE_SOL_INFO"

	DParOptimizerMaxTime  DouParam = "MSK_DPAR_OPTIMIZER_MAX_TIME"
	DParMioTolRelGap      DouParam = "MSK_DPAR_MIO_TOL_REL_GAP"
	DParMioTolAbsGap      DouParam = "MSK_DPAR_MIO_TOL_ABS_GAP"
	DParMioMaxTime        DouParam = "MSK_DPAR_MIO_MAX_TIME"
	DParIntpntTolRelGap   DouParam = "MSK_DPAR_INTPNT_TOL_REL_GAP"
	DParIntpntCoTolRelGap DouParam = "MSK_DPAR_INTPNT_CO_TOL_REL_GAP"

	SParRemoteTLSCertPath StrParam = "MSK_SPAR_REMOTE_TLS_CERT_PATH"
	SParParamReadFileName StrParam = "MSK_SPAR_PARAM_READ_FILE_NAME"
	SParWriteLPGenVarName StrParam = "MSK_SPAR_WRITE_LP_GEN_VAR_NAME"
)

// IntInfItem names an integer information item.
type IntInfItem string

// DouInfItem names a floating-point information item.
type DouInfItem string

const (
	IInfIntpntIter        IntInfItem = "MSK_IINF_INTPNT_ITER"
	IInfSimPrimalIter     IntInfItem = "MSK_IINF_SIM_PRIMAL_ITER"
	IInfSimDualIter       IntInfItem = "MSK_IINF_SIM_DUAL_ITER"
	IInfMioNumRelax       IntInfItem = "MSK_IINF_MIO_NUM_RELAX"
	IInfMioNumIntSolution IntInfItem = "MSK_IINF_MIO_NUM_INT_SOLUTIONS"
	IInfOptimizeResponse  IntInfItem = "MSK_IINF_OPTIMIZE_RESPONSE"

	DInfOptimizerTime      DouInfItem = "MSK_DINF_OPTIMIZER_TIME"
	DInfIntpntPrimalObj    DouInfItem = "MSK_DINF_INTPNT_PRIMAL_OBJ"
	DInfIntpntDualObj      DouInfItem = "MSK_DINF_INTPNT_DUAL_OBJ"
	DInfMioObjInt          DouInfItem = "MSK_DINF_MIO_OBJ_INT"
	DInfMioObjBound        DouInfItem = "MSK_DINF_MIO_OBJ_BOUND"
	DInfPresolveTime       DouInfItem = "MSK_DINF_PRESOLVE_TIME"
	DInfSolItrPrimalObj    DouInfItem = "MSK_DINF_SOL_ITR_PRIMAL_OBJ"
	DInfSolItrDualObj      DouInfItem = "MSK_DINF_SOL_ITR_DUAL_OBJ"
	DInfSolItrMaxPInfeas   DouInfItem = "MSK_DINF_SOL_ITR_MAX_PINFEAS"
	DInfSolItrMaxDInfeas   DouInfItem = "MSK_DINF_SOL_ITR_MAX_DINFEAS"
	DInfIntpntOptStatus    DouInfItem = "MSK_DINF_INTPNT_OPT_STATUS"
	DInfSimTime            DouInfItem = "MSK_DINF_SIM_TIME"
	DInfIntpntTime         DouInfItem = "MSK_DINF_INTPNT_TIME"
	DInfMioTime            DouInfItem = "MSK_DINF_MIO_TIME"
	DInfReadDataTime       DouInfItem = "MSK_DINF_READ_DATA_TIME"
	DInfWriteDataTime      DouInfItem = "MSK_DINF_WRITE_DATA_TIME"
	DInfSolBasPrimalObj    DouInfItem = "MSK_DINF_SOL_BAS_PRIMAL_OBJ"
	DInfSolItgPrimalObj    DouInfItem = "MSK_DINF_SOL_ITG_PRIMAL_OBJ"
	DInfIntpntFactorNumFlo DouInfItem = "MSK_DINF_INTPNT_FACTOR_NUM_FLOPS"
)
