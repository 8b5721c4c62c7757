package mosek

import (
	"fmt"
	"sort"
)

// catalog is a closed, bidirectional table of named integer constants.
// Catalogs are populated once during package initialization and never
// mutated afterwards, so concurrent reads are safe.
type catalog[T ~int32] struct {
	family  string
	byName  map[string]T
	byValue map[T]string
}

type entry[T ~int32] struct {
	name  string
	value T
}

func newCatalog[T ~int32](family string, entries ...entry[T]) *catalog[T] {
	c := &catalog[T]{
		family:  family,
		byName:  make(map[string]T, len(entries)),
		byValue: make(map[T]string, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.byName[e.name]; dup {
			panic("mosek: duplicate name " + e.name + " in " + family)
		}
		if _, dup := c.byValue[e.value]; dup {
			panic(fmt.Sprintf("mosek: duplicate value %d in %s", e.value, family))
		}
		c.byName[e.name] = e.value
		c.byValue[e.value] = e.name
	}
	families[family] = c
	return c
}

func (c *catalog[T]) name(v T) string {
	if s, ok := c.byValue[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", c.family, int32(v))
}

func (c *catalog[T]) parse(name string) (T, error) {
	if v, ok := c.byName[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("mosek: unknown %s name %q", c.family, name)
}

// names returns the catalog names ordered by value.
func (c *catalog[T]) names() []string {
	values := make([]T, 0, len(c.byValue))
	for v := range c.byValue {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = c.byValue[v]
	}
	return out
}

func (c *catalog[T]) lookup(name string) (int32, bool) {
	v, ok := c.byName[name]
	return int32(v), ok
}

// anyCatalog is the type-erased view used by the family index.
type anyCatalog interface {
	names() []string
	lookup(name string) (int32, bool)
}

var families = map[string]anyCatalog{}

// Families returns the names of all enum families known to the package.
func Families() []string {
	out := make([]string, 0, len(families))
	for f := range families {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Names returns the symbolic names of an enum family ordered by value.
func Names(family string) ([]string, error) {
	c, ok := families[family]
	if !ok {
		return nil, fmt.Errorf("mosek: unknown enum family %q", family)
	}
	return c.names(), nil
}

// Lookup resolves a symbolic name within a family to its integer value.
func Lookup(family, name string) (int32, error) {
	c, ok := families[family]
	if !ok {
		return 0, fmt.Errorf("mosek: unknown enum family %q", family)
	}
	v, ok := c.lookup(name)
	if !ok {
		return 0, fmt.Errorf("mosek: unknown %s name %q", family, name)
	}
	return v, nil
}

// ----------------------------------------------------------------------------
// Response codes
// ----------------------------------------------------------------------------

// Rescode is a MOSEK response code returned by every native call.
type Rescode int32

const (
	ResOK Rescode = 0

	ResWrnOpenParamFile    Rescode = 50
	ResWrnLargeBound       Rescode = 51
	ResWrnLargeLoBound     Rescode = 52
	ResWrnLargeUpBound     Rescode = 53
	ResWrnLargeConFx       Rescode = 54
	ResWrnLargeCj          Rescode = 57
	ResWrnLargeAij         Rescode = 62
	ResWrnZeroAij          Rescode = 63
	ResWrnNameMaxLen       Rescode = 65
	ResWrnSparMaxLen       Rescode = 66
	ResWrnLicenseExpire    Rescode = 500
	ResWrnLicenseServer    Rescode = 501
	ResWrnEmptyName        Rescode = 502
	ResWrnUsingGenericName Rescode = 503

	ResErrLicense             Rescode = 1000
	ResErrLicenseExpired      Rescode = 1001
	ResErrLicenseVersion      Rescode = 1002
	ResErrSizeLicense         Rescode = 1005
	ResErrProbLicense         Rescode = 1006
	ResErrFileLicense         Rescode = 1007
	ResErrMissingLicenseFile  Rescode = 1008
	ResErrSizeLicenseCon      Rescode = 1010
	ResErrSizeLicenseVar      Rescode = 1011
	ResErrSizeLicenseIntvar   Rescode = 1012
	ResErrOptimizerLicense    Rescode = 1013
	ResErrFlexlm              Rescode = 1014
	ResErrLicenseServer       Rescode = 1015
	ResErrLicenseMax          Rescode = 1016
	ResErrLicenseDaemon       Rescode = 1017
	ResErrLicenseFeature      Rescode = 1018
	ResErrPlatformNotLicensed Rescode = 1019
	ResErrLicenseCannotAlloc  Rescode = 1020
	ResErrLicenseCannotConn   Rescode = 1021
	ResErrOpenDl              Rescode = 1030
	ResErrOlderDll            Rescode = 1035
	ResErrNewerDll            Rescode = 1036
	ResErrLinkFileDll         Rescode = 1040
	ResErrSpace               Rescode = 1051
	ResErrFileOpen            Rescode = 1052
	ResErrFileRead            Rescode = 1053
	ResErrFileWrite           Rescode = 1054
	ResErrDataFileExt         Rescode = 1055
	ResErrInvalidFileName     Rescode = 1056
	ResErrInvalidSolFileName  Rescode = 1057
	ResErrEndOfFile           Rescode = 1059
	ResErrNullEnv             Rescode = 1060
	ResErrNullTask            Rescode = 1061
	ResErrInvalidStream       Rescode = 1062
	ResErrNoInitEnv           Rescode = 1063
	ResErrInvalidTask         Rescode = 1064
	ResErrNullPointer         Rescode = 1065
	ResErrLivingTasks         Rescode = 1066
	ResErrBlankName           Rescode = 1070
	ResErrDupName             Rescode = 1071
	ResErrInvalidObjName      Rescode = 1075
	ResErrInvalidConName      Rescode = 1076
	ResErrInvalidVarName      Rescode = 1077
	ResErrReadFormat          Rescode = 1090
	ResErrMpsFile             Rescode = 1100
	ResErrIndexIsTooSmall     Rescode = 1203
	ResErrIndexIsTooLarge     Rescode = 1204
	ResErrParamName           Rescode = 1205
	ResErrParamNameDou        Rescode = 1206
	ResErrParamNameInt        Rescode = 1207
	ResErrParamNameStr        Rescode = 1208
	ResErrParamIndex          Rescode = 1210
	ResErrParamIsTooLarge     Rescode = 1215
	ResErrParamIsTooSmall     Rescode = 1216
	ResErrParamValueStr       Rescode = 1217
	ResErrParamType           Rescode = 1218
	ResErrInfDouIndex         Rescode = 1219
	ResErrInfIntIndex         Rescode = 1220
	ResErrIndexArrIsTooSmall  Rescode = 1221
	ResErrIndexArrIsTooLarge  Rescode = 1222
	ResErrArgIsTooSmall       Rescode = 1226
	ResErrArgIsTooLarge       Rescode = 1227
	ResErrInvalidWhichsol     Rescode = 1228
	ResErrInfDouName          Rescode = 1230
	ResErrInfIntName          Rescode = 1231
	ResErrInfType             Rescode = 1232
	ResErrIndex               Rescode = 1235
	ResErrWhichsol            Rescode = 1236
	ResErrSolitem             Rescode = 1237
	ResErrInvBk               Rescode = 1255
	ResErrInvBkc              Rescode = 1256
	ResErrInvBkx              Rescode = 1257
	ResErrInvVarType          Rescode = 1258
	ResErrInternal            Rescode = 3000
	ResErrServerConnect       Rescode = 8000
	ResErrServerProtocol      Rescode = 8001
	ResErrServerStatus        Rescode = 8002
	ResErrServerToken         Rescode = 8003

	ResTrmMaxIterations        Rescode = 10000
	ResTrmMaxTime              Rescode = 10001
	ResTrmObjectiveRange       Rescode = 10002
	ResTrmStall                Rescode = 10006
	ResTrmUserCallback         Rescode = 10007
	ResTrmMioNumRelaxs         Rescode = 10008
	ResTrmMioNumBranches       Rescode = 10009
	ResTrmNumMaxNumIntSolution Rescode = 10015
	ResTrmMaxNumSetbacks       Rescode = 10020
	ResTrmNumericalProblem     Rescode = 10025
	ResTrmLostRace             Rescode = 10030
	ResTrmInternal             Rescode = 10050
	ResTrmInternalStop         Rescode = 10052
)

var rescodes = newCatalog("rescode",
	entry[Rescode]{"MSK_RES_OK", ResOK},
	entry[Rescode]{"MSK_RES_WRN_OPEN_PARAM_FILE", ResWrnOpenParamFile},
	entry[Rescode]{"MSK_RES_WRN_LARGE_BOUND", ResWrnLargeBound},
	entry[Rescode]{"MSK_RES_WRN_LARGE_LO_BOUND", ResWrnLargeLoBound},
	entry[Rescode]{"MSK_RES_WRN_LARGE_UP_BOUND", ResWrnLargeUpBound},
	entry[Rescode]{"MSK_RES_WRN_LARGE_CON_FX", ResWrnLargeConFx},
	entry[Rescode]{"MSK_RES_WRN_LARGE_CJ", ResWrnLargeCj},
	entry[Rescode]{"MSK_RES_WRN_LARGE_AIJ", ResWrnLargeAij},
	entry[Rescode]{"MSK_RES_WRN_ZERO_AIJ", ResWrnZeroAij},
	entry[Rescode]{"MSK_RES_WRN_NAME_MAX_LEN", ResWrnNameMaxLen},
	entry[Rescode]{"MSK_RES_WRN_SPAR_MAX_LEN", ResWrnSparMaxLen},
	entry[Rescode]{"MSK_RES_WRN_LICENSE_EXPIRE", ResWrnLicenseExpire},
	entry[Rescode]{"MSK_RES_WRN_LICENSE_SERVER", ResWrnLicenseServer},
	entry[Rescode]{"MSK_RES_WRN_EMPTY_NAME", ResWrnEmptyName},
	entry[Rescode]{"MSK_RES_WRN_USING_GENERIC_NAMES", ResWrnUsingGenericName},
	entry[Rescode]{"MSK_RES_ERR_LICENSE", ResErrLicense},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_EXPIRED", ResErrLicenseExpired},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_VERSION", ResErrLicenseVersion},
	entry[Rescode]{"MSK_RES_ERR_SIZE_LICENSE", ResErrSizeLicense},
	entry[Rescode]{"MSK_RES_ERR_PROB_LICENSE", ResErrProbLicense},
	entry[Rescode]{"MSK_RES_ERR_FILE_LICENSE", ResErrFileLicense},
	entry[Rescode]{"MSK_RES_ERR_MISSING_LICENSE_FILE", ResErrMissingLicenseFile},
	entry[Rescode]{"MSK_RES_ERR_SIZE_LICENSE_CON", ResErrSizeLicenseCon},
	entry[Rescode]{"MSK_RES_ERR_SIZE_LICENSE_VAR", ResErrSizeLicenseVar},
	entry[Rescode]{"MSK_RES_ERR_SIZE_LICENSE_INTVAR", ResErrSizeLicenseIntvar},
	entry[Rescode]{"MSK_RES_ERR_OPTIMIZER_LICENSE", ResErrOptimizerLicense},
	entry[Rescode]{"MSK_RES_ERR_FLEXLM", ResErrFlexlm},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_SERVER", ResErrLicenseServer},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_MAX", ResErrLicenseMax},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_MOSEKLM_DAEMON", ResErrLicenseDaemon},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_FEATURE", ResErrLicenseFeature},
	entry[Rescode]{"MSK_RES_ERR_PLATFORM_NOT_LICENSED", ResErrPlatformNotLicensed},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_CANNOT_ALLOCATE", ResErrLicenseCannotAlloc},
	entry[Rescode]{"MSK_RES_ERR_LICENSE_CANNOT_CONNECT", ResErrLicenseCannotConn},
	entry[Rescode]{"MSK_RES_ERR_OPEN_DL", ResErrOpenDl},
	entry[Rescode]{"MSK_RES_ERR_OLDER_DLL", ResErrOlderDll},
	entry[Rescode]{"MSK_RES_ERR_NEWER_DLL", ResErrNewerDll},
	entry[Rescode]{"MSK_RES_ERR_LINK_FILE_DLL", ResErrLinkFileDll},
	entry[Rescode]{"MSK_RES_ERR_SPACE", ResErrSpace},
	entry[Rescode]{"MSK_RES_ERR_FILE_OPEN", ResErrFileOpen},
	entry[Rescode]{"MSK_RES_ERR_FILE_READ", ResErrFileRead},
	entry[Rescode]{"MSK_RES_ERR_FILE_WRITE", ResErrFileWrite},
	entry[Rescode]{"MSK_RES_ERR_DATA_FILE_EXT", ResErrDataFileExt},
	entry[Rescode]{"MSK_RES_ERR_INVALID_FILE_NAME", ResErrInvalidFileName},
	entry[Rescode]{"MSK_RES_ERR_INVALID_SOL_FILE_NAME", ResErrInvalidSolFileName},
	entry[Rescode]{"MSK_RES_ERR_END_OF_FILE", ResErrEndOfFile},
	entry[Rescode]{"MSK_RES_ERR_NULL_ENV", ResErrNullEnv},
	entry[Rescode]{"MSK_RES_ERR_NULL_TASK", ResErrNullTask},
	entry[Rescode]{"MSK_RES_ERR_INVALID_STREAM", ResErrInvalidStream},
	entry[Rescode]{"MSK_RES_ERR_NO_INIT_ENV", ResErrNoInitEnv},
	entry[Rescode]{"MSK_RES_ERR_INVALID_TASK", ResErrInvalidTask},
	entry[Rescode]{"MSK_RES_ERR_NULL_POINTER", ResErrNullPointer},
	entry[Rescode]{"MSK_RES_ERR_LIVING_TASKS", ResErrLivingTasks},
	entry[Rescode]{"MSK_RES_ERR_BLANK_NAME", ResErrBlankName},
	entry[Rescode]{"MSK_RES_ERR_DUP_NAME", ResErrDupName},
	entry[Rescode]{"MSK_RES_ERR_INVALID_OBJ_NAME", ResErrInvalidObjName},
	entry[Rescode]{"MSK_RES_ERR_INVALID_CON_NAME", ResErrInvalidConName},
	entry[Rescode]{"MSK_RES_ERR_INVALID_VAR_NAME", ResErrInvalidVarName},
	entry[Rescode]{"MSK_RES_ERR_READ_FORMAT", ResErrReadFormat},
	entry[Rescode]{"MSK_RES_ERR_MPS_FILE", ResErrMpsFile},
	entry[Rescode]{"MSK_RES_ERR_INDEX_IS_TOO_SMALL", ResErrIndexIsTooSmall},
	entry[Rescode]{"MSK_RES_ERR_INDEX_IS_TOO_LARGE", ResErrIndexIsTooLarge},
	entry[Rescode]{"MSK_RES_ERR_PARAM_NAME", ResErrParamName},
	entry[Rescode]{"MSK_RES_ERR_PARAM_NAME_DOU", ResErrParamNameDou},
	entry[Rescode]{"MSK_RES_ERR_PARAM_NAME_INT", ResErrParamNameInt},
	entry[Rescode]{"MSK_RES_ERR_PARAM_NAME_STR", ResErrParamNameStr},
	entry[Rescode]{"MSK_RES_ERR_PARAM_INDEX", ResErrParamIndex},
	entry[Rescode]{"MSK_RES_ERR_PARAM_IS_TOO_LARGE", ResErrParamIsTooLarge},
	entry[Rescode]{"MSK_RES_ERR_PARAM_IS_TOO_SMALL", ResErrParamIsTooSmall},
	entry[Rescode]{"MSK_RES_ERR_PARAM_VALUE_STR", ResErrParamValueStr},
	entry[Rescode]{"MSK_RES_ERR_PARAM_TYPE", ResErrParamType},
	entry[Rescode]{"MSK_RES_ERR_INF_DOU_INDEX", ResErrInfDouIndex},
	entry[Rescode]{"MSK_RES_ERR_INF_INT_INDEX", ResErrInfIntIndex},
	entry[Rescode]{"MSK_RES_ERR_INDEX_ARR_IS_TOO_SMALL", ResErrIndexArrIsTooSmall},
	entry[Rescode]{"MSK_RES_ERR_INDEX_ARR_IS_TOO_LARGE", ResErrIndexArrIsTooLarge},
	entry[Rescode]{"MSK_RES_ERR_ARG_IS_TOO_SMALL", ResErrArgIsTooSmall},
	entry[Rescode]{"MSK_RES_ERR_ARG_IS_TOO_LARGE", ResErrArgIsTooLarge},
	entry[Rescode]{"MSK_RES_ERR_INVALID_WHICHSOL", ResErrInvalidWhichsol},
	entry[Rescode]{"MSK_RES_ERR_INF_DOU_NAME", ResErrInfDouName},
	entry[Rescode]{"MSK_RES_ERR_INF_INT_NAME", ResErrInfIntName},
	entry[Rescode]{"MSK_RES_ERR_INF_TYPE", ResErrInfType},
	entry[Rescode]{"MSK_RES_ERR_INDEX", ResErrIndex},
	entry[Rescode]{"MSK_RES_ERR_WHICHSOL", ResErrWhichsol},
	entry[Rescode]{"MSK_RES_ERR_SOLITEM", ResErrSolitem},
	entry[Rescode]{"MSK_RES_ERR_INV_BK", ResErrInvBk},
	entry[Rescode]{"MSK_RES_ERR_INV_BKC", ResErrInvBkc},
	entry[Rescode]{"MSK_RES_ERR_INV_BKX", ResErrInvBkx},
	entry[Rescode]{"MSK_RES_ERR_INV_VAR_TYPE", ResErrInvVarType},
	entry[Rescode]{"MSK_RES_ERR_INTERNAL", ResErrInternal},
	entry[Rescode]{"MSK_RES_ERR_SERVER_CONNECT", ResErrServerConnect},
	entry[Rescode]{"MSK_RES_ERR_SERVER_PROTOCOL", ResErrServerProtocol},
	entry[Rescode]{"MSK_RES_ERR_SERVER_STATUS", ResErrServerStatus},
	entry[Rescode]{"MSK_RES_ERR_SERVER_TOKEN", ResErrServerToken},
	entry[Rescode]{"MSK_RES_TRM_MAX_ITERATIONS", ResTrmMaxIterations},
	entry[Rescode]{"MSK_RES_TRM_MAX_TIME", ResTrmMaxTime},
	entry[Rescode]{"MSK_RES_TRM_OBJECTIVE_RANGE", ResTrmObjectiveRange},
	entry[Rescode]{"MSK_RES_TRM_STALL", ResTrmStall},
	entry[Rescode]{"MSK_RES_TRM_USER_CALLBACK", ResTrmUserCallback},
	entry[Rescode]{"MSK_RES_TRM_MIO_NUM_RELAXS", ResTrmMioNumRelaxs},
	entry[Rescode]{"MSK_RES_TRM_MIO_NUM_BRANCHES", ResTrmMioNumBranches},
	entry[Rescode]{"MSK_RES_TRM_NUM_MAX_NUM_INT_SOLUTIONS", ResTrmNumMaxNumIntSolution},
	entry[Rescode]{"MSK_RES_TRM_MAX_NUM_SETBACKS", ResTrmMaxNumSetbacks},
	entry[Rescode]{"MSK_RES_TRM_NUMERICAL_PROBLEM", ResTrmNumericalProblem},
	entry[Rescode]{"MSK_RES_TRM_LOST_RACE", ResTrmLostRace},
	entry[Rescode]{"MSK_RES_TRM_INTERNAL", ResTrmInternal},
	entry[Rescode]{"MSK_RES_TRM_INTERNAL_STOP", ResTrmInternalStop},
)

// String returns the symbolic MOSEK name of the code.
func (r Rescode) String() string { return rescodes.name(r) }

// ParseRescode resolves a symbolic name such as "MSK_RES_OK".
func ParseRescode(name string) (Rescode, error) { return rescodes.parse(name) }

// Class returns the response class of the code. MOSEK partitions the
// code space by range, so codes missing from the catalog classify too.
func (r Rescode) Class() ResponseClass {
	switch {
	case r == ResOK:
		return ResponseOK
	case r >= 50 && r < 1000:
		return ResponseWrn
	case r >= 1000 && r < 10000:
		return ResponseErr
	case r >= 10000:
		return ResponseTrm
	default:
		return ResponseUnk
	}
}

// ResponseClass groups response codes.
type ResponseClass int32

const (
	ResponseOK ResponseClass = iota
	ResponseWrn
	ResponseTrm
	ResponseErr
	ResponseUnk
)

var responseClasses = newCatalog("responseclass",
	entry[ResponseClass]{"MSK_RESPONSE_OK", ResponseOK},
	entry[ResponseClass]{"MSK_RESPONSE_WRN", ResponseWrn},
	entry[ResponseClass]{"MSK_RESPONSE_TRM", ResponseTrm},
	entry[ResponseClass]{"MSK_RESPONSE_ERR", ResponseErr},
	entry[ResponseClass]{"MSK_RESPONSE_UNK", ResponseUnk},
)

func (c ResponseClass) String() string { return responseClasses.name(c) }

// ----------------------------------------------------------------------------
// Solution and problem status
// ----------------------------------------------------------------------------

// SolSta is the status of a solution.
type SolSta int32

const (
	SolStaUnknown SolSta = iota
	SolStaOptimal
	SolStaPrimFeas
	SolStaDualFeas
	SolStaPrimAndDualFeas
	SolStaPrimInfeasCer
	SolStaDualInfeasCer
	SolStaPrimIllposedCer
	SolStaDualIllposedCer
	SolStaIntegerOptimal
)

var solStas = newCatalog("solsta",
	entry[SolSta]{"MSK_SOL_STA_UNKNOWN", SolStaUnknown},
	entry[SolSta]{"MSK_SOL_STA_OPTIMAL", SolStaOptimal},
	entry[SolSta]{"MSK_SOL_STA_PRIM_FEAS", SolStaPrimFeas},
	entry[SolSta]{"MSK_SOL_STA_DUAL_FEAS", SolStaDualFeas},
	entry[SolSta]{"MSK_SOL_STA_PRIM_AND_DUAL_FEAS", SolStaPrimAndDualFeas},
	entry[SolSta]{"MSK_SOL_STA_PRIM_INFEAS_CER", SolStaPrimInfeasCer},
	entry[SolSta]{"MSK_SOL_STA_DUAL_INFEAS_CER", SolStaDualInfeasCer},
	entry[SolSta]{"MSK_SOL_STA_PRIM_ILLPOSED_CER", SolStaPrimIllposedCer},
	entry[SolSta]{"MSK_SOL_STA_DUAL_ILLPOSED_CER", SolStaDualIllposedCer},
	entry[SolSta]{"MSK_SOL_STA_INTEGER_OPTIMAL", SolStaIntegerOptimal},
)

func (s SolSta) String() string { return solStas.name(s) }

// ParseSolSta resolves a symbolic solution status name.
func ParseSolSta(name string) (SolSta, error) { return solStas.parse(name) }

// IsOptimal reports whether the status certifies optimality.
func (s SolSta) IsOptimal() bool {
	return s == SolStaOptimal || s == SolStaIntegerOptimal
}

// IsCertificate reports whether the solution is an infeasibility certificate.
func (s SolSta) IsCertificate() bool {
	return s == SolStaPrimInfeasCer || s == SolStaDualInfeasCer ||
		s == SolStaPrimIllposedCer || s == SolStaDualIllposedCer
}

// ProSta is the feasibility status of the problem.
type ProSta int32

const (
	ProStaUnknown ProSta = iota
	ProStaPrimAndDualFeas
	ProStaPrimFeas
	ProStaDualFeas
	ProStaPrimInfeas
	ProStaDualInfeas
	ProStaPrimAndDualInfeas
	ProStaIllPosed
	ProStaPrimInfeasOrUnbounded
)

var proStas = newCatalog("prosta",
	entry[ProSta]{"MSK_PRO_STA_UNKNOWN", ProStaUnknown},
	entry[ProSta]{"MSK_PRO_STA_PRIM_AND_DUAL_FEAS", ProStaPrimAndDualFeas},
	entry[ProSta]{"MSK_PRO_STA_PRIM_FEAS", ProStaPrimFeas},
	entry[ProSta]{"MSK_PRO_STA_DUAL_FEAS", ProStaDualFeas},
	entry[ProSta]{"MSK_PRO_STA_PRIM_INFEAS", ProStaPrimInfeas},
	entry[ProSta]{"MSK_PRO_STA_DUAL_INFEAS", ProStaDualInfeas},
	entry[ProSta]{"MSK_PRO_STA_PRIM_AND_DUAL_INFEAS", ProStaPrimAndDualInfeas},
	entry[ProSta]{"MSK_PRO_STA_ILL_POSED", ProStaIllPosed},
	entry[ProSta]{"MSK_PRO_STA_PRIM_INFEAS_OR_UNBOUNDED", ProStaPrimInfeasOrUnbounded},
)

func (p ProSta) String() string { return proStas.name(p) }

// ParseProSta resolves a symbolic problem status name.
func ParseProSta(name string) (ProSta, error) { return proStas.parse(name) }

// SolType selects one of the solutions stored in a task.
type SolType int32

const (
	SolItr SolType = iota // interior-point solution
	SolBas                // basic solution
	SolItg                // integer solution
)

var solTypes = newCatalog("soltype",
	entry[SolType]{"MSK_SOL_ITR", SolItr},
	entry[SolType]{"MSK_SOL_BAS", SolBas},
	entry[SolType]{"MSK_SOL_ITG", SolItg},
)

func (s SolType) String() string { return solTypes.name(s) }

// ParseSolType resolves a symbolic solution type name. The short forms
// "itr", "bas" and "itg" are accepted as well.
func ParseSolType(name string) (SolType, error) {
	switch name {
	case "itr":
		return SolItr, nil
	case "bas":
		return SolBas, nil
	case "itg":
		return SolItg, nil
	}
	return solTypes.parse(name)
}

// ----------------------------------------------------------------------------
// Problem data
// ----------------------------------------------------------------------------

// ObjSense is the objective sense.
type ObjSense int32

const (
	ObjSenseMinimize ObjSense = iota
	ObjSenseMaximize
)

var objSenses = newCatalog("objsense",
	entry[ObjSense]{"MSK_OBJECTIVE_SENSE_MINIMIZE", ObjSenseMinimize},
	entry[ObjSense]{"MSK_OBJECTIVE_SENSE_MAXIMIZE", ObjSenseMaximize},
)

func (o ObjSense) String() string { return objSenses.name(o) }

// BoundKey describes which bounds of a variable or constraint are active.
type BoundKey int32

const (
	BkLo BoundKey = iota // lower bound only
	BkUp                 // upper bound only
	BkFx                 // fixed, lower equals upper
	BkFr                 // free
	BkRa                 // ranged
)

var boundKeyCatalog = newCatalog("boundkey",
	entry[BoundKey]{"MSK_BK_LO", BkLo},
	entry[BoundKey]{"MSK_BK_UP", BkUp},
	entry[BoundKey]{"MSK_BK_FX", BkFx},
	entry[BoundKey]{"MSK_BK_FR", BkFr},
	entry[BoundKey]{"MSK_BK_RA", BkRa},
)

func (b BoundKey) String() string { return boundKeyCatalog.name(b) }

// ParseBoundKey resolves a symbolic bound key name.
func ParseBoundKey(name string) (BoundKey, error) { return boundKeyCatalog.parse(name) }

// DomainType is the type of a domain used by affine conic constraints.
type DomainType int32

const (
	DomainR DomainType = iota
	DomainRZero
	DomainRPlus
	DomainRMinus
	DomainQuadraticCone
	DomainRQuadraticCone
	DomainPrimalExpCone
	DomainDualExpCone
	DomainPrimalGeoMeanCone
	DomainDualGeoMeanCone
	DomainPrimalPowerCone
	DomainDualPowerCone
	DomainSvecPSDCone
)

var domainTypes = newCatalog("domaintype",
	entry[DomainType]{"MSK_DOMAIN_R", DomainR},
	entry[DomainType]{"MSK_DOMAIN_RZERO", DomainRZero},
	entry[DomainType]{"MSK_DOMAIN_RPLUS", DomainRPlus},
	entry[DomainType]{"MSK_DOMAIN_RMINUS", DomainRMinus},
	entry[DomainType]{"MSK_DOMAIN_QUADRATIC_CONE", DomainQuadraticCone},
	entry[DomainType]{"MSK_DOMAIN_RQUADRATIC_CONE", DomainRQuadraticCone},
	entry[DomainType]{"MSK_DOMAIN_PRIMAL_EXP_CONE", DomainPrimalExpCone},
	entry[DomainType]{"MSK_DOMAIN_DUAL_EXP_CONE", DomainDualExpCone},
	entry[DomainType]{"MSK_DOMAIN_PRIMAL_GEO_MEAN_CONE", DomainPrimalGeoMeanCone},
	entry[DomainType]{"MSK_DOMAIN_DUAL_GEO_MEAN_CONE", DomainDualGeoMeanCone},
	entry[DomainType]{"MSK_DOMAIN_PRIMAL_POWER_CONE", DomainPrimalPowerCone},
	entry[DomainType]{"MSK_DOMAIN_DUAL_POWER_CONE", DomainDualPowerCone},
	entry[DomainType]{"MSK_DOMAIN_SVEC_PSD_CONE", DomainSvecPSDCone},
)

func (d DomainType) String() string { return domainTypes.name(d) }

// ParseDomainType resolves a symbolic domain type name.
func ParseDomainType(name string) (DomainType, error) { return domainTypes.parse(name) }

// VariableType specifies whether a variable is continuous or integer.
type VariableType int32

const (
	// Continuous indicates a continuous variable (default).
	Continuous VariableType = iota
	// Integer indicates an integer variable.
	Integer
)

var variableTypes = newCatalog("variabletype",
	entry[VariableType]{"MSK_VAR_TYPE_CONT", Continuous},
	entry[VariableType]{"MSK_VAR_TYPE_INT", Integer},
)

func (v VariableType) String() string { return variableTypes.name(v) }

// ----------------------------------------------------------------------------
// I/O
// ----------------------------------------------------------------------------

// StreamType identifies one of the task output streams.
type StreamType int32

const (
	StreamLog StreamType = iota
	StreamMsg
	StreamErr
	StreamWrn
)

var streamTypes = newCatalog("streamtype",
	entry[StreamType]{"MSK_STREAM_LOG", StreamLog},
	entry[StreamType]{"MSK_STREAM_MSG", StreamMsg},
	entry[StreamType]{"MSK_STREAM_ERR", StreamErr},
	entry[StreamType]{"MSK_STREAM_WRN", StreamWrn},
)

func (s StreamType) String() string { return streamTypes.name(s) }

// DataFormat is a task file format.
type DataFormat int32

const (
	DataFormatExtension DataFormat = iota
	DataFormatMPS
	DataFormatLP
	DataFormatOP
	DataFormatFreeMPS
	DataFormatTask
	DataFormatPTF
	DataFormatCB
	DataFormatJSONTask
)

var dataFormats = newCatalog("dataformat",
	entry[DataFormat]{"MSK_DATA_FORMAT_EXTENSION", DataFormatExtension},
	entry[DataFormat]{"MSK_DATA_FORMAT_MPS", DataFormatMPS},
	entry[DataFormat]{"MSK_DATA_FORMAT_LP", DataFormatLP},
	entry[DataFormat]{"MSK_DATA_FORMAT_OP", DataFormatOP},
	entry[DataFormat]{"MSK_DATA_FORMAT_FREE_MPS", DataFormatFreeMPS},
	entry[DataFormat]{"MSK_DATA_FORMAT_TASK", DataFormatTask},
	entry[DataFormat]{"MSK_DATA_FORMAT_PTF", DataFormatPTF},
	entry[DataFormat]{"MSK_DATA_FORMAT_CB", DataFormatCB},
	entry[DataFormat]{"MSK_DATA_FORMAT_JSON_TASK", DataFormatJSONTask},
)

func (d DataFormat) String() string { return dataFormats.name(d) }

// CompressType is a file compression scheme.
type CompressType int32

const (
	CompressNone CompressType = iota
	CompressFree
	CompressGzip
	CompressZstd
)

var compressTypes = newCatalog("compresstype",
	entry[CompressType]{"MSK_COMPRESS_NONE", CompressNone},
	entry[CompressType]{"MSK_COMPRESS_FREE", CompressFree},
	entry[CompressType]{"MSK_COMPRESS_GZIP", CompressGzip},
	entry[CompressType]{"MSK_COMPRESS_ZSTD", CompressZstd},
)

func (c CompressType) String() string { return compressTypes.name(c) }

// SolFormat is a solution file format.
type SolFormat int32

const (
	SolFormatExtension SolFormat = iota
	SolFormatB
	SolFormatTask
	SolFormatJSONTask
)

var solFormats = newCatalog("solformat",
	entry[SolFormat]{"MSK_SOL_FORMAT_EXTENSION", SolFormatExtension},
	entry[SolFormat]{"MSK_SOL_FORMAT_B", SolFormatB},
	entry[SolFormat]{"MSK_SOL_FORMAT_TASK", SolFormatTask},
	entry[SolFormat]{"MSK_SOL_FORMAT_JSON_TASK", SolFormatJSONTask},
)

func (s SolFormat) String() string { return solFormats.name(s) }

// ----------------------------------------------------------------------------
// Solver
// ----------------------------------------------------------------------------

// StaKey is the basis status of a constraint or variable.
type StaKey int32

const (
	StaKeyUnk StaKey = iota
	StaKeyBas
	StaKeySupbas
	StaKeyLow
	StaKeyUpr
	StaKeyFix
	StaKeyInf
)

var staKeys = newCatalog("stakey",
	entry[StaKey]{"MSK_SK_UNK", StaKeyUnk},
	entry[StaKey]{"MSK_SK_BAS", StaKeyBas},
	entry[StaKey]{"MSK_SK_SUPBAS", StaKeySupbas},
	entry[StaKey]{"MSK_SK_LOW", StaKeyLow},
	entry[StaKey]{"MSK_SK_UPR", StaKeyUpr},
	entry[StaKey]{"MSK_SK_FIX", StaKeyFix},
	entry[StaKey]{"MSK_SK_INF", StaKeyInf},
)

func (s StaKey) String() string { return staKeys.name(s) }

// OptimizerType selects the optimizer used by Optimize.
type OptimizerType int32

const (
	OptimizerConic OptimizerType = iota
	OptimizerDualSimplex
	OptimizerFree
	OptimizerFreeSimplex
	OptimizerIntpnt
	OptimizerMixedInt
	OptimizerPrimalSimplex
)

var optimizerTypes = newCatalog("optimizertype",
	entry[OptimizerType]{"MSK_OPTIMIZER_CONIC", OptimizerConic},
	entry[OptimizerType]{"MSK_OPTIMIZER_DUAL_SIMPLEX", OptimizerDualSimplex},
	entry[OptimizerType]{"MSK_OPTIMIZER_FREE", OptimizerFree},
	entry[OptimizerType]{"MSK_OPTIMIZER_FREE_SIMPLEX", OptimizerFreeSimplex},
	entry[OptimizerType]{"MSK_OPTIMIZER_INTPNT", OptimizerIntpnt},
	entry[OptimizerType]{"MSK_OPTIMIZER_MIXED_INT", OptimizerMixedInt},
	entry[OptimizerType]{"MSK_OPTIMIZER_PRIMAL_SIMPLEX", OptimizerPrimalSimplex},
)

func (o OptimizerType) String() string { return optimizerTypes.name(o) }

// ParseOptimizerType resolves a symbolic optimizer name.
func ParseOptimizerType(name string) (OptimizerType, error) { return optimizerTypes.parse(name) }

// Feature is a licensed feature that can be checked out explicitly.
type Feature int32

const (
	FeaturePTS  Feature = iota // base optimizers
	FeaturePTON                // nonlinear extension
)

var features = newCatalog("feature",
	entry[Feature]{"MSK_FEATURE_PTS", FeaturePTS},
	entry[Feature]{"MSK_FEATURE_PTON", FeaturePTON},
)

func (f Feature) String() string { return features.name(f) }
