package mosek

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestRescodeNames(t *testing.T) {
	tests := []struct {
		code Rescode
		name string
	}{
		{ResOK, "MSK_RES_OK"},
		{ResErrNullTask, "MSK_RES_ERR_NULL_TASK"},
		{ResTrmMaxTime, "MSK_RES_TRM_MAX_TIME"},
		{ResErrLicenseDaemon, "MSK_RES_ERR_LICENSE_MOSEKLM_DAEMON"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.name {
			t.Errorf("%d.String() = %q, expected %q", int32(tt.code), got, tt.name)
		}
		back, err := ParseRescode(tt.name)
		if err != nil {
			t.Errorf("ParseRescode(%q) failed: %v", tt.name, err)
		}
		if back != tt.code {
			t.Errorf("ParseRescode(%q) = %d, expected %d", tt.name, back, tt.code)
		}
	}
}

func TestUnknownValues(t *testing.T) {
	if got := Rescode(424242).String(); got != "rescode(424242)" {
		t.Errorf("unknown code prints %q", got)
	}
	if _, err := ParseRescode("MSK_RES_NOT_A_CODE"); err == nil {
		t.Error("expected parse error for unknown name")
	}
	if _, err := ParseBoundKey("MSK_BK_SOMETIMES"); err == nil {
		t.Error("expected parse error for unknown bound key")
	}
}

func TestRescodeClass(t *testing.T) {
	tests := []struct {
		code  Rescode
		class ResponseClass
	}{
		{ResOK, ResponseOK},
		{ResWrnLargeBound, ResponseWrn},
		{ResWrnUsingGenericName, ResponseWrn},
		{ResErrLicense, ResponseErr},
		{ResErrInternal, ResponseErr},
		{ResTrmMaxIterations, ResponseTrm},
		{ResTrmInternalStop, ResponseTrm},
		{Rescode(-5), ResponseUnk},
	}
	for _, tt := range tests {
		if got := tt.code.Class(); got != tt.class {
			t.Errorf("%s.Class() = %s, expected %s", tt.code, got, tt.class)
		}
	}
}

func TestFamilies(t *testing.T) {
	want := []string{"boundkey", "domaintype", "optimizertype", "prosta", "rescode", "solsta", "soltype", "streamtype"}
	have := map[string]bool{}
	for _, f := range Families() {
		have[f] = true
	}
	for _, f := range want {
		if !have[f] {
			t.Errorf("family %q not registered", f)
		}
	}

	names, err := Names("boundkey")
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	expected := []string{"MSK_BK_LO", "MSK_BK_UP", "MSK_BK_FX", "MSK_BK_FR", "MSK_BK_RA"}
	if len(names) != len(expected) {
		t.Fatalf("Names(boundkey) = %v", names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names(boundkey)[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}

	if _, err := Names("nope"); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestLookup(t *testing.T) {
	v, err := Lookup("soltype", "MSK_SOL_ITG")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if SolType(v) != SolItg {
		t.Errorf("Lookup = %d, expected %d", v, SolItg)
	}
	if _, err := Lookup("soltype", "MSK_SOL_XYZ"); err == nil {
		t.Error("expected error for unknown name")
	}
}

// Every catalog must be a bijection: each name maps to a value that maps
// back to the same name.
func TestCatalogBijection(t *testing.T) {
	for _, f := range Families() {
		names, err := Names(f)
		if err != nil {
			t.Fatal(err)
		}
		seen := map[int32]string{}
		for _, n := range names {
			v, err := Lookup(f, n)
			if err != nil {
				t.Errorf("%s: %v", f, err)
				continue
			}
			if prev, dup := seen[v]; dup {
				t.Errorf("%s: %q and %q share value %d", f, prev, n, v)
			}
			seen[v] = n
		}
	}
}

func TestParseSolTypeShortNames(t *testing.T) {
	for name, want := range map[string]SolType{"itr": SolItr, "bas": SolBas, "itg": SolItg, "MSK_SOL_BAS": SolBas} {
		got, err := ParseSolType(name)
		if err != nil || got != want {
			t.Errorf("ParseSolType(%q) = %s, %v", name, got, err)
		}
	}
}

func TestSolStaPredicates(t *testing.T) {
	if !SolStaOptimal.IsOptimal() || !SolStaIntegerOptimal.IsOptimal() {
		t.Error("optimal statuses not recognized")
	}
	if SolStaPrimFeas.IsOptimal() {
		t.Error("feasible is not optimal")
	}
	if !SolStaPrimInfeasCer.IsCertificate() || SolStaOptimal.IsCertificate() {
		t.Error("certificate detection is wrong")
	}
}
