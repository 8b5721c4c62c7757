package mosek

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewError(t *testing.T) {
	if err := newError("Op", ResOK); err != nil {
		t.Errorf("OK produced error %v", err)
	}
	if err := newError("Op", ResWrnLargeBound); err != nil {
		t.Errorf("warning produced error %v", err)
	}
	if err := newError("Op", ResTrmMaxTime); err != nil {
		t.Errorf("termination code produced error %v", err)
	}

	err := newError("PutCj", ResErrIndexIsTooLarge)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "mosek: PutCj failed with MSK_RES_ERR_INDEX_IS_TOO_LARGE" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	err := &Error{Op: "ReadData", Code: ResErrInvalidFileName, Msg: "no such file"}
	if got := err.Error(); !strings.Contains(got, "ReadData") || !strings.Contains(got, "no such file") ||
		!strings.Contains(got, "MSK_RES_ERR_INVALID_FILE_NAME") {
		t.Errorf("Error() = %q", got)
	}

	werr := newErrorMsg("PutCSlice", "range [0, 3) needs 3 values, got 2")
	if got := werr.Error(); got != "mosek: PutCSlice failed: range [0, 3) needs 3 values, got 2" {
		t.Errorf("Error() = %q", got)
	}
	if CodeOf(werr) != ResErrWrapper {
		t.Errorf("CodeOf = %s", CodeOf(werr))
	}
	var e *Error
	if !errors.As(werr, &e) || e.Class() != ResponseErr {
		t.Error("wrapper error should classify as an error")
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(nil) != ResOK {
		t.Error("CodeOf(nil) should be OK")
	}
	if CodeOf(errors.New("other")) != ResErrWrapper {
		t.Error("foreign errors should report the wrapper code")
	}
	wrapped := fmt.Errorf("solve: %w", &Error{Op: "Optimize", Code: ResErrLicenseExpired})
	if !IsCode(wrapped, ResErrLicenseExpired) {
		t.Error("IsCode should see through wrapping")
	}
	if !IsLicenseError(wrapped) {
		t.Error("expired license is a license error")
	}
	if IsLicenseError(&Error{Op: "Optimize", Code: ResErrSpace}) {
		t.Error("out of space is not a license error")
	}
	if IsCode(nil, ResOK) {
		t.Error("IsCode(nil) should be false")
	}
}
