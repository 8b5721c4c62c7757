package mosek

import (
	"errors"
	"fmt"
)

// ResErrWrapper marks failures detected by this package before any native
// call was made. It lies outside the range of codes MOSEK itself returns.
const ResErrWrapper Rescode = -1

// ErrNotLinked is returned when the package was built without the native
// MOSEK library. Rebuild with `-tags mosek` and MOSEK's headers and
// libraries on the cgo search paths.
var ErrNotLinked = errors.New("mosek: native library not linked; rebuild with -tags mosek")

// Error represents a MOSEK error with context about which operation failed.
type Error struct {
	Op   string  // Operation that failed (e.g., "Optimize", "PutVarBound")
	Code Rescode // MOSEK response code
	Msg  string  // Additional context, usually the native last-error message
}

func (e *Error) Error() string {
	if e.Code == ResErrWrapper {
		return fmt.Sprintf("mosek: %s failed: %s", e.Op, e.Msg)
	}
	if e.Msg != "" {
		return fmt.Sprintf("mosek: %s failed: %s: %s", e.Op, e.Code, e.Msg)
	}
	return fmt.Sprintf("mosek: %s failed with %s", e.Op, e.Code)
}

// Class returns the response class of the error code.
func (e *Error) Class() ResponseClass {
	if e.Code == ResErrWrapper {
		return ResponseErr
	}
	return e.Code.Class()
}

// newError creates a new Error if code is an error.
// Returns nil for success, warnings and termination codes; termination
// codes are reported separately by Optimize.
func newError(op string, code Rescode) error {
	switch code.Class() {
	case ResponseOK, ResponseWrn, ResponseTrm:
		return nil
	}
	return &Error{Op: op, Code: code}
}

// newErrorMsg creates a wrapper-side Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Code: ResErrWrapper, Msg: msg}
}

// CodeOf extracts the response code carried by err. It returns ResOK for a
// nil error and ResErrWrapper for errors not produced by this package.
func CodeOf(err error) Rescode {
	if err == nil {
		return ResOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ResErrWrapper
}

// IsCode reports whether err carries the given response code.
func IsCode(err error, code Rescode) bool {
	return err != nil && CodeOf(err) == code
}

// IsLicenseError reports whether err is one of MOSEK's licensing failures.
func IsLicenseError(err error) bool {
	c := CodeOf(err)
	return c >= ResErrLicense && c <= ResErrLicenseCannotConn
}
