package mosek

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Env holds the MOSEK environment: license checkout and global settings
// shared by its tasks.
//
// Always call Close() when done to release resources:
//
//	env, _ := NewEnv()
//	defer env.Close()
type Env struct {
	ptr unsafe.Pointer
}

// NewEnv creates a new MOSEK environment.
//
// The environment must be closed with Close() when no longer needed. Tasks
// created from it must be closed first.
func NewEnv() (*Env, error) {
	if !linked {
		return nil, ErrNotLinked
	}
	ptr, r := nativeMakeEnv()
	if err := newError("NewEnv", r); err != nil {
		return nil, err
	}
	if ptr == nil {
		return nil, newErrorMsg("NewEnv", "failed to create MOSEK environment")
	}

	e := &Env{ptr: ptr}
	runtime.SetFinalizer(e, (*Env).Close)
	return e, nil
}

// Close releases the environment.
// It is safe to call Close multiple times.
func (e *Env) Close() {
	if e.ptr != nil {
		nativeDeleteEnv(e.ptr)
		e.ptr = nil
	}
}

// handle returns the native pointer, nil for a nil Env.
func (e *Env) handle() unsafe.Pointer {
	if e == nil {
		return nil
	}
	return e.ptr
}

// Version is a MOSEK library version.
type Version struct {
	Major, Minor, Revision int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// LibraryVersion reports the version of the linked MOSEK library.
func LibraryVersion() (Version, error) {
	if !linked {
		return Version{}, ErrNotLinked
	}
	ma, mi, rev, r := nativeVersion()
	if err := newError("LibraryVersion", r); err != nil {
		return Version{}, err
	}
	return Version{Major: int(ma), Minor: int(mi), Revision: int(rev)}, nil
}

// Version reports the version of the linked MOSEK library.
func (e *Env) Version() (Version, error) {
	return LibraryVersion()
}

// CheckoutLicense checks out a license feature ahead of the first solve.
func (e *Env) CheckoutLicense(feature Feature) error {
	if e.ptr == nil {
		return newErrorMsg("CheckoutLicense", "environment is closed")
	}
	return newError("CheckoutLicense", nativeCheckoutLicense(e.ptr, feature))
}

// NewTask creates a task attached to this environment.
func (e *Env) NewTask() (*Task, error) {
	return NewTask(e)
}

// BatchOptions control Env.OptimizeBatch.
type BatchOptions struct {
	// Race stops all tasks as soon as one finishes.
	Race bool
	// MaxTime is the time limit in seconds for the whole batch; zero or
	// negative means no limit.
	MaxTime float64
	// NumThreads is the number of tasks solved concurrently; zero lets
	// MOSEK decide.
	NumThreads int
}

// BatchResult is the outcome of one task in a batch.
type BatchResult struct {
	Termination Rescode
	Err         error
}

// OptimizeBatch optimizes several tasks in parallel inside the native
// library. Each task gets its own termination code and error.
func (e *Env) OptimizeBatch(tasks []*Task, opts BatchOptions) ([]BatchResult, error) {
	if e.ptr == nil {
		return nil, newErrorMsg("OptimizeBatch", "environment is closed")
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	ptrs := make([]unsafe.Pointer, len(tasks))
	for i, t := range tasks {
		if t == nil || t.ptr == nil {
			return nil, newErrorMsg("OptimizeBatch", fmt.Sprintf("task %d is closed", i))
		}
		ptrs[i] = t.ptr
	}

	maxTime := opts.MaxTime
	if maxTime <= 0 {
		maxTime = -1
	}
	trm, res, r := nativeOptimizeBatch(e.ptr, opts.Race, maxTime, int32(opts.NumThreads), ptrs)
	if err := newError("OptimizeBatch", r); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(tasks))
	for i := range tasks {
		results[i] = BatchResult{
			Termination: trm[i],
			Err:         tasks[i].check("Optimize", res[i]),
		}
	}
	for _, t := range tasks {
		runtime.KeepAlive(t)
	}
	return results, nil
}

// CodeDescription returns MOSEK's symbolic name and description for a
// response code. Without the native library the description is empty.
func CodeDescription(code Rescode) (name, desc string) {
	sym, d, r := nativeCodeDesc(code)
	if r != ResOK || sym == "" {
		return code.String(), ""
	}
	return sym, d
}
