package mosek

import (
	"context"
	"errors"
	"time"
)

// OptimizeRemote solves the task on an OptServer instance at addr
// ("http://host:port") and blocks until the result has been loaded into
// the task. accessToken may be empty.
func (t *Task) OptimizeRemote(addr, accessToken string) (Rescode, error) {
	if err := t.live("OptimizeRemote"); err != nil {
		return ResOK, err
	}
	trm, r := nativeOptimizeRemote(t.ptr, addr, accessToken)
	return trm, t.check("OptimizeRemote", r)
}

// AsyncOptimize submits the task to an OptServer and returns the job
// ticket used by the other Async calls.
func (t *Task) AsyncOptimize(addr, accessToken string) (string, error) {
	if err := t.live("AsyncOptimize"); err != nil {
		return "", err
	}
	ticket, r := nativeAsyncOptimize(t.ptr, addr, accessToken)
	if err := t.check("AsyncOptimize", r); err != nil {
		return "", err
	}
	return ticket, nil
}

// AsyncStatus is the state of a remote job.
type AsyncStatus struct {
	// Available is set once the job has finished.
	Available bool
	// Response is the result code of the remote optimization.
	Response Rescode
	// Termination is the remote optimizer's termination code.
	Termination Rescode
}

// Err converts the remote response into an error.
func (s AsyncStatus) Err() error {
	return newError("AsyncOptimize", s.Response)
}

// AsyncPoll asks whether a remote job has finished without fetching the
// solution.
func (t *Task) AsyncPoll(addr, accessToken, ticket string) (AsyncStatus, error) {
	return t.asyncPoll("AsyncPoll", addr, accessToken, ticket, false)
}

// AsyncGetResult fetches the result of a finished job into the task. When
// the job is still running Available is false and the task is unchanged.
func (t *Task) AsyncGetResult(addr, accessToken, ticket string) (AsyncStatus, error) {
	return t.asyncPoll("AsyncGetResult", addr, accessToken, ticket, true)
}

func (t *Task) asyncPoll(op, addr, accessToken, ticket string, fetch bool) (AsyncStatus, error) {
	if err := t.live(op); err != nil {
		return AsyncStatus{}, err
	}
	if ticket == "" {
		return AsyncStatus{}, newErrorMsg(op, "empty job ticket")
	}
	avail, resp, trm, r := nativeAsyncPoll(t.ptr, addr, accessToken, ticket, fetch)
	if err := t.check(op, r); err != nil {
		return AsyncStatus{}, err
	}
	return AsyncStatus{Available: avail, Response: resp, Termination: trm}, nil
}

// AsyncStop asks the server to stop a running job.
func (t *Task) AsyncStop(addr, accessToken, ticket string) error {
	if err := t.live("AsyncStop"); err != nil {
		return err
	}
	return t.check("AsyncStop", nativeAsyncStop(t.ptr, addr, accessToken, ticket))
}

// AsyncWait polls a remote job every interval until its result has been
// fetched into the task. If ctx ends first the job is stopped on the
// server and ctx.Err() is returned, joined with the error of the stop
// request if that failed.
func (t *Task) AsyncWait(ctx context.Context, addr, accessToken, ticket string, interval time.Duration) (AsyncStatus, error) {
	return pollAsync(ctx, interval,
		func() (AsyncStatus, error) { return t.AsyncGetResult(addr, accessToken, ticket) },
		func() error { return t.AsyncStop(addr, accessToken, ticket) },
	)
}

func pollAsync(ctx context.Context, interval time.Duration, poll func() (AsyncStatus, error), stop func() error) (AsyncStatus, error) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		st, err := poll()
		if err != nil {
			return st, err
		}
		if st.Available {
			return st, st.Err()
		}

		select {
		case <-ctx.Done():
			return st, errors.Join(ctx.Err(), stop())
		case <-ticker.C:
		}
	}
}
