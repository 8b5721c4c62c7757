package mosek

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestBoundKey(t *testing.T) {
	tests := []struct {
		lo, up float64
		bk     BoundKey
	}{
		{math.Inf(-1), math.Inf(1), BkFr},
		{-1e30, 1e30, BkFr},
		{0, math.Inf(1), BkLo},
		{math.Inf(-1), 5, BkUp},
		{2, 2, BkFx},
		{0, 10, BkRa},
	}
	for _, tt := range tests {
		bk, bl, bu := boundKey(tt.lo, tt.up)
		if bk != tt.bk {
			t.Errorf("boundKey(%g, %g) = %s, expected %s", tt.lo, tt.up, bk, tt.bk)
		}
		if math.IsInf(bl, 0) || math.IsInf(bu, 0) {
			t.Errorf("boundKey(%g, %g) passed an IEEE infinity: %g, %g", tt.lo, tt.up, bl, bu)
		}
	}
}

func TestNonzerosToCSR(t *testing.T) {
	nz := []Nonzero{
		{2, 1, 4.0},
		{0, 1, 1.0},
		{0, 0, 2.0},
		{2, 0, 3.0},
		{0, 1, 5.0}, // duplicate, last wins
	}
	ptrb, ptre, index, value, err := nonzerosToCSR(nz, 4)
	if err != nil {
		t.Fatalf("nonzerosToCSR failed: %v", err)
	}

	wantB := []int64{0, 2, 2, 4}
	wantE := []int64{2, 2, 4, 4}
	for i := range wantB {
		if ptrb[i] != wantB[i] || ptre[i] != wantE[i] {
			t.Errorf("row %d: [%d, %d), expected [%d, %d)", i, ptrb[i], ptre[i], wantB[i], wantE[i])
		}
	}
	wantIdx := []int{0, 1, 0, 1}
	wantVal := []float64{2, 5, 3, 4}
	for k := range wantIdx {
		if index[k] != wantIdx[k] || value[k] != wantVal[k] {
			t.Errorf("entry %d = (%d, %g), expected (%d, %g)", k, index[k], value[k], wantIdx[k], wantVal[k])
		}
	}
}

func TestNonzerosToCSRErrors(t *testing.T) {
	if _, _, _, _, err := nonzerosToCSR([]Nonzero{{-1, 0, 1}}, 2); err == nil {
		t.Error("expected error for negative row")
	}
	if _, _, _, _, err := nonzerosToCSR([]Nonzero{{3, 0, 1}}, 2); err == nil {
		t.Error("expected error for row beyond numRow")
	}
	ptrb, ptre, _, _, err := nonzerosToCSR(nil, 2)
	if err != nil || len(ptrb) != 2 || len(ptre) != 2 {
		t.Errorf("empty matrix: %v %v %v", ptrb, ptre, err)
	}
}

func TestExpandSlice(t *testing.T) {
	got, err := expandSlice(3, nil, -1)
	if err != nil || len(got) != 3 || got[2] != -1 {
		t.Errorf("expandSlice(nil) = %v, %v", got, err)
	}
	if _, err := expandSlice(3, []float64{1, 2}, 0); err == nil {
		t.Error("expected error for inconsistent length")
	}
}

func TestSpan(t *testing.T) {
	if _, _, err := span("Op", 0, 3, 3); err != nil {
		t.Errorf("valid span rejected: %v", err)
	}
	if _, _, err := span("Op", 2, 1, -1); err == nil {
		t.Error("reversed range accepted")
	}
	if _, _, err := span("Op", 0, 3, 2); err == nil {
		t.Error("length mismatch accepted")
	}
	if _, err := toInt32("Op", "index", math.MaxInt32+1); err == nil {
		t.Error("overflowing index accepted")
	}
}

func TestLineSplitter(t *testing.T) {
	var lines []string
	ls := newLineSplitter(func(s string) { lines = append(lines, s) })
	ls.write("Problem\n  Name")
	ls.write("  : lp\r\n\nOptimizer started.\n")
	ls.write("tail")

	want := []string{"Problem", "  Name  : lp", "Optimizer started."}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, expected %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}

	ls.flush()
	ls.flush()
	if len(lines) != 4 || lines[3] != "tail" {
		t.Errorf("after flush lines = %q, expected the tail once", lines)
	}
}

func TestCloseFlushesStreamTail(t *testing.T) {
	var lines []string
	ls := newLineSplitter(func(s string) { lines = append(lines, s) })
	task := &Task{splitters: map[StreamType]*lineSplitter{StreamLog: ls}}
	ls.write("Optimizer terminated.\nInterior-point solution summary")

	task.Close()
	want := []string{"Optimizer terminated.", "Interior-point solution summary"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("lines = %q, expected %q", lines, want)
	}
	if len(task.splitters) != 0 {
		t.Errorf("splitters left after Close: %d", len(task.splitters))
	}
}

func TestPollAsyncStopError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	polls := 0
	poll := func() (AsyncStatus, error) {
		polls++
		if polls == 2 {
			cancel()
		}
		return AsyncStatus{}, nil
	}
	stopErr := newErrorMsg("AsyncStop", "server unreachable")
	_, err := pollAsync(ctx, time.Millisecond, poll, func() error { return stopErr })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if !errors.Is(err, stopErr) {
		t.Errorf("err = %v, expected the stop error", err)
	}

	// a finished job returns its response
	st, err := pollAsync(context.Background(), time.Millisecond,
		func() (AsyncStatus, error) { return AsyncStatus{Available: true, Response: ResOK}, nil },
		func() error { t.Error("stop called for a finished job"); return nil })
	if err != nil || !st.Available {
		t.Errorf("pollAsync = %+v, %v", st, err)
	}
}
