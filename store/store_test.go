package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSequences(t *testing.T) {
	s := openStore(t)

	seq, err := s.NextSequence("experiment1")
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	first, err := s.Begin("experiment1", map[string]any{"rho": 0.3})
	require.NoError(t, err)
	second, err := s.Begin("experiment1", nil)
	require.NoError(t, err)
	other, err := s.Begin("experiment2", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Sequence)
	assert.Equal(t, 2, second.Sequence)
	assert.Equal(t, 1, other.Sequence)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFinishAndLatest(t *testing.T) {
	s := openStore(t)

	run, err := s.Begin("experiment1", map[string]any{"beta": 0.8, "sizes": []int{63, 126}})
	require.NoError(t, err)
	assert.False(t, run.Finished())

	require.NoError(t, s.Finish(run, []string{"a.csv", "b.csv"}))

	got, err := s.Latest("experiment1")
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, got.Finished())
	assert.Equal(t, []string{"a.csv", "b.csv"}, got.Files)
	assert.Equal(t, 0.8, got.Parameters["beta"])
	assert.Equal(t, []any{63.0, 126.0}, got.Parameters["sizes"])
	assert.WithinDuration(t, run.StartedAt, got.StartedAt, time.Millisecond)

	byID, err := s.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, got, byID)
}

func TestNotFound(t *testing.T) {
	s := openStore(t)
	_, err := s.Latest("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordAndList(t *testing.T) {
	s := openStore(t)

	r := &Run{Experiment: "track"}
	require.NoError(t, s.Record(r))
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, 1, r.Sequence)

	_, err := s.Begin("experiment1", nil)
	require.NoError(t, err)

	runs, err := s.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "experiment1", runs[0].Experiment)
	assert.Equal(t, "track", runs[1].Experiment)
	assert.Empty(t, runs[1].Files)
	assert.Empty(t, runs[1].Parameters)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Begin("experiment2", nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	seq, err := s.NextSequence("experiment2")
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}

func TestRecordRoundTrip(t *testing.T) {
	s := openStore(t)

	start := time.Date(2024, 3, 1, 9, 30, 0, 123456789, time.UTC)
	want := &Run{
		ID:         uuid.New(),
		Experiment: "experiment2",
		Sequence:   7,
		Parameters: map[string]any{"rho": 0.3, "market": "sp500", "simulations": 200.0},
		Files:      []string{"Chapter4_Experiment2_TrackingModel_J_recover_2_10_200.csv"},
		StartedAt:  start,
		FinishedAt: start.Add(90 * time.Minute),
	}
	require.NoError(t, s.Record(want))

	got, err := s.Get(want.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}
