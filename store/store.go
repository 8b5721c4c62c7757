// Package store keeps a SQLite ledger of experiment runs: which experiment
// ran with which parameters and which result files it produced.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned when no run matches a query.
var ErrNotFound = errors.New("store: run not found")

// Run is one execution of an experiment.
type Run struct {
	ID         uuid.UUID
	Experiment string
	Sequence   int // 1-based per experiment
	Parameters map[string]any
	Files      []string
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is in progress
}

// Finished reports whether the run completed.
func (r *Run) Finished() bool { return !r.FinishedAt.IsZero() }

// Store is a handle to the ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "store")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "store: open")
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "store: schema")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NextSequence returns the sequence number the next run of experiment gets.
func (s *Store) NextSequence(experiment string) (int, error) {
	var n sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(sequence) FROM runs WHERE experiment = ?`, experiment).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, "store: next sequence")
	}
	return int(n.Int64) + 1, nil
}

// Begin inserts a new run of experiment with the next sequence number and
// the current time as start.
func (s *Store) Begin(experiment string, params map[string]any) (*Run, error) {
	seq, err := s.NextSequence(experiment)
	if err != nil {
		return nil, err
	}
	r := &Run{
		ID:         uuid.New(),
		Experiment: experiment,
		Sequence:   seq,
		Parameters: params,
		StartedAt:  time.Now().UTC(),
	}
	if err := s.Record(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Record inserts r or replaces the run with the same ID. A zero ID is
// replaced by a fresh one and a zero sequence by the next free number.
func (s *Store) Record(r *Run) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Sequence == 0 {
		seq, err := s.NextSequence(r.Experiment)
		if err != nil {
			return err
		}
		r.Sequence = seq
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now().UTC()
	}
	params, err := json.Marshal(orEmpty(r.Parameters))
	if err != nil {
		return errors.Wrap(err, "store: parameters")
	}
	files, err := json.Marshal(orEmptySlice(r.Files))
	if err != nil {
		return errors.Wrap(err, "store: files")
	}
	var finished sql.NullString
	if r.Finished() {
		finished = sql.NullString{String: r.FinishedAt.UTC().Format(time.RFC3339Nano), Valid: true}
	}
	_, err = s.db.Exec(`
		INSERT INTO runs (id, experiment, sequence, parameters, files, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			parameters = excluded.parameters,
			files = excluded.files,
			finished_at = excluded.finished_at`,
		r.ID.String(), r.Experiment, r.Sequence, string(params), string(files),
		r.StartedAt.UTC().Format(time.RFC3339Nano), finished)
	return errors.Wrap(err, "store: record")
}

// Finish stores the produced files and marks r as finished now.
func (s *Store) Finish(r *Run, files []string) error {
	r.Files = append(r.Files, files...)
	r.FinishedAt = time.Now().UTC()
	return s.Record(r)
}

const selectRuns = `SELECT id, experiment, sequence, parameters, files, started_at, finished_at FROM runs`

// List returns all runs ordered by experiment and sequence.
func (s *Store) List() ([]*Run, error) {
	rows, err := s.db.Query(selectRuns + ` ORDER BY experiment, sequence`)
	if err != nil {
		return nil, errors.Wrap(err, "store: list")
	}
	defer rows.Close()

	var out []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "store: list")
}

// Latest returns the run of experiment with the highest sequence number.
func (s *Store) Latest(experiment string) (*Run, error) {
	row := s.db.QueryRow(selectRuns+` WHERE experiment = ? ORDER BY sequence DESC LIMIT 1`, experiment)
	r, err := scanRun(row)
	if errors.Cause(err) == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return r, err
}

// Get returns the run with the given ID.
func (s *Store) Get(id uuid.UUID) (*Run, error) {
	row := s.db.QueryRow(selectRuns+` WHERE id = ?`, id.String())
	r, err := scanRun(row)
	if errors.Cause(err) == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		r                 Run
		id, params, files string
		started           string
		finished          sql.NullString
	)
	if err := sc.Scan(&id, &r.Experiment, &r.Sequence, &params, &files, &started, &finished); err != nil {
		return nil, err
	}
	var err error
	if r.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.Wrap(err, "store: run id")
	}
	if err := json.Unmarshal([]byte(params), &r.Parameters); err != nil {
		return nil, errors.Wrap(err, "store: parameters")
	}
	if err := json.Unmarshal([]byte(files), &r.Files); err != nil {
		return nil, errors.Wrap(err, "store: files")
	}
	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, errors.Wrap(err, "store: started_at")
	}
	if finished.Valid {
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String); err != nil {
			return nil, errors.Wrap(err, "store: finished_at")
		}
	}
	return &r, nil
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
