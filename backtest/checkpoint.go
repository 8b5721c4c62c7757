package backtest

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// window is the outcome of one rolling window. Experiment 1 fills the
// statistics and weights, experiment 2 the certificate, objective and
// selected radius.
type window struct {
	Fingerprint string `msgpack:"fp"`
	Size        int    `msgpack:"h"`
	Sim         int    `msgpack:"i"`

	IS      [][]float64 `msgpack:"is,omitempty"`
	OoS     [][]float64 `msgpack:"oos,omitempty"`
	Weights [][]float64 `msgpack:"w,omitempty"`

	Certificate []float64 `msgpack:"cert,omitempty"`
	J           []float64 `msgpack:"j,omitempty"`
	EpsOpt      float64   `msgpack:"eps,omitempty"`
}

type windowKey struct{ size, sim int }

// Checkpoint is an append-only file of completed windows. Each record is a
// 4-byte big-endian length followed by the msgpack encoding of a window.
// Records written for a different experiment configuration are ignored.
type Checkpoint struct {
	fingerprint string
	done        map[windowKey]*window
	f           *os.File
}

// OpenCheckpoint loads the completed windows of path that match fingerprint
// and opens the file for appending. A truncated trailing record is dropped.
func OpenCheckpoint(path, fingerprint string) (*Checkpoint, error) {
	c := &Checkpoint{fingerprint: fingerprint, done: make(map[windowKey]*window)}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint")
	}
	valid, err := c.load(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Truncate(valid); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "checkpoint")
	}
	if _, err := f.Seek(valid, io.SeekStart); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "checkpoint")
	}
	c.f = f
	return c, nil
}

// load reads records until EOF and returns the offset after the last
// complete one.
func (c *Checkpoint) load(r io.Reader) (int64, error) {
	var valid int64
	var lengthBuf [4]byte
	for {
		if _, err := io.ReadFull(r, lengthBuf[:]); err != nil {
			return valid, nil
		}
		length := binary.BigEndian.Uint32(lengthBuf[:])
		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return valid, nil
		}
		var w window
		if err := msgpack.Unmarshal(data, &w); err != nil {
			return 0, errors.Wrap(err, "checkpoint: corrupt record")
		}
		valid += int64(len(lengthBuf)) + int64(length)
		if w.Fingerprint == c.fingerprint {
			c.done[windowKey{w.Size, w.Sim}] = &w
		}
	}
}

// lookup returns the stored window (size, sim) if it completed before.
func (c *Checkpoint) lookup(size, sim int) (*window, bool) {
	if c == nil {
		return nil, false
	}
	w, ok := c.done[windowKey{size, sim}]
	return w, ok
}

// Len returns the number of completed windows.
func (c *Checkpoint) Len() int {
	if c == nil {
		return 0
	}
	return len(c.done)
}

// save appends w to the file.
func (c *Checkpoint) save(w *window) error {
	if c == nil {
		return nil
	}
	w.Fingerprint = c.fingerprint
	data, err := msgpack.Marshal(w)
	if err != nil {
		return errors.Wrap(err, "checkpoint")
	}
	buf := make([]byte, 4, 4+len(data))
	binary.BigEndian.PutUint32(buf, uint32(len(data)))
	buf = append(buf, data...)
	if _, err := c.f.Write(buf); err != nil {
		return errors.Wrap(err, "checkpoint")
	}
	c.done[windowKey{w.Size, w.Sim}] = w
	return nil
}

// Close closes the file.
func (c *Checkpoint) Close() error {
	if c == nil || c.f == nil {
		return nil
	}
	return c.f.Close()
}
