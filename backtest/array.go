package backtest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Array is a dense row-major n-dimensional array of float64.
type Array struct {
	Dims []int
	Data []float64
}

// NewArray allocates a zero array with the given dimensions.
func NewArray(dims ...int) *Array {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return &Array{Dims: append([]int(nil), dims...), Data: make([]float64, n)}
}

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.Dims) {
		panic(fmt.Sprintf("backtest: %d indices for a %d-dimensional array", len(idx), len(a.Dims)))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.Dims[k] {
			panic(fmt.Sprintf("backtest: index %d out of range [0, %d) in dimension %d", i, a.Dims[k], k))
		}
		off = off*a.Dims[k] + i
	}
	return off
}

// At returns the element at idx.
func (a *Array) At(idx ...int) float64 { return a.Data[a.offset(idx)] }

// Set stores v at idx.
func (a *Array) Set(v float64, idx ...int) { a.Data[a.offset(idx)] = v }

// Row returns the contiguous slice of the last dimension at the leading
// indices idx. The slice aliases the array.
func (a *Array) Row(idx ...int) []float64 {
	last := a.Dims[len(a.Dims)-1]
	off := a.offset(append(append([]int(nil), idx...), 0))
	return a.Data[off : off+last]
}

// FileName appends the dimensions to name the way result files encode them:
// name_recover_a_b_c.csv.
func FileName(name string, dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return name + "_recover_" + strings.Join(parts, "_") + ".csv"
}

// ParseDims recovers the dimensions from a file name produced by FileName.
func ParseDims(file string) ([]int, error) {
	base := strings.TrimSuffix(filepath.Base(file), ".csv")
	i := strings.LastIndex(base, "_recover_")
	if i < 0 {
		return nil, errors.Errorf("backtest: %s has no dimensions", file)
	}
	var dims []int
	for _, p := range strings.Split(base[i+len("_recover_"):], "_") {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "backtest: dimensions of %s", file)
		}
		dims = append(dims, d)
	}
	return dims, nil
}

// WriteArray writes a flattened into dir, one value per line in %.18e, and
// returns the path of the file.
func WriteArray(dir, name string, a *Array) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "backtest")
	}
	path := filepath.Join(dir, FileName(name, a.Dims))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "backtest")
	}
	w := bufio.NewWriter(f)
	for _, v := range a.Data {
		fmt.Fprintf(w, "%.18e\n", v)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "backtest: write %s", path)
	}
	return path, errors.Wrapf(f.Close(), "backtest: close %s", path)
}

// ReadArray reads a file written by WriteArray.
func ReadArray(path string) (*Array, error) {
	dims, err := ParseDims(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "backtest")
	}
	defer f.Close()

	a := NewArray(dims...)
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if n >= len(a.Data) {
			return nil, errors.Errorf("backtest: %s has more than %d values", path, len(a.Data))
		}
		if a.Data[n], err = strconv.ParseFloat(line, 64); err != nil {
			return nil, errors.Wrapf(err, "backtest: %s line %d", path, n+1)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "backtest")
	}
	if n != len(a.Data) {
		return nil, errors.Errorf("backtest: %s has %d values, want %d", path, n, len(a.Data))
	}
	return a, nil
}
