// Package marketdata loads S&P 500 prices from the CSV layout of the research
// data set and simulates synthetic markets.
//
// The data directory contains
//
//	SP500/HistoricalConstituents.csv   Date,Tickers (comma separated tickers)
//	SP500/DailyHistoricalPrices.csv    Dates,SPX-INDEX,<ticker>...
//	SP500/WeeklyHistoricalPrices.csv   Dates,SPX-INDEX,<ticker>...
package marketdata

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Frequency selects the price file.
type Frequency string

const (
	Daily  Frequency = "daily"
	Weekly Frequency = "weekly"
)

// DateLayout is the date format used by all files.
const DateLayout = "2006-01-02"

const (
	dateColumn  = "Dates"
	indexColumn = "SPX-INDEX"

	// rows with fewer non-missing fields, the date included, are dropped
	minFieldsPerRow = 10
)

// Prices are closing prices of the index and its constituents.
type Prices struct {
	Dates   []time.Time
	Index   []float64
	Tickers []string
	Values  [][]float64 // len(Dates) × len(Tickers)
}

// Loader reads the data set below Dir.
type Loader struct {
	Dir    string
	Logger log.Interface
}

func (l Loader) logger() log.Interface {
	if l.Logger == nil {
		return log.Log
	}
	return l.Logger
}

func (l Loader) path(name string) string {
	return filepath.Join(l.Dir, "SP500", name)
}

// SP500 returns the prices between start and end (both inclusive) of the
// tickers that were index constituents in every snapshot of the period.
// Tickers with a missing price on any remaining date are dropped.
func (l Loader) SP500(freq Frequency, start, end time.Time) (*Prices, error) {
	var file string
	switch freq {
	case Daily:
		file = "DailyHistoricalPrices.csv"
	case Weekly:
		file = "WeeklyHistoricalPrices.csv"
	default:
		return nil, errors.Errorf("marketdata: unknown frequency %q", freq)
	}

	tickers, err := l.Constituents(start, end)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(l.path(file))
	if err != nil {
		return nil, errors.Wrap(err, "marketdata")
	}
	defer f.Close()

	p, err := readPrices(f, tickers, start, end)
	if err != nil {
		return nil, errors.Wrapf(err, "marketdata: %s", file)
	}
	l.logger().WithFields(log.Fields{
		"frequency": freq,
		"dates":     len(p.Dates),
		"tickers":   len(p.Tickers),
	}).Debug("loaded prices")
	return p, nil
}

// Constituents returns the tickers present in every constituent snapshot
// dated between start and end, with "." replaced by "-".
func (l Loader) Constituents(start, end time.Time) (map[string]bool, error) {
	f, err := os.Open(l.path("HistoricalConstituents.csv"))
	if err != nil {
		return nil, errors.Wrap(err, "marketdata")
	}
	defer f.Close()
	return readConstituents(f, start, end)
}

func readConstituents(r io.Reader, start, end time.Time) (map[string]bool, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "marketdata: constituents header")
	}
	dateIdx := slices.Index(header, "Date")
	tickIdx := slices.Index(header, "Tickers")
	if dateIdx < 0 || tickIdx < 0 {
		return nil, errors.New("marketdata: constituents need Date and Tickers columns")
	}

	var out map[string]bool
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "marketdata: constituents")
		}
		date, err := time.Parse(DateLayout, rec[dateIdx])
		if err != nil {
			return nil, errors.Wrap(err, "marketdata: constituents")
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		snapshot := make(map[string]bool)
		for _, t := range strings.Split(rec[tickIdx], ",") {
			if t = strings.TrimSpace(t); t != "" {
				snapshot[NormalizeTicker(t)] = true
			}
		}
		if out == nil {
			out = snapshot
			continue
		}
		for t := range out {
			if !snapshot[t] {
				delete(out, t)
			}
		}
	}
	if len(out) == 0 {
		return nil, errors.Errorf("marketdata: no constituents between %s and %s",
			start.Format(DateLayout), end.Format(DateLayout))
	}
	return out, nil
}

// NormalizeTicker maps share class tickers such as BRK.B to the BRK-B form
// used by the price files.
func NormalizeTicker(t string) string {
	return strings.ReplaceAll(t, ".", "-")
}

func readPrices(r io.Reader, tickers map[string]bool, start, end time.Time) (*Prices, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	dateIdx := slices.Index(header, dateColumn)
	indexIdx := slices.Index(header, indexColumn)
	if dateIdx < 0 || indexIdx < 0 {
		return nil, errors.Errorf("need %s and %s columns", dateColumn, indexColumn)
	}
	var cols []int
	for i, name := range header {
		if i != dateIdx && i != indexIdx && tickers[name] {
			cols = append(cols, i)
		}
	}

	p := &Prices{}
	var rows [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		date, err := time.Parse(DateLayout, rec[dateIdx])
		if err != nil {
			return nil, err
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		index := parsePrice(rec[indexIdx])
		row := make([]float64, len(cols))
		present := 1 // date
		if !math.IsNaN(index) {
			present++
		}
		for j, c := range cols {
			row[j] = parsePrice(rec[c])
			if !math.IsNaN(row[j]) {
				present++
			}
		}
		if present < minFieldsPerRow {
			continue
		}
		p.Dates = append(p.Dates, date)
		p.Index = append(p.Index, index)
		rows = append(rows, row)
	}
	if len(p.Dates) == 0 {
		return nil, errors.New("no prices in range")
	}
	if slices.ContainsFunc(p.Index, math.IsNaN) {
		return nil, errors.New("index has missing prices")
	}

	// keep complete columns only
	var keep []int
	for j, c := range cols {
		complete := true
		for _, row := range rows {
			if math.IsNaN(row[j]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, j)
			p.Tickers = append(p.Tickers, header[c])
		}
	}
	p.Values = make([][]float64, len(rows))
	for t, row := range rows {
		p.Values[t] = make([]float64, len(keep))
		for k, j := range keep {
			p.Values[t][k] = row[j]
		}
	}
	return p, nil
}

// parsePrice returns NaN for empty or unparsable cells.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Returns are simple returns derived from prices.
type Returns struct {
	Dates   []time.Time // date of the closing price each return ends on
	Index   []float64
	Tickers []string
	Assets  [][]float64 // len(Dates) × len(Tickers)
}

// Returns computes simple period returns; the first date has none and is
// dropped.
func (p *Prices) Returns() *Returns {
	r := &Returns{Tickers: slices.Clone(p.Tickers)}
	for t := 1; t < len(p.Dates); t++ {
		r.Dates = append(r.Dates, p.Dates[t])
		r.Index = append(r.Index, p.Index[t]/p.Index[t-1]-1)
		row := make([]float64, len(p.Tickers))
		for i := range row {
			row[i] = p.Values[t][i]/p.Values[t-1][i] - 1
		}
		r.Assets = append(r.Assets, row)
	}
	return r
}

// Len returns the number of periods.
func (r *Returns) Len() int { return len(r.Index) }
