// Package metrics computes out-of-sample performance statistics of a
// portfolio value path against an index and an enhanced index.
package metrics

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gomosek/portfolio"
)

// Column names in the order result files store them.
var Columns = []string{
	"Objective",
	"DownsideSemiStandardDeviation",
	"RMSE",
	"MAD",
	"VaR",
	"CVaR",
	"AverageExcessReturn",
	"ExcessReturn",
	"SortinoIndex",
	"BeatBenchmarkRatio",
	"BeatBenchmarkExcess",
	"BeatBenchmarkShortfall",
	"BeatBenchmarkRewardRiskRatio",
	"CVaRAbs",
	"MarketBeta",
	"TotalReturn",
	"AverageReturn",
	"P5",
	"P10",
	"P90",
	"P95",
}

// Report holds the statistics of one portfolio. Returns are compared with
// the enhanced index unless noted otherwise.
type Report struct {
	Objective float64 // set by the caller, not by Compute

	DownsideSemiStandardDeviation float64
	UpsideSemiStandardDeviation   float64
	RMSE                          float64
	MAD                           float64
	VaR                           float64
	CVaR                          float64
	VaRAbs                        float64
	CVaRAbs                       float64
	AverageExcessReturn           float64
	ExcessReturn                  float64 // final portfolio value minus final enhanced index value
	SortinoIndex                  float64
	BeatBenchmarkRatio            float64
	BeatBenchmarkExcess           float64
	BeatBenchmarkShortfall        float64
	BeatBenchmarkRewardRiskRatio  float64
	MarketBeta                    float64 // against the plain index
	TotalReturn                   float64
	AverageReturn                 float64 // percent
	P5, P10, P90, P95             float64
}

// ErrShortPath is returned for value paths with fewer than two points.
var ErrShortPath = errors.New("metrics: value path needs at least two points")

// Returns converts a value path into simple returns.
func Returns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := range out {
		out[i] = values[i+1]/values[i] - 1
	}
	return out
}

// Compute evaluates the portfolio path against the index and enhanced index
// paths. All paths must have the same length. beta is the confidence level
// of the VaR and CVaR statistics.
func Compute(portfolio, index, enhanced []float64, beta float64) (Report, error) {
	var rep Report
	if len(portfolio) < 2 {
		return rep, ErrShortPath
	}
	if len(index) != len(portfolio) || len(enhanced) != len(portfolio) {
		return rep, errors.Errorf("metrics: path lengths differ (%d, %d, %d)", len(portfolio), len(index), len(enhanced))
	}

	r := Returns(portfolio)
	target := Returns(enhanced)
	e := make([]float64, len(r))
	abs := make([]float64, len(r))
	for i := range r {
		e[i] = r[i] - target[i]
		abs[i] = -math.Abs(e[i])
	}

	var err error
	if rep.AverageExcessReturn, err = stats.Mean(e); err != nil {
		return rep, errors.Wrap(err, "average excess return")
	}
	avg, err := stats.Mean(r)
	if err != nil {
		return rep, errors.Wrap(err, "average return")
	}
	rep.AverageReturn = avg * 100

	var down, up, sq, mad float64
	var beat, beatSum, shortSum float64
	var beatN, shortN int
	for i, v := range e {
		down += math.Pow(min(v, 0), 2)
		up += math.Pow(max(v, 0), 2)
		sq += v * v
		mad += math.Abs(v)
		if r[i] > target[i] {
			beat++
			beatSum += r[i]
			beatN++
		} else {
			shortSum += r[i]
			shortN++
		}
	}
	n := float64(len(e))
	rep.DownsideSemiStandardDeviation = math.Sqrt(down / n)
	rep.UpsideSemiStandardDeviation = math.Sqrt(up / n)
	rep.RMSE = math.Sqrt(sq / n)
	rep.MAD = mad / n
	rep.BeatBenchmarkRatio = beat / n
	if beatN > 0 {
		rep.BeatBenchmarkExcess = beatSum / float64(beatN)
	}
	if shortN > 0 {
		rep.BeatBenchmarkShortfall = shortSum / float64(shortN)
	}
	rep.SortinoIndex = ratio(rep.AverageExcessReturn, rep.DownsideSemiStandardDeviation)
	rep.BeatBenchmarkRewardRiskRatio = ratio(rep.BeatBenchmarkExcess, rep.UpsideSemiStandardDeviation)

	level := (1 - beta) * 100
	rep.VaR = Percentile(e, level)
	rep.CVaR = -tailMean(e, rep.VaR)
	rep.VaRAbs = Percentile(abs, level)
	rep.CVaRAbs = -tailMean(abs, rep.VaRAbs)

	rep.ExcessReturn = portfolio[len(portfolio)-1] - enhanced[len(enhanced)-1]
	rep.TotalReturn = portfolio[len(portfolio)-1] - 100

	if rep.MarketBeta, err = marketBeta(r, Returns(index)); err != nil {
		return rep, err
	}

	rep.P5 = Percentile(e, 5)
	rep.P10 = Percentile(e, 10)
	rep.P90 = Percentile(e, 90)
	rep.P95 = Percentile(e, 95)
	return rep, nil
}

// marketBeta is the sample covariance of portfolio and index returns over
// the sample variance of the index returns. It is zero for a flat index or
// a single return.
func marketBeta(r, index []float64) (float64, error) {
	if len(r) < 2 {
		return 0, nil
	}
	cov, err := stats.Covariance(r, index)
	if err != nil {
		return 0, errors.Wrap(err, "market beta")
	}
	v, err := stats.SampleVariance(index)
	if err != nil {
		return 0, errors.Wrap(err, "market beta")
	}
	return ratio(cov, v), nil
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// tailMean averages the values at or below the threshold.
func tailMean(x []float64, threshold float64) float64 {
	var s float64
	var n int
	for _, v := range x {
		if v <= threshold {
			s += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return s / float64(n)
}

// Percentile returns the p-th percentile (0..100) of x; see
// portfolio.Quantile.
func Percentile(x []float64, p float64) float64 {
	return portfolio.Quantile(x, p/100)
}

// Value returns the statistic stored under column name.
func (r Report) Value(name string) (float64, bool) {
	switch name {
	case "Objective":
		return r.Objective, true
	case "DownsideSemiStandardDeviation":
		return r.DownsideSemiStandardDeviation, true
	case "UpsideSemiStandardDeviation":
		return r.UpsideSemiStandardDeviation, true
	case "RMSE":
		return r.RMSE, true
	case "MAD":
		return r.MAD, true
	case "VaR":
		return r.VaR, true
	case "CVaR":
		return r.CVaR, true
	case "VaRAbs":
		return r.VaRAbs, true
	case "CVaRAbs":
		return r.CVaRAbs, true
	case "AverageExcessReturn":
		return r.AverageExcessReturn, true
	case "ExcessReturn":
		return r.ExcessReturn, true
	case "SortinoIndex":
		return r.SortinoIndex, true
	case "BeatBenchmarkRatio":
		return r.BeatBenchmarkRatio, true
	case "BeatBenchmarkExcess":
		return r.BeatBenchmarkExcess, true
	case "BeatBenchmarkShortfall":
		return r.BeatBenchmarkShortfall, true
	case "BeatBenchmarkRewardRiskRatio":
		return r.BeatBenchmarkRewardRiskRatio, true
	case "MarketBeta":
		return r.MarketBeta, true
	case "TotalReturn":
		return r.TotalReturn, true
	case "AverageReturn":
		return r.AverageReturn, true
	case "P5":
		return r.P5, true
	case "P10":
		return r.P10, true
	case "P90":
		return r.P90, true
	case "P95":
		return r.P95, true
	}
	return 0, false
}

// Values returns the statistics in the order of columns. Unknown names are
// reported as NaN.
func (r Report) Values(columns []string) []float64 {
	out := make([]float64, len(columns))
	for i, c := range columns {
		v, ok := r.Value(c)
		if !ok {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}
