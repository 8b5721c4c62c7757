package portfolio

import (
	"math"
	"slices"
)

// Quantile returns the q-quantile of x using linear interpolation between
// the closest order statistics. It does not modify x.
func Quantile(x []float64, q float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	s := slices.Clone(x)
	slices.Sort(s)
	q = min(max(q, 0), 1)
	pos := q * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return s[lo] + frac*(s[hi]-s[lo])
}

// ValueAtRisk returns the empirical beta-VaR of the losses -r.
func ValueAtRisk(r []float64, beta float64) float64 {
	return -Quantile(r, 1-beta)
}

// ConditionalValueAtRisk evaluates the Rockafellar-Uryasev expression
// VaR + 1/(1-beta) E[max(-r - VaR, 0)].
func ConditionalValueAtRisk(r []float64, valueAtRisk, beta float64) float64 {
	if len(r) == 0 {
		return valueAtRisk
	}
	var tail float64
	for _, v := range r {
		tail += max(-v-valueAtRisk, 0)
	}
	return valueAtRisk + tail/float64(len(r))/(1-beta)
}

func meanAbs(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += math.Abs(v)
	}
	return s / float64(len(x))
}

func mean(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s / float64(len(x))
}

// ApproximateTracking estimates mean|r| + rho·CVaR of the excess returns of
// w on d.
func ApproximateTracking(d Data, w []float64) float64 {
	r := PortfolioReturns(d.ExcessReturns(), w)
	if len(r) == 0 {
		return 0
	}
	v := ValueAtRisk(r, d.Beta)
	return meanAbs(r) + d.Rho*ConditionalValueAtRisk(r, v, d.Beta)
}

// ApproximateExcess estimates -mean(r) + rho·CVaR of the excess returns of w
// on d.
func ApproximateExcess(d Data, w []float64) float64 {
	r := PortfolioReturns(d.ExcessReturns(), w)
	if len(r) == 0 {
		return 0
	}
	v := ValueAtRisk(r, d.Beta)
	return -mean(r) + d.Rho*ConditionalValueAtRisk(r, v, d.Beta)
}

// Paths are value developments starting at 100.
type Paths struct {
	Index     []float64
	Enhanced  []float64
	Portfolio []float64
}

// Simulate holds w over the scenarios of d without rebalancing: weights
// drift with the realised asset returns. All paths have T+1 values.
func Simulate(d Data, w []float64) Paths {
	T, _ := d.Dims()
	p := Paths{
		Index:     make([]float64, T+1),
		Enhanced:  make([]float64, T+1),
		Portfolio: make([]float64, T+1),
	}
	p.Index[0], p.Enhanced[0], p.Portfolio[0] = 100, 100, 100

	weights := slices.Clone(w)
	for t, row := range d.Assets {
		p.Index[t+1] = p.Index[t] * (1 + d.Index[t])
		p.Enhanced[t+1] = p.Enhanced[t] * (1 + d.Index[t] + d.Alpha)

		var growth, total float64
		for i, r := range row {
			growth += r * weights[i]
			weights[i] *= 1 + r
			total += weights[i]
		}
		p.Portfolio[t+1] = p.Portfolio[t] * (1 + growth)
		if total != 0 {
			for i := range weights {
				weights[i] /= total
			}
		}
	}
	return p
}
