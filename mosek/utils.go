package mosek

import (
	"math"
	"sort"
)

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}

// boundKey maps a pair of bounds onto a MOSEK bound key. Infinite sides
// are replaced by ±Infinity so the native layer never sees IEEE infinities.
func boundKey(lower, upper float64) (BoundKey, float64, float64) {
	loInf := math.IsInf(lower, -1) || lower <= -Infinity
	upInf := math.IsInf(upper, 1) || upper >= Infinity
	switch {
	case loInf && upInf:
		return BkFr, -Infinity, Infinity
	case loInf:
		return BkUp, -Infinity, upper
	case upInf:
		return BkLo, lower, Infinity
	case lower == upper:
		return BkFx, lower, upper
	default:
		return BkRa, lower, upper
	}
}

// boundKeys applies boundKey elementwise.
func boundKeys(lower, upper []float64) (bk []BoundKey, bl, bu []float64) {
	bk = make([]BoundKey, len(lower))
	bl = make([]float64, len(lower))
	bu = make([]float64, len(lower))
	for i := range lower {
		bk[i], bl[i], bu[i] = boundKey(lower[i], upper[i])
	}
	return bk, bl, bu
}

// nonzerosToCSR converts a slice of Nonzero elements to compressed sparse
// row form with one [ptrb, ptre) range per row, empty rows included.
// Duplicate entries keep the last value.
func nonzerosToCSR(nz []Nonzero, numRow int) (ptrb, ptre []int64, index []int, value []float64, err error) {
	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	filtered := make([]Nonzero, 0, len(sorted))
	for _, n := range sorted {
		if n.Row < 0 || n.Col < 0 {
			return nil, nil, nil, nil, newErrorMsg("nonzerosToCSR", "negative row or column index")
		}
		if n.Row >= numRow {
			return nil, nil, nil, nil, newErrorMsg("nonzerosToCSR", "row index exceeds number of rows")
		}
		if k := len(filtered) - 1; k >= 0 && filtered[k].Row == n.Row && filtered[k].Col == n.Col {
			filtered[k].Val = n.Val
		} else {
			filtered = append(filtered, n)
		}
	}

	ptrb = make([]int64, numRow)
	ptre = make([]int64, numRow)
	index = make([]int, len(filtered))
	value = make([]float64, len(filtered))

	k := 0
	for row := 0; row < numRow; row++ {
		ptrb[row] = int64(k)
		for k < len(filtered) && filtered[k].Row == row {
			index[k] = filtered[k].Col
			value[k] = filtered[k].Val
			k++
		}
		ptre[row] = int64(k)
	}
	return ptrb, ptre, index, value, nil
}

// expandSlice returns slice when it has length n and n copies of fillValue
// when it is empty. Any other length is an error.
func expandSlice(n int, slice []float64, fillValue float64) ([]float64, error) {
	if len(slice) == n {
		return slice, nil
	}
	if len(slice) == 0 {
		result := make([]float64, n)
		for i := range result {
			result[i] = fillValue
		}
		return result, nil
	}
	return nil, newErrorMsg("expandSlice", "inconsistent slice length")
}

// sequence returns [first, first+n).
func sequence(first, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = first + i
	}
	return s
}
