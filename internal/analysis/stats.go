package analysis

import (
	"math"
	"sort"
)

// Seconds added on top of the Tukey fence before a duration counts as an
// outlier.
const outlierSlack = 180

// OutlierBound returns the quartiles of durations and the upper bound
// Q3 + 1.5*(Q3-Q1) + 180. Quartiles are linearly interpolated between the
// closest ranks. An empty sample yields zero Bounds.
func OutlierBound(durations []float64) Bounds {
	if len(durations) == 0 {
		return Bounds{}
	}
	sorted := append([]float64(nil), durations...)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		Upper: q3 + 1.5*(q3-q1) + outlierSlack,
	}
}

// Excludes reports whether d lies strictly above the upper bound.
func (b Bounds) Excludes(d float64) bool {
	return d > b.Upper
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
