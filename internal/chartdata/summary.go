package chartdata

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the value column of a dataset.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`
}

// Summarize computes descriptive statistics over values.
// An empty input yields the zero Summary.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}

	s := Summary{
		Count: len(xs),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
		Mean:  stat.Mean(xs, nil),
	}
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}

	sort.Float64s(xs)
	s.Median = median(xs)
	return s
}

// median of sorted xs. Even-length input averages the two middle values.
func median(xs []float64) float64 {
	n := len(xs)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, xs, nil)
	}
	return stat.Mean(xs[n/2-1:n/2+1], nil)
}

// Summaries computes a Summary for every convention in d.
func (d *Datasets) Summaries() map[Convention]Summary {
	out := make(map[Convention]Summary, len(Conventions))
	for _, c := range Conventions {
		out[c] = Summarize(d.Values(c))
	}
	return out
}
