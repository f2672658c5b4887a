package chartdata

import (
	"math"
	"math/rand"
	"time"
)

// Generator produces datasets from an owned random source.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng. A nil rng is replaced
// by a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a generator whose output is fully determined by seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// intn returns a uniform integer in [lo, hi]. When hi <= lo it returns lo
// without consuming randomness.
func (g *Generator) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// uniform returns a uniform float in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}

// Simple emits {row, column, value} for every grid cell with value drawn
// uniformly from [p.Min, p.Max].
func (g *Generator) Simple(p Params) []SimplePoint {
	out := make([]SimplePoint, 0, p.Points())
	for i := 0; i < p.Rows; i++ {
		for j := 0; j < p.Cols; j++ {
			out = append(out, SimplePoint{Row: i, Column: j, Value: g.intn(p.Min, p.Max)})
		}
	}
	return out
}

// Business emits yearly sales per product category. Row i is year
// BaseYear+i (DefaultBaseYear when unset), column j is CategoryLabel(j).
func (g *Generator) Business(p Params) []BusinessPoint {
	baseYear := p.BaseYear
	if baseYear == 0 {
		baseYear = DefaultBaseYear
	}
	categories := make([]string, max(p.Cols, 0))
	for j := range categories {
		categories[j] = CategoryLabel(j)
	}

	out := make([]BusinessPoint, 0, p.Points())
	for i := 0; i < p.Rows; i++ {
		for _, category := range categories {
			out = append(out, BusinessPoint{
				Year:     baseYear + i,
				Category: category,
				Sales:    g.intn(p.Min, p.Max),
			})
		}
	}
	return out
}

// Trend emits regional product sales that follow TrendSurface plus up to
// ±TrendJitter of noise, rounded and clamped to [p.Min, p.Max].
func (g *Generator) Trend(p Params) []TrendPoint {
	regions := RegionLabels(p.Rows)
	products := ProductLabels(p.Cols)

	xDen := float64(max(1, p.Rows-1))
	yDen := float64(max(1, p.Cols-1))

	out := make([]TrendPoint, 0, p.Points())
	for i := 0; i < p.Rows; i++ {
		for j := 0; j < p.Cols; j++ {
			x := TrendSpan * float64(i) / xDen
			y := TrendSpan * float64(j) / yDen
			v := int(math.Round(TrendSurface(x, y) + g.uniform(-TrendJitter, TrendJitter)))
			out = append(out, TrendPoint{
				Region:  regions[i%len(regions)],
				Product: products[j%len(products)],
				Sales:   clamp(v, p.Min, p.Max),
			})
		}
	}
	return out
}

// Positional emits [row, column, value] triples in the same order as Simple.
func (g *Generator) Positional(p Params) []Triple {
	out := make([]Triple, 0, p.Points())
	for i := 0; i < p.Rows; i++ {
		for j := 0; j < p.Cols; j++ {
			out = append(out, Triple{i, j, g.intn(p.Min, p.Max)})
		}
	}
	return out
}

// All generates the four conventions in output order.
func (g *Generator) All(p Params) *Datasets {
	return &Datasets{
		Simple:     g.Simple(p),
		Business:   g.Business(p),
		Trend:      g.Trend(p),
		Positional: g.Positional(p),
	}
}

// clamp limits v to [lo, hi]; lo wins if the bounds are inverted.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
