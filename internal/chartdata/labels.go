package chartdata

import (
	"fmt"
	"math"
)

// Trend surface shape.
const (
	TrendSpan      = 3.0  // indices are normalised to [0, TrendSpan]
	TrendAmplitude = 30.0 // amplitude of each sinusoid
	TrendOffset    = 40.0
	TrendJitter    = 10.0 // noise is uniform in [-TrendJitter, TrendJitter)
)

var (
	defaultRegions  = []string{"North", "South", "East", "West", "Central"}
	defaultProducts = []string{"Phone", "Computer", "Tablet", "Headphone", "Watch", "Camera", "Console", "Speaker", "Router", "TV"}
)

// TrendSurface is the deterministic base of the trend dataset:
// 30·sin(x) + 30·cos(y) + 40.
func TrendSurface(x, y float64) float64 {
	return TrendAmplitude*math.Sin(x) + TrendAmplitude*math.Cos(y) + TrendOffset
}

// MaxCols is the widest grid whose business categories stay distinct.
// CategoryLabel(MaxCols) would land on the first UTF-16 surrogate, which is
// not a valid character and encodes as U+FFFD like every code point after it.
const MaxCols = 0xD800 - 'A'

// CategoryLabel returns "Product" followed by the character 'A'+j.
// Past j=25 the label walks on through the following code points; labels are
// only distinct for j < MaxCols.
func CategoryLabel(j int) string {
	return "Product" + string(rune('A'+j))
}

// RegionLabels returns the default regions, extended with Region1, Region2, ...
// until there is at least one label per row.
func RegionLabels(rows int) []string {
	return extendLabels(defaultRegions, rows, "Region")
}

// ProductLabels returns the default products, extended with Product1,
// Product2, ... until there is at least one label per column.
func ProductLabels(cols int) []string {
	return extendLabels(defaultProducts, cols, "Product")
}

func extendLabels(base []string, n int, prefix string) []string {
	out := make([]string, len(base), max(len(base), n))
	copy(out, base)
	for i := 0; len(out) < n; i++ {
		out = append(out, fmt.Sprintf("%s%d", prefix, i+1))
	}
	return out
}
