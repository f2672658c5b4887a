// Package preview renders generated datasets for a quick visual check before
// they are loaded into the visualizer: an HTML page of 3D bar charts
// (go-echarts) and PNG heatmaps (gonum/plot).
package preview

import (
	"fmt"

	"github.com/DaneLin/XRVis/internal/chartdata"
	"github.com/DaneLin/XRVis/internal/export"
)

// Grid is one dataset laid back out on its R×C index space.
type Grid struct {
	Convention chartdata.Convention
	Mapping    chartdata.Mapping
	RowLabels  []string
	ColLabels  []string
	Values     [][]int // [row][col]
}

// GridOf rebuilds the grid of convention c from its row-major records.
func GridOf(d *chartdata.Datasets, c chartdata.Convention, p chartdata.Params) (Grid, error) {
	rows := export.Rows(d, c)
	if len(rows) != p.Points() {
		return Grid{}, fmt.Errorf("%s dataset has %d records, want %d", c, len(rows), p.Points())
	}

	g := Grid{
		Convention: c,
		Mapping:    c.Mapping(),
		RowLabels:  make([]string, p.Rows),
		ColLabels:  make([]string, p.Cols),
		Values:     make([][]int, p.Rows),
	}
	for i := range g.Values {
		g.Values[i] = make([]int, p.Cols)
	}
	for k, rec := range rows {
		i, j := k/p.Cols, k%p.Cols
		g.RowLabels[i] = fmt.Sprint(rec[0])
		g.ColLabels[j] = fmt.Sprint(rec[1])
		v, ok := rec[2].(int)
		if !ok {
			return Grid{}, fmt.Errorf("%s record %d has non-integer value %v", c, k, rec[2])
		}
		g.Values[i][j] = v
	}
	return g, nil
}

// Range returns the smallest and largest value in the grid.
func (g Grid) Range() (lo, hi int) {
	first := true
	for _, row := range g.Values {
		for _, v := range row {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
	}
	return lo, hi
}
