package preview

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/DaneLin/XRVis/internal/chartdata"
	"github.com/DaneLin/XRVis/internal/export"
	"github.com/DaneLin/XRVis/internal/monitoring"
)

// HeatmapName returns the PNG file name for convention c.
func HeatmapName(c chartdata.Convention) string {
	return export.BaseName(c) + "_heatmap.png"
}

// gridXYZ adapts Grid to plotter.GridXYZ with columns on X and rows on Y.
type gridXYZ struct {
	g Grid
}

func (x gridXYZ) Dims() (c, r int)   { return len(x.g.ColLabels), len(x.g.RowLabels) }
func (x gridXYZ) Z(c, r int) float64 { return float64(x.g.Values[r][c]) }
func (x gridXYZ) X(c int) float64    { return float64(c) }
func (x gridXYZ) Y(r int) float64    { return float64(r) }

// Heatmap builds a heatmap plot of g.
func Heatmap(g Grid) (*plot.Plot, error) {
	if len(g.RowLabels) == 0 || len(g.ColLabels) == 0 {
		return nil, fmt.Errorf("cannot plot empty %s grid", g.Convention)
	}

	h := plotter.NewHeatMap(gridXYZ{g}, palette.Heat(12, 1))
	if h.Max == h.Min {
		// a constant grid would otherwise divide by a zero range
		h.Max = h.Min + 1
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", export.JSONFileName(g.Convention), g.Mapping.Z)
	p.X.Label.Text = g.Mapping.Y
	p.Y.Label.Text = g.Mapping.X
	p.Add(h)
	p.NominalX(g.ColLabels...)
	p.NominalY(g.RowLabels...)
	return p, nil
}

func heatmapPNG(g Grid) (io.WriterTo, error) {
	p, err := Heatmap(g)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create png writer: %w", err)
	}
	return wt, nil
}

// RenderHeatmap writes g as a PNG to w.
func RenderHeatmap(w io.Writer, g Grid) error {
	wt, err := heatmapPNG(g)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// WriteHeatmaps writes one PNG heatmap per convention.
func WriteHeatmaps(w *export.Writer, d *chartdata.Datasets, p chartdata.Params) ([]export.File, error) {
	files := make([]export.File, 0, len(chartdata.Conventions))
	for _, c := range chartdata.Conventions {
		g, err := GridOf(d, c, p)
		if err != nil {
			return files, err
		}
		wt, err := heatmapPNG(g)
		if err != nil {
			return files, err
		}

		name := HeatmapName(c)
		if err := writeAll(w, name, wt); err != nil {
			return files, err
		}
		monitoring.Logf("wrote %s", w.Path(name))

		m := c.Mapping()
		files = append(files, export.File{Name: name, Format: "png", Convention: c, Mapping: &m, Points: p.Points()})
	}
	return files, nil
}
