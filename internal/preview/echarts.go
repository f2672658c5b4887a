package preview

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/DaneLin/XRVis/internal/chartdata"
	"github.com/DaneLin/XRVis/internal/export"
	"github.com/DaneLin/XRVis/internal/monitoring"
)

// HTMLName is the preview page written by WriteHTML.
const HTMLName = "chart_data_preview.html"

// viridis, low to high
var visualMapColors = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Options tunes the HTML preview.
type Options struct {
	// AssetsHost overrides the echarts CDN, e.g. for offline use.
	AssetsHost string
	// Theme is an echarts theme name such as "dark". Empty means the default.
	Theme string
}

// Bar3D builds a 3D bar chart of g.
func Bar3D(g Grid, o Options) *charts.Bar3D {
	lo, hi := g.Range()
	if hi == lo {
		hi = lo + 1
	}

	data := make([]opts.Chart3DData, 0, len(g.RowLabels)*len(g.ColLabels))
	for i, row := range g.Values {
		for j, v := range row {
			data = append(data, opts.Chart3DData{Value: []interface{}{i, j, v}})
		}
	}

	initOpts := opts.Initialization{
		PageTitle: "Chart data preview",
		Width:     "900px",
		Height:    "600px",
		Theme:     o.Theme,
	}
	if o.AssetsHost != "" {
		initOpts.AssetsHost = o.AssetsHost
	}

	bar := charts.NewBar3D()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts),
		charts.WithTitleOpts(opts.Title{
			Title:    BaseTitle(g.Convention),
			Subtitle: fmt.Sprintf("X=%s Y=%s Z=%s, %d×%d", g.Mapping.X, g.Mapping.Y, g.Mapping.Z, len(g.RowLabels), len(g.ColLabels)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: visualMapColors},
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: g.Mapping.X, Type: "category", Data: g.RowLabels}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: g.Mapping.Y, Type: "category", Data: g.ColLabels}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: g.Mapping.Z, Type: "value"}),
		charts.WithGrid3DOpts(opts.Grid3D{BoxWidth: 200, BoxDepth: 80}),
	)
	bar.AddSeries(string(g.Convention), data)
	return bar
}

// BaseTitle names the chart of convention c after its output file.
func BaseTitle(c chartdata.Convention) string {
	return export.JSONFileName(c)
}

// RenderHTML renders one Bar3D chart per convention into a single page.
func RenderHTML(w io.Writer, d *chartdata.Datasets, p chartdata.Params, o Options) error {
	page := components.NewPage()
	page.PageTitle = "Chart data preview"
	if o.AssetsHost != "" {
		page.SetAssetsHost(o.AssetsHost)
	}

	for _, c := range chartdata.Conventions {
		g, err := GridOf(d, c, p)
		if err != nil {
			return err
		}
		page.AddCharts(Bar3D(g, o))
	}
	return page.Render(w)
}

// WriteHTML renders the preview page into the writer's output directory.
func WriteHTML(w *export.Writer, d *chartdata.Datasets, p chartdata.Params, o Options) (export.File, error) {
	f := export.File{Name: HTMLName, Format: "html", Points: p.Points() * len(chartdata.Conventions)}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, d, p, o); err != nil {
		return f, fmt.Errorf("failed to render chart: %w", err)
	}
	if err := writeAll(w, HTMLName, &buf); err != nil {
		return f, err
	}
	monitoring.Logf("wrote %s (%d charts)", w.Path(HTMLName), len(chartdata.Conventions))
	return f, nil
}

func writeAll(w *export.Writer, name string, src io.WriterTo) error {
	wc, err := w.Create(name)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(wc); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}
