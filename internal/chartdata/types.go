// Package chartdata generates sample three-dimensional chart datasets.
//
// Every dataset covers the same R×C grid and differs only in how a point is
// named: plain row/column indices, a year/category business view, a
// region/product view with a smooth trend surface, or a positional
// [row, column, value] triple. Points are always emitted row-major.
package chartdata

import "fmt"

// Convention identifies one of the field-naming schemes of a dataset.
type Convention string

const (
	ConventionSimple     Convention = "simple"
	ConventionBusiness   Convention = "business"
	ConventionTrend      Convention = "trend"
	ConventionPositional Convention = "original"
)

// Conventions lists every convention in output order.
var Conventions = []Convention{
	ConventionSimple,
	ConventionBusiness,
	ConventionTrend,
	ConventionPositional,
}

// Mapping describes which record property the visualizer should bind to each axis.
type Mapping struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z string `json:"z"`
}

// Mapping returns the axis mapping for the convention. The positional
// convention maps by index, so its properties are the column headers.
func (c Convention) Mapping() Mapping {
	switch c {
	case ConventionBusiness:
		return Mapping{X: "year", Y: "category", Z: "sales"}
	case ConventionTrend:
		return Mapping{X: "region", Y: "product", Z: "sales"}
	default:
		return Mapping{X: "row", Y: "column", Z: "value"}
	}
}

// SimplePoint is a point addressed by its grid indices.
type SimplePoint struct {
	Row    int `json:"row"`
	Column int `json:"column"`
	Value  int `json:"value"`
}

// BusinessPoint is a point labelled as yearly sales of a product category.
type BusinessPoint struct {
	Year     int    `json:"year"`
	Category string `json:"category"`
	Sales    int    `json:"sales"`
}

// TrendPoint is a point labelled as sales of a product in a region.
type TrendPoint struct {
	Region  string `json:"region"`
	Product string `json:"product"`
	Sales   int    `json:"sales"`
}

// Triple is the positional [row, column, value] form. Arrays marshal as JSON
// arrays, so a []Triple serialises as [[0,0,74],[0,1,65],...].
type Triple [3]int

func (t Triple) Row() int    { return t[0] }
func (t Triple) Column() int { return t[1] }
func (t Triple) Value() int  { return t[2] }

// Params holds the inputs shared by all generators.
type Params struct {
	Rows     int `json:"rows"`
	Cols     int `json:"cols"`
	Min      int `json:"min_value"`
	Max      int `json:"max_value"`
	BaseYear int `json:"base_year"`
}

// Validate reports parameters no generator can honour.
func (p Params) Validate() error {
	if p.Cols > MaxCols {
		return fmt.Errorf("cols must be at most %d to keep category labels distinct, got %d", MaxCols, p.Cols)
	}
	return nil
}

// DefaultBaseYear is the year assigned to row 0 of the business dataset.
const DefaultBaseYear = 2015

// Points returns the number of records each convention yields for p.
func (p Params) Points() int {
	if p.Rows <= 0 || p.Cols <= 0 {
		return 0
	}
	return p.Rows * p.Cols
}

// Datasets groups the four collections produced by one run.
type Datasets struct {
	Simple     []SimplePoint
	Business   []BusinessPoint
	Trend      []TrendPoint
	Positional []Triple
}

// Values returns the value column of the dataset for convention c in record order.
func (d *Datasets) Values(c Convention) []int {
	var out []int
	switch c {
	case ConventionSimple:
		out = make([]int, len(d.Simple))
		for i, p := range d.Simple {
			out[i] = p.Value
		}
	case ConventionBusiness:
		out = make([]int, len(d.Business))
		for i, p := range d.Business {
			out[i] = p.Sales
		}
	case ConventionTrend:
		out = make([]int, len(d.Trend))
		for i, p := range d.Trend {
			out[i] = p.Sales
		}
	case ConventionPositional:
		out = make([]int, len(d.Positional))
		for i, p := range d.Positional {
			out[i] = p.Value()
		}
	}
	return out
}

// Records returns the dataset for convention c as a value suitable for
// JSON encoding.
func (d *Datasets) Records(c Convention) any {
	switch c {
	case ConventionSimple:
		return d.Simple
	case ConventionBusiness:
		return d.Business
	case ConventionTrend:
		return d.Trend
	case ConventionPositional:
		return d.Positional
	}
	return nil
}
