// Package export writes generated chart datasets to flat files.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/DaneLin/XRVis/internal/chartdata"
	"github.com/DaneLin/XRVis/internal/monitoring"
)

// File describes one written output file.
type File struct {
	Name       string               `json:"name"`
	Format     string               `json:"format"`
	Convention chartdata.Convention `json:"convention,omitempty"`
	Mapping    *chartdata.Mapping   `json:"mapping,omitempty"`
	Points     int                  `json:"points"`
}

// BaseName returns the file name stem used for convention c.
func BaseName(c chartdata.Convention) string {
	if c == chartdata.ConventionPositional {
		return "original_format_data"
	}
	return "chart_data_" + string(c)
}

// JSONFileName returns the JSON file name the visualizer expects for c.
func JSONFileName(c chartdata.Convention) string {
	return BaseName(c) + ".json"
}

// Writer writes datasets into Dir on FS.
type Writer struct {
	FS  FileSystem
	Dir string
}

// NewWriter returns a Writer rooted at dir. A nil fsys writes to disk.
func NewWriter(fsys FileSystem, dir string) *Writer {
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	if dir == "" {
		dir = "."
	}
	return &Writer{FS: fsys, Dir: dir}
}

func (w *Writer) path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Path returns the location of name inside the output directory.
func (w *Writer) Path(name string) string {
	return w.path(name)
}

// Create makes sure the output directory exists and creates name inside it.
func (w *Writer) Create(name string) (io.WriteCloser, error) {
	if err := w.ensureDir(); err != nil {
		return nil, err
	}
	wc, err := w.FS.Create(w.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}
	return wc, nil
}

func (w *Writer) ensureDir() error {
	if w.Dir == "." {
		return nil
	}
	if err := w.FS.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	return nil
}

func (w *Writer) write(f File, data []byte) error {
	if err := w.FS.WriteFile(w.path(f.Name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Name, err)
	}
	monitoring.Logf("wrote %s (%d points)", w.path(f.Name), f.Points)
	return nil
}

func fileFor(c chartdata.Convention, format string, points int) File {
	m := c.Mapping()
	return File{
		Name:       BaseName(c) + "." + format,
		Format:     format,
		Convention: c,
		Mapping:    &m,
		Points:     points,
	}
}

// MarshalJSON encodes v as UTF-8 JSON with 2-space indentation and a
// trailing newline. HTML characters are left unescaped.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes one JSON file per convention.
func (w *Writer) WriteJSON(d *chartdata.Datasets) ([]File, error) {
	if err := w.ensureDir(); err != nil {
		return nil, err
	}
	files := make([]File, 0, len(chartdata.Conventions))
	for _, c := range chartdata.Conventions {
		data, err := MarshalJSON(d.Records(c))
		if err != nil {
			return files, fmt.Errorf("failed to encode %s dataset: %w", c, err)
		}
		f := fileFor(c, "json", len(d.Values(c)))
		if err := w.write(f, data); err != nil {
			return files, err
		}
		files = append(files, f)
	}
	return files, nil
}

// WriteCSV writes one CSV file per convention with the mapped property
// names as the header row.
func (w *Writer) WriteCSV(d *chartdata.Datasets) ([]File, error) {
	if err := w.ensureDir(); err != nil {
		return nil, err
	}
	files := make([]File, 0, len(chartdata.Conventions))
	for _, c := range chartdata.Conventions {
		var buf bytes.Buffer
		cw := csv.NewWriter(&buf)
		if err := cw.Write(Header(c)); err != nil {
			return files, fmt.Errorf("failed to encode %s header: %w", c, err)
		}
		rows := Rows(d, c)
		for _, row := range rows {
			if err := cw.Write(formatRow(row)); err != nil {
				return files, fmt.Errorf("failed to encode %s row: %w", c, err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return files, fmt.Errorf("failed to encode %s dataset: %w", c, err)
		}

		f := fileFor(c, "csv", len(rows))
		if err := w.write(f, buf.Bytes()); err != nil {
			return files, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Header returns the column names of convention c.
func Header(c chartdata.Convention) []string {
	m := c.Mapping()
	return []string{m.X, m.Y, m.Z}
}

// Rows flattens the dataset for convention c into X, Y, Z cells.
func Rows(d *chartdata.Datasets, c chartdata.Convention) [][]any {
	var rows [][]any
	switch c {
	case chartdata.ConventionSimple:
		rows = make([][]any, len(d.Simple))
		for i, p := range d.Simple {
			rows[i] = []any{p.Row, p.Column, p.Value}
		}
	case chartdata.ConventionBusiness:
		rows = make([][]any, len(d.Business))
		for i, p := range d.Business {
			rows[i] = []any{p.Year, p.Category, p.Sales}
		}
	case chartdata.ConventionTrend:
		rows = make([][]any, len(d.Trend))
		for i, p := range d.Trend {
			rows[i] = []any{p.Region, p.Product, p.Sales}
		}
	case chartdata.ConventionPositional:
		rows = make([][]any, len(d.Positional))
		for i, p := range d.Positional {
			rows[i] = []any{p.Row(), p.Column(), p.Value()}
		}
	}
	return rows
}

func formatRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// ReadJSON decodes the JSON file written for convention c into v.
func (w *Writer) ReadJSON(c chartdata.Convention, v any) error {
	data, err := w.FS.ReadFile(w.path(JSONFileName(c)))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", JSONFileName(c), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", JSONFileName(c), err)
	}
	return nil
}
