package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DaneLin/XRVis/internal/chartdata"
	"github.com/DaneLin/XRVis/internal/version"
)

// ManifestName is the run description written alongside the datasets.
const ManifestName = "chart_data_manifest.json"

// Manifest records what a run generated and where it went.
type Manifest struct {
	RunID       uuid.UUID                                  `json:"run_id"`
	Generator   string                                     `json:"generator"`
	GeneratedAt time.Time                                  `json:"generated_at"`
	Seed        int64                                      `json:"seed"`
	Params      chartdata.Params                           `json:"params"`
	Files       []File                                     `json:"files"`
	Summaries   map[chartdata.Convention]chartdata.Summary `json:"summaries"`
}

// NewManifest describes a run over d. Files are added as they are written.
func NewManifest(seed int64, p chartdata.Params, d *chartdata.Datasets, now time.Time) *Manifest {
	return &Manifest{
		RunID:       uuid.New(),
		Generator:   version.Version,
		GeneratedAt: now.UTC().Truncate(time.Second),
		Seed:        seed,
		Params:      p,
		Files:       []File{},
		Summaries:   d.Summaries(),
	}
}

// AddFiles appends written files to the manifest.
func (m *Manifest) AddFiles(files ...File) {
	m.Files = append(m.Files, files...)
}

// WriteManifest writes m as ManifestName. The manifest lists itself last.
func (w *Writer) WriteManifest(m *Manifest) (File, error) {
	f := File{Name: ManifestName, Format: "json"}
	if err := w.ensureDir(); err != nil {
		return f, err
	}
	m.AddFiles(f)
	data, err := MarshalJSON(m)
	if err != nil {
		return f, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return f, w.write(f, data)
}

// ReadManifest loads a manifest previously written to w.Dir.
func (w *Writer) ReadManifest() (*Manifest, error) {
	data, err := w.FS.ReadFile(w.path(ManifestName))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
