package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigPath is the checked-in file documenting the generator defaults.
const DefaultConfigPath = "config/datagen.defaults.json"

// Output formats accepted in GeneratorConfig.Formats. JSON is always written.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatXLSX     = "xlsx"
	FormatHTML     = "html"
	FormatPNG      = "png"
	FormatManifest = "manifest"
)

var knownFormats = map[string]bool{
	FormatJSON:     true,
	FormatCSV:      true,
	FormatXLSX:     true,
	FormatHTML:     true,
	FormatPNG:      true,
	FormatManifest: true,
}

// Lower bounds enforced on user input.
const (
	MinRows     = 1
	MinCols     = 1
	MinMinValue = 0
	MinMaxValue = 1
)

// GeneratorConfig holds the generation parameters and output options.
// Nil fields fall back to the defaults returned by the Get* methods, so a
// partial file only overrides what it names.
type GeneratorConfig struct {
	Rows     *int `json:"rows,omitempty"`
	Cols     *int `json:"cols,omitempty"`
	MinValue *int `json:"min_value,omitempty"`
	MaxValue *int `json:"max_value,omitempty"`
	BaseYear *int `json:"base_year,omitempty"`

	// Seed of 0 means time based.
	Seed *int64 `json:"seed,omitempty"`

	OutputDir *string  `json:"output_dir,omitempty"`
	Formats   []string `json:"formats,omitempty"`
}

func ptrInt(v int) *int          { return &v }
func ptrInt64(v int64) *int64    { return &v }
func ptrString(v string) *string { return &v }

// EmptyGeneratorConfig returns a GeneratorConfig with all fields unset.
func EmptyGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{}
}

// DefaultGeneratorConfig returns a GeneratorConfig with every field set to
// its default.
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Rows:      ptrInt(10),
		Cols:      ptrInt(10),
		MinValue:  ptrInt(10),
		MaxValue:  ptrInt(100),
		BaseYear:  ptrInt(2015),
		Seed:      ptrInt64(0),
		OutputDir: ptrString("."),
		Formats:   []string{FormatJSON},
	}
}

// LoadGeneratorConfig loads a GeneratorConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadGeneratorConfig(path string) (*GeneratorConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyGeneratorConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set. The max > min rule is only
// checked when both bounds are present.
func (c *GeneratorConfig) Validate() error {
	if c.Rows != nil && *c.Rows < MinRows {
		return fmt.Errorf("rows must be at least %d, got %d", MinRows, *c.Rows)
	}
	if c.Cols != nil && *c.Cols < MinCols {
		return fmt.Errorf("cols must be at least %d, got %d", MinCols, *c.Cols)
	}
	if c.MinValue != nil && *c.MinValue < MinMinValue {
		return fmt.Errorf("min_value must be at least %d, got %d", MinMinValue, *c.MinValue)
	}
	if c.MaxValue != nil && *c.MaxValue < MinMaxValue {
		return fmt.Errorf("max_value must be at least %d, got %d", MinMaxValue, *c.MaxValue)
	}
	if c.MinValue != nil && c.MaxValue != nil && *c.MaxValue <= *c.MinValue {
		return fmt.Errorf("max_value (%d) must be greater than min_value (%d)", *c.MaxValue, *c.MinValue)
	}
	for _, f := range c.Formats {
		if !knownFormats[strings.ToLower(f)] {
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}

// Merge returns a copy of c with every field that is set in o applied on top.
func (c *GeneratorConfig) Merge(o *GeneratorConfig) *GeneratorConfig {
	out := *c
	out.Formats = append([]string(nil), c.Formats...)
	if o == nil {
		return &out
	}
	if o.Rows != nil {
		out.Rows = ptrInt(*o.Rows)
	}
	if o.Cols != nil {
		out.Cols = ptrInt(*o.Cols)
	}
	if o.MinValue != nil {
		out.MinValue = ptrInt(*o.MinValue)
	}
	if o.MaxValue != nil {
		out.MaxValue = ptrInt(*o.MaxValue)
	}
	if o.BaseYear != nil {
		out.BaseYear = ptrInt(*o.BaseYear)
	}
	if o.Seed != nil {
		out.Seed = ptrInt64(*o.Seed)
	}
	if o.OutputDir != nil {
		out.OutputDir = ptrString(*o.OutputDir)
	}
	if o.Formats != nil {
		out.Formats = append([]string(nil), o.Formats...)
	}
	return &out
}

// GetRows returns the rows value or the default.
func (c *GeneratorConfig) GetRows() int {
	if c.Rows == nil {
		return 10
	}
	return *c.Rows
}

// GetCols returns the cols value or the default.
func (c *GeneratorConfig) GetCols() int {
	if c.Cols == nil {
		return 10
	}
	return *c.Cols
}

// GetMinValue returns the min_value value or the default.
func (c *GeneratorConfig) GetMinValue() int {
	if c.MinValue == nil {
		return 10
	}
	return *c.MinValue
}

// GetMaxValue returns the max_value value or the default.
func (c *GeneratorConfig) GetMaxValue() int {
	if c.MaxValue == nil {
		return 100
	}
	return *c.MaxValue
}

// GetBaseYear returns the base_year value or the default.
func (c *GeneratorConfig) GetBaseYear() int {
	if c.BaseYear == nil {
		return 2015
	}
	return *c.BaseYear
}

// GetSeed returns the seed value or 0 (time based).
func (c *GeneratorConfig) GetSeed() int64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// GetOutputDir returns the output directory or the working directory.
func (c *GeneratorConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "."
	}
	return *c.OutputDir
}

// HasFormat reports whether format is enabled. JSON is always enabled.
func (c *GeneratorConfig) HasFormat(format string) bool {
	if format == FormatJSON {
		return true
	}
	for _, f := range c.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// EnableFormat adds format to Formats if it is not already present.
func (c *GeneratorConfig) EnableFormat(format string) {
	if !c.HasFormat(format) {
		c.Formats = append(c.Formats, format)
	}
}
