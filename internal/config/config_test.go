package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestDefaultGeneratorConfig(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	if cfg.Rows == nil || *cfg.Rows != 10 {
		t.Errorf("Expected Rows 10, got %v", cfg.Rows)
	}
	if cfg.MinValue == nil || *cfg.MinValue != 10 {
		t.Errorf("Expected MinValue 10, got %v", cfg.MinValue)
	}
	if cfg.MaxValue == nil || *cfg.MaxValue != 100 {
		t.Errorf("Expected MaxValue 100, got %v", cfg.MaxValue)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEmptyConfigGetters(t *testing.T) {
	cfg := EmptyGeneratorConfig()

	assert.Equal(t, 10, cfg.GetRows())
	assert.Equal(t, 10, cfg.GetCols())
	assert.Equal(t, 10, cfg.GetMinValue())
	assert.Equal(t, 100, cfg.GetMaxValue())
	assert.Equal(t, 2015, cfg.GetBaseYear())
	assert.Equal(t, int64(0), cfg.GetSeed())
	assert.Equal(t, ".", cfg.GetOutputDir())
	assert.True(t, cfg.HasFormat(FormatJSON), "json is always on")
	assert.False(t, cfg.HasFormat(FormatCSV))
}

func TestLoadGeneratorConfig(t *testing.T) {
	path := writeConfig(t, "datagen.json", `{
  "rows": 4,
  "cols": 26,
  "min_value": 0,
  "max_value": 500,
  "seed": 1234,
  "output_dir": "out",
  "formats": ["csv", "XLSX"]
}`)

	cfg, err := LoadGeneratorConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.GetRows())
	assert.Equal(t, 26, cfg.GetCols())
	assert.Equal(t, 0, cfg.GetMinValue())
	assert.Equal(t, 500, cfg.GetMaxValue())
	assert.Equal(t, 2015, cfg.GetBaseYear(), "omitted field keeps default")
	assert.Equal(t, int64(1234), cfg.GetSeed())
	assert.Equal(t, "out", cfg.GetOutputDir())
	assert.True(t, cfg.HasFormat(FormatCSV))
	assert.True(t, cfg.HasFormat(FormatXLSX), "format match is case-insensitive")
	assert.False(t, cfg.HasFormat(FormatHTML))
}

func TestLoadGeneratorConfig_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong_extension", "cfg.yaml", `{}`, ".json extension"},
		{"bad_json", "cfg.json", `{"rows": `, "failed to parse"},
		{"rows_too_small", "cfg.json", `{"rows": 0}`, "rows must be at least 1"},
		{"cols_too_small", "cfg.json", `{"cols": -2}`, "cols must be at least 1"},
		{"negative_min", "cfg.json", `{"min_value": -1}`, "min_value must be at least 0"},
		{"max_not_above_min", "cfg.json", `{"min_value": 50, "max_value": 50}`, "must be greater than min_value"},
		{"unknown_format", "cfg.json", `{"formats": ["pdf"]}`, "unknown output format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.file, tc.body)
			_, err := LoadGeneratorConfig(path)
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadGeneratorConfig_MissingFile(t *testing.T) {
	_, err := LoadGeneratorConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadGeneratorConfig_TooLarge(t *testing.T) {
	body := `{"rows": 1, "pad": "` + strings.Repeat("x", 1024*1024) + `"}`
	path := writeConfig(t, "big.json", body)

	_, err := LoadGeneratorConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestLoadDefaultConfigFile(t *testing.T) {
	cfg, err := LoadGeneratorConfig(filepath.Join("..", "..", DefaultConfigPath))
	require.NoError(t, err)

	def := DefaultGeneratorConfig()
	assert.Equal(t, def.GetRows(), cfg.GetRows())
	assert.Equal(t, def.GetCols(), cfg.GetCols())
	assert.Equal(t, def.GetMinValue(), cfg.GetMinValue())
	assert.Equal(t, def.GetMaxValue(), cfg.GetMaxValue())
	assert.Equal(t, def.GetBaseYear(), cfg.GetBaseYear())
	assert.Equal(t, def.Formats, cfg.Formats)
}

func TestMerge(t *testing.T) {
	base := DefaultGeneratorConfig()
	override := &GeneratorConfig{
		Rows:    ptrInt(3),
		Seed:    ptrInt64(9),
		Formats: []string{FormatPNG},
	}

	merged := base.Merge(override)
	assert.Equal(t, 3, merged.GetRows())
	assert.Equal(t, 10, merged.GetCols())
	assert.Equal(t, int64(9), merged.GetSeed())
	assert.Equal(t, []string{FormatPNG}, merged.Formats)

	// the receiver is untouched
	assert.Equal(t, 10, base.GetRows())

	*override.Rows = 99
	assert.Equal(t, 3, merged.GetRows(), "merge copies values, not pointers")

	assert.Equal(t, 10, base.Merge(nil).GetRows())
}

func TestEnableFormat(t *testing.T) {
	cfg := EmptyGeneratorConfig()
	cfg.EnableFormat(FormatCSV)
	cfg.EnableFormat(FormatCSV)
	cfg.EnableFormat(FormatJSON)

	assert.Equal(t, []string{FormatCSV}, cfg.Formats)
}
