// Command datagen writes sample chart datasets for the XR chart visualizer.
//
// By default it asks for the grid size and value range on stdin, then writes
// chart_data_simple.json, chart_data_business.json, chart_data_trend.json and
// original_format_data.json. Flags select extra outputs and a batch mode that
// skips the prompts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/DaneLin/XRVis/internal/chartdata"
	"github.com/DaneLin/XRVis/internal/config"
	"github.com/DaneLin/XRVis/internal/export"
	"github.com/DaneLin/XRVis/internal/monitoring"
	"github.com/DaneLin/XRVis/internal/preview"
	"github.com/DaneLin/XRVis/internal/prompt"
	"github.com/DaneLin/XRVis/internal/version"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, export.OSFileSystem{}, time.Now)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("datagen: %v", err)
	}
}

// options are the command-line flags that are not part of GeneratorConfig.
type options struct {
	configPath string
	batch      bool
	quiet      bool
	assetsHost string
	theme      string
	version    bool
}

// parseFlags returns the flag overrides as a GeneratorConfig holding only the
// flags that were set explicitly, so they can be merged over the config file.
func parseFlags(args []string, stderr io.Writer) (*config.GeneratorConfig, options, error) {
	fs := flag.NewFlagSet("datagen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.configPath, "config", "", "JSON config file (see "+config.DefaultConfigPath+")")
	fs.BoolVar(&o.batch, "batch", false, "Skip the prompts and use flag/config values")
	fs.BoolVar(&o.quiet, "quiet", false, "Do not log written files")
	fs.StringVar(&o.assetsHost, "assets-host", "", "Override the echarts assets host for -html")
	fs.StringVar(&o.theme, "theme", "", "echarts theme for -html (e.g. dark, chalk, westeros)")
	fs.BoolVar(&o.version, "version", false, "Print version and exit")

	rows := fs.Int("rows", 10, "Number of rows (prompt default in interactive mode)")
	cols := fs.Int("cols", 10, "Number of columns")
	minValue := fs.Int("min", 10, "Minimum value")
	maxValue := fs.Int("max", 100, "Maximum value")
	baseYear := fs.Int("base-year", chartdata.DefaultBaseYear, "Year of the first row in the business dataset")
	seed := fs.Int64("seed", 0, "Random seed (0 = time based)")
	out := fs.String("out", ".", "Output directory")

	csvOut := fs.Bool("csv", false, "Also write CSV copies")
	xlsxOut := fs.Bool("xlsx", false, "Also write "+export.WorkbookName)
	htmlOut := fs.Bool("html", false, "Also write "+preview.HTMLName)
	pngOut := fs.Bool("png", false, "Also write PNG heatmaps")
	manifestOut := fs.Bool("manifest", false, "Also write "+export.ManifestName)

	if err := fs.Parse(args); err != nil {
		return nil, o, err
	}
	if fs.NArg() > 0 {
		return nil, o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := config.EmptyGeneratorConfig()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = rows
		case "cols":
			cfg.Cols = cols
		case "min":
			cfg.MinValue = minValue
		case "max":
			cfg.MaxValue = maxValue
		case "base-year":
			cfg.BaseYear = baseYear
		case "seed":
			cfg.Seed = seed
		case "out":
			cfg.OutputDir = out
		}
	})

	formats := []struct {
		on     bool
		format string
	}{
		{*csvOut, config.FormatCSV},
		{*xlsxOut, config.FormatXLSX},
		{*htmlOut, config.FormatHTML},
		{*pngOut, config.FormatPNG},
		{*manifestOut, config.FormatManifest},
	}
	for _, f := range formats {
		if f.on {
			cfg.EnableFormat(f.format)
		}
	}
	return cfg, o, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, fsys export.FileSystem, now func() time.Time) error {
	flagCfg, o, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	if o.version {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	if o.quiet {
		prev := monitoring.Logf
		monitoring.SetLogger(nil)
		defer monitoring.SetLogger(prev)
	}

	cfg := config.DefaultGeneratorConfig()
	if o.configPath != "" {
		fileCfg, err := config.LoadGeneratorConfig(o.configPath)
		if err != nil {
			return err
		}
		cfg = cfg.Merge(fileCfg)
	}
	if flagCfg.Formats != nil {
		// format flags add to the configured formats instead of replacing them
		for _, f := range flagCfg.Formats {
			cfg.EnableFormat(f)
		}
		flagCfg.Formats = nil
	}
	cfg = cfg.Merge(flagCfg)

	if o.batch {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid parameters: %w", err)
		}
	} else {
		fmt.Fprintln(stdout, strings.Repeat("=", 50))
		fmt.Fprintln(stdout, "Chart Data Generator - Manual Parameter Input")
		fmt.Fprintln(stdout, strings.Repeat("=", 50))

		v, err := prompt.New(stdin, stdout).Collect(prompt.Values{
			Rows: cfg.GetRows(),
			Cols: cfg.GetCols(),
			Min:  cfg.GetMinValue(),
			Max:  cfg.GetMaxValue(),
		})
		if err != nil {
			return err
		}
		cfg.Rows, cfg.Cols, cfg.MinValue, cfg.MaxValue = &v.Rows, &v.Cols, &v.Min, &v.Max
	}

	params := chartdata.Params{
		Rows:     cfg.GetRows(),
		Cols:     cfg.GetCols(),
		Min:      cfg.GetMinValue(),
		Max:      cfg.GetMaxValue(),
		BaseYear: cfg.GetBaseYear(),
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	seed := cfg.GetSeed()
	if seed == 0 {
		seed = now().UnixNano()
	}

	fmt.Fprintln(stdout, "\nGenerating data...")
	d := chartdata.NewSeededGenerator(seed).All(params)

	files, err := writeOutputs(cfg, o, fsys, d, params, seed, now())
	if err != nil {
		return err
	}

	printSummary(stdout, params, seed, d, files)
	return nil
}

// writeOutputs writes the JSON datasets and every enabled extra format.
func writeOutputs(cfg *config.GeneratorConfig, o options, fsys export.FileSystem, d *chartdata.Datasets, p chartdata.Params, seed int64, now time.Time) ([]export.File, error) {
	w := export.NewWriter(fsys, cfg.GetOutputDir())

	files, err := w.WriteJSON(d)
	if err != nil {
		return nil, err
	}

	if cfg.HasFormat(config.FormatCSV) {
		csvFiles, err := w.WriteCSV(d)
		if err != nil {
			return nil, err
		}
		files = append(files, csvFiles...)
	}
	if cfg.HasFormat(config.FormatXLSX) {
		f, err := w.WriteXLSX(d)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if cfg.HasFormat(config.FormatHTML) {
		f, err := preview.WriteHTML(w, d, p, preview.Options{AssetsHost: o.assetsHost, Theme: o.theme})
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if cfg.HasFormat(config.FormatPNG) {
		pngFiles, err := preview.WriteHeatmaps(w, d, p)
		if err != nil {
			return nil, err
		}
		files = append(files, pngFiles...)
	}
	if cfg.HasFormat(config.FormatManifest) {
		m := export.NewManifest(seed, p, d, now)
		m.AddFiles(files...)
		f, err := w.WriteManifest(m)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func printSummary(out io.Writer, p chartdata.Params, seed int64, d *chartdata.Datasets, files []export.File) {
	sums := d.Summaries()

	fmt.Fprintln(out, "\nSuccessfully generated the following JSON files:")
	for i, c := range chartdata.Conventions {
		m := c.Mapping()
		s := sums[c]
		fmt.Fprintf(out, "%d. %s - contains %d×%d = %d data points\n", i+1, export.JSONFileName(c), p.Rows, p.Cols, p.Points())
		if c == chartdata.ConventionPositional {
			fmt.Fprintln(out, "   Format: [[row, col, value], [row, col, value], ...] (original format for direct use)")
		} else {
			fmt.Fprintf(out, "   Property mapping: X=%s, Y=%s, Z=%s\n", m.X, m.Y, m.Z)
		}
		fmt.Fprintf(out, "   %s: min=%.0f max=%.0f mean=%.2f stddev=%.2f\n", m.Z, s.Min, s.Max, s.Mean, s.StdDev)
		fmt.Fprintln(out)
	}

	var extra []string
	for _, f := range files {
		if f.Format != "json" || f.Name == export.ManifestName {
			extra = append(extra, f.Name)
		}
	}
	if len(extra) > 0 {
		fmt.Fprintf(out, "Also wrote: %s\n", strings.Join(extra, ", "))
	}
	fmt.Fprintf(out, "Seed: %d (pass -seed %d to reproduce)\n", seed, seed)
	fmt.Fprintln(out, "When using in Unreal Engine, make sure to set the correct property mapping in PropertyMapping")
}
