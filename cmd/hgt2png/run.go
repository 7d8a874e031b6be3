package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	hgt2png "github.com/garrettsickles/hgt2png"
	"github.com/garrettsickles/hgt2png/internal/config"
	"github.com/garrettsickles/hgt2png/internal/fileutil"
)

// Sentinel errors for CLI argument handling.
var (
	ErrArgCount       = errors.New("expected <source> <width> <height> [<rows> <cols>]")
	ErrNotAnInteger   = errors.New("argument must be an integer")
	ErrNegativeWorker = errors.New("invalid worker count")
)

// run parses positional arguments, applies config presets, and drives
// one conversion.
func run(args []string, flags *cliFlags, stdout, stderr io.Writer) error {
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrNegativeWorker, flags.workers)
	}

	input, err := buildInput(args, flags)
	if err != nil {
		return err
	}

	if input.OutputDir != "" {
		if err := fileutil.EnsureDir(input.OutputDir); err != nil {
			return err
		}
	}

	svc := hgt2png.New(hgt2png.WithScanWorkers(flags.workers))
	result, err := svc.Convert(context.Background(), input)
	if err != nil {
		return err
	}

	printResult(result, input, flags, stdout)
	return nil
}

// buildInput resolves positional arguments and config presets into a
// conversion input. CLI values win over presets.
func buildInput(args []string, flags *cliFlags) (hgt2png.Input, error) {
	if len(args) != 3 && len(args) != 5 {
		return hgt2png.Input{}, fmt.Errorf("%w: got %d argument(s)", ErrArgCount, len(args))
	}

	width, err := parseIntArg("width", args[1])
	if err != nil {
		return hgt2png.Input{}, err
	}
	height, err := parseIntArg("height", args[2])
	if err != nil {
		return hgt2png.Input{}, err
	}

	rows, cols := 0, 0
	if len(args) == 5 {
		if rows, err = parseIntArg("rows", args[3]); err != nil {
			return hgt2png.Input{}, err
		}
		if cols, err = parseIntArg("cols", args[4]); err != nil {
			return hgt2png.Input{}, err
		}
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return hgt2png.Input{}, fmt.Errorf("loading config: %w", err)
		}
	}

	input := hgt2png.Input{
		SourcePath:      args[0],
		Width:           width,
		Height:          height,
		Rows:            rows,
		Cols:            cols,
		OutputPath:      flags.output,
		OutputDir:       flags.outDir,
		CalibrationName: cfg.Calibration.Description,
		CalibrationUnit: cfg.Calibration.Unit,
	}

	// Presets fill only what neither positionals nor flags set.
	if input.Rows == 0 && input.Cols == 0 {
		input.Rows, input.Cols = cfg.Grid.Rows, cfg.Grid.Cols
	}
	if input.OutputDir == "" {
		input.OutputDir = cfg.Output.Dir
	}

	return input, nil
}

// parseIntArg converts one positional argument.
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrNotAnInteger, name, value)
	}
	return n, nil
}

// printResult reports the conversion outcome. Verbose mode reproduces
// the raster diagnostics: source size, cell bounds, elevation range,
// missing-pixel count, and the output-to-source size ratio.
func printResult(result *hgt2png.Result, input hgt2png.Input, flags *cliFlags, stdout io.Writer) {
	if flags.quiet {
		return
	}

	if flags.verbose {
		fmt.Fprintf(stdout, "File: %q (%d bytes)\n", input.SourcePath, result.SourceBytes)
		fmt.Fprintf(stdout, "Size: %d(w) x %d(h) pixels (%d samples)\n",
			input.Width, input.Height, input.Width*input.Height)
		cell := result.Cell
		fmt.Fprintf(stdout, "Bounds: (%d%c, %d%c) to (%d%c, %d%c)\n",
			cell.Lat, cell.NS, cell.Lon, cell.EW, cell.Lat+1, cell.NS, cell.Lon+1, cell.EW)
		fmt.Fprintf(stdout, "Range: [%d, %d] meters\n", result.Range.Min, result.Range.Max)
		fmt.Fprintf(stdout, "Missing: %d pixels\n", result.Range.Voids)
	}

	for _, tile := range result.Tiles {
		fmt.Fprintf(stdout, "Created %s\n", tile.Path)
	}

	if flags.verbose {
		ratio := float64(result.OutputBytes) / float64(result.SourceBytes) * 100.0
		fmt.Fprintf(stdout, "Output: Compression: %.2f%% of original size\n", ratio)
	}
}
