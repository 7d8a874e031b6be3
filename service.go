package hgt2png

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// pCAL output integer domain bounds, matching the signed sample domain
// the calibration maps back into.
const (
	calDomainMin = -32767
	calDomainMax = 32767
)

// Service orchestrates the HGT-to-PNG pipeline.
type Service struct {
	cfg    serviceConfig
	parser CellParser
	writer ImageWriter
}

// New creates a Service with default collaborators.
// Use options to customize behavior (e.g., WithScanWorkers).
func New(opts ...Option) *Service {
	s := &Service{
		parser: hgtCellParser{},
		writer: pngWriter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert runs the full pipeline: load, parse the geodetic cell, scan
// the elevation range, rescale in place, and emit one calibrated PNG per
// tile. The first error aborts the run; tiles already written stay on
// disk. The context is checked between stages.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewTileGrid(input.Width, input.Height, input.Rows, input.Cols)
	if err != nil {
		return nil, err
	}

	cell, err := s.parser.ParseCell(input.SourcePath)
	if err != nil {
		return nil, err
	}

	raster, err := LoadRaster(input.SourcePath, input.Width, input.Height)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	rng, err := raster.ScanRange(s.cfg.scanWorkers)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err := raster.Rescale(rng); err != nil {
		return nil, err
	}

	result := &Result{
		Cell:        cell,
		Range:       rng,
		Grid:        grid,
		SourceBytes: raster.Len(),
	}

	cal := s.calibration(input, grid, rng)
	base := BaseName(input.SourcePath)
	for ri := 0; ri < grid.Rows; ri++ {
		for ci := 0; ci < grid.Cols; ci++ {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			view, err := raster.View(grid, ri, ci)
			if err != nil {
				return nil, err
			}
			data, err := s.writer.Encode(view, cal)
			if err != nil {
				return nil, fmt.Errorf("encoding tile (%d,%d): %w", ri, ci, err)
			}

			rowOff, colOff := grid.OffsetAt(ri, ci)
			path := tilePath(input, base, rowOff, colOff)
			if err := writeTile(path, data); err != nil {
				return nil, err
			}

			result.Tiles = append(result.Tiles, TileResult{
				Path:      path,
				RowOffset: rowOff,
				ColOffset: colOff,
				Bytes:     len(data),
			})
			result.OutputBytes += int64(len(data))
		}
	}

	return result, nil
}

// calibration builds the per-tile metadata. Every tile of one run shares
// it: the decode coefficients come from the whole raster's range, and
// all tiles have identical pixel dimensions.
func (s *Service) calibration(input Input, grid TileGrid, rng Range) Calibration {
	if input.OutputPath != "" {
		// Single explicit-destination tile: the physical-scale record
		// carries the raw (min, delta) pair in meters.
		return Calibration{
			PixelWidth:  float64(rng.Min),
			PixelHeight: float64(rng.Delta()),
			Unit:        UnitMeter,
		}
	}

	upx, upy := grid.PixelAngles()
	return Calibration{
		PixelWidth:  upx,
		PixelHeight: upy,
		Unit:        UnitRadian,
		Decode: &DecodeFunc{
			Description: input.CalibrationName,
			Unit:        input.CalibrationUnit,
			X0:          calDomainMin,
			X1:          calDomainMax,
			Params: []string{
				formatCoefficient(float64(rng.Min)),
				formatCoefficient(float64(rng.Delta())),
			},
		},
	}
}

// formatCoefficient renders a pCAL linear coefficient with six decimal
// places, the format downstream readers of these files expect.
func formatCoefficient(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// tilePath derives the destination for the tile at the given offsets.
func tilePath(input Input, base string, rowOffset, colOffset int) string {
	if input.OutputPath != "" {
		return input.OutputPath
	}
	name := fmt.Sprintf("%s.%d.%d.png", base, rowOffset, colOffset)
	return filepath.Join(input.OutputDir, name)
}

// writeTile writes one encoded tile, verifying the byte count. The file
// handle is released on every path.
func writeTile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) // #nosec G304 G302 -- destination is user-chosen, tiles are meant to be readable
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrOpen, path, err)
	}

	n, err := f.Write(data)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if n != len(data) {
		_ = f.Close()
		return fmt.Errorf("%w: wrote %d of %d bytes to %q", ErrShortWrite, n, len(data), path)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return nil
}
