package hgt2png

import (
	"fmt"
)

// Sample encoding constants.
const (
	// Void is the reserved signed sample denoting "no measurement".
	Void = -32768

	// VoidEncoded is the reserved unsigned output value for Void samples.
	VoidEncoded = 0xFFFF

	// EncodedMax is the largest code value produced by rescaling; the
	// observed maximum elevation encodes to it.
	EncodedMax = 65534
)

// Default pCAL calibration strings.
const (
	DefaultCalibrationName = "SRTM-HGT"
	DefaultCalibrationUnit = "m"
)

// Input contains conversion parameters.
type Input struct {
	SourcePath string // HGT file path (required)
	Width      int    // samples per row (required, >= 2)
	Height     int    // rows (required, >= 2)
	Rows       int    // tile rows (0 or 1 = no vertical subdivision)
	Cols       int    // tile columns (0 or 1 = no horizontal subdivision)

	// OutputPath names the destination file for a single-tile conversion.
	// It conflicts with a grid larger than 1x1. When set, the emitted PNG
	// carries the raw (min, delta) pair as its physical scale instead of
	// angular pixel sizes.
	OutputPath string

	// OutputDir is the destination directory for tiled output.
	// Empty means the current directory.
	OutputDir string

	// Calibration overrides for the embedded pCAL decode function.
	CalibrationName string // default "SRTM-HGT"
	CalibrationUnit string // default "m"
}

// Validate checks that the input describes a convertible raster.
func (in Input) Validate() error {
	if in.SourcePath == "" {
		return ErrEmptySource
	}
	if in.Width < 2 || in.Height < 2 {
		return fmt.Errorf("%w: %d(w) x %d(h) (both must be >= 2)", ErrInvalidDimensions, in.Width, in.Height)
	}
	if in.Rows < 0 || in.Cols < 0 {
		return fmt.Errorf("%w: %d rows x %d cols (both must be >= 1)", ErrInvalidGrid, in.Rows, in.Cols)
	}
	if in.OutputPath != "" && (in.Rows > 1 || in.Cols > 1) {
		return fmt.Errorf("%w: got %d rows x %d cols", ErrOutputPathTiled, in.Rows, in.Cols)
	}
	return nil
}

// normalized returns a copy of in with defaults applied.
func (in Input) normalized() Input {
	if in.Rows == 0 {
		in.Rows = 1
	}
	if in.Cols == 0 {
		in.Cols = 1
	}
	if in.CalibrationName == "" {
		in.CalibrationName = DefaultCalibrationName
	}
	if in.CalibrationUnit == "" {
		in.CalibrationUnit = DefaultCalibrationUnit
	}
	return in
}

// Cell identifies the 1°x1° geodetic cell a raster covers, as encoded in
// its file name. It is diagnostic only; pixel math never consumes it.
type Cell struct {
	NS  byte // 'N' or 'S'
	EW  byte // 'E' or 'W'
	Lat int  // 0-99
	Lon int  // 0-999
}

// String formats the cell the way HGT files are named, e.g. "N37W122".
func (c Cell) String() string {
	return fmt.Sprintf("%c%02d%c%03d", c.NS, c.Lat, c.EW, c.Lon)
}

// Range holds the observed elevation extremes in meters and the count of
// void (no-data) samples. Min and Max keep their guaranteed-out-of-range
// initial values (32768 and -32768) when no valid sample was seen.
type Range struct {
	Min   int
	Max   int
	Voids int
}

// Delta returns the observed elevation span.
func (r Range) Delta() int { return r.Max - r.Min }

// HasSamples reports whether at least one non-void sample was observed.
func (r Range) HasSamples() bool { return r.Min <= r.Max }

// TileGrid describes how the master raster subdivides into tiles.
// Adjacent tiles share exactly one row/column of samples, so offsets
// advance by subdimension-1.
type TileGrid struct {
	Rows      int
	Cols      int
	SubWidth  int // samples per tile row
	SubHeight int // rows per tile
}

// NewTileGrid validates the requested subdivision against the raster
// dimensions and derives the per-tile sizes. When an axis is subdivided,
// one less than the raster dimension must divide evenly by the tile
// count so shared edges line up.
func NewTileGrid(width, height, rows, cols int) (TileGrid, error) {
	if rows < 1 || cols < 1 {
		return TileGrid{}, fmt.Errorf("%w: %d rows x %d cols (both must be >= 1)", ErrInvalidGrid, rows, cols)
	}
	if cols > 1 && (width-1)%cols != 0 {
		return TileGrid{}, fmt.Errorf("%w: one less than the width of %d is not evenly divisible by %d", ErrInvalidGrid, width, cols)
	}
	if rows > 1 && (height-1)%rows != 0 {
		return TileGrid{}, fmt.Errorf("%w: one less than the height of %d is not evenly divisible by %d", ErrInvalidGrid, height, rows)
	}

	g := TileGrid{Rows: rows, Cols: cols, SubWidth: width, SubHeight: height}
	if cols > 1 {
		g.SubWidth = width/cols + 1
	}
	if rows > 1 {
		g.SubHeight = height/rows + 1
	}
	return g, nil
}

// OffsetAt returns the sample offsets of the tile at the given grid
// position. Offsets advance by subdimension-1 so adjacent tiles share
// one edge of samples.
func (g TileGrid) OffsetAt(rowIndex, colIndex int) (rowOffset, colOffset int) {
	return rowIndex * (g.SubHeight - 1), colIndex * (g.SubWidth - 1)
}

// Tiles returns the total tile count.
func (g TileGrid) Tiles() int { return g.Rows * g.Cols }

// TileResult describes one emitted tile.
type TileResult struct {
	Path      string
	RowOffset int // sample row of the tile's top edge in the master raster
	ColOffset int // sample column of the tile's left edge
	Bytes     int // encoded PNG size
}

// Result holds the outcome of a conversion.
type Result struct {
	Cell        Cell
	Range       Range
	Grid        TileGrid
	Tiles       []TileResult // in emission order (row-major)
	SourceBytes int64
	OutputBytes int64
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	scanWorkers int
}

// WithScanWorkers sets the worker count for the range scan.
// Zero means one worker per available CPU. Panics if n < 0
// (programmer error, similar to time.NewTicker).
func WithScanWorkers(n int) Option {
	if n < 0 {
		panic("hgt2png: WithScanWorkers count must not be negative")
	}
	return func(s *Service) {
		s.cfg.scanWorkers = n
	}
}

// WithCellParser replaces the geodetic cell parser. The file naming
// convention is a presentation concern, so alternate raster sources can
// supply their own.
func WithCellParser(p CellParser) Option {
	return func(s *Service) {
		s.parser = p
	}
}

// WithImageWriter replaces the image encoder collaborator.
func WithImageWriter(w ImageWriter) Option {
	return func(s *Service) {
		s.writer = w
	}
}
