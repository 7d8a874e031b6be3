package hgt2png

import "errors"

// Sentinel errors for conversion pipeline failures.
var (
	ErrEmptySource       = errors.New("source path cannot be empty")
	ErrOpen              = errors.New("cannot open file")
	ErrSizeMismatch      = errors.New("raster size mismatch")
	ErrShortRead         = errors.New("short read")
	ErrShortWrite        = errors.New("short write")
	ErrInvalidCellName   = errors.New("file name does not encode a geodetic cell")
	ErrInvalidHemisphere = errors.New("invalid hemisphere")
	ErrInvalidDimensions = errors.New("invalid raster dimensions")
	ErrInvalidGrid       = errors.New("invalid tile subdivision")
	ErrDegenerateRange   = errors.New("degenerate elevation range")
	ErrOutputPathTiled   = errors.New("explicit output path requires a 1x1 grid")

	// ErrRasterStage reports a pipeline stage applied to a buffer that is
	// not in the stage that stage expects.
	ErrRasterStage = errors.New("raster buffer in wrong stage")
)
