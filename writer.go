package hgt2png

import (
	"image"

	"github.com/garrettsickles/hgt2png/internal/pngenc"
)

// ScaleUnit is the physical-scale unit specifier carried by the sCAL
// metadata record.
type ScaleUnit byte

// Scale units, matching the PNG sCAL unit field.
const (
	UnitMeter  ScaleUnit = 1
	UnitRadian ScaleUnit = 2
)

// Calibration carries the physical-scale metadata for one tile.
type Calibration struct {
	// PixelWidth and PixelHeight are the physical size of one pixel:
	// angular extent in radians for tiled output, or the raw (min, delta)
	// pair in meters for a single explicit-destination tile.
	PixelWidth  float64
	PixelHeight float64
	Unit        ScaleUnit

	// Decode is the stored linear decode function (pCAL); nil omits it.
	Decode *DecodeFunc
}

// DecodeFunc describes an affine mapping from encoded pixel values back
// to physical elevation, stored so readers recover meters without
// external lookup.
type DecodeFunc struct {
	Description string   // calibration name, e.g. "SRTM-HGT"
	Unit        string   // physical unit, e.g. "m"
	X0, X1      int32    // output integer domain bounds
	Params      []string // string-encoded linear coefficients (min, delta)
}

// ImageWriter serializes one calibrated grayscale tile. The image shares
// caller-owned memory; implementations must not retain it.
type ImageWriter interface {
	Encode(img *image.Gray16, cal Calibration) ([]byte, error)
}

// pngWriter is the default ImageWriter, backed by internal/pngenc.
type pngWriter struct{}

func (pngWriter) Encode(img *image.Gray16, cal Calibration) ([]byte, error) {
	enc := pngenc.Calibration{
		PixelWidth:  cal.PixelWidth,
		PixelHeight: cal.PixelHeight,
		Unit:        byte(cal.Unit),
	}
	if cal.Decode != nil {
		enc.Decode = &pngenc.Decode{
			Name:   cal.Decode.Description,
			Unit:   cal.Decode.Unit,
			X0:     cal.Decode.X0,
			X1:     cal.Decode.X1,
			Params: cal.Decode.Params,
		}
	}
	return pngenc.Encode(img, enc)
}
