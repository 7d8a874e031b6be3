// Package pngenc encodes 16-bit grayscale images as PNG with physical
// calibration metadata. The pixel codec is the standard library encoder;
// this package splices the sCAL (physical scale) and pCAL (pixel
// calibration) ancillary chunks, which no Go PNG library emits, into the
// encoded stream ahead of the image data.
package pngenc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strconv"
)

// Sentinel errors for encoding operations.
var (
	ErrNilImage           = errors.New("pngenc: nil or empty image")
	ErrInvalidUnit        = errors.New("pngenc: invalid scale unit")
	ErrInvalidCalibration = errors.New("pngenc: invalid calibration record")
)

// sCAL unit specifiers defined by the PNG extension specification.
const (
	UnitMeter  = 1
	UnitRadian = 2
)

// keyword limit shared by sCAL/pCAL name fields.
const maxNameLen = 79

// Calibration is the metadata attached to one encoded image.
type Calibration struct {
	PixelWidth  float64 // physical width of one pixel
	PixelHeight float64 // physical height of one pixel
	Unit        byte    // UnitMeter or UnitRadian
	Decode      *Decode // optional pCAL record
}

// Decode is the stored linear decode function (pCAL, equation type 0):
// physical = p0 + p1*(value-x0)/(x1-x0) for parameters p0, p1.
type Decode struct {
	Name   string
	Unit   string
	X0, X1 int32
	Params []string
}

// Encode serializes img as a single-channel 16-bit PNG carrying cal.
// The image shares caller-owned memory and is not retained.
func Encode(img *image.Gray16, cal Calibration) ([]byte, error) {
	if img == nil || img.Rect.Dx() == 0 || img.Rect.Dy() == 0 {
		return nil, ErrNilImage
	}
	if err := cal.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("pngenc: %w", err)
	}

	chunks := appendChunk(nil, "sCAL", scalData(cal))
	if cal.Decode != nil {
		chunks = appendChunk(chunks, "pCAL", pcalData(cal.Decode))
	}
	return splice(buf.Bytes(), chunks)
}

// validate checks the calibration record against chunk field limits.
func (c Calibration) validate() error {
	if c.Unit != UnitMeter && c.Unit != UnitRadian {
		return fmt.Errorf("%w: %d", ErrInvalidUnit, c.Unit)
	}
	d := c.Decode
	if d == nil {
		return nil
	}
	if d.Name == "" || len(d.Name) > maxNameLen {
		return fmt.Errorf("%w: name length %d (must be 1-%d)", ErrInvalidCalibration, len(d.Name), maxNameLen)
	}
	if d.X0 == d.X1 {
		return fmt.Errorf("%w: empty domain [%d, %d]", ErrInvalidCalibration, d.X0, d.X1)
	}
	if len(d.Params) == 0 || len(d.Params) > 255 {
		return fmt.Errorf("%w: %d parameters", ErrInvalidCalibration, len(d.Params))
	}
	return nil
}

// scalData builds the sCAL payload: unit byte, then the two pixel
// dimensions as NUL-separated ASCII floating-point values.
func scalData(cal Calibration) []byte {
	data := []byte{cal.Unit}
	data = append(data, formatScale(cal.PixelWidth)...)
	data = append(data, 0)
	return append(data, formatScale(cal.PixelHeight)...)
}

func formatScale(v float64) string {
	return strconv.FormatFloat(v, 'e', 12, 64)
}

// pcalData builds the pCAL payload: name, NUL, x0, x1, equation type 0
// (linear), parameter count, unit, NUL, then NUL-separated parameters.
func pcalData(d *Decode) []byte {
	data := append([]byte(d.Name), 0)
	data = appendInt32(data, d.X0)
	data = appendInt32(data, d.X1)
	data = append(data, 0, byte(len(d.Params)))
	data = append(data, d.Unit...)
	data = append(data, 0)
	for i, p := range d.Params {
		if i > 0 {
			data = append(data, 0)
		}
		data = append(data, p...)
	}
	return data
}
