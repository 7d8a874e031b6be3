package hgt2png

import (
	"image"
	"math"
)

// PixelAngles returns the angular extent of one pixel in radians for
// both axes: one degree divided evenly across the samples spanning it.
func (g TileGrid) PixelAngles() (width, height float64) {
	return degToRad(1.0 / float64(g.SubWidth-1)), degToRad(1.0 / float64(g.SubHeight-1))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// View returns the tile at the given grid position as a zero-copy
// strided view into the master buffer: the Gray16 shares r's bytes with
// the master row length as its stride. Requires StageEncoded, since
// Gray16 row data is big-endian unsigned.
func (r *Raster) View(g TileGrid, rowIndex, colIndex int) (*image.Gray16, error) {
	if err := r.requireStage(StageEncoded); err != nil {
		return nil, err
	}
	rowOff, colOff := g.OffsetAt(rowIndex, colIndex)
	start := (rowOff*r.width + colOff) * 2
	end := ((rowOff+g.SubHeight-1)*r.width + colOff + g.SubWidth) * 2
	return &image.Gray16{
		Pix:    r.pix[start:end],
		Stride: r.width * 2,
		Rect:   image.Rect(0, 0, g.SubWidth, g.SubHeight),
	}, nil
}
