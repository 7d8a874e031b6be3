package hgt2png

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Stage tags the interpretation of a raster's byte buffer. The buffer
// itself stays in big-endian storage order for its whole lifetime;
// signed decode and unsigned encode happen at the per-sample boundary
// functions, so correctness never depends on paired whole-buffer swaps.
type Stage int

const (
	// StageSigned: big-endian signed elevations as stored in the source file.
	StageSigned Stage = iota

	// StageEncoded: big-endian unsigned code values, valid as image row data.
	StageEncoded
)

// String returns the stage name for diagnostics.
func (s Stage) String() string {
	switch s {
	case StageSigned:
		return "signed"
	case StageEncoded:
		return "encoded"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Raster owns the in-memory sample buffer for one conversion run.
// It is a row-major matrix of 16-bit big-endian samples, mutated in
// place exactly once (by Rescale) and never reallocated; tile views
// share its buffer.
type Raster struct {
	pix    []byte
	width  int
	height int
	stage  Stage
}

// LoadRaster opens the HGT file, measures its length via a file-position
// query, validates it against width*height*2, and reads it fully into
// memory. Any failure aborts the conversion; there is no partial state.
func LoadRaster(path string, width, height int) (*Raster, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: %d(w) x %d(h) (both must be >= 2)", ErrInvalidDimensions, width, height)
	}
	expected := int64(width) * int64(height) * 2

	f, err := os.Open(path) // #nosec G304 -- source path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpen, path, err)
	}
	defer func() { _ = f.Close() }()

	actual, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measuring %q: %w", path, err)
	}
	if actual != expected {
		return nil, fmt.Errorf("%w: actual size %d, expected %d", ErrSizeMismatch, actual, expected)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding %q: %w", path, err)
	}

	pix := make([]byte, expected)
	if n, err := io.ReadFull(f, pix); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: read %d of %d bytes from %q", ErrShortRead, n, expected, path)
		}
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return &Raster{pix: pix, width: width, height: height, stage: StageSigned}, nil
}

// newRasterFromSamples builds a signed raster from native int16 samples.
// Used by tests to construct fixtures without a file.
func newRasterFromSamples(width, height int, samples []int16) *Raster {
	pix := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.BigEndian.PutUint16(pix[2*i:], uint16(v))
	}
	return &Raster{pix: pix, width: width, height: height, stage: StageSigned}
}

// Width returns the samples per row.
func (r *Raster) Width() int { return r.width }

// Height returns the row count.
func (r *Raster) Height() int { return r.height }

// Samples returns the total sample count.
func (r *Raster) Samples() int { return r.width * r.height }

// Len returns the buffer length in bytes.
func (r *Raster) Len() int64 { return int64(len(r.pix)) }

// Stage returns the buffer's current stage tag.
func (r *Raster) Stage() Stage { return r.stage }

// requireStage guards a stage transition.
func (r *Raster) requireStage(want Stage) error {
	if r.stage != want {
		return fmt.Errorf("%w: have %s, want %s", ErrRasterStage, r.stage, want)
	}
	return nil
}

// decodeSample and encodeSample are the byte-order boundaries: samples
// are decoded from storage order on read and encoded back on write, so
// the buffer never holds native-endian data.

func decodeSample(b []byte) int16 {
	return int16(binary.BigEndian.Uint16(b))
}

func encodeSample(b []byte, v uint16) {
	binary.BigEndian.PutUint16(b, v)
}

// sample returns the signed elevation at row-major index i.
func (r *Raster) sample(i int) int16 {
	return decodeSample(r.pix[2*i:])
}

// putEncoded overwrites index i with an unsigned code value.
func (r *Raster) putEncoded(i int, v uint16) {
	encodeSample(r.pix[2*i:], v)
}

// encoded returns the unsigned code value at row-major index i.
func (r *Raster) encoded(i int) uint16 {
	return binary.BigEndian.Uint16(r.pix[2*i:])
}
