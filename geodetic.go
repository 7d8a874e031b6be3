package hgt2png

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CellParser extracts the geodetic cell from a source file path.
type CellParser interface {
	ParseCell(path string) (Cell, error)
}

// hgtCellParser parses the standard SRTM naming convention.
type hgtCellParser struct{}

func (hgtCellParser) ParseCell(path string) (Cell, error) {
	return ParseCell(path)
}

// cellStemLen is the length of the cell-encoding file stem, e.g. "N37W122".
const cellStemLen = 7

// ParseCell parses the final path component against the pattern
// <N|S><2-digit latitude><E|W><3-digit longitude> immediately followed
// by the source extension, e.g. "N37W122.hgt". The degree fields are not
// range-checked beyond their shape.
func ParseCell(path string) (Cell, error) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if len(stem) != cellStemLen || filepath.Ext(name) == "" {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCellName, name)
	}

	ns, ew := stem[0], stem[3]
	if ns != 'N' && ns != 'S' {
		return Cell{}, fmt.Errorf("%w: %q in %q", ErrInvalidHemisphere, ns, name)
	}
	if ew != 'W' && ew != 'E' {
		return Cell{}, fmt.Errorf("%w: %q in %q", ErrInvalidHemisphere, ew, name)
	}

	lat, err := parseDegrees(stem[1:3])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCellName, name)
	}
	lon, err := parseDegrees(stem[4:7])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCellName, name)
	}

	return Cell{NS: ns, EW: ew, Lat: lat, Lon: lon}, nil
}

// parseDegrees converts a fixed-width decimal field.
func parseDegrees(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit %q", c)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// BaseName returns the final path component without its extension; tiled
// output reuses it as the tile filename prefix.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
