package main

import (
	"fmt"
	"io"
)

// printUsage writes the command usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
        hgt2png <HGT source> <width> <height> [<rows> <cols>]

Converts a raw SRTM HGT raster to one or more calibrated 16-bit
grayscale PNG tiles. The optional <rows> <cols> pair subdivides the
raster; both default to 1. When given, each must be a counting number,
and one less than <width>/<height> must divide evenly by <cols>/<rows>
so adjacent tiles share one edge of samples.

Flags:
  -o, --output PATH    write a single tile to PATH (requires a 1x1 grid)
  -d, --out-dir DIR    directory for tile output (default: current dir)
  -c, --config NAME    config preset name or path
  -w, --workers N      range scan workers (0 = one per CPU)
  -q, --quiet          only show errors
  -v, --verbose        show raster diagnostics
      --version        print version and exit

E.g.
        hgt2png N37W122.hgt 3601 3601 2 2

            => N37W122.0.0.png
            => N37W122.0.1800.png
            => N37W122.1800.0.png
            => N37W122.1800.1800.png
`)
}
