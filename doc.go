// Package hgt2png converts SRTM HGT elevation rasters to calibrated
// 16-bit grayscale PNG tiles.
//
// # Quick Start
//
// Create a service and convert a raster:
//
//	svc := hgt2png.New()
//	result, err := svc.Convert(ctx, hgt2png.Input{
//	    SourcePath: "N37W122.hgt",
//	    Width:      3601,
//	    Height:     3601,
//	    Rows:       2,
//	    Cols:       2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, tile := range result.Tiles {
//	    fmt.Println(tile.Path)
//	}
//
// # Conversion Pipeline
//
// The conversion follows five sequential stages:
//
//  1. Source loading (size validation, full read into memory)
//  2. Geodetic cell parsing from the source file name
//  3. Elevation range scan (minimum, maximum, void count)
//  4. Linear rescaling onto the unsigned 16-bit range, with 0xFFFF
//     reserved for the -32768 "no data" sentinel
//  5. Tile emission as PNG images carrying sCAL physical-scale metadata
//     and a pCAL linear decode function
//
// Tiles share one row/column of samples at internal boundaries, so a
// grid of emitted tiles reassembles seamlessly. Each tile is a zero-copy
// strided view into the master raster buffer.
//
// # Configuration
//
// Use functional options to swap collaborators:
//
//	svc := hgt2png.New(
//	    hgt2png.WithScanWorkers(4),
//	    hgt2png.WithCellParser(parser),
//	    hgt2png.WithImageWriter(writer),
//	)
//
// # Recovering Elevations
//
// Encoded pixel values map back to meters through the embedded pCAL
// parameters: elevation = min + encoded*(delta/65534). The reserved
// value 0xFFFF marks missing measurements.
package hgt2png
