package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the hgt2png CLI.
type cliFlags struct {
	config  string
	output  string
	outDir  string
	workers int
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses CLI flags and returns the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("hgt2png", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config preset name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file (single-tile mode)")
	fs.StringVarP(&f.outDir, "out-dir", "d", "", "output directory for tiles")
	fs.IntVarP(&f.workers, "workers", "w", 0, "range scan workers (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show raster diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
