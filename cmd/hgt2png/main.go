package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}

	if flags.version {
		fmt.Fprintf(os.Stdout, "hgt2png %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Usage-only invocation exits cleanly.
	if len(args) == 0 {
		printUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}

	// Normalize GOMAXPROCS for the parallel range scan; errors ignored
	// because maxprocs.Set only fails on an invalid GOMAXPROCS env, in
	// which case runtime defaults apply.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := run(args, flags, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
