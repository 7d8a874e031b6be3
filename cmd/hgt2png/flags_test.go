package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		flags, args, err := parseFlags([]string{"N37W122.hgt", "3601", "3601"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(args) != 3 {
			t.Fatalf("positionals = %v, want 3", args)
		}
		if *flags != (cliFlags{}) {
			t.Errorf("flags = %+v, want zero values", flags)
		}
	})

	t.Run("long flags", func(t *testing.T) {
		flags, args, err := parseFlags([]string{
			"--config", "alpine",
			"--out-dir", "tiles",
			"--workers", "4",
			"--verbose",
			"N37W122.hgt", "3601", "3601", "2", "2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.config != "alpine" || flags.outDir != "tiles" || flags.workers != 4 || !flags.verbose {
			t.Errorf("flags = %+v", flags)
		}
		if len(args) != 5 {
			t.Errorf("positionals = %v, want 5", args)
		}
	})

	t.Run("shorthand flags", func(t *testing.T) {
		flags, _, err := parseFlags([]string{"-c", "alpine", "-o", "out.png", "-q", "x.hgt", "5", "5"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.config != "alpine" || flags.output != "out.png" || !flags.quiet {
			t.Errorf("flags = %+v", flags)
		}
	})

	t.Run("version flag", func(t *testing.T) {
		flags, _, err := parseFlags([]string{"--version"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !flags.version {
			t.Error("version flag not set")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, _, err := parseFlags([]string{"--resolution", "high"}); err == nil {
			t.Fatal("expected an error for an unknown flag")
		}
	})
}
