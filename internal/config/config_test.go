package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig drops a YAML preset into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads a full preset", func(t *testing.T) {
		path := writeConfig(t, `
output:
  dir: tiles
grid:
  rows: 2
  cols: 2
calibration:
  description: SRTM-HGT
  unit: m
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Output.Dir != "tiles" {
			t.Errorf("Output.Dir = %q, want tiles", cfg.Output.Dir)
		}
		if cfg.Grid.Rows != 2 || cfg.Grid.Cols != 2 {
			t.Errorf("grid = %dx%d, want 2x2", cfg.Grid.Rows, cfg.Grid.Cols)
		}
		if cfg.Calibration.Description != "SRTM-HGT" || cfg.Calibration.Unit != "m" {
			t.Errorf("calibration = %+v", cfg.Calibration)
		}
	})

	t.Run("partial preset leaves other fields zero", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, "grid:\n  rows: 4\n  cols: 4\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Grid.Rows != 4 || cfg.Grid.Cols != 4 {
			t.Errorf("grid = %dx%d, want 4x4", cfg.Grid.Rows, cfg.Grid.Cols)
		}
		if cfg.Output.Dir != "" || cfg.Calibration.Description != "" {
			t.Errorf("unset fields were filled: %+v", cfg)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Fatalf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		path := writeConfig(t, "grid:\n  rows: 2\nresolution: high\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Fatalf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "grid: [unclosed\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Fatalf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid preset values", func(t *testing.T) {
		path := writeConfig(t, "grid:\n  rows: -1\n  cols: 2\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidGrid) {
			t.Fatalf("error = %v, want ErrInvalidGrid", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	long := strings.Repeat("x", MaxCalibrationLength+1)

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "zero config is valid",
			cfg:  Config{},
		},
		{
			name: "populated config is valid",
			cfg: Config{
				Grid:        GridConfig{Rows: 2, Cols: 2},
				Calibration: CalibrationConfig{Description: "SRTM-HGT", Unit: "m"},
			},
		},
		{
			name:    "negative rows",
			cfg:     Config{Grid: GridConfig{Rows: -1}},
			wantErr: ErrInvalidGrid,
		},
		{
			name:    "negative cols",
			cfg:     Config{Grid: GridConfig{Cols: -2}},
			wantErr: ErrInvalidGrid,
		},
		{
			name:    "description too long",
			cfg:     Config{Calibration: CalibrationConfig{Description: long}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unit too long",
			cfg:     Config{Calibration: CalibrationConfig{Unit: long}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("default config is not neutral: %+v", cfg)
	}
}
