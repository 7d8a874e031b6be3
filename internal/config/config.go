// Package config loads YAML presets for the hgt2png CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/garrettsickles/hgt2png/internal/fileutil"
	"github.com/garrettsickles/hgt2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidGrid     = errors.New("grid values must be >= 0")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// MaxCalibrationLength bounds the pCAL name and unit strings; the chunk
// keyword field holds at most 79 bytes.
const MaxCalibrationLength = 79

// Config holds preset values merged under CLI flags.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Grid        GridConfig        `yaml:"grid"`
	Calibration CalibrationConfig `yaml:"calibration"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default tile directory (empty = current directory)
}

// GridConfig defines the default tile subdivision.
type GridConfig struct {
	Rows int `yaml:"rows"` // 0 = unset (1 at conversion time)
	Cols int `yaml:"cols"`
}

// CalibrationConfig overrides the embedded decode-function strings.
type CalibrationConfig struct {
	Description string `yaml:"description"` // default "SRTM-HGT"
	Unit        string `yaml:"unit"`        // default "m"
}

// Validate checks preset values against their field limits.
func (c *Config) Validate() error {
	if c.Grid.Rows < 0 || c.Grid.Cols < 0 {
		return fmt.Errorf("%w: got %d rows x %d cols", ErrInvalidGrid, c.Grid.Rows, c.Grid.Cols)
	}
	if len(c.Calibration.Description) > MaxCalibrationLength {
		return fmt.Errorf("%w: calibration.description (%d chars, max %d)", ErrFieldTooLong, len(c.Calibration.Description), MaxCalibrationLength)
	}
	if len(c.Calibration.Unit) > MaxCalibrationLength {
		return fmt.Errorf("%w: calibration.unit (%d chars, max %d)", ErrFieldTooLong, len(c.Calibration.Unit), MaxCalibrationLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/hgt2png/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "hgt2png", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
