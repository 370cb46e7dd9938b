// Package config carries the runtime configuration for the fingerspell
// tools: where the mapper CSV and clip files live and how output is
// shaped. Values come from an optional YAML file, overridden by
// FINGERSPELL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all fingerspell configuration.
type Config struct {
	// MapperCSV is the two-column media-id,sign mapping file shared by the
	// clip catalog and the numeral decomposer.
	MapperCSV string `yaml:"mapper_csv" env:"FINGERSPELL_MAPPER_CSV"`

	// ClipsDir holds the per-sign video clips.
	ClipsDir string `yaml:"clips_dir" env:"FINGERSPELL_CLIPS_DIR"`

	// ClipPrefix and ClipExt shape clip filenames derived from media ids.
	ClipPrefix string `yaml:"clip_prefix" env:"FINGERSPELL_CLIP_PREFIX"`
	ClipExt    string `yaml:"clip_ext" env:"FINGERSPELL_CLIP_EXT"`

	// BaseURL prefixes clip URLs emitted in playlists.
	BaseURL string `yaml:"base_url" env:"FINGERSPELL_BASE_URL"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"FINGERSPELL_LOG_LEVEL"`
}

// Default returns the configuration matching the repository layout.
func Default() Config {
	return Config{
		MapperCSV:  "fingerspelling_mapper.csv",
		ClipsDir:   "compressed_letters",
		ClipPrefix: "compressed_",
		ClipExt:    ".mp4",
		BaseURL:    "/videos/",
		LogLevel:   "info",
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// at path (skipped when path is empty or absent), then environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env
		case err != nil:
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}
