// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Record string `json:"record,omitempty"` // Path to the CV record JSON file
	OutDir string `json:"out_dir,omitempty"` // Directory for generated PDFs
	Photo  string `json:"photo,omitempty"`  // Path to a photo embedded into the header

	// Rendering
	Style      string `json:"style,omitempty"`       // Template style identifier
	Engine     string `json:"engine,omitempty"`      // Renderer engine: chromium or native
	ChromePath string `json:"chrome_path,omitempty"` // Explicit Chrome/Chromium binary path

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Render timeout per document
	Concurrency    int  `json:"concurrency,omitempty"`     // Parallel renders in batch mode
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.Engine != "" && c.Engine != "chromium" && c.Engine != "native" {
		return fmt.Errorf("config error: 'engine' must be \"chromium\" or \"native\", got %q", c.Engine)
	}

	// Validate file paths exist (if specified)
	if c.Record != "" {
		if _, err := os.Stat(c.Record); os.IsNotExist(err) {
			return fmt.Errorf("config error: record file not found: %s", c.Record)
		}
	}
	if c.Photo != "" {
		if _, err := os.Stat(c.Photo); os.IsNotExist(err) {
			return fmt.Errorf("config error: photo file not found: %s", c.Photo)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Record == "" {
		result.Record = defaults.Record
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Photo == "" {
		result.Photo = defaults.Photo
	}
	if result.Style == "" {
		result.Style = defaults.Style
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
