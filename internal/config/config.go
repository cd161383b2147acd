// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/list-bundler/internal/source"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to defaults and
// CLI flags override everything.
type Config struct {
	// Source
	RepoURL   string `json:"repo_url,omitempty" validate:"omitempty,url"` // list repository to clone
	CacheDir  string `json:"cache_dir,omitempty"`                         // where the clone and fetch cache live
	SourceDir string `json:"source_dir,omitempty"`                        // pre-existing list tree; skips cloning entirely
	Remote    bool   `json:"remote,omitempty"`                            // enumerate via the GitHub contents API instead of cloning

	// Output
	OutputDir string `json:"output_dir,omitempty"` // directory receiving js/ bundles, demo page and report

	// Behavior
	SampleSize int  `json:"sample_size,omitempty" validate:"omitempty,min=1,max=20"` // demo/sample default items per list
	Verbose    bool `json:"verbose,omitempty"`                                       // print detailed build information
}

// DefaultConfig returns the built-in defaults, matching the upstream list
// repository layout.
func DefaultConfig() Config {
	return Config{
		RepoURL:    source.DefaultRepoURL,
		CacheDir:   filepath.Join(".cache", "prompt-lists"),
		OutputDir:  "build",
		SampleSize: 3,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values: struct tags
// first (URL shape, sample size range), then filesystem checks that tags
// cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.SourceDir != "" && c.Remote {
		return fmt.Errorf("config error: 'source_dir' and 'remote' are mutually exclusive")
	}

	if c.SourceDir != "" {
		if _, err := os.Stat(c.SourceDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: source directory not found: %s", c.SourceDir)
		}
	}

	return nil
}

// ApplyDefaults returns a copy with empty fields filled from defaults.
// Bool fields cannot distinguish unset from false, so they are never
// merged; CLI flags always win for those.
func (c *Config) ApplyDefaults(defaults Config) Config {
	result := *c

	if result.RepoURL == "" {
		result.RepoURL = defaults.RepoURL
	}
	if result.CacheDir == "" {
		result.CacheDir = defaults.CacheDir
	}
	if result.SourceDir == "" {
		result.SourceDir = defaults.SourceDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.SampleSize == 0 {
		result.SampleSize = defaults.SampleSize
	}

	return result
}
