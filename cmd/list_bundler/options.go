package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/list-bundler/internal/config"
	"github.com/jonathan/list-bundler/internal/pipeline"
)

// flagOverrides carries the flag values a command wants applied on top of
// its config file. Only flags the user explicitly set take effect.
type flagOverrides struct {
	repoURL    string
	cacheDir   string
	sourceDir  string
	outDir     string
	remote     bool
	verbose    bool
	sampleSize int
}

// resolveConfig merges, in priority order: explicitly set CLI flags,
// config file values, built-in defaults. The result is validated.
func resolveConfig(cmd *cobra.Command, configPath string, o flagOverrides) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("repo-url") {
		cfg.RepoURL = o.repoURL
	}
	if cmd.Flags().Changed("cache-dir") {
		cfg.CacheDir = o.cacheDir
	}
	if cmd.Flags().Changed("source-dir") {
		cfg.SourceDir = o.sourceDir
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = o.outDir
	}
	if cmd.Flags().Changed("remote") {
		cfg.Remote = o.remote
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if cmd.Flags().Changed("size") {
		cfg.SampleSize = o.sampleSize
	}

	cfg = cfg.ApplyDefaults(config.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runOptions translates a resolved config into pipeline options.
func runOptions(cfg config.Config) pipeline.RunOptions {
	return pipeline.RunOptions{
		RepoURL:   cfg.RepoURL,
		CacheDir:  cfg.CacheDir,
		SourceDir: cfg.SourceDir,
		OutDir:    cfg.OutputDir,
		Remote:    cfg.Remote,
		Verbose:   cfg.Verbose,
	}
}
