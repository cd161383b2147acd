package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/list-bundler/internal/pipeline"
	"github.com/jonathan/list-bundler/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo page and a JSON sampling API",
	Long: `Starts an HTTP server over the build output directory. The demo page is
served statically; /api/sample?k=N returns a fresh JSON sample and
/api/lookup/{name} resolves an item name through the flat index.

Run "list_bundler build" first so the output directory exists.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveSourceDir  string
	serveCacheDir   string
	serveBuildDir   string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVarP(&serveSourceDir, "source-dir", "s", "", "Pre-existing list tree; skips cloning entirely")
	serveCmd.Flags().StringVar(&serveCacheDir, "cache-dir", "", "Directory holding the clone")
	serveCmd.Flags().StringVarP(&serveBuildDir, "out", "o", "", "Build output directory to serve")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, serveConfigPath, flagOverrides{
		sourceDir: serveSourceDir,
		cacheDir:  serveCacheDir,
		outDir:    serveBuildDir,
	})
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
		return fmt.Errorf("build output directory not found: %s (run \"list_bundler build\" first)", cfg.OutputDir)
	}

	ix, _, err := pipeline.LoadIndex(cmd.Context(), runOptions(cfg))
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     servePort,
		BuildDir: cfg.OutputDir,
	}, ix)

	return srv.Start()
}
