package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/list-bundler/internal/pipeline"
	"github.com/jonathan/list-bundler/internal/report"
	"github.com/jonathan/list-bundler/internal/sampling"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a random sample of every list",
	Long:  "Builds the index in memory and prints each group and list with a fresh random subset of its items, the same rendering the demo page performs in the browser.",
	RunE:  runSample,
}

var (
	sampleConfigPath string
	sampleSourceDir  string
	sampleCacheDir   string
	sampleSize       int
)

func init() {
	sampleCmd.Flags().StringVar(&sampleConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	sampleCmd.Flags().StringVarP(&sampleSourceDir, "source-dir", "s", "", "Pre-existing list tree; skips cloning entirely")
	sampleCmd.Flags().StringVar(&sampleCacheDir, "cache-dir", "", "Directory holding the clone")
	sampleCmd.Flags().IntVarP(&sampleSize, "size", "k", sampling.DefaultSize, "Items per list (1-20)")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, sampleConfigPath, flagOverrides{
		sourceDir:  sampleSourceDir,
		cacheDir:   sampleCacheDir,
		sampleSize: sampleSize,
	})
	if err != nil {
		return err
	}

	ix, _, err := pipeline.LoadIndex(cmd.Context(), runOptions(cfg))
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	instructions := sampling.Render(ix.Grouped, cfg.SampleSize, rng)
	report.NewPrinter(os.Stdout).PrintSample(instructions)

	return nil
}
