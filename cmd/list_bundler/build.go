package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/list-bundler/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full bundle build end-to-end",
	Long: `Acquires the list source (local clone by default), loads every list file,
builds the flat and grouped indexes, and writes the two UMD data modules,
the demo page and a build report to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath string
	buildRepoURL    string
	buildCacheDir   string
	buildSourceDir  string
	buildOutDir     string
	buildRemote     bool
	buildVerbose    bool
)

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	buildCmd.Flags().StringVar(&buildRepoURL, "repo-url", "", "List repository to clone")
	buildCmd.Flags().StringVar(&buildCacheDir, "cache-dir", "", "Directory holding the clone and the HTTP fetch cache")
	buildCmd.Flags().StringVarP(&buildSourceDir, "source-dir", "s", "", "Pre-existing list tree; skips cloning entirely")
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "Output directory for bundles, demo page and report")
	buildCmd.Flags().BoolVar(&buildRemote, "remote", false, "Enumerate lists through the GitHub contents API instead of cloning")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed build information")

	rootCmd.AddCommand(buildCmd)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, buildConfigPath, flagOverrides{
		repoURL:   buildRepoURL,
		cacheDir:  buildCacheDir,
		sourceDir: buildSourceDir,
		outDir:    buildOutDir,
		remote:    buildRemote,
		verbose:   buildVerbose,
	})
	if err != nil {
		return err
	}

	res, err := pipeline.RunBuild(cmd.Context(), runOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Built %d lists in %d groups (%d items, %d skipped)\n",
		res.Report.Lists, res.Report.Groups, res.Report.Items, len(res.Report.Skipped))
	fmt.Fprintf(os.Stdout, "Flat index:    %s\n", res.Artifacts.IndexPath)
	fmt.Fprintf(os.Stdout, "Grouped index: %s\n", res.Artifacts.GroupedPath)
	fmt.Fprintf(os.Stdout, "Demo page:     %s\n", res.Artifacts.DemoPath)

	return nil
}
