package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/list-bundler/internal/pipeline"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup NAME...",
	Short: "Resolve item names through the flat index",
	Long:  "Builds the index in memory and resolves each name, case-insensitively, to its list title and category. Exits non-zero if any name is unmapped.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

var (
	lookupConfigPath string
	lookupSourceDir  string
	lookupCacheDir   string
)

func init() {
	lookupCmd.Flags().StringVar(&lookupConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	lookupCmd.Flags().StringVarP(&lookupSourceDir, "source-dir", "s", "", "Pre-existing list tree; skips cloning entirely")
	lookupCmd.Flags().StringVar(&lookupCacheDir, "cache-dir", "", "Directory holding the clone")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, lookupConfigPath, flagOverrides{
		sourceDir: lookupSourceDir,
		cacheDir:  lookupCacheDir,
	})
	if err != nil {
		return err
	}

	ix, _, err := pipeline.LoadIndex(cmd.Context(), runOptions(cfg))
	if err != nil {
		return err
	}

	missing := 0
	for _, name := range args {
		desc, ok := ix.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: not found\n", name)
			missing++
			continue
		}
		fmt.Fprintf(os.Stdout, "%s -> %s (%s)\n", name, desc.Title, desc.Category)
	}

	if missing > 0 {
		return fmt.Errorf("%d of %d names unmapped", missing, len(args))
	}
	return nil
}
