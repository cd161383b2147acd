package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/list-bundler/internal/source"
)

var syncSourceCmd = &cobra.Command{
	Use:   "sync-source",
	Short: "Clone or refresh the local list repository cache",
	Long:  "Clones the list repository into the cache directory if it is missing, or pulls the latest upstream state if it already exists. The build command clones automatically; this exists to refresh an existing cache.",
	RunE:  runSyncSource,
}

var (
	syncConfigPath string
	syncRepoURL    string
	syncCacheDir   string
)

func init() {
	syncSourceCmd.Flags().StringVar(&syncConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	syncSourceCmd.Flags().StringVar(&syncRepoURL, "repo-url", "", "List repository to clone")
	syncSourceCmd.Flags().StringVar(&syncCacheDir, "cache-dir", "", "Directory holding the clone")

	rootCmd.AddCommand(syncSourceCmd)
}

func runSyncSource(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, syncConfigPath, flagOverrides{
		repoURL:  syncRepoURL,
		cacheDir: syncCacheDir,
	})
	if err != nil {
		return err
	}

	syncer := source.NewSyncer(cfg.RepoURL, cfg.CacheDir)
	if err := syncer.Refresh(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Source cache up to date: %s\n", cfg.CacheDir)
	return nil
}
