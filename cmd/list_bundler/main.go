// Package main provides the entry point for the list bundler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "list_bundler",
	Short: "Build JavaScript data bundles from categorized word lists",
	Long:  "List Bundler obtains a community-maintained repository of categorized YAML word lists, builds lookup indexes from it, and emits two UMD JavaScript data bundles plus a static demo page with a random-sampling renderer.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
