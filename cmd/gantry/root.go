package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgDir  string
	env     string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gantry",
	Short: "Gantry - operational chassis for CLI applications",
	Long: `Gantry is an application chassis for long-running and batch CLI tools.

It provides the operational plumbing a production tool needs on day one:
  - Hierarchical YAML configuration with per-environment overlays
  - Structured logging with size and daily rotation
  - Scheduled log retention with age-based pruning
  - Prometheus metrics and a SQLite-backed job ledger
  - Telegram notifications for lifecycle events`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgDir, "config-dir", "c", "config", "configuration directory")
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "environment overlay to apply")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "force debug logging")
}
