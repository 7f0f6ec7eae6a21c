// Package cmd provides CLI commands for the split-ledger app.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/config"
	"github.com/avasse/household-suite/pkg/kvstore"
	"github.com/avasse/household-suite/pkg/ledger"
	"github.com/avasse/household-suite/pkg/pathutil"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "split-ledger",
	Short: "Track shared household expenses",
	Long: `split-ledger is a CLI tool for tracking expenses shared by a
small household.

It supports:
- A roster of people and their expense entries
- Per-person totals over all/today/week/month/ytd windows
- A who-owes-whom hint between the highest and lowest contributor
- JSON backups of the whole ledger

Example:
  split-ledger person add Ann
  split-ledger add --person Ann --amount 12.50 --note groceries
  split-ledger summary --period month`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(personCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// openStore loads configuration, opens the backing database, and loads
// the ledger. The caller must Close the returned backend.
func openStore() (*ledger.Store, *config.Config, kvstore.Store) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")

	paths := pathutil.New(pathutil.Config{DataDir: cfg.DataDir, DBPath: cfg.DBPath})
	exitOnError(paths.EnsureParentDir(paths.GetDBPath()), "failed to create data directory")

	kv, err := kvstore.Open(paths.GetDBPath())
	exitOnError(err, "failed to open database")

	store := ledger.NewStore(kv, slog.Default())
	if err := store.Load(); err != nil {
		kv.Close()
		exitOnError(err, "failed to load ledger")
	}
	return store, cfg, kv
}

// parsePeriod validates a --period flag value.
func parsePeriod(value string) ledger.Period {
	p := ledger.Period(value)
	if !p.Valid() {
		exitOnError(fmt.Errorf("unknown period %q (want all, today, week, month, or ytd)", value), "invalid flag")
	}
	return p
}
