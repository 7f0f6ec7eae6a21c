// Package cmd provides CLI commands for the cookbook app.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/config"
	"github.com/avasse/household-suite/pkg/cookbook"
	"github.com/avasse/household-suite/pkg/kvstore"
	"github.com/avasse/household-suite/pkg/pathutil"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cookbook",
	Short: "Manage a personal recipe collection",
	Long: `cookbook is a CLI tool for a personal recipe collection.

It supports:
- Listing, searching, and sorting recipes
- Scaling ingredient quantities to a serving count
- Importing and exporting recipes as shareable text
- JSON backups of the whole collection
- An interactive cooking mode with checkable steps

Example:
  cookbook list --tag korean --sort time-asc
  cookbook show default-buldak --servings 4
  cookbook import recipe.txt`,
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
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(cookCmd)
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
// the recipe collection. The caller must Close the returned backend.
func openStore() (*cookbook.Store, *config.Config, kvstore.Store) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")

	paths := pathutil.New(pathutil.Config{DataDir: cfg.DataDir, DBPath: cfg.DBPath})
	exitOnError(paths.EnsureParentDir(paths.GetDBPath()), "failed to create data directory")

	kv, err := kvstore.Open(paths.GetDBPath())
	exitOnError(err, "failed to open database")

	store := cookbook.NewStore(kv, slog.Default())
	if err := store.Load(); err != nil {
		kv.Close()
		exitOnError(err, "failed to load recipes")
	}
	return store, cfg, kv
}
