package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/pathutil"
)

var (
	exportOut string
	importYes bool
	clearYes  bool
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the ledger to a JSON backup file",
	Long: `Write every entry and the roster to a JSON backup file. The
default location is a dated file in the export directory.

Example:
  split-ledger export
  split-ledger export --out ledger.json`,
	Run: runExport,
}

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the ledger with a JSON backup file",
	Long: `Replace the whole ledger, entries and roster both, with the
contents of a backup file. A malformed file changes nothing. This is
destructive, so it asks for --yes.

Example:
  split-ledger import ledger.json --yes`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

// clearCmd represents the clear command.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries, keeping the roster",
	Run: func(cmd *cobra.Command, args []string) {
		if !clearYes {
			exitOnError(fmt.Errorf("pass --yes to confirm"), "refusing to clear all entries")
		}
		store, _, kv := openStore()
		defer kv.Close()

		exitOnError(store.Clear(), "failed to clear entries")
		fmt.Println("Cleared all entries.")
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to this file instead of the export directory")
	importCmd.Flags().BoolVar(&importYes, "yes", false, "Confirm replacing the current ledger")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deleting all entries")
}

func runExport(cmd *cobra.Command, args []string) {
	store, cfg, kv := openStore()
	defer kv.Close()

	raw, err := store.ExportBackup()
	exitOnError(err, "failed to serialize ledger")

	out := exportOut
	if out == "" {
		paths := pathutil.New(pathutil.Config{DataDir: cfg.DataDir, DBPath: cfg.DBPath})
		exitOnError(paths.EnsureDir(paths.GetExportDir()), "failed to create export directory")
		out = paths.GetExportPath(fmt.Sprintf("ledger-%s.json", time.Now().Format("2006-01-02")))
	}

	exitOnError(os.WriteFile(out, raw, 0644), "failed to write backup file")
	fmt.Printf("Exported %d entries to %s\n", len(store.Entries()), out)
}

func runImport(cmd *cobra.Command, args []string) {
	if !importYes {
		exitOnError(fmt.Errorf("pass --yes to confirm"), "refusing to replace the ledger")
	}

	raw, err := os.ReadFile(args[0])
	exitOnError(err, "failed to read backup file")

	store, _, kv := openStore()
	defer kv.Close()

	exitOnError(store.ImportBackup(raw), "failed to import backup")
	fmt.Printf("Imported %d entries, %d people\n", len(store.Entries()), len(store.People()))
}
