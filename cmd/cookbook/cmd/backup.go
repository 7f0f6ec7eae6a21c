package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasse/household-suite/pkg/pathutil"
)

var backupOut string

// backupCmd represents the backup command.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write the full collection to a JSON backup file",
	Long: `Write every recipe to a JSON backup file. The default
location is a dated file in the export directory.

Example:
  cookbook backup
  cookbook backup --out recipes.json`,
	Run: runBackup,
}

// restoreCmd represents the restore command.
var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Import recipes from a JSON backup file",
	Long: `Append the recipes from a JSON backup file to the current
collection. A malformed file changes nothing.

Example:
  cookbook restore recipes.json`,
	Args: cobra.ExactArgs(1),
	Run:  runRestore,
}

func init() {
	backupCmd.Flags().StringVar(&backupOut, "out", "", "Write to this file instead of the export directory")
}

func runBackup(cmd *cobra.Command, args []string) {
	store, cfg, kv := openStore()
	defer kv.Close()

	raw, err := store.ExportBackup()
	exitOnError(err, "failed to serialize recipes")

	out := backupOut
	if out == "" {
		paths := pathutil.New(pathutil.Config{DataDir: cfg.DataDir, DBPath: cfg.DBPath})
		exitOnError(paths.EnsureDir(paths.GetExportDir()), "failed to create export directory")
		out = paths.GetExportPath(fmt.Sprintf("recipes-%s.json", time.Now().Format("2006-01-02")))
	}

	exitOnError(os.WriteFile(out, raw, 0644), "failed to write backup file")
	fmt.Printf("Backed up %d recipes to %s\n", len(store.All()), out)
}

func runRestore(cmd *cobra.Command, args []string) {
	raw, err := os.ReadFile(args[0])
	exitOnError(err, "failed to read backup file")

	store, _, kv := openStore()
	defer kv.Close()

	n, err := store.ImportBackup(raw)
	exitOnError(err, "failed to import backup")
	fmt.Printf("Imported %d recipes\n", n)
}
