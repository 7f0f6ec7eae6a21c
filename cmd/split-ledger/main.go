// Package main is the entry point for the split-ledger CLI.
package main

import (
	"os"

	"github.com/avasse/household-suite/cmd/split-ledger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
