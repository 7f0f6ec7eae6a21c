// Package main is the entry point for the cookbook CLI.
package main

import (
	"os"

	"github.com/avasse/household-suite/cmd/cookbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
