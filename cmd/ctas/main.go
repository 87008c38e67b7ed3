// Package main is the entry point for the ctas server and CLI.
package main

import (
	"os"

	"github.com/coastalops/ctas/cmd/ctas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
