// Package main is the entry point for the talent-quote CLI.
package main

import (
	"os"

	"talent-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
