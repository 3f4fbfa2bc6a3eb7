// Package main provides the osr CLI tool for inspecting, verifying and
// rewriting osu! replay files.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
