// Package main is the entry point for the tix CLI tool.
package main

import (
	"os"

	"github.com/natemoore/tix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
