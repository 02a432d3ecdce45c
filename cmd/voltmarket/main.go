// Package main is the entry point for voltmarket.
package main

import (
	"os"

	"github.com/donaldgifford/voltmarket/cmd/voltmarket/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
