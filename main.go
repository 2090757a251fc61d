// Package main implements a command line tool for scanning and visualizing
// directory structures.
package main

import (
	"os"

	"foldertree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
