// Package main is the entry point for the grocer CLI application.
package main

import (
	"grocer/cli/cmd"
)

// main is the entry point for the grocer CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
