// Example program demonstrating the CLI grid frontend.
//
// This opens a bordered grid window inside your actual terminal. Typed
// characters land in the grid, Enter starts a new line (scrolling into
// history at the bottom), Backspace erases, Ctrl+L clears, and Ctrl+C or
// Ctrl+Q quits. Resizing your terminal resizes the grid.
//
// Usage:
//   go run main.go
package main

import (
	"fmt"
	"os"

	"github.com/phroun/termgrid/cli"
)

func main() {
	opts := cli.Options{
		BorderStyle:    cli.BorderRounded,
		Title:          "termgrid",
		ScrollbackSize: 1000,
		AutoSize:       true,
		ShowStatusBar:  true,
	}

	t, err := cli.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := t.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	t.WriteString("Welcome to the termgrid CLI demo.\n")
	t.WriteString("Type to fill the grid; Ctrl+C quits.\n\n")

	t.Wait()
	t.Stop()
}
