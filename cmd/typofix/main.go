// Package main provides the CLI entry point for Typofix.
package main

import (
	"os"

	"typofix/internal/orchestrator"
	"typofix/internal/output"
)

func main() {
	out := output.New(output.DefaultConfig())

	// Every operand is an input: a file path, or "-" for standard input
	if err := orchestrator.Run(os.Args[1:], os.Stdin, out); err != nil {
		out.Error("%v", err)
		os.Exit(1)
	}
}
