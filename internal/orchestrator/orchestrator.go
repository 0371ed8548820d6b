// Package orchestrator runs one Typofix invocation.
package orchestrator

import (
	"fmt"
	"io"

	"typofix/internal/input"
	"typofix/internal/normalizer"
	"typofix/internal/output"
)

// Run reads every source named by args, normalizes the combined text once
// and writes it to out. Nothing is written unless the whole input was read.
func Run(args []string, stdin io.Reader, out *output.Output) error {
	text, err := input.ReadAll(input.Sources(args), stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if err := out.Text(normalizer.Normalize(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
