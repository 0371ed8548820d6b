// Package output writes transformed text and diagnostics for Typofix.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// DiagnosticPrefix starts every line written by Error.
const DiagnosticPrefix = "typofix: "

// Config holds output configuration.
type Config struct {
	Writer    io.Writer // Text destination (default: os.Stdout)
	ErrWriter io.Writer // Diagnostic destination (default: os.Stderr)
	IsTTY     bool      // Whether Writer is a terminal
}

// Output writes the transformed text and reports failures.
type Output struct {
	config Config
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{
		config: config,
	}
}

// DefaultConfig returns a Config bound to the process streams with TTY detection.
func DefaultConfig() Config {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return Config{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     isTTY,
	}
}

// Text writes s unchanged. On a terminal, non-empty text that does not end
// in a newline gets one so the prompt starts on its own line.
func (o *Output) Text(s string) error {
	if o.config.IsTTY && s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(o.config.Writer, s)
	return err
}

// Error prints a diagnostic line to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	msg := DiagnosticPrefix + fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(o.config.ErrWriter, msg)
}

// IsTTY returns whether the output is a terminal.
func (o *Output) IsTTY() bool {
	return o.config.IsTTY
}
