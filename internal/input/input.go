// Package input resolves command-line operands into input sources and reads them for Typofix.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// StdinOperand is the operand that names standard input.
const StdinOperand = "-"

// ReadErrorType represents the type of input error.
type ReadErrorType string

const (
	// SourceNotFound indicates the named file does not exist.
	SourceNotFound ReadErrorType = "SOURCE_NOT_FOUND"
	// SourceUnreadable indicates the source could not be opened or read.
	SourceUnreadable ReadErrorType = "SOURCE_UNREADABLE"
	// InvalidEncoding indicates the source is not valid UTF-8.
	InvalidEncoding ReadErrorType = "INVALID_ENCODING"
)

// ReadError represents an input source that could not be consumed.
type ReadError struct {
	Type   ReadErrorType
	Path   string
	Offset int // byte offset of the first invalid sequence, InvalidEncoding only
	Err    error
}

func (e *ReadError) Error() string {
	switch e.Type {
	case SourceNotFound:
		return fmt.Sprintf("input file not found: %s", e.Path)
	case InvalidEncoding:
		return fmt.Sprintf("invalid UTF-8 in %s at byte %d", e.Path, e.Offset)
	default:
		if e.Err != nil {
			return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("failed to read %s", e.Path)
	}
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Source is one input named on the command line.
type Source struct {
	Path string
}

// IsStdin reports whether the source is standard input.
func (s Source) IsStdin() bool {
	return s.Path == StdinOperand
}

// Name returns the name used for the source in diagnostics.
func (s Source) Name() string {
	if s.IsStdin() {
		return "<stdin>"
	}
	return s.Path
}

// Sources maps operands to sources in order. No operands means standard input.
// Operands are never treated as flags.
func Sources(args []string) []Source {
	if len(args) == 0 {
		return []Source{{Path: StdinOperand}}
	}
	sources := make([]Source, len(args))
	for i, arg := range args {
		sources[i] = Source{Path: arg}
	}
	return sources
}

// ReadAll reads every source to the end and concatenates the contents in
// order. Standard input is drained the first time it is named; later
// occurrences contribute nothing. Reading stops at the first failing source.
func ReadAll(sources []Source, stdin io.Reader) (string, error) {
	var sb strings.Builder
	stdinDone := false

	for _, src := range sources {
		var data []byte
		var err error

		if src.IsStdin() {
			if stdinDone {
				continue
			}
			stdinDone = true
			data, err = readStdin(stdin)
		} else {
			data, err = os.ReadFile(src.Path)
		}
		if err != nil {
			return "", classify(src, err)
		}

		if offset := invalidOffset(data); offset >= 0 {
			return "", &ReadError{
				Type:   InvalidEncoding,
				Path:   src.Name(),
				Offset: offset,
			}
		}
		sb.Write(data)
	}

	return sb.String(), nil
}

func readStdin(stdin io.Reader) ([]byte, error) {
	if stdin == nil {
		return nil, os.ErrClosed
	}
	return io.ReadAll(stdin)
}

func classify(src Source, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &ReadError{
			Type: SourceNotFound,
			Path: src.Name(),
			Err:  err,
		}
	}
	return &ReadError{
		Type: SourceUnreadable,
		Path: src.Name(),
		Err:  err,
	}
}

// invalidOffset returns the offset of the first invalid UTF-8 sequence, or -1.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
