// errors.go - BareScript error types
//
// ParseError carries the static error envelope (message, offending line,
// column, line number) and renders a human-readable report with the offending
// line windowed to ~120 characters and a caret marking the column.
// RuntimeError covers the typed execution failures: undefined function,
// unknown jump label, exceeded statement budget, and getGlobal/setGlobal
// misuse. Argument errors from the pkg/runtime builtin library are plain
// errors, not RuntimeError values.
package script

import (
	"fmt"
	"strings"
)

// maxLineLength is the width of the displayed source window in a rendered
// parse error. Longer lines are truncated around the error column with
// ellipses on either side.
const maxLineLength = 120

// ParseError is a static syntax error with source location metadata
type ParseError struct {
	Message      string
	Line         string
	ColumnNumber int
	LineNumber   int
}

func (e *ParseError) Error() string {
	line := e.Line
	column := e.ColumnNumber

	// Window long lines around the error column
	if len(line) > maxLineLength {
		const ellipsis = "..."
		window := maxLineLength - 2*len(ellipsis)
		start := column - 1 - window/2
		if start < 0 {
			start = 0
		}
		if start+window > len(line) {
			start = len(line) - window
		}
		prefix, suffix := "", ""
		if start > 0 {
			prefix = ellipsis
		}
		if start+window < len(line) {
			suffix = ellipsis
		}
		line = prefix + line[start:start+window] + suffix
		column = column - start + len(prefix)
	}
	if column < 1 {
		column = 1
	}
	if column > len(line)+1 {
		column = len(line) + 1
	}

	header := e.Message
	if e.LineNumber > 0 {
		header = fmt.Sprintf("%s, line number %d", e.Message, e.LineNumber)
	}
	return fmt.Sprintf("%s:\n%s\n%s^", header, line, strings.Repeat(" ", column-1))
}

// RuntimeError is a typed execution failure. It aborts Execute; the caller
// keeps the partial globals environment.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func newRuntimeError(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}
