// Package errors formats hierarchy-resolution diagnostics with source
// context: line/column information and a caret pointing at the offending
// token. It is the presentation layer a CLI or IDE sits on top of the
// diagnostic.Reporter sink.
package errors

import (
	"fmt"
	"strings"

	"github.com/lattice-lang/latticec/internal/diagnostic"
)

// FormattedError pairs one collected diagnostic with the source text it
// should be rendered against.
type FormattedError struct {
	Message diagnostic.Message
	Source  string
	File    string
}

// NewFormattedError wraps a diagnostic message for display.
func NewFormattedError(msg diagnostic.Message, source, file string) *FormattedError {
	return &FormattedError{Message: msg, Source: source, File: file}
}

// Error implements the error interface.
func (e *FormattedError) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic with a source line and caret. If color is
// true, ANSI escapes highlight the caret and message.
func (e *FormattedError) Format(color bool) string {
	var sb strings.Builder

	pos := e.Message.Anchor
	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, pos.Line, pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", pos.Line, pos.Column)
	}

	if line := e.sourceLine(pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message.String())
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// sourceLine extracts a specific 1-indexed line from the source text.
func (e *FormattedError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll formats a batch of diagnostics produced against a single source
// file, the way a CLI prints every error from one `resolve` invocation.
func FormatAll(messages []diagnostic.Message, source, file string, color bool) string {
	if len(messages) == 0 {
		return ""
	}
	if len(messages) == 1 {
		return NewFormattedError(messages[0], source, file).Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Resolution failed with %d error(s):\n\n", len(messages))
	for i, msg := range messages {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(messages))
		sb.WriteString(NewFormattedError(msg, source, file).Format(color))
		if i < len(messages)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
