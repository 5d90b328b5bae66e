// Package errors formats PoiBoi compiler diagnostics with source context
// (spec §7: every fallible operation yields success or a single textual
// failure carrying file:line:message).
package errors

import (
	"fmt"
	"strings"

	"github.com/poiboi-lang/poiboic/internal/lexer"
)

// CompilerError is a single compilation failure with position and
// (optionally) the offending source line for a caret-pointing display.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error as "file:line: message" plus the offending
// source line and a caret, when the source text is available. If color is
// true, ANSI codes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	file := e.File
	if file == "" {
		file = e.Pos.File
	}
	sb.WriteString(fmt.Sprintf("%s:%d: ", file, e.Pos.Line))
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		sb.WriteString("\n    ")
		sb.WriteString(line)
		sb.WriteString("\n    ")
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

// sourceLine extracts a 0-based line from the source text.
func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 0 || lineNum >= len(lines) {
		return ""
	}
	return lines[lineNum]
}

// FormatErrors formats multiple compiler errors, one per line group.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
