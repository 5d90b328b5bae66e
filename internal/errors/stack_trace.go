package errors

import (
	"fmt"
	"strings"

	"github.com/poiboi-lang/poiboic/internal/lexer"
)

// StackFrame names one position relevant to a diagnostic. It is used for
// diagnostics that must cite more than one location, such as a duplicate
// function definition (spec §4.4: "citing both positions").
type StackFrame struct {
	Label string
	Pos   lexer.Position
}

func (sf StackFrame) String() string {
	return fmt.Sprintf("%s at %s:%d", sf.Label, sf.Pos.File, sf.Pos.Line)
}

// StackTrace is an ordered sequence of frames, oldest first.
type StackTrace []StackFrame

func (st StackTrace) String() string {
	parts := make([]string, len(st))
	for i, f := range st {
		parts[i] = f.String()
	}
	return strings.Join(parts, "\n")
}

// NewDuplicateDefinitionTrace builds the two-frame trace used by function
// extraction's duplicate-name error.
func NewDuplicateDefinitionTrace(name string, first, second lexer.Position) StackTrace {
	return StackTrace{
		{Label: fmt.Sprintf("%s previously defined", name), Pos: first},
		{Label: fmt.Sprintf("%s redefined", name), Pos: second},
	}
}
