package codegen

import (
	"fmt"

	"github.com/poiboi-lang/poiboic/internal/lexer"
)

// Error is a code-generation diagnostic: undefined variable, undefined
// function, unknown builtin, arity mismatch, or BREAK outside a loop.
type Error struct {
	Pos     lexer.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Pos.File, e.Pos.Line, e.Message)
}

func errf(pos lexer.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
