package errors

import (
	"strings"
	"testing"

	"github.com/poiboi-lang/poiboic/internal/lexer"
)

func TestFormatIncludesFileAndLine(t *testing.T) {
	err := NewCompilerError(lexer.Position{File: "a.pb", Line: 3}, "undefined variable y", "", "a.pb")
	got := err.Format(false)
	if !strings.HasPrefix(got, "a.pb:3: undefined variable y") {
		t.Errorf("got %q", got)
	}
}

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	src := "Main() {\nPRINT(y);\n}"
	err := NewCompilerError(lexer.Position{File: "a.pb", Line: 1}, "undefined variable y", src, "a.pb")
	got := err.Format(false)
	if !strings.Contains(got, "PRINT(y);") || !strings.Contains(got, "^") {
		t.Errorf("expected source line and caret, got %q", got)
	}
}

func TestFormatErrorsMultiple(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(lexer.Position{File: "a.pb", Line: 1}, "first", "", "a.pb"),
		NewCompilerError(lexer.Position{File: "a.pb", Line: 2}, "second", "", "a.pb"),
	}
	got := FormatErrors(errs, false)
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("got %q", got)
	}
}

func TestDuplicateDefinitionTrace(t *testing.T) {
	trace := NewDuplicateDefinitionTrace("Foo",
		lexer.Position{File: "a.pb", Line: 1},
		lexer.Position{File: "b.pb", Line: 5})
	got := trace.String()
	if !strings.Contains(got, "previously defined") || !strings.Contains(got, "redefined") {
		t.Errorf("got %q", got)
	}
}
