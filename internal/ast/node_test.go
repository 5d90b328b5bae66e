package ast

import (
	"testing"

	"github.com/poiboi-lang/poiboic/internal/lexer"
)

func TestIsTerminal(t *testing.T) {
	if !TermVariable.IsTerminal() {
		t.Error("TermVariable should be terminal")
	}
	if Module.IsTerminal() {
		t.Error("Module should not be terminal")
	}
}

func TestTerminalLabelForTokenType(t *testing.T) {
	tests := []struct {
		tt   lexer.TokenType
		want Label
	}{
		{lexer.VARIABLE, TermVariable},
		{lexer.BUILTIN, TermBuiltin},
		{lexer.FUNCTION_NAME, TermFunctionName},
		{lexer.EOF, TermEOF},
		{lexer.LOCAL, KwLocal},
	}
	for _, tt := range tests {
		if got := TerminalLabelForTokenType(tt.tt); got != tt.want {
			t.Errorf("TerminalLabelForTokenType(%v) = %v, want %v", tt.tt, got, tt.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	child := NewTerminal(TermVariable, "x", lexer.Position{File: "a.pb", Line: 1})
	parent := NewNonTerminal(Statement, lexer.Position{File: "a.pb", Line: 1})
	parent.Children = []*Node{child}

	clone := parent.Clone()
	clone.Children[0].Content = "y"

	if child.Content != "x" {
		t.Errorf("clone mutated original: %q", child.Content)
	}
}

func TestAlternativesCoverAllNonTerminals(t *testing.T) {
	nonTerminals := []Label{
		Module, FunctionDefinition, VariablesList, VariablesListExpansion,
		CodeBlock, StatementList, Statement, VariableAssignment, FunctionCall,
		ConditionalEvaluation, ElseStatement, RValue, RValueList, RValueListExpansion,
	}
	for _, nt := range nonTerminals {
		if alts := Alternatives(nt); len(alts) == 0 {
			t.Errorf("Alternatives(%v) returned none", nt)
		}
	}
}

func TestConditionalEvaluationIsThreeChildFormOnly(t *testing.T) {
	alts := Alternatives(ConditionalEvaluation)
	if len(alts) != 1 || len(alts[0]) != 3 {
		t.Fatalf("ConditionalEvaluation must have exactly one three-child alternative, got %+v", alts)
	}
	want := Alt{LBrack, RValue, RBrack}
	for i, l := range want {
		if alts[0][i] != l {
			t.Errorf("child %d: got %v, want %v", i, alts[0][i], l)
		}
	}
}

func TestVariableAssignmentHasNoLocalAlternative(t *testing.T) {
	for _, alt := range Alternatives(VariableAssignment) {
		for _, l := range alt {
			if l == KwLocal {
				t.Error("VariableAssignment must not reference KwLocal; LOCAL is reserved, never produced")
			}
		}
	}
}
