// Package parser implements the LL(1) predictive parser of spec §4.3: a
// declarative grammar alternatives table (internal/ast.Alternatives) driven
// by a work queue whose head is expanded in place (a chosen alternative's
// children go to the front), rather than a hand-written recursive-descent
// function per non-terminal.
package parser

import (
	"fmt"

	"github.com/poiboi-lang/poiboic/internal/ast"
	"github.com/poiboi-lang/poiboic/internal/lexer"
)

// Error is a parser-local diagnostic, mirroring lexer.Error's pattern:
// cheap to construct mid-scan, converted to *errors.CompilerError by
// calling code that has source text available for display.
type Error struct {
	Pos     lexer.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Pos.File, e.Pos.Line, e.Message)
}

// Parser consumes a flat token stream and builds a CST rooted at Module.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New returns a Parser over tokens, which must end with an EOF token (as
// produced by lexer.Scan).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)-1
}

// Parse runs the queue-based expansion algorithm and returns the completed
// Module node, or the first error encountered.
func (p *Parser) Parse() (*ast.Node, error) {
	tok := p.current()
	root := ast.NewNonTerminal(ast.Module, tok.Pos)
	queue := []*ast.Node{root}

	for len(queue) > 0 {
		piece := queue[0]
		queue = queue[1:]
		tok = p.current()
		tokLabel := ast.TerminalLabelForTokenType(tok.Type)

		if piece.Label.IsTerminal() {
			if piece.Label != tokLabel {
				return nil, &Error{Pos: tok.Pos, Message: fmt.Sprintf(
					"expected %s, got %s %q", piece.Label, tokLabel, tok.Content)}
			}
			piece.Content = tok.Content
			piece.Pos = tok.Pos
			p.advance()
			continue
		}

		alts := ast.Alternatives(piece.Label)
		chosen, ok := chooseAlternative(alts, tokLabel)
		if !ok {
			return nil, &Error{Pos: tok.Pos, Message: fmt.Sprintf(
				"no alternative of %s accepts %s %q", piece.Label, tokLabel, tok.Content)}
		}
		if len(chosen) == 0 {
			continue
		}

		children := make([]*ast.Node, len(chosen))
		for i, childLabel := range chosen {
			if childLabel.IsTerminal() {
				children[i] = ast.NewTerminal(childLabel, "", tok.Pos)
			} else {
				children[i] = ast.NewNonTerminal(childLabel, tok.Pos)
			}
		}
		piece.Children = children
		piece.Pos = tok.Pos

		queue = append(append([]*ast.Node{}, children...), queue...)
	}

	if !p.atEnd() {
		tok = p.current()
		return nil, &Error{Pos: tok.Pos, Message: fmt.Sprintf(
			"unconsumed input remains starting at %q", tok.Content)}
	}
	return root, nil
}

// chooseAlternative picks the single non-empty alternative whose first
// symbol accepts tokLabel, falling back to an empty alternative when none
// does. The grammar's LL(1) property guarantees at most one non-empty
// alternative ever accepts.
func chooseAlternative(alts []ast.Alt, tokLabel ast.Label) (ast.Alt, bool) {
	var epsilon ast.Alt
	haveEpsilon := false
	for _, alt := range alts {
		if len(alt) == 0 {
			epsilon = alt
			haveEpsilon = true
			continue
		}
		if firstAccepts(alt[0], tokLabel) {
			return alt, true
		}
	}
	if haveEpsilon {
		return epsilon, true
	}
	return nil, false
}

// firstAccepts reports whether a token of tokLabel can begin a phrase
// starting with label.
func firstAccepts(label ast.Label, tokLabel ast.Label) bool {
	if label.IsTerminal() {
		return label == tokLabel
	}
	for _, alt := range ast.Alternatives(label) {
		if len(alt) == 0 {
			continue
		}
		if firstAccepts(alt[0], tokLabel) {
			return true
		}
	}
	return false
}
