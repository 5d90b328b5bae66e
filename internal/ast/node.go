// Package ast implements the CST node model spec §9 prescribes in place of
// the original's heterogeneous inheritance hierarchy: a single tagged sum
// type instead of a GrammarPiece base class with virtual Clone/
// GetDescendents. Terminal nodes carry the matched lexeme; non-terminal
// nodes carry an ordered list of children. Cloning is structural, not
// virtual.
package ast

import "github.com/poiboi-lang/poiboic/internal/lexer"

// Label identifies a CST node's grammar symbol. The first block mirrors
// lexer.TokenType (terminal labels); the second block lists the
// non-terminals of spec §3/§4.3.
type Label int

const (
	// Terminals (mirror lexer.TokenType; kept distinct so ast does not
	// need to import lexer's iota values directly into its own space).
	LBrace Label = iota
	RBrace
	Semi
	LParen
	RParen
	Comma
	LBrack
	RBrack
	Assign
	KwGlobal
	KwWhile
	KwIf
	KwElse
	KwElif
	KwReturn
	KwBreak
	KwLocal
	TermQuotedString
	TermVariable
	TermBuiltin
	TermFunctionName
	TermEOF

	terminalEnd // sentinel: labels below this are non-terminals

	Module
	FunctionDefinition
	VariablesList
	VariablesListExpansion
	CodeBlock
	StatementList
	Statement
	VariableAssignment
	FunctionCall
	ConditionalEvaluation
	ElseStatement
	RValue
	RValueList
	RValueListExpansion
)

// IsTerminal reports whether label identifies a token-level leaf.
func (l Label) IsTerminal() bool { return l < terminalEnd }

var labelNames = [...]string{
	LBrace: "{", RBrace: "}", Semi: ";", LParen: "(", RParen: ")",
	Comma: ",", LBrack: "[", RBrack: "]", Assign: "=",
	KwGlobal: "GLOBAL", KwWhile: "WHILE", KwIf: "IF", KwElse: "ELSE",
	KwElif: "ELIF", KwReturn: "RETURN", KwBreak: "BREAK", KwLocal: "LOCAL",
	TermQuotedString: "QuotedString", TermVariable: "Variable",
	TermBuiltin: "Builtin", TermFunctionName: "FunctionName", TermEOF: "EndOfFile",

	Module: "Module", FunctionDefinition: "FunctionDefinition",
	VariablesList: "VariablesList", VariablesListExpansion: "VariablesListExpansion",
	CodeBlock: "CodeBlock", StatementList: "StatementList", Statement: "Statement",
	VariableAssignment: "VariableAssignment", FunctionCall: "FunctionCall",
	ConditionalEvaluation: "ConditionalEvaluation", ElseStatement: "ElseStatement",
	RValue: "RValue", RValueList: "RValueList", RValueListExpansion: "RValueListExpansion",
}

func (l Label) String() string {
	if int(l) >= 0 && int(l) < len(labelNames) && labelNames[l] != "" {
		return labelNames[l]
	}
	return "?"
}

// TerminalLabelForTokenType maps a lexer.TokenType to its ast.Label.
func TerminalLabelForTokenType(t lexer.TokenType) Label {
	switch t {
	case lexer.LBRACE:
		return LBrace
	case lexer.RBRACE:
		return RBrace
	case lexer.SEMI:
		return Semi
	case lexer.LPAREN:
		return LParen
	case lexer.RPAREN:
		return RParen
	case lexer.COMMA:
		return Comma
	case lexer.LBRACK:
		return LBrack
	case lexer.RBRACK:
		return RBrack
	case lexer.ASSIGN:
		return Assign
	case lexer.GLOBAL:
		return KwGlobal
	case lexer.WHILE:
		return KwWhile
	case lexer.IF:
		return KwIf
	case lexer.ELSE:
		return KwElse
	case lexer.ELIF:
		return KwElif
	case lexer.RETURN:
		return KwReturn
	case lexer.BREAK:
		return KwBreak
	case lexer.LOCAL:
		return KwLocal
	case lexer.QUOTED_STRING:
		return TermQuotedString
	case lexer.VARIABLE:
		return TermVariable
	case lexer.BUILTIN:
		return TermBuiltin
	case lexer.FUNCTION_NAME:
		return TermFunctionName
	case lexer.EOF:
		return TermEOF
	default:
		return -1
	}
}

// Node is a CST node: `Terminal(TokenKind, String, Pos) |
// NonTerminal(Label, []Node, Pos)` collapsed into one struct, tagged by
// Label.IsTerminal(). Terminal nodes have no Children; non-terminal nodes
// have no Content.
type Node struct {
	Label    Label
	Content  string
	Children []*Node
	Pos      lexer.Position
}

// NewTerminal builds a terminal node from a scanned token.
func NewTerminal(label Label, content string, pos lexer.Position) *Node {
	return &Node{Label: label, Content: content, Pos: pos}
}

// NewNonTerminal builds an empty non-terminal node; its children are
// attached later by the parser once the chosen alternative is known.
func NewNonTerminal(label Label, pos lexer.Position) *Node {
	return &Node{Label: label, Pos: pos}
}

// Clone performs a structural (non-virtual) deep copy.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{Label: n.Label, Content: n.Content, Pos: n.Pos}
	if len(n.Children) > 0 {
		clone.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return clone
}
