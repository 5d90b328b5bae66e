package codegen

import (
	"fmt"

	"github.com/poiboi-lang/poiboic/internal/ast"
)

// EmitCodeBlock renders a CodeBlock: `'{' StatementList '}'`.
func EmitCodeBlock(node *ast.Node, ctx *Context) (string, error) {
	return emitStatementList(node.Children[1], ctx)
}

func emitStatementList(node *ast.Node, ctx *Context) (string, error) {
	if len(node.Children) == 0 {
		return "", nil
	}
	first, err := EmitStatement(node.Children[0], ctx)
	if err != nil {
		return "", err
	}
	rest, err := emitStatementList(node.Children[1], ctx)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return first, nil
	}
	return first + " " + rest, nil
}

// EmitStatement dispatches on the chosen Statement alternative.
func EmitStatement(node *ast.Node, ctx *Context) (string, error) {
	head := node.Children[0]
	switch head.Label {
	case ast.VariableAssignment:
		return emitVariableAssignment(head, ctx)
	case ast.FunctionCall:
		return EmitFunctionCall(head, ctx, true)
	case ast.KwWhile:
		return emitWhile(node, ctx)
	case ast.KwIf:
		return emitIf(node, ctx)
	case ast.KwReturn:
		rv, err := EmitRValue(node.Children[1], ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("return %s;", rv), nil
	case ast.KwBreak:
		if !ctx.InLoop() {
			return "", errf(node.Pos, "BREAK outside loop")
		}
		return "break;", nil
	default:
		return "", errf(node.Pos, "unexpected Statement alternative %s", head.Label)
	}
}

// emitVariableAssignment implements the three-case rule of spec §4.5:
// GLOBAL always writes through to the globals set; otherwise a name
// already in scope (local or global) is reassigned, and an unseen name
// introduces a new local with a declaration.
func emitVariableAssignment(node *ast.Node, ctx *Context) (string, error) {
	if len(node.Children) == 4 {
		name := node.Children[1].Content
		rv, err := EmitRValue(node.Children[3], ctx)
		if err != nil {
			return "", err
		}
		ctx.DeclareGlobal(name)
		return fmt.Sprintf("%s%s = %s;", globalVarPrefix, name, rv), nil
	}

	name := node.Children[0].Content
	rv, err := EmitRValue(node.Children[2], ctx)
	if err != nil {
		return "", err
	}
	switch {
	case ctx.IsLocal(name):
		return fmt.Sprintf("%s%s = %s;", localVarPrefix, name, rv), nil
	case ctx.IsGlobal(name):
		return fmt.Sprintf("%s%s = %s;", globalVarPrefix, name, rv), nil
	default:
		ctx.DeclareLocal(name)
		return fmt.Sprintf("PBString %s%s = %s;", localVarPrefix, name, rv), nil
	}
}

// EmitConditionalEvaluation renders `'[' RValue ']'`, uniformly using the
// three-child form per spec §9.
func EmitConditionalEvaluation(node *ast.Node, ctx *Context) (string, error) {
	if len(node.Children) != 3 {
		return "", errf(node.Pos, "ConditionalEvaluation must have the three-child '[' RValue ']' form")
	}
	return EmitRValue(node.Children[1], ctx)
}

func emitWhile(node *ast.Node, ctx *Context) (string, error) {
	cond, err := EmitConditionalEvaluation(node.Children[1], ctx)
	if err != nil {
		return "", err
	}
	loopCtx := ctx.EnterLoop()
	body, err := EmitCodeBlock(node.Children[2], loopCtx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("while (%s) { %s }", cond, body), nil
}

func emitIf(node *ast.Node, ctx *Context) (string, error) {
	cond, err := EmitConditionalEvaluation(node.Children[1], ctx)
	if err != nil {
		return "", err
	}
	body, err := EmitCodeBlock(node.Children[2], ctx)
	if err != nil {
		return "", err
	}
	tail, err := emitElseStatement(node.Children[3], ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("if (%s) { %s }%s", cond, body, tail), nil
}

// emitElseStatement renders the ElseStatement chain. Arms share the
// enclosing block's local scope (no context clone), unlike WHILE.
func emitElseStatement(node *ast.Node, ctx *Context) (string, error) {
	if len(node.Children) == 0 {
		return "", nil
	}
	switch node.Children[0].Label {
	case ast.KwElse:
		body, err := EmitCodeBlock(node.Children[1], ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(" else { %s }", body), nil
	case ast.KwElif:
		cond, err := EmitConditionalEvaluation(node.Children[1], ctx)
		if err != nil {
			return "", err
		}
		body, err := EmitCodeBlock(node.Children[2], ctx)
		if err != nil {
			return "", err
		}
		tail, err := emitElseStatement(node.Children[3], ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(" else if (%s) { %s }%s", cond, body, tail), nil
	default:
		return "", errf(node.Pos, "unexpected ElseStatement alternative %s", node.Children[0].Label)
	}
}
