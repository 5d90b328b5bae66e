package codegen

import "github.com/poiboi-lang/poiboic/internal/ast"

// localVarPrefix and globalVarPrefix are part of the emitted-file contract
// (spec §6): tests may grep for them.
const (
	localVarPrefix  = "LOCAL_VAR_"
	globalVarPrefix = "GLOBAL_VAR_"
)

// EmitRValue renders an RValue node: `QuotedString | Variable | FunctionCall`.
func EmitRValue(node *ast.Node, ctx *Context) (string, error) {
	child := node.Children[0]
	switch child.Label {
	case ast.TermQuotedString:
		return "PBString::FromLiteral(" + child.Content + ")", nil
	case ast.TermVariable:
		return emitVariableRef(child, ctx)
	case ast.FunctionCall:
		return EmitFunctionCall(child, ctx, false)
	default:
		return "", errf(node.Pos, "unexpected RValue child %s", child.Label)
	}
}

func emitVariableRef(node *ast.Node, ctx *Context) (string, error) {
	name := node.Content
	switch {
	case ctx.IsLocal(name):
		return localVarPrefix + name, nil
	case ctx.IsGlobal(name):
		return globalVarPrefix + name, nil
	default:
		return "", errf(node.Pos, "undefined variable %q", name)
	}
}
