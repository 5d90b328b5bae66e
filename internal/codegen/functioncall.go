package codegen

import (
	"strings"

	"github.com/poiboi-lang/poiboic/internal/ast"
)

type builtinSpec struct {
	target string
	arity  int
}

// builtins maps a source builtin name to its target-language identifier
// and fixed arity (spec §4.5).
var builtins = map[string]builtinSpec{
	"EQUAL":     {"Builtin_Equal", 2},
	"PRINT":     {"Builtin_Print", 1},
	"CONCAT":    {"Builtin_Concat", 2},
	"NOT":       {"Builtin_Not", 1},
	"AND":       {"Builtin_And", 2},
	"OR":        {"Builtin_Or", 2},
	"STRLEN":    {"Builtin_Strlen", 1},
	"SUBSTRING": {"Builtin_Substring", 3},
}

// EmitFunctionCall renders a FunctionCall node. asStatement controls the
// trailing semicolon: present when used as a statement, absent when
// nested inside another expression.
func EmitFunctionCall(node *ast.Node, ctx *Context, asStatement bool) (string, error) {
	callee := node.Children[0]
	rvalueList := node.Children[2]

	var target string
	var expectedArity int

	switch callee.Label {
	case ast.TermFunctionName:
		fn, ok := ctx.Table.ByName[callee.Content]
		if !ok {
			return "", errf(callee.Pos, "undefined function %q", callee.Content)
		}
		target = fn.Name + "_poiboi_fn"
		expectedArity = len(fn.Params)
	case ast.TermBuiltin:
		spec, ok := builtins[callee.Content]
		if !ok {
			return "", errf(callee.Pos, "unknown builtin %q", callee.Content)
		}
		target = spec.target
		expectedArity = spec.arity
	default:
		return "", errf(node.Pos, "unexpected FunctionCall callee %s", callee.Label)
	}

	args, err := flattenRValueList(rvalueList, ctx)
	if err != nil {
		return "", err
	}
	if len(args) != expectedArity {
		return "", errf(node.Pos, "%q expects %d argument(s), got %d",
			callee.Content, expectedArity, len(args))
	}

	var sb strings.Builder
	sb.WriteString(target)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteByte(')')
	if asStatement {
		sb.WriteByte(';')
	}
	return sb.String(), nil
}

// flattenRValueList honors RValueListExpansion recursion: `RValue
// RValueListExpansion | ε`, `',' RValue RValueListExpansion | ε`.
func flattenRValueList(n *ast.Node, ctx *Context) ([]string, error) {
	if len(n.Children) == 0 {
		return nil, nil
	}
	first, err := EmitRValue(n.Children[0], ctx)
	if err != nil {
		return nil, err
	}
	rest, err := flattenRValueListExpansion(n.Children[1], ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{first}, rest...), nil
}

func flattenRValueListExpansion(n *ast.Node, ctx *Context) ([]string, error) {
	if len(n.Children) == 0 {
		return nil, nil
	}
	first, err := EmitRValue(n.Children[1], ctx)
	if err != nil {
		return nil, err
	}
	rest, err := flattenRValueListExpansion(n.Children[2], ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{first}, rest...), nil
}
