// Package funcs implements function extraction (spec §4.4): flattening the
// Module CST chain into an ordered list of function definitions and a
// name-to-function lookup table, detecting duplicate names along the way.
package funcs

import (
	"fmt"

	"github.com/poiboi-lang/poiboic/internal/ast"
	"github.com/poiboi-lang/poiboic/internal/errors"
	"github.com/poiboi-lang/poiboic/internal/lexer"
)

// Function is one extracted function definition.
type Function struct {
	Name      string
	Params    []string
	Body      *ast.Node // CodeBlock
	Pos       lexer.Position
}

// Table is a name-to-function lookup built from one or more Module roots,
// in source order.
type Table struct {
	ByName  map[string]*Function
	Ordered []*Function
}

// Extract walks a Module chain (FunctionDefinition Module | EndOfFile) and
// collects its definitions in source order.
func Extract(module *ast.Node) ([]*Function, error) {
	var out []*Function
	for module != nil && len(module.Children) == 2 {
		fd := module.Children[0]
		fn, err := extractOne(fd)
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
		module = module.Children[1]
	}
	return out, nil
}

func extractOne(fd *ast.Node) (*Function, error) {
	name := fd.Children[0]
	varsList := fd.Children[2]
	body := fd.Children[4]

	return &Function{
		Name:   name.Content,
		Params: flattenVariablesList(varsList),
		Body:   body,
		Pos:    fd.Pos,
	}, nil
}

// flattenVariablesList honors VariablesListExpansion recursion: `Variable
// VariablesListExpansion | ε`, `',' Variable VariablesListExpansion | ε`.
func flattenVariablesList(n *ast.Node) []string {
	if len(n.Children) == 0 {
		return nil
	}
	var names []string
	names = append(names, n.Children[0].Content)
	names = append(names, flattenExpansion(n.Children[1])...)
	return names
}

func flattenExpansion(n *ast.Node) []string {
	if len(n.Children) == 0 {
		return nil
	}
	var names []string
	names = append(names, n.Children[1].Content)
	names = append(names, flattenExpansion(n.Children[2])...)
	return names
}

// BuildTable merges definitions from one or more files into a single
// table, erroring on duplicate function names (citing both positions) and
// requiring Main to be present with at most one parameter.
func BuildTable(fns []*Function) (*Table, error) {
	t := &Table{ByName: make(map[string]*Function, len(fns))}
	for _, fn := range fns {
		if existing, dup := t.ByName[fn.Name]; dup {
			trace := errors.NewDuplicateDefinitionTrace(fn.Name, existing.Pos, fn.Pos)
			return nil, errors.NewCompilerError(fn.Pos, "duplicate function definition:\n"+trace.String(), "", fn.Pos.File)
		}
		t.ByName[fn.Name] = fn
		t.Ordered = append(t.Ordered, fn)
	}

	main, ok := t.ByName["Main"]
	if !ok {
		return nil, errors.NewCompilerError(lexer.Position{}, "no Main function defined", "", "")
	}
	if len(main.Params) > 1 {
		return nil, errors.NewCompilerError(main.Pos,
			fmt.Sprintf("Main must take at most one parameter, got %d", len(main.Params)),
			"", main.Pos.File)
	}
	return t, nil
}
