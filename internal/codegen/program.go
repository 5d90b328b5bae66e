package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/poiboi-lang/poiboic/internal/funcs"
	"github.com/poiboi-lang/poiboic/internal/lexer"
	"github.com/poiboi-lang/poiboic/internal/runtime"
)

// GenerateProgram assembles the final emitted file from a function table,
// in the exact order spec §4.5's "Program assembly" rule prescribes:
// feature macros, runtime blob, forward declarations, sorted globals,
// function definitions, synthesized entry point.
func GenerateProgram(table *funcs.Table) (string, error) {
	globals := make(map[string]bool)
	ctx := NewContext(table, globals)

	var definitions []string
	for _, fn := range table.Ordered {
		def, err := EmitFunctionDefinition(fn, ctx)
		if err != nil {
			return "", err
		}
		definitions = append(definitions, def)
	}

	main, ok := table.ByName["Main"]
	if !ok {
		return "", errf(lexer.Position{}, "no Main function defined")
	}
	entry, err := synthesizeEntryPoint(main)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("#define POIBOI_EXECUTABLE_\n#define POIBOI_INCLUDE_ASSERT_\n\n")
	sb.WriteString(runtime.Blob())
	sb.WriteString("\n\n")

	for _, fn := range table.Ordered {
		sb.WriteString(Declaration(fn))
		sb.WriteString(";\n")
	}
	sb.WriteString("\n")

	sortedGlobals := make([]string, 0, len(globals))
	for g := range globals {
		sortedGlobals = append(sortedGlobals, g)
	}
	sort.Strings(sortedGlobals)
	for _, g := range sortedGlobals {
		sb.WriteString(fmt.Sprintf("PBString %s%s;\n", globalVarPrefix, g))
	}
	sb.WriteString("\n")

	for _, def := range definitions {
		sb.WriteString(def)
		sb.WriteString("\n")
	}

	sb.WriteString(entry)
	return sb.String(), nil
}

func synthesizeEntryPoint(main *funcs.Function) (string, error) {
	switch len(main.Params) {
	case 0:
		return "int main(int, char**) { Main_poiboi_fn(); return 0; }\n", nil
	case 1:
		return "int main(int argc, char** argv) {\n" +
			"  PBString arg = argc > 1 ? PBString::FromLiteral(argv[1]) : PBString();\n" +
			"  Main_poiboi_fn(arg);\n" +
			"  return 0;\n" +
			"}\n", nil
	default:
		return "", errf(main.Pos, "Main must take at most one parameter, got %d", len(main.Params))
	}
}
