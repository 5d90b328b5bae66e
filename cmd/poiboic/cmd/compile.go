package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/poiboi-lang/poiboic/internal/codegen"
	perrors "github.com/poiboi-lang/poiboic/internal/errors"
	"github.com/poiboi-lang/poiboic/internal/funcs"
	"github.com/poiboi-lang/poiboic/internal/lexer"
	"github.com/poiboi-lang/poiboic/internal/parser"
	"github.com/poiboi-lang/poiboic/internal/source"
)

var compileOutput string

var compileCmd = &cobra.Command{
	Use:   "compile [files...]",
	Short: "Compile one or more PoiBoi files into a single C++ program",
	Long: `compile scans, parses, and extracts functions from each file in turn
(sorted in natural order so f2.pb precedes f10.pb), then builds one
shared function table across all of them and emits a single C++ program.

All given files form one program: a function defined in one file may be
called from another, and exactly one Main function must exist across the
whole set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file (default: standard output)")
}

func runCompile(_ *cobra.Command, args []string) error {
	paths := append([]string(nil), args...)
	sort.Slice(paths, func(i, j int) bool { return natural.Less(paths[i], paths[j]) })

	table, sources, err := buildProgramTable(paths)
	if err != nil {
		return err
	}

	out, err := codegen.GenerateProgram(table)
	if err != nil {
		exitCode = 4
		return wrapCodegenError(err, sources)
	}

	return writeOutput(out)
}

// buildProgramTable runs the scan/parse/extract pipeline over every file
// in order, merging their definitions into one function table, and sets
// exitCode per spec §6 on the first failure: 1 unopenable file, 2 scan
// error, 3 parse error, 4 extraction (semantic) error. The returned
// sources map lets a later codegen failure (which only carries a
// lexer.Position) be rendered with its offending source line.
func buildProgramTable(paths []string) (*funcs.Table, map[string]string, error) {
	var all []*funcs.Function
	sources := make(map[string]string, len(paths))
	for _, path := range paths {
		fns, src, err := compileOneFile(path)
		sources[path] = src
		if err != nil {
			return nil, sources, err
		}
		all = append(all, fns...)
	}

	table, err := funcs.BuildTable(all)
	if err != nil {
		exitCode = 4
		return nil, sources, attachSource(err, sources)
	}
	return table, sources, nil
}

func compileOneFile(path string) ([]*funcs.Function, string, error) {
	src, err := source.Read(path)
	if err != nil {
		exitCode = 1
		return nil, "", err
	}

	toks, err := lexer.New(path, src).Scan()
	if err != nil {
		exitCode = 2
		return nil, src, wrapDiagnostic(err, path, src)
	}

	root, err := parser.New(toks).Parse()
	if err != nil {
		exitCode = 3
		return nil, src, wrapDiagnostic(err, path, src)
	}

	fns, err := funcs.Extract(root)
	if err != nil {
		exitCode = 4
		return nil, src, wrapDiagnostic(err, path, src)
	}
	return fns, src, nil
}

// wrapDiagnostic converts a package-local *lexer.Error/*parser.Error/
// *codegen.Error (or an already-built *errors.CompilerError missing its
// source text) into a *errors.CompilerError carrying file and source, so
// the CLI layer can render it with Format's caret display.
func wrapDiagnostic(err error, file, src string) error {
	switch e := err.(type) {
	case *lexer.Error:
		return perrors.NewCompilerError(e.Pos, e.Message, src, file)
	case *parser.Error:
		return perrors.NewCompilerError(e.Pos, e.Message, src, file)
	case *codegen.Error:
		return perrors.NewCompilerError(e.Pos, e.Message, src, file)
	case *perrors.CompilerError:
		if e.Source == "" {
			e.Source = src
		}
		if e.File == "" {
			e.File = file
		}
		return e
	default:
		return err
	}
}

// attachSource fills in the offending source line on a *errors.CompilerError
// that crossed a file boundary (funcs.BuildTable) without one, looking it
// up by the error's own File field.
func attachSource(err error, sources map[string]string) error {
	ce, ok := err.(*perrors.CompilerError)
	if !ok || ce.Source != "" {
		return err
	}
	if src, ok := sources[ce.File]; ok {
		ce.Source = src
	}
	return ce
}

// wrapCodegenError converts a *codegen.Error (which only carries a
// lexer.Position, no source text) into a *errors.CompilerError, looking up
// the offending file's source by the position's own File field — codegen
// runs over a function table merged from every input file, so no single
// file/src pair is available at the call site the way it is for the
// per-file lex/parse stages.
func wrapCodegenError(err error, sources map[string]string) error {
	ce, ok := err.(*codegen.Error)
	if !ok {
		return err
	}
	return perrors.NewCompilerError(ce.Pos, ce.Message, sources[ce.Pos.File], ce.Pos.File)
}

func writeOutput(code string) error {
	if compileOutput == "" {
		_, err := fmt.Fprint(os.Stdout, code)
		return err
	}
	return os.WriteFile(compileOutput, []byte(code), 0o644)
}
