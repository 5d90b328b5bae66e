package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poiboi-lang/poiboic/internal/ast"
	"github.com/poiboi-lang/poiboic/internal/lexer"
	"github.com/poiboi-lang/poiboic/internal/parser"
	"github.com/poiboi-lang/poiboic/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a PoiBoi file and print its concrete syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	path := args[0]
	src, err := source.Read(path)
	if err != nil {
		exitCode = 1
		return err
	}

	toks, err := lexer.New(path, src).Scan()
	if err != nil {
		exitCode = 2
		return wrapDiagnostic(err, path, src)
	}

	root, err := parser.New(toks).Parse()
	if err != nil {
		exitCode = 3
		return wrapDiagnostic(err, path, src)
	}

	printNode(root, 0)
	return nil
}

func printNode(n *ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Label.IsTerminal() {
		if n.Content == "" {
			fmt.Printf("%s%s\n", indent, n.Label)
		} else {
			fmt.Printf("%s%s %q\n", indent, n.Label, n.Content)
		}
		return
	}
	fmt.Printf("%s%s\n", indent, n.Label)
	for _, child := range n.Children {
		printNode(child, depth+1)
	}
}
