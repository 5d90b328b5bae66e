package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poiboi-lang/poiboic/internal/lexer"
	"github.com/poiboi-lang/poiboic/internal/source"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a PoiBoi file and print the resulting tokens",
	Long: `lex is a debugging aid: it runs the lexer alone and prints each
token's type, content, and starting line.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
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

	for _, tok := range toks {
		if tok.Content == "" {
			fmt.Printf("%-14s @%d\n", tok.Type, tok.Pos.Line)
		} else {
			fmt.Printf("%-14s %q @%d\n", tok.Type, tok.Content, tok.Pos.Line)
		}
	}
	return nil
}
