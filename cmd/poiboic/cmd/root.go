// Package cmd implements the poiboic command-line driver: cobra.Command
// tree, multi-file scan/parse/codegen pipeline, and the exit-code
// contract of spec §6 (0 success, 1 unopenable file, 2 scan error, 3
// parse error, 4 codegen error).
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	perrors "github.com/poiboi-lang/poiboic/internal/errors"
)

var (
	// Version is set by release build flags; left at dev default otherwise.
	Version = "0.1.0-dev"
)

// exitCode carries a command's intended process exit status past
// cobra's RunE, which only distinguishes "nil" from "non-nil" error.
var exitCode int

// useColor toggles ANSI highlighting on *errors.CompilerError output;
// bound to the global --color flag.
var useColor bool

var rootCmd = &cobra.Command{
	Use:   "poiboic",
	Short: "PoiBoi compiler",
	Long: `poiboic compiles PoiBoi source files into a single C++ program.

PoiBoi is a small string-only language: every value is a PBString, and
every program is a set of functions calling builtins and each other.
poiboic lexes, parses, and extracts functions from one or more source
files sharing a single namespace, then emits a self-contained C++ file
embedding the PBString runtime.`,
	Version: Version,
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

// printError renders a *errors.CompilerError through FormatErrors (so its
// caret display and --color handling actually run), falling back to a
// plain message for errors that never carried source position (I/O
// failures, cobra's own usage errors).
func printError(err error) {
	var ce *perrors.CompilerError
	if errors.As(err, &ce) {
		fmt.Fprintln(os.Stderr, perrors.FormatErrors([]*perrors.CompilerError{ce}, useColor))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("poiboic version %s\n", Version))
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", false, "colorize diagnostic output")
}
