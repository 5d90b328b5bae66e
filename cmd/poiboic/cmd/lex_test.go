package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}

func TestRunLexPrintsTokens(t *testing.T) {
	exitCode = 0
	dir := t.TempDir()
	path := writeSource(t, dir, "main.pb", `Main() { PRINT("hi"); }`)

	out := captureStdout(t, func() {
		if err := runLex(nil, []string{path}); err != nil {
			t.Fatalf("runLex: %v", err)
		}
	})

	if !strings.Contains(out, `"\"hi\""`) {
		t.Errorf("expected token listing to contain the string literal, got: %s", out)
	}
	if exitCode != 0 {
		t.Errorf("expected exitCode 0, got %d", exitCode)
	}
}

func TestRunLexMissingFileSetsExitCode(t *testing.T) {
	exitCode = 0
	err := runLex(nil, []string{filepath.Join(t.TempDir(), "missing.pb")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if exitCode != 1 {
		t.Errorf("expected exitCode 1, got %d", exitCode)
	}
}

func TestRunLexScanErrorSetsExitCode(t *testing.T) {
	exitCode = 0
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.pb", "#unterminated")

	_ = captureStdout(t, func() {
		err := runLex(nil, []string{path})
		if err == nil {
			t.Fatal("expected scan error")
		}
	})
	if exitCode != 2 {
		t.Errorf("expected exitCode 2, got %d", exitCode)
	}
}
