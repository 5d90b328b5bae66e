package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.pb")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReadPlainUTF8(t *testing.T) {
	path := writeTemp(t, []byte(`Main() { PRINT("hi"); }`))
	got, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `Main() { PRINT("hi"); }` {
		t.Errorf("got %q", got)
	}
}

func TestReadStripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Main() {}")...)
	path := writeTemp(t, data)
	got, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Main() {}" {
		t.Errorf("got %q", got)
	}
}

func TestReadRejectsInvalidUTF8WithoutBOM(t *testing.T) {
	path := writeTemp(t, []byte{0xFF, 0x00, 0x01})
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for invalid UTF-8 without BOM")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.pb")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
