package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiboi-lang/poiboic/internal/buildcache"
)

func writeProjectFile(t *testing.T, dir, yamlBody string) string {
	t.Helper()
	path := filepath.Join(dir, "poiboi.yaml")
	if err := os.WriteFile(path, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadProjectConfigDefaultsOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "files:\n  - main.pb\n")

	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig: %v", err)
	}
	if len(cfg.Files) != 1 || cfg.Files[0] != "main.pb" {
		t.Errorf("unexpected Files: %+v", cfg.Files)
	}
	if cfg.Output != "a.out.cpp" {
		t.Errorf("expected default output a.out.cpp, got %q", cfg.Output)
	}
}

func TestLoadProjectConfigRejectsEmptyFileList(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "output: out.cpp\n")

	if _, err := loadProjectConfig(path); err == nil {
		t.Fatal("expected error for project file with no files")
	}
}

func TestHashProjectFilesDetectsChange(t *testing.T) {
	dir := t.TempDir()
	srcPath := writeSource(t, dir, "main.pb", `Main() { PRINT("hi"); }`)

	cache, err := buildcache.Open(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	hashes, allFresh, err := hashProjectFiles([]string{srcPath}, cache)
	if err != nil {
		t.Fatalf("hashProjectFiles: %v", err)
	}
	if allFresh {
		t.Error("expected allFresh to be false before any hash is recorded")
	}

	for f, h := range hashes {
		if err := cache.Record(f, h); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	_, allFresh, err = hashProjectFiles([]string{srcPath}, cache)
	if err != nil {
		t.Fatalf("hashProjectFiles (second pass): %v", err)
	}
	if !allFresh {
		t.Error("expected allFresh to be true after recording the current hash")
	}

	if err := os.WriteFile(srcPath, []byte(`Main() { PRINT("bye"); }`), 0o644); err != nil {
		t.Fatalf("rewrite source: %v", err)
	}
	_, allFresh, err = hashProjectFiles([]string{srcPath}, cache)
	if err != nil {
		t.Fatalf("hashProjectFiles (third pass): %v", err)
	}
	if allFresh {
		t.Error("expected allFresh to be false after the source file changed")
	}
}

func TestRunBuildWritesOutput(t *testing.T) {
	exitCode = 0
	dir := t.TempDir()
	writeSource(t, dir, "main.pb", `Main() { PRINT("hi"); }`)
	outPath := filepath.Join(dir, "out.cpp")
	projectPath := writeProjectFile(t, dir, "files:\n  - "+filepath.Join(dir, "main.pb")+"\noutput: "+outPath+"\n")

	origConfig, origCacheDir := buildConfigPath, cacheDir
	buildConfigPath = projectPath
	cacheDir = filepath.Join(dir, ".cache")
	defer func() { buildConfigPath, cacheDir = origConfig, origCacheDir }()

	if err := runBuild(nil, nil); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected output file to be written: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected non-empty generated output")
	}
	if !strings.Contains(string(out), `PBString::FromLiteral("hi")`) {
		t.Errorf("expected string literal to go through FromLiteral, got:\n%s", out)
	}
}
