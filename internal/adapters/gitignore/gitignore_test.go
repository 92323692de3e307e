package gitignore

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGitignore(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAndIsIgnoredBasicPattern(t *testing.T) {
	dir := t.TempDir()
	writeGitignore(t, dir, "*.log\nbuild/\n")

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !m.IsIgnored("output.log", false) {
		t.Fatal("expected output.log to be ignored")
	}
	if !m.IsIgnored("build", true) {
		t.Fatal("expected build/ to be ignored")
	}
	if m.IsIgnored("main.go", false) {
		t.Fatal("expected main.go to not be ignored")
	}
}

func TestIsIgnoredLastMatchWins(t *testing.T) {
	dir := t.TempDir()
	writeGitignore(t, dir, "*.log\n!keep.log\n")

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.IsIgnored("keep.log", false) {
		t.Fatal("expected the later negation to win for keep.log")
	}
	if !m.IsIgnored("drop.log", false) {
		t.Fatal("expected drop.log to stay ignored")
	}
}

func TestNilMatcherNeverIgnores(t *testing.T) {
	var m *Matcher
	if m.IsIgnored("anything", false) {
		t.Fatal("a nil matcher should never report a path as ignored")
	}
}
