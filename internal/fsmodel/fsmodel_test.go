package fsmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dylanreedx/exa-go/internal/fields"
)

func TestExtensionLowercasesAndIgnoresLeadingDot(t *testing.T) {
	cases := map[string]string{
		"README.MD":   "md",
		"archive.tar": "tar",
		".gitignore":  "",
		"noext":       "",
	}
	for name, want := range cases {
		f := File{Name: name}
		if got := f.Extension(); got != want {
			t.Errorf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestIsDotfile(t *testing.T) {
	if !(File{Name: ".hidden"}).IsDotfile() {
		t.Fatal("expected .hidden to be a dotfile")
	}
	if (File{Name: "visible"}).IsDotfile() {
		t.Fatal("expected visible to not be a dotfile")
	}
}

func TestIsDirectory(t *testing.T) {
	f := File{Meta: fields.PermissionsPlus{FileType: fields.TypeDirectory}}
	if !f.IsDirectory() {
		t.Fatal("expected TypeDirectory to report IsDirectory")
	}
	f.Meta.FileType = fields.TypeFile
	if f.IsDirectory() {
		t.Fatal("expected TypeFile to not report IsDirectory")
	}
}

func TestReadDirStatsEveryEntryConcurrently(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a.txt", "b.txt", "c.txt"}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(got.Entries) != len(names) {
		t.Fatalf("expected %d entries, got %d", len(names), len(got.Entries))
	}
	for _, e := range got.Entries {
		if e.Size.IsNone() {
			t.Errorf("entry %s: expected a resolved size", e.Name)
		}
		if e.Meta.FileType != fields.TypeFile {
			t.Errorf("entry %s: expected TypeFile, got %v", e.Name, e.Meta.FileType)
		}
	}
}

func TestBuildFileResolvesSymlinkTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	if err := os.WriteFile(target, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	f, err := BuildFile("link.txt", link, dir)
	if err != nil {
		t.Fatalf("BuildFile: %v", err)
	}
	if !f.IsSymlink {
		t.Fatal("expected IsSymlink")
	}
	if f.LinkTarget == nil || f.LinkTarget.Kind != LinkOk {
		t.Fatalf("expected a resolved LinkOk target, got %+v", f.LinkTarget)
	}
	if f.LinkTarget.Target.Name != "real.txt" {
		t.Fatalf("expected target name real.txt, got %q", f.LinkTarget.Target.Name)
	}
}

func TestBuildFileBrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling.txt")
	if err := os.Symlink(filepath.Join(dir, "missing.txt"), link); err != nil {
		t.Fatal(err)
	}

	f, err := BuildFile("dangling.txt", link, dir)
	if err != nil {
		t.Fatalf("BuildFile: %v", err)
	}
	if f.LinkTarget == nil || f.LinkTarget.Kind != LinkBroken {
		t.Fatalf("expected LinkBroken, got %+v", f.LinkTarget)
	}
}
