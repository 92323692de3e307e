package icons

import (
	"testing"

	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
)

func TestForFileByExtension(t *testing.T) {
	SetNerdFonts(false)
	f := fsmodel.File{Name: "main.go", Meta: fields.PermissionsPlus{FileType: fields.TypeFile}}
	if got := For(f); got != "◆" {
		t.Fatalf("want ◆ for main.go, got %q", got)
	}
}

func TestForFileUnknownExtensionFallsBack(t *testing.T) {
	SetNerdFonts(false)
	f := fsmodel.File{Name: "notes.xyz", Meta: fields.PermissionsPlus{FileType: fields.TypeFile}}
	if got := For(f); got != "○" {
		t.Fatalf("want the generic glyph for an unknown extension, got %q", got)
	}
}

func TestForDirectoryByName(t *testing.T) {
	SetNerdFonts(false)
	f := fsmodel.File{Name: "src", Meta: fields.PermissionsPlus{FileType: fields.TypeDirectory}}
	if got := For(f); got != "▪" {
		t.Fatalf("want ▪ for src/, got %q", got)
	}
}

func TestForDirectoryUnknownNameFallsBack(t *testing.T) {
	SetNerdFonts(false)
	f := fsmodel.File{Name: "whatever", Meta: fields.PermissionsPlus{FileType: fields.TypeDirectory}}
	if got := For(f); got != "▪" {
		t.Fatalf("want the generic folder glyph, got %q", got)
	}
}

func TestForNerdFontsSwitchesTable(t *testing.T) {
	SetNerdFonts(true)
	defer SetNerdFonts(false)

	f := fsmodel.File{Name: "main.go", Meta: fields.PermissionsPlus{FileType: fields.TypeFile}}
	if got := For(f); got != nerdExtIcons["go"] {
		t.Fatalf("want the nerd-font glyph for main.go, got %q", got)
	}
}
