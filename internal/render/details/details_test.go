package details

import (
	"strings"
	"testing"
	"time"

	"github.com/dylanreedx/exa-go/internal/env"
	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
	"github.com/dylanreedx/exa-go/internal/render/filename"
	"github.com/dylanreedx/exa-go/internal/theme"
)

func mkFile(name string, size uint64, ft fields.Type) fsmodel.File {
	return fsmodel.File{
		Name: name,
		Path: "/tmp/" + name,
		Meta: fields.PermissionsPlus{
			FileType: ft,
			Permissions: fields.Permissions{
				UserRead: true, UserWrite: true,
				GroupRead: true,
				OtherRead: true,
			},
		},
		Size:     fields.SizeOf(size),
		Links:    fields.Links{Count: 1},
		Blocks:   fields.BlocksSome(8),
		Modified: fields.Time{Seconds: time.Now().Unix()},
	}
}

func testParams() Params {
	return Params{
		Columns: []Column{ColumnPermissions, ColumnFileSize, ColumnName},
		Theme:   theme.Theme{Extensions: &theme.ExtensionMappings{}},
		Env:     env.New(),
		FileNameOpts: filename.Options{
			Classify: filename.JustFilenames,
		},
	}
}

func TestRenderPermissionsShowsTypeGlyphAndBits(t *testing.T) {
	f := mkFile("a.txt", 100, fields.TypeFile)
	c := RenderPermissions(f.Meta, theme.UiStyles{})
	got := c.Render()
	if !strings.HasPrefix(got, "-") {
		t.Fatalf("expected leading '-' glyph for a regular file, got %q", got)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 chars (type + 3x3 rwx), got %q (%d)", got, len(got))
	}
}

func TestRenderSizeDecimalScalesWithOneDecimalUnderTen(t *testing.T) {
	number, unit := RenderSize(fields.SizeOf(1536), SizeDecimalBytes, env.New(), theme.SizeScale{}, theme.UiStyles{})
	if number.Render() != "1.5" || unit.Render() != "k" {
		t.Fatalf("want 1.5k, got %q%q", number.Render(), unit.Render())
	}
}

func TestRenderSizeDirectoryIsBlank(t *testing.T) {
	number, unit := RenderSize(fields.SizeNone(), SizeDecimalBytes, env.New(), theme.SizeScale{}, theme.UiStyles{})
	if number.Width != 0 || unit.Width != 0 {
		t.Fatalf("expected blank cells for SizeNone, got %q%q", number.Render(), unit.Render())
	}
}

func TestTableTracksColumnWidthsAcrossRows(t *testing.T) {
	table := NewTable(testParams())
	table.AddFile(mkFile("a.txt", 1, fields.TypeFile))
	table.AddFile(mkFile("much-longer-name.txt", 999999, fields.TypeFile))

	widths := table.ColumnWidths()
	if widths[len(widths)-1] < len("much-longer-name.txt") {
		t.Fatalf("name column width %d too small for longest name", widths[len(widths)-1])
	}
}

func TestRenderOctalFourDigits(t *testing.T) {
	p := fields.Permissions{UserRead: true, UserWrite: true, UserExecute: true}
	c := RenderOctal(p, theme.UiStyles{})
	if c.Render() != "0700" {
		t.Fatalf("want 0700, got %q", c.Render())
	}
}
