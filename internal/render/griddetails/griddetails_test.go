package griddetails

import (
	"testing"

	"github.com/dylanreedx/exa-go/internal/env"
	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
	"github.com/dylanreedx/exa-go/internal/render/details"
	"github.com/dylanreedx/exa-go/internal/render/filename"
	"github.com/dylanreedx/exa-go/internal/render/grid"
	"github.com/dylanreedx/exa-go/internal/theme"
)

func file(name string) fsmodel.File {
	return fsmodel.File{
		Name: name,
		Path: "/tmp/" + name,
		Meta: fields.PermissionsPlus{FileType: fields.TypeFile},
		Size: fields.SizeOf(10),
	}
}

func testDetailsParams() details.Params {
	return details.Params{
		Columns:      []details.Column{details.ColumnName},
		Theme:        theme.Theme{Extensions: &theme.ExtensionMappings{}},
		Env:          env.New(),
		FileNameOpts: filename.Options{},
	}
}

func TestRenderFallsBackToOneColumnBelowRowsThreshold(t *testing.T) {
	files := []fsmodel.File{file("a"), file("b")}
	lines := Render(files, Params{
		Details:       testDetailsParams(),
		Direction:     grid.TopToBottom,
		TerminalWidth: 80,
		RowsThreshold: 10,
	})
	if len(lines) != 2 {
		t.Fatalf("expected one line per file when below threshold, got %d", len(lines))
	}
}

func TestRenderEmptyInputProducesNoLines(t *testing.T) {
	lines := Render(nil, Params{Details: testDetailsParams(), TerminalWidth: 80})
	if lines != nil {
		t.Fatalf("expected nil for empty input, got %v", lines)
	}
}

func TestRenderWidensColumnsWhenTerminalIsWide(t *testing.T) {
	var files []fsmodel.File
	for i := 0; i < 20; i++ {
		files = append(files, file("file"))
	}
	lines := Render(files, Params{
		Details:       testDetailsParams(),
		Direction:     grid.TopToBottom,
		TerminalWidth: 200,
	})
	if len(lines) == 0 {
		t.Fatal("expected some output")
	}
	if len(lines) >= len(files) {
		t.Fatalf("expected fewer rows than files once gridded across columns, got %d rows for %d files", len(lines), len(files))
	}
}
