// Package cell implements TextCell, the styled, width-tracked unit every
// renderer (grid, details, tree, grid-details) assembles its output from.
package cell

import (
	"strings"

	"github.com/clipperhouse/displaywidth"

	"github.com/dylanreedx/exa-go/internal/style"
)

// Span is one coloured run of text inside a cell.
type Span struct {
	Style style.Style
	Text  string
}

// TextCell is a sequence of styled spans plus its pre-computed display
// width. The width invariant (§3, §8): Width always equals the sum of each
// span's Unicode display width, independent of the SGR bytes Render()
// would add — that's what lets the grid and details renderers pad and
// align columns without counting escape codes.
type TextCell struct {
	Spans []Span
	Width int
}

// NewCell builds a TextCell from a single styled string.
func NewCell(s style.Style, text string) TextCell {
	return TextCell{
		Spans: []Span{{Style: s, Text: text}},
		Width: displaywidth.String(text),
	}
}

// Plain builds an unstyled TextCell — used for punctuation and separators
// that never take colour.
func Plain(text string) TextCell {
	return TextCell{
		Spans: []Span{{Text: text}},
		Width: displaywidth.String(text),
	}
}

// Append concatenates two cells, combining their widths and span lists.
func (c TextCell) Append(other TextCell) TextCell {
	return TextCell{
		Spans: append(append([]Span{}, c.Spans...), other.Spans...),
		Width: c.Width + other.Width,
	}
}

// Join concatenates cells with a plain separator between each, the way a
// details row joins its columns.
func Join(sep string, cells ...TextCell) TextCell {
	out := TextCell{}
	for i, c := range cells {
		if i > 0 {
			out = out.Append(Plain(sep))
		}
		out = out.Append(c)
	}
	return out
}

// Render writes the cell's spans through their styles, producing the final
// string with SGR escapes — this is the only place Width no longer matches
// len(result), by design.
func (c TextCell) Render() string {
	var b strings.Builder
	for _, sp := range c.Spans {
		if sp.Style.Plain() {
			b.WriteString(sp.Text)
		} else {
			b.WriteString(sp.Style.Render(sp.Text))
		}
	}
	return b.String()
}

// PadRight pads a cell with spaces on the right until it reaches width w,
// a no-op if it's already at least that wide.
func (c TextCell) PadRight(w int) TextCell {
	if c.Width >= w {
		return c
	}
	return c.Append(Plain(strings.Repeat(" ", w-c.Width)))
}

// PadLeft is PadRight's mirror, used for right-aligned numeric columns.
func (c TextCell) PadLeft(w int) TextCell {
	if c.Width >= w {
		return c
	}
	return Plain(strings.Repeat(" ", w-c.Width)).Append(c)
}
