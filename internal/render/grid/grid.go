// Package grid implements the grid-fitting algorithm (§4.5): arranging
// fixed-width cells into as many columns as fit the terminal width,
// filling down each column before moving to the next.
package grid

import "github.com/dylanreedx/exa-go/internal/cell"

const separatorWidth = 2

// Direction controls whether cells fill down columns first (the default)
// or across rows first.
type Direction int

const (
	TopToBottom Direction = iota
	LeftToRight
)

// Fit lays cells out in as many columns as fit within width, maximizing
// column count subject to every column actually fitting — a descending
// search from the maximum theoretically possible column count down to 1,
// since widening the grid can only ever shrink the total width needed for
// a FIXED number of columns once it already doesn't fit.
type Fit struct {
	Columns     int
	ColumnWidths []int
	Rows        int
	Direction   Direction
}

// Compute finds the widest grid of cells that fits within width, filling
// direction. ok is false when no column count — not even one — fits width,
// meaning the caller has to fall back to another rendering entirely (one
// name per line) rather than an overflowing single column.
func Compute(cells []cell.TextCell, width int, dir Direction) (fit Fit, ok bool) {
	if len(cells) == 0 {
		return Fit{Columns: 1, Rows: 0, Direction: dir}, true
	}

	maxCellWidth := 0
	for _, c := range cells {
		if c.Width > maxCellWidth {
			maxCellWidth = c.Width
		}
	}

	maxPossibleColumns := (width + separatorWidth) / (maxCellWidth + separatorWidth)
	if maxPossibleColumns < 1 {
		maxPossibleColumns = 1
	}
	if maxPossibleColumns > len(cells) {
		maxPossibleColumns = len(cells)
	}

	for columns := maxPossibleColumns; columns >= 1; columns-- {
		rows := (len(cells) + columns - 1) / columns
		widths, ok := columnWidths(cells, columns, rows, dir)
		if !ok {
			continue
		}
		total := 0
		for _, w := range widths {
			total += w
		}
		total += separatorWidth * (columns - 1)
		if total <= width {
			return Fit{Columns: columns, ColumnWidths: widths, Rows: rows, Direction: dir}, true
		}
	}

	return Fit{}, false
}

// columnWidths computes the widest cell in each column for a candidate
// (columns, rows) shape; ok is false only if the shape can't hold every
// cell (shouldn't happen given how rows is derived, but guards division).
func columnWidths(cells []cell.TextCell, columns, rows int, dir Direction) ([]int, bool) {
	widths := make([]int, columns)
	for i, c := range cells {
		col := columnIndexOf(i, columns, rows, dir)
		if col >= columns {
			return nil, false
		}
		if c.Width > widths[col] {
			widths[col] = c.Width
		}
	}
	return widths, true
}

func columnIndexOf(i, columns, rows int, dir Direction) int {
	if dir == LeftToRight {
		return i % columns
	}
	return i / rows
}

// RowOf and ColOf expose the position of cell index i within a computed
// Fit, for callers that need to walk the grid row by row.
func (f Fit) RowOf(i int) int { return rowColOf(i, f, true) }
func (f Fit) ColOf(i int) int { return rowColOf(i, f, false) }

func rowColOf(i int, f Fit, wantRow bool) int {
	if f.Direction == LeftToRight {
		if wantRow {
			return i / f.Columns
		}
		return i % f.Columns
	}
	if wantRow {
		return i % f.Rows
	}
	return i / f.Rows
}
