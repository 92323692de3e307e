// Package griddetails implements the grid-details hybrid (§4.9): several
// details sub-tables placed side by side, the widest layout that still
// fits the terminal, built from the teacher's column-laying-out instinct
// combined with `internal/render/details`'s row renderer.
package griddetails

import (
	"strings"

	"github.com/dylanreedx/exa-go/internal/cell"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
	"github.com/dylanreedx/exa-go/internal/render/details"
	"github.com/dylanreedx/exa-go/internal/render/grid"
)

const gutter = 2

// Params bundles a details.Params (column set, theme, env) with the grid
// inputs needed to pick a layout.
type Params struct {
	Details         details.Params
	Direction       grid.Direction
	TerminalWidth   int
	RowsThreshold   int // EXA_GRID_ROWS: below this many rows, don't bother gridding
}

// Render lays files out across as many parallel details sub-tables as fit
// TerminalWidth, falling back to a single plain details table when there
// are too few rows to be worth gridding or nothing wider than one column
// fits.
func Render(files []fsmodel.File, p Params) []string {
	if len(files) == 0 {
		return nil
	}
	if p.RowsThreshold > 0 && len(files) < p.RowsThreshold {
		return plainDetails(files, p.Details)
	}

	// Build every file's row once (§4.9 step 1): the expensive metadata
	// stringification happens exactly len(files) times regardless of how
	// many columns we end up trying.
	scratch := details.NewTable(p.Details)
	rows := make([][]cell.TextCell, len(files))
	for i, f := range files {
		rows[i] = scratch.RowForFile(f)
	}

	best := buildColumns(rows, p, 1)
	for columns := 2; columns <= len(files); columns++ {
		candidate := buildColumns(rows, p, columns)
		if candidate == nil {
			break
		}
		if totalWidth(candidate) > p.TerminalWidth {
			break
		}
		best = candidate
	}

	return zip(best)
}

// subTable is one of the C parallel details tables: its own column-width
// tracking and its slice of this sub-table's rows.
type subTable struct {
	table *details.Table
	rows  [][]cell.TextCell
}

func buildColumns(rows [][]cell.TextCell, p Params, columns int) []subTable {
	rowsPerCol := (len(rows) + columns - 1) / columns
	subParams := p.Details
	subParams.ShowHeader = false // a sub-table per grid column never repeats the header

	tables := make([]subTable, columns)
	for c := range tables {
		tables[c].table = details.NewTable(subParams)
	}

	for i, row := range rows {
		col := columnIndexOf(i, columns, rowsPerCol, p.Direction)
		if col >= columns {
			return nil
		}
		tables[col].rows = append(tables[col].rows, row)
		for ci, cl := range row {
			tables[col].table.TrackRowWidth(ci, cl.Width)
		}
	}
	return tables
}

func columnIndexOf(i, columns, rowsPerCol int, dir grid.Direction) int {
	if dir == grid.LeftToRight {
		return i % columns
	}
	return i / rowsPerCol
}

func totalWidth(tables []subTable) int {
	total := 0
	for _, t := range tables {
		for _, w := range t.table.ColumnWidths() {
			total += w + 1
		}
		total += gutter
	}
	if total > 0 {
		total -= gutter
	}
	return total
}

// zip renders each sub-table's rows and interleaves them row-by-row so
// column i of every sub-table lines up, the way a terminal grid reads
// left to right. RenderRow leaves the trailing name column unpadded
// (right, for a single full-width table, trailing spaces are wasted) but
// here a sub-table's name column isn't the last thing on the line, so
// its rows need padding out to the sub-table's tracked name-column width
// before the next sub-table starts.
func zip(tables []subTable) []string {
	maxRows := 0
	for _, t := range tables {
		if len(t.rows) > maxRows {
			maxRows = len(t.rows)
		}
	}

	lines := make([]string, 0, maxRows)
	for r := 0; r < maxRows; r++ {
		var b strings.Builder
		for i, t := range tables {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gutter))
			}
			if r >= len(t.rows) {
				continue
			}
			b.WriteString(t.table.RenderRow(t.rows[r]))
			if i < len(tables)-1 {
				b.WriteString(strings.Repeat(" ", nameColumnPad(t, r)))
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// nameColumnPad is how many extra spaces row r of sub-table t needs so its
// unpadded trailing name cell reaches this sub-table's tracked column
// width, measured in display width rather than rendered byte/rune length
// so ANSI styling in the cell doesn't throw off the count.
func nameColumnPad(t subTable, r int) int {
	row := t.rows[r]
	if len(row) == 0 {
		return 0
	}
	widths := t.table.ColumnWidths()
	last := len(widths) - 1
	want := widths[last]
	got := row[len(row)-1].Width
	if want > got {
		return want - got
	}
	return 0
}

func plainDetails(files []fsmodel.File, p details.Params) []string {
	t := details.NewTable(p)
	for _, f := range files {
		t.AddFile(f)
	}
	return t.Render()
}
