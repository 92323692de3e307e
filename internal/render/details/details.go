// Package details implements the long-mode table (§4.7): a list of
// columns, each painted per-file into a width-tracked cell, right- or
// left-aligned, and assembled into aligned rows — the Go shape of
// `original_source/src/output/details.rs`.
package details

import (
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/dylanreedx/exa-go/internal/adapters/gitstatus"
	"github.com/dylanreedx/exa-go/internal/cell"
	"github.com/dylanreedx/exa-go/internal/env"
	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
	"github.com/dylanreedx/exa-go/internal/render/filename"
	"github.com/dylanreedx/exa-go/internal/theme"
)

// Column identifies one slot in a details row, in the order the table
// emits them (name always rendered last).
type Column int

const (
	ColumnPermissions Column = iota
	ColumnOctalPermissions
	ColumnHardLinks
	ColumnFileSize
	ColumnUser
	ColumnGroup
	ColumnTimestamp
	ColumnInode
	ColumnBlocks
	ColumnGitStatus
	ColumnName
)

func (c Column) alignRight() bool {
	switch c {
	case ColumnFileSize, ColumnHardLinks, ColumnInode, ColumnBlocks, ColumnGitStatus:
		return true
	default:
		return false
	}
}

func (c Column) header() string {
	switch c {
	case ColumnPermissions, ColumnOctalPermissions:
		return "Permissions"
	case ColumnHardLinks:
		return "Links"
	case ColumnFileSize:
		return "Size"
	case ColumnUser:
		return "User"
	case ColumnGroup:
		return "Group"
	case ColumnTimestamp:
		return "Date Modified"
	case ColumnInode:
		return "inode"
	case ColumnBlocks:
		return "Blocks"
	case ColumnGitStatus:
		return "Git"
	case ColumnName:
		return "Name"
	default:
		return ""
	}
}

// TimeFormat selects the timestamp layout (§4.7).
type TimeFormat int

const (
	TimeDefault TimeFormat = iota
	TimeISO
	TimeLongISO
	TimeFullISO
)

// Params bundles everything a details table needs besides the file list
// itself.
type Params struct {
	Columns      []Column
	Theme        theme.Theme
	Env          *env.Environment
	SizeFormat   SizeFormat
	TimeFormat   TimeFormat
	FileNameOpts filename.Options
	Git          *gitstatus.Statuses
	ShowHeader   bool
	TimeField    TimeField
}

// TimeField selects which of a file's three timestamps the Timestamp
// column shows (§4.7, --time). The filesystem has no birth-time field on
// most platforms, so TimeCreated and TimeChanged both read ctime — the
// same simplification exa's own Linux build makes.
type TimeField int

const (
	TimeFieldModified TimeField = iota
	TimeFieldChanged
	TimeFieldAccessed
	TimeFieldCreated
)

// Table accumulates rows and tracks each column's maximum width so it can
// pad every row to the same column widths once all rows are known.
type Table struct {
	params       Params
	header       []cell.TextCell
	rows         [][]cell.TextCell
	columnWidths []int
}

func NewTable(p Params) *Table {
	t := &Table{params: p}
	t.columnWidths = make([]int, len(p.Columns))
	t.header = t.newRowHeader()
	for i, c := range t.header {
		t.trackWidth(i, c.Width)
	}
	return t
}

func (t *Table) newRowHeader() []cell.TextCell {
	row := make([]cell.TextCell, len(t.params.Columns))
	for i, col := range t.params.Columns {
		row[i] = cell.NewCell(t.params.Theme.Styles.Header, col.header())
	}
	return row
}

func (t *Table) trackWidth(i, w int) {
	if w > t.columnWidths[i] {
		t.columnWidths[i] = w
	}
}

// ColumnWidths exposes the running per-column maximum, for grid-details
// (§4.9) to size its sub-tables before a final Render pass.
func (t *Table) ColumnWidths() []int {
	return append([]int(nil), t.columnWidths...)
}

// TrackRowWidth folds one already-rendered cell's width into column i's
// running maximum, for a caller (grid-details) that built rows itself via
// RowForFile instead of AddFile.
func (t *Table) TrackRowWidth(i, w int) {
	t.trackWidth(i, w)
}

// Render pads and joins every queued row (header first, if Params.ShowHeader)
// to the table's tracked column widths, one line per row.
func (t *Table) Render() []string {
	var lines []string
	if t.params.ShowHeader {
		lines = append(lines, t.renderRow(t.header))
	}
	for _, row := range t.rows {
		lines = append(lines, t.renderRow(row))
	}
	return lines
}

// RenderRow pads and joins a single row (built via RowForFile) against
// this table's current tracked column widths.
func (t *Table) RenderRow(row []cell.TextCell) string {
	return t.renderRow(row)
}

func (t *Table) renderRow(row []cell.TextCell) string {
	padded := make([]cell.TextCell, len(row))
	for i, c := range row {
		w := t.columnWidths[i]
		if t.params.Columns[i].alignRight() {
			padded[i] = c.PadLeft(w)
		} else if i == len(row)-1 {
			padded[i] = c // last column (name) never trails with padding
		} else {
			padded[i] = c.PadRight(w)
		}
	}
	return cell.Join(" ", padded...).Render()
}

// AddFile builds and queues the row for one file, tracking new column
// widths as it goes.
func (t *Table) AddFile(f fsmodel.File) {
	row := t.RowForFile(f)
	for i, c := range row {
		t.trackWidth(i, c.Width)
	}
	t.rows = append(t.rows, row)
}

// RowForFile renders one file's row without queuing it — exposed
// separately so grid-details can build every row once (§4.9 step 1) before
// it knows the final column widths.
func (t *Table) RowForFile(f fsmodel.File) []cell.TextCell {
	row := make([]cell.TextCell, len(t.params.Columns))
	for i, col := range t.params.Columns {
		row[i] = t.cellFor(f, col)
	}
	return row
}

func (t *Table) cellFor(f fsmodel.File, col Column) cell.TextCell {
	th := t.params.Theme.Styles
	e := t.params.Env

	switch col {
	case ColumnPermissions:
		return RenderPermissions(f.Meta, th)
	case ColumnOctalPermissions:
		return RenderOctal(f.Meta.Permissions, th)
	case ColumnHardLinks:
		return renderLinks(f.Links, e, th)
	case ColumnFileSize:
		number, unit := RenderSize(f.Size, t.params.SizeFormat, e, th.Size.Number, th)
		return number.Append(unit)
	case ColumnUser:
		return renderUser(f.User, e, th)
	case ColumnGroup:
		return renderGroup(f.Group, e, th)
	case ColumnTimestamp:
		return renderTimestamp(t.timeFor(f), t.params.TimeFormat, e, th)
	case ColumnInode:
		return cell.NewCell(th.Inode, e.ThousandsSeparated(uint64(f.Inode)))
	case ColumnBlocks:
		return renderBlocks(f.Blocks, f.Meta.FileType, th)
	case ColumnGitStatus:
		return renderGitStatus(t.gitFor(f), th)
	case ColumnName:
		return filename.Paint(f, t.params.Theme, t.params.FileNameOpts)
	default:
		return cell.Plain("")
	}
}

func (t *Table) timeFor(f fsmodel.File) fields.Time {
	switch t.params.TimeField {
	case TimeFieldAccessed:
		return f.Accessed
	case TimeFieldChanged, TimeFieldCreated:
		return f.Created
	default:
		return f.Modified
	}
}

func (t *Table) gitFor(f fsmodel.File) fields.Git {
	if t.params.Git == nil {
		return fields.Git{}
	}
	if f.IsDirectory() {
		return t.params.Git.ForDirectory(f.Path)
	}
	return t.params.Git.For(f.Path)
}

func renderLinks(l fields.Links, e *env.Environment, th theme.UiStyles) cell.TextCell {
	s := th.Links.Normal
	if l.Multiple {
		s = th.Links.MultiLinkFile
	}
	return cell.NewCell(s, e.ThousandsSeparated(l.Count))
}

func renderUser(u fields.UserID, e *env.Environment, th theme.UiStyles) cell.TextCell {
	name := e.Users.UserName(uint32(u))
	s := th.Users.UserNotYou
	if e.Users.CurrentUID() == uint32(u) {
		s = th.Users.UserYou
	}
	return cell.NewCell(s, name)
}

func renderGroup(g fields.GroupID, e *env.Environment, th theme.UiStyles) cell.TextCell {
	name := e.Users.GroupName(uint32(g))
	s := th.Users.GroupNotYours
	if e.Users.IsCurrentUserInGroup(uint32(g)) {
		s = th.Users.GroupYours
	}
	return cell.NewCell(s, name)
}

// renderBlocks shows the block count only for regular files and symlinks
// (§4.7): every other kind renders a dash regardless of what the raw
// lstat reported.
func renderBlocks(b fields.Blocks, ft fields.Type, th theme.UiStyles) cell.TextCell {
	if !b.Valid || (ft != fields.TypeFile && ft != fields.TypeLink) {
		return cell.NewCell(th.Punctuation, "-")
	}
	return cell.NewCell(th.Blocksize, itoa(b.Value))
}

func renderGitStatus(g fields.Git, th theme.UiStyles) cell.TextCell {
	return cell.Join("", gitGlyph(g.Staged, th), gitGlyph(g.Unstaged, th))
}

func gitGlyph(s fields.GitStatus, th theme.UiStyles) cell.TextCell {
	switch s {
	case fields.GitNew:
		return cell.NewCell(th.Git.New, "N")
	case fields.GitModified:
		return cell.NewCell(th.Git.Modified, "M")
	case fields.GitDeleted:
		return cell.NewCell(th.Git.Deleted, "D")
	case fields.GitRenamed:
		return cell.NewCell(th.Git.Renamed, "R")
	case fields.GitTypeChange:
		return cell.NewCell(th.Git.TypeChange, "T")
	case fields.GitIgnored:
		return cell.NewCell(th.Git.Ignored, "I")
	case fields.GitConflicted:
		return cell.NewCell(th.Git.Conflicted, "U")
	default:
		return cell.NewCell(th.Punctuation, "-")
	}
}

func renderTimestamp(t fields.Time, format TimeFormat, e *env.Environment, th theme.UiStyles) cell.TextCell {
	tm := fieldsTimeToGo(t, e.Location)

	var layout string
	switch format {
	case TimeLongISO:
		layout = "%Y-%m-%d %H:%M"
	case TimeFullISO:
		layout = "%Y-%m-%d %H:%M:%S.%9N %z"
	case TimeISO:
		if e.IsCurrentYear(tm) {
			layout = "%m-%d %H:%M"
		} else {
			layout = "%Y-%m-%d"
		}
	default:
		if e.IsCurrentYear(tm) {
			layout = "%e %b %H:%M"
		} else {
			layout = "%e %b  %Y"
		}
	}

	text := strftime.Format(layout, tm)
	return cell.NewCell(th.Date, text)
}

func fieldsTimeToGo(t fields.Time, loc *time.Location) time.Time {
	return time.Unix(t.Seconds, t.Nanoseconds).In(loc)
}

func itoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}
