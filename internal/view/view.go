// Package view is the dispatcher that turns a resolved Config plus a list
// of command-line paths into rendered output: it decides loose-file vs
// directory handling, drives --recurse/--tree, and picks which of the
// four renderers (lines, grid, details, grid-details) paints each
// listing — the Go shape of `original_source/src/main.rs`'s two-pass
// `Exa::run`.
package view

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/dylanreedx/exa-go/internal/adapters/gitignore"
	"github.com/dylanreedx/exa-go/internal/adapters/gitstatus"
	"github.com/dylanreedx/exa-go/internal/adapters/stat"
	"github.com/dylanreedx/exa-go/internal/cell"
	"github.com/dylanreedx/exa-go/internal/env"
	"github.com/dylanreedx/exa-go/internal/fields"
	"github.com/dylanreedx/exa-go/internal/filter"
	"github.com/dylanreedx/exa-go/internal/fsmodel"
	"github.com/dylanreedx/exa-go/internal/icons"
	"github.com/dylanreedx/exa-go/internal/options"
	"github.com/dylanreedx/exa-go/internal/render/details"
	"github.com/dylanreedx/exa-go/internal/render/filename"
	"github.com/dylanreedx/exa-go/internal/render/grid"
	"github.com/dylanreedx/exa-go/internal/render/griddetails"
	"github.com/dylanreedx/exa-go/internal/render/tree"
	"github.com/dylanreedx/exa-go/internal/theme"
	"github.com/dylanreedx/exa-go/internal/xlog"
)

// Exit codes, per §7.
const (
	ExitOK           = 0
	ExitOutputError  = 1
	ExitFileError    = 2
	ExitOptionsError = 3
)

// Dispatcher holds everything a run needs besides the path list itself.
type Dispatcher struct {
	Config options.Config
	Theme  theme.Theme
	Env    *env.Environment
	Out    io.Writer

	git *gitstatus.Statuses
}

// New prepares a Dispatcher, eagerly loading the git status cache once
// (§5: "either the cache is populated up front ... or an exclusive lock
// is held only across the update window" — here we take the simpler,
// populated-up-front branch) when --git was requested.
func New(cfg options.Config, th theme.Theme, e *env.Environment, out io.Writer, gitRoot string) *Dispatcher {
	d := &Dispatcher{Config: cfg, Theme: th, Env: e, Out: out}
	if cfg.ShowGit {
		if statuses, err := gitstatus.Load(gitRoot); err == nil && statuses != nil {
			rebased := statuses.Rebase(gitRoot)
			d.git = &rebased
		}
	}
	icons.SetNerdFonts(false)
	return d
}

// Run renders every positional path and returns the process's exit code:
// ExitFileError if any path or directory could not be read, else ExitOK;
// a failed write returns ExitOutputError at once (ExitOK for a broken
// pipe). Option errors are reported before Run is ever called, at Deduce
// time.
func (d *Dispatcher) Run(paths []string) int {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var loose []fsmodel.File
	var dirs []string
	exit := ExitOK

	for _, p := range paths {
		// A positional argument is stat'd, not lstat'd: a symlink on the
		// command line is classified (and rendered) by what it points at,
		// matching `File::from_args` upstream.
		info, err := stat.Stat(p)
		if err != nil {
			fmt.Fprintf(d.Out, "%s: %v\n", p, err)
			exit = worse(exit, ExitFileError)
			continue
		}

		if info.PermissionsPlus.FileType == fields.TypeDirectory && d.Config.DirAction != options.DirListAsFile {
			dirs = append(dirs, p)
			continue
		}

		loose = append(loose, fsmodel.File{
			Name:      filepath.Base(p),
			Path:      p,
			ParentDir: filepath.Dir(p),
			Meta:      info.PermissionsPlus,
			Size:      info.Size,
			Links:     info.Links,
			Inode:     info.Inode,
			Blocks:    info.Blocks,
			User:      info.User,
			Group:     info.Group,
			Modified:  info.Modified,
			Accessed:  info.Accessed,
			Created:   info.Created,
		})
	}

	shownMultiple := len(loose) > 0 && len(dirs) > 0 || len(dirs) > 1

	if len(loose) > 0 {
		if err := d.renderListing(loose); err != nil {
			if brokenPipe(err) {
				return ExitOK
			}
			return ExitOutputError
		}
	}

	for i, dir := range dirs {
		if i > 0 || len(loose) > 0 {
			fmt.Fprintln(d.Out)
		}
		if err := d.runDirectory(dir, shownMultiple); err != nil {
			if brokenPipe(err) {
				return ExitOK
			}
			var re *readError
			if errors.As(err, &re) {
				exit = worse(exit, ExitFileError)
				continue
			}
			return ExitOutputError
		}
	}

	return exit
}

func worse(a, b int) int {
	if b > a {
		return b
	}
	return a
}

// readError marks an error as coming from stat/readdir rather than from
// writing to Out, so Run can tell the two apart and pick the right exit
// code for each (§7: file errors are non-fatal and bump the code to 2,
// output errors are fatal).
type readError struct{ err error }

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

// brokenPipe reports whether err is EPIPE, i.e. the reader on the other
// end of stdout went away (`head`, `less -q` and so on quitting early).
// Per §7 that's mapped to a clean exit rather than treated as a failure.
func brokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}

// runDirectory handles a single top-level directory argument: plain
// listing, --recurse (independent listings per subdirectory), or --tree
// (one listing, trunk-prefixed).
func (d *Dispatcher) runDirectory(path string, withHeader bool) error {
	ignore := d.loadIgnoreMatcher(path)

	switch d.Config.DirAction {
	case options.DirTree:
		return d.runTree(path, withHeader, ignore)
	case options.DirRecurse:
		return d.runRecurse(path, withHeader, ignore, 0)
	default:
		entries, err := d.readFilteredDir(path, ignore)
		if err != nil {
			fmt.Fprintf(d.Out, "%s: %v\n", path, err)
			return &readError{err}
		}
		if withHeader {
			fmt.Fprintf(d.Out, "%s:\n", path)
		}
		return d.renderListing(entries)
	}
}

func (d *Dispatcher) runRecurse(path string, withHeader bool, ignore *gitignore.Matcher, depth int) error {
	entries, err := d.readFilteredDir(path, ignore)
	if err != nil {
		fmt.Fprintf(d.Out, "%s: %v\n", path, err)
		return &readError{err}
	}
	if withHeader {
		fmt.Fprintf(d.Out, "%s:\n", path)
	}
	if err := d.renderListing(entries); err != nil {
		return err
	}

	if d.Config.Level > 0 && depth+1 >= d.Config.Level {
		return nil
	}

	var subdirs []string
	for _, f := range entries {
		if f.IsDirectory() && !f.IsDotfile() {
			subdirs = append(subdirs, f.Path)
		}
	}
	sort.Strings(subdirs)

	for _, sub := range subdirs {
		if d.recurseFilter(sub, ignore) {
			continue
		}
		fmt.Fprintln(d.Out)
		if err := d.runRecurse(sub, true, ignore, depth+1); err != nil {
			var re *readError
			if errors.As(err, &re) {
				xlog.Warn("recursing into %s: %v", sub, err)
				continue
			}
			return err // write errors (incl. broken pipe) abort the whole walk
		}
	}
	return nil
}

// runTree renders one single listing per top-level argument, with every
// row prefixed by the tree trunk's glyphs for its depth.
func (d *Dispatcher) runTree(path string, withHeader bool, ignore *gitignore.Matcher) error {
	if withHeader {
		fmt.Fprintf(d.Out, "%s:\n", path)
	}

	trunk := &tree.Trunk{}
	return d.walkTree(path, 0, trunk, ignore)
}

func (d *Dispatcher) walkTree(path string, depth int, trunk *tree.Trunk, ignore *gitignore.Matcher) error {
	entries, err := d.readFilteredDir(path, ignore)
	if err != nil {
		fmt.Fprintf(d.Out, "%s: %v\n", path, err)
		return &readError{err}
	}

	for i, f := range entries {
		isLast := i == len(entries)-1
		prefix := trunk.NewRow(tree.Params{Depth: depth, Last: isLast})
		if err := d.writeTreeRow(prefix, f); err != nil {
			return err
		}

		if f.IsDirectory() && !f.IsDotfile() {
			if d.recurseFilter(f.Path, ignore) {
				continue
			}
			if d.Config.Level == 0 || depth+1 < d.Config.Level {
				if err := d.walkTree(f.Path, depth+1, trunk, ignore); err != nil {
					var re *readError
					if errors.As(err, &re) {
						xlog.Warn("recursing into %s: %v", f.Path, err)
						continue
					}
					return err
				}
			}
		}
	}
	return nil
}

func (d *Dispatcher) writeTreeRow(prefix []tree.Part, f fsmodel.File) error {
	row := cell.Plain("")
	for _, part := range prefix {
		row = row.Append(cell.Plain(part.ASCIIArt()))
	}
	row = row.Append(filename.Paint(f, d.Theme, d.fileNameOpts()))
	_, err := fmt.Fprintln(d.Out, row.Render())
	return err
}

// recurseFilter is the supplemented git-ignore-pruning behavior: a
// directory that's wholly ignored is skipped before its readdir call.
func (d *Dispatcher) recurseFilter(path string, ignore *gitignore.Matcher) bool {
	if ignore == nil {
		return false
	}
	rel, err := filepath.Rel(filepath.Dir(path), path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return ignore.IsIgnored(rel, true)
}

func (d *Dispatcher) loadIgnoreMatcher(path string) *gitignore.Matcher {
	if !d.Config.Filter.UseGitIgnore {
		return nil
	}
	m, err := gitignore.Load(path)
	if err != nil {
		xlog.Warn("loading gitignore under %s: %v", path, err)
		return nil
	}
	return m
}

func (d *Dispatcher) readFilteredDir(path string, ignore *gitignore.Matcher) ([]fsmodel.File, error) {
	dir, err := fsmodel.ReadDir(path)
	if err != nil && len(dir.Entries) == 0 {
		return nil, err
	}

	opts := d.Config.Filter
	if ignore != nil {
		opts.GitIgnoreChecker = func(p string) bool {
			rel, relErr := filepath.Rel(path, p)
			if relErr != nil {
				rel = filepath.Base(p)
			}
			return ignore.IsIgnored(rel, false)
		}
	}

	return filter.Apply(dir.Entries, opts), nil
}

// renderListing paints one batch of files (loose files, or one
// directory's entries) with whichever renderer Config.View selects.
func (d *Dispatcher) renderListing(files []fsmodel.File) error {
	switch d.Config.View {
	case options.ViewLines:
		return d.renderLines(files)
	case options.ViewGrid:
		return d.renderGrid(files)
	case options.ViewGridDetails:
		return d.renderGridDetails(files)
	default:
		return d.renderDetails(files)
	}
}

func (d *Dispatcher) renderLines(files []fsmodel.File) error {
	for _, f := range files {
		_, err := fmt.Fprintln(d.Out, filename.Paint(f, d.Theme, d.fileNameOpts()).Render())
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) renderGrid(files []fsmodel.File) error {
	cells := make([]cell.TextCell, len(files))
	for i, f := range files {
		cells[i] = filename.Paint(f, d.Theme, d.fileNameOpts())
	}

	width := d.Config.TerminalWidth
	dir := grid.TopToBottom
	if d.Config.Across {
		dir = grid.LeftToRight
	}
	fit, ok := grid.Compute(cells, width, dir)
	if !ok {
		// File names too long for a grid at this width: drop down to
		// one per line rather than print an overflowing single column.
		return d.renderLines(files)
	}

	for row := 0; row < fit.Rows; row++ {
		line := cell.TextCell{}
		for col := 0; col < fit.Columns; col++ {
			idx := indexAt(fit, row, col)
			if idx >= len(cells) {
				continue
			}
			c := cells[idx]
			if col < fit.Columns-1 {
				c = c.PadRight(fit.ColumnWidths[col] + 2)
			}
			line = line.Append(c)
		}
		if _, err := fmt.Fprintln(d.Out, line.Render()); err != nil {
			return err
		}
	}
	return nil
}

func indexAt(fit grid.Fit, row, col int) int {
	if fit.Direction == grid.LeftToRight {
		return row*fit.Columns + col
	}
	return col*fit.Rows + row
}

func (d *Dispatcher) renderDetails(files []fsmodel.File) error {
	t := details.NewTable(d.detailsParams())
	for _, f := range files {
		t.AddFile(f)
	}
	for _, line := range t.Render() {
		if _, err := fmt.Fprintln(d.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) renderGridDetails(files []fsmodel.File) error {
	dir := grid.TopToBottom
	if d.Config.Across {
		dir = grid.LeftToRight
	}
	lines := griddetails.Render(files, griddetails.Params{
		Details:       d.detailsParams(),
		Direction:     dir,
		TerminalWidth: d.Config.TerminalWidth,
		RowsThreshold: d.Config.GridRowsThreshold,
	})
	for _, line := range lines {
		if _, err := fmt.Fprintln(d.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) detailsParams() details.Params {
	return details.Params{
		Columns:      d.detailsColumns(),
		Theme:        d.Theme,
		Env:          d.Env,
		SizeFormat:   d.sizeFormat(),
		TimeFormat:   d.timeFormat(),
		TimeField:    d.timeField(),
		FileNameOpts: d.fileNameOpts(),
		Git:          d.git,
		ShowHeader:   d.Config.Header,
	}
}

func (d *Dispatcher) timeField() details.TimeField {
	switch d.Config.TimeField {
	case options.TimeAccessed:
		return details.TimeFieldAccessed
	case options.TimeChanged:
		return details.TimeFieldChanged
	case options.TimeCreated:
		return details.TimeFieldCreated
	default:
		return details.TimeFieldModified
	}
}

func (d *Dispatcher) detailsColumns() []details.Column {
	cfg := d.Config
	var cols []details.Column

	if !cfg.NoPermissions {
		if cfg.OctalPerms {
			cols = append(cols, details.ColumnOctalPermissions)
		} else {
			cols = append(cols, details.ColumnPermissions)
		}
	}
	if cfg.ShowLinks {
		cols = append(cols, details.ColumnHardLinks)
	}
	if !cfg.NoFilesize {
		cols = append(cols, details.ColumnFileSize)
	}
	if !cfg.NoUser {
		cols = append(cols, details.ColumnUser)
	}
	if cfg.ShowGroup {
		cols = append(cols, details.ColumnGroup)
	}
	if !cfg.NoTime {
		cols = append(cols, details.ColumnTimestamp)
	}
	if cfg.ShowInode {
		cols = append(cols, details.ColumnInode)
	}
	if cfg.ShowBlocks {
		cols = append(cols, details.ColumnBlocks)
	}
	if cfg.ShowGit {
		cols = append(cols, details.ColumnGitStatus)
	}
	cols = append(cols, details.ColumnName)
	return cols
}

func (d *Dispatcher) sizeFormat() details.SizeFormat {
	switch {
	case d.Config.Binary:
		return details.SizeBinaryBytes
	case d.Config.RawBytes:
		return details.SizeJustBytes
	default:
		return details.SizeDecimalBytes
	}
}

func (d *Dispatcher) timeFormat() details.TimeFormat {
	switch d.Config.TimeStyle {
	case options.TimeStyleISO:
		return details.TimeISO
	case options.TimeStyleLongISO:
		return details.TimeLongISO
	case options.TimeStyleFullISO:
		return details.TimeFullISO
	default:
		return details.TimeDefault
	}
}

func (d *Dispatcher) fileNameOpts() filename.Options {
	classify := filename.JustFilenames
	if d.Config.Classify {
		classify = filename.AddFileIndicators
	}
	return filename.Options{
		Classify:  classify,
		LinkStyle: filename.LinkJustFilenames,
		ShowIcons: d.Config.ShowIcons,
	}
}
