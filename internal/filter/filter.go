// Package filter implements the dotfile/glob/gitignore/only-dirs filtering
// and the sort comparators exa applies to a directory's entries before
// rendering — the Go shape of `original_source/src/fs/filter.rs`.
package filter

import (
	"sort"
	"strings"

	"github.com/dylanreedx/exa-go/internal/fsmodel"
)

// DotFilter controls which dotfiles show up, mirroring exa's three-level
// --all handling (bare files, -a, -a -a).
type DotFilter int

const (
	DotFilterJustFiles DotFilter = iota
	DotFilterDotfiles
	DotFilterDotfilesAndDotDot
)

type SortCase int

const (
	SortCaseSensitive SortCase = iota
	SortCaseInsensitive
)

// SortField selects which comparator sortFiles uses, matching SortField in
// the original one-for-one.
type SortField int

const (
	SortUnsorted SortField = iota
	SortName
	SortExtension
	SortSize
	SortFileInode
	SortModifiedDate
	SortAccessedDate
	SortCreatedDate
	SortFileType
)

// Options is everything the filter/sort stage needs, gathered from the
// parsed CLI flags.
type Options struct {
	ListDirsFirst   bool
	SortField       SortField
	SortCase        SortCase
	Reverse         bool
	DotFilter       DotFilter
	OnlyDirs        bool
	UseGitIgnore    bool
	IgnorePatterns  []string
	GitIgnoreChecker func(path string) bool // nil if --git-ignore isn't set
}

// Apply copies the entries that survive filtering (dotfiles, ignore-glob
// matches, gitignore matches, only-dirs) into a new slice, leaving entries
// untouched, and returns it freshly sorted — filtering never
// mutates order, sorting is always a separate pass, matching
// `filter_child_files` + `sort_files` being two distinct steps upstream.
func Apply(entries []fsmodel.File, opts Options) []fsmodel.File {
	kept := make([]fsmodel.File, 0, len(entries))
	for _, f := range entries {
		if !keep(f, opts) {
			continue
		}
		kept = append(kept, f)
	}
	return Sort(kept, opts)
}

func keep(f fsmodel.File, opts Options) bool {
	if f.IsDotfile() && opts.DotFilter == DotFilterJustFiles {
		return false
	}
	if opts.OnlyDirs && !f.IsDirectory() {
		return false
	}
	if isIgnored(f.Name, opts.IgnorePatterns) {
		return false
	}
	if opts.GitIgnoreChecker != nil && opts.GitIgnoreChecker(f.Path) {
		return false
	}
	return true
}

func isIgnored(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := matchGlob(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Sort applies the chosen comparator, then reverses if asked, then does a
// *stable* secondary pass putting directories first if requested — the
// stability is load-bearing: it's what lets the dirs-first pass preserve
// whatever order the primary sort already established among files of the
// same directory-ness, matching `sort_files`'s two-stage stable sort.
func Sort(entries []fsmodel.File, opts Options) []fsmodel.File {
	out := append([]fsmodel.File{}, entries...)

	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j], opts) < 0
	})

	if opts.Reverse {
		reverse(out)
	}

	if opts.ListDirsFirst {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsDirectory() && !out[j].IsDirectory()
		})
	}

	return out
}

func reverse(fs []fsmodel.File) {
	for i, j := 0, len(fs)-1; i < j; i, j = i+1, j-1 {
		fs[i], fs[j] = fs[j], fs[i]
	}
}

func compare(a, b fsmodel.File, opts Options) int {
	switch opts.SortField {
	case SortUnsorted:
		return 0
	case SortName:
		return compareNames(a.Name, b.Name, opts.SortCase)
	case SortExtension:
		if c := strings.Compare(a.Extension(), b.Extension()); c != 0 {
			return c
		}
		return compareNames(a.Name, b.Name, opts.SortCase)
	case SortSize:
		as, aok := a.Size.Bytes()
		bs, bok := b.Size.Bytes()
		if !aok {
			as = 0
		}
		if !bok {
			bs = 0
		}
		return cmpUint64(as, bs)
	case SortFileInode:
		return cmpUint64(uint64(a.Inode), uint64(b.Inode))
	case SortModifiedDate:
		return a.Modified.Compare(b.Modified)
	case SortAccessedDate:
		return a.Accessed.Compare(b.Accessed)
	case SortCreatedDate:
		return a.Created.Compare(b.Created)
	case SortFileType:
		if c := int(a.Meta.FileType) - int(b.Meta.FileType); c != 0 {
			return c
		}
		return compareNames(a.Name, b.Name, opts.SortCase)
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareNames uses natural (digit-run-aware) ordering so "file2" sorts
// before "file10", matching natord::compare upstream.
func compareNames(a, b string, c SortCase) int {
	if c == SortCaseInsensitive {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	return NaturalCompare(a, b)
}
