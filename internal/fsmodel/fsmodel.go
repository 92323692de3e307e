// Package fsmodel is the file/directory data model: resolving a path's
// metadata into the fields package's value types, including symlink target
// resolution and a bounded worker pool for stat-heavy directories — the Go
// shape of `original_source/src/fs/file.rs` and `src/fs/dir.rs`.
package fsmodel

import (
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/dylanreedx/exa-go/internal/adapters/stat"
	"github.com/dylanreedx/exa-go/internal/fields"
)

// LinkTarget is the sum type of a symlink's resolution: Ok (points at a
// real, stat-able file), Broken (points nowhere, or the readlink target is
// itself unreachable), or Err (the readlink call itself failed).
type LinkTargetKind int

const (
	LinkOk LinkTargetKind = iota
	LinkBroken
	LinkErr
)

type LinkTarget struct {
	Kind   LinkTargetKind
	Path   string
	Target *File // non-nil only when Kind == LinkOk
	Err    error
}

// File is one directory entry's fully-resolved metadata.
type File struct {
	Name      string
	Path      string
	ParentDir string

	Meta fields.PermissionsPlus
	Size fields.Size
	Links fields.Links
	Inode fields.Inode
	Blocks fields.Blocks
	User  fields.UserID
	Group fields.GroupID
	Modified, Accessed, Created fields.Time

	IsSymlink  bool
	LinkTarget *LinkTarget

	Git fields.Git
}

// Extension returns the lowercased suffix after the last '.', or "" if the
// name has none (or is all-suffix, like ".gitignore").
func (f File) Extension() string {
	name := f.Name
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return ""
	}
	return strings.ToLower(name[dot+1:])
}

func (f File) IsDirectory() bool { return f.Meta.FileType == fields.TypeDirectory }

func (f File) IsDotfile() bool { return strings.HasPrefix(f.Name, ".") }

// Dir is a directory's entries plus enough of its own identity (its path)
// to build child paths and headers.
type Dir struct {
	Path    string
	Entries []File
}

// ReadDir lists a directory's immediate children and stats each one
// concurrently, bounded by the number of logical CPUs — the Go shape of
// the original's scoped-thread worker pool in `src/fs/dir.rs`.
func ReadDir(path string) (Dir, error) {
	names, err := stat.ReadDirNames(path)
	if err != nil {
		return Dir{}, err
	}

	entries := make([]File, len(names))
	errs := make([]error, len(names))

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > len(names) {
		workers = len(names)
	}

	var wg sync.WaitGroup
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				name := names[i]
				full := filepath.Join(path, name)
				f, statErr := BuildFile(name, full, path)
				entries[i] = f
				errs[i] = statErr
			}
		}()
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Surface the first stat failure alongside every entry: a per-entry
	// stat error doesn't abort the whole directory, and an entry whose
	// lstat failed keeps only its name and paths, with zero-valued metadata.
	var firstErr error
	for _, e := range errs {
		if e != nil && firstErr == nil {
			firstErr = e
		}
	}
	return Dir{Path: path, Entries: entries}, firstErr
}

// BuildFile stats a single path (lstat, so symlinks are reported as
// symlinks rather than followed) and resolves its fields.
func BuildFile(name, fullPath, parentDir string) (File, error) {
	info, err := stat.Lstat(fullPath)
	if err != nil {
		return File{Name: name, Path: fullPath, ParentDir: parentDir}, err
	}

	f := File{
		Name:      name,
		Path:      fullPath,
		ParentDir: parentDir,
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
		IsSymlink: info.PermissionsPlus.FileType == fields.TypeLink,
	}

	if f.IsSymlink {
		f.LinkTarget = resolveLink(fullPath)
	}

	return f, nil
}

func resolveLink(path string) *LinkTarget {
	target, err := stat.Readlink(path)
	if err != nil {
		return &LinkTarget{Kind: LinkErr, Err: err}
	}

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(path), resolved)
	}

	info, statErr := stat.Stat(resolved)
	if statErr != nil {
		return &LinkTarget{Kind: LinkBroken, Path: target}
	}

	targetFile := File{
		Name:      filepath.Base(resolved),
		Path:      resolved,
		ParentDir: filepath.Dir(resolved),
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
	}

	return &LinkTarget{Kind: LinkOk, Path: target, Target: &targetFile}
}

// SortNames sorts names in place in plain lexical order. ReadDir does not
// call it; filter.Sort applies the user's chosen field.
func SortNames(names []string) {
	sort.Strings(names)
}
