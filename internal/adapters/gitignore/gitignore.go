// Package gitignore answers the gitignore-matcher contract (§6) for real,
// using go-git's pattern matcher instead of a hand-rolled glob engine.
package gitignore

import (
	"os"
	"path/filepath"
	"strings"

	gogitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Matcher decides whether a path is ignored, consulting every .gitignore
// found between repoRoot and the path's directory.
type Matcher struct {
	patterns []gogitignore.Pattern
}

// Load reads .gitignore files from repoRoot down to every directory under
// it, matching the original's "patterns are matched per-directory
// relative to the .gitignore file's parent" contract by tracking each
// pattern's domain (the directory components it was loaded under).
func Load(repoRoot string) (*Matcher, error) {
	var patterns []gogitignore.Pattern

	err := filepath.WalkDir(repoRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree: skip it, not fatal
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() != ".gitignore" {
			return nil
		}

		rel, relErr := filepath.Rel(repoRoot, filepath.Dir(path))
		if relErr != nil {
			return nil
		}
		var domain []string
		if rel != "." {
			domain = strings.Split(rel, string(filepath.Separator))
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gogitignore.ParsePattern(line, domain))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Matcher{patterns: patterns}, nil
}

// IsIgnored reports whether path (relative to the matcher's repo root) is
// ignored, scanning patterns in reverse so a later, more specific rule
// overrides an earlier one — the same last-match-wins semantics
// gitignore itself uses.
func (m *Matcher) IsIgnored(path string, isDir bool) bool {
	if m == nil {
		return false
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i := len(m.patterns) - 1; i >= 0; i-- {
		if res := m.patterns[i].Match(parts, isDir); res != gogitignore.NoMatch {
			return res == gogitignore.Exclude
		}
	}
	return false
}
