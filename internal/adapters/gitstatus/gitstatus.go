// Package gitstatus answers the git provider contract (§6): given a repo
// root, a mapping from path prefix to (staged, unstaged) status, with
// directory status folded from its descendants. Adapted from the
// teacher's git/status.go, which shelled out to the same porcelain
// command for its own staged/unstaged file list.
package gitstatus

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dylanreedx/exa-go/internal/fields"
)

// RunGit shells out to the git CLI in repoPath, ported from the teacher's
// git.go RunGit helper.
func RunGit(repoPath string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Statuses maps a path (relative to the repo root) to its git field.
type Statuses map[string]fields.Git

// Load runs `git status --porcelain -uall` in repoPath and returns the
// per-path staged/unstaged status map, or (nil, nil) if repoPath isn't
// inside a git repository at all (the no-data half of the contract).
func Load(repoPath string) (Statuses, error) {
	out, err := RunGit(repoPath, "rev-parse", "--is-inside-work-tree")
	if err != nil || out != "true" {
		return nil, nil
	}

	porcelain, err := RunGit(repoPath, "status", "--porcelain", "-uall")
	if err != nil {
		return nil, err
	}

	statuses := Statuses{}
	if porcelain == "" {
		return statuses, nil
	}

	for _, line := range strings.Split(porcelain, "\n") {
		if len(line) < 4 {
			continue
		}
		indexStatus := line[0]
		worktreeStatus := line[1]
		path := line[3:]
		if idx := strings.Index(path, " -> "); idx != -1 {
			path = path[idx+4:]
		}

		g := statuses[path]
		if indexStatus != ' ' && indexStatus != '?' {
			g.Staged = parseChar(indexStatus)
		}
		if worktreeStatus == '?' {
			g.Unstaged = fields.GitNew
		} else if worktreeStatus != ' ' {
			g.Unstaged = parseChar(worktreeStatus)
		}
		statuses[path] = g
	}

	return statuses, nil
}

func parseChar(c byte) fields.GitStatus {
	switch c {
	case 'M':
		return fields.GitModified
	case 'A':
		return fields.GitNew
	case 'D':
		return fields.GitDeleted
	case 'R':
		return fields.GitRenamed
	case 'T':
		return fields.GitTypeChange
	case 'U':
		return fields.GitConflicted
	case '!':
		return fields.GitIgnored
	default:
		return fields.GitModified
	}
}

// ForDirectory folds every file status under dir (a path relative to the
// repo root) into a single pair, per §6: "Directory status is the fold of
// a|b across all descendant file statuses."
func (s Statuses) ForDirectory(dir string) fields.Git {
	var out fields.Git
	prefix := dir
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	for path, g := range s {
		if prefix != "" && !strings.HasPrefix(path, prefix) {
			continue
		}
		out.Staged = out.Staged.Fold(g.Staged)
		out.Unstaged = out.Unstaged.Fold(g.Unstaged)
	}
	return out
}

// For returns the status for a single path relative to the repo root.
func (s Statuses) For(path string) fields.Git { return s[filepath.ToSlash(path)] }

// Rebase re-keys a repo-relative Statuses map to absolute paths under
// repoRoot, so callers that only ever see fsmodel.File.Path (always
// absolute) can look statuses up directly instead of re-deriving each
// file's path relative to whatever repo it happens to live in.
func (s Statuses) Rebase(repoRoot string) Statuses {
	out := make(Statuses, len(s))
	for rel, g := range s {
		out[filepath.Join(repoRoot, rel)] = g
	}
	return out
}
