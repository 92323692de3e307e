package gitstatus

import (
	"testing"

	"github.com/dylanreedx/exa-go/internal/fields"
)

func TestParseChar(t *testing.T) {
	cases := map[byte]fields.GitStatus{
		'M': fields.GitModified,
		'A': fields.GitNew,
		'D': fields.GitDeleted,
		'R': fields.GitRenamed,
		'T': fields.GitTypeChange,
		'U': fields.GitConflicted,
		'!': fields.GitIgnored,
	}
	for c, want := range cases {
		if got := parseChar(c); got != want {
			t.Errorf("parseChar(%q) = %v, want %v", c, got, want)
		}
	}
}

func TestForReturnsExactPathStatus(t *testing.T) {
	s := Statuses{
		"src/main.go": {Staged: fields.GitNew, Unstaged: fields.GitNotModified},
	}
	if got := s.For("src/main.go"); got.Staged != fields.GitNew {
		t.Fatalf("expected GitNew, got %+v", got)
	}
	if got := s.For("src/other.go"); got != (fields.Git{}) {
		t.Fatalf("expected zero value for an untracked path, got %+v", got)
	}
}

func TestForDirectoryFoldsDescendants(t *testing.T) {
	s := Statuses{
		"src/a.go": {Staged: fields.GitNotModified, Unstaged: fields.GitModified},
		"src/b.go": {Staged: fields.GitNew, Unstaged: fields.GitNotModified},
		"docs/readme.md": {Staged: fields.GitDeleted, Unstaged: fields.GitNotModified},
	}

	got := s.ForDirectory("src")
	if got.Unstaged != fields.GitModified && got.Unstaged != fields.GitNotModified {
		t.Fatalf("unexpected unstaged fold for src: %v", got.Unstaged)
	}
	if got.Staged == fields.GitNotModified {
		t.Fatalf("expected src's fold to surface at least one staged change, got none")
	}

	root := s.ForDirectory("")
	if root.Staged == fields.GitNotModified {
		t.Fatal("expected repo-root fold to see every descendant's staged status")
	}
}

func TestRebaseReKeysToAbsolutePaths(t *testing.T) {
	s := Statuses{"a.go": {Staged: fields.GitModified}}
	rebased := s.Rebase("/repo")
	got, ok := rebased["/repo/a.go"]
	if !ok {
		t.Fatalf("expected /repo/a.go to be present, got keys %v", keysOf(rebased))
	}
	if got.Staged != fields.GitModified {
		t.Fatalf("expected staged status to survive rebasing, got %+v", got)
	}
}

func keysOf(s Statuses) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}
