package git

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// Worktree is one entry of `git worktree list --porcelain`.
type Worktree struct {
	Path       string
	Branch     string // empty only when detached
	Head       string
	Bare       bool
	Locked     bool
	LockReason string
	Prunable   bool
}

// HasBranch reports whether a branch is checked out (false means detached HEAD).
func (w Worktree) HasBranch() bool {
	return w.Branch != ""
}

// ShortHead returns the abbreviated commit hash.
func (w Worktree) ShortHead() string {
	if len(w.Head) > 7 {
		return w.Head[:7]
	}
	return w.Head
}

// DisplayName returns the branch, or "(detached)".
func (w Worktree) DisplayName() string {
	if w.HasBranch() {
		return w.Branch
	}
	return "(detached)"
}

// ParseWorktreeList parses porcelain worktree output. Blocks are separated by
// blank lines and the final block needs no trailing blank line. Unknown lines
// are ignored and blocks without a worktree line are dropped.
func ParseWorktreeList(output string) []Worktree {
	var worktrees []Worktree
	var current Worktree

	flush := func() {
		if current.Path != "" {
			worktrees = append(worktrees, current)
		}
		current = Worktree{}
	}

	for _, line := range splitLines(output) {
		if line == "" {
			flush()
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "worktree":
			current.Path = value
		case "HEAD":
			current.Head = value
		case "branch":
			current.Branch = branchName(value)
		case "bare":
			current.Bare = true
		case "locked":
			current.Locked = true
			current.LockReason = value
		case "prunable":
			current.Prunable = true
		}
	}
	flush()

	return worktrees
}

// branchName strips refs/heads/ from a full ref; other refs are kept verbatim.
func branchName(ref string) string {
	name := plumbing.ReferenceName(ref)
	if name.IsBranch() {
		return name.Short()
	}
	return ref
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
