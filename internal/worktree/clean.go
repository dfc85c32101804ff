package worktree

import (
	"fmt"
	"strings"

	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/logger"
)

const (
	ReasonMergedAndGone = "merged + upstream gone"
	ReasonMerged        = "merged"
	ReasonGone          = "upstream gone"
)

type CleanOptions struct {
	// Check reports candidates without removing anything.
	Check bool
}

// CleanCandidate is a worktree whose branch is merged or lost its upstream.
type CleanCandidate struct {
	Worktree git.Worktree
	Reason   string
}

// CleanReason labels a branch for cleanup; empty means keep it.
func CleanReason(merged, gone bool) string {
	switch {
	case merged && gone:
		return ReasonMergedAndGone
	case merged:
		return ReasonMerged
	case gone:
		return ReasonGone
	default:
		return ""
	}
}

// FindCleanCandidates selects every non-bare worktree on a branch other than
// the configured default branch that is merged into it or has a gone upstream.
func FindCleanCandidates(env *Env) ([]CleanCandidate, error) {
	log := logger.WithOperation("clean")

	worktrees, err := env.Git.Worktrees()
	if err != nil {
		return nil, err
	}
	branches, err := env.Git.Branches()
	if err != nil {
		return nil, err
	}

	defaultBranch := env.Settings.DefaultSourceBranch()

	var candidates []CleanCandidate
	for _, wt := range worktrees {
		if wt.Bare || !wt.HasBranch() || wt.Branch == defaultBranch {
			continue
		}

		merged, err := env.Git.IsMerged(wt.Branch, defaultBranch)
		if err != nil {
			log.Debug("merge check failed", "branch", wt.Branch, "error", err)
			merged = false
		}
		b, _ := git.FindBranch(branches, wt.Branch)

		if reason := CleanReason(merged, b.Gone); reason != "" {
			candidates = append(candidates, CleanCandidate{Worktree: wt, Reason: reason})
		}
	}

	return candidates, nil
}

// Clean removes the worktrees and branches FindCleanCandidates selects. A
// failed worktree removal skips that candidate; a failed branch deletion is
// only a warning.
func Clean(env *Env, opts CleanOptions) (string, error) {
	candidates, err := FindCleanCandidates(env)
	if err != nil {
		return "", err
	}

	if len(candidates) == 0 {
		return "No worktrees to clean.", nil
	}

	if opts.Check {
		var b strings.Builder
		b.WriteString("Would remove:")
		for _, c := range candidates {
			fmt.Fprintf(&b, "\n  %s (%s) at %s", c.Worktree.Branch, c.Reason, c.Worktree.Path)
		}
		return b.String(), nil
	}

	var cleaned []string
	for _, c := range candidates {
		branch := c.Worktree.Branch
		env.Out.Progress("Removing %s (%s)...", branch, c.Reason)

		if err := RemoveWorktree(env, c.Worktree, ForceNone); err != nil {
			env.Out.Warning("failed to remove worktree %s: %v", branch, err)
			continue
		}
		if err := env.Git.DeleteBranch(branch, false); err != nil {
			env.Out.Warning("failed to delete branch %s: %v", branch, err)
		}
		cleaned = append(cleaned, branch)
	}

	if len(cleaned) == 0 {
		return "No worktrees were cleaned.", nil
	}
	return "Cleaned: " + joinNames(cleaned), nil
}
