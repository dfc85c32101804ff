package worktree

import (
	"strings"

	"github.com/sqve/arbor/internal/formatter"
)

type ListOptions struct {
	// Quiet prints only paths, one per line.
	Quiet bool
	// Width truncates long paths to fit; zero disables truncation.
	Width int
}

// List renders every registered worktree.
func List(env *Env, opts ListOptions) (string, error) {
	worktrees, err := env.Git.Worktrees()
	if err != nil {
		return "", err
	}

	if opts.Quiet {
		paths := make([]string, 0, len(worktrees))
		for _, wt := range worktrees {
			paths = append(paths, wt.Path)
		}
		return strings.Join(paths, "\n"), nil
	}

	if len(worktrees) == 0 {
		return "No worktrees found.", nil
	}
	return strings.Join(formatter.WorktreeRows(worktrees, opts.Width), "\n"), nil
}
