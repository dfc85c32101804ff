package worktree

import (
	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/fs"
	"github.com/sqve/arbor/internal/git"
)

type SyncOptions struct {
	// All syncs every non-bare worktree instead of only the current one.
	All bool
	// Source names the branch whose worktree provides the files; empty means
	// the repository root.
	Source string
}

// Sync re-creates missing symlinks, and optionally submodules, in existing
// worktrees.
func Sync(env *Env, opts SyncOptions) (string, error) {
	worktrees, err := env.Git.Worktrees()
	if err != nil {
		return "", err
	}

	sourceDir := env.RepoRoot
	if opts.Source != "" {
		wt, ok := git.FindWorktree(worktrees, opts.Source)
		if !ok {
			return "", arborerrors.ErrWorktreeNotFound(opts.Source)
		}
		sourceDir = wt.Path
	}

	targets := syncTargets(worktrees, sourceDir, env.Cwd, opts.All)
	if len(targets) == 0 {
		return "No worktrees to sync.", nil
	}

	patterns := env.Settings.AllSymlinks()
	var synced []string
	for _, wt := range targets {
		name := wt.DisplayName()

		created, err := env.Links.Sync(sourceDir, wt.Path, patterns)
		if err != nil {
			return "", err
		}
		if len(created) > 0 {
			env.Out.Progress("Synced %s: %s", name, joinNames(created))
		}

		if env.Settings.InitSubmodules {
			if err := env.Git.InitSubmodules(wt.Path, env.Settings.SubmoduleReference); err != nil {
				env.Out.Warning("submodule init failed for %s: %v", name, err)
			}
		}

		synced = append(synced, name)
	}

	return "Synced: " + joinNames(synced), nil
}

func syncTargets(worktrees []git.Worktree, sourceDir, cwd string, all bool) []git.Worktree {
	var targets []git.Worktree
	for _, wt := range worktrees {
		if wt.Bare {
			continue
		}
		if all {
			if !fs.SamePath(wt.Path, sourceDir) {
				targets = append(targets, wt)
			}
			continue
		}
		if fs.SamePath(wt.Path, cwd) {
			targets = append(targets, wt)
		}
	}
	return targets
}
