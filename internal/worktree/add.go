package worktree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/fs"
	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/hooks"
	"github.com/sqve/arbor/internal/logger"
)

const carryMessagePrefix = "arbor-carry: "

type AddOptions struct {
	Name   string
	Source string // defaults to the configured default branch

	// Carry moves uncommitted changes into the new worktree. SyncChanges
	// copies them and keeps them in the current one too. Files limits either
	// to the given paths.
	Carry       bool
	SyncChanges bool
	Files       []string

	Lock   bool
	Reason string

	InitSubmodules     bool
	SubmoduleReference bool
}

// Add creates a worktree for a new branch and prepares it: symlinks, lock,
// submodules, carried changes, a multiplexer tab and post-add hooks. Only
// failures up to and including the symlinks abort; later steps warn.
func Add(env *Env, opts AddOptions) (string, error) {
	log := logger.WithOperation("add")

	if err := git.ValidateBranchName(opts.Name); err != nil {
		return "", err
	}
	if opts.Carry && opts.SyncChanges {
		return "", arborerrors.New("--carry and --sync are mutually exclusive")
	}
	if len(opts.Files) > 0 && !opts.Carry && !opts.SyncChanges {
		return "", arborerrors.New("--file requires --carry or --sync")
	}

	baseDir := env.BaseDir()
	wtName := git.SanitizeName(opts.Name)
	wtPath := filepath.Join(baseDir, wtName)

	if _, err := env.FS.Lstat(wtPath); err == nil {
		return "", arborerrors.ErrWorktreeExists(opts.Name, wtPath)
	} else if !os.IsNotExist(err) {
		return "", arborerrors.ErrFileSystem("check worktree path", err)
	}

	source := opts.Source
	if source == "" {
		source = env.Settings.DefaultSourceBranch()
	}

	carried := false
	if opts.Carry || opts.SyncChanges {
		var err error
		if carried, err = env.Git.StashPush(carryMessagePrefix+opts.Name, opts.Files...); err != nil {
			return "", err
		}
		log.Debug("stashed changes", "carried", carried)
	}

	if err := env.FS.MkdirAll(baseDir, fs.DirGit); err != nil {
		restoreStash(env, carried)
		return "", arborerrors.ErrFileSystem("create worktree directory", err)
	}
	if err := env.Git.AddWorktree(wtPath, opts.Name, source); err != nil {
		restoreStash(env, carried)
		if strings.Contains(arborerrors.GitStderr(err), "invalid reference") {
			return "", arborerrors.ErrBranchNotFound(source)
		}
		return "", err
	}

	created, err := env.Links.Sync(env.RepoRoot, wtPath, env.Settings.AllSymlinks())
	if err != nil {
		return "", err
	}
	if len(created) > 0 {
		env.Out.Progress("Symlinked: %s", joinNames(created))
	}

	if opts.Lock {
		if err := env.Git.LockWorktree(wtPath, opts.Reason); err != nil {
			return "", err
		}
	}

	if opts.InitSubmodules || env.Settings.InitSubmodules {
		reference := opts.SubmoduleReference || env.Settings.SubmoduleReference
		if err := env.Git.InitSubmodules(wtPath, reference); err != nil {
			env.Out.Warning("submodule init failed: %v", err)
		}
	}

	if carried {
		applyCarried(env, wtPath, opts.SyncChanges)
	}

	msg := fmt.Sprintf("Created worktree '%s' at %s", opts.Name, wtPath)
	if opts.Lock {
		msg += " [locked]"
	}

	paneID := ""
	if env.Settings.AutoOpen() && env.Mux != nil {
		id, err := env.Mux.OpenTab(wtPath, env.Settings.TabTitle(opts.Name))
		if err != nil {
			env.Out.Warning("failed to open tab: %v", err)
		} else {
			paneID = id
			msg += fmt.Sprintf(" (opened in %s pane %s)", env.Mux.Name(), id)
		}
	}

	if commands := env.Settings.Hooks.PostAdd; len(commands) > 0 {
		hooks.Run(wtPath, commands, hooks.Vars{
			"worktree_path": wtPath,
			"branch_name":   opts.Name,
			"worktree_name": wtName,
			"source_branch": source,
			"pane_id":       paneID,
		}, env.Out)
	}

	return msg, nil
}

// applyCarried moves the stashed changes into the new worktree. With keep
// set the changes are also restored where they came from.
func applyCarried(env *Env, wtPath string, keep bool) {
	if !keep {
		if err := env.Git.StashPop(wtPath); err != nil {
			env.Out.Warning("failed to apply carried changes, they remain in the stash: %v", err)
		}
		return
	}

	if err := env.Git.StashApply(wtPath); err != nil {
		env.Out.Warning("failed to apply changes to the new worktree: %v", err)
	}
	if err := env.Git.StashPop(env.RepoRoot); err != nil {
		env.Out.Warning("failed to restore changes, they remain in the stash: %v", err)
	}
}

// restoreStash puts stashed changes back after the worktree could not be created.
func restoreStash(env *Env, carried bool) {
	if !carried {
		return
	}
	if err := env.Git.StashPop(env.RepoRoot); err != nil {
		env.Out.Warning("failed to restore stashed changes, they remain in the stash: %v", err)
	}
}
