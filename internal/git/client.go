package git

import (
	"path/filepath"
	"strings"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/logger"
	"github.com/sqve/arbor/internal/process"
)

const noLocalChanges = "No local changes"

// Client issues the fixed set of git commands arbor needs. Every command runs
// in Dir unless the method takes its own directory.
type Client struct {
	runner process.Runner
	Dir    string
}

// NewClient returns a client running git through runner in dir.
func NewClient(runner process.Runner, dir string) *Client {
	return &Client{runner: runner, Dir: dir}
}

// At returns a client for another directory sharing the same runner.
func (c *Client) At(dir string) *Client {
	return &Client{runner: c.runner, Dir: dir}
}

// run executes git in dir and maps a non-zero exit to ErrGitOperation.
func (c *Client) run(dir string, args ...string) (string, error) {
	res, err := c.runner.Run(dir, "git", args...)
	if err != nil {
		return "", arborerrors.ErrGitExec(args, err)
	}
	if !res.Success() {
		return "", arborerrors.ErrGitOperation(args, res.ExitCode, res.Stderr)
	}
	return res.Stdout, nil
}

// probe executes git in dir and reports only whether it exited zero.
func (c *Client) probe(dir string, args ...string) (bool, error) {
	res, err := c.runner.Run(dir, "git", args...)
	if err != nil {
		return false, arborerrors.ErrGitExec(args, err)
	}
	return res.Success(), nil
}

func (c *Client) output(args ...string) (string, error) {
	out, err := c.run(c.Dir, args...)
	return strings.TrimSpace(out), err
}

// TopLevel returns the root of the working tree containing Dir.
func (c *Client) TopLevel() (string, error) {
	return c.output("rev-parse", "--show-toplevel")
}

// CommonDir returns the absolute path of the repository's shared git dir.
func (c *Client) CommonDir() (string, error) {
	dir, err := c.output("rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Dir, dir)
	}
	return filepath.Clean(dir), nil
}

// CurrentBranch returns the checked out branch, failing on a detached HEAD.
func (c *Client) CurrentBranch() (string, error) {
	return c.output("symbolic-ref", "--short", "HEAD")
}

// Worktrees lists every worktree registered with the repository.
func (c *Client) Worktrees() ([]Worktree, error) {
	out, err := c.run(c.Dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseWorktreeList(out), nil
}

// Branches lists local branches with their upstream tracking state.
func (c *Client) Branches() ([]Branch, error) {
	out, err := c.run(c.Dir, "for-each-ref", "--format="+branchListFormat, "refs/heads/")
	if err != nil {
		return nil, err
	}
	return ParseBranchList(out), nil
}

// AddWorktree creates path with a new branch, based on source when given.
func (c *Client) AddWorktree(path, branch, source string) error {
	args := []string{"worktree", "add", "-b", branch, path}
	if source != "" {
		args = append(args, source)
	}
	_, err := c.run(c.Dir, args...)
	return err
}

func (c *Client) RemoveWorktree(path string, force bool) error {
	args := []string{"worktree", "remove", path}
	if force {
		args = append(args, "--force")
	}
	_, err := c.run(c.Dir, args...)
	return err
}

func (c *Client) LockWorktree(path, reason string) error {
	args := []string{"worktree", "lock", path}
	if reason != "" {
		args = append(args, "--reason", reason)
	}
	_, err := c.run(c.Dir, args...)
	return err
}

func (c *Client) UnlockWorktree(path string) error {
	_, err := c.run(c.Dir, "worktree", "unlock", path)
	return err
}

// DeleteBranch deletes a local branch; without force git refuses unmerged ones.
func (c *Client) DeleteBranch(name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := c.run(c.Dir, "branch", flag, name)
	return err
}

// IsMerged reports whether branch is an ancestor of (or equal to) target.
func (c *Client) IsMerged(branch, target string) (bool, error) {
	return c.probe(c.Dir, "merge-base", "--is-ancestor", branch, target)
}

// StashPush stashes local changes, limited to paths when given. It reports
// false when git had nothing to stash.
func (c *Client) StashPush(message string, paths ...string) (bool, error) {
	args := []string{"stash", "push", "-m", message}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	out, err := c.run(c.Dir, args...)
	if err != nil {
		return false, err
	}
	return !strings.Contains(out, noLocalChanges), nil
}

// StashPop pops the newest stash entry into dir.
func (c *Client) StashPop(dir string) error {
	_, err := c.run(dir, "stash", "pop")
	return err
}

// StashApply applies the newest stash entry to dir and keeps the entry.
func (c *Client) StashApply(dir string) error {
	_, err := c.run(dir, "stash", "apply")
	return err
}

// HasUncommittedChanges reports whether dir has staged, unstaged or untracked changes.
func (c *Client) HasUncommittedChanges(dir string) (bool, error) {
	out, err := c.run(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// InitSubmodules initializes submodules recursively inside a worktree. With
// reference set, objects are borrowed from the superproject's submodules.
func (c *Client) InitSubmodules(path string, reference bool) error {
	var args []string
	if reference {
		args = append(args,
			"-c", "submodule.alternateLocation=superproject",
			"-c", "submodule.alternateErrorStrategy=info",
		)
	}
	args = append(args, "submodule", "update", "--init", "--recursive")
	_, err := c.run(path, args...)
	return err
}

// DefaultBranch resolves the branch origin/HEAD points at, then falls back to
// a local main or master, then to "main".
func (c *Client) DefaultBranch() string {
	log := logger.WithComponent("git")

	if ref, err := c.output("symbolic-ref", "refs/remotes/origin/HEAD"); err == nil {
		if name, ok := strings.CutPrefix(ref, "refs/remotes/origin/"); ok && name != "" {
			log.Debug("default branch from origin/HEAD", "branch", name)
			return name
		}
	}

	for _, candidate := range []string{"main", "master"} {
		if ok, err := c.probe(c.Dir, "rev-parse", "--verify", "--quiet", candidate); err == nil && ok {
			log.Debug("default branch from local ref", "branch", candidate)
			return candidate
		}
	}

	return "main"
}
