package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/testutil"
)

func newTestClient() (*Client, *testutil.FakeRunner) {
	runner := testutil.NewFakeRunner()
	return NewClient(runner, "/repo"), runner
}

func TestClientCommonDir(t *testing.T) {
	t.Run("relative result is joined to the repo dir", func(t *testing.T) {
		c, runner := newTestClient()
		runner.On("git rev-parse --git-common-dir", ".git\n")

		dir, err := c.CommonDir()

		require.NoError(t, err)
		assert.Equal(t, "/repo/.git", dir)
	})

	t.Run("absolute result is kept", func(t *testing.T) {
		c, runner := newTestClient()
		runner.On("git rev-parse --git-common-dir", "/elsewhere/.git\n")

		dir, err := c.CommonDir()

		require.NoError(t, err)
		assert.Equal(t, "/elsewhere/.git", dir)
	})
}

func TestClientErrors(t *testing.T) {
	t.Run("non-zero exit becomes a git operation error", func(t *testing.T) {
		c, runner := newTestClient()
		runner.OnExit("git rev-parse --show-toplevel", 128, "fatal: not a git repository\n")

		_, err := c.TopLevel()

		require.Error(t, err)
		assert.True(t, arborerrors.IsArborError(err, arborerrors.ErrCodeGitOperation))
		assert.Contains(t, err.Error(), "exit 128")
		assert.Contains(t, arborerrors.GitStderr(err), "not a git repository")
	})

	t.Run("spawn failure is wrapped", func(t *testing.T) {
		c, runner := newTestClient()
		cause := errors.New("executable file not found")
		runner.OnError("git worktree list --porcelain", cause)

		_, err := c.Worktrees()

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
	})
}

func TestClientWorktreeCommands(t *testing.T) {
	c, runner := newTestClient()
	runner.
		On("git worktree add", "").
		On("git worktree remove", "").
		On("git worktree lock", "").
		On("git worktree unlock", "").
		On("git branch", "")

	require.NoError(t, c.AddWorktree("/wt/feat-x", "feat/x", "main"))
	require.NoError(t, c.AddWorktree("/wt/y", "y", ""))
	require.NoError(t, c.RemoveWorktree("/wt/y", true))
	require.NoError(t, c.LockWorktree("/wt/feat-x", "wip"))
	require.NoError(t, c.LockWorktree("/wt/y", ""))
	require.NoError(t, c.UnlockWorktree("/wt/y"))
	require.NoError(t, c.DeleteBranch("y", false))
	require.NoError(t, c.DeleteBranch("z", true))

	assert.Equal(t, []string{
		"git worktree add -b feat/x /wt/feat-x main",
		"git worktree add -b y /wt/y",
		"git worktree remove /wt/y --force",
		"git worktree lock /wt/feat-x --reason wip",
		"git worktree lock /wt/y",
		"git worktree unlock /wt/y",
		"git branch -d y",
		"git branch -D z",
	}, runner.Lines())

	for _, call := range runner.Calls {
		assert.Equal(t, "/repo", call.Dir)
	}
}

func TestClientBranches(t *testing.T) {
	c, runner := newTestClient()
	runner.On("git for-each-ref", "main\t\t*\t\nold\torigin/old\t \t[gone]\n")

	branches, err := c.Branches()

	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.True(t, branches[1].Gone)
	assert.Equal(t, "git for-each-ref --format="+branchListFormat+" refs/heads/", runner.Lines()[0])
}

func TestClientIsMerged(t *testing.T) {
	c, runner := newTestClient()
	runner.
		On("git merge-base --is-ancestor merged main", "").
		OnExit("git merge-base --is-ancestor open main", 1, "")

	merged, err := c.IsMerged("merged", "main")
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = c.IsMerged("open", "main")
	require.NoError(t, err)
	assert.False(t, merged)
}

func TestClientStash(t *testing.T) {
	t.Run("reports carried changes", func(t *testing.T) {
		c, runner := newTestClient()
		runner.On("git stash push", "Saved working directory and index state On main: arbor-carry: x\n")

		carried, err := c.StashPush("arbor-carry: x", "a.txt", "b.txt")

		require.NoError(t, err)
		assert.True(t, carried)
		assert.Equal(t, "git stash push -m arbor-carry: x -- a.txt b.txt", runner.Lines()[0])
	})

	t.Run("nothing to stash", func(t *testing.T) {
		c, runner := newTestClient()
		runner.On("git stash push", "No local changes to save\n")

		carried, err := c.StashPush("arbor-carry: x")

		require.NoError(t, err)
		assert.False(t, carried)
	})

	t.Run("pop and apply run in the given dir", func(t *testing.T) {
		c, runner := newTestClient()
		runner.On("git stash pop", "").On("git stash apply", "")

		require.NoError(t, c.StashApply("/wt/x"))
		require.NoError(t, c.StashPop("/repo"))

		assert.Equal(t, "/wt/x", runner.Calls[0].Dir)
		assert.Equal(t, "/repo", runner.Calls[1].Dir)
	})
}

func TestClientHasUncommittedChanges(t *testing.T) {
	c, runner := newTestClient()
	runner.On("git status --porcelain", " M file.go\n").On("git status --porcelain", "")

	dirty, err := c.HasUncommittedChanges("/wt/a")
	require.NoError(t, err)
	assert.True(t, dirty)

	dirty, err = c.HasUncommittedChanges("/wt/a")
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestClientInitSubmodules(t *testing.T) {
	c, runner := newTestClient()
	runner.On("git submodule", "").On("git -c", "")

	require.NoError(t, c.InitSubmodules("/wt/a", false))
	require.NoError(t, c.InitSubmodules("/wt/b", true))

	assert.Equal(t, []string{
		"git submodule update --init --recursive",
		"git -c submodule.alternateLocation=superproject -c submodule.alternateErrorStrategy=info submodule update --init --recursive",
	}, runner.Lines())
	assert.Equal(t, "/wt/a", runner.Calls[0].Dir)
	assert.Equal(t, "/wt/b", runner.Calls[1].Dir)
}

func TestClientDefaultBranch(t *testing.T) {
	t.Run("origin HEAD", func(t *testing.T) {
		c, runner := newTestClient()
		runner.On("git symbolic-ref refs/remotes/origin/HEAD", "refs/remotes/origin/trunk\n")

		assert.Equal(t, "trunk", c.DefaultBranch())
	})

	t.Run("local main", func(t *testing.T) {
		c, runner := newTestClient()
		runner.
			OnExit("git symbolic-ref refs/remotes/origin/HEAD", 128, "fatal: ref refs/remotes/origin/HEAD is not a symbolic ref").
			On("git rev-parse --verify --quiet main", "abc\n")

		assert.Equal(t, "main", c.DefaultBranch())
	})

	t.Run("local master", func(t *testing.T) {
		c, runner := newTestClient()
		runner.
			OnExit("git symbolic-ref refs/remotes/origin/HEAD", 128, "").
			OnExit("git rev-parse --verify --quiet main", 1, "").
			On("git rev-parse --verify --quiet master", "abc\n")

		assert.Equal(t, "master", c.DefaultBranch())
	})

	t.Run("falls back to main", func(t *testing.T) {
		c, runner := newTestClient()
		runner.
			OnExit("git symbolic-ref", 128, "").
			OnExit("git rev-parse", 1, "")

		assert.Equal(t, "main", c.DefaultBranch())
	})
}

func TestClientAt(t *testing.T) {
	c, runner := newTestClient()
	runner.On("git rev-parse --show-toplevel", "/other\n")

	top, err := c.At("/other/sub").TopLevel()

	require.NoError(t, err)
	assert.Equal(t, "/other", top)
	assert.Equal(t, "/other/sub", runner.Calls[0].Dir)
}
