package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const porcelainFixture = `worktree /repo
HEAD 1111111111111111111111111111111111111111
branch refs/heads/main

worktree /repo/.git/arbor-worktrees/feat-login
HEAD 2222222222222222222222222222222222222222
branch refs/heads/feat/login
locked wip

worktree /repo/.git/arbor-worktrees/detached
HEAD 3333333333333333333333333333333333333333
detached
prunable gitdir file points to non-existent location

`

func TestParseWorktreeList(t *testing.T) {
	t.Run("parses every block in order", func(t *testing.T) {
		wts := ParseWorktreeList(porcelainFixture)

		require.Len(t, wts, 3)
		assert.Equal(t, "/repo", wts[0].Path)
		assert.Equal(t, "main", wts[0].Branch)
		assert.Equal(t, "1111111111111111111111111111111111111111", wts[0].Head)

		assert.Equal(t, "feat/login", wts[1].Branch)
		assert.True(t, wts[1].Locked)
		assert.Equal(t, "wip", wts[1].LockReason)

		assert.False(t, wts[2].HasBranch())
		assert.Empty(t, wts[2].Branch)
		assert.True(t, wts[2].Prunable)
		assert.Equal(t, "(detached)", wts[2].DisplayName())
	})

	t.Run("final block needs no trailing blank line", func(t *testing.T) {
		wts := ParseWorktreeList("worktree /repo\nHEAD abc\nbranch refs/heads/main")

		require.Len(t, wts, 1)
		assert.Equal(t, "main", wts[0].Branch)
	})

	t.Run("bare locked has no reason", func(t *testing.T) {
		wts := ParseWorktreeList("worktree /a\nHEAD abc\nlocked\n")

		require.Len(t, wts, 1)
		assert.True(t, wts[0].Locked)
		assert.Empty(t, wts[0].LockReason)
	})

	t.Run("bare worktree", func(t *testing.T) {
		wts := ParseWorktreeList("worktree /repo.git\nbare\n\nworktree /wt\nHEAD abc\nbranch refs/heads/x\n")

		require.Len(t, wts, 2)
		assert.True(t, wts[0].Bare)
		assert.False(t, wts[1].Bare)
	})

	t.Run("unknown lines are ignored", func(t *testing.T) {
		wts := ParseWorktreeList("worktree /a\nfuture-key value\nHEAD abc\n")

		require.Len(t, wts, 1)
		assert.Equal(t, "abc", wts[0].Head)
	})

	t.Run("windows line endings", func(t *testing.T) {
		wts := ParseWorktreeList("worktree /a\r\nbranch refs/heads/x\r\n\r\nworktree /b\r\n")

		require.Len(t, wts, 2)
		assert.Equal(t, "x", wts[0].Branch)
	})

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseWorktreeList(""))
	})

	t.Run("block count matches blank-line groups", func(t *testing.T) {
		out := ""
		for i := 0; i < 5; i++ {
			out += "worktree /w\nHEAD abc\n\n"
		}
		assert.Len(t, ParseWorktreeList(out), 5)
	})
}

func TestWorktreeShortHead(t *testing.T) {
	assert.Equal(t, "abcdef1", Worktree{Head: "abcdef1234567"}.ShortHead())
	assert.Equal(t, "abc", Worktree{Head: "abc"}.ShortHead())
}
