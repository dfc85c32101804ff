package worktree

import (
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/multiplexer"
	"github.com/sqve/arbor/internal/symlink"
	"github.com/sqve/arbor/internal/testutil"
)

const testPorcelain = `worktree /repo
HEAD 1111111111111111111111111111111111111111
branch refs/heads/main

worktree /repo/.git/arbor-worktrees/feat-login
HEAD 2222222222222222222222222222222222222222
branch refs/heads/feat/login

worktree /repo/.git/arbor-worktrees/wip
HEAD 3333333333333333333333333333333333333333
branch refs/heads/wip
locked wip

`

func newTestEnv(t *testing.T) (*Env, *testutil.FakeRunner, *testutil.Output) {
	t.Helper()
	runner := testutil.NewFakeRunner()
	out := testutil.NewOutput(t)

	mem := memfs.New()
	require.NoError(t, mem.MkdirAll("/repo", 0o755))

	env := &Env{
		Git:       git.NewClient(runner, "/repo"),
		FS:        mem,
		Links:     symlink.New(mem),
		Out:       out.Printer,
		Cwd:       "/repo",
		RepoRoot:  "/repo",
		CommonDir: "/repo/.git",
	}
	return env, runner, out
}

type fakeMux struct {
	tabs      []multiplexer.Tab
	opened    []string
	activated []string
	closed    []string
	openErr   error
}

func (m *fakeMux) Name() string { return "WezTerm" }

func (m *fakeMux) OpenTab(cwd, title string) (string, error) {
	if m.openErr != nil {
		return "", m.openErr
	}
	m.opened = append(m.opened, cwd+"|"+title)
	return "42", nil
}

func (m *fakeMux) ListTabs() ([]multiplexer.Tab, error) { return m.tabs, nil }

func (m *fakeMux) ActivateTab(id string) error {
	m.activated = append(m.activated, id)
	return nil
}

func (m *fakeMux) CloseTab(id string) error {
	m.closed = append(m.closed, id)
	return nil
}

var errSpawn = errors.New("spawn failed")
