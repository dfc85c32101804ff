package multiplexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/testutil"
)

func TestDetect(t *testing.T) {
	runner := testutil.NewFakeRunner()

	m := Detect(runner, func(key string) string {
		if key == "WEZTERM_PANE" {
			return "3"
		}
		return ""
	})
	require.NotNil(t, m)
	assert.Equal(t, "WezTerm", m.Name())

	assert.Nil(t, Detect(runner, func(string) string { return "" }))
}

func TestWezTermOpenTab(t *testing.T) {
	t.Run("spawns and titles the tab", func(t *testing.T) {
		runner := testutil.NewFakeRunner()
		runner.On("wezterm cli spawn", "42\n").On("wezterm cli set-tab-title", "")

		id, err := NewWezTerm(runner).OpenTab("/wt/feat-x", "feat/x")

		require.NoError(t, err)
		assert.Equal(t, "42", id)
		assert.Equal(t, []string{
			"wezterm cli spawn --cwd /wt/feat-x",
			"wezterm cli set-tab-title --pane-id 42 feat/x",
		}, runner.Lines())
	})

	t.Run("title failure is ignored", func(t *testing.T) {
		runner := testutil.NewFakeRunner()
		runner.On("wezterm cli spawn", "7\n").OnExit("wezterm cli set-tab-title", 1, "nope")

		id, err := NewWezTerm(runner).OpenTab("/wt", "t")

		require.NoError(t, err)
		assert.Equal(t, "7", id)
	})

	t.Run("no title", func(t *testing.T) {
		runner := testutil.NewFakeRunner()
		runner.On("wezterm cli spawn", "7\n")

		_, err := NewWezTerm(runner).OpenTab("/wt", "")

		require.NoError(t, err)
		assert.Len(t, runner.Calls, 1)
	})

	t.Run("spawn failure", func(t *testing.T) {
		runner := testutil.NewFakeRunner()
		runner.OnExit("wezterm cli spawn", 1, "no gui")

		_, err := NewWezTerm(runner).OpenTab("/wt", "")

		require.Error(t, err)
		assert.True(t, arborerrors.IsArborError(err, arborerrors.ErrCodeMultiplexer))
		assert.Contains(t, err.Error(), "spawn")
	})
}

func TestWezTermListTabs(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.On("wezterm cli list --format json", `[
		{"window_id":0,"tab_id":1,"pane_id":3,"title":"main","cwd":"file://host/repo"},
		{"window_id":0,"tab_id":2,"pane_id":9,"title":"feat/x","cwd":"file://host/wt/feat-x"}
	]`)

	tabs, err := NewWezTerm(runner).ListTabs()

	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, Tab{ID: "9", Title: "feat/x", Cwd: "file://host/wt/feat-x"}, tabs[1])
	assert.Equal(t, "/wt/feat-x", tabs[1].CwdPath())

	tab, ok := FindTab(tabs, "/wt/feat-x", func(a, b string) bool { return a == b })
	assert.True(t, ok)
	assert.Equal(t, "9", tab.ID)
}

func TestWezTermListTabsInvalidJSON(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.On("wezterm cli list --format json", "not json")

	_, err := NewWezTerm(runner).ListTabs()

	require.Error(t, err)
	assert.True(t, arborerrors.IsArborError(err, arborerrors.ErrCodeMultiplexer))
}

func TestWezTermActivateAndClose(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.On("wezterm cli activate-pane", "").On("wezterm cli kill-pane", "")
	w := NewWezTerm(runner)

	require.NoError(t, w.ActivateTab("5"))
	require.NoError(t, w.CloseTab("5"))

	assert.Equal(t, []string{
		"wezterm cli activate-pane --pane-id 5",
		"wezterm cli kill-pane --pane-id 5",
	}, runner.Lines())
}

func TestTabCwdPath(t *testing.T) {
	assert.Equal(t, "/plain", Tab{Cwd: "/plain"}.CwdPath())
	assert.Equal(t, "/a b", Tab{Cwd: "file://host/a%20b"}.CwdPath())
	assert.Empty(t, Tab{}.CwdPath())
}
