// Package multiplexer opens worktrees in terminal tabs.
package multiplexer

import (
	"net/url"
	"strings"

	"github.com/sqve/arbor/internal/process"
)

// Tab is one pane known to the multiplexer.
type Tab struct {
	ID    string
	Title string
	Cwd   string
}

// CwdPath returns the tab's working directory as a local path. Multiplexers
// may report it as a file:// URL.
func (t Tab) CwdPath() string {
	if !strings.HasPrefix(t.Cwd, "file://") {
		return t.Cwd
	}
	u, err := url.Parse(t.Cwd)
	if err != nil {
		return t.Cwd
	}
	return u.Path
}

type Multiplexer interface {
	Name() string
	// OpenTab opens a tab in cwd and returns its pane id. An empty title
	// keeps the multiplexer's default.
	OpenTab(cwd, title string) (string, error)
	ListTabs() ([]Tab, error)
	ActivateTab(id string) error
	CloseTab(id string) error
}

// Detect returns the multiplexer arbor is running inside, or nil.
func Detect(runner process.Runner, getenv func(string) string) Multiplexer {
	if getenv(weztermPaneEnv) != "" {
		return NewWezTerm(runner)
	}
	return nil
}

// FindTab returns the first tab whose working directory is dir.
func FindTab(tabs []Tab, dir string, same func(a, b string) bool) (Tab, bool) {
	for _, tab := range tabs {
		if cwd := tab.CwdPath(); cwd != "" && same(cwd, dir) {
			return tab, true
		}
	}
	return Tab{}, false
}
