// Package dashboard is an interactive worktree browser built on bubbletea.
package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/fs"
	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/logger"
	"github.com/sqve/arbor/internal/multiplexer"
	"github.com/sqve/arbor/internal/worktree"
)

const (
	tickInterval = 250 * time.Millisecond
	statusTTL    = 3 * time.Second
)

type tickMsg time.Time

// Model is the dashboard state. Worktrees are only re-read on refresh or
// after a removal.
type Model struct {
	env       *worktree.Env
	keys      keyMap
	help      help.Model
	worktrees []git.Worktree
	selected  int
	status    string
	statusAt  time.Time
	width     int
}

// New returns a model with the worktree list already loaded.
func New(env *worktree.Env) Model {
	m := Model{
		env:  env,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	m.refresh()
	return m
}

// Run starts the dashboard and blocks until the user quits.
func Run(env *worktree.Env) error {
	p := tea.NewProgram(New(env), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return arborerrors.Wrap(err, "dashboard failed")
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.next()
		case key.Matches(msg, m.keys.Up):
			m.previous()
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
		case key.Matches(msg, m.keys.Delete):
			m.removeSelected()
		case key.Matches(msg, m.keys.Open):
			m.openSelected()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tickMsg:
		if m.status != "" && time.Time(msg).Sub(m.statusAt) >= statusTTL {
			m.status = ""
		}
		return m, tick()
	}

	return m, nil
}

// Selected returns the highlighted worktree.
func (m Model) Selected() (git.Worktree, bool) {
	if m.selected < 0 || m.selected >= len(m.worktrees) {
		return git.Worktree{}, false
	}
	return m.worktrees[m.selected], true
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusAt = time.Now()
}

// refresh re-reads the worktree list and keeps the selection in range.
func (m *Model) refresh() {
	worktrees, err := m.env.Git.Worktrees()
	if err != nil {
		m.setStatus("Error: %v", err)
		return
	}
	m.worktrees = worktrees
	if m.selected >= len(m.worktrees) {
		m.selected = max(len(m.worktrees)-1, 0)
	}
}

func (m *Model) next() {
	if len(m.worktrees) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.worktrees)
}

func (m *Model) previous() {
	if len(m.worktrees) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.worktrees)) % len(m.worktrees)
}

// removeSelected removes the highlighted worktree without force, then
// deletes its branch and closes its tab when possible.
func (m *Model) removeSelected() {
	wt, ok := m.Selected()
	if !ok {
		return
	}

	if err := worktree.RemoveWorktree(m.env, wt, worktree.ForceNone); err != nil {
		m.setStatus("Error: %v", err)
		return
	}

	log := logger.WithComponent("dashboard")
	if wt.HasBranch() {
		if err := m.env.Git.DeleteBranch(wt.Branch, false); err != nil {
			log.Debug("branch kept", "branch", wt.Branch, "error", err)
		}
	}
	if err := m.closeTab(wt.Path); err != nil {
		log.Debug("tab left open", "path", wt.Path, "error", err)
	}

	m.refresh()
	m.setStatus("Removed %s", wt.DisplayName())
}

func (m *Model) openSelected() {
	wt, ok := m.Selected()
	if !ok {
		return
	}
	if m.env.Mux == nil {
		m.setStatus("No multiplexer detected. Path: %s", wt.Path)
		return
	}

	msg, err := worktree.OpenInMultiplexer(m.env, wt)
	if err != nil {
		m.setStatus("Error: %v", err)
		return
	}
	m.setStatus("%s", msg)
}

// closeTab closes the multiplexer tab whose working directory is dir.
func (m *Model) closeTab(dir string) error {
	if m.env.Mux == nil {
		return nil
	}
	tabs, err := m.env.Mux.ListTabs()
	if err != nil {
		return err
	}
	if tab, ok := multiplexer.FindTab(tabs, dir, fs.SamePath); ok {
		return m.env.Mux.CloseTab(tab.ID)
	}
	return nil
}
