package worktree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/formatter"
	"github.com/sqve/arbor/internal/fs"
	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/multiplexer"
)

// Open asks which worktree to open, reading the answer from in, and focuses
// or opens a multiplexer tab for it. Without a multiplexer it only reports
// the selection.
func Open(env *Env, in io.Reader) (string, error) {
	worktrees, err := env.Git.Worktrees()
	if err != nil {
		return "", err
	}

	var choices []git.Worktree
	for _, wt := range worktrees {
		if !wt.Bare {
			choices = append(choices, wt)
		}
	}
	if len(choices) == 0 {
		return "", arborerrors.New("no worktrees found")
	}

	_, _ = fmt.Fprintln(env.Out.Err, "Select a worktree:")
	for i, wt := range choices {
		_, _ = fmt.Fprintf(env.Out.Err, "  %d) %s\n", i+1, formatter.WorktreeLabel(wt))
	}
	_, _ = fmt.Fprint(env.Out.Err, "Enter number: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", arborerrors.Wrap(err, "failed to read selection")
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return "", fmt.Errorf("invalid selection %q", strings.TrimSpace(line))
	}
	if n < 1 || n > len(choices) {
		return "", fmt.Errorf("selection %d out of range 1-%d", n, len(choices))
	}

	wt := choices[n-1]
	if env.Mux == nil {
		return fmt.Sprintf("Selected: %s (%s)", wt.DisplayName(), wt.Path), nil
	}
	return OpenInMultiplexer(env, wt)
}

// OpenInMultiplexer focuses the tab already showing wt, or opens a new one.
func OpenInMultiplexer(env *Env, wt git.Worktree) (string, error) {
	if tabs, err := env.Mux.ListTabs(); err == nil {
		if tab, ok := multiplexer.FindTab(tabs, wt.Path, fs.SamePath); ok {
			if err := env.Mux.ActivateTab(tab.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf("Focused %s in %s pane %s", wt.DisplayName(), env.Mux.Name(), tab.ID), nil
		}
	} else {
		env.Out.Debug("listing tabs failed: %v", err)
	}

	id, err := env.Mux.OpenTab(wt.Path, env.Settings.TabTitle(wt.DisplayName()))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Opened %s in %s pane %s", wt.DisplayName(), env.Mux.Name(), id), nil
}
