package multiplexer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/logger"
	"github.com/sqve/arbor/internal/process"
)

const (
	weztermPaneEnv = "WEZTERM_PANE"
	weztermBin     = "wezterm"
)

// WezTerm drives `wezterm cli`.
type WezTerm struct {
	runner process.Runner
}

func NewWezTerm(runner process.Runner) *WezTerm {
	return &WezTerm{runner: runner}
}

func (w *WezTerm) Name() string {
	return "WezTerm"
}

// cli runs `wezterm cli <subcommand> args...`.
func (w *WezTerm) cli(subcommand string, args ...string) (string, error) {
	res, err := w.runner.Run("", weztermBin, append([]string{"cli", subcommand}, args...)...)
	if err != nil {
		return "", arborerrors.ErrMultiplexer(subcommand, err)
	}
	if !res.Success() {
		return "", arborerrors.ErrMultiplexer(subcommand,
			fmt.Errorf("wezterm cli %s exited with %d: %s", subcommand, res.ExitCode, strings.TrimSpace(res.Stderr)))
	}
	return res.Stdout, nil
}

func (w *WezTerm) OpenTab(cwd, title string) (string, error) {
	out, err := w.cli("spawn", "--cwd", cwd)
	if err != nil {
		return "", err
	}
	paneID := strings.TrimSpace(out)

	if title != "" {
		if _, err := w.cli("set-tab-title", "--pane-id", paneID, title); err != nil {
			logger.WithComponent("multiplexer").Debug("failed to set tab title", "pane", paneID, "error", err)
		}
	}

	return paneID, nil
}

type weztermPane struct {
	PaneID int64  `json:"pane_id"`
	Title  string `json:"title"`
	Cwd    string `json:"cwd"`
}

func (w *WezTerm) ListTabs() ([]Tab, error) {
	out, err := w.cli("list", "--format", "json")
	if err != nil {
		return nil, err
	}

	var panes []weztermPane
	if err := json.Unmarshal([]byte(out), &panes); err != nil {
		return nil, arborerrors.ErrMultiplexer("list", arborerrors.Wrap(err, "failed to parse wezterm output"))
	}

	tabs := make([]Tab, 0, len(panes))
	for _, p := range panes {
		tabs = append(tabs, Tab{ID: strconv.FormatInt(p.PaneID, 10), Title: p.Title, Cwd: p.Cwd})
	}
	return tabs, nil
}

func (w *WezTerm) ActivateTab(id string) error {
	_, err := w.cli("activate-pane", "--pane-id", id)
	return err
}

func (w *WezTerm) CloseTab(id string) error {
	_, err := w.cli("kill-pane", "--pane-id", id)
	return err
}
