// Package hooks runs user-configured shell commands after worktree operations.
package hooks

import (
	"errors"
	"fmt"
	"os/exec"
	"sync"

	"github.com/sqve/arbor/internal/config"
	"github.com/sqve/arbor/internal/logger"
	"github.com/sqve/arbor/internal/styles"
)

// Vars are substituted into hook commands as {key}.
type Vars map[string]string

// Run executes commands one after another with `sh -c` in dir. Hook output is
// streamed to the printer's error stream. A failing hook never stops the
// remaining ones; each failure is printed and returned as a warning.
func Run(dir string, commands []string, vars Vars, printer *logger.Printer) []string {
	log := logger.WithComponent("hooks")
	var warnings []string

	for i, tmpl := range commands {
		command := config.RenderTemplate(tmpl, vars)
		if len(commands) == 1 {
			printer.Progress("Running hook: %s", command)
		} else {
			printer.Progress("Running hook [%d/%d]: %s", i+1, len(commands), command)
		}

		exitCode, err := runOne(dir, command, printer)
		var msg string
		switch {
		case err != nil:
			msg = fmt.Sprintf("hook command failed to execute: %s: %v", command, err)
		case exitCode != 0:
			msg = fmt.Sprintf("hook command exited with %d: %s", exitCode, command)
		default:
			log.Debug("hook succeeded", "command", command)
			continue
		}

		log.Debug("hook failed", "command", command, "exit_code", exitCode)
		printer.Warning("%s", msg)
		warnings = append(warnings, msg)
	}

	return warnings
}

func runOne(dir, command string, printer *logger.Printer) (int, error) {
	cmd := exec.Command("sh", "-c", command) //nolint:gosec // hooks are user configured shell commands
	cmd.Dir = dir

	var mu sync.Mutex
	prefix := styles.Render(&styles.Dimmed, "  |")
	stdout := newPrefixWriter(prefix, printer.Err, &mu)
	stderr := newPrefixWriter(prefix, printer.Err, &mu)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	_ = stdout.Flush()
	_ = stderr.Flush()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, err
	}
}
