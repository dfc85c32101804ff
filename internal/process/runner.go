// Package process is the boundary to external executables. It runs an argv
// and hands back what the program printed and how it exited; it never
// interprets the output.
package process

import (
	"bytes"
	"errors"
	"os/exec"
	"time"

	"github.com/sqve/arbor/internal/logger"
)

// Result is the raw outcome of one command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes name with args in dir. A non-zero exit is reported through
// Result.ExitCode; the error is reserved for commands that could not be
// started at all.
type Runner interface {
	Run(dir, name string, args ...string) (Result, error)
}

// LiveRunner spawns real processes.
type LiveRunner struct{}

func NewLiveRunner() *LiveRunner {
	return &LiveRunner{}
}

func (r *LiveRunner) Run(dir, name string, args ...string) (Result, error) {
	log := logger.WithComponent("process")
	start := time.Now()

	log.Command(name, args, "dir", dir)
	cmd := exec.Command(name, args...) //nolint:gosec // argv is built by arbor, never by a shell
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		log.Result(name, -1, err.Error(), "duration", time.Since(start))
		return res, err
	}

	output := res.Stdout
	if !res.Success() {
		output = res.Stderr
	}
	log.Result(name, res.ExitCode, output, "duration", time.Since(start))
	return res, nil
}

// Default is the Runner used outside tests.
var Default Runner = NewLiveRunner()
