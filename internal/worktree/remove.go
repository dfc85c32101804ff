package worktree

import (
	"fmt"
	"strings"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/logger"
)

type RemoveOptions struct {
	Branches []string
	Force    ForceLevel
}

// BatchError is returned when a batch removed nothing. Its message is the full
// report; the per-item errors stay reachable through errors.Is and errors.As.
type BatchError struct {
	Report string
	Errs   []error
}

func (e *BatchError) Error() string {
	return e.Report
}

func (e *BatchError) Unwrap() []error {
	return e.Errs
}

// Remove removes the worktree of every named branch and then the branch
// itself. A failing item is reported and skipped; the command only fails when
// nothing was removed.
func Remove(env *Env, opts RemoveOptions) (string, error) {
	log := logger.WithOperation("remove")

	if len(opts.Branches) == 0 {
		return "", arborerrors.New("no branches specified")
	}

	worktrees, err := env.Git.Worktrees()
	if err != nil {
		return "", err
	}

	var removed []string
	var errs []error
	for _, name := range opts.Branches {
		wt, ok := git.FindWorktree(worktrees, name)
		if !ok {
			errs = append(errs, arborerrors.ErrWorktreeNotFound(name))
			continue
		}

		if err := RemoveWorktree(env, wt, opts.Force); err != nil {
			log.Debug("removal failed", "branch", name, "error", err)
			errs = append(errs, err)
			continue
		}

		if err := env.Git.DeleteBranch(name, opts.Force.AtLeast(Force)); err != nil {
			env.Out.Warning("worktree removed but branch deletion failed: %v", err)
		}
		removed = append(removed, name)
	}

	report := removalReport(removed, errs)
	if len(removed) == 0 && len(errs) > 0 {
		return "", &BatchError{Report: report, Errs: errs}
	}
	return report, nil
}

func removalReport(removed []string, errs []error) string {
	var b strings.Builder
	if len(removed) > 0 {
		fmt.Fprintf(&b, "Removed: %s", joinNames(removed))
	}
	if len(errs) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("Errors:")
		for _, err := range errs {
			fmt.Fprintf(&b, "\n  %v", err)
		}
	}
	return b.String()
}
