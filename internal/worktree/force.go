package worktree

import (
	"strings"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/git"
)

// ForceLevel escalates what a removal may override.
type ForceLevel int

const (
	// ForceNone refuses locked worktrees and lets git refuse dirty ones.
	ForceNone ForceLevel = iota
	// Force overrides uncommitted changes but not locks.
	Force
	// ForceForce also unlocks locked worktrees.
	ForceForce
)

// ForceLevelFromCount maps a repeated -f flag onto a level.
func ForceLevelFromCount(n int) ForceLevel {
	switch {
	case n <= 0:
		return ForceNone
	case n == 1:
		return Force
	default:
		return ForceForce
	}
}

func (l ForceLevel) AtLeast(other ForceLevel) bool {
	return l >= other
}

func (l ForceLevel) String() string {
	switch l {
	case ForceNone:
		return "none"
	case Force:
		return "force"
	default:
		return "force-force"
	}
}

// RemovalPlan is what removing one worktree takes at a given force level.
type RemovalPlan struct {
	Unlock bool // run `worktree unlock` first
	Force  bool // pass --force to `worktree remove`
}

// Decide applies the force policy to one worktree:
//
//	bare                  rejected at every level
//	locked, < ForceForce  rejected, naming the lock reason
//	locked, ForceForce    unlock, then remove with --force
//	unlocked, Force+      remove with --force
//	unlocked, ForceNone   remove; git refuses if there are uncommitted changes
func Decide(wt git.Worktree, level ForceLevel) (RemovalPlan, error) {
	if wt.Bare {
		return RemovalPlan{}, arborerrors.ErrBareWorktree(wt.Path)
	}
	if wt.Locked {
		if !level.AtLeast(ForceForce) {
			return RemovalPlan{}, arborerrors.ErrWorktreeLocked(wt.DisplayName(), wt.LockReason)
		}
		return RemovalPlan{Unlock: true, Force: true}, nil
	}
	return RemovalPlan{Force: level.AtLeast(Force)}, nil
}

// RemoveWorktree removes wt according to Decide. A git refusal over local
// changes is reported as ErrUncommittedChanges.
func RemoveWorktree(env *Env, wt git.Worktree, level ForceLevel) error {
	plan, err := Decide(wt, level)
	if err != nil {
		return err
	}

	if plan.Unlock {
		if err := env.Git.UnlockWorktree(wt.Path); err != nil {
			return err
		}
	}

	if err := env.Git.RemoveWorktree(wt.Path, plan.Force); err != nil {
		if !plan.Force && isDirtyRefusal(err) {
			return arborerrors.ErrUncommittedChanges(wt.DisplayName())
		}
		return err
	}
	return nil
}

func isDirtyRefusal(err error) bool {
	stderr := arborerrors.GitStderr(err)
	return strings.Contains(stderr, "modified or untracked files") ||
		strings.Contains(stderr, "use --force to delete it")
}
