package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/worktree"
)

func NewRemoveCmd() *cobra.Command {
	var force int

	cmd := &cobra.Command{
		Use:     "remove <branch>...",
		Aliases: []string{"rm"},
		Short:   "Remove worktrees and their branches",
		Long: `Remove the worktree of each named branch, then delete the branch.

Without force, git refuses worktrees with uncommitted changes and branches
that are not merged. Locked worktrees need -ff.

Examples:
  arbor remove feat/login          # Remove a clean worktree
  arbor remove -f spike            # Discard local changes, force-delete the branch
  arbor remove -ff wip             # Also unlock a locked worktree
  arbor remove feat/a feat/b       # Remove several at once`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeWorktreeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args, worktree.ForceLevelFromCount(force))
		},
	}

	cmd.Flags().CountVarP(&force, "force", "f", "Force removal; repeat (-ff) to also remove locked worktrees")
	cmd.Flags().BoolP("help", "h", false, "Help for remove")

	return cmd
}

func runRemove(branches []string, force worktree.ForceLevel) error {
	env, err := loadEnv(worktree.Options{})
	if err != nil {
		return err
	}

	result, err := worktree.Remove(env, worktree.RemoveOptions{Branches: branches, Force: force})
	if err != nil {
		return err
	}
	report(env, result)
	return nil
}
