package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/worktree"
)

func NewCleanCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove worktrees whose branches are merged or gone upstream",
		Long: `Remove worktrees whose branch is merged into the default source branch
or whose upstream branch no longer exists. Locked worktrees and worktrees
with local changes are skipped with a warning.

Use --check to list candidates without removing anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Only show what would be removed")
	cmd.Flags().BoolP("help", "h", false, "Help for clean")

	return cmd
}

func runClean(check bool) error {
	env, err := loadEnv(worktree.Options{})
	if err != nil {
		return err
	}

	result, err := worktree.Clean(env, worktree.CleanOptions{Check: check})
	if err != nil {
		return err
	}
	report(env, result)
	return nil
}
