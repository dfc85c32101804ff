package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/worktree"
)

func NewSyncCmd() *cobra.Command {
	var opts worktree.SyncOptions

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Recreate configured symlinks",
		Long: `Recreate the configured symlinks in the current worktree, or in every
worktree with --all. Links point into the repository root unless --source
names another worktree's branch. Existing files are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Sync every worktree")
	cmd.Flags().StringVar(&opts.Source, "source", "", "Branch whose worktree the links point into")
	cmd.Flags().BoolP("help", "h", false, "Help for sync")

	_ = cmd.RegisterFlagCompletionFunc("source", completeWorktreeBranches)

	return cmd
}

func runSync(opts worktree.SyncOptions) error {
	env, err := loadEnv(worktree.Options{})
	if err != nil {
		return err
	}

	result, err := worktree.Sync(env, opts)
	if err != nil {
		return err
	}
	report(env, result)
	return nil
}
