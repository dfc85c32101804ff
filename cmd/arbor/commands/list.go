package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/terminal"
	"github.com/sqve/arbor/internal/worktree"
)

func NewListCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List worktrees",
		Args:    cobra.NoArgs,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print worktree paths")
	cmd.Flags().BoolP("help", "h", false, "Help for list")

	return cmd
}

func runList(quiet bool) error {
	env, err := loadEnv(worktree.Options{})
	if err != nil {
		return err
	}

	opts := worktree.ListOptions{Quiet: quiet}
	if terminal.IsInteractive(os.Stdout) {
		opts.Width = terminal.Width()
	}

	result, err := worktree.List(env, opts)
	if err != nil {
		return err
	}
	report(env, result)
	return nil
}
