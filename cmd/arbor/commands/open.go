package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/worktree"
)

func NewOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Pick a worktree and open it in a terminal tab",
		Long: `Pick a worktree by number and focus or open a WezTerm tab for it.
Outside WezTerm the selection is only printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen()
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for open")

	return cmd
}

func runOpen() error {
	env, err := loadEnv(worktree.Options{})
	if err != nil {
		return err
	}

	result, err := worktree.Open(env, os.Stdin)
	if err != nil {
		return err
	}
	report(env, result)
	return nil
}
