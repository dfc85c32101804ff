package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/dashboard"
	"github.com/sqve/arbor/internal/terminal"
	"github.com/sqve/arbor/internal/worktree"
)

func NewDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Browse, open and remove worktrees interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for dashboard")

	return cmd
}

func runDashboard() error {
	if !terminal.IsInteractive(os.Stdin) || !terminal.IsInteractive(os.Stdout) {
		return errors.New("dashboard requires an interactive terminal")
	}

	env, err := loadEnv(worktree.Options{})
	if err != nil {
		return err
	}
	return dashboard.Run(env)
}
