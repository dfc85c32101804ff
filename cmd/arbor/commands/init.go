package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/worktree"
)

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .arbor/settings.toml for this repository",
		Long: `Create .arbor/settings.toml with defaults for this repository.

The default source branch is taken from origin/HEAD, or a local main or
master branch. A .gitignore keeps settings.local.toml out of version control.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Help for init")

	return cmd
}

func runInit() error {
	env, err := loadEnv(worktree.Options{SkipSettings: true})
	if err != nil {
		return err
	}

	result, err := worktree.Init(env)
	if err != nil {
		return err
	}
	env.Out.Success("%s", result)
	return nil
}
