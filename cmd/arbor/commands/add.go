package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/worktree"
)

func NewAddCmd() *cobra.Command {
	var opts worktree.AddOptions

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a worktree with a new branch",
		Long: `Create a worktree with a new branch.

The worktree directory is the branch name with '/' replaced by '-', inside
the configured destination. Configured files are symlinked from the
repository root and post_add hooks run inside the new worktree.

Examples:
  arbor add feat/login                    # Branch off the default source
  arbor add fix/crash --source release    # Branch off release
  arbor add wip --carry                   # Move uncommitted changes along
  arbor add spike --sync --file go.mod    # Copy go.mod changes, keep them here too
  arbor add exp --lock --reason "on hold" # Lock the new worktree`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = strings.TrimSpace(args[0])
			return runAdd(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Branch to create the new branch from")
	cmd.Flags().BoolVar(&opts.Carry, "carry", false, "Move uncommitted changes into the new worktree")
	cmd.Flags().BoolVar(&opts.SyncChanges, "sync", false, "Copy uncommitted changes into the new worktree and keep them here")
	cmd.Flags().StringArrayVar(&opts.Files, "file", nil, "Limit --carry or --sync to this path (repeatable)")
	cmd.Flags().BoolVar(&opts.Lock, "lock", false, "Lock the new worktree")
	cmd.Flags().StringVar(&opts.Reason, "reason", "", "Lock reason (with --lock)")
	cmd.Flags().BoolVar(&opts.InitSubmodules, "init-submodules", false, "Initialize submodules in the new worktree")
	cmd.Flags().BoolVar(&opts.SubmoduleReference, "submodule-reference", false, "Borrow submodule objects from the repository root")
	cmd.Flags().BoolP("help", "h", false, "Help for add")

	cmd.MarkFlagsMutuallyExclusive("carry", "sync")

	return cmd
}

func runAdd(opts worktree.AddOptions) error {
	env, err := loadEnv(worktree.Options{})
	if err != nil {
		return err
	}

	result, err := worktree.Add(env, opts)
	if err != nil {
		return err
	}
	env.Out.Success("%s", result)
	return nil
}
