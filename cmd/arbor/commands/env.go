// Package commands holds arbor's cobra subcommands. Each command parses its
// flags, loads the repository environment and hands off to package worktree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqve/arbor/internal/worktree"
)

// All returns every subcommand in help order.
func All() []*cobra.Command {
	return []*cobra.Command{
		NewInitCmd(),
		NewAddCmd(),
		NewListCmd(),
		NewRemoveCmd(),
		NewCleanCmd(),
		NewSyncCmd(),
		NewOpenCmd(),
		NewDashboardCmd(),
	}
}

func loadEnv(opts worktree.Options) (*worktree.Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return worktree.Load(cwd, opts)
}

// report prints a command result unless it is empty.
func report(env *worktree.Env, result string) {
	if result != "" {
		env.Out.Info("%s", result)
	}
}

// completeWorktreeBranches completes branch names that have a worktree.
func completeWorktreeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	env, err := loadEnv(worktree.Options{SkipSettings: true})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	worktrees, err := env.Git.Worktrees()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	taken := make(map[string]bool, len(args))
	for _, arg := range args {
		taken[arg] = true
	}

	var names []string
	for _, wt := range worktrees {
		if wt.Bare || !wt.HasBranch() || taken[wt.Branch] {
			continue
		}
		names = append(names, wt.Branch)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
