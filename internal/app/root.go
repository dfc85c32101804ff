package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqve/arbor/internal/config"
	"github.com/sqve/arbor/internal/logger"
)

const Version = "v0.1.0"

// NewRootCommand creates the arbor root command with the given subcommands.
func NewRootCommand(subcommands ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "arbor",
		Short:   "Git worktree manager",
		Version: Version,
		Long: `Arbor creates, syncs and cleans up git worktrees for a repository.

New worktrees get symlinks to untracked files such as .env, can carry
uncommitted changes along and open in a WezTerm tab.`,
		SilenceUsage: true,
	}

	setupRootCommand(rootCmd, subcommands)
	return rootCmd
}

func setupRootCommand(rootCmd *cobra.Command, subcommands []*cobra.Command) {
	// main prints errors itself
	rootCmd.SilenceErrors = true

	setupFlags(rootCmd)
	setupInitialization(rootCmd)
	rootCmd.AddCommand(subcommands...)
}

func setupFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json, logfmt)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output (shorthand for --log-level=debug)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and symbols")
}

func setupInitialization(rootCmd *cobra.Command) {
	cobra.OnInitialize(func() { InitializeConfig(rootCmd) })
}

// InitializeConfig resolves global settings from flags, ARBOR_* variables and
// the user config file, then configures output and logging.
func InitializeConfig(rootCmd *cobra.Command) {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bindFlags(rootCmd)
	configureLogging()
}

func bindFlags(rootCmd *cobra.Command) {
	for key, flag := range map[string]string{
		"logging.level":  "log-level",
		"logging.format": "log-format",
		"plain":          "plain",
		"debug":          "debug",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind %s flag: %v\n", flag, err)
		}
	}
}

func configureLogging() {
	config.Apply()

	if config.IsDebug() {
		viper.Set("logging.level", "debug")
	}

	logger.Configure(logger.Config{
		Level:  config.GetString("logging.level"),
		Format: config.GetString("logging.format"),
		Output: os.Stderr,
	})
}
