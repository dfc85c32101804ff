package main

import (
	"os"

	"github.com/sqve/arbor/cmd/arbor/commands"
	"github.com/sqve/arbor/internal/app"
	"github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/logger"
)

func main() {
	rootCmd := app.NewRootCommand(commands.All()...)
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Debug("command failed", "code", errors.GetErrorCode(err), "context", errors.GetErrorContext(err))
		logger.Stdio().Error("%v", err)
		os.Exit(1)
	}
}
