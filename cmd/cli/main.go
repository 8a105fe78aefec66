package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lucax88x/datekit/cmd/cli/commands"
	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/lucax88x/datekit/internal/setup"
	"github.com/spf13/viper"
)

func cli(viper *viper.Viper, console *console.Console, level *slog.LevelVar) setup.ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger) error {
		rootCmd := commands.NewRootCmd(ctx, logger, viper, console, level)
		rootCmd.SetArgs(os.Args[1:])

		return rootCmd.ExecuteContext(ctx)
	}
}

func main() {
	result := setup.Run(cli)

	if result == setup.NotOk {
		os.Exit(1)
	}
}
