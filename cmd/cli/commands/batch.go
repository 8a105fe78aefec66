package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/lucax88x/datekit/cmd/cli/runner"
	"github.com/lucax88x/datekit/internal/datekit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewBatchCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) *cobra.Command {
	return &cobra.Command{
		Use:     "batch [file]",
		Short:   "run JSON requests, one per line, from file or stdin",
		Example: `echo '{"fn":"add","date":"2025-01-31","amount":1,"unit":"month"}' | datekit batch`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, level, args, runBatchCmd())
		},
	}
}

func runBatchCmd() runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		args []string,
		di *datekit.Datekit,
	) error {
		var source io.Reader = console.Stdin

		if len(args) == 1 && args[0] != "-" {
			file, err := os.Open(args[0])

			if err != nil {
				return fmt.Errorf("batch: could not open input. %w", err)
			}

			defer file.Close()

			source = file
		}

		di.Logger.DebugContext(ctx, "batch: starting", slog.Int("concurrency", di.Config.Concurrency))

		return di.Serve(ctx, source, console.Stdout)
	}
}
