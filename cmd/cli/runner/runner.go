package runner

import (
	"context"
	"log/slog"

	"github.com/lucax88x/datekit/cmd/cli/config"
	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/lucax88x/datekit/internal/datekit"
	"github.com/spf13/viper"
)

type RunE func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *datekit.Datekit,
) error

// RunCmdE resolves the configuration, applies its log level and hands a
// ready container to run.
func RunCmdE(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
	args []string,
	run RunE,
) error {
	cfg, err := config.Load(logger, viper)

	if err != nil {
		return err
	}

	level.Set(cfg.Level())

	di, err := datekit.New(logger, cfg)

	if err != nil {
		return err
	}

	return run(ctx, console, args, di)
}
