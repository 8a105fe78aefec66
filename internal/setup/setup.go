package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/spf13/viper"
)

type ExecutionResult = int

const (
	Ok    ExecutionResult = 0
	NotOk ExecutionResult = -1
)

const EnvPrefix = "DATEKIT"

// loadDotEnv exports the variables of path, if it exists, without
// overriding what the environment already holds.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)

	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("setup: could not load %s. %w", path, err)
}

func initViper() (*viper.Viper, error) {
	err := loadDotEnv(".env")

	if err != nil {
		return nil, err
	}

	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance, nil
}

type ProgramExecutor func(ctx context.Context, logger *slog.Logger) error

// ExecutorBuilder receives level so the program can apply the configured
// log level once it knows it.
type ExecutorBuilder func(
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) ProgramExecutor

func Run(buildExecutor ExecutorBuilder) ExecutionResult {
	start := time.Now()

	level := new(slog.LevelVar)

	logger := slog.New(tint.NewHandler(
		os.Stderr,
		&tint.Options{Level: level, TimeFormat: time.Kitchen},
	))

	defer func() {
		elapsed := time.Since(start)
		logger.Debug("cli: took", slog.Duration("elapsed", elapsed))
	}()

	viper, err := initViper()

	if err != nil {
		logger.Error("main: could not setup configuration", slog.Any("err", err))
		return NotOk
	}

	console := &console.Console{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = buildExecutor(viper, console, level)(ctx, logger)

	if err != nil {
		logger.Error("main: failed to execute program", slog.Any("err", err))
		return NotOk
	}

	logger.Debug("main: completed", slog.Int("status_code", Ok))

	return Ok
}
