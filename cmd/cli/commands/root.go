package commands

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/lucax88x/datekit/cmd/cli/config"
	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// shorter digit strings such as 20250926 stay strings and are parsed as dates
//
//nolint:gochecknoglobals // ok
var epochMillis = regexp.MustCompile(`^-?\d{9,}$`)

func NewRootCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "datekit",
		Short:         "format and manipulate dates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("backend", "", "date backend, joda or strftime")
	flags.String("timezone", "", "IANA timezone, e.g. Europe/Rome, or Local")
	flags.String(config.ConfigKey, "", "config file (default $HOME/.config/datekit/config.yaml)")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.Int(config.ConcurrencyKey, 0, "requests evaluated at once by batch")

	bindings := map[string]string{
		config.BackendKey:     "backend",
		config.TimezoneKey:    "timezone",
		config.ConfigKey:      config.ConfigKey,
		config.LogLevelKey:    "log-level",
		config.ConcurrencyKey: config.ConcurrencyKey,
	}

	for key, flag := range bindings {
		err := viper.BindPFlag(key, flags.Lookup(flag))

		if err != nil {
			logger.Error("cli: could not bind flag", slog.String("flag", flag), slog.Any("err", err))
		}
	}

	rootCmd.SetIn(console.Stdin)
	rootCmd.SetOut(console.Stdout)
	rootCmd.SetErr(console.Stderr)

	rootCmd.AddCommand(
		NewFormatCmd(ctx, logger, viper, console, level),
		NewShiftCmd(ctx, logger, viper, console, level, "add"),
		NewShiftCmd(ctx, logger, viper, console, level, "subtract"),
		NewBoundaryCmd(ctx, logger, viper, console, level, "start-of", "startOf"),
		NewBoundaryCmd(ctx, logger, viper, console, level, "end-of", "endOf"),
		NewCompareCmd(ctx, logger, viper, console, level),
		NewDiffCmd(ctx, logger, viper, console, level),
		NewValidCmd(ctx, logger, viper, console, level),
		NewBatchCmd(ctx, logger, viper, console, level),
		NewOpsCmd(console),
	)

	return rootCmd
}

// cliValue turns a command line date into a date-like value: long digit
// strings are epoch milliseconds, anything else is left to the parser.
func cliValue(raw string) any {
	if !epochMillis.MatchString(raw) {
		return raw
	}

	millis, err := strconv.ParseInt(raw, 10, 64)

	if err != nil {
		return raw
	}

	return millis
}
