package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lucax88x/datekit/cmd/cli/config/args"
	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/lucax88x/datekit/cmd/cli/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewShiftCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
	fn string,
) *cobra.Command {
	return &cobra.Command{
		Use:   fn + " <date> <amount> <unit>",
		Short: fn + " an amount of units, e.g. " + fn + " 2025-01-31 1 month",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			run := runCall(func(cmdArgs []string) (*args.In, error) {
				amount, err := strconv.Atoi(cmdArgs[1])

				if err != nil {
					//nolint:errorlint // no wrap
					return nil, fmt.Errorf("%s: amount must be an integer. %v", fn, err)
				}

				return &args.In{
					Fn:     fn,
					Date:   cliValue(cmdArgs[0]),
					Amount: amount,
					Unit:   cmdArgs[2],
				}, nil
			})

			return runner.RunCmdE(ctx, logger, viper, console, level, cmdArgs, run)
		},
	}
}

func NewBoundaryCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
	use string,
	fn string,
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <date> <unit>",
		Short: use + " the unit containing date, e.g. " + use + " 2025-09-26 week",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			run := runCall(func(cmdArgs []string) (*args.In, error) {
				return &args.In{
					Fn:   fn,
					Date: cliValue(cmdArgs[0]),
					Unit: cmdArgs[1],
				}, nil
			})

			return runner.RunCmdE(ctx, logger, viper, console, level, cmdArgs, run)
		},
	}
}

func NewCompareCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare dates",
	}

	pair := func(use string, fn string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <date> <other>",
			Short: "true when date is " + use + " other",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, cmdArgs []string) error {
				run := runCall(func(cmdArgs []string) (*args.In, error) {
					return &args.In{
						Fn:   fn,
						Date: cliValue(cmdArgs[0]),
						To:   cliValue(cmdArgs[1]),
					}, nil
				})

				return runner.RunCmdE(ctx, logger, viper, console, level, cmdArgs, run)
			},
		}
	}

	betweenCmd := &cobra.Command{
		Use:   "between <date> <start> <end>",
		Short: "true when date is strictly between start and end",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			run := runCall(func(cmdArgs []string) (*args.In, error) {
				return &args.In{
					Fn:    "isBetween",
					Date:  cliValue(cmdArgs[0]),
					Start: cliValue(cmdArgs[1]),
					End:   cliValue(cmdArgs[2]),
				}, nil
			})

			return runner.RunCmdE(ctx, logger, viper, console, level, cmdArgs, run)
		},
	}

	compareCmd.AddCommand(pair("before", "isBefore"), pair("after", "isAfter"), betweenCmd)

	return compareCmd
}

func NewDiffCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b> [unit]",
		Short: "a minus b in unit, milliseconds by default",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			run := runCall(func(cmdArgs []string) (*args.In, error) {
				in := &args.In{
					Fn:   "diff",
					Date: cliValue(cmdArgs[0]),
					To:   cliValue(cmdArgs[1]),
				}

				if len(cmdArgs) == 3 {
					in.Unit = cmdArgs[2]
				}

				return in, nil
			})

			return runner.RunCmdE(ctx, logger, viper, console, level, cmdArgs, run)
		},
	}
}

func NewValidCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) *cobra.Command {
	return &cobra.Command{
		Use:   "valid <date>",
		Short: "true when date can be read",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			run := runCall(func(cmdArgs []string) (*args.In, error) {
				return &args.In{Fn: "isValid", Date: cliValue(cmdArgs[0])}, nil
			})

			return runner.RunCmdE(ctx, logger, viper, console, level, cmdArgs, run)
		},
	}
}
