package commands

import (
	"context"
	"log/slog"

	"github.com/lucax88x/datekit/cmd/cli/config/args"
	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/lucax88x/datekit/cmd/cli/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewFormatCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
) *cobra.Command {
	var to, template string

	formatCmd := &cobra.Command{
		Use:     "format <fn> <date>",
		Short:   "format a date, e.g. format longDate 2025-09-26",
		Example: "datekit format custom 2025-09-26T10:45:30Z --template 'dddd, MMM D'",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			run := runCall(func(cmdArgs []string) (*args.In, error) {
				in := &args.In{
					Fn:       cmdArgs[0],
					Date:     cliValue(cmdArgs[1]),
					Template: template,
				}

				if to != "" {
					in.To = cliValue(to)
				}

				return in, nil
			})

			return runner.RunCmdE(ctx, logger, viper, console, level, cmdArgs, run)
		},
	}

	formatCmd.Flags().StringVar(&to, "to", "", "reference date for relativeTimeTo")
	formatCmd.Flags().StringVar(&template, "template", "", "template for custom, e.g. YYYY-MM-DD")

	return formatCmd
}
