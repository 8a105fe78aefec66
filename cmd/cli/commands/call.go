package commands

import (
	"context"
	"fmt"

	"github.com/lucax88x/datekit/cmd/cli/config/args"
	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/lucax88x/datekit/cmd/cli/runner"
	"github.com/lucax88x/datekit/internal/datekit"
)

// runCall builds a request from the positional arguments and prints the
// result of the operation it names.
func runCall(build func(cmdArgs []string) (*args.In, error)) runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		cmdArgs []string,
		di *datekit.Datekit,
	) error {
		in, err := build(cmdArgs)

		if err != nil {
			return err
		}

		result, err := datekit.Call(di.Dates, in)

		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(console.Stdout, result)

		return err
	}
}
