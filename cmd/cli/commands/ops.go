package commands

import (
	"fmt"
	"strings"

	"github.com/lucax88x/datekit/cmd/cli/console"
	"github.com/lucax88x/datekit/internal/datekit"
	"github.com/spf13/cobra"
)

func NewOpsCmd(console *console.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "list the operations batch and format understand",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(console.Stdout, strings.Join(datekit.Operations(), "\n"))
			return err
		},
	}
}
