package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/tools"
)

func whichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which <command>",
		Short: "Resolve a command on PATH, failing when it is absent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tools.Path(args[0])
			if p == "" {
				return fmt.Errorf("%s: command not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
