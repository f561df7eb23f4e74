package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/ident"
)

func idCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Generate random 32-character hex identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			for i := 0; i < count; i++ {
				id, err := ident.Generate()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to print")
	return cmd
}
