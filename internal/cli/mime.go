package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/mimetype"
)

func mimeCmd() *cobra.Command {
	var sniff bool

	cmd := &cobra.Command{
		Use:   "mime <path>",
		Short: "Look up a file's MIME type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sniff {
				t, err := mimetype.Detect(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), mimetype.ByExtension(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sniff, "sniff", false, "inspect file content instead of trusting the extension")
	return cmd
}
