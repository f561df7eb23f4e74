package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/tempres"
)

func mktempCmd() *cobra.Command {
	var (
		dir  bool
		name string
		root string
		hold bool
	)

	cmd := &cobra.Command{
		Use:   "mktemp",
		Short: "Create a scoped temp file or directory, removed at process exit",
		Long: "Create a uniquely named temporary entry and register its removal\n" +
			"before printing the path. Cleanup fires on normal exit and on\n" +
			"SIGINT/SIGTERM. With --hold the process stays alive until a signal\n" +
			"arrives, so other shells can watch the entry appear and vanish.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind := tempres.File
			if dir {
				kind = tempres.Directory
			}
			base := root
			if base == "" {
				base = current.TempRoot
			}
			res, err := tempres.Acquire(kind, base, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Path())
			if hold {
				log.Info().Str("path", res.Path()).Msg("holding until interrupt")
				select {}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "create a directory instead of a file")
	cmd.Flags().StringVar(&name, "name", "", "template name (default: a fresh identifier)")
	cmd.Flags().StringVar(&root, "root", "", "parent directory (default: config temp_root, then the OS temp dir)")
	cmd.Flags().BoolVar(&hold, "hold", false, "keep the process alive until SIGINT/SIGTERM")
	return cmd
}
