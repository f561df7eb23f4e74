package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/homes"
)

func homeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home [kind]",
		Short: "Resolve a standard directory (log, temp, data, cache, config, runtime)",
		Long: "Resolve a per-purpose directory from the environment.\n" +
			"Precedence: kind-specific override (e.g. CONFIG_HOME), then the\n" +
			"cross-desktop variable (e.g. XDG_CONFIG_HOME), then a fallback\n" +
			"under $HOME. Without a kind, every kind is printed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := homes.NewResolver(homes.OSSource())
			if len(args) == 0 {
				for _, k := range homes.Kinds() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", k, r.Resolve(k))
				}
				return nil
			}
			kind, ok := homes.ByName(strings.ToLower(strings.TrimSpace(args[0])))
			if !ok {
				return fmt.Errorf("unknown home kind %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Resolve(kind))
			return nil
		},
	}
	return cmd
}
