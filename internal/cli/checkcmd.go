package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/check"
)

func checkCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Ad-hoc assertions for scripts (non-zero exit on failure)",
	}
	c.AddCommand(
		checkEqCmd(),
		checkNonEmptyCmd(),
		checkContainsCmd(),
		checkMatchCmd(),
		checkExistsCmd(),
	)
	return c
}

func checkEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eq <expected> <got>",
		Short: "Assert two values are equal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, check.Equal("eq", args[0], args[1]))
		},
	}
}

func checkNonEmptyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nonempty <value>",
		Short: "Assert a value is not blank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, check.NotEmpty("nonempty", args[0]))
		},
	}
}

func checkContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <haystack> <needle>",
		Short: "Assert a value contains a substring",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, check.Contains("contains", args[0], args[1]))
		},
	}
}

func checkMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> <value>",
		Short: "Assert a value matches a regular expression",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, check.Matches("match", args[0], args[1]))
		},
	}
}

func checkExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Assert a filesystem entry exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, check.FileExists("exists", args[0]))
		},
	}
}

func reportResult(cmd *cobra.Command, r check.Result) error {
	if r.Passed {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %s: %s\n", r.Name, r.Message)
		return nil
	}
	return fmt.Errorf("%s: %s", r.Name, r.Message)
}
