package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/fields"
	"github.com/danmuck/beltctl/internal/numeric"
)

func fieldsCmd() *cobra.Command {
	var (
		delim string
		index int
	)

	cmd := &cobra.Command{
		Use:   "fields [line]",
		Short: "Split a line into delimiter-separated fields",
		Long: "Split the given line (or stdin when no line is passed) into fields.\n" +
			"An empty delimiter splits on whitespace runs. With --index only the\n" +
			"selected zero-based field is printed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := lineArg(cmd, args)
			if err != nil {
				return err
			}
			d := delim
			if !cmd.Flags().Changed("delim") {
				d = current.Delimiter
			}
			parts := fields.Split(line, d)
			if index >= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), fields.Index(parts, index))
				return nil
			}
			for _, p := range parts {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&delim, "delim", "", "field delimiter (default: config delimiter, then whitespace)")
	cmd.Flags().IntVar(&index, "index", -1, "print only this zero-based field")
	return cmd
}

func sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum <number>...",
		Short: "Add numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := numeric.ParseAll(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(numeric.Sum(vals), 'f', -1, 64))
			return nil
		},
	}
}

func intCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "int <number>",
		Short: "Round a number to the nearest integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := numeric.ParseAll(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), numeric.Int(vals[0]))
			return nil
		},
	}
}

// lineArg returns the single positional argument, or the first line of
// stdin when no argument is given.
func lineArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	line := strings.TrimRight(string(data), "\r\n")
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return line, nil
}
