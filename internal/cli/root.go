// Package cli wires the belt helpers into one command tree.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/beltctl/internal/config"
	"github.com/danmuck/beltctl/internal/homes"
	"github.com/danmuck/beltctl/internal/logging"
	"github.com/danmuck/beltctl/internal/tempres"
)

// current holds the loaded configuration for the running command.
var current config.Config

// Execute runs the command tree. Scoped temp resources are always
// removed on the way out, whether the command succeeded or not.
func Execute() error {
	defer tempres.Shutdown()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "beltctl",
		Short:         "beltctl is a utility belt for shell workflows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logging.ConfigureRuntime()
			tempres.InstallSignalHook()

			var err error
			if configPath != "" {
				current, err = config.Load(configPath)
			} else {
				current, err = config.LoadDefault(homes.NewResolver(homes.OSSource()))
			}
			if err != nil {
				return err
			}
			if current.LogLevel != "" && !logging.SetLevel(current.LogLevel) {
				log.Warn().Str("level", current.LogLevel).Msg("unknown log level in config")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to "+config.FileName+" (default: <config home>/beltctl/"+config.FileName+")")

	cmd.AddCommand(
		homeCmd(),
		mktempCmd(),
		idCmd(),
		fieldsCmd(),
		sumCmd(),
		intCmd(),
		mimeCmd(),
		whichCmd(),
		checkCmd(),
	)
	return cmd
}
