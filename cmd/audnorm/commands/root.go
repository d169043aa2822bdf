// SPDX-License-Identifier: EPL-2.0

// Package commands implements the audnorm command tree.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audnorm/internal/config"
)

// app is the state shared by every subcommand of one root command.
type app struct {
	cfgFile  string
	logLevel string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "audnorm",
		Short: "Normalize audio to mono 16 kHz 16-bit WAV",
		Long: `audnorm decodes WAV, AIFF, MP3, FLAC, Ogg Vorbis and Ogg Opus files,
mixes them down to mono, resamples to 16000 Hz and writes canonical
44-byte-header PCM WAV files.

Configuration is read from the file given with --config, then from
AUDNORM_* environment variables, then from command line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(a.convertCmd())
	rootCmd.AddCommand(a.inspectCmd())
	rootCmd.AddCommand(a.formatsCmd())
	rootCmd.AddCommand(a.configCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())

	return nil
}
