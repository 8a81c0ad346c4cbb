package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Verbose    bool
}

func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// NewRootCommand creates the root command for bindgen.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bindgen",
		Short: "Generate registrations for annobind annotations",
		Long: `bindgen reads @annobind.Bind annotations from the doc comments of
types, fields and methods and generates the init code that registers them
with annobind.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default "+DefaultConfigFile+" if present)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))

	return cmd
}
