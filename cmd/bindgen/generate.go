package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhump/annobind/processor"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	IncludeTests bool
	OutputDir    string
	Suffix       string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate [packages...]",
		Short: "Write registration files for annotated packages",
		Long: `Write a registration file for every given package that has annotated
elements. Packages are given as "go list" patterns. If none are given, the
packages in the config file are used, or "." if there are none.

Examples:
  bindgen generate .
  bindgen generate ./... --include-tests
  bindgen generate --output-dir ./gen ./screens`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.IncludeTests, "include-tests", false, "also process _test.go files")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "root directory for generated files, organized by import path")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "suffix of generated file names (default "+processor.DefaultFileSuffix+")")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command, args []string) error {
	cfg, err := opts.processorConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.OutputDir != "" {
		if _, err := os.Stat(cfg.OutputDir); err != nil {
			return fmt.Errorf("output directory %s: %w", cfg.OutputDir, err)
		}
	}
	cfg.Processors = processor.AllRegisteredProcessors()
	return cfg.Execute()
}

// processorConfig merges the config file with command line arguments and
// flags. Flags win over the file.
func (opts *GenerateOptions) processorConfig(cmd *cobra.Command, args []string) (processor.Config, error) {
	fc, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		return processor.Config{}, err
	}
	cfg := fc.processorConfig()
	if len(args) > 0 {
		cfg.Patterns = args
	}
	flags := cmd.Flags()
	if flags.Changed("include-tests") {
		cfg.IncludeTests = opts.IncludeTests
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.OutputDir
	}
	if flags.Changed("suffix") {
		cfg.FileSuffix = opts.Suffix
	}
	cfg.Logger = opts.logger(cmd)
	return cfg, nil
}
