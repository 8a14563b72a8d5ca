package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/finbook"
	"github.com/tsawler/finbook/format"
	"github.com/tsawler/finbook/internal/config"
	"github.com/tsawler/finbook/workbook"
)

// NewRootCmd creates the root command. Run without arguments it writes the
// workbook to the current directory.
func NewRootCmd() *cobra.Command {
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "finbook",
		Short: "Generate the Betegna Finance App finance workbook",
		Long: `finbook writes the Betegna Finance App (Ethiopia) finance workbook: a budget
planning worksheet, a 3-month cash flow projection and a product costing
worksheet, one per page.

With no flags the workbook is written as DOCX to
` + workbook.DefaultFilename + ` in the current directory.
The output format follows the file extension (.docx, .html, .md) unless
--format is given.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gen := finbook.New().
				Author(cfg.Author).
				Company(cfg.Company).
				Logger(logger)
			if f := cfg.OutputFormat(); f != format.Unknown {
				gen = gen.Format(f)
			}
			return gen.WriteFile(cfg.Output)
		},
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("output", "o", workbook.DefaultFilename, "Output file path")
	cmd.Flags().StringP("format", "f", "", "Output format: docx, html or markdown (default from extension)")
	cmd.Flags().StringP("config", "c", "", "YAML config file")
	cmd.Flags().String("author", "", "Author recorded in document metadata")

	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a production logger. Without verbose only warnings and
// errors are reported, so a plain run prints nothing.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// resolveConfig layers explicitly set flags over the config file (or the
// environment when no file is given) over the defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.FromEnv()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("author") {
		cfg.Author, _ = flags.GetString("author")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
