package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/skinuse/internal/analysis"
	"github.com/roach88/skinuse/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	LogLevel string
	Database string // default for --db, from SKINUSE_DB

	// IDs overrides report ID generation (for testing).
	// If nil, defaults to analysis.UUIDv7Generator.
	IDs analysis.IDGenerator

	logger *slog.Logger
}

// Logger returns the logger installed by the root command, or slog.Default()
// when a subcommand runs on its own.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. cfg supplies environment
// defaults; flags override them. A nil cfg uses built-in defaults.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = &config.Config{Format: "text", LogLevel: "warn"}
	}
	opts := &RootOptions{
		Format:   cfg.Format,
		LogLevel: cfg.LogLevel,
		Database: cfg.DBPath,
	}

	cmd := &cobra.Command{
		Use:   "skinuse",
		Short: "Report which skin elements a mapset uses",
		Long: `skinuse evaluates a fixed table of skin element rules against a mapset
and reports which elements its beatmaps can display or play.

Environment:
  SKINUSE_FORMAT     default output format (text|json)
  SKINUSE_DB         default report database for check and report
  SKINUSE_LOG_LEVEL  log level (debug|info|warn|error)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			level, err := config.ParseLevel(opts.LogLevel)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid log level", err)
			}
			if opts.Verbose {
				level = slog.LevelDebug
			}

			opts.logger = config.NewLogger(cmd.ErrOrStderr(), level, opts.Format)
			slog.SetDefault(opts.logger)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level (debug|info|warn|error)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewElementsCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}
