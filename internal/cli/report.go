package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/skinuse/internal/store"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Database string
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report [id]",
		Short: "Show saved reports",
		Long: `Show a report saved by "check --db", or list every saved report when
no ID is given.

Examples:
  skinuse report --db ./reports.db
  skinuse report 0190f0c4-7d6e-7b51-9a43-5f1c2d3e4f50 --db ./reports.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default $SKINUSE_DB)")

	return cmd
}

func runReport(ctx context.Context, opts *ReportOptions, args []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	db := opts.Database
	if db == "" {
		db = opts.RootOptions.Database
	}
	if db == "" {
		return NewExitError(ExitCommandError, "no database: pass --db or set SKINUSE_DB")
	}

	st, err := store.Open(db)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	out := opts.formatter(cmd)

	if len(args) == 0 {
		summaries, err := st.ListReports(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list reports", err)
		}
		if out.JSON() {
			return out.Success(summaries)
		}
		w := cmd.OutOrStdout()
		if len(summaries) == 0 {
			fmt.Fprintln(w, "No reports found.")
			return nil
		}
		for _, s := range summaries {
			fmt.Fprintf(w, "%s  %s  %d/%d used  %s\n", s.ID, s.Mapset, s.Used, s.Elements, s.CreatedAt)
		}
		return nil
	}

	report, err := st.LoadReport(ctx, args[0])
	if errors.Is(err, store.ErrNotFound) {
		if out.JSON() {
			_ = out.Error("E_NOT_FOUND", fmt.Sprintf("report %s not found", args[0]), nil)
		}
		return WrapExitError(ExitCommandError, fmt.Sprintf("report %s", args[0]), err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load report", err)
	}

	if out.JSON() {
		return out.Success(report)
	}
	writeReportText(cmd.OutOrStdout(), report)
	return nil
}
