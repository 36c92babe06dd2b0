package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/skinuse/internal/analysis"
	"github.com/roach88/skinuse/internal/manifest"
	"github.com/roach88/skinuse/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Database string
	UsedOnly bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <manifest> [names...]",
		Short: "Report skin element usage for a mapset",
		Long: `Load a mapset manifest (.yaml, .yml or .cue) and report whether each
skin element is used by it.

With no names, every element of the rule table is reported, plus every
animation frame the mapset references.

Examples:
  skinuse check ./mapset.yaml
  skinuse check ./mapset.cue hit300-0.png reversearrow.png
  skinuse check ./mapset.yaml --used-only --format json
  skinuse check ./mapset.yaml --db ./reports.db`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "save the report to this SQLite database (default $SKINUSE_DB)")
	cmd.Flags().BoolVar(&opts.UsedOnly, "used-only", false, "only list used elements")

	return cmd
}

func runCheck(ctx context.Context, opts *CheckOptions, manifestPath string, names []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := opts.formatter(cmd)
	logger := opts.Logger()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		if out.JSON() {
			_ = out.Error(manifest.ErrorCode(err), err.Error(), map[string]string{"path": manifestPath})
		}
		return WrapExitError(ExitCommandError, "failed to load manifest", err)
	}
	logger.Debug("manifest loaded", "path", manifestPath, "mapset", m.Name, "beatmaps", len(m.Beatmaps), "files", len(m.Files))

	analyzerOpts := []analysis.Option{analysis.WithLogger(logger)}
	if opts.IDs != nil {
		analyzerOpts = append(analyzerOpts, analysis.WithIDGenerator(opts.IDs))
	}
	a := analysis.New(analyzerOpts...)
	report := a.Analyze(m.Name, m, names...)

	if db := opts.database(); db != "" {
		if err := saveReport(ctx, db, report, a.Table().Len()); err != nil {
			return err
		}
		logger.Info("report saved", "report", report.ID, "db", db)
	}

	if opts.UsedOnly {
		report = usedOnly(report)
	}

	if out.JSON() {
		return out.Success(report)
	}
	writeReportText(cmd.OutOrStdout(), report)
	return nil
}

func (o *CheckOptions) database() string {
	if o.Database != "" {
		return o.Database
	}
	return o.RootOptions.Database
}

func saveReport(ctx context.Context, path string, report *analysis.Report, ruleCount int) error {
	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if err := st.SaveReport(ctx, report, ruleCount); err != nil {
		return WrapExitError(ExitCommandError, "failed to save report", err)
	}
	return nil
}

func usedOnly(r *analysis.Report) *analysis.Report {
	filtered := &analysis.Report{ID: r.ID, Mapset: r.Mapset, Elements: []analysis.Element{}}
	for _, e := range r.Elements {
		if e.Used {
			filtered.Elements = append(filtered.Elements, e)
		}
	}
	return filtered
}

func writeReportText(w io.Writer, r *analysis.Report) {
	fmt.Fprintf(w, "Mapset: %s\n", r.Mapset)
	fmt.Fprintf(w, "Report: %s\n", r.ID)
	fmt.Fprintln(w)

	used := 0
	for _, e := range r.Elements {
		mark := "✗"
		if e.Used {
			mark = "✓"
			used++
		}
		category := e.Category
		if e.Pattern == "" {
			category = "no rule"
		}
		fmt.Fprintf(w, "  %s %s (%s)\n", mark, e.Name, category)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %d used, %d unused, %d total\n", used, len(r.Elements)-used, len(r.Elements))
}
