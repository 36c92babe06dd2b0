package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/skinuse/internal/analysis"
	"github.com/roach88/skinuse/internal/skin"
	"github.com/roach88/skinuse/internal/store"
	"github.com/roach88/skinuse/internal/testutil"
)

// Result is the outcome of a scenario run.
type Result struct {
	// Passed is true when every expectation held.
	Passed bool `json:"passed"`

	// Failures lists the expectations that did not hold.
	Failures []string `json:"failures,omitempty"`

	// Report is the analysis report as read back from the store.
	Report *analysis.Report `json:"report"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{Passed: true, Failures: []string{}}
}

// AddFailure records a failed expectation and marks the result as failed.
func (r *Result) AddFailure(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
	r.Passed = false
}

// Run evaluates a scenario against the default rule table.
//
// Each scenario runs in a fresh in-memory database: the report is saved and
// read back before expectations are checked, so the persisted form is what
// gets asserted.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithTable(context.Background(), scenario, skin.Default())
}

// RunWithTable evaluates a scenario against table.
func RunWithTable(ctx context.Context, scenario *Scenario, table *skin.Table) (*Result, error) {
	m, err := scenario.Mapset.Mapset()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	if m.Name == "" {
		m.Name = scenario.Name
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	a := analysis.New(
		analysis.WithTable(table),
		analysis.WithIDGenerator(testutil.NewSequentialIDs(scenario.Name)),
		analysis.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	report := a.Analyze(m.Name, m, scenario.Names()...)

	if err := st.SaveReport(ctx, report, table.Len()); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	stored, err := st.LoadReport(ctx, report.ID)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Report = stored
	checkExpectations(scenario, stored, result)
	return result, nil
}

func checkExpectations(s *Scenario, report *analysis.Report, result *Result) {
	for _, name := range s.Used {
		e, ok := report.Lookup(name)
		switch {
		case !ok:
			result.AddFailure("%s: not evaluated", name)
		case e.Pattern == "":
			result.AddFailure("%s: expected used, but no rule matches it", name)
		case !e.Used:
			result.AddFailure("%s: expected used, got unused (rule %q, category %s)", name, e.Pattern, e.Category)
		}
	}
	for _, name := range s.Unused {
		e, ok := report.Lookup(name)
		switch {
		case !ok:
			result.AddFailure("%s: not evaluated", name)
		case e.Used:
			result.AddFailure("%s: expected unused, got used (rule %q, category %s)", name, e.Pattern, e.Category)
		}
	}
}
