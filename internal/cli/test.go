package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/skinuse/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run usage scenarios",
		Long: `Run every scenario file in a directory against the rule table.

Each scenario's used and unused expectations are checked. When
<scenarios-dir>/golden/<name>.golden exists, the report must also match it.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, malformed scenarios, etc.)

Examples:
  skinuse test ./scenarios
  skinuse test ./scenarios --filter "mania_*"
  skinuse test ./scenarios --update
  skinuse test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern on the scenario name")

	return cmd
}

func runTests(opts *TestOptions, dir string, cmd *cobra.Command) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", dir))
	}

	scenarios, err := harness.LoadScenarios(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenarios", err)
	}
	scenarios, err = filterScenarios(scenarios, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid filter", err)
	}

	out := opts.formatter(cmd)
	if len(scenarios) == 0 {
		if out.JSON() {
			return out.Success(TestResult{Scenarios: []ScenarioResult{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarios)),
		Total:     len(scenarios),
	}
	for _, s := range scenarios {
		sr := runScenario(opts, dir, s)
		opts.Logger().Debug("scenario finished", "scenario", s.Name, "pass", sr.Pass)
		result.Scenarios = append(result.Scenarios, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if out.JSON() {
		return outputTestJSON(out, result)
	}
	return outputTestText(cmd, result)
}

func filterScenarios(scenarios []*harness.Scenario, pattern string) ([]*harness.Scenario, error) {
	if pattern == "" {
		return scenarios, nil
	}
	var out []*harness.Scenario
	for _, s := range scenarios {
		matched, err := filepath.Match(pattern, s.Name)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, s)
		}
	}
	return out, nil
}

// runScenario executes a single scenario and returns the result.
func runScenario(opts *TestOptions, dir string, s *harness.Scenario) ScenarioResult {
	result, err := harness.Run(s)
	if err != nil {
		return ScenarioResult{
			Name:   s.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	sr := ScenarioResult{Name: s.Name, Pass: result.Passed, Errors: result.Failures}

	snapshot, err := harness.MarshalSnapshot(s.Name, result)
	if err != nil {
		sr.Pass = false
		sr.Errors = append(sr.Errors, fmt.Sprintf("failed to marshal report: %v", err))
		return sr
	}

	goldenPath := goldenFilePath(dir, s.Name)
	if opts.Update {
		if err := writeGoldenFile(goldenPath, snapshot); err != nil {
			sr.Pass = false
			sr.Errors = append(sr.Errors, fmt.Sprintf("failed to update golden file: %v", err))
		}
		return sr
	}

	golden, err := os.ReadFile(goldenPath)
	switch {
	case os.IsNotExist(err):
		// No golden file: expectations only.
	case err != nil:
		sr.Pass = false
		sr.Errors = append(sr.Errors, fmt.Sprintf("failed to read golden file: %v", err))
	case !bytes.Equal(golden, snapshot):
		sr.Pass = false
		sr.Errors = append(sr.Errors, "report does not match golden file (run with --update to regenerate)")
	}
	return sr
}

// goldenFilePath returns the path to the golden file for a scenario.
func goldenFilePath(dir, name string) string {
	return filepath.Join(dir, "golden", name+".golden")
}

func writeGoldenFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(out *OutputFormatter, result TestResult) error {
	if result.Failed == 0 {
		return out.Success(result)
	}

	msg := fmt.Sprintf("%d scenario(s) failed", result.Failed)
	if err := out.encode(CLIResponse{
		Status: "error",
		Data:   result,
		Error:  &CLIError{Code: "E_TEST_FAILED", Message: msg},
	}); err != nil {
		return err
	}
	return NewExitError(ExitFailure, msg)
}

// outputTestText outputs the test result as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	for _, s := range result.Scenarios {
		if s.Pass {
			fmt.Fprintf(w, "✓ %s\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", s.Name)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All scenarios passed")
	return nil
}
