package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/skinuse/internal/analysis"
)

// Snapshot is the golden-file form of a scenario run.
type Snapshot struct {
	Scenario string             `json:"scenario"`
	ReportID string             `json:"report_id"`
	Mapset   string             `json:"mapset"`
	Passed   bool               `json:"passed"`
	Elements []analysis.Element `json:"elements"`
}

// MarshalSnapshot renders a result as indented JSON with a trailing newline.
func MarshalSnapshot(scenarioName string, result *Result) ([]byte, error) {
	snap := Snapshot{
		Scenario: scenarioName,
		Passed:   result.Passed,
		Elements: []analysis.Element{},
	}
	if result.Report != nil {
		snap.ReportID = result.Report.ID
		snap.Mapset = result.Report.Mapset
		snap.Elements = result.Report.Elements
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the report doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
