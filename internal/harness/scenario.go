package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/skinuse/internal/manifest"
)

// Scenario is one usage expectation over an inline mapset.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Mapset is the mapset under test, in manifest form.
	Mapset manifest.Document `yaml:"mapset"`

	// Elements overrides the names to evaluate. Empty means Used then Unused.
	Elements []string `yaml:"elements,omitempty"`

	// Used lists names that must be reported as used.
	Used []string `yaml:"used,omitempty"`

	// Unused lists names that must be reported as unused.
	Unused []string `yaml:"unused,omitempty"`
}

// Names returns the element names the scenario evaluates.
func (s *Scenario) Names() []string {
	if len(s.Elements) > 0 {
		return slices.Clone(s.Elements)
	}
	names := make([]string, 0, len(s.Used)+len(s.Unused))
	names = append(names, s.Used...)
	return append(names, s.Unused...)
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every .yaml and .yml file in dir, sorted by file name.
// Scenario names must be unique within the directory.
func LoadScenarios(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var scenarios []*Scenario
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate scenario name %q (also in %s)", entry.Name(), s.Name, prev)
		}
		seen[s.Name] = entry.Name()
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Used) == 0 && len(s.Unused) == 0 {
		return fmt.Errorf("at least one used or unused expectation is required")
	}

	used := make(map[string]bool, len(s.Used))
	for i, name := range s.Used {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("used[%d]: name is empty", i)
		}
		used[strings.ToLower(name)] = true
	}
	for i, name := range s.Unused {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("unused[%d]: name is empty", i)
		}
		if used[strings.ToLower(name)] {
			return fmt.Errorf("unused[%d]: %q is also expected to be used", i, name)
		}
	}

	return nil
}
