// Package analysis evaluates the skin rule table against a mapset and
// produces a per-element usage report.
package analysis

import (
	"log/slog"
	"strings"

	"github.com/roach88/skinuse/internal/skin"
)

// Element is the verdict for one element name.
type Element struct {
	Name string `json:"name"`
	// Pattern is the rule name that matched; empty for unrecognized names.
	Pattern  string `json:"pattern,omitempty"`
	Category string `json:"category,omitempty"`
	Used     bool   `json:"used"`
}

// Report is the result of analyzing one mapset.
type Report struct {
	ID       string    `json:"id"`
	Mapset   string    `json:"mapset"`
	Elements []Element `json:"elements"`
}

// Used returns the names of used elements in report order.
func (r *Report) Used() []string {
	return r.names(true)
}

// Unused returns the names of unused elements in report order.
func (r *Report) Unused() []string {
	return r.names(false)
}

// Lookup finds an element by name, ignoring case.
func (r *Report) Lookup(name string) (Element, bool) {
	for _, e := range r.Elements {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Element{}, false
}

func (r *Report) names(used bool) []string {
	var out []string
	for _, e := range r.Elements {
		if e.Used == used {
			out = append(out, e.Name)
		}
	}
	return out
}

// Analyzer evaluates element names against a rule table.
type Analyzer struct {
	table  *skin.Table
	ids    IDGenerator
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTable overrides the rule table. Default: skin.Default().
func WithTable(t *skin.Table) Option {
	return func(a *Analyzer) { a.table = t }
}

// WithIDGenerator overrides report ID generation. Default: UUIDv7Generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(a *Analyzer) { a.ids = g }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{ids: UUIDv7Generator{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	if a.table == nil {
		a.table = skin.Default()
	}
	return a
}

// Table returns the rule table the analyzer evaluates against.
func (a *Analyzer) Table() *skin.Table {
	return a.table
}

// Analyze evaluates names against facts. With no names, it evaluates every
// literal element of the table plus each animation frame the mapset references.
func (a *Analyzer) Analyze(mapsetName string, facts skin.Facts, names ...string) *Report {
	if len(names) == 0 {
		names = a.DefaultNames(facts)
	}

	report := &Report{
		ID:       a.ids.Generate(),
		Mapset:   mapsetName,
		Elements: make([]Element, 0, len(names)),
	}

	for _, name := range names {
		e := Element{Name: name}
		if r, pattern, ok := a.table.Resolve(name); ok {
			e.Pattern = pattern
			e.Category = r.Category
			e.Used = r.Active(facts)
		}
		report.Elements = append(report.Elements, e)
	}

	a.logger.Debug("mapset analyzed",
		"report", report.ID,
		"mapset", mapsetName,
		"elements", len(report.Elements),
		"used", len(report.Used()),
	)

	return report
}

// DefaultNames returns the table's literal names followed by every referenced
// asset that is an animation frame of a templated rule.
func (a *Analyzer) DefaultNames(facts skin.Facts) []string {
	names := a.table.LiteralNames()
	if facts == nil {
		return names
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[strings.ToLower(n)] = true
	}
	for _, asset := range facts.ReferencedAssets() {
		pattern, ok := a.table.ResolvePattern(asset)
		if !ok || !skin.IsTemplate(pattern) || seen[strings.ToLower(asset)] {
			continue
		}
		seen[strings.ToLower(asset)] = true
		names = append(names, asset)
	}
	return names
}
