package skin

import (
	"slices"
)

// Table is an immutable, ordered set of skin rules.
//
// Safe for concurrent use: no method mutates the table.
type Table struct {
	rules     []Rule
	literals  map[string]patternRef // folded literal name -> first rule owning it
	templates []patternRef          // templated names in registration order
	shadowed  int                   // literal names hidden by an earlier registration
}

type patternRef struct {
	pattern string
	rule    int
}

func newTable(rules []Rule) *Table {
	t := &Table{
		rules:    rules,
		literals: make(map[string]patternRef),
	}

	for i, r := range rules {
		for _, name := range r.Names {
			if IsTemplate(name) {
				t.templates = append(t.templates, patternRef{pattern: name, rule: i})
				continue
			}
			key := fold(name)
			if _, exists := t.literals[key]; exists {
				t.shadowed++
				continue
			}
			t.literals[key] = patternRef{pattern: name, rule: i}
		}
	}

	return t
}

// Len returns the number of rules, derived still frames included.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rules in precedence order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		r.Names = slices.Clone(r.Names)
		out[i] = r
	}
	return out
}

// Patterns returns every registered name in precedence order, duplicates included.
func (t *Table) Patterns() []string {
	var out []string
	for _, r := range t.rules {
		out = append(out, r.Names...)
	}
	return out
}

// LiteralNames returns the distinct non-templated names in precedence order.
func (t *Table) LiteralNames() []string {
	seen := make(map[string]bool, len(t.literals))
	var out []string
	for _, r := range t.rules {
		for _, name := range r.Names {
			key := fold(name)
			if IsTemplate(name) || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, name)
		}
	}
	return out
}

// ResolvePattern returns the registered name governing name: an exact literal
// (ignoring case) if one exists, otherwise the first template name is a frame of.
func (t *Table) ResolvePattern(name string) (string, bool) {
	ref, ok := t.lookup(name)
	if !ok {
		return "", false
	}
	return ref.pattern, true
}

// Resolve returns the rule governing name and the pattern that matched it.
func (t *Table) Resolve(name string) (Rule, string, bool) {
	ref, ok := t.lookup(name)
	if !ok {
		return Rule{}, "", false
	}
	return t.rules[ref.rule], ref.pattern, true
}

// IsUsed reports whether the element name is used by the mapset described by
// facts. Unrecognized names are never used. A nil facts is treated as a mapset
// with nothing in it.
func (t *Table) IsUsed(name string, facts Facts) bool {
	r, _, ok := t.Resolve(name)
	if !ok {
		return false
	}
	return r.Active(facts)
}

func (t *Table) lookup(name string) (patternRef, bool) {
	if ref, ok := t.literals[fold(name)]; ok {
		return ref, true
	}
	for _, ref := range t.templates {
		if IsFrameOf(name, ref.pattern) {
			return ref, true
		}
	}
	return patternRef{}, false
}
