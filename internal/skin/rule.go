package skin

// Predicate decides whether a rule's elements are used by a mapset.
// A nil Predicate means the rule is always active.
type Predicate func(Facts) bool

// Rule governs a group of element names sharing one activation condition.
//
// INVARIANTS:
//   - Names is non-empty
//   - a templated name contains exactly one Placeholder
//   - rules are never mutated after the table is built
type Rule struct {
	// Category labels the group the rule came from (e.g. "general", "slider").
	Category string

	// Names are literal element names or frame templates, in registration order.
	Names []string

	// Predicate is nil for unconditional rules.
	Predicate Predicate

	// StillFrameOf is the template this rule was derived from, or empty for
	// rules registered directly.
	StillFrameOf string
}

// Active evaluates the rule against facts.
func (r Rule) Active(facts Facts) bool {
	if r.Predicate == nil {
		return true
	}
	if facts == nil {
		facts = noFacts{}
	}
	return r.Predicate(facts)
}

// Always is the explicit form of a nil predicate.
func Always(Facts) bool { return true }

// AnyMode is active when any beatmap declares one of modes.
func AnyMode(modes ...Mode) Predicate {
	return func(f Facts) bool {
		for _, m := range modes {
			if f.HasMode(m) {
				return true
			}
		}
		return false
	}
}

// AnyModeExcept is active when any beatmap declares a mode other than excluded.
func AnyModeExcept(excluded Mode) Predicate {
	var others []Mode
	for _, m := range Modes {
		if m != excluded {
			others = append(others, m)
		}
	}
	return AnyMode(others...)
}

// References is active when the mapset references path.
func References(path string) Predicate {
	return func(f Facts) bool { return f.ReferencesAsset(path) }
}

// Not negates p. A nil p is treated as always true, so Not(nil) is never active.
func Not(p Predicate) Predicate {
	return func(f Facts) bool { return !evaluate(p, f) }
}

// All is active when every predicate is. nil entries count as true.
func All(preds ...Predicate) Predicate {
	return func(f Facts) bool {
		for _, p := range preds {
			if !evaluate(p, f) {
				return false
			}
		}
		return true
	}
}

func evaluate(p Predicate, f Facts) bool {
	return p == nil || p(f)
}

// Method-value adapters for the structural facts.
var (
	HasSlider          Predicate = Facts.HasSlider
	HasMultiEdgeSlider Predicate = Facts.HasMultiEdgeSlider
	HasSpinner         Predicate = Facts.HasSpinner
	HasBreak           Predicate = Facts.HasBreak
	HasCountdown       Predicate = Facts.HasCountdown
)
