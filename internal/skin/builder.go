package skin

import (
	"log/slog"
	"slices"
)

// CategoryStillFrame labels rules derived from templated names.
const CategoryStillFrame = "still-frame"

// Builder accumulates rules in precedence order and produces an immutable Table.
type Builder struct {
	rules  []Rule
	logger *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used to report table construction.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add registers names under one predicate. Registration order is lookup
// precedence. A call without names registers nothing.
func (b *Builder) Add(category string, pred Predicate, names ...string) *Builder {
	if len(names) == 0 {
		b.logger.Warn("skin rule has no names, skipping", "category", category)
		return b
	}
	b.rules = append(b.rules, Rule{
		Category:  category,
		Names:     slices.Clone(names),
		Predicate: pred,
	})
	return b
}

// Build derives still-frame rules for every templated name registered so far
// and returns the finished table. The builder is left untouched, so calling
// Build again yields an equivalent table.
func (b *Builder) Build() *Table {
	rules := slices.Clone(b.rules)

	derived := 0
	for _, r := range b.rules {
		for _, name := range r.Names {
			if !IsTemplate(name) {
				continue
			}
			rules = append(rules, stillFrameRule(name, r.Predicate))
			derived++
		}
	}

	t := newTable(rules)

	b.logger.Debug("skin rule table built",
		"rules", len(t.rules),
		"literals", len(t.literals),
		"templates", len(t.templates),
		"still_frames", derived,
		"shadowed", t.shadowed,
	)

	return t
}

// stillFrameRule derives the fallback rule for the un-animated form of
// template. It is active when the template's own condition holds and no
// referenced asset is a frame of the template.
func stillFrameRule(template string, parent Predicate) Rule {
	noFrames := func(f Facts) bool {
		for _, path := range f.ReferencedAssets() {
			if IsFrameOf(path, template) {
				return false
			}
		}
		return true
	}

	return Rule{
		Category:     CategoryStillFrame,
		Names:        []string{stillFrameName(template)},
		Predicate:    All(parent, noFrames),
		StillFrameOf: template,
	}
}
