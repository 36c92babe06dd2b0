package skin

import (
	"log/slog"
	"sync"
)

// Rule categories of the default table.
const (
	CategoryGeneral        = "general"
	CategoryStandard       = "standard"
	CategoryCatch          = "catch"
	CategoryMania          = "mania"
	CategoryNotMania       = "not-mania"
	CategoryCountdown      = "countdown"
	CategorySlider         = "slider"
	CategoryReverseArrow   = "reverse-arrow"
	CategorySpinner        = "spinner"
	CategoryBreak          = "break"
	CategorySliderBallDeco = "slider-ball-decoration"
	CategoryParticle       = "particle"
)

// conversions lists the modes each mode's content is converted to or from.
// Standard beatmaps play in catch and mania, so their elements are shared.
// Taiko conversion is not modelled: no taiko-specific elements are tracked.
var conversions = map[Mode][]Mode{
	ModeStandard: {ModeCatch, ModeMania},
	ModeCatch:    {ModeStandard},
	ModeMania:    {ModeStandard},
}

// withConversions returns modes plus every mode they convert with.
func withConversions(modes ...Mode) []Mode {
	seen := make(map[Mode]bool)
	var out []Mode
	add := func(m Mode) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	for _, m := range modes {
		add(m)
		for _, c := range conversions[m] {
			add(c)
		}
	}
	return out
}

// DefaultTable builds the fixed skin rule table. Registration order is lookup
// precedence: unconditional, mode-gated, situational, then asset-dependent
// groups, followed by the derived still frames.
func DefaultTable(opts ...BuilderOption) *Table {
	b := NewBuilder(opts...)

	b.Add(CategoryGeneral, nil, generalElements...)

	b.Add(CategoryStandard, AnyMode(withConversions(ModeStandard)...), standardElements...)
	b.Add(CategoryCatch, AnyMode(withConversions(ModeCatch)...), catchElements...)
	b.Add(CategoryMania, AnyMode(withConversions(ModeMania)...), maniaElements...)
	b.Add(CategoryNotMania, AnyModeExcept(ModeMania), notManiaElements...)

	b.Add(CategoryCountdown, HasCountdown, countdownElements...)
	b.Add(CategorySlider, HasSlider, sliderElements...)
	b.Add(CategoryReverseArrow, HasMultiEdgeSlider, "reversearrow.png")
	b.Add(CategorySpinner, HasSpinner, spinnerElements...)
	b.Add(CategoryBreak, HasBreak, breakElements...)

	b.Add(CategorySliderBallDeco, Not(References("sliderb.png")), sliderBallDecorations...)
	for _, p := range particles {
		b.Add(CategoryParticle, References(p.requires), p.element)
	}

	return b.Build()
}

var defaultTable = sync.OnceValue(func() *Table {
	return DefaultTable(WithLogger(slog.Default()))
})

// Default returns the process-wide default table, building it on first use.
func Default() *Table {
	return defaultTable()
}

// IsUsed reports whether the element name is used by the mapset, according
// to the default table.
func IsUsed(name string, facts Facts) bool {
	return Default().IsUsed(name, facts)
}
