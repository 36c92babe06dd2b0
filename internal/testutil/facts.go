// Package testutil provides deterministic fixtures shared by package tests.
package testutil

import (
	"slices"
	"strings"

	"github.com/roach88/skinuse/internal/skin"
)

// Facts is a hand-built skin.Facts for tests. The zero value describes an
// empty mapset.
type Facts struct {
	Modes     []skin.Mode
	Slider    bool
	MultiEdge bool
	Spinner   bool
	Break     bool
	Countdown bool
	Assets    []string
}

var _ skin.Facts = (*Facts)(nil)

// WithModes returns facts declaring only the given modes.
func WithModes(modes ...skin.Mode) *Facts {
	return &Facts{Modes: modes}
}

// WithAssets returns facts referencing only the given paths.
func WithAssets(paths ...string) *Facts {
	return &Facts{Assets: paths}
}

// Everything returns facts with every mode and structural feature present.
func Everything() *Facts {
	return &Facts{
		Modes:     slices.Clone(skin.Modes),
		Slider:    true,
		MultiEdge: true,
		Spinner:   true,
		Break:     true,
		Countdown: true,
	}
}

func (f *Facts) HasMode(m skin.Mode) bool { return slices.Contains(f.Modes, m) }
func (f *Facts) HasSlider() bool { return f.Slider }
func (f *Facts) HasMultiEdgeSlider() bool { return f.MultiEdge }
func (f *Facts) HasSpinner() bool { return f.Spinner }
func (f *Facts) HasBreak() bool { return f.Break }
func (f *Facts) HasCountdown() bool { return f.Countdown }

func (f *Facts) ReferencesAsset(path string) bool {
	return slices.Contains(f.ReferencedAssets(), strings.ToLower(path))
}

func (f *Facts) ReferencedAssets() []string {
	out := make([]string, len(f.Assets))
	for i, a := range f.Assets {
		out[i] = strings.ToLower(a)
	}
	return out
}
