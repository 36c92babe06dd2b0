package skin

import (
	"fmt"
	"strings"
)

// Mode is a gameplay mode a beatmap can be authored for.
type Mode int

const (
	ModeStandard Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// Modes lists every known mode in declaration order.
var Modes = []Mode{ModeStandard, ModeTaiko, ModeCatch, ModeMania}

// String returns the lowercase mode name used in manifests.
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "catch"
	case ModeMania:
		return "mania"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts a mode name ("standard", "osu", "taiko", "catch", "fruits",
// "mania") or its numeric form ("0".."3").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "osu", "0":
		return ModeStandard, nil
	case "taiko", "1":
		return ModeTaiko, nil
	case "catch", "fruits", "ctb", "2":
		return ModeCatch, nil
	case "mania", "3":
		return ModeMania, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Facts is the read-only view of a mapset that rule predicates are evaluated
// against. It is owned and constructed by the caller.
//
// Asset paths are compared after normalization (lowercase, forward slashes),
// so ReferencesAsset("sliderb.png") matches a mapset file "SliderB.PNG".
type Facts interface {
	// HasMode reports whether any beatmap in the mapset declares mode.
	HasMode(mode Mode) bool
	HasSlider() bool
	// HasMultiEdgeSlider reports whether any slider reverses at least once.
	HasMultiEdgeSlider() bool
	HasSpinner() bool
	HasBreak() bool
	HasCountdown() bool
	// ReferencesAsset reports whether the normalized path is referenced
	// anywhere in the mapset.
	ReferencesAsset(path string) bool
	// ReferencedAssets returns every referenced path in normalized form.
	ReferencedAssets() []string
}

// noFacts stands in for a nil Facts: nothing is present.
type noFacts struct{}

func (noFacts) HasMode(Mode) bool { return false }
func (noFacts) HasSlider() bool { return false }
func (noFacts) HasMultiEdgeSlider() bool { return false }
func (noFacts) HasSpinner() bool { return false }
func (noFacts) HasBreak() bool { return false }
func (noFacts) HasCountdown() bool { return false }
func (noFacts) ReferencesAsset(string) bool { return false }
func (noFacts) ReferencedAssets() []string { return nil }
