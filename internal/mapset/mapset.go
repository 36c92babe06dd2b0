package mapset

import (
	"fmt"
	"strings"

	"github.com/roach88/skinuse/internal/skin"
)

// HitKind is the structural kind of a hit object.
type HitKind int

const (
	KindCircle HitKind = iota
	KindSlider
	KindSpinner
	KindHold
)

// String returns the manifest name of the kind.
func (k HitKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSlider:
		return "slider"
	case KindSpinner:
		return "spinner"
	case KindHold:
		return "hold"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseHitKind parses a manifest hit object kind.
func ParseHitKind(s string) (HitKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return KindCircle, nil
	case "slider":
		return KindSlider, nil
	case "spinner":
		return KindSpinner, nil
	case "hold", "hold-note":
		return KindHold, nil
	}
	return 0, fmt.Errorf("unknown hit object kind %q", s)
}

// HitObject is the part of a hit object the skin rules care about.
type HitObject struct {
	Kind HitKind
	// Edges is a slider's span count; more than one means it reverses.
	Edges int
}

// Break is a break period in milliseconds.
type Break struct {
	Start int
	End   int
}

// Beatmap is one difficulty of a mapset.
type Beatmap struct {
	Version    string
	Mode       skin.Mode
	Countdown  int // 0 disables the countdown
	HitObjects []HitObject
	Breaks     []Break
}

// Mapset is a set of beatmaps sharing one song folder.
type Mapset struct {
	Name     string
	Beatmaps []Beatmap
	// Files are asset paths referenced anywhere in the mapset, relative to
	// the song folder.
	Files []string
}

var _ skin.Facts = (*Mapset)(nil)

func (m *Mapset) HasMode(mode skin.Mode) bool {
	for _, b := range m.Beatmaps {
		if b.Mode == mode {
			return true
		}
	}
	return false
}

func (m *Mapset) HasSlider() bool {
	return m.anyHitObject(func(h HitObject) bool { return h.Kind == KindSlider })
}

func (m *Mapset) HasMultiEdgeSlider() bool {
	return m.anyHitObject(func(h HitObject) bool { return h.Kind == KindSlider && h.Edges > 1 })
}

func (m *Mapset) HasSpinner() bool {
	return m.anyHitObject(func(h HitObject) bool { return h.Kind == KindSpinner })
}

func (m *Mapset) HasBreak() bool {
	for _, b := range m.Beatmaps {
		if len(b.Breaks) > 0 {
			return true
		}
	}
	return false
}

func (m *Mapset) HasCountdown() bool {
	for _, b := range m.Beatmaps {
		if b.Countdown > 0 {
			return true
		}
	}
	return false
}

// ReferencesAsset compares path against every referenced file after
// normalizing both sides.
func (m *Mapset) ReferencesAsset(path string) bool {
	want := NormalizePath(path)
	for _, f := range m.Files {
		if NormalizePath(f) == want {
			return true
		}
	}
	return false
}

// ReferencedAssets returns the distinct normalized file paths in the order
// they were first referenced.
func (m *Mapset) ReferencedAssets() []string {
	seen := make(map[string]bool, len(m.Files))
	out := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		p := NormalizePath(f)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func (m *Mapset) anyHitObject(pred func(HitObject) bool) bool {
	for _, b := range m.Beatmaps {
		for _, h := range b.HitObjects {
			if pred(h) {
				return true
			}
		}
	}
	return false
}
