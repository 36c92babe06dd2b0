package skin

import (
	"strings"

	"golang.org/x/text/cases"
)

// Placeholder marks the animation frame index inside a templated element name.
const Placeholder = "{n}"

// IsTemplate reports whether name contains the frame placeholder.
func IsTemplate(name string) bool {
	return strings.Contains(name, Placeholder)
}

// IsFrameOf reports whether candidate is an animation frame of template.
//
// The digits found in candidate at the placeholder's offset are substituted
// into the template and the result must equal candidate, ignoring case:
//
//	IsFrameOf("hit300-12.png", "hit300-{n}.png") // true
//	IsFrameOf("HIT300-0.PNG", "hit300-{n}.png")  // true
//	IsFrameOf("hit300-a.png", "hit300-{n}.png")  // false
//	IsFrameOf("hit300.png", "hit300-{n}.png")    // false
func IsFrameOf(candidate, template string) bool {
	start := strings.Index(template, Placeholder)
	if start == -1 || len(candidate) <= start {
		return false
	}

	end := start
	for end < len(candidate) && isDigit(candidate[end]) {
		end++
	}
	frame := candidate[start:end]

	return equalFold(strings.Replace(template, Placeholder, frame, 1), candidate)
}

// stillFrameName strips the placeholder segment from a template:
// "hit300-{n}.png" -> "hit300.png", "sliderb{n}.png" -> "sliderb.png".
func stillFrameName(template string) string {
	if strings.Contains(template, "-"+Placeholder) {
		return strings.Replace(template, "-"+Placeholder, "", 1)
	}
	return strings.Replace(template, Placeholder, "", 1)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// fold returns the case-folded key used for case-insensitive name lookups.
// A Caser is stateful, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}
