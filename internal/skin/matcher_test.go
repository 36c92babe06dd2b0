package skin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFrameOf(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		template  string
		want      bool
	}{
		{"single digit", "hit300-5.png", "hit300-{n}.png", true},
		{"multiple digits", "hit300-12.png", "hit300-{n}.png", true},
		{"upper case candidate", "HIT300-0.PNG", "hit300-{n}.png", true},
		{"upper case template", "followpoint-3.png", "FollowPoint-{n}.PNG", true},
		{"no hyphen template", "sliderb12.png", "sliderb{n}.png", true},
		{"zero digits still matches surrounding text", "sliderb.png", "sliderb{n}.png", true},
		{"letters instead of digits", "hit300-a.png", "hit300-{n}.png", false},
		{"digits followed by letters", "hit300-1x.png", "hit300-{n}.png", false},
		{"still frame is not a frame", "hit300.png", "hit300-{n}.png", false},
		{"trailing suffix", "hit300-5.png.bak", "hit300-{n}.png", false},
		{"different extension", "hit300-5.jpg", "hit300-{n}.png", false},
		{"candidate shorter than offset", "hit300", "hit300-{n}.png", false},
		{"candidate ends at offset", "hit300-", "hit300-{n}.png", false},
		{"neighbouring template", "hit300-5.png", "hit300g-{n}.png", false},
		{"inside a directory", "sb/hit300-5.png", "hit300-{n}.png", false},
		{"non-ascii digits", "hit300-٣.png", "hit300-{n}.png", false},
		{"template without placeholder", "hit300.png", "hit300.png", false},
		{"empty candidate", "", "hit300-{n}.png", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsFrameOf(tc.candidate, tc.template))
		})
	}
}

func TestStillFrameName(t *testing.T) {
	testCases := map[string]string{
		"hit300-{n}.png":      "hit300.png",
		"play-skip-{n}.png":   "play-skip.png",
		"sliderb{n}.png":      "sliderb.png",
		"followpoint-{n}.png": "followpoint.png",
	}

	for template, want := range testCases {
		t.Run(template, func(t *testing.T) {
			assert.Equal(t, want, stillFrameName(template))
		})
	}
}

func TestIsTemplate(t *testing.T) {
	assert.True(t, IsTemplate("hit0-{n}.png"))
	assert.False(t, IsTemplate("hit0.png"))
	assert.False(t, IsTemplate("hit0-{x}.png"))
}

func TestWithConversions(t *testing.T) {
	assert.Equal(t, []Mode{ModeStandard, ModeCatch, ModeMania}, withConversions(ModeStandard))
	assert.Equal(t, []Mode{ModeCatch, ModeStandard}, withConversions(ModeCatch))
	assert.Equal(t, []Mode{ModeTaiko}, withConversions(ModeTaiko))
}

func TestParseMode(t *testing.T) {
	testCases := map[string]Mode{
		"standard": ModeStandard,
		"osu":      ModeStandard,
		"0":        ModeStandard,
		"Taiko":    ModeTaiko,
		"fruits":   ModeCatch,
		" catch ":  ModeCatch,
		"3":        ModeMania,
	}
	for in, want := range testCases {
		got, err := ParseMode(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("drums")
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "standard", ModeStandard.String())
	assert.Equal(t, "mania", ModeMania.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}
