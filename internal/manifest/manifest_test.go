package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/skinuse/internal/mapset"
	"github.com/roach88/skinuse/internal/skin"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const yamlManifest = `
name: example
beatmaps:
  - version: Hard
    mode: standard
    countdown: 1
    hit_objects:
      - {kind: circle, count: 3}
      - {kind: slider, edges: 2}
    breaks: [{start: 30000, end: 36000}]
  - version: Salad
    mode: fruits
files: [hit300-0.png, SliderB.png]
storyboard:
  - Sprite,Foreground,Centre,"SB\logo.png",320,240
`

func TestLoad_YAML(t *testing.T) {
	m, err := Load(writeFile(t, "set.yaml", yamlManifest))
	require.NoError(t, err)

	assert.Equal(t, "example", m.Name)
	require.Len(t, m.Beatmaps, 2)

	hard := m.Beatmaps[0]
	assert.Equal(t, "Hard", hard.Version)
	assert.Equal(t, skin.ModeStandard, hard.Mode)
	assert.Equal(t, 1, hard.Countdown)
	assert.Equal(t, []mapset.HitObject{
		{Kind: mapset.KindCircle},
		{Kind: mapset.KindSlider, Edges: 2},
	}, hard.HitObjects)
	assert.Equal(t, []mapset.Break{{Start: 30000, End: 36000}}, hard.Breaks)

	assert.Equal(t, skin.ModeCatch, m.Beatmaps[1].Mode)
	assert.Equal(t, []string{"hit300-0.png", "SliderB.png", "sb/logo.png"}, m.Files)

	assert.True(t, m.HasMultiEdgeSlider())
	assert.True(t, m.ReferencesAsset("sliderb.png"))
}

func TestLoad_NameDefaultsToFileName(t *testing.T) {
	m, err := Load(writeFile(t, "my-set.yml", "files: [a.png]\n"))
	require.NoError(t, err)
	assert.Equal(t, "my-set", m.Name)
}

func TestLoad_EmptyYAML(t *testing.T) {
	m, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, m.Beatmaps)
}

func TestLoad_DefaultsForBeatmap(t *testing.T) {
	m, err := Load(writeFile(t, "set.yaml", "beatmaps:\n  - hit_objects: [{kind: slider}]\n"))
	require.NoError(t, err)

	b := m.Beatmaps[0]
	assert.Equal(t, "beatmap 1", b.Version)
	assert.Equal(t, skin.ModeStandard, b.Mode)
	assert.Equal(t, []mapset.HitObject{{Kind: mapset.KindSlider, Edges: 1}}, b.HitObjects)
}

func TestLoad_CUE(t *testing.T) {
	content := `
name: "cue-set"
beatmaps: [{
	version: "Insane"
	mode:    "mania"
	hit_objects: [{kind: "hold", count: 3}]
}, {
	mode: "catch"
	breaks: [{start: 1, end: 2}]
}]
files: ["sliderb.png"]
`
	m, err := Load(writeFile(t, "set.cue", content))
	require.NoError(t, err)

	assert.Equal(t, "cue-set", m.Name)
	require.Len(t, m.Beatmaps, 2)
	assert.Equal(t, skin.ModeMania, m.Beatmaps[0].Mode)
	assert.Equal(t, []mapset.HitObject{{Kind: mapset.KindHold}}, m.Beatmaps[0].HitObjects)
	assert.True(t, m.HasBreak())
	assert.Equal(t, []string{"sliderb.png"}, m.Files)
}

func TestLoad_LargeCountKeepsOneObject(t *testing.T) {
	m, err := Load(writeFile(t, "set.yaml", "beatmaps:\n  - hit_objects: [{kind: spinner, count: 2000000000}]\n"))
	require.NoError(t, err)

	assert.Equal(t, []mapset.HitObject{{Kind: mapset.KindSpinner}}, m.Beatmaps[0].HitObjects)
	assert.True(t, m.HasSpinner())
}

func TestLoad_NumericModes(t *testing.T) {
	yamlSet, err := Load(writeFile(t, "set.yaml", "beatmaps: [{mode: \"3\"}, {mode: \"2\"}]\n"))
	require.NoError(t, err)

	cueSet, err := Load(writeFile(t, "set.cue", `beatmaps: [{mode: "3"}, {mode: "2"}]`))
	require.NoError(t, err)

	for _, m := range []*mapset.Mapset{yamlSet, cueSet} {
		require.Len(t, m.Beatmaps, 2)
		assert.Equal(t, skin.ModeMania, m.Beatmaps[0].Mode)
		assert.Equal(t, skin.ModeCatch, m.Beatmaps[1].Mode)
	}
}

const storyboardText = `[Events]
//Storyboard Layer 3 (Foreground)
Sprite,Foreground,Centre,"SB\hit300.png",320,240
 F,0,0,1000,1
Sprite,Background,TopLeft,"bg.jpg"
`

func TestLoad_StoryboardFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sb"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sb", "Artist - Title.osb"), []byte(storyboardText), 0644))
	path := filepath.Join(dir, "set.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [audio.mp3]\nstoryboard_files: ['sb\\Artist - Title.osb']\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"audio.mp3", "sb/hit300.png", "bg.jpg"}, m.Files)
	assert.True(t, m.ReferencesAsset("SB/hit300.png"))
}

func TestLoad_StoryboardFilesCUE(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "map.osb"), []byte(storyboardText), 0644))
	path := filepath.Join(dir, "set.cue")
	require.NoError(t, os.WriteFile(path, []byte(`storyboard_files: ["map.osb"]`), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sb/hit300.png", "bg.jpg"}, m.Files)
}

func TestLoad_StoryboardFileErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.osb"), []byte("[Events]\nSprite,Foreground,Centre,\"a.png\",1\n"), 0644))

	testCases := []struct {
		name     string
		manifest string
		code     string
		message  string
	}{
		{"missing file", "storyboard_files: [missing.osb]\n", ErrCodeNotFound, "storyboard not found: missing.osb"},
		{"malformed sprite", "storyboard_files: [bad.osb]\n", ErrCodeInvalidSprite, "storyboard line 2"},
		{"outside manifest directory", "storyboard_files: [../elsewhere.osb]\n", ErrCodeReadFailed, "opening storyboard"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "set.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.manifest), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Equal(t, tc.code, ErrorCode(err), err.Error())
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestDocument_StoryboardFilesNeedDirectory(t *testing.T) {
	doc := &Document{StoryboardFiles: []string{"map.osb"}}

	_, err := doc.Mapset()
	require.Error(t, err)
	assert.Equal(t, ErrCodeStoryboardFile, ErrorCode(err))
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
		code    string
	}{
		{"unsupported extension", "set.json", "{}", ErrCodeUnsupported},
		{"bad yaml", "set.yaml", "beatmaps: [", ErrCodeYAMLParse},
		{"unknown yaml field", "set.yaml", "colour: red\n", ErrCodeYAMLParse},
		{"bad mode", "set.yaml", "beatmaps: [{mode: drums}]\n", ErrCodeInvalidMode},
		{"bad kind", "set.yaml", "beatmaps: [{hit_objects: [{kind: drumroll}]}]\n", ErrCodeInvalidKind},
		{"negative count", "set.yaml", "beatmaps: [{hit_objects: [{kind: circle, count: -1}]}]\n", ErrCodeInvalidCount},
		{"bad sprite", "set.yaml", "storyboard: [\"Sprite,Foreground\"]\n", ErrCodeInvalidSprite},
		{"cue syntax", "set.cue", "name: \n beatmaps: [", ErrCodeCUECompile},
		{"cue bad mode", "set.cue", `beatmaps: [{mode: "drums"}]`, ErrCodeCUESchema},
		{"cue unknown field", "set.cue", `colour: "red"`, ErrCodeCUESchema},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.file, tc.content))
			require.Error(t, err)
			assert.Equal(t, tc.code, ErrorCode(err), err.Error())
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotFound, ErrorCode(err))
}

func TestLoadError_Format(t *testing.T) {
	err := &LoadError{Code: ErrCodeInvalidMode, Message: "beatmaps[0]: unknown mode"}
	assert.Equal(t, "E020: beatmaps[0]: unknown mode", err.Error())
	assert.Equal(t, ErrCodeGeneric, ErrorCode(assert.AnError))
}
