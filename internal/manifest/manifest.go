// Package manifest loads mapset descriptions from YAML or CUE files.
//
// A manifest lists the aggregate content of a mapset (modes, hit object
// kinds, breaks, countdowns, referenced files and storyboard sprites) without
// the beatmap files themselves:
//
//	name: example
//	beatmaps:
//	  - version: Hard
//	    mode: standard
//	    countdown: 1
//	    hit_objects:
//	      - {kind: circle, count: 120}
//	      - {kind: slider, edges: 2}
//	    breaks: [{start: 30000, end: 36000}]
//	files: [hit300-0.png, hit300-1.png]
//	storyboard:
//	  - Sprite,Foreground,Centre,"sb/logo.png",320,240
//	storyboard_files: ["Artist - Title (Mapper).osb"]
//
// Storyboard files are read relative to the manifest's directory.
package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/skinuse/internal/mapset"
	"github.com/roach88/skinuse/internal/skin"
)

//go:embed schema.cue
var schemaCUE string

// Document is the serialized form of a mapset manifest. The same field names
// are used by YAML and CUE manifests.
type Document struct {
	Name       string            `yaml:"name" json:"name,omitempty"`
	Beatmaps   []BeatmapDocument `yaml:"beatmaps" json:"beatmaps,omitempty"`
	Files      []string          `yaml:"files" json:"files,omitempty"`
	Storyboard []string          `yaml:"storyboard" json:"storyboard,omitempty"`

	// StoryboardFiles are .osb/.osu files whose sprite declarations add
	// referenced paths.
	StoryboardFiles []string `yaml:"storyboard_files" json:"storyboard_files,omitempty"`
}

// BeatmapDocument describes one difficulty. An empty mode means standard.
type BeatmapDocument struct {
	Version    string              `yaml:"version" json:"version,omitempty"`
	Mode       string              `yaml:"mode" json:"mode,omitempty"`
	Countdown  int                 `yaml:"countdown" json:"countdown,omitempty"`
	HitObjects []HitObjectDocument `yaml:"hit_objects" json:"hit_objects,omitempty"`
	Breaks     []BreakDocument     `yaml:"breaks" json:"breaks,omitempty"`
}

// HitObjectDocument describes Count identical hit objects (default 1).
// Usage only depends on which kinds are present, so one object is kept per
// entry whatever the count.
type HitObjectDocument struct {
	Kind  string `yaml:"kind" json:"kind"`
	Edges int    `yaml:"edges" json:"edges,omitempty"`
	Count int    `yaml:"count" json:"count,omitempty"`
}

// BreakDocument is a break period in milliseconds.
type BreakDocument struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// Load reads a manifest file, choosing the format by extension
// (.yaml, .yml or .cue).
func Load(path string) (*mapset.Mapset, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading manifest: %v", err)}
	}

	var doc *Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		doc, err = ParseYAML(data)
	case ".cue":
		doc, err = ParseCUE(path, data)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported manifest extension %q", ext)}
	}
	if err != nil {
		return nil, err
	}

	m, err := doc.MapsetFS(os.DirFS(filepath.Dir(path)))
	if err != nil {
		return nil, err
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// ParseYAML decodes a YAML manifest. Unknown fields are rejected.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, &LoadError{Code: ErrCodeYAMLParse, Message: fmt.Sprintf("parsing YAML: %v", err)}
	}
	return &doc, nil
}

// ParseCUE compiles a CUE manifest, unifies it with the #Mapset schema and
// decodes the result. filename is only used in error positions.
func ParseCUE(filename string, data []byte) (*Document, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling manifest schema: %v", err)}
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeCUECompile, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Mapset")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeCUESchema, err)
	}

	var doc Document
	if err := unified.Decode(&doc); err != nil {
		return nil, cueLoadError(ErrCodeCUESchema, err)
	}
	return &doc, nil
}

func cueLoadError(code string, err error) *LoadError {
	le := &LoadError{Code: code, Message: cueerrors.Details(err, nil)}
	if positions := cueerrors.Positions(err); len(positions) > 0 {
		le.Pos = positions[0]
	}
	le.Message = strings.TrimSpace(le.Message)
	return le
}

// Mapset converts the document into the facts model. Documents naming
// storyboard files need a directory to read them from; see MapsetFS.
func (d *Document) Mapset() (*mapset.Mapset, error) {
	return d.MapsetFS(nil)
}

// MapsetFS converts the document into the facts model, reading
// StoryboardFiles from fsys.
func (d *Document) MapsetFS(fsys fs.FS) (*mapset.Mapset, error) {
	m := &mapset.Mapset{
		Name:  d.Name,
		Files: append([]string(nil), d.Files...),
	}

	for i, bd := range d.Beatmaps {
		b, err := bd.beatmap(i)
		if err != nil {
			return nil, err
		}
		m.Beatmaps = append(m.Beatmaps, b)
	}

	for i, record := range d.Storyboard {
		s, err := mapset.ParseSprite(record)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeInvalidSprite, Message: fmt.Sprintf("storyboard[%d]: %v", i, err)}
		}
		m.Files = append(m.Files, s.StrippedPath())
	}

	for i, name := range d.StoryboardFiles {
		if fsys == nil {
			return nil, &LoadError{Code: ErrCodeStoryboardFile, Message: fmt.Sprintf("storyboard_files[%d]: no manifest directory to read %q from", i, name)}
		}
		if err := addStoryboardFile(m, fsys, name); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func addStoryboardFile(m *mapset.Mapset, fsys fs.FS, name string) error {
	name = path.Clean(strings.ReplaceAll(name, `\`, "/"))
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("storyboard not found: %s", name)}
	}
	if err != nil {
		return &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("opening storyboard %s: %v", name, err)}
	}
	defer f.Close()

	if err := m.AddStoryboard(f); err != nil {
		code := ErrCodeReadFailed
		if mapset.IsParseError(err) {
			code = ErrCodeInvalidSprite
		}
		return &LoadError{Code: code, Message: fmt.Sprintf("%s: %v", name, err)}
	}
	return nil
}

func (bd BeatmapDocument) beatmap(index int) (mapset.Beatmap, error) {
	b := mapset.Beatmap{
		Version:   bd.Version,
		Mode:      skin.ModeStandard,
		Countdown: bd.Countdown,
	}
	if bd.Version == "" {
		b.Version = fmt.Sprintf("beatmap %d", index+1)
	}

	if bd.Mode != "" {
		mode, err := skin.ParseMode(bd.Mode)
		if err != nil {
			return b, &LoadError{Code: ErrCodeInvalidMode, Message: fmt.Sprintf("beatmaps[%d]: %v", index, err)}
		}
		b.Mode = mode
	}

	for j, hd := range bd.HitObjects {
		kind, err := mapset.ParseHitKind(hd.Kind)
		if err != nil {
			return b, &LoadError{Code: ErrCodeInvalidKind, Message: fmt.Sprintf("beatmaps[%d].hit_objects[%d]: %v", index, j, err)}
		}
		if hd.Count < 0 || hd.Edges < 0 {
			return b, &LoadError{Code: ErrCodeInvalidCount, Message: fmt.Sprintf("beatmaps[%d].hit_objects[%d]: count and edges must not be negative", index, j)}
		}

		edges := hd.Edges
		if kind == mapset.KindSlider && edges == 0 {
			edges = 1
		}
		b.HitObjects = append(b.HitObjects, mapset.HitObject{Kind: kind, Edges: edges})
	}

	for _, br := range bd.Breaks {
		b.Breaks = append(b.Breaks, mapset.Break{Start: br.Start, End: br.End})
	}

	return b, nil
}
