package mapset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Layer is the storyboard layer a sprite is drawn on.
type Layer int

const (
	LayerBackground Layer = iota
	LayerFail
	LayerPass
	LayerForeground
	LayerOverlay
	LayerUnknown
)

var layerNames = []string{"Background", "Fail", "Pass", "Foreground", "Overlay"}

func (l Layer) String() string {
	if l >= 0 && int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "Unknown"
}

// Origin is the anchor point of a sprite.
type Origin int

const (
	OriginTopLeft Origin = iota
	OriginCentre
	OriginCentreLeft
	OriginTopRight
	OriginBottomCentre
	OriginTopCentre
	OriginCustom
	OriginCentreRight
	OriginBottomLeft
	OriginBottomRight
	OriginUnknown
)

var originNames = []string{
	"TopLeft", "Centre", "CentreLeft", "TopRight", "BottomCentre",
	"TopCentre", "Custom", "CentreRight", "BottomLeft", "BottomRight",
}

func (o Origin) String() string {
	if o >= 0 && int(o) < len(originNames) {
		return originNames[o]
	}
	return "Unknown"
}

// Default sprite position when a record omits its offset.
const (
	DefaultX = 320
	DefaultY = 240
)

// Sprite is a storyboard sprite declaration:
//
//	Sprite,Foreground,Centre,"SB\whitenamebar.png",320,240
type Sprite struct {
	Layer  Layer
	Origin Origin
	// Path keeps its case and extension; quotes removed, slashes forward.
	Path string
	X, Y float64
}

// StrippedPath is Path in comparison form, see NormalizePath.
func (s Sprite) StrippedPath() string {
	return NormalizePath(s.Path)
}

// ParseError reports a malformed storyboard record.
type ParseError struct {
	Line    int // 1-based; 0 when parsing a single record
	Record  string
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("storyboard line %d: %s: %q", e.Line, e.Message, e.Record)
	}
	return fmt.Sprintf("storyboard: %s: %q", e.Message, e.Record)
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ParseSprite parses one sprite record. The layer and origin may be given by
// name or by number; unrecognized values become LayerUnknown / OriginUnknown.
func ParseSprite(record string) (Sprite, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(record)))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	args, err := r.Read()
	if err != nil {
		return Sprite{}, &ParseError{Record: record, Message: fmt.Sprintf("split fields: %v", err)}
	}

	if len(args) < 4 || !strings.EqualFold(strings.TrimSpace(args[0]), "Sprite") {
		return Sprite{}, &ParseError{Record: record, Message: "expected Sprite,<layer>,<origin>,<path>[,<x>,<y>]"}
	}

	s := Sprite{
		Layer:  Layer(lookupEnum(args[1], layerNames, int(LayerUnknown))),
		Origin: Origin(lookupEnum(args[2], originNames, int(OriginUnknown))),
		Path:   strings.ReplaceAll(strings.Trim(strings.TrimSpace(args[3]), `"`), `\`, "/"),
		X:      DefaultX,
		Y:      DefaultY,
	}

	switch len(args) {
	case 4:
	case 6:
		if s.X, err = strconv.ParseFloat(strings.TrimSpace(args[4]), 64); err != nil {
			return Sprite{}, &ParseError{Record: record, Message: fmt.Sprintf("x offset: %v", err)}
		}
		if s.Y, err = strconv.ParseFloat(strings.TrimSpace(args[5]), 64); err != nil {
			return Sprite{}, &ParseError{Record: record, Message: fmt.Sprintf("y offset: %v", err)}
		}
	default:
		return Sprite{}, &ParseError{Record: record, Message: "offset needs both x and y"}
	}

	return s, nil
}

func lookupEnum(field string, names []string, unknown int) int {
	f := strings.TrimSpace(field)
	if n, err := strconv.Atoi(f); err == nil {
		if n >= 0 && n < len(names) {
			return n
		}
		return unknown
	}
	for i, name := range names {
		if strings.EqualFold(f, name) {
			return i
		}
	}
	return unknown
}

// AddStoryboard scans storyboard text and appends the normalized path of
// every sprite declaration to m.Files. Lines other than sprite declarations are ignored.
// Parsing stops at the first malformed sprite.
func (m *Mapset) AddStoryboard(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !strings.HasPrefix(text, "Sprite,") {
			continue
		}
		s, err := ParseSprite(text)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = line
			}
			return err
		}
		m.Files = append(m.Files, s.StrippedPath())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read storyboard: %w", err)
	}
	return nil
}
