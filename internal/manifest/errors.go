package manifest

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for manifest loading.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeReadFailed     = "E004" // File could not be read
	ErrCodeNotFound       = "E005" // Path not found
	ErrCodeUnsupported    = "E010" // Unknown manifest extension
	ErrCodeYAMLParse      = "E011" // YAML decode failed
	ErrCodeCUECompile     = "E012" // CUE compile failed
	ErrCodeCUESchema      = "E013" // CUE value does not satisfy #Mapset
	ErrCodeInvalidMode    = "E020" // Unknown beatmap mode
	ErrCodeInvalidKind    = "E021" // Unknown hit object kind
	ErrCodeInvalidSprite  = "E022" // Malformed storyboard sprite
	ErrCodeInvalidCount   = "E023" // Negative count or edges
	ErrCodeStoryboardFile = "E024" // storyboard_files without a manifest directory
)

// LoadError represents an error that occurred while loading a manifest.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the LoadError code carried by err, or ErrCodeGeneric.
func ErrorCode(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrCodeGeneric
}
