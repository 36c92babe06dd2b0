package mapset

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizePath returns the comparison form of an asset path: surrounding
// whitespace and quotes trimmed, backslashes turned into forward slashes,
// a leading "./" dropped, Unicode NFC, lower case.
//
//	NormalizePath(`"SB\Hit300.PNG"`) // "sb/hit300.png"
func NormalizePath(path string) string {
	p := strings.TrimSpace(path)
	p = strings.Trim(p, `"`)
	p = strings.ReplaceAll(p, `\`, "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return strings.ToLower(norm.NFC.String(p))
}
