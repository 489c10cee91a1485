// Package diagnostic renders tart errors to the `[path, line N] message`
// line format used on stderr, with an optional ANSI palette.
package diagnostic

import (
	"errors"
	"fmt"
	"io"

	"github.com/ashn-dot-dev/tart/parser/token"
)

// ColorMode controls when ANSI color codes are used in rendered output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses the --color flag's accepted values.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid --color value %q: want \"auto\", \"always\", or \"never\"", s)
	}
}

// Renderer formats errors for display on a diagnostic stream.
type Renderer struct {
	Color ColorMode
}

// Render writes err to w in the form `[path, line N] message`. Errors that
// do not carry a *token.LocationError are rendered with no location
// prefix.
func (r *Renderer) Render(w io.Writer, err error) error {
	p := choosePalette(r.Color, w)
	var lerr *token.LocationError
	if errors.As(err, &lerr) {
		_, werr := fmt.Fprintf(w, "%s[%s]%s %s\n", p.boldRed, lerr.Location, p.reset, lerr.Err)
		return werr
	}
	_, werr := fmt.Fprintf(w, "%s%s%s\n", p.boldRed, err, p.reset)
	return werr
}
