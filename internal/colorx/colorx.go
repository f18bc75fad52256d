// Package colorx converts the CSS color strings stored on strokes into RGBA
// values for renderers that cannot take the string as-is.
package colorx

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse accepts "#rgb", "#rrggbb" and CSS color names.
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}
	return color.NRGBA{}, fmt.Errorf("parse color %q: unknown color", s)
}

// ParseOr is Parse falling back to def for unparsable input.
func ParseOr(s string, def color.NRGBA) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		return def
	}
	return c
}

// WithOpacity returns c with its alpha scaled by opacity in [0,1].
func WithOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	opacity = max(0, min(1, opacity))
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
