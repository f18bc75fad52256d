package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"SketchBoard/internal/state"
)

const svgMime = "image/svg+xml"

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

// ToSVG serializes strokes into a standalone SVG document of the given size.
// Strokes are emitted in order, so later strokes are drawn on top. A stroke
// with Combine set becomes a single <path> whose data joins all its sub-paths;
// otherwise every sub-path gets its own <path> with the same style.
func ToSVG(strokes []state.Stroke, width, height float64) string {
	w, h := state.FormatNumber(width), state.FormatNumber(height)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, w, h, w, h)
	for _, s := range strokes {
		if s.Combine {
			writePath(&sb, strings.Join(s.Path, " "), s)
			continue
		}
		for _, d := range s.Path {
			writePath(&sb, d, s)
		}
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, d string, s state.Stroke) {
	fmt.Fprintf(sb, `<path d="%s" stroke="%s" stroke-width="%s" opacity="%s" stroke-linecap="round" stroke-linejoin="round" fill="none"/>`,
		attrEscaper.Replace(d), attrEscaper.Replace(s.Color), state.FormatNumber(s.Thickness), state.FormatNumber(s.Opacity))
}

// WriteSVG writes the document produced by ToSVG to w.
func WriteSVG(w io.Writer, strokes []state.Stroke, width, height float64) error {
	_, err := io.WriteString(w, ToSVG(strokes, width, height))
	return err
}

// MinifySVG shortens an SVG document without changing how it renders.
func MinifySVG(doc string) (string, error) {
	m := minify.New()
	m.AddFunc(svgMime, svg.Minify)
	out, err := m.String(svgMime, doc)
	if err != nil {
		return "", fmt.Errorf("minify svg: %w", err)
	}
	return out, nil
}

// Extent returns the smallest canvas size, anchored at the origin, that holds
// every stroke including its line width. ok is false when there is nothing to draw.
func Extent(strokes []state.Stroke) (width, height float64, ok bool) {
	r, ok := state.DocumentBounds(strokes)
	if !ok {
		return 0, 0, false
	}
	thickest := 0.0
	for _, s := range strokes {
		thickest = max(thickest, s.Thickness)
	}
	r = r.Pad(thickest / 2)
	return math.Ceil(r.X + r.Width), math.Ceil(r.Y + r.Height), true
}
