package state

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Quantize floors v when round is set. Applied once, at capture time.
func Quantize(v float64, round bool) float64 {
	if round {
		return math.Floor(v)
	}
	return v
}

// Simplify reduces a polyline with Douglas-Peucker: interior points closer than
// tolerance to the chord of their segment are dropped. The first and last
// points are always kept. A tolerance of zero returns the points unchanged.
func Simplify(points []Point, tolerance float64) []Point {
	if tolerance <= 0 || len(points) < 3 {
		return append([]Point(nil), points...)
	}

	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = orb.Point{p.X, p.Y}
	}
	reduced, ok := simplify.DouglasPeucker(tolerance).Simplify(ls).(orb.LineString)
	if !ok || len(reduced) < 2 {
		return []Point{points[0], points[len(points)-1]}
	}

	out := make([]Point, len(reduced))
	for i, p := range reduced {
		out[i] = Point{X: p.X(), Y: p.Y()}
	}
	return out
}

// PathString builds an SVG path "d" attribute: "M x0,y0 L x1,y1 ...".
// A single point becomes a move followed by a line to itself so it renders as a dot.
func PathString(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	if len(points) == 1 {
		points = []Point{points[0], points[0]}
	}

	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(FormatNumber(p.X))
		sb.WriteByte(',')
		sb.WriteString(FormatNumber(p.Y))
	}
	return sb.String()
}

// FormatNumber writes v in its shortest decimal form, so integers print without a fraction.
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
