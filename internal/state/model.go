package state

import (
	"github.com/google/uuid"
)

// Point is a captured pointer sample in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SubPath is one continuous pointer-down-to-pointer-up run of points.
type SubPath []Point

// Style holds the attributes a committed stroke is drawn with.
type Style struct {
	Color     string
	Thickness float64
	Opacity   float64
}

// Stroke is the committed drawing unit. Data and Path are parallel:
// Path[i] is the serialized form of Data[i].
type Stroke struct {
	ID        string    `json:"id"`
	Color     string    `json:"color"`
	Thickness float64   `json:"thickness"`
	Opacity   float64   `json:"opacity"`
	Combine   bool      `json:"combine"`
	Data      []SubPath `json:"data"`
	Path      []string  `json:"path"`
}

// NewStroke creates a stroke with a fresh ID holding a single sub-path.
func NewStroke(style Style, combine bool, data SubPath, path string) Stroke {
	return Stroke{
		ID:        uuid.NewString(),
		Color:     style.Color,
		Thickness: style.Thickness,
		Opacity:   style.Opacity,
		Combine:   combine,
		Data:      []SubPath{data},
		Path:      []string{path},
	}
}

// Style returns the stroke's drawing attributes.
func (s Stroke) Style() Style {
	return Style{Color: s.Color, Thickness: s.Thickness, Opacity: s.Opacity}
}

// PointCount returns the number of points over all sub-paths.
func (s Stroke) PointCount() int {
	n := 0
	for _, sp := range s.Data {
		n += len(sp)
	}
	return n
}

// Clone returns a deep copy of the stroke.
func (s Stroke) Clone() Stroke {
	c := s
	c.Data = make([]SubPath, len(s.Data))
	for i, sp := range s.Data {
		c.Data[i] = append(SubPath(nil), sp...)
	}
	c.Path = append([]string(nil), s.Path...)
	return c
}

func cloneStrokes(strokes []Stroke) []Stroke {
	out := make([]Stroke, len(strokes))
	for i, s := range strokes {
		out[i] = s.Clone()
	}
	return out
}
