package state

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds returns the bounding box of all points of the stroke.
// The second result is false for a stroke without points.
func (s Stroke) Bounds() (Rect, bool) {
	var r Rect
	found := false
	for _, sp := range s.Data {
		b, ok := sp.Bounds()
		if !ok {
			continue
		}
		if !found {
			r, found = b, true
			continue
		}
		r = r.Union(b)
	}
	return r, found
}

// Bounds returns the bounding box of the sub-path.
func (sp SubPath) Bounds() (Rect, bool) {
	if len(sp) == 0 {
		return Rect{}, false
	}
	minX, minY := sp[0].X, sp[0].Y
	maxX, maxY := sp[0].X, sp[0].Y
	for _, p := range sp[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Pad grows the rectangle by d on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	minX := min(r.X, o.X)
	minY := min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether p lies inside the closed rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// DocumentBounds returns the union of all stroke bounds.
func DocumentBounds(strokes []Stroke) (Rect, bool) {
	var r Rect
	found := false
	for _, s := range strokes {
		b, ok := s.Bounds()
		if !ok {
			continue
		}
		if !found {
			r, found = b, true
			continue
		}
		r = r.Union(b)
	}
	return r, found
}
