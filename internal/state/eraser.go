package state

import "math"

// Erase removes every sub-path with a point inside the square of half-width
// stroke thickness + radius centered on contact. The test is per axis, not
// Euclidean. Strokes left without sub-paths are dropped. It returns whether
// anything was removed.
func (s *Store) Erase(contact Point, radius float64) bool {
	if len(s.strokes) == 0 || s.rejectReentrant("erase") {
		return false
	}

	changed := false
	kept := s.strokes[:0]
	for _, st := range s.strokes {
		reach := st.Thickness + radius
		if b, ok := st.Bounds(); !ok || !b.Pad(reach).Contains(contact) {
			kept = append(kept, st)
			continue
		}

		data := make([]SubPath, 0, len(st.Data))
		path := make([]string, 0, len(st.Path))
		for i, sp := range st.Data {
			if touches(sp, contact, reach) {
				changed = true
				continue
			}
			data = append(data, sp)
			path = append(path, st.Path[i])
		}
		if len(data) == 0 {
			continue
		}
		st.Data, st.Path = data, path
		kept = append(kept, st)
	}
	clear(s.strokes[len(kept):])
	s.strokes = kept

	if changed {
		s.notify()
	}
	return changed
}

func touches(sp SubPath, c Point, reach float64) bool {
	for _, p := range sp {
		if math.Abs(p.X-c.X) < reach && math.Abs(p.Y-c.Y) < reach {
			return true
		}
	}
	return false
}
