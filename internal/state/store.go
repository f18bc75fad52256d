package state

import (
	"fmt"

	"github.com/google/uuid"
)

// Store owns the committed strokes of a drawing and the in-progress sub-path.
//
// A Store is not safe for concurrent use. All calls are expected to come from
// the goroutine delivering pointer events, in begin/change/end order.
type Store struct {
	strokes   []Stroke
	current   SubPath
	drawing   bool
	clock     clock
	onChange  ChangeFunc
	notifying bool
}

// NewStore creates a store holding a copy of initial. Every initial stroke must be valid.
// onChange may be nil.
func NewStore(initial []Stroke, onChange ChangeFunc) (*Store, error) {
	for i, s := range initial {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("initial stroke %d: %w", i, err)
		}
	}
	strokes := cloneStrokes(initial)
	for i := range strokes {
		if strokes[i].ID == "" {
			strokes[i].ID = uuid.NewString()
		}
	}
	return &Store{
		strokes:  strokes,
		onChange: onChange,
	}, nil
}

// BeginStroke starts a new brush gesture. A buffer left over from an
// interrupted gesture is dropped.
func (s *Store) BeginStroke() {
	if s.rejectReentrant("begin") {
		return
	}
	s.current = nil
	s.drawing = true
}

// AddPoint appends a sample to the in-progress sub-path, flooring the
// coordinates when round is set. It does nothing outside a brush gesture.
func (s *Store) AddPoint(x, y float64, round bool) {
	if !s.drawing || s.rejectReentrant("add point") {
		return
	}
	s.current = append(s.current, Point{X: Quantize(x, round), Y: Quantize(y, round)})
}

// Discard abandons the in-progress sub-path without committing it.
func (s *Store) Discard() {
	if s.rejectReentrant("discard") {
		return
	}
	s.current = nil
	s.drawing = false
}

// Drawing reports whether a brush gesture is active.
func (s *Store) Drawing() bool {
	return s.drawing
}

// Current returns a copy of the in-progress sub-path.
func (s *Store) Current() []Point {
	return append([]Point(nil), s.current...)
}

// CommitStroke finalizes the in-progress sub-path and stores it according to
// the merge policy. It returns false, and stores nothing, if there is no
// in-progress point or style is invalid. The in-progress sub-path is
// dropped either way.
func (s *Store) CommitStroke(style Style, combine bool, opts SimplifyOptions) bool {
	if s.rejectReentrant("commit") {
		return false
	}
	points := s.current
	s.current = nil
	s.drawing = false
	if len(points) == 0 {
		return false
	}
	if err := style.Validate(); err != nil {
		Logger().Warn("dropped sub-path", "error", err)
		return false
	}

	data := SubPath(Simplify(points, opts.Tolerance()))
	s.strokes = mergeOrAppend(s.strokes, style, combine, data, PathString(data))
	s.notify()
	return true
}

// Undo removes the most recent sub-path. The stroke holding it is removed
// when it has no sub-path left. It returns false on an empty document.
func (s *Store) Undo() bool {
	if len(s.strokes) == 0 || s.rejectReentrant("undo") {
		return false
	}
	last := len(s.strokes) - 1
	l := &s.strokes[last]
	if len(l.Data) > 1 {
		l.Data = l.Data[:len(l.Data)-1]
		l.Path = l.Path[:len(l.Path)-1]
	} else {
		s.strokes = s.strokes[:last]
	}
	s.notify()
	return true
}

// Clear removes every stroke and the in-progress sub-path.
func (s *Store) Clear() {
	if s.rejectReentrant("clear") {
		return
	}
	s.strokes = nil
	s.current = nil
	s.drawing = false
	s.notify()
}

// AddPath appends a stroke built by the caller. It is neither simplified nor
// merged. A stroke without an ID gets one.
func (s *Store) AddPath(stroke Stroke) error {
	if s.notifying {
		Logger().Warn("rejected re-entrant mutation", "op", "add path")
		return ErrReentrant
	}
	if err := stroke.Validate(); err != nil {
		return err
	}
	stroke = stroke.Clone()
	if stroke.ID == "" {
		stroke.ID = uuid.NewString()
	}
	s.strokes = append(s.strokes, stroke)
	s.notify()
	return nil
}

// Paths returns a deep copy of the committed strokes in drawing order.
func (s *Store) Paths() []Stroke {
	return cloneStrokes(s.strokes)
}

// Len returns the number of committed strokes.
func (s *Store) Len() int {
	return len(s.strokes)
}

// PointCount returns the number of committed points over all strokes.
func (s *Store) PointCount() int {
	n := 0
	for _, st := range s.strokes {
		n += st.PointCount()
	}
	return n
}

// Revision returns the number of successful mutations so far.
func (s *Store) Revision() uint64 {
	return s.clock.revision
}

func (s *Store) notify() {
	rev := s.clock.tick()
	Logger().Debug("document changed", "revision", rev, "strokes", len(s.strokes))
	if s.onChange == nil {
		return
	}
	s.notifying = true
	defer func() { s.notifying = false }()
	s.onChange(Change{Revision: rev, Paths: s.Paths()})
}

func (s *Store) rejectReentrant(op string) bool {
	if s.notifying {
		Logger().Warn("rejected re-entrant mutation", "op", op)
		return true
	}
	return false
}
