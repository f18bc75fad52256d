package state

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStroke is wrapped by every stroke validation failure.
	ErrInvalidStroke = errors.New("invalid stroke")
	// ErrReentrant is returned when the change callback tries to mutate the store.
	ErrReentrant = errors.New("store mutated from change callback")
)

// Validate reports whether s can be stored as-is.
func (s Stroke) Validate() error {
	if len(s.Data) == 0 {
		return fmt.Errorf("%w: no sub-paths", ErrInvalidStroke)
	}
	if len(s.Data) != len(s.Path) {
		return fmt.Errorf("%w: %d sub-paths but %d path strings", ErrInvalidStroke, len(s.Data), len(s.Path))
	}
	for i, sp := range s.Data {
		if len(sp) == 0 {
			return fmt.Errorf("%w: sub-path %d is empty", ErrInvalidStroke, i)
		}
	}
	return s.Style().Validate()
}

// Validate reports whether strokes drawn with st can be stored.
func (st Style) Validate() error {
	if !(st.Thickness > 0) {
		return fmt.Errorf("%w: thickness %v must be positive", ErrInvalidStroke, st.Thickness)
	}
	if !(st.Opacity >= 0 && st.Opacity <= 1) {
		return fmt.Errorf("%w: opacity %v outside [0,1]", ErrInvalidStroke, st.Opacity)
	}
	return nil
}
