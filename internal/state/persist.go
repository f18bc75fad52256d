package state

import (
	"encoding/json"
	"fmt"
	"io"
)

// Save writes strokes as indented JSON.
func Save(w io.Writer, strokes []Stroke) error {
	if strokes == nil {
		strokes = []Stroke{}
	}
	data, err := json.MarshalIndent(strokes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode paths: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write paths: %w", err)
	}
	return nil
}

// Load reads strokes written by Save. Every stroke is validated; strokes
// without an ID keep an empty one until they are added to a store.
func Load(r io.Reader) ([]Stroke, error) {
	var strokes []Stroke
	if err := json.NewDecoder(r).Decode(&strokes); err != nil {
		return nil, fmt.Errorf("decode paths: %w", err)
	}
	for i, s := range strokes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
	}
	return strokes, nil
}
