// Package state holds the stroke pipeline of the board: point capture,
// simplification, the merge policy for finished strokes, eraser hit removal
// and path string generation.
package state
