package ui

import (
	"testing"

	fynetest "fyne.io/fyne/v2/test"
	"github.com/tdewolff/test"

	"SketchBoard/internal/state"
)

func newWidget(t *testing.T, edit func(*state.Options)) *BoardWidget {
	t.Helper()
	fynetest.NewTempApp(t)
	opts := state.DefaultOptions()
	if edit != nil {
		edit(&opts)
	}
	board, err := state.NewBoard(opts)
	test.Error(t, err)
	return NewBoardWidget(board)
}

func TestToggleEraserRedraws(t *testing.T) {
	w := newWidget(t, func(o *state.Options) { o.EraserRadius = 7 })
	edits := 0
	w.OnEdit = func() { edits++ }

	test.T(t, w.ToggleEraser(), state.Tool(state.Eraser{Radius: 7}))
	test.T(t, edits, 1)
	test.T(t, w.ToggleEraser(), state.Tool(state.Brush{}))
	test.T(t, edits, 2)

	w.SetTool(state.Eraser{Radius: 1})
	test.T(t, w.Board().Tool(), state.Tool(state.Eraser{Radius: 1}))
	test.T(t, edits, 3)
}

func TestRendererDrawsLivePath(t *testing.T) {
	zigzag := []state.Point{{X: 0, Y: 0}, {X: 1, Y: 0.5}, {X: 2, Y: 0}, {X: 3, Y: 0.5}, {X: 4, Y: 0}}
	tests := []struct {
		live  bool
		lines int
	}{
		{false, 4},
		{true, 1},
	}
	for _, tt := range tests {
		w := newWidget(t, func(o *state.Options) {
			o.Simplify = state.SimplifyOptions{SimplifyPaths: true, SimplifyCurrentPath: tt.live, Amount: 1}
		})
		board := w.Board()
		board.Handle(state.Event{Phase: state.PhaseBegin, X: zigzag[0].X, Y: zigzag[0].Y})
		for _, p := range zigzag[1:] {
			board.Handle(state.Event{Phase: state.PhaseChange, X: p.X, Y: p.Y})
		}

		r := fynetest.WidgetRenderer(w)
		r.Refresh()
		test.T(t, len(r.Objects()), 1+tt.lines, "background plus live segments")
	}
}
