package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/colorx"
	"SketchBoard/internal/state"
)

// BoardWidget is the gesture host and renderer for a state.Board. Mouse and
// drag events become begin/change/end samples; strokes are drawn as line segments.
type BoardWidget struct {
	widget.BaseWidget
	board     *state.Board
	gesture   bool
	last      fyne.Position
	statusBar *widget.Label

	// OnEdit runs after any sample or action that may have changed the drawing.
	OnEdit func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board) *BoardWidget {
	b := &BoardWidget{
		board:     board,
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Board returns the board the widget drives.
func (b *BoardWidget) Board() *state.Board {
	return b.board
}

// SetStatus updates the status line from any goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

// Status is the label SetStatus writes to.
func (b *BoardWidget) Status() *widget.Label {
	return b.statusBar
}

func (b *BoardWidget) handle(phase state.Phase, pos fyne.Position) {
	b.last = pos
	b.board.Handle(state.Event{Phase: phase, X: float64(pos.X), Y: float64(pos.Y)})
	b.edited()
}

func (b *BoardWidget) edited() {
	b.Refresh()
	if b.OnEdit != nil {
		b.OnEdit()
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.gesture = true
	b.handle(state.PhaseBegin, e.Position)
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.gesture {
		return
	}
	b.gesture = false
	b.handle(state.PhaseEnd, e.Position)
}

// Dragged also starts a gesture, since touch devices deliver no MouseDown.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.gesture {
		b.gesture = true
		b.handle(state.PhaseBegin, e.Position)
		return
	}
	b.handle(state.PhaseChange, e.Position)
}

func (b *BoardWidget) DragEnd() {
	if !b.gesture {
		return
	}
	b.gesture = false
	b.handle(state.PhaseEnd, b.last)
}

// MouseOut cancels the gesture: a stroke that leaves the canvas is dropped.
func (b *BoardWidget) MouseOut() {
	if !b.gesture {
		return
	}
	b.gesture = false
	b.board.Cancel()
	b.edited()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// SetTool switches the board's tool and redraws.
func (b *BoardWidget) SetTool(t state.Tool) {
	b.gesture = false
	b.board.SetTool(t)
	b.edited()
}

// ToggleEraser switches between brush and eraser and redraws. It returns the new tool.
func (b *BoardWidget) ToggleEraser() state.Tool {
	b.gesture = false
	t := b.board.ToggleEraser()
	b.edited()
	return t
}

// Undo removes the last sub-path.
func (b *BoardWidget) Undo() {
	if b.board.Undo() {
		b.edited()
	}
}

// Clear removes everything.
func (b *BoardWidget) Clear() {
	b.board.Clear()
	b.edited()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}
	for _, s := range r.board.board.Paths() {
		c := colorx.WithOpacity(colorx.ParseOr(s.Color, color.NRGBA{A: 255}), s.Opacity)
		for _, sp := range s.Data {
			objects = appendLines(objects, sp, c, float32(s.Thickness))
		}
	}

	if current := r.board.board.CurrentPoints(); len(current) > 0 {
		st := r.board.board.Style()
		c := colorx.WithOpacity(colorx.ParseOr(st.Color, color.NRGBA{A: 255}), st.Opacity)
		objects = appendLines(objects, current, c, float32(st.Thickness))
	}
	r.objects = objects
}

// appendLines adds one segment per pair of points. A lone point becomes a
// zero-length segment, which draws as a dot.
func appendLines(objects []fyne.CanvasObject, sp []state.Point, c color.Color, width float32) []fyne.CanvasObject {
	if len(sp) == 1 {
		sp = []state.Point{sp[0], sp[0]}
	}
	for i := 1; i < len(sp); i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = width
		segment.Position1 = fyne.NewPos(float32(sp[i-1].X), float32(sp[i-1].Y))
		segment.Position2 = fyne.NewPos(float32(sp[i].X), float32(sp[i].Y))
		objects = append(objects, segment)
	}
	return objects
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	w, h := r.board.board.Size()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardWidgetRenderer) Destroy() {}
