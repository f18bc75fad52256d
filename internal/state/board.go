package state

import (
	"fmt"
	"math"
)

// Phase is the lifecycle position of a pointer sample.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseChange
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseChange:
		return "change"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

// Event is one pointer sample delivered by the gesture host.
type Event struct {
	Phase Phase
	X, Y  float64
}

// Options configures a Board.
type Options struct {
	Style        Style
	Combine      bool
	Tool         Tool
	EraserRadius float64
	Simplify     SimplifyOptions
	Initial      []Stroke
	Width        float64
	Height       float64
	Enabled      bool
	OnChange     ChangeFunc
}

// DefaultOptions returns the board defaults: black 3px fully opaque brush,
// 5px eraser, separate sub-paths, default simplification, 1024x768, enabled.
func DefaultOptions() Options {
	return Options{
		Style:        Style{Color: "#000000", Thickness: 3, Opacity: 1},
		Tool:         Brush{},
		EraserRadius: 5,
		Simplify:     DefaultSimplifyOptions,
		Width:        1024,
		Height:       768,
		Enabled:      true,
	}
}

// Board turns pointer samples into strokes using the selected tool.
// Like Store, it is meant to be driven from a single goroutine.
type Board struct {
	store        *Store
	tool         Tool
	style        Style
	combine      bool
	eraserRadius float64
	simplify     SimplifyOptions
	width        float64
	height       float64
	enabled      bool
}

// NewBoard creates a board from opts. It fails if an initial stroke or the
// brush style is invalid.
func NewBoard(opts Options) (*Board, error) {
	store, err := NewStore(opts.Initial, opts.OnChange)
	if err != nil {
		return nil, err
	}
	if err := opts.Style.Validate(); err != nil {
		return nil, fmt.Errorf("brush style: %w", err)
	}
	tool := opts.Tool
	if tool == nil {
		tool = Brush{}
	}
	return &Board{
		store:        store,
		tool:         tool,
		style:        opts.Style,
		combine:      opts.Combine,
		eraserRadius: opts.EraserRadius,
		simplify:     opts.Simplify,
		width:        opts.Width,
		height:       opts.Height,
		enabled:      opts.Enabled,
	}, nil
}

// Handle applies one pointer sample. Samples are ignored while the board is disabled.
func (b *Board) Handle(ev Event) {
	if !b.enabled {
		return
	}
	b.tool.apply(b, ev)
}

// Cancel drops an in-progress brush gesture, e.g. when the pointer leaves the canvas.
func (b *Board) Cancel() {
	b.store.Discard()
}

// SetTool switches tools. An unfinished brush gesture is discarded.
func (b *Board) SetTool(t Tool) {
	if t == nil {
		t = Brush{}
	}
	b.store.Discard()
	b.tool = t
}

// Tool returns the active tool.
func (b *Board) Tool() Tool {
	return b.tool
}

// ToggleEraser switches between the brush and an eraser with the configured radius.
func (b *Board) ToggleEraser() Tool {
	if _, ok := b.tool.(Eraser); ok {
		b.SetTool(Brush{})
	} else {
		b.SetTool(Eraser{Radius: b.eraserRadius})
	}
	return b.tool
}

// SetThickness ignores values that are not positive.
func (b *Board) SetThickness(t float64) {
	if t > 0 {
		b.style.Thickness = t
	}
}

// SetOpacity clamps o to [0,1]. NaN is ignored.
func (b *Board) SetOpacity(o float64) {
	if !math.IsNaN(o) {
		b.style.Opacity = max(0, min(1, o))
	}
}

func (b *Board) SetColor(c string)         { b.style.Color = c }
func (b *Board) SetCombine(combine bool)   { b.combine = combine }
func (b *Board) SetEnabled(enabled bool)   { b.enabled = enabled }
func (b *Board) Style() Style              { return b.style }
func (b *Board) Combine() bool             { return b.combine }
func (b *Board) Enabled() bool             { return b.enabled }
func (b *Board) Size() (float64, float64)  { return b.width, b.height }
func (b *Board) Simplify() SimplifyOptions { return b.simplify }

// SetEraserRadius changes the radius used by ToggleEraser and by an active eraser.
func (b *Board) SetEraserRadius(r float64) {
	b.eraserRadius = r
	if _, ok := b.tool.(Eraser); ok {
		b.tool = Eraser{Radius: r}
	}
}

// CurrentPath returns the path string of the in-progress sub-path, simplified
// only when live simplification is enabled.
func (b *Board) CurrentPath() string {
	return PathString(b.CurrentPoints())
}

// Current returns the in-progress points as captured.
func (b *Board) Current() []Point {
	return b.store.Current()
}

// CurrentPoints returns the in-progress points to draw, simplified only when
// live simplification is enabled. CurrentPath is built from the same points.
func (b *Board) CurrentPoints() []Point {
	return Simplify(b.store.Current(), b.simplify.CurrentTolerance())
}

func (b *Board) Undo() bool             { return b.store.Undo() }
func (b *Board) Clear()                 { b.store.Clear() }
func (b *Board) AddPath(s Stroke) error { return b.store.AddPath(s) }
func (b *Board) Paths() []Stroke        { return b.store.Paths() }
func (b *Board) Len() int               { return b.store.Len() }
func (b *Board) Revision() uint64       { return b.store.Revision() }
func (b *Board) PointCount() int        { return b.store.PointCount() }
