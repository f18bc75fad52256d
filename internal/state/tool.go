package state

import "fmt"

// Tool is what pointer samples are applied with: Brush or Eraser.
type Tool interface {
	fmt.Stringer
	apply(b *Board, ev Event)
}

// Brush captures samples into the in-progress sub-path and commits it on release.
type Brush struct{}

func (Brush) String() string { return "brush" }

func (Brush) apply(b *Board, ev Event) {
	round := b.simplify.RoundPoints
	switch ev.Phase {
	case PhaseBegin:
		b.store.BeginStroke()
		b.store.AddPoint(ev.X, ev.Y, round)
	case PhaseChange:
		b.store.AddPoint(ev.X, ev.Y, round)
	case PhaseEnd:
		b.store.CommitStroke(b.style, b.combine, b.simplify)
	}
}

// Eraser removes sub-paths near every sample it receives.
type Eraser struct {
	Radius float64
}

func (Eraser) String() string { return "eraser" }

func (e Eraser) apply(b *Board, ev Event) {
	b.store.Erase(Point{X: ev.X, Y: ev.Y}, e.Radius)
}

// ParseTool returns the tool named by s ("brush" or "eraser").
func ParseTool(s string, eraserRadius float64) (Tool, error) {
	switch s {
	case "brush", "":
		return Brush{}, nil
	case "eraser":
		return Eraser{Radius: eraserRadius}, nil
	}
	return nil, fmt.Errorf("unknown tool %q", s)
}
