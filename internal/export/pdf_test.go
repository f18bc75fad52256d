package export

import (
	"bytes"
	"testing"

	"github.com/tdewolff/test"

	"SketchBoard/internal/state"
)

func TestWritePDF(t *testing.T) {
	strokes := []state.Stroke{
		{Color: "#f00", Thickness: 3, Opacity: 0.5, Data: []state.SubPath{{{X: 0, Y: 0}, {X: 50, Y: 50}}, {{X: 10, Y: 10}}}, Path: []string{"", ""}},
		{Color: "not a color", Thickness: 1, Opacity: 1, Data: []state.SubPath{{{X: 5, Y: 5}, {X: 6, Y: 9}}}, Path: []string{""}},
	}
	var buf bytes.Buffer
	test.Error(t, WritePDF(&buf, strokes, 200, 100))
	test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
