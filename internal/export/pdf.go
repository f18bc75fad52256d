package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"SketchBoard/internal/colorx"
	"SketchBoard/internal/state"
)

// WritePDF draws strokes on a single page of width x height points.
// Sub-paths are stroked with round caps and joins, like the SVG output.
func WritePDF(w io.Writer, strokes []state.Stroke, width, height float64) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, st := range strokes {
		c := colorx.ParseOr(st.Color, color.NRGBA{A: 255})
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(st.Thickness)
		p.SetAlpha(st.Opacity, "Normal")
		for _, sp := range st.Data {
			if len(sp) == 0 {
				continue
			}
			p.MoveTo(sp[0].X, sp[0].Y)
			if len(sp) == 1 {
				p.LineTo(sp[0].X, sp[0].Y)
			}
			for _, pt := range sp[1:] {
				p.LineTo(pt.X, pt.Y)
			}
			p.DrawPath("D")
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
