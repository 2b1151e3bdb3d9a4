// Package export renders a board snapshot to PDF.
package export

import (
	"github.com/jung-kurt/gofpdf"

	"sketchboard/internal/recognize"
	"sketchboard/internal/state"
)

// Board pixels to A4 millimeters.
const scale = 3.0

// PDF writes the live board content to an A4 page at path. Freehand strokes
// come out as polylines; recognized shapes as native PDF primitives.
func PDF(path string, s *state.BoardState) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetDrawColor(0, 0, 0)

	for _, st := range s.Strokes() {
		p.SetLineWidth(float64(st.Width) / scale)
		for i := 1; i < len(st.Points); i++ {
			p.Line(
				st.Points[i-1].X/scale, st.Points[i-1].Y/scale,
				st.Points[i].X/scale, st.Points[i].Y/scale,
			)
		}
	}

	for _, sh := range s.Shapes() {
		p.SetLineWidth(float64(sh.Width) / scale)
		drawShape(p, sh.Geom)
	}

	return p.OutputFileAndClose(path)
}

func drawShape(p *gofpdf.Fpdf, g recognize.Analysis) {
	switch g.Kind {
	case recognize.KindLine:
		if g.Line != nil {
			p.Line(g.Line.Start.X/scale, g.Line.Start.Y/scale, g.Line.End.X/scale, g.Line.End.Y/scale)
		}
	case recognize.KindRect:
		if g.Rect != nil {
			p.Rect(g.Rect.Left/scale, g.Rect.Top/scale, g.Rect.Width/scale, g.Rect.Height/scale, "D")
		}
	case recognize.KindCircle:
		if g.Circle != nil {
			p.Circle(g.Circle.CX/scale, g.Circle.CY/scale, g.Circle.Radius/scale, "D")
		}
	case recognize.KindTriangle:
		if g.Triangle != nil {
			t := g.Triangle
			pts := []gofpdf.PointType{
				{X: t.CX / scale, Y: (t.CY - t.Height/2) / scale},
				{X: (t.CX - t.Width/2) / scale, Y: (t.CY + t.Height/2) / scale},
				{X: (t.CX + t.Width/2) / scale, Y: (t.CY + t.Height/2) / scale},
			}
			p.Polygon(pts, "D")
		}
	}
}
