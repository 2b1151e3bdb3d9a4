package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geometry"
	"sketchboard/internal/recognize"
	"sketchboard/internal/state"
)

func colorByName(name string) color.Color {
	switch name {
	case "red":
		return color.NRGBA{R: 255, A: 255}
	case "green":
		return color.NRGBA{G: 255, A: 255}
	case "blue":
		return color.NRGBA{B: 255, A: 255}
	case "yellow":
		return color.NRGBA{R: 255, G: 255, A: 255}
	}
	return color.Black
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	b := r.board
	objects := []fyne.CanvasObject{r.background}

	b.mu.RLock()
	panX, panY := b.panX, b.panY
	var preview *state.Stroke
	if b.drawing && len(b.current) > 1 {
		points := make([]geometry.Point, len(b.current))
		copy(points, b.current)
		preview = &state.Stroke{Points: points, Color: b.currentColor, Width: b.currentStroke}
	}
	b.mu.RUnlock()

	for _, s := range b.state.Strokes() {
		objects = appendStroke(objects, s, panX, panY)
	}
	for _, s := range b.state.Shapes() {
		objects = appendShape(objects, s, panX, panY)
	}
	if preview != nil {
		objects = appendStroke(objects, *preview, panX, panY)
	}
	return objects
}

func appendStroke(objects []fyne.CanvasObject, s state.Stroke, panX, panY float32) []fyne.CanvasObject {
	c := colorByName(s.Color)
	for i := 0; i < len(s.Points)-1; i++ {
		objects = append(objects, segment(s.Points[i], s.Points[i+1], c, s.Width, panX, panY))
	}
	return objects
}

func appendShape(objects []fyne.CanvasObject, s state.Shape, panX, panY float32) []fyne.CanvasObject {
	c := colorByName(s.Color)
	g := s.Geom
	switch g.Kind {
	case recognize.KindLine:
		if g.Line != nil {
			objects = append(objects, segment(g.Line.Start, g.Line.End, c, s.Width, panX, panY))
		}
	case recognize.KindRect:
		if g.Rect != nil {
			rect := canvas.NewRectangle(color.Transparent)
			rect.StrokeColor = c
			rect.StrokeWidth = s.Width
			rect.Move(fyne.NewPos(float32(g.Rect.Left)+panX, float32(g.Rect.Top)+panY))
			rect.Resize(fyne.NewSize(float32(g.Rect.Width), float32(g.Rect.Height)))
			objects = append(objects, rect)
		}
	case recognize.KindCircle:
		if g.Circle != nil {
			circle := canvas.NewCircle(color.Transparent)
			circle.StrokeColor = c
			circle.StrokeWidth = s.Width
			circle.Position1 = fyne.NewPos(float32(g.Circle.CX-g.Circle.Radius)+panX, float32(g.Circle.CY-g.Circle.Radius)+panY)
			circle.Position2 = fyne.NewPos(float32(g.Circle.CX+g.Circle.Radius)+panX, float32(g.Circle.CY+g.Circle.Radius)+panY)
			objects = append(objects, circle)
		}
	case recognize.KindTriangle:
		if g.Triangle != nil {
			t := g.Triangle
			top := geometry.Point{X: t.CX, Y: t.CY - t.Height/2}
			left := geometry.Point{X: t.CX - t.Width/2, Y: t.CY + t.Height/2}
			right := geometry.Point{X: t.CX + t.Width/2, Y: t.CY + t.Height/2}
			objects = append(objects,
				segment(top, left, c, s.Width, panX, panY),
				segment(left, right, c, s.Width, panX, panY),
				segment(right, top, c, s.Width, panX, panY),
			)
		}
	}
	return objects
}

func segment(a, b geometry.Point, c color.Color, width, panX, panY float32) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(a.X)+panX, float32(a.Y)+panY)
	line.Position2 = fyne.NewPos(float32(b.X)+panX, float32(b.Y)+panY)
	return line
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
