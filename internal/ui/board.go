package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/export"
	"sketchboard/internal/geometry"
	"sketchboard/internal/recognize"
	"sketchboard/internal/state"
)

// Tool selects what a pointer drag does on the board.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
)

// Pointer sampling cap per stroke. Keeps the simplifier's quadratic worst
// case bounded no matter how long the pointer stays down.
const maxStrokePoints = 4096

// Eraser pick distance in board pixels.
const eraserTolerance = 8.0

// BoardWidget is the drawing surface: it samples freehand strokes, runs them
// through the shape recognizer on pointer-up, and renders the shared board
// state. Drag with nothing being drawn pans the view.
type BoardWidget struct {
	widget.BaseWidget

	state *state.BoardState

	mu            sync.RWMutex
	current       []geometry.Point
	drawing       bool
	panX, panY    float32
	tool          Tool
	currentColor  string
	currentStroke float32
	recognize     bool

	LocalClientID string
	OnOp          func(op state.Op)
	statusBar     *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *state.BoardState) *BoardWidget {
	b := &BoardWidget{
		state:         s,
		tool:          ToolPencil,
		currentColor:  "black",
		currentStroke: 3.0,
		recognize:     true,
		statusBar:     widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetLocalClientID(id string) { b.LocalClientID = id }

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() { b.statusBar.SetText(text) })
}

func (b *BoardWidget) SetTool(t Tool) {
	b.mu.Lock()
	b.tool = t
	b.mu.Unlock()
}

func (b *BoardWidget) SetColor(name string) {
	b.mu.Lock()
	b.currentColor = name
	b.mu.Unlock()
}

func (b *BoardWidget) SetStroke(w float32) {
	b.mu.Lock()
	b.currentStroke = w
	b.mu.Unlock()
}

// SetRecognize toggles shape recognition on pointer-up.
func (b *BoardWidget) SetRecognize(on bool) {
	b.mu.Lock()
	b.recognize = on
	b.mu.Unlock()
}

// ApplyRemote merges an op received from the network and repaints if it
// changed anything.
func (b *BoardWidget) ApplyRemote(op state.Op) {
	if b.state.Apply(op) {
		fyne.Do(func() { b.Refresh() })
	}
}

// Clear wipes this user's objects everywhere.
func (b *BoardWidget) Clear() {
	op := b.state.Clear(b.LocalClientID)
	b.emit(op)
	b.Refresh()
}

// ExportPDF writes the current board to a PDF file.
func (b *BoardWidget) ExportPDF(path string) error {
	return export.PDF(path, b.state)
}

func (b *BoardWidget) emit(op state.Op) {
	if b.OnOp != nil {
		b.OnOp(op)
	}
}

func (b *BoardWidget) boardPos(p fyne.Position) geometry.Point {
	return geometry.Point{X: float64(p.X - b.panX), Y: float64(p.Y - b.panY)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.mu.Lock()
	if b.tool == ToolEraser {
		b.mu.Unlock()
		b.eraseAt(b.boardPos(e.Position))
		return
	}
	b.drawing = true
	b.current = []geometry.Point{b.boardPos(e.Position)}
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.mu.Lock()
	switch {
	case b.drawing:
		if len(b.current) < maxStrokePoints {
			b.current = append(b.current, b.boardPos(e.Position))
		}
		b.mu.Unlock()
		b.Refresh()
	case b.tool == ToolEraser:
		b.mu.Unlock()
		b.eraseAt(b.boardPos(e.Position))
	default:
		b.panX += e.Dragged.DX
		b.panY += e.Dragged.DY
		b.mu.Unlock()
		b.Refresh()
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.mu.Lock()
	if !b.drawing {
		b.mu.Unlock()
		return
	}
	b.drawing = false
	points := b.current
	b.current = nil
	colorName, width, recognizeOn := b.currentColor, b.currentStroke, b.recognize
	b.mu.Unlock()

	if len(points) < 2 {
		b.Refresh()
		return
	}
	b.commitStroke(points, colorName, width, recognizeOn)
	b.Refresh()
}

// commitStroke hands the completed stroke to the classifier exactly once and
// stores either the recognized primitive or the raw freehand stroke. The
// classifier only sees geometry; color and width are applied here.
func (b *BoardWidget) commitStroke(points []geometry.Point, colorName string, width float32, recognizeOn bool) {
	if recognizeOn {
		analysis := recognize.Classify(points)
		if analysis.Kind != recognize.KindUnknown {
			op := b.state.InsertShape(state.Shape{
				OwnerID: b.LocalClientID,
				Geom:    analysis,
				Color:   colorName,
				Width:   width,
				Time:    time.Now(),
			})
			b.SetStatus("Recognized a " + string(analysis.Kind))
			b.emit(op)
			return
		}
	}
	op := b.state.InsertStroke(state.Stroke{
		OwnerID: b.LocalClientID,
		Points:  points,
		Color:   colorName,
		Width:   width,
		Time:    time.Now(),
	})
	b.emit(op)
}

func (b *BoardWidget) eraseAt(p geometry.Point) {
	id, ok := b.state.HitTest(p, eraserTolerance)
	if !ok {
		return
	}
	op := b.state.Delete(id)
	b.emit(op)
	b.Refresh()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.mu.Lock()
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                       {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}
