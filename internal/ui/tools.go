package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom widget for color swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	OnTapped func(name string)
}

func newColorSwatch(name string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, Color: colorByName(name), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// --- The main toolbar ---
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.SetTool(ToolPencil)
		}), // Pencil
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.SetTool(ToolEraser)
		}), // Eraser
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			board.Clear()
		}), // Clear own drawings
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if err := board.ExportPDF("sketchboard.pdf"); err != nil {
				log.Printf("PDF export failed: %v", err)
				board.SetStatus("PDF export failed")
				return
			}
			board.SetStatus("Exported sketchboard.pdf")
		}), // Export PDF
	)

	// --- Color palette ---
	colorBox := container.NewHBox(
		newColorSwatch("black", board.SetColor),
		newColorSwatch("red", board.SetColor),
		newColorSwatch("green", board.SetColor),
		newColorSwatch("blue", board.SetColor),
		newColorSwatch("yellow", board.SetColor),
	)

	// --- Stroke width slider ---
	strokeSlider := widget.NewSlider(1.0, 20.0)
	strokeSlider.SetValue(3.0)
	strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Shape recognition toggle ---
	shapesCheck := widget.NewCheck("Shapes", board.SetRecognize)
	shapesCheck.SetChecked(true)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		shapesCheck,
		layout.NewSpacer(),
	)
}
