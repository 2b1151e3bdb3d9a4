package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the board window and blocks until it closes. shareLink, when
// non-empty, is shown so other peers can be invited.
func RunApp(shareLink string, board *BoardWidget) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Sketchboard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	toolbar := NewToolbar(board)

	bottom := container.NewHBox(board.StatusBar())
	if shareLink != "" {
		bottom.Add(widget.NewLabel("Share: " + shareLink))
	}

	content := container.NewBorder(toolbar, bottom, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
