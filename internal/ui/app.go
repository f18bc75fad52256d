package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the drawing window and blocks until it is closed. A non-empty
// shareLink is shown so others can follow the drawing.
func RunApp(board *BoardWidget, shareLink string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("SketchBoard")
	w, h := board.Board().Size()
	myWindow.Resize(fyne.NewSize(float32(w), float32(h)+80))

	toolbar := NewToolbar(board, &FileActions{Window: myWindow, Board: board})

	var bottom fyne.CanvasObject = board.Status()
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		bottom = container.NewBorder(nil, nil, widget.NewLabel("Viewers:"), board.Status(), link)
	}

	content := container.NewBorder(toolbar, bottom, nil, nil, container.NewScroll(board))
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
