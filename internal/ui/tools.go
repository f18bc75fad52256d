package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/colorx"
	"SketchBoard/internal/state"
)

// Palette is the set of swatches offered in the toolbar.
var Palette = []string{"#000000", "#ff0000", "#00a000", "#0000ff", "#ffd700", "#ffffff"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    string
	OnTapped func(string)
}

func newColorSwatch(c string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(colorx.ParseOr(s.Color, color.NRGBA{A: 255}))
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---
func NewToolbar(b *BoardWidget, files *FileActions) fyne.CanvasObject {
	board := b.Board()
	toolLabel := widget.NewLabel(board.Tool().String())
	setTool := func(t state.Tool) {
		b.SetTool(t)
		toolLabel.SetText(t.String())
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { setTool(state.Brush{}) }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { toolLabel.SetText(b.ToggleEraser().String()) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), b.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), b.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), files.Open),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), files.Save),
		widget.NewToolbarAction(theme.DownloadIcon(), files.Export),
	)

	onColorTapped := func(c string) {
		board.SetColor(c)
		if _, ok := board.Tool().(state.Eraser); ok {
			setTool(state.Brush{})
		}
	}
	colorBox := container.NewHBox()
	for _, c := range Palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	strokeSlider := widget.NewSlider(1, 50)
	strokeSlider.SetValue(board.Style().Thickness)
	strokeSlider.OnChanged = board.SetThickness

	opacitySlider := widget.NewSlider(0.05, 1)
	opacitySlider.Step = 0.05
	opacitySlider.SetValue(board.Style().Opacity)
	opacitySlider.OnChanged = board.SetOpacity

	combine := widget.NewCheck("Combine", board.SetCombine)
	combine.SetChecked(board.Combine())

	sliders := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider, opacitySlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolLabel,
		tb,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size / opacity:"),
		sliders,
		combine,
		layout.NewSpacer(),
	)
}
