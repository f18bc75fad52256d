package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"SketchBoard/internal/export"
	"SketchBoard/internal/state"
)

// FileActions wires the open, save and export buttons to file dialogs.
type FileActions struct {
	Window fyne.Window
	Board  *BoardWidget
}

// Save writes the strokes as JSON.
func (f *FileActions) Save() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer closeLogged(writer)

		paths := f.Board.Board().Paths()
		if err := state.Save(writer, paths); err != nil {
			log.Printf("[UI] Save failed: %v", err)
			f.Board.SetStatus("Error saving file")
			return
		}
		f.Board.SetStatus(fmt.Sprintf("Saved %d strokes", len(paths)))
	}, f.Window)
}

// Open replaces the drawing with strokes read from a JSON file.
func (f *FileActions) Open() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer closeLogged(reader)

		strokes, err := state.Load(reader)
		if err != nil {
			log.Printf("[UI] Load failed: %v", err)
			f.Board.SetStatus("Error parsing file - invalid format")
			return
		}
		f.Board.SetStatus(fmt.Sprintf("Loaded %d strokes", Replace(f.Board, strokes)))
	}, f.Window)
}

// Export writes a PDF when the chosen name ends in .pdf and SVG otherwise.
func (f *FileActions) Export() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer closeLogged(writer)

		board := f.Board.Board()
		w, h := board.Size()
		if strings.EqualFold(writer.URI().Extension(), ".pdf") {
			err = export.WritePDF(writer, board.Paths(), w, h)
		} else {
			err = export.WriteSVG(writer, board.Paths(), w, h)
		}
		if err != nil {
			log.Printf("[UI] Export failed: %v", err)
			f.Board.SetStatus("Error exporting file")
			return
		}
		f.Board.SetStatus("Exported " + writer.URI().Name())
	}, f.Window)
}

// Replace clears the board and adds strokes one by one. It returns how many were added.
func Replace(b *BoardWidget, strokes []state.Stroke) int {
	board := b.Board()
	board.Clear()
	n := 0
	for _, s := range strokes {
		if err := board.AddPath(s); err != nil {
			log.Printf("[UI] Skipping stroke %s: %v", s.ID, err)
			continue
		}
		n++
	}
	b.edited()
	return n
}

type closer interface{ Close() error }

func closeLogged(c closer) {
	if err := c.Close(); err != nil {
		log.Printf("[UI] Error closing file: %v", err)
	}
}
