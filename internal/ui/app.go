package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/config"
	"LocalSketch/internal/editor"
	"LocalSketch/internal/export"
	"LocalSketch/internal/render"
)

// Build lays out the board, toolbar, style panel and status bar in w and
// returns the board widget.
func Build(w fyne.Window, cfg config.Config, board *editor.Board) *BoardWidget {
	surface := render.NewSurface(board.Store(), cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background)
	boardWidget := NewBoardWidget(board, surface, cfg.Canvas.Background)

	status := widget.NewLabel("Ready")
	setStatus := func(text string) { status.SetText(text) }
	boardWidget.OnStatus = setStatus

	trigger := export.Trigger{
		Surface:        surface,
		Downloader:     dialogDownloader{window: w, status: setStatus},
		FileName:       cfg.Export.FileName,
		PDFFileName:    cfg.Export.PDFFileName,
		BeforeSnapshot: board.Selection.Clear,
	}
	report := func(err error) {
		if err != nil {
			log.Printf("[EXPORT] %v", err)
			setStatus("Export failed")
		}
	}
	toolbar := NewToolbar(boardWidget, Actions{
		ExportPNG: func() { report(trigger.ExportSnapshot()) },
		ExportPDF: func() { report(trigger.ExportPDF()) },
	})
	panel := NewStylePanel(board, cfg.Palette)

	w.SetContent(container.NewBorder(toolbar, status, panel, nil, boardWidget))
	return boardWidget
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg config.Config, board *editor.Board) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Sketch")
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	Build(myWindow, cfg, board)
	myWindow.ShowAndRun()
}
