package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"LocalSketch/internal/export"
)

// dialogDownloader offers exports through a save dialog pre-filled with the
// download name. Download returns once the dialog is shown; the write
// happens when the user confirms.
type dialogDownloader struct {
	window fyne.Window
	status func(string)
}

var _ export.Downloader = dialogDownloader{}

func (d dialogDownloader) Download(name string, data []byte) error {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[EXPORT] Save dialog failed: %v", err)
			d.status("Export failed")
			return
		}
		if writer == nil {
			return // cancelled
		}
		d.write(writer, data)
	}, d.window)
	save.SetFileName(name)
	save.Show()
	return nil
}

func (d dialogDownloader) write(writer fyne.URIWriteCloser, data []byte) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()
	if _, err := writer.Write(data); err != nil {
		log.Printf("[EXPORT] Error writing %s: %v", writer.URI(), err)
		d.status("Error writing file")
		return
	}
	d.status(fmt.Sprintf("Saved %s", writer.URI().Name()))
}
