package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"LocalSketch/internal/config"
	"LocalSketch/internal/editor"
	"LocalSketch/internal/export"
	"LocalSketch/internal/render"
	"LocalSketch/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	debug := flag.Bool("debug", false, "log editor events")
	exportDir := flag.String("export", "", "render a blank board into this directory and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *debug {
		editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	board := editor.NewBoard(editor.BoardOptions{Style: cfg.InitialStyle()})

	if *exportDir != "" {
		runHeadless(cfg, board, *exportDir)
		return
	}

	log.Println("Starting LocalSketch")
	ui.RunApp(cfg, board)
}

// runHeadless exports the board without opening a window.
func runHeadless(cfg config.Config, board *editor.Board, dir string) {
	trigger := export.Trigger{
		Surface:        render.NewSurface(board.Store(), cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background),
		Downloader:     export.DirDownloader{Dir: dir},
		FileName:       cfg.Export.FileName,
		BeforeSnapshot: board.Selection.Clear,
	}
	if err := trigger.ExportSnapshot(); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Wrote %s to %s", cfg.Export.FileName, dir)
}
