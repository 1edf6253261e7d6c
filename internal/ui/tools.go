package ui

import (
	"image/color"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/config"
	"LocalSketch/internal/editor"
	"LocalSketch/internal/state"
)

var toolOrder = []editor.Tool{
	editor.ToolSelect,
	editor.ToolRectangle,
	editor.ToolCircle,
	editor.ToolArrow,
	editor.ToolScribble,
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(state.ColorOf(s.Hex))
	rect.SetMinSize(fyne.NewSize(20, 20))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 200}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// Actions are the toolbar buttons that are not tools.
type Actions struct {
	ExportPNG func()
	ExportPDF func()
}

// NewToolbar builds the tool picker and the export buttons.
func NewToolbar(board *BoardWidget, actions Actions) fyne.CanvasObject {
	names := make([]string, len(toolOrder))
	for i, t := range toolOrder {
		names[i] = t.String()
	}
	tools := widget.NewRadioGroup(names, func(name string) {
		for _, t := range toolOrder {
			if t.String() == name {
				board.SetTool(t)
				return
			}
		}
	})
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(board.Board().ToolMode().String())

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DownloadIcon(), func() {
			if actions.ExportPNG != nil {
				actions.ExportPNG()
			}
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			if actions.ExportPDF != nil {
				actions.ExportPDF()
			}
		}),
	)

	return container.NewHBox(
		layout.NewSpacer(),
		tools,
		widget.NewSeparator(),
		tb,
		layout.NewSpacer(),
	)
}

// NewStylePanel builds the side panel that edits the board's style.
func NewStylePanel(board *editor.Board, palette config.Palette) fyne.CanvasObject {
	set := func(field state.StyleField, value any) {
		if err := board.SetStyle(field, value); err != nil {
			log.Printf("[STYLE] %v", err)
		}
	}

	strokes := container.NewHBox()
	for _, hex := range palette.Strokes {
		strokes.Add(newColorSwatch(hex, func(c string) { set(state.FieldStroke, c) }))
	}
	fills := container.NewHBox()
	for _, hex := range palette.Fills {
		fills.Add(newColorSwatch(hex, func(c string) { set(state.FieldFill, c) }))
	}

	current := board.Style().Snapshot()
	edge := numberChoices(palette.CornerRadii, current.CornerRadius, func(v float64) {
		set(state.FieldCornerRadius, v)
	})
	width := numberChoices(palette.StrokeWidths, current.StrokeWidth, func(v float64) {
		set(state.FieldStrokeWidth, v)
	})

	return container.NewVBox(
		widget.NewLabel("Stroke"), strokes,
		widget.NewLabel("Background"), fills,
		widget.NewLabel("Edge"), edge,
		widget.NewLabel("Stroke Width"), width,
	)
}

func numberChoices(values []float64, selected float64, onChange func(float64)) *widget.RadioGroup {
	labels := make([]string, len(values))
	byLabel := make(map[string]float64, len(values))
	for i, v := range values {
		labels[i] = strconv.FormatFloat(v, 'g', -1, 64)
		byLabel[labels[i]] = v
	}
	group := widget.NewRadioGroup(labels, nil)
	group.Horizontal = true
	group.Required = true
	group.SetSelected(strconv.FormatFloat(selected, 'g', -1, 64))
	group.OnChanged = func(label string) {
		if v, ok := byLabel[label]; ok {
			onChange(v)
		}
	}
	return group
}
