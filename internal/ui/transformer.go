package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LocalSketch/internal/editor"
	"LocalSketch/internal/state"
)

const (
	handleSize    = 8
	handlePadding = 4
)

var handleColor = color.NRGBA{R: 0x15, G: 0x5e, B: 0xa1, A: 0xff}

// transformHandle outlines the selected shape and owns the resize corner.
// It implements editor.TransformHandle.
type transformHandle struct {
	board  *BoardWidget
	target string
}

func newTransformHandle(b *BoardWidget) *transformHandle {
	return &transformHandle{board: b}
}

func (h *transformHandle) SetTargets(ids []string) {
	h.target = ""
	if len(ids) > 0 {
		h.target = ids[0]
	}
	h.board.Refresh()
}

func (h *transformHandle) bounds() (state.Area, bool) {
	if h.target == "" {
		return state.Area{}, false
	}
	s, ok := h.board.board.Store().Get(h.target)
	if !ok {
		return state.Area{}, false
	}
	return s.Bounds().Pad(handlePadding), true
}

func (h *transformHandle) corner(a state.Area) state.Area {
	return state.Area{
		X:      a.X + a.Width - handleSize/2,
		Y:      a.Y + a.Height - handleSize/2,
		Width:  handleSize,
		Height: handleSize,
	}
}

// onResizeCorner reports whether p grabs the bottom-right resize square.
func (h *transformHandle) onResizeCorner(p state.Point) bool {
	a, ok := h.bounds()
	return ok && h.corner(a).Pad(2).Contains(p)
}

// resizeBy converts a corner drag into a scale of the selected shape.
func (h *transformHandle) resizeBy(dx, dy float64) editor.Transform {
	t := editor.Transform{SX: 1, SY: 1}
	s, ok := h.board.board.Store().Get(h.target)
	if !ok {
		return t
	}
	b := s.Bounds()
	if b.Width > 0 && b.Width+dx > 0 {
		t.SX = (b.Width + dx) / b.Width
	}
	if b.Height > 0 && b.Height+dy > 0 {
		t.SY = (b.Height + dy) / b.Height
	}
	return t
}

func (h *transformHandle) objects() []fyne.CanvasObject {
	a, ok := h.bounds()
	if !ok {
		return nil
	}
	outline := canvas.NewRectangle(color.Transparent)
	outline.StrokeColor = handleColor
	outline.StrokeWidth = 1
	outline.Move(fyne.NewPos(float32(a.X), float32(a.Y)))
	outline.Resize(fyne.NewSize(float32(a.Width), float32(a.Height)))

	c := h.corner(a)
	grip := canvas.NewRectangle(color.White)
	grip.StrokeColor = handleColor
	grip.StrokeWidth = 1
	grip.Move(fyne.NewPos(float32(c.X), float32(c.Y)))
	grip.Resize(fyne.NewSize(float32(c.Width), float32(c.Height)))

	return []fyne.CanvasObject{outline, grip}
}
