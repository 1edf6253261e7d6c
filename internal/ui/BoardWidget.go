package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/editor"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// hitTolerance widens thin shapes for clicks, in canvas units.
const hitTolerance = 4

type dragMode int

const (
	dragNone dragMode = iota
	dragDraw
	dragMove
	dragResize
)

// BoardWidget is the drawing surface. It feeds pointer events to the
// board's controller, paints the store and hosts the transform handle.
type BoardWidget struct {
	widget.BaseWidget
	board      *editor.Board
	surface    *render.Surface
	handle     *transformHandle
	background string

	pointer fyne.Position
	drag    dragMode

	OnStatus func(text string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ editor.PointerSource = (*BoardWidget)(nil)

func NewBoardWidget(board *editor.Board, surface *render.Surface, background string) *BoardWidget {
	b := &BoardWidget{
		board:      board,
		surface:    surface,
		background: background,
	}
	b.ExtendBaseWidget(b)
	b.handle = newTransformHandle(b)
	board.Selection.SetHandle(b.handle)
	board.Store().OnChange = func(string) { b.Refresh() }
	board.Controller.OnTransition = func(from, to editor.Phase) {
		b.setStatus("Tool: " + board.ToolMode().String() + " (" + to.String() + ")")
	}
	return b
}

// PointerPosition implements editor.PointerSource.
func (b *BoardWidget) PointerPosition() (float64, float64) {
	return float64(b.pointer.X), float64(b.pointer.Y)
}

func (b *BoardWidget) Board() *editor.Board { return b.board }

// SetTool switches tools from the toolbar.
func (b *BoardWidget) SetTool(t editor.Tool) {
	b.drag = dragNone
	b.board.SetToolMode(t)
	b.setStatus("Tool: " + t.String())
	b.Refresh()
}

func (b *BoardWidget) setStatus(text string) {
	if b.OnStatus != nil {
		b.OnStatus(text)
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pointer = e.Position
	if b.board.ToolMode() != editor.ToolSelect {
		b.drag = dragDraw
		b.board.Controller.Feed(b, editor.PointerDown)
		return
	}

	p := toPoint(e.Position)
	if b.handle.onResizeCorner(p) {
		b.drag = dragResize
		return
	}
	if id, ok := b.board.Selection.Selected(); ok {
		if s, hit := b.board.Store().ShapeAt(p, hitTolerance); hit && s.ShapeID() == id {
			b.drag = dragMove
		}
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.pointer = e.Position
	switch b.drag {
	case dragDraw:
		b.board.Controller.Feed(b, editor.PointerMove)
	case dragMove:
		b.applyTransform(editor.Transform{DX: float64(e.Dragged.DX), DY: float64(e.Dragged.DY)})
	case dragResize:
		b.applyTransform(b.handle.resizeBy(float64(e.Dragged.DX), float64(e.Dragged.DY)))
	}
}

func (b *BoardWidget) applyTransform(t editor.Transform) {
	if !b.board.Draggable() {
		return
	}
	if err := b.board.Selection.ApplyTransform(t); err != nil {
		log.Printf("[BOARD] Transform failed: %v", err)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pointer = e.Position
	b.board.Controller.Feed(b, editor.PointerUp)
	b.drag = dragNone
}

func (b *BoardWidget) DragEnd() {}

// Tapped reports clicks to the selection while the select tool is active.
func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	if b.board.ToolMode() != editor.ToolSelect {
		return
	}
	b.board.ClickAt(toPoint(e.Position), hitTolerance)
	if id, ok := b.board.Selection.Selected(); ok {
		b.setStatus("Selected " + id)
	} else {
		b.setStatus("Nothing selected")
	}
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	if b.surface != nil && size.Width > 0 && size.Height > 0 {
		b.surface.Resize(int(size.Width), int(size.Height))
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}
