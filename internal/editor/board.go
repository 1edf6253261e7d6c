package editor

import (
	"LocalSketch/internal/state"
)

// Board is the whole editable document: style, shapes, the gesture
// machine and the selection. Every mutation goes through one of its
// components.
type Board struct {
	style *state.StyleState
	store *state.Store
	tool  Tool

	Controller *Controller
	Selection  *Selection
}

// BoardOptions configures NewBoard. Zero values pick the defaults.
type BoardOptions struct {
	Style state.StyleSnapshot
	IDs   state.IDSource
	// Handle is the transform handle; it can also be attached later with
	// Selection.SetHandle.
	Handle TransformHandle
}

func NewBoard(opts BoardOptions) *Board {
	b := &Board{
		style: state.NewStyleState(opts.Style),
		store: state.NewStore(),
		tool:  ToolSelect,
	}
	b.Controller = NewController(b.store, b.style, b, opts.IDs)
	b.Selection = NewSelection(b.store, opts.Handle)
	return b
}

func (b *Board) Store() *state.Store      { return b.store }
func (b *Board) Style() *state.StyleState { return b.style }

// ToolMode implements ToolReader.
func (b *Board) ToolMode() Tool { return b.tool }

// SetToolMode switches tools. A gesture still in progress is finished
// first, and picking a drawing tool drops the selection.
func (b *Board) SetToolMode(t Tool) {
	if b.Controller.Phase() == Drawing {
		b.Controller.PointerUp()
	}
	if t.Draws() {
		b.Selection.Clear()
	}
	if b.tool != t {
		Logger().Info("tool changed", "from", b.tool.String(), "to", t.String())
	}
	b.tool = t
}

// SetStyle changes one style value for shapes created from now on.
func (b *Board) SetStyle(field state.StyleField, value any) error {
	return b.style.Set(field, value)
}

// Draggable reports whether finished shapes may be moved by the surface.
func (b *Board) Draggable() bool { return b.tool == ToolSelect }

// ClickShape forwards a click on a rendered shape to the selection while
// the select tool is active.
func (b *Board) ClickShape(id string) {
	if b.tool != ToolSelect {
		return
	}
	b.Selection.OnShapeClicked(id)
}

// ClickBackground clears the selection.
func (b *Board) ClickBackground() {
	b.Selection.OnBackgroundClicked()
}

// ClickAt resolves a click at p to a shape or the background.
func (b *Board) ClickAt(p state.Point, tolerance float64) {
	if s, ok := b.store.ShapeAt(p, tolerance); ok {
		b.ClickShape(s.ShapeID())
		return
	}
	b.ClickBackground()
}
