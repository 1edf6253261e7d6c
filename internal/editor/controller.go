// Package editor turns pointer and click events into shape store changes.
package editor

import (
	"math"

	"LocalSketch/internal/state"
)

// Tool is the active tool mode.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
	ToolCircle
	ToolArrow
	ToolScribble
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolArrow:
		return "arrow"
	case ToolScribble:
		return "scribble"
	}
	return "unknown"
}

// Draws reports whether pointer gestures with t create shapes.
func (t Tool) Draws() bool {
	return t >= ToolRectangle && t <= ToolScribble
}

// Phase is the controller's state.
type Phase int

const (
	Idle Phase = iota
	Drawing
)

func (p Phase) String() string {
	if p == Drawing {
		return "drawing"
	}
	return "idle"
}

type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
)

func (e EventType) String() string {
	switch e {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	}
	return "unknown"
}

// Event is one pointer event in canvas coordinates. X and Y are ignored for
// PointerUp.
type Event struct {
	Type EventType
	X, Y float64
}

// ToolReader exposes the current tool mode. The controller never changes it.
type ToolReader interface {
	ToolMode() Tool
}

// PointerSource reports the current pointer location in canvas coordinates.
type PointerSource interface {
	PointerPosition() (x, y float64)
}

// Controller is the two-state gesture machine. It is not safe for
// concurrent use; events must arrive from one goroutine.
type Controller struct {
	store *state.Store
	style *state.StyleState
	tools ToolReader
	newID state.IDSource

	phase  Phase
	active string

	// OnTransition, if set, runs after every phase change.
	OnTransition func(from, to Phase)
}

func NewController(store *state.Store, style *state.StyleState, tools ToolReader, ids state.IDSource) *Controller {
	if ids == nil {
		ids = state.NewID
	}
	return &Controller{store: store, style: style, tools: tools, newID: ids}
}

func (c *Controller) Phase() Phase { return c.phase }

// Active returns the id of the shape being drawn.
func (c *Controller) Active() (string, bool) {
	return c.active, c.phase == Drawing
}

func (c *Controller) PointerDown(x, y float64) { c.Handle(Event{Type: PointerDown, X: x, Y: y}) }
func (c *Controller) PointerMove(x, y float64) { c.Handle(Event{Type: PointerMove, X: x, Y: y}) }
func (c *Controller) PointerUp()               { c.Handle(Event{Type: PointerUp}) }

// Feed reads the pointer position from src and handles an event of type t.
func (c *Controller) Feed(src PointerSource, t EventType) {
	x, y := src.PointerPosition()
	c.Handle(Event{Type: t, X: x, Y: y})
}

// Handle advances the machine by one event. Events that do not apply to
// the current phase or tool are dropped.
func (c *Controller) Handle(ev Event) {
	switch c.phase {
	case Idle:
		switch ev.Type {
		case PointerDown:
			c.begin(ev.X, ev.Y)
		default:
			Logger().Debug("event ignored while idle", "event", ev.Type.String())
		}
	case Drawing:
		switch ev.Type {
		case PointerMove:
			c.extend(ev.X, ev.Y)
		case PointerUp:
			c.finish()
		case PointerDown:
			Logger().Debug("pointer-down ignored while drawing", "active", c.active)
		}
	}
}

func (c *Controller) begin(x, y float64) {
	tool := c.tools.ToolMode()
	if !tool.Draws() {
		return
	}
	shape := newShape(tool, c.newID(), c.style.Snapshot(), x, y)
	if err := c.store.Add(shape); err != nil {
		Logger().Warn("shape not created", "tool", tool.String(), "err", err)
		return
	}
	c.active = shape.ShapeID()
	c.setPhase(Drawing)
	Logger().Info("gesture started", "tool", tool.String(), "id", c.active, "x", x, "y", y)
}

func (c *Controller) extend(x, y float64) {
	if !c.tools.ToolMode().Draws() {
		return
	}
	var err error
	if kind, ok := c.store.KindOf(c.active); ok && kind == state.KindScribble {
		err = c.store.AppendPoint(c.active, state.Point{X: x, Y: y})
	} else {
		err = c.store.Update(c.active, func(s state.Shape) state.Shape {
			return resize(s, x, y)
		})
	}
	if err != nil {
		Logger().Debug("pointer-move dropped", "active", c.active, "err", err)
	}
}

func (c *Controller) finish() {
	Logger().Info("gesture finished", "id", c.active)
	c.active = ""
	c.setPhase(Idle)
}

func (c *Controller) setPhase(p Phase) {
	from := c.phase
	c.phase = p
	if c.OnTransition != nil && from != p {
		c.OnTransition(from, p)
	}
}

// newShape builds the degenerate shape a gesture starts with.
func newShape(tool Tool, id string, st state.StyleSnapshot, x, y float64) state.Shape {
	base := state.Base{ID: id, Style: st.Style, Anchor: state.Point{X: x, Y: y}}
	switch tool {
	case ToolRectangle:
		return state.Rectangle{Base: base, X: x, Y: y, Width: 1, Height: 1, CornerRadius: st.CornerRadius}
	case ToolCircle:
		return state.Circle{Base: base, CX: x, CY: y, Radius: 1}
	case ToolArrow:
		return state.Arrow{Base: base, X1: x, Y1: y, X2: x + 1, Y2: y + 1}
	case ToolScribble:
		return state.Scribble{Base: base, Points: []state.Point{{X: x, Y: y}, {X: x + 1, Y: y + 1}}}
	}
	panic("editor: tool " + tool.String() + " does not draw")
}

// resize applies the drag rule of the shape's kind for a pointer at (x, y).
// Scribbles are extended by Store.AppendPoint instead.
func resize(s state.Shape, x, y float64) state.Shape {
	switch v := s.(type) {
	case state.Rectangle:
		x0, y0 := v.Anchor.X, v.Anchor.Y
		v.X = math.Min(x0, x)
		v.Y = math.Min(y0, y)
		v.Width = math.Abs(x - x0)
		v.Height = math.Abs(y - y0)
		return v
	case state.Circle:
		dx, dy := x-v.Anchor.X, y-v.Anchor.Y
		v.Radius = math.Sqrt(dx*dx + dy*dy)
		return v
	case state.Arrow:
		v.X1, v.Y1 = v.Anchor.X, v.Anchor.Y
		v.X2, v.Y2 = x, y
		return v
	case state.Scribble:
		v.Points = append(v.Points, state.Point{X: x, Y: y})
		return v
	default:
		panic("editor: unknown shape variant")
	}
}
