package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(state.ColorOf(b.background)),
	}
	r.rebuild()
	return r
}

func (r *boardRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}
	for _, s := range r.board.board.Store().All() {
		objects = append(objects, shapeObjects(s)...)
	}
	objects = append(objects, r.board.handle.objects()...)
	r.objects = objects
}

func (r *boardRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}

// shapeObjects turns one shape into fyne canvas objects. Shapes that are not
// Visible produce none.
func shapeObjects(s state.Shape) []fyne.CanvasObject {
	if !s.Visible() {
		return nil
	}
	st := s.ShapeStyle()
	fill, stroke := state.ColorOf(st.Fill), state.ColorOf(st.Stroke)
	width := float32(st.StrokeWidth)

	switch v := s.(type) {
	case state.Rectangle:
		rect := canvas.NewRectangle(fill)
		rect.StrokeColor = stroke
		rect.StrokeWidth = width
		rect.CornerRadius = float32(v.CornerRadius)
		rect.Move(fyne.NewPos(float32(v.X), float32(v.Y)))
		rect.Resize(fyne.NewSize(float32(v.Width), float32(v.Height)))
		return []fyne.CanvasObject{rect}
	case state.Circle:
		c := canvas.NewCircle(fill)
		c.StrokeColor = stroke
		c.StrokeWidth = width
		c.Position1 = fyne.NewPos(float32(v.CX-v.Radius), float32(v.CY-v.Radius))
		c.Position2 = fyne.NewPos(float32(v.CX+v.Radius), float32(v.CY+v.Radius))
		return []fyne.CanvasObject{c}
	case state.Arrow:
		head := render.ArrowHead(v)
		return []fyne.CanvasObject{
			segment(stroke, width, state.Point{X: v.X1, Y: v.Y1}, state.Point{X: v.X2, Y: v.Y2}),
			segment(stroke, width, head[0], head[1]),
			segment(stroke, width, head[0], head[2]),
			segment(stroke, width, head[1], head[2]),
		}
	case state.Scribble:
		lines := make([]fyne.CanvasObject, 0, len(v.Points)-1)
		for i := 1; i < len(v.Points); i++ {
			lines = append(lines, segment(stroke, width, v.Points[i-1], v.Points[i]))
		}
		return lines
	default:
		panic("ui: unknown shape variant")
	}
}

func segment(c color.Color, width float32, from, to state.Point) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(from.X), float32(from.Y))
	line.Position2 = fyne.NewPos(float32(to.X), float32(to.Y))
	return line
}
