// Package render paints a shape store into an image without a display.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"LocalSketch/internal/state"
)

// DataURLPrefix starts every URL returned by ToDataURL.
const DataURLPrefix = "data:image/png;base64,"

// Arrowhead size in canvas units.
const (
	headLength = 10.0
	headWidth  = 10.0
)

// Surface renders the shapes of a store onto a fixed-size canvas.
type Surface struct {
	store      *state.Store
	width      int
	height     int
	background string
}

func NewSurface(store *state.Store, width, height int, background string) *Surface {
	return &Surface{store: store, width: width, height: height, background: background}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

// Resize changes the canvas size used by later renders.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
}

// Render paints the background and every visible shape in creation order.
func (s *Surface) Render() image.Image {
	return s.draw().Image()
}

func (s *Surface) draw() *gg.Context {
	dc := gg.NewContext(s.width, s.height)
	dc.SetColor(state.ColorOf(s.background))
	dc.Clear()
	for _, sh := range s.store.All() {
		Paint(dc, sh)
	}
	return dc
}

// PNG returns Render encoded as PNG.
func (s *Surface) PNG() ([]byte, error) {
	dc := s.draw()
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ToDataURL returns the current render as a base64 PNG data URL.
func (s *Surface) ToDataURL() (string, error) {
	data, err := s.PNG()
	if err != nil {
		return "", err
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// Paint draws one shape. Shapes that are not Visible are skipped.
func Paint(dc *gg.Context, sh state.Shape) {
	if !sh.Visible() {
		return
	}
	st := sh.ShapeStyle()
	dc.Push()
	defer dc.Pop()
	dc.SetLineWidth(st.StrokeWidth)

	switch v := sh.(type) {
	case state.Rectangle:
		r := math.Min(v.CornerRadius, math.Min(v.Width, v.Height)/2)
		if r > 0 {
			dc.DrawRoundedRectangle(v.X, v.Y, v.Width, v.Height, r)
		} else {
			dc.DrawRectangle(v.X, v.Y, v.Width, v.Height)
		}
		fillAndStroke(dc, st)
	case state.Circle:
		dc.DrawCircle(v.CX, v.CY, v.Radius)
		fillAndStroke(dc, st)
	case state.Arrow:
		dc.SetLineCap(gg.LineCapRound)
		dc.SetColor(state.ColorOf(st.Stroke))
		dc.DrawLine(v.X1, v.Y1, v.X2, v.Y2)
		dc.Stroke()
		head := ArrowHead(v)
		dc.MoveTo(head[0].X, head[0].Y)
		dc.LineTo(head[1].X, head[1].Y)
		dc.LineTo(head[2].X, head[2].Y)
		dc.ClosePath()
		fillAndStroke(dc, st)
	case state.Scribble:
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.SetColor(state.ColorOf(st.Stroke))
		dc.MoveTo(v.Points[0].X, v.Points[0].Y)
		for _, p := range v.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.Stroke()
	default:
		panic("render: unknown shape variant")
	}
}

func fillAndStroke(dc *gg.Context, st state.Style) {
	dc.SetColor(state.ColorOf(st.Fill))
	dc.FillPreserve()
	dc.SetColor(state.ColorOf(st.Stroke))
	if st.StrokeWidth > 0 {
		dc.Stroke()
	} else {
		dc.ClearPath()
	}
}

// ArrowHead returns the tip and the two base corners of the head drawn at
// the second endpoint of a.
func ArrowHead(a state.Arrow) [3]state.Point {
	dx, dy := a.X2-a.X1, a.Y2-a.Y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		tip := state.Point{X: a.X2, Y: a.Y2}
		return [3]state.Point{tip, tip, tip}
	}
	dx, dy = dx/l, dy/l
	bx, by := a.X2-headLength*dx, a.Y2-headLength*dy
	hw := headWidth / 2
	return [3]state.Point{
		{X: a.X2, Y: a.Y2},
		{X: bx - hw*dy, Y: by + hw*dx},
		{X: bx + hw*dy, Y: by - hw*dx},
	}
}
