package state

import "math"

type Point struct{ X, Y float64 }

// Kind names one of the four shape variants.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindArrow     Kind = "arrow"
	KindScribble  Kind = "scribble"
)

// Style is the paint applied to a shape. It is copied from the StyleState
// when the shape is created and never follows later style changes.
type Style struct {
	Fill        string  `json:"fill" yaml:"fill"`
	Stroke      string  `json:"stroke" yaml:"stroke"`
	StrokeWidth float64 `json:"stroke_width" yaml:"stroke_width"`
}

// Shape is implemented by Rectangle, Circle, Arrow and Scribble only.
// Consumers switch over the concrete types.
type Shape interface {
	ShapeID() string
	Kind() Kind
	ShapeStyle() Style
	// Visible reports whether the geometry is worth painting.
	Visible() bool
	Bounds() Area

	sealed()
}

// Base holds the fields every variant carries.
type Base struct {
	ID    string `json:"id"`
	Style Style  `json:"style"`
	// Anchor is the pointer position of the PointerDown that created the shape.
	Anchor Point `json:"anchor"`
}

func (b Base) ShapeID() string   { return b.ID }
func (b Base) ShapeStyle() Style { return b.Style }
func (Base) sealed()             {}

type Rectangle struct {
	Base
	X, Y          float64
	Width, Height float64
	CornerRadius  float64
}

func (Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Visible() bool { return r.Width > 0 && r.Height > 0 }

func (r Rectangle) Bounds() Area {
	return Area{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

type Circle struct {
	Base
	CX, CY float64
	Radius float64
}

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) Visible() bool { return c.Radius > 0 }

func (c Circle) Bounds() Area {
	return Area{X: c.CX - c.Radius, Y: c.CY - c.Radius, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

type Arrow struct {
	Base
	X1, Y1 float64
	X2, Y2 float64
}

func (Arrow) Kind() Kind { return KindArrow }

func (a Arrow) Visible() bool { return a.X1 != a.X2 || a.Y1 != a.Y2 }

func (a Arrow) Bounds() Area {
	return boundsOf([]Point{{a.X1, a.Y1}, {a.X2, a.Y2}})
}

// Length is the distance between the two endpoints.
func (a Arrow) Length() float64 { return math.Hypot(a.X2-a.X1, a.Y2-a.Y1) }

type Scribble struct {
	Base
	Points []Point
}

func (Scribble) Kind() Kind { return KindScribble }

func (s Scribble) Visible() bool { return len(s.Points) >= 2 }

func (s Scribble) Bounds() Area { return boundsOf(s.Points) }
