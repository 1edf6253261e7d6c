package state

import "math"

// Area is an axis-aligned rectangle on the canvas.
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

func (a Area) Overlaps(b Area) bool {
	return !(a.X+a.Width < b.X || b.X+b.Width < a.X ||
		a.Y+a.Height < b.Y || b.Y+b.Height < a.Y)
}

// Union returns the smallest area covering both a and b.
func (a Area) Union(b Area) Area {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Pad grows the area by n on every side.
func (a Area) Pad(n float64) Area {
	return Area{X: a.X - n, Y: a.Y - n, Width: a.Width + 2*n, Height: a.Height + 2*n}
}

func boundsOf(points []Point) Area {
	if len(points) == 0 {
		return Area{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// HitTest reports whether p lands on the painted part of s. tolerance widens
// thin strokes so they can be clicked.
func HitTest(s Shape, p Point, tolerance float64) bool {
	if !s.Visible() {
		return false
	}
	reach := s.ShapeStyle().StrokeWidth/2 + tolerance
	switch v := s.(type) {
	case Rectangle:
		return v.Bounds().Pad(reach).Contains(p)
	case Circle:
		return math.Hypot(p.X-v.CX, p.Y-v.CY) <= v.Radius+reach
	case Arrow:
		return segmentDistance(p, Point{v.X1, v.Y1}, Point{v.X2, v.Y2}) <= reach
	case Scribble:
		for i := 1; i < len(v.Points); i++ {
			if segmentDistance(p, v.Points[i-1], v.Points[i]) <= reach {
				return true
			}
		}
		return false
	default:
		panic("state: unknown shape variant")
	}
}

func segmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// Translate returns s moved by (dx, dy).
func Translate(s Shape, dx, dy float64) Shape {
	switch v := s.(type) {
	case Rectangle:
		v.X += dx
		v.Y += dy
		return v
	case Circle:
		v.CX += dx
		v.CY += dy
		return v
	case Arrow:
		v.X1 += dx
		v.Y1 += dy
		v.X2 += dx
		v.Y2 += dy
		return v
	case Scribble:
		pts := make([]Point, len(v.Points))
		for i, p := range v.Points {
			pts[i] = Point{p.X + dx, p.Y + dy}
		}
		v.Points = pts
		return v
	default:
		panic("state: unknown shape variant")
	}
}

// Scale returns s scaled by (sx, sy) about the top-left corner of its
// bounds. Factors that are not positive are treated as 1. Circles stay
// round and take the larger factor.
func Scale(s Shape, sx, sy float64) Shape {
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	origin := s.Bounds()
	scale := func(p Point) Point {
		return Point{origin.X + (p.X-origin.X)*sx, origin.Y + (p.Y-origin.Y)*sy}
	}
	switch v := s.(type) {
	case Rectangle:
		v.Width *= sx
		v.Height *= sy
		return v
	case Circle:
		r := v.Radius * math.Max(sx, sy)
		v.CX = origin.X + r
		v.CY = origin.Y + r
		v.Radius = r
		return v
	case Arrow:
		p1, p2 := scale(Point{v.X1, v.Y1}), scale(Point{v.X2, v.Y2})
		v.X1, v.Y1, v.X2, v.Y2 = p1.X, p1.Y, p2.X, p2.Y
		return v
	case Scribble:
		pts := make([]Point, len(v.Points))
		for i, p := range v.Points {
			pts[i] = scale(p)
		}
		v.Points = pts
		return v
	default:
		panic("state: unknown shape variant")
	}
}

// Clone returns a copy of s that shares no memory with it.
func Clone(s Shape) Shape {
	if v, ok := s.(Scribble); ok {
		v.Points = append([]Point(nil), v.Points...)
		return v
	}
	return s
}
