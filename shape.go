package main

import (
	"fmt"
	"math"
)

// Color is a straight (non-premultiplied) ARGB colour.
type Color struct {
	A, R, G, B uint8
}

// ShapeKind selects the geometry of every shape in a run.
type ShapeKind uint8

const (
	KindCircle ShapeKind = iota
	KindSquare
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// ParseShapeKind accepts "circle" or "square".
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "circle", "":
		return KindCircle, nil
	case "square":
		return KindSquare, nil
	}
	return KindCircle, fmt.Errorf("unknown shape kind %q (want circle or square)", s)
}

// Shape is a circle or an axis-aligned square centred on (X, Y).
// For squares Radius is the half side, so the side is 2*Radius+1.
type Shape struct {
	Kind   ShapeKind
	X, Y   int
	Radius int
	Color  Color
}

// NewShape does no validation; the mutation operator keeps values in range.
func NewShape(kind ShapeKind, x, y, radius int, c Color) Shape {
	return Shape{Kind: kind, X: x, Y: y, Radius: radius, Color: c}
}

// Stride returns the horizontal half-width of the shape on scanline y.
// A negative result means the row is not covered at all.
func (s Shape) Stride(y int) int {
	switch s.Kind {
	case KindSquare:
		return s.Radius
	default:
		d := y - s.Y
		r2 := s.Radius * s.Radius
		if d*d > r2 {
			return -1
		}
		return int(math.Sqrt(float64(r2) - float64(d*d)))
	}
}
