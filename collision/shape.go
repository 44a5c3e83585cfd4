package collision

import "github.com/jakecoffman/cp"

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Shape is a collider centred on its owner's position. Circles use Radius,
// boxes use HalfExtents.
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfExtents cp.Vector
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Box(halfWidth, halfHeight float64) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: cp.Vector{X: halfWidth, Y: halfHeight}}
}

// Bounds returns the axis-aligned box enclosing the shape at pos.
func (s Shape) Bounds(pos cp.Vector) cp.BB {
	if s.Kind == ShapeCircle {
		return cp.NewBBForCircle(pos, s.Radius)
	}
	return cp.NewBBForExtents(pos, s.HalfExtents.X, s.HalfExtents.Y)
}

// ContainsPoint reports whether point lies inside shape placed at pos.
// Points on the boundary count as inside.
func ContainsPoint(pos cp.Vector, shape Shape, point cp.Vector) bool {
	switch shape.Kind {
	case ShapeCircle:
		return pos.DistanceSq(point) <= shape.Radius*shape.Radius
	case ShapeBox:
		return shape.Bounds(pos).ContainsVect(point)
	}
	return false
}
