package component

import "github.com/jakecoffman/cp"

// WorldBounds is the rectangle movement is clamped to. Edges are inclusive.
type WorldBounds struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// NewBoundsAroundOrigin centres a width by height rectangle on the origin.
func NewBoundsAroundOrigin(width, height float64) WorldBounds {
	return WorldBounds{Left: -width / 2, Right: width / 2, Bottom: -height / 2, Top: height / 2}
}

func (b WorldBounds) BB() cp.BB {
	return cp.BB{L: b.Left, B: b.Bottom, R: b.Right, T: b.Top}
}

func (b WorldBounds) Contains(v cp.Vector) bool {
	return b.BB().ContainsVect(v)
}

func (b WorldBounds) Clamp(v cp.Vector) cp.Vector {
	return cp.Vector{
		X: cp.Clamp(v.X, b.Left, b.Right),
		Y: cp.Clamp(v.Y, b.Bottom, b.Top),
	}
}

var WorldBoundsResource = NewResource[WorldBounds]()
