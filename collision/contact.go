package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// minDepth filters touching or numerically-zero overlaps.
const minDepth = 1e-9

// Contact describes an overlap between two shapes. Normal is a unit vector
// pointing from the first shape towards the second and Depth is the
// penetration along it. Moving the first shape by Normal*-Depth separates
// the pair.
type Contact struct {
	Normal cp.Vector
	Depth  float64
}

// Displacement is the translation that pushes the first shape out of the
// second.
func (c Contact) Displacement() cp.Vector {
	return c.Normal.Mult(-c.Depth)
}

// Collide tests shape a at posA against shape b at posB. ok is false when
// the shapes do not overlap.
func Collide(posA cp.Vector, a Shape, posB cp.Vector, b Shape) (Contact, bool) {
	var c Contact
	switch {
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		c = circleCircle(posA, a.Radius, posB, b.Radius)
	case a.Kind == ShapeBox && b.Kind == ShapeBox:
		c = boxBox(posA, a.HalfExtents, posB, b.HalfExtents)
	case a.Kind == ShapeCircle && b.Kind == ShapeBox:
		c = circleBox(posA, a.Radius, posB, b.HalfExtents)
	case a.Kind == ShapeBox && b.Kind == ShapeCircle:
		c = circleBox(posB, b.Radius, posA, a.HalfExtents)
		c.Normal = c.Normal.Neg()
	default:
		return Contact{}, false
	}
	if c.Depth <= minDepth {
		return Contact{}, false
	}
	return c, true
}

func circleCircle(pa cp.Vector, ra float64, pb cp.Vector, rb float64) Contact {
	delta := pb.Sub(pa)
	distSq := delta.LengthSq()
	sum := ra + rb
	if distSq >= sum*sum {
		return Contact{}
	}
	dist := math.Sqrt(distSq)
	if dist == 0 {
		return Contact{Normal: cp.Vector{X: 1}, Depth: sum}
	}
	return Contact{Normal: delta.Mult(1 / dist), Depth: sum - dist}
}

func boxBox(pa, ha, pb, hb cp.Vector) Contact {
	d := pb.Sub(pa)
	ox := ha.X + hb.X - math.Abs(d.X)
	oy := ha.Y + hb.Y - math.Abs(d.Y)
	if ox <= 0 || oy <= 0 {
		return Contact{}
	}
	if ox <= oy {
		return Contact{Normal: cp.Vector{X: sign(d.X)}, Depth: ox}
	}
	return Contact{Normal: cp.Vector{Y: sign(d.Y)}, Depth: oy}
}

// circleBox returns the contact with the normal pointing from the circle to
// the box.
func circleBox(pc cp.Vector, r float64, pb, h cp.Vector) Contact {
	local := pc.Sub(pb)
	closest := cp.Vector{
		X: cp.Clamp(local.X, -h.X, h.X),
		Y: cp.Clamp(local.Y, -h.Y, h.Y),
	}
	inside := local.X == closest.X && local.Y == closest.Y
	if !inside {
		delta := closest.Sub(local)
		distSq := delta.LengthSq()
		if distSq >= r*r {
			return Contact{}
		}
		dist := math.Sqrt(distSq)
		return Contact{Normal: delta.Mult(1 / dist), Depth: r - dist}
	}

	// Centre inside the box: push out through the nearest face.
	px := h.X - math.Abs(local.X)
	py := h.Y - math.Abs(local.Y)
	if px <= py {
		return Contact{Normal: cp.Vector{X: -sign(local.X)}, Depth: r + px}
	}
	return Contact{Normal: cp.Vector{Y: -sign(local.Y)}, Depth: r + py}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
