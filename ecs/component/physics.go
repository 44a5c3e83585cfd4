package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
)

type Dynamic int

const (
	Static Dynamic = iota
	Moving
)

// Body is a collider. Static bodies are never moved by collision
// resolution.
type Body struct {
	Shape   collision.Shape
	Dynamic Dynamic
}

func (b Body) IsDynamic() bool {
	return b.Dynamic == Moving
}

var BodyComponent = NewComponent[Body]()

// CollisionMark holds the pending correction for a dynamic body found
// overlapping another body this tick.
type CollisionMark struct {
	Penetration cp.Vector
	Other       uint64
}

var CollisionMarkComponent = NewComponent[CollisionMark]()
