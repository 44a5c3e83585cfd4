package component

import "github.com/jakecoffman/cp"

// Transform places an entity in world space. Z is only meaningful for the
// camera.
type Transform struct {
	Position cp.Vector
	Z        float64
}

var TransformComponent = NewComponent[Transform]()
