package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
)

// Instance describes an enclosed area reached through a portal. Exit is
// where the hero reappears in the overworld.
type Instance struct {
	Name   string
	Spawn  cp.Vector
	Exit   cp.Vector
	Bounds WorldBounds
}

// Portal enters Instance when the hero interacts while inside TriggerZone.
type Portal struct {
	Instance    Instance
	TriggerZone collision.Shape
}

var PortalComponent = NewComponent[Portal]()
