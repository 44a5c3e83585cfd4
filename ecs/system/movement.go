package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// MovementSystem integrates velocity into position and keeps the result
// inside the world bounds when they are set.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.VelocityComponent.ID(), component.WorldBoundsResource.ID(), component.ActiveComponent.ID()),
		Writes: ids(component.TransformComponent.ID()),
	}
}

func (m *MovementSystem) Update(w *ecs.World) {
	bounds, bounded := ecs.GetResource(w, component.WorldBoundsResource)

	ecs.ForEach2(w, component.TransformComponent, component.VelocityComponent, func(e ecs.Entity, t *component.Transform, vel *component.Velocity) {
		if !isActive(w, e) {
			return
		}
		next := t.Position.Add(vel.Step())
		if bounded {
			next = bounds.Clamp(next)
		}
		t.Position = next
	})
}
