package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// NewMob spawns a mob at its spawn point. Overworld mobs pass an empty
// instance name; instance mobs start inactive until their instance is
// entered.
func NewMob(w *ecs.World, spec prefabs.MobSpec, instance string) (ecs.Entity, error) {
	radius := spec.Radius
	if radius <= 0 {
		radius = defaultActorRadius
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{
		Position: cp.Vector{X: spec.X, Y: spec.Y},
	}); err != nil {
		return 0, fmt.Errorf("mob: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent, &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("mob: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent, &component.Body{
		Shape:   collision.Circle(radius),
		Dynamic: component.Moving,
	}); err != nil {
		return 0, fmt.Errorf("mob: add body: %w", err)
	}

	mob := component.NewMob(spec.X, spec.Y, spec.ResetThreshold, spec.TargetThreshold)
	if err := ecs.Add(w, entity, component.MobComponent, &mob); err != nil {
		return 0, fmt.Errorf("mob: add mob: %w", err)
	}

	if instance == "" {
		if err := addCompat(w, entity, false); err != nil {
			return 0, fmt.Errorf("mob: %w", err)
		}
		return entity, nil
	}

	if err := ecs.Add(w, entity, component.InstanceCompatComponent, &component.InstanceCompat{Name: instance}); err != nil {
		return 0, fmt.Errorf("mob: add instance compat: %w", err)
	}
	return entity, nil
}
