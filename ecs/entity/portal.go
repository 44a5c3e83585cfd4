package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func NewPortal(w *ecs.World, spec prefabs.PortalSpec, instance component.Instance) (ecs.Entity, error) {
	zone, err := shapeFromSpec(spec.Zone)
	if err != nil {
		return 0, fmt.Errorf("portal: %w", err)
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{
		Position: cp.Vector{X: spec.Position.X, Y: spec.Position.Y},
	}); err != nil {
		return 0, fmt.Errorf("portal: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PortalComponent, &component.Portal{
		Instance:    instance,
		TriggerZone: zone,
	}); err != nil {
		return 0, fmt.Errorf("portal: add portal: %w", err)
	}

	if err := addCompat(w, entity, false); err != nil {
		return 0, fmt.Errorf("portal: %w", err)
	}

	return entity, nil
}

func shapeFromSpec(spec prefabs.ShapeSpec) (collision.Shape, error) {
	if err := spec.Validate(); err != nil {
		return collision.Shape{}, err
	}
	if spec.Shape == "circle" {
		return collision.Circle(spec.Radius), nil
	}
	return collision.Box(spec.HalfWidth, spec.HalfHeight), nil
}

func instanceFromSpec(name string, spec prefabs.InstanceSpec) component.Instance {
	return component.Instance{
		Name:   name,
		Spawn:  cp.Vector{X: spec.Spawn.X, Y: spec.Spawn.Y},
		Exit:   cp.Vector{X: spec.Exit.X, Y: spec.Exit.Y},
		Bounds: boundsFromSpec(spec.Bounds),
	}
}

func boundsFromSpec(spec prefabs.BoundsSpec) component.WorldBounds {
	return component.WorldBounds{Left: spec.Left, Right: spec.Right, Bottom: spec.Bottom, Top: spec.Top}
}
