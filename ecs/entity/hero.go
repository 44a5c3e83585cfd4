package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/anim"
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

const defaultActorRadius = 16

func NewHero(w *ecs.World, spec prefabs.HeroSpec, clips map[anim.ID]*anim.Clip) (ecs.Entity, error) {
	radius := spec.Radius
	if radius <= 0 {
		radius = defaultActorRadius
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{
		Position: cp.Vector{X: spec.Position.X, Y: spec.Position.Y},
	}); err != nil {
		return 0, fmt.Errorf("hero: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent, &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("hero: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent, &component.Body{
		Shape:   collision.Circle(radius),
		Dynamic: component.Moving,
	}); err != nil {
		return 0, fmt.Errorf("hero: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HeroComponent, &component.Hero{}); err != nil {
		return 0, fmt.Errorf("hero: add hero: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimationBindingsComponent, &component.AnimationBindings{Clips: clips}); err != nil {
		return 0, fmt.Errorf("hero: add animations: %w", err)
	}

	if err := addCompat(w, entity, true); err != nil {
		return 0, fmt.Errorf("hero: %w", err)
	}

	return entity, nil
}
