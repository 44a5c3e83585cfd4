package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

const (
	defaultBuildingHalfWidth  = 32
	defaultBuildingHalfHeight = 16
)

func NewBuilding(w *ecs.World, spec prefabs.BuildingSpec) (ecs.Entity, error) {
	hw, hh := spec.HalfWidth, spec.HalfHeight
	if hw <= 0 || hh <= 0 {
		hw, hh = defaultBuildingHalfWidth, defaultBuildingHalfHeight
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{
		Position: cp.Vector{X: spec.Position.X, Y: spec.Position.Y},
	}); err != nil {
		return 0, fmt.Errorf("building: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent, &component.Body{
		Shape:   collision.Box(hw, hh),
		Dynamic: component.Static,
	}); err != nil {
		return 0, fmt.Errorf("building: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.BuildingTagComponent, &component.BuildingTag{}); err != nil {
		return 0, fmt.Errorf("building: add building tag: %w", err)
	}

	if err := addCompat(w, entity, false); err != nil {
		return 0, fmt.Errorf("building: %w", err)
	}

	return entity, nil
}
