package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// NewCamera places a camera over target and makes it follow target.
func NewCamera(w *ecs.World, target ecs.Entity, spec prefabs.CameraSpec) (ecs.Entity, error) {
	var pos cp.Vector
	if t, ok := ecs.Get(w, target, component.TransformComponent); ok {
		pos = t.Position
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{
		Position: pos.Add(cp.Vector{X: spec.Offset.X, Y: spec.Offset.Y}),
		Z:        component.CameraZ,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.CameraTargetComponent, &component.CameraTarget{Entity: uint64(target)}); err != nil {
		return 0, fmt.Errorf("camera: add target: %w", err)
	}

	if err := addCompat(w, entity, true); err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}

	return entity, nil
}
