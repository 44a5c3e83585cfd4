package entity

import (
	"fmt"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// addCompat makes an entity live in the overworld, and in every instance as
// well when everywhere is set.
func addCompat(w *ecs.World, e ecs.Entity, everywhere bool) error {
	if err := ecs.Add(w, e, component.ActiveComponent, &component.Active{}); err != nil {
		return fmt.Errorf("add active: %w", err)
	}
	if err := ecs.Add(w, e, component.OverworldCompatComponent, &component.OverworldCompat{}); err != nil {
		return fmt.Errorf("add overworld compat: %w", err)
	}
	if !everywhere {
		return nil
	}
	if err := ecs.Add(w, e, component.InstanceCompatComponent, &component.InstanceCompat{}); err != nil {
		return fmt.Errorf("add instance compat: %w", err)
	}
	return nil
}
