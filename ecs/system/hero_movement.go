package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

type HeroMovementSystem struct{}

func NewHeroMovementSystem() *HeroMovementSystem {
	return &HeroMovementSystem{}
}

func (h *HeroMovementSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.InputResource.ID(), component.HeroComponent.ID(), component.ActiveComponent.ID()),
		Writes: ids(component.VelocityComponent.ID()),
	}
}

// Update turns the sampled axes into the hero's velocity. Zero input means
// zero velocity.
func (h *HeroMovementSystem) Update(w *ecs.World) {
	var in component.Input
	if sampled, ok := ecs.GetResource(w, component.InputResource); ok {
		in = *sampled
	}

	axes := cp.Vector{X: in.RightLeft, Y: in.UpDown}
	magnitude := axes.Length()

	ecs.ForEach2(w, component.HeroComponent, component.VelocityComponent, func(e ecs.Entity, _ *component.Hero, vel *component.Velocity) {
		if !isActive(w, e) {
			return
		}
		vel.Reset()
		if magnitude == 0 {
			return
		}
		vel.Direction = axes.Mult(1 / magnitude)
		vel.Speed = component.HeroSpeed * math.Min(1, magnitude)
	})
}
