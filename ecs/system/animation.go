package system

import (
	"github.com/milk9111/topdown/anim"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// AnimationSelectSystem picks the hero's movement animation from the
// sampled axes and swaps the playing control only when the choice changes.
type AnimationSelectSystem struct{}

func NewAnimationSelectSystem() *AnimationSelectSystem {
	return &AnimationSelectSystem{}
}

func (a *AnimationSelectSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.InputResource.ID(), component.ActiveComponent.ID()),
		Writes: ids(component.HeroComponent.ID(), component.AnimationBindingsComponent.ID()),
	}
}

func (a *AnimationSelectSystem) Update(w *ecs.World) {
	var in component.Input
	if sampled, ok := ecs.GetResource(w, component.InputResource); ok {
		in = *sampled
	}
	next := anim.Select(in.RightLeft, in.UpDown)

	ecs.ForEach2(w, component.HeroComponent, component.AnimationBindingsComponent, func(e ecs.Entity, hero *component.Hero, bindings *component.AnimationBindings) {
		if !isActive(w, e) || hero.Current == next {
			return
		}
		clip, ok := bindings.Clips[next]
		if !ok {
			return
		}
		bindings.Control.Stop()
		bindings.Control = anim.NewLooping(next, clip)
		previous := hero.Current
		hero.Current = next
		w.Events().Push(ecs.Event{Type: EventAnimationChanged, Data: AnimationChange{Entity: e, From: previous, To: next}})
	})
}

type AnimationChange struct {
	Entity ecs.Entity
	From   anim.ID
	To     anim.ID
}

// AnimationSystem advances every playing control by one tick.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.ActiveComponent.ID()),
		Writes: ids(component.AnimationBindingsComponent.ID()),
	}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationBindingsComponent, func(e ecs.Entity, bindings *component.AnimationBindings) {
		if !isActive(w, e) {
			return
		}
		bindings.Control.Advance()
	})
}
