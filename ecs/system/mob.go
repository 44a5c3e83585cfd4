package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// arrivedSq is the squared distance at which a returning mob counts as home.
const arrivedSq = 1.0

// MobTargetSystem lets idle mobs pick up any active hero inside their
// target radius. The last hero visited wins.
type MobTargetSystem struct{}

func NewMobTargetSystem() *MobTargetSystem {
	return &MobTargetSystem{}
}

func (m *MobTargetSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.HeroComponent.ID(), component.TransformComponent.ID(), component.ActiveComponent.ID()),
		Writes: ids(component.MobComponent.ID()),
	}
}

func (m *MobTargetSystem) Update(w *ecs.World) {
	heroes := w.Query(component.HeroComponent.ID(), component.TransformComponent.ID(), component.ActiveComponent.ID())
	if len(heroes) == 0 {
		return
	}

	ecs.ForEach2(w, component.MobComponent, component.TransformComponent, func(e ecs.Entity, mob *component.Mob, t *component.Transform) {
		if !isActive(w, e) || mob.Resetting {
			return
		}
		previous := mob.Target
		for _, hero := range heroes {
			ht, ok := ecs.Get(w, hero, component.TransformComponent)
			if !ok {
				continue
			}
			if t.Position.DistanceSq(ht.Position) < mob.SquaredTargetThreshold {
				mob.Target = uint64(hero)
			}
		}
		if mob.Target != previous && mob.HasTarget() {
			w.Events().Push(ecs.Event{Type: EventMobTarget, Data: MobEvent{Mob: e, Target: ecs.Entity(mob.Target)}})
		}
	})
}

// MobMovementSystem chases the current target and walks back to spawn once
// the mob strays past its reset radius.
type MobMovementSystem struct{}

func NewMobMovementSystem() *MobMovementSystem {
	return &MobMovementSystem{}
}

func (m *MobMovementSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.TransformComponent.ID(), component.ActiveComponent.ID()),
		Writes: ids(component.MobComponent.ID(), component.VelocityComponent.ID()),
	}
}

func (m *MobMovementSystem) Update(w *ecs.World) {
	for _, e := range w.Query(component.MobComponent.ID(), component.TransformComponent.ID(), component.VelocityComponent.ID(), component.ActiveComponent.ID()) {
		mob, _ := ecs.Get(w, e, component.MobComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		if mob == nil || t == nil || vel == nil {
			continue
		}

		vel.Reset()

		if mob.HasTarget() {
			target := ecs.Entity(mob.Target)
			if isActive(w, target) {
				if tt, ok := ecs.Get(w, target, component.TransformComponent); ok {
					moveToward(vel, t.Position, tt.Position)
				}
			}
		}

		toSpawn := mob.Spawn.Sub(t.Position)
		distSq := toSpawn.LengthSq()
		if distSq > mob.SquaredResetThreshold {
			mob.Target = 0
			if !mob.Resetting {
				w.Events().Push(ecs.Event{Type: EventMobReturning, Data: MobEvent{Mob: e}})
			}
			mob.Resetting = true
		}

		if mob.Resetting && distSq > arrivedSq {
			moveToward(vel, t.Position, mob.Spawn)
		} else if mob.Resetting {
			mob.Resetting = false
			w.Events().Push(ecs.Event{Type: EventMobIdle, Data: MobEvent{Mob: e}})
		}
	}
}

// moveToward points vel at dst at mob speed. Coincident points leave the
// velocity at zero.
func moveToward(vel *component.Velocity, from, dst cp.Vector) {
	delta := dst.Sub(from)
	length := delta.Length()
	if length == 0 {
		vel.Reset()
		return
	}
	vel.Direction = delta.Mult(1 / length)
	vel.Speed = component.MobSpeed
}
