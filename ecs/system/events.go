package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	EventCollision        = "collision"
	EventMobTarget        = "mob_target"
	EventMobReturning     = "mob_returning"
	EventMobIdle          = "mob_idle"
	EventPortalTriggered  = "portal_triggered"
	EventAnimationChanged = "animation_changed"
)

// MobEvent reports a mob changing mode. Target is zero unless the mob just
// acquired one.
type MobEvent struct {
	Mob    ecs.Entity
	Target ecs.Entity
}

func isActive(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.ActiveComponent)
}
