package system

import (
	"log"

	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PortalSystem requests an instance when the hero stands in a portal's
// trigger zone with interact held. Only the overworld has portals.
type PortalSystem struct{}

func NewPortalSystem() *PortalSystem {
	return &PortalSystem{}
}

func (p *PortalSystem) Access() ecs.Access {
	return ecs.Access{
		Reads: ids(
			component.PortalComponent.ID(),
			component.HeroComponent.ID(),
			component.TransformComponent.ID(),
			component.InputResource.ID(),
			component.ActiveComponent.ID(),
		),
		Writes: ids(component.GameStateResource.ID()),
	}
}

func (p *PortalSystem) Update(w *ecs.World) {
	state, ok := ecs.GetResource(w, component.GameStateResource)
	if !ok || state.Kind != component.GameOverworld || state.Pending {
		return
	}
	in, ok := ecs.GetResource(w, component.InputResource)
	if !ok || !in.Interact {
		return
	}

	heroes := w.Query(component.HeroComponent.ID(), component.TransformComponent.ID(), component.ActiveComponent.ID())
	for _, portalEntity := range w.Query(component.PortalComponent.ID(), component.TransformComponent.ID(), component.ActiveComponent.ID()) {
		portal, _ := ecs.Get(w, portalEntity, component.PortalComponent)
		pt, _ := ecs.Get(w, portalEntity, component.TransformComponent)
		if portal == nil || pt == nil {
			continue
		}
		for _, hero := range heroes {
			ht, ok := ecs.Get(w, hero, component.TransformComponent)
			if !ok {
				continue
			}
			if !collision.ContainsPoint(pt.Position, portal.TriggerZone, ht.Position) {
				continue
			}
			*state = component.NewInstanceState(portal.Instance)
			log.Printf("portal: entering instance %q", portal.Instance.Name)
			w.Events().Push(ecs.Event{Type: EventPortalTriggered, Data: portal.Instance})
			return
		}
	}
}
