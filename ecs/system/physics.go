package system

import (
	"log"
	"sync"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PhysicsSystem resolves this tick's interpenetration in a single pass.
// Every ordered pair of active bodies is tested; a dynamic body keeps only
// the last correction recorded against it.
type PhysicsSystem struct {
	bodies   []physicsBody
	markWarn sync.Once
}

type physicsBody struct {
	entity ecs.Entity
	pos    cp.Vector
	body   component.Body
	bb     cp.BB
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.BodyComponent.ID(), component.ActiveComponent.ID()),
		Writes: ids(component.TransformComponent.ID(), component.CollisionMarkComponent.ID()),
	}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	p.bodies = p.bodies[:0]
	ecs.ForEach2(w, component.BodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.Body, t *component.Transform) {
		if !isActive(w, e) {
			return
		}
		p.bodies = append(p.bodies, physicsBody{
			entity: e,
			pos:    t.Position,
			body:   *body,
			bb:     body.Shape.Bounds(t.Position),
		})
	})

	for i := range p.bodies {
		a := &p.bodies[i]
		if !a.body.IsDynamic() {
			continue
		}
		for j := range p.bodies {
			if i == j {
				continue
			}
			b := &p.bodies[j]
			if !a.bb.Intersects(b.bb) {
				continue
			}
			contact, ok := collision.Collide(a.pos, a.body.Shape, b.pos, b.body.Shape)
			if !ok {
				continue
			}
			p.mark(w, a.entity, b.entity, contact.Displacement())
		}
	}

	ecs.ForEach2(w, component.CollisionMarkComponent, component.TransformComponent, func(e ecs.Entity, mark *component.CollisionMark, t *component.Transform) {
		t.Position = t.Position.Add(mark.Penetration)
		w.Events().Push(ecs.Event{Type: EventCollision, Data: ecs.CollisionEvent{Entity: e, Other: ecs.Entity(mark.Other)}})
	})
	ecs.Clear(w, component.CollisionMarkComponent)
}

// mark records the correction for e. A body that cannot take a mark keeps
// its position this tick.
func (p *PhysicsSystem) mark(w *ecs.World, e, other ecs.Entity, displacement cp.Vector) bool {
	mark := &component.CollisionMark{Penetration: displacement, Other: uint64(other)}
	if err := ecs.Add(w, e, component.CollisionMarkComponent, mark); err != nil {
		p.markWarn.Do(func() {
			log.Printf("physics: skipping collision mark for %v: %v", e, err)
		})
		return false
	}
	return true
}
