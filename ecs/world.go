package ecs

import (
	"sync"

	"github.com/milk9111/topdown/ecs/component"
)

// World owns entities, their component stores and the resource entity.
//
// Structural changes (CreateEntity, DestroyEntity) must not run concurrently
// with a scheduler tick. Component stores are created lazily and guarded so
// that systems in the same parallel batch can look them up safely.
type World struct {
	entities  entityStore
	events    EventQueue
	resources Entity

	mu     sync.RWMutex
	stores map[component.ComponentID]store
}

// NewWorld creates an empty ECS world with its resource entity allocated.
func NewWorld() *World {
	w := &World{stores: make(map[component.ComponentID]store)}
	w.resources = w.entities.create()
	return w
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || e == w.resources || !w.entities.isAlive(e) {
		return false
	}
	w.mu.RLock()
	for _, s := range w.stores {
		s.remove(e)
	}
	w.mu.RUnlock()
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities lists every live entity except the resource entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) {
		if e != w.resources {
			out = append(out, e)
		}
	})
	return out
}

// ResourceEntity returns the entity that carries world resources.
func (w *World) ResourceEntity() Entity {
	return w.resources
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// HasComponent reports whether e carries the component with the given id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	s := w.lookup(id)
	return s != nil && s.has(e)
}

// RemoveComponent detaches the component with the given id from e.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	s := w.lookup(id)
	return s != nil && s.remove(e)
}

// Query returns every entity carrying all of the given components, in the
// dense order of the smallest participating store.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]store, 0, len(ids))
	for _, id := range ids {
		s := w.lookup(id)
		if s == nil || s.len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
	for _, e := range smallest.entities() {
		match := true
		for _, s := range sets {
			if s != smallest && !s.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity carrying the component with the given id.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	s := w.lookup(id)
	if s == nil || s.len() == 0 {
		return 0, false
	}
	return s.entities()[0], true
}

func (w *World) lookup(id component.ComponentID) store {
	if w == nil {
		return nil
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stores[id]
}

func storeOf[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if s := w.lookup(kind.ID()); s != nil {
		typed, _ := s.(*SparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*SparseSet[T])
		return typed
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}
