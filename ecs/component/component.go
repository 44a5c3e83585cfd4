package component

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

// NewResource allocates a handle for a world-global value. Resources live on
// the world's resource entity and the scheduler allows at most one unordered
// writer per resource.
func NewResource[T any]() ComponentHandle[T] {
	h := NewComponent[T]()
	resourceMu.Lock()
	resourceIDs[h.ID()] = struct{}{}
	resourceMu.Unlock()
	return h
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.kind.id
}

type ComponentID uint32

// IsResource reports whether id was allocated with NewResource.
func IsResource(id ComponentID) bool {
	resourceMu.RLock()
	defer resourceMu.RUnlock()
	_, ok := resourceIDs[id]
	return ok
}

var nextComponentID atomic.Uint32

var (
	resourceMu  sync.RWMutex
	resourceIDs = map[ComponentID]struct{}{}
)
