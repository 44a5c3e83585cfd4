package ecs

import "github.com/milk9111/topdown/ecs/component"

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	s := storeOf(w, handle.Kind(), true)
	if s == nil {
		return component.ErrInvalidComponentKind
	}
	s.Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.RemoveComponent(e, handle.ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.HasComponent(e, handle.ID())
}

// Get returns the stored pointer; writes through it are visible to every
// later reader in the same tick.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	s := storeOf(w, handle.Kind(), false)
	if s == nil {
		return nil, false
	}
	return s.Get(e)
}

// ForEach visits every entity carrying the component. fn must not add or
// remove components of the same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	s := storeOf(w, handle.Kind(), false)
	if s == nil {
		return
	}
	for i, e := range s.dense {
		fn(e, s.values[i])
	}
}

// ForEach2 visits every entity carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(e Entity, a *A, b *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha.ID(), hb.ID()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// Clear drops every component of the given kind.
func Clear[T any](w *World, handle component.ComponentHandle[T]) {
	if s := storeOf(w, handle.Kind(), false); s != nil {
		s.Clear()
	}
}

// SetResource stores a world-global value on the resource entity.
func SetResource[T any](w *World, handle component.ComponentHandle[T], value *T) error {
	if w == nil {
		return component.ErrEntityNotAlive
	}
	return Add(w, w.resources, handle, value)
}

// GetResource returns the world-global value, if one is set.
func GetResource[T any](w *World, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	return Get(w, w.resources, handle)
}

// RemoveResource drops the world-global value.
func RemoveResource[T any](w *World, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return Remove(w, w.resources, handle)
}
