package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/topdown/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be recycled, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must differ from the destroyed handle")
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if err := Add(w, old, h, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := w.Query(h2.ID()); len(got) != 2 || got[0] != e1 || got[1] != e2 {
					t.Fatalf("expected query in insertion order, got %v", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestGetReturnsSharedPointer(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := w.CreateEntity()
	if err := Add(w, e, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	v, _ := Get(w, e, h)
	*v = 5
	again, _ := Get(w, e, h)
	if *again != 5 {
		t.Fatalf("expected write through pointer to persist, got %d", *again)
	}
}

func TestAddRejectsNil(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := w.CreateEntity()
	if err := Add(w, e, h, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentHandle[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	tag := component.NewComponent[struct{}]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	for _, e := range []Entity{e1, e3} {
		if err := Add(w, e, h, intPtr(int(e.id()))); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if err := Add(w, e3, tag, &struct{}{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h, func(e Entity, _ *int) { ents = append(ents, e) })
	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("unexpected ForEach visit order %v", ents)
	}

	var both []Entity
	ForEach2(w, h, tag, func(e Entity, _ *int, _ *struct{}) { both = append(both, e) })
	if len(both) != 1 || both[0] != e3 {
		t.Fatalf("expected only e3 with both components, got %v", both)
	}

	if first, ok := w.First(h.ID()); !ok || first != e1 {
		t.Fatalf("expected First to return e1, got %v ok=%v", first, ok)
	}
	_ = e2
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	_ = Add(w, e1, h, intPtr(1))
	_ = Add(w, e2, h, intPtr(2))

	w.DestroyEntity(e1)
	got := w.Query(h.ID())
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2 after destroy, got %v", got)
	}
	if v, ok := Get(w, e2, h); !ok || *v != 2 {
		t.Fatalf("swap-remove corrupted e2: %v ok=%v", v, ok)
	}
}

func TestResources(t *testing.T) {
	w := NewWorld()
	bounds := component.NewResource[float64]()

	if _, ok := GetResource(w, bounds); ok {
		t.Fatalf("resource should start absent")
	}
	v := 3.5
	if err := SetResource(w, bounds, &v); err != nil {
		t.Fatalf("set resource: %v", err)
	}
	got, ok := GetResource(w, bounds)
	if !ok || *got != 3.5 {
		t.Fatalf("expected 3.5, got %v ok=%v", got, ok)
	}
	if !RemoveResource(w, bounds) {
		t.Fatalf("expected remove to succeed")
	}
	if w.DestroyEntity(w.ResourceEntity()) {
		t.Fatalf("resource entity must not be destroyable")
	}
	for _, e := range w.Entities() {
		if e == w.ResourceEntity() {
			t.Fatalf("Entities must not list the resource entity")
		}
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b"})
	if w.Events().Len() != 2 {
		t.Fatalf("expected 2 events queued")
	}
	got := w.Events().Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Type != "b" {
		t.Fatalf("unexpected drain %v", got)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}
