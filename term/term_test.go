package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	ss.SetSize(40, 12)
	t.Cleanup(ss.Fini)
	return ss
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], v T) {
	t.Helper()
	if err := ecs.Add(w, e, handle, &v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func cellAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestKeysHoldThenRelease(t *testing.T) {
	k := NewKeys()
	if quit := k.Feed(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)); quit {
		t.Fatalf("right arrow should not quit")
	}
	k.Feed(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))

	for i := 0; i < HoldTicks; i++ {
		in := k.Sample()
		if in.RightLeft != 1 || in.UpDown != 1 {
			t.Fatalf("tick %d: expected (1,1), got (%v,%v)", i, in.RightLeft, in.UpDown)
		}
	}
	if in := k.Sample(); in.RightLeft != 0 || in.UpDown != 0 {
		t.Fatalf("expected released axes, got (%v,%v)", in.RightLeft, in.UpDown)
	}
}

func TestKeysOppositeDirectionReplaces(t *testing.T) {
	k := NewKeys()
	k.Feed(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	k.Feed(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	if in := k.Sample(); in.RightLeft != 1 {
		t.Fatalf("expected right to win, got %v", in.RightLeft)
	}
}

func TestKeysActions(t *testing.T) {
	cases := []struct {
		name     string
		ev       *tcell.EventKey
		quit     bool
		interact bool
		cancel   bool
	}{
		{name: "interact", ev: tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), interact: true},
		{name: "cancel", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), cancel: true},
		{name: "quit_rune", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), quit: true},
		{name: "quit_ctrl_c", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), quit: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := NewKeys()
			if quit := k.Feed(tc.ev); quit != tc.quit {
				t.Fatalf("expected quit=%v, got %v", tc.quit, quit)
			}
			in := k.Sample()
			if in.Interact != tc.interact || in.Cancel != tc.cancel {
				t.Fatalf("expected interact=%v cancel=%v, got %+v", tc.interact, tc.cancel, in)
			}
		})
	}
}

func TestViewCentersOnCamera(t *testing.T) {
	screen := newSimScreen(t)
	w := ecs.NewWorld()

	camera := w.CreateEntity()
	mustAdd(t, w, camera, component.TransformComponent, component.Transform{Position: cp.Vector{X: 100, Y: 100}})

	hero := w.CreateEntity()
	mustAdd(t, w, hero, component.TransformComponent, component.Transform{Position: cp.Vector{X: 100, Y: 100}})
	mustAdd(t, w, hero, component.BodyComponent, component.Body{Shape: collision.Circle(16), Dynamic: component.Moving})
	mustAdd(t, w, hero, component.HeroComponent, component.Hero{})
	mustAdd(t, w, hero, component.ActiveComponent, component.Active{})

	mob := w.CreateEntity()
	mustAdd(t, w, mob, component.TransformComponent, component.Transform{Position: cp.Vector{X: 116, Y: 100}})
	mustAdd(t, w, mob, component.BodyComponent, component.Body{Shape: collision.Circle(16), Dynamic: component.Moving})
	mustAdd(t, w, mob, component.MobComponent, component.NewMob(116, 100, 100, 50))
	mustAdd(t, w, mob, component.ActiveComponent, component.Active{})

	NewView(screen).Draw(w, camera, "hud")

	if got := cellAt(screen, 20, 6); got != '@' {
		t.Fatalf("expected hero at screen center, got %q", got)
	}
	if got := cellAt(screen, 22, 6); got != 'm' {
		t.Fatalf("expected mob two cells right, got %q", got)
	}
	if got := cellAt(screen, 0, 0); got != 'h' {
		t.Fatalf("expected hud text, got %q", got)
	}
}

func TestViewSkipsInactiveAndDrawsWalls(t *testing.T) {
	screen := newSimScreen(t)
	w := ecs.NewWorld()

	camera := w.CreateEntity()
	mustAdd(t, w, camera, component.TransformComponent, component.Transform{})

	ghost := w.CreateEntity()
	mustAdd(t, w, ghost, component.TransformComponent, component.Transform{})
	mustAdd(t, w, ghost, component.BodyComponent, component.Body{Shape: collision.Circle(4), Dynamic: component.Moving})
	mustAdd(t, w, ghost, component.HeroComponent, component.Hero{})

	wall := w.CreateEntity()
	mustAdd(t, w, wall, component.TransformComponent, component.Transform{Position: cp.Vector{X: -80, Y: 0}})
	mustAdd(t, w, wall, component.BodyComponent, component.Body{Shape: collision.Box(8, 8), Dynamic: component.Static})
	mustAdd(t, w, wall, component.ActiveComponent, component.Active{})

	NewView(screen).Draw(w, camera, "")

	if got := cellAt(screen, 20, 6); got == '@' {
		t.Fatalf("inactive hero should not be drawn")
	}
	if got := cellAt(screen, 10, 6); got != '#' {
		t.Fatalf("expected wall cell, got %q", got)
	}
}
