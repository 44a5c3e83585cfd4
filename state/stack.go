package state

import (
	"errors"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

var (
	ErrContradictoryTransition = errors.New("state: contradictory transition")
	ErrEmptyStack              = errors.New("state: empty stack")
)

// Ticker runs one simulation step.
type Ticker interface {
	Tick(w *ecs.World)
}

type Config struct {
	Hero   ecs.Entity
	Camera ecs.Entity
	// CameraOffset is added to the hero position whenever a transition
	// places the camera.
	CameraOffset cp.Vector
	// OverworldBounds is restored whenever the overworld is on top. Nil
	// leaves the overworld unbounded.
	OverworldBounds *component.WorldBounds
	// DebugInstance, when set, is entered from the overworld with cancel.
	DebugInstance *component.Instance
	// OnEvent receives the world events drained after every tick.
	OnEvent func(ecs.Event)
}

// Stack owns the overworld/instance state stack. It ticks the simulation
// and acts on GameState transition requests once per Update.
type Stack struct {
	world  *ecs.World
	ticker Ticker
	cfg    Config
	states []*State

	cancelHeld bool
}

// NewStack starts the overworld as the root state.
func NewStack(w *ecs.World, ticker Ticker, cfg Config) (*Stack, error) {
	if w == nil {
		return nil, fmt.Errorf("state: new stack: %w", component.ErrEntityNotAlive)
	}
	st := &Stack{world: w, ticker: ticker, cfg: cfg}
	root := &State{Kind: Overworld}
	st.states = append(st.states, root)
	log.Printf("state: start %s", root)
	root.onStart(st)
	return st, nil
}

func (st *Stack) Top() *State {
	if len(st.states) == 0 {
		return nil
	}
	return st.states[len(st.states)-1]
}

func (st *Stack) Depth() int {
	return len(st.states)
}

func (st *Stack) World() *ecs.World {
	return st.world
}

// Update ticks the simulation, handles the cancel action, then applies
// any pending GameState request.
func (st *Stack) Update() error {
	if len(st.states) == 0 {
		return ErrEmptyStack
	}
	if st.ticker != nil {
		st.ticker.Tick(st.world)
	}
	for _, evt := range st.world.Events().Drain() {
		if st.cfg.OnEvent != nil {
			st.cfg.OnEvent(evt)
		}
	}

	st.handleCancel()
	return st.observe()
}

// handleCancel reacts to the press edge of the cancel action: an instance
// asks to return to its exit, the overworld enters the debug instance.
func (st *Stack) handleCancel() {
	in, ok := ecs.GetResource(st.world, component.InputResource)
	if !ok {
		st.cancelHeld = false
		return
	}
	pressed := in.Cancel && !st.cancelHeld
	st.cancelHeld = in.Cancel
	if !pressed {
		return
	}
	if gs, ok := ecs.GetResource(st.world, component.GameStateResource); ok && gs.Pending {
		return
	}

	top := st.Top()
	switch {
	case top.Kind == Instance:
		st.setGameState(component.NewOverworldState(top.Instance.Exit))
	case top.Kind == Overworld && st.cfg.DebugInstance != nil:
		st.setGameState(component.NewInstanceState(*st.cfg.DebugInstance))
	}
}

func (st *Stack) observe() error {
	gs, ok := ecs.GetResource(st.world, component.GameStateResource)
	if !ok || !gs.Pending {
		return nil
	}
	req := *gs
	top := st.Top()

	switch {
	case req.Kind == component.GameInstance && top.Kind == Overworld:
		st.push(&State{Kind: Instance, Instance: req.Instance})
		return nil
	case req.Kind == component.GameOverworld && top.Kind == Instance && len(st.states) > 1:
		st.pop(req)
		return nil
	}

	st.resync()
	return fmt.Errorf("%w: %s requested while %s is on top", ErrContradictoryTransition, req.Kind, top)
}

func (st *Stack) push(next *State) {
	top := st.Top()
	log.Printf("state: pause %s", top)
	top.onPause(st)
	st.states = append(st.states, next)
	log.Printf("state: start %s", next)
	next.onStart(st)
}

func (st *Stack) pop(req component.GameState) {
	top := st.Top()
	log.Printf("state: stop %s", top)
	top.onStop(st)
	st.states = st.states[:len(st.states)-1]
	resumed := st.Top()
	log.Printf("state: resume %s", resumed)
	resumed.onResume(st, req)
}

// resync drops a rejected request and restores GameState to describe the
// state on top.
func (st *Stack) resync() {
	top := st.Top()
	if top.Kind == Instance {
		st.setGameState(component.GameState{Kind: component.GameInstance, Instance: top.Instance})
		return
	}
	st.setGameState(component.GameState{Kind: component.GameOverworld, ReturnPosition: st.heroPosition()})
}

func (st *Stack) setGameState(gs component.GameState) {
	if current, ok := ecs.GetResource(st.world, component.GameStateResource); ok {
		*current = gs
		return
	}
	_ = ecs.SetResource(st.world, component.GameStateResource, &gs)
}

func (st *Stack) setBounds(b component.WorldBounds) {
	if current, ok := ecs.GetResource(st.world, component.WorldBoundsResource); ok {
		*current = b
		return
	}
	_ = ecs.SetResource(st.world, component.WorldBoundsResource, &b)
}

func (st *Stack) applyOverworldBounds() {
	if st.cfg.OverworldBounds == nil {
		ecs.RemoveResource(st.world, component.WorldBoundsResource)
		return
	}
	st.setBounds(*st.cfg.OverworldBounds)
}

func (st *Stack) heroTransform() (*component.Transform, bool) {
	return ecs.Get(st.world, st.cfg.Hero, component.TransformComponent)
}

func (st *Stack) heroPosition() cp.Vector {
	if t, ok := st.heroTransform(); ok {
		return t.Position
	}
	return cp.Vector{}
}

// place moves the hero to pos and re-derives the camera from it.
func (st *Stack) place(pos cp.Vector, heroZ float64) {
	if t, ok := st.heroTransform(); ok {
		t.Position = pos
		t.Z = heroZ
	}
	if t, ok := ecs.Get(st.world, st.cfg.Camera, component.TransformComponent); ok {
		t.Position = pos.Add(st.cfg.CameraOffset)
		t.Z = component.CameraZ
	}
}

func (st *Stack) activateOverworld() {
	st.setActive(func(e ecs.Entity) bool {
		return ecs.Has(st.world, e, component.OverworldCompatComponent)
	})
}

func (st *Stack) activateInstance(name string) {
	st.setActive(func(e ecs.Entity) bool {
		c, ok := ecs.Get(st.world, e, component.InstanceCompatComponent)
		return ok && c.Matches(name)
	})
}

// setActive toggles Active on every entity that carries a compat marker.
// Unmarked entities keep their current flag.
func (st *Stack) setActive(active func(e ecs.Entity) bool) {
	for _, e := range st.world.Entities() {
		if !ecs.Has(st.world, e, component.OverworldCompatComponent) && !ecs.Has(st.world, e, component.InstanceCompatComponent) {
			continue
		}
		if active(e) {
			if !ecs.Has(st.world, e, component.ActiveComponent) {
				_ = ecs.Add(st.world, e, component.ActiveComponent, &component.Active{})
			}
			continue
		}
		ecs.Remove(st.world, e, component.ActiveComponent)
	}
}
