package state

import (
	"fmt"

	"github.com/milk9111/topdown/ecs/component"
)

type Kind int

const (
	Overworld Kind = iota
	Instance
)

func (k Kind) String() string {
	switch k {
	case Overworld:
		return "overworld"
	case Instance:
		return "instance"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State is one entry of the stack. Instance is only set for instance
// states; the hero snapshot is only taken by a paused overworld.
type State struct {
	Kind     Kind
	Instance component.Instance

	heroSnapshot *component.Transform
}

func (s *State) String() string {
	if s.Kind == Instance {
		return fmt.Sprintf("instance %q", s.Instance.Name)
	}
	return s.Kind.String()
}

func (s *State) onStart(st *Stack) {
	switch s.Kind {
	case Overworld:
		st.applyOverworldBounds()
		st.activateOverworld()
		st.setGameState(component.GameState{Kind: component.GameOverworld, ReturnPosition: st.heroPosition()})
	case Instance:
		st.place(s.Instance.Spawn, 0)
		st.setBounds(s.Instance.Bounds)
		st.activateInstance(s.Instance.Name)
		st.setGameState(component.GameState{Kind: component.GameInstance, Instance: s.Instance})
	}
}

func (s *State) onStop(_ *Stack) {}

func (s *State) onPause(st *Stack) {
	if s.Kind != Overworld {
		return
	}
	if t, ok := st.heroTransform(); ok {
		snapshot := *t
		s.heroSnapshot = &snapshot
	}
}

// onResume returns the hero and camera to the position carried by the
// exit request, keeping the hero's z from before the pause.
func (s *State) onResume(st *Stack, req component.GameState) {
	if s.Kind != Overworld {
		return
	}
	z := 0.0
	if s.heroSnapshot != nil {
		z = s.heroSnapshot.Z
	}
	s.heroSnapshot = nil

	st.applyOverworldBounds()
	st.place(req.ReturnPosition, z)
	st.activateOverworld()
	st.setGameState(component.GameState{Kind: component.GameOverworld, ReturnPosition: req.ReturnPosition})
}
