package component

import "github.com/jakecoffman/cp"

type GameStateKind int

const (
	GameOverworld GameStateKind = iota
	GameInstance
)

func (k GameStateKind) String() string {
	if k == GameInstance {
		return "instance"
	}
	return "overworld"
}

// GameState is the requested top of the state stack. Pending is set when a
// system asks for a transition and cleared once the stack has acted on it.
type GameState struct {
	Kind           GameStateKind
	ReturnPosition cp.Vector
	Instance       Instance
	Pending        bool
}

func NewOverworldState(returnPosition cp.Vector) GameState {
	return GameState{Kind: GameOverworld, ReturnPosition: returnPosition, Pending: true}
}

func NewInstanceState(inst Instance) GameState {
	return GameState{Kind: GameInstance, Instance: inst, Pending: true}
}

var GameStateResource = NewResource[GameState]()
