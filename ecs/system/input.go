package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// InputProvider samples the player's devices once per tick.
type InputProvider interface {
	Sample() component.Input
}

// InputFunc adapts a plain function to InputProvider.
type InputFunc func() component.Input

func (f InputFunc) Sample() component.Input { return f() }

type InputSystem struct {
	provider InputProvider
}

func NewInputSystem(provider InputProvider) *InputSystem {
	return &InputSystem{provider: provider}
}

func (i *InputSystem) Access() ecs.Access {
	return ecs.Access{Writes: ids(component.InputResource.ID())}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var in component.Input
	if i.provider != nil {
		in = i.provider.Sample()
	}
	in.RightLeft = clampAxis(in.RightLeft)
	in.UpDown = clampAxis(in.UpDown)

	if current, ok := ecs.GetResource(w, component.InputResource); ok {
		*current = in
		return
	}
	_ = ecs.SetResource(w, component.InputResource, &in)
}

func clampAxis(v float64) float64 {
	return max(-1, min(1, v))
}

func ids(in ...component.ComponentID) []component.ComponentID {
	return in
}
