package component

import "github.com/milk9111/topdown/anim"

// AnimationBindings maps every movement animation to its clip and holds the
// control that is playing.
type AnimationBindings struct {
	Clips   map[anim.ID]*anim.Clip
	Control *anim.Control
}

func (a *AnimationBindings) Active() anim.ID {
	return a.Control.ID()
}

var AnimationBindingsComponent = NewComponent[AnimationBindings]()
