package component

import "github.com/milk9111/topdown/anim"

const HeroSpeed = 2.0

// Hero marks the player-controlled entity. Current is the animation
// currently bound, anim.None before the first selection.
type Hero struct {
	Current anim.ID
}

var HeroComponent = NewComponent[Hero]()
