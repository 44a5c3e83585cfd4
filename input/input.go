package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/ecs/component"
)

const stickDeadzone = 0.2

// Ebiten samples keyboard and the first gamepad. WASD or arrows move, E or
// the bottom face button interacts, Escape or the right face button cancels.
type Ebiten struct{}

func NewEbiten() *Ebiten {
	return &Ebiten{}
}

func (e *Ebiten) Sample() component.Input {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.RightLeft -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.RightLeft += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.UpDown += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.UpDown -= 1
	}
	in.Interact = ebiten.IsKeyPressed(ebiten.KeyE)
	in.Cancel = ebiten.IsKeyPressed(ebiten.KeyEscape)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			in.RightLeft = x
		}
		// Screen-space stick: up is negative.
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(y) > stickDeadzone {
			in.UpDown = -y
		}
		in.Interact = in.Interact || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Cancel = in.Cancel || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
	}

	return in
}
