package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/topdown/ecs/component"
)

// HoldTicks is how long one key event keeps its action held. Terminals
// report presses and auto-repeats but never releases.
const HoldTicks = 8

// Keys turns tcell key events into the per-tick input sample. Arrows, WASD
// or hjkl move, e interacts, Escape cancels.
type Keys struct {
	mu                    sync.Mutex
	left, right, up, down int
	interact, cancel      int
}

func NewKeys() *Keys {
	return &Keys{}
}

// Feed records a key event. It reports true when the event asks to quit.
func (k *Keys) Feed(ev *tcell.EventKey) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		k.cancel = HoldTicks
		return false
	case tcell.KeyLeft:
		k.left, k.right = HoldTicks, 0
		return false
	case tcell.KeyRight:
		k.right, k.left = HoldTicks, 0
		return false
	case tcell.KeyUp:
		k.up, k.down = HoldTicks, 0
		return false
	case tcell.KeyDown:
		k.down, k.up = HoldTicks, 0
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 'a', 'A', 'h', 'H':
		k.left, k.right = HoldTicks, 0
	case 'd', 'D', 'l', 'L':
		k.right, k.left = HoldTicks, 0
	case 'w', 'W', 'k', 'K':
		k.up, k.down = HoldTicks, 0
	case 's', 'S', 'j', 'J':
		k.down, k.up = HoldTicks, 0
	case 'e', 'E':
		k.interact = HoldTicks
	}
	return false
}

// Sample reports the held actions and ages every hold by one tick.
func (k *Keys) Sample() component.Input {
	k.mu.Lock()
	defer k.mu.Unlock()

	var in component.Input
	if k.left > 0 {
		in.RightLeft -= 1
	}
	if k.right > 0 {
		in.RightLeft += 1
	}
	if k.up > 0 {
		in.UpDown += 1
	}
	if k.down > 0 {
		in.UpDown -= 1
	}
	in.Interact = k.interact > 0
	in.Cancel = k.cancel > 0

	for _, c := range []*int{&k.left, &k.right, &k.up, &k.down, &k.interact, &k.cancel} {
		if *c > 0 {
			*c--
		}
	}
	return in
}
