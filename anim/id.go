package anim

// ID names one of the nine movement animations. None is the zero value and
// means no animation has been selected yet.
type ID int

const (
	None ID = iota
	Idle
	GoRight
	GoLeft
	GoForward
	GoBackward
	GoRightForward
	GoRightBackward
	GoLeftBackward
	GoLeftForward
)

// Count is the number of selectable animations.
const Count = 9

var names = [...]string{
	None:            "none",
	Idle:            "idle",
	GoRight:         "go_right",
	GoLeft:          "go_left",
	GoForward:       "go_forward",
	GoBackward:      "go_backward",
	GoRightForward:  "go_right_forward",
	GoRightBackward: "go_right_backward",
	GoLeftBackward:  "go_left_backward",
	GoLeftForward:   "go_left_forward",
}

func (id ID) String() string {
	if id < 0 || int(id) >= len(names) {
		return "unknown"
	}
	return names[id]
}

// All lists every selectable animation in declaration order.
func All() []ID {
	return []ID{Idle, GoRight, GoLeft, GoForward, GoBackward, GoRightForward, GoRightBackward, GoLeftBackward, GoLeftForward}
}

// Parse resolves a name produced by String.
func Parse(name string) (ID, bool) {
	for _, id := range All() {
		if names[id] == name {
			return id, true
		}
	}
	return None, false
}

// Select maps a movement input to an animation. Positive vertical input is
// forward, negative is backward.
func Select(horizontal, vertical float64) ID {
	switch {
	case horizontal > 0:
		switch {
		case vertical > 0:
			return GoRightForward
		case vertical < 0:
			return GoRightBackward
		}
		return GoRight
	case horizontal < 0:
		switch {
		case vertical > 0:
			return GoLeftForward
		case vertical < 0:
			return GoLeftBackward
		}
		return GoLeft
	}
	switch {
	case vertical > 0:
		return GoForward
	case vertical < 0:
		return GoBackward
	}
	return Idle
}
