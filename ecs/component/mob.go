package component

import "github.com/jakecoffman/cp"

const MobSpeed = 0.8

// Mob pursues the hero while it is close and walks back to Spawn once it
// strays too far. Thresholds are stored squared.
type Mob struct {
	Spawn                  cp.Vector
	SquaredResetThreshold  float64
	SquaredTargetThreshold float64
	Resetting              bool
	// Target is the packed entity being chased, zero when idle.
	Target uint64
}

// NewMob takes linear distances and squares them.
func NewMob(x, y, resetThreshold, targetThreshold float64) Mob {
	return Mob{
		Spawn:                  cp.Vector{X: x, Y: y},
		SquaredResetThreshold:  resetThreshold * resetThreshold,
		SquaredTargetThreshold: targetThreshold * targetThreshold,
	}
}

func (m Mob) HasTarget() bool {
	return m.Target != 0
}

var MobComponent = NewComponent[Mob]()
