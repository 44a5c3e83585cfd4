package component

import "github.com/jakecoffman/cp"

// Velocity is a per-tick displacement expressed as a unit direction and a
// speed.
type Velocity struct {
	Direction cp.Vector
	Speed     float64
}

func (v *Velocity) Reset() {
	v.Direction = cp.Vector{}
	v.Speed = 0
}

// Step is the displacement applied in one tick.
func (v Velocity) Step() cp.Vector {
	return v.Direction.Mult(v.Speed)
}

var VelocityComponent = NewComponent[Velocity]()
