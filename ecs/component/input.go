package component

// Input is the sampled player input for the current tick. Axes are in
// [-1, 1], positive UpDown is forward.
type Input struct {
	RightLeft float64
	UpDown    float64
	Interact  bool
	Cancel    bool
}

var InputResource = NewResource[Input]()
