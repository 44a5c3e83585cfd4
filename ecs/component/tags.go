package component

// Active gates every gameplay system. Entities without it are ignored.
type Active struct{}

var ActiveComponent = NewComponent[Active]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type BuildingTag struct{}

var BuildingTagComponent = NewComponent[BuildingTag]()

// OverworldCompat entities are active while the overworld is on top.
type OverworldCompat struct{}

var OverworldCompatComponent = NewComponent[OverworldCompat]()

// InstanceCompat entities are active inside the instance called Name, or
// inside every instance when Name is empty.
type InstanceCompat struct {
	Name string
}

func (c InstanceCompat) Matches(instance string) bool {
	return c.Name == "" || c.Name == instance
}

var InstanceCompatComponent = NewComponent[InstanceCompat]()
