package component

const (
	CameraZ          = 1.0
	CameraDeadZoneSq = 2500.0
	CameraLerp       = 0.01
)

// CameraTarget names the entity the camera follows. Entity is a packed
// ecs.Entity.
type CameraTarget struct {
	Entity uint64
}

var CameraTargetComponent = NewComponent[CameraTarget]()
