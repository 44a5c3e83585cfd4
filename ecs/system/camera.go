package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// CameraSystem drags each camera towards its target once the target leaves
// the dead zone. Z is left untouched.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  ids(component.CameraTargetComponent.ID(), component.ActiveComponent.ID()),
		Writes: ids(component.TransformComponent.ID()),
	}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.CameraTargetComponent, component.TransformComponent, func(e ecs.Entity, target *component.CameraTarget, camTransform *component.Transform) {
		if !isActive(w, e) {
			return
		}
		targetEntity := ecs.Entity(target.Entity)
		if !isActive(w, targetEntity) {
			return
		}
		targetTransform, ok := ecs.Get(w, targetEntity, component.TransformComponent)
		if !ok {
			return
		}
		if camTransform.Position.DistanceSq(targetTransform.Position) <= component.CameraDeadZoneSq {
			return
		}
		camTransform.Position = camTransform.Position.Lerp(targetTransform.Position, component.CameraLerp)
	})
}
