package system

import "github.com/milk9111/topdown/ecs"

// Names of the gameplay systems as registered with the scheduler.
const (
	SystemInput             = "input"
	SystemHeroMovement      = "hero_movement"
	SystemMobTarget         = "mob_target"
	SystemMobMovement       = "mob_movement"
	SystemMovement          = "movement"
	SystemPhysics           = "physics"
	SystemCamera            = "camera"
	SystemPortal            = "portal"
	SystemAnimationSelect   = "animation_select"
	SystemAnimationPlayback = "animation_playback"
)

// GameplayNodes returns the per-tick dependency graph: input first, then
// actor decisions, integration, collision, and finally the systems that
// react to settled positions.
func GameplayNodes(provider InputProvider) []ecs.SystemNode {
	return []ecs.SystemNode{
		{Name: SystemInput, System: NewInputSystem(provider)},
		{Name: SystemHeroMovement, System: NewHeroMovementSystem(), After: []string{SystemInput}},
		{Name: SystemMobTarget, System: NewMobTargetSystem(), After: []string{SystemInput}},
		{Name: SystemMobMovement, System: NewMobMovementSystem(), After: []string{SystemMobTarget}},
		{Name: SystemMovement, System: NewMovementSystem(), After: []string{SystemHeroMovement, SystemMobMovement}},
		{Name: SystemPhysics, System: NewPhysicsSystem(), After: []string{SystemMovement}},
		{Name: SystemCamera, System: NewCameraSystem(), After: []string{SystemPhysics}},
		{Name: SystemPortal, System: NewPortalSystem(), After: []string{SystemPhysics}},
		{Name: SystemAnimationSelect, System: NewAnimationSelectSystem(), After: []string{SystemPhysics}},
		{Name: SystemAnimationPlayback, System: NewAnimationSystem(), After: []string{SystemAnimationSelect}},
	}
}

// NewGameplayScheduler builds the scheduler for GameplayNodes.
func NewGameplayScheduler(provider InputProvider, parallel bool) (*ecs.Scheduler, error) {
	s, err := ecs.NewScheduler(GameplayNodes(provider)...)
	if err != nil {
		return nil, err
	}
	return s.WithParallel(parallel), nil
}
