package entity

import (
	"fmt"

	"github.com/milk9111/topdown/anim"
	"github.com/milk9111/topdown/prefabs"
)

const defaultAnimationFPS = 8

// animationClips resolves the nine movement clips by name. Every clip must be
// present.
func animationClips(spec prefabs.AnimationSetSpec) (map[anim.ID]*anim.Clip, error) {
	fps := spec.FPS
	if fps <= 0 {
		fps = defaultAnimationFPS
	}

	clips := make(map[anim.ID]*anim.Clip, anim.Count)
	for name, frames := range spec.Clips {
		id, ok := anim.Parse(name)
		if !ok {
			return nil, fmt.Errorf("animations: unknown clip %q", name)
		}
		if len(frames) == 0 {
			return nil, fmt.Errorf("animations: clip %q: %w", name, prefabs.ErrMissingAnimation)
		}
		clips[id] = &anim.Clip{Name: name, Frames: append([]int(nil), frames...), FPS: fps, Loop: true}
	}
	for _, id := range anim.All() {
		if _, ok := clips[id]; !ok {
			return nil, fmt.Errorf("animations: clip %q: %w", id, prefabs.ErrMissingAnimation)
		}
	}
	return clips, nil
}
