package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// Refs holds the handles the rest of the game needs after a world is built.
type Refs struct {
	Hero            ecs.Entity
	Camera          ecs.Entity
	CameraOffset    cp.Vector
	Buildings       []ecs.Entity
	Mobs            []ecs.Entity
	Portals         []ecs.Entity
	Instances       map[string]component.Instance
	OverworldBounds *component.WorldBounds
	DebugInstance   *component.Instance
}

// BuildWorld spawns every entity described by spec into w.
func BuildWorld(w *ecs.World, spec *prefabs.WorldSpec) (Refs, error) {
	var refs Refs
	if w == nil || spec == nil {
		return refs, fmt.Errorf("world: nil world or spec")
	}
	if err := spec.Validate(); err != nil {
		return refs, fmt.Errorf("world: %w", err)
	}

	clips, err := animationClips(spec.Animations)
	if err != nil {
		return refs, fmt.Errorf("world: %w", err)
	}

	refs.Hero, err = NewHero(w, spec.Hero, clips)
	if err != nil {
		return refs, fmt.Errorf("world: %w", err)
	}
	refs.CameraOffset = cp.Vector{X: spec.Camera.Offset.X, Y: spec.Camera.Offset.Y}
	refs.Camera, err = NewCamera(w, refs.Hero, spec.Camera)
	if err != nil {
		return refs, fmt.Errorf("world: %w", err)
	}

	for _, b := range spec.Buildings {
		e, err := NewBuilding(w, b)
		if err != nil {
			return refs, fmt.Errorf("world: %w", err)
		}
		refs.Buildings = append(refs.Buildings, e)
	}

	mobs := append([]prefabs.MobSpec(nil), spec.Mobs...)
	if spec.MobScript != "" {
		scripted, err := LoadMobScript(spec.MobScript)
		if err != nil {
			return refs, fmt.Errorf("world: %w", err)
		}
		mobs = append(mobs, scripted...)
	}
	for _, m := range mobs {
		e, err := NewMob(w, m, "")
		if err != nil {
			return refs, fmt.Errorf("world: %w", err)
		}
		refs.Mobs = append(refs.Mobs, e)
	}

	refs.Instances = make(map[string]component.Instance, len(spec.Instances))
	names := make([]string, 0, len(spec.Instances))
	for name := range spec.Instances {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		instSpec := spec.Instances[name]
		refs.Instances[name] = instanceFromSpec(name, instSpec)
		for _, m := range instSpec.Mobs {
			e, err := NewMob(w, m, name)
			if err != nil {
				return refs, fmt.Errorf("world: instance %q: %w", name, err)
			}
			refs.Mobs = append(refs.Mobs, e)
		}
	}

	for _, p := range spec.Portals {
		e, err := NewPortal(w, p, refs.Instances[p.Instance])
		if err != nil {
			return refs, fmt.Errorf("world: %w", err)
		}
		refs.Portals = append(refs.Portals, e)
	}

	if spec.Bounds != nil {
		b := boundsFromSpec(*spec.Bounds)
		refs.OverworldBounds = &b
	}
	if spec.DebugInstance != "" {
		inst := refs.Instances[spec.DebugInstance]
		refs.DebugInstance = &inst
	}

	return refs, nil
}
