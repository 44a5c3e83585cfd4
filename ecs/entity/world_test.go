package entity

import (
	"errors"
	"io/fs"
	"math"
	"strings"
	"testing"

	"github.com/milk9111/topdown/anim"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func loadOverworld(t *testing.T) *prefabs.WorldSpec {
	t.Helper()
	spec, err := prefabs.LoadWorldSpec("overworld.yaml")
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	return spec
}

func TestBuildWorldFromEmbeddedSpec(t *testing.T) {
	w := ecs.NewWorld()
	refs, err := BuildWorld(w, loadOverworld(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range []struct {
		name string
		has  bool
	}{
		{"transform", ecs.Has(w, refs.Hero, component.TransformComponent)},
		{"velocity", ecs.Has(w, refs.Hero, component.VelocityComponent)},
		{"body", ecs.Has(w, refs.Hero, component.BodyComponent)},
		{"hero", ecs.Has(w, refs.Hero, component.HeroComponent)},
		{"animations", ecs.Has(w, refs.Hero, component.AnimationBindingsComponent)},
		{"active", ecs.Has(w, refs.Hero, component.ActiveComponent)},
		{"overworld_compat", ecs.Has(w, refs.Hero, component.OverworldCompatComponent)},
		{"instance_compat", ecs.Has(w, refs.Hero, component.InstanceCompatComponent)},
	} {
		if !c.has {
			t.Fatalf("hero is missing %s", c.name)
		}
	}

	bindings, _ := ecs.Get(w, refs.Hero, component.AnimationBindingsComponent)
	if len(bindings.Clips) != anim.Count {
		t.Fatalf("expected %d clips, got %d", anim.Count, len(bindings.Clips))
	}

	camTransform, _ := ecs.Get(w, refs.Camera, component.TransformComponent)
	if camTransform.Z != component.CameraZ {
		t.Fatalf("expected camera z %v, got %v", component.CameraZ, camTransform.Z)
	}
	target, _ := ecs.Get(w, refs.Camera, component.CameraTargetComponent)
	if ecs.Entity(target.Entity) != refs.Hero {
		t.Fatalf("camera should follow the hero")
	}

	if len(refs.Buildings) != 2 || len(refs.Portals) != 1 {
		t.Fatalf("expected 2 buildings and 1 portal, got %d and %d", len(refs.Buildings), len(refs.Portals))
	}
	if len(refs.Mobs) != 8 {
		t.Fatalf("expected 1 listed + 6 scripted + 1 instance mob, got %d", len(refs.Mobs))
	}

	var overworldMobs, cellarMobs int
	for _, e := range refs.Mobs {
		if c, ok := ecs.Get(w, e, component.InstanceCompatComponent); ok {
			if c.Name != "cellar" || ecs.Has(w, e, component.ActiveComponent) {
				t.Fatalf("instance mob should be inactive and bound to the cellar, got %+v", *c)
			}
			cellarMobs++
			continue
		}
		if !ecs.Has(w, e, component.ActiveComponent) || !ecs.Has(w, e, component.OverworldCompatComponent) {
			t.Fatalf("overworld mob should be active")
		}
		overworldMobs++
	}
	if overworldMobs != 7 || cellarMobs != 1 {
		t.Fatalf("expected 7 overworld and 1 cellar mob, got %d and %d", overworldMobs, cellarMobs)
	}

	portal, _ := ecs.Get(w, refs.Portals[0], component.PortalComponent)
	if portal.Instance.Name != "house" || portal.Instance.Spawn.X != 1000 {
		t.Fatalf("unexpected portal instance %+v", portal.Instance)
	}
	if refs.OverworldBounds == nil || refs.OverworldBounds.Right != 5000 {
		t.Fatalf("expected overworld bounds, got %+v", refs.OverworldBounds)
	}
	if refs.DebugInstance == nil || refs.DebugInstance.Name != "cellar" {
		t.Fatalf("expected cellar debug instance, got %+v", refs.DebugInstance)
	}
}

func TestBuildWorldRequiresEveryClip(t *testing.T) {
	spec := loadOverworld(t)
	delete(spec.Animations.Clips, "go_left_forward")

	_, err := BuildWorld(ecs.NewWorld(), spec)
	if !errors.Is(err, prefabs.ErrMissingAnimation) {
		t.Fatalf("expected missing animation, got %v", err)
	}
}

func TestBuildWorldRejectsUnknownClip(t *testing.T) {
	spec := loadOverworld(t)
	spec.Animations.Clips["dance"] = []int{1}

	if _, err := BuildWorld(ecs.NewWorld(), spec); err == nil || !strings.Contains(err.Error(), "dance") {
		t.Fatalf("expected unknown clip error, got %v", err)
	}
}

func TestBuildWorldCarriesCameraOffset(t *testing.T) {
	spec := loadOverworld(t)
	spec.Camera.Offset = prefabs.PointSpec{X: 5, Y: -20}
	w := ecs.NewWorld()
	refs, err := BuildWorld(w, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refs.CameraOffset.X != 5 || refs.CameraOffset.Y != -20 {
		t.Fatalf("expected offset (5, -20), got %v", refs.CameraOffset)
	}
	hero, _ := ecs.Get(w, refs.Hero, component.TransformComponent)
	camera, _ := ecs.Get(w, refs.Camera, component.TransformComponent)
	if camera.Position != hero.Position.Add(refs.CameraOffset) {
		t.Fatalf("expected camera at hero + offset, got %v", camera.Position)
	}
}

func TestNewMobSquaresSpecThresholds(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewMob(w, prefabs.MobSpec{X: 1, Y: 2, ResetThreshold: 10, TargetThreshold: 5}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mob, _ := ecs.Get(w, e, component.MobComponent)
	if mob.SquaredResetThreshold != 100 || mob.SquaredTargetThreshold != 25 {
		t.Fatalf("expected squared thresholds, got %+v", *mob)
	}
	body, _ := ecs.Get(w, e, component.BodyComponent)
	if body.Shape.Radius != defaultActorRadius || !body.IsDynamic() {
		t.Fatalf("expected default dynamic circle, got %+v", *body)
	}
}

func TestLoadMobScript(t *testing.T) {
	mobs, err := LoadMobScript("mobs.tengo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mobs) != 6 {
		t.Fatalf("expected six mobs, got %d", len(mobs))
	}
	if math.Abs(mobs[0].X-600) > 1e-9 || math.Abs(mobs[0].Y) > 1e-9 {
		t.Fatalf("expected first mob at (600, 0), got (%v, %v)", mobs[0].X, mobs[0].Y)
	}
	if mobs[0].ResetThreshold != 250 || mobs[0].TargetThreshold != 100 || mobs[0].Radius != 16 {
		t.Fatalf("unexpected thresholds %+v", mobs[0])
	}
}

func TestRunMobScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{name: "syntax", src: "mobs := [", want: "run"},
		{name: "trailing_comma_in_map", src: "mobs := [{x: 1, y: 2,\n}]", want: "run"},
		{name: "undefined", src: "other := 1", want: "not defined"},
		{name: "not_array", src: "mobs := 3", want: "must be an array"},
		{name: "not_map", src: "mobs := [1]", want: "must be a map"},
		{name: "missing_field", src: `mobs := [{x: 1, y: 2, reset_threshold: 3}]`, want: "target_threshold"},
		{name: "bad_type", src: `mobs := [{x: "a", y: 2, reset_threshold: 3, target_threshold: 4}]`, want: "must be a number"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := RunMobScript([]byte(c.src))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestEmbeddedMobScriptsRun(t *testing.T) {
	paths, err := fs.Glob(prefabs.ScriptsFS, "scripts/*.tengo")
	if err != nil || len(paths) == 0 {
		t.Fatalf("expected embedded scripts, got %v (%v)", paths, err)
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			src, err := fs.ReadFile(prefabs.ScriptsFS, path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if _, err := RunMobScript(src); err != nil {
				t.Fatalf("run: %v", err)
			}
		})
	}
}

func TestRunMobScriptEmpty(t *testing.T) {
	mobs, err := RunMobScript([]byte("mobs := []"))
	if err != nil || len(mobs) != 0 {
		t.Fatalf("expected no mobs, got %v (%v)", mobs, err)
	}
}
