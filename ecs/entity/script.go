package entity

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/topdown/prefabs"
)

const (
	mobScriptTimeout   = time.Second
	mobScriptMaxAllocs = 1 << 16
)

// LoadMobScript runs a spawn script from prefabs/scripts. The script must
// leave an array of maps in the global `mobs`, each with x, y,
// reset_threshold and target_threshold and an optional radius.
func LoadMobScript(name string) ([]prefabs.MobSpec, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("mob script: load %s: %w", name, err)
	}
	return RunMobScript(src)
}

// RunMobScript evaluates spawn script source.
func RunMobScript(src []byte) ([]prefabs.MobSpec, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	script.SetMaxAllocs(mobScriptMaxAllocs)

	ctx, cancel := context.WithTimeout(context.Background(), mobScriptTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("mob script: run: %w", err)
	}

	v := compiled.Get("mobs")
	if v.IsUndefined() {
		return nil, fmt.Errorf("mob script: global mobs is not defined")
	}
	if v.ValueType() != "array" {
		return nil, fmt.Errorf("mob script: mobs must be an array, got %s", v.ValueType())
	}

	var out []prefabs.MobSpec
	for i, raw := range v.Array() {
		fields, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("mob script: mobs[%d] must be a map", i)
		}
		spec, err := mobSpecFromScript(fields)
		if err != nil {
			return nil, fmt.Errorf("mob script: mobs[%d]: %w", i, err)
		}
		out = append(out, spec)
	}
	return out, nil
}

func mobSpecFromScript(fields map[string]any) (prefabs.MobSpec, error) {
	var spec prefabs.MobSpec
	targets := []struct {
		key      string
		dst      *float64
		required bool
	}{
		{"x", &spec.X, true},
		{"y", &spec.Y, true},
		{"reset_threshold", &spec.ResetThreshold, true},
		{"target_threshold", &spec.TargetThreshold, true},
		{"radius", &spec.Radius, false},
	}
	for _, t := range targets {
		raw, ok := fields[t.key]
		if !ok {
			if t.required {
				return spec, fmt.Errorf("missing %q", t.key)
			}
			continue
		}
		f, ok := toFloat(raw)
		if !ok {
			return spec, fmt.Errorf("%q must be a number, got %T", t.key, raw)
		}
		*t.dst = f
	}
	return spec, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
