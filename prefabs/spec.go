package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownInstance  = errors.New("prefabs: unknown instance")
	ErrInvalidBounds    = errors.New("prefabs: invalid bounds")
	ErrInvalidShape     = errors.New("prefabs: invalid shape")
	ErrMissingAnimation = errors.New("prefabs: missing animation")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec describes everything the world builder spawns for one map.
type WorldSpec struct {
	Name          string                  `yaml:"name"`
	Bounds        *BoundsSpec             `yaml:"bounds"`
	Hero          HeroSpec                `yaml:"hero"`
	Camera        CameraSpec              `yaml:"camera"`
	Buildings     []BuildingSpec          `yaml:"buildings"`
	Mobs          []MobSpec               `yaml:"mobs"`
	MobScript     string                  `yaml:"mob_script"`
	Portals       []PortalSpec            `yaml:"portals"`
	Instances     map[string]InstanceSpec `yaml:"instances"`
	DebugInstance string                  `yaml:"debug_instance"`
	Animations    AnimationSetSpec        `yaml:"animations"`
}

// LoadWorldSpec reads and validates a world spec by file name.
func LoadWorldSpec(filename string) (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return &spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoundsSpec struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

func (b BoundsSpec) Validate() error {
	if b.Left > b.Right || b.Bottom > b.Top {
		return fmt.Errorf("%w: left %v right %v bottom %v top %v", ErrInvalidBounds, b.Left, b.Right, b.Bottom, b.Top)
	}
	return nil
}

// ShapeSpec is either a circle (radius) or a box (half extents).
type ShapeSpec struct {
	Shape      string  `yaml:"shape"`
	Radius     float64 `yaml:"radius"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

func (s ShapeSpec) Validate() error {
	switch s.Shape {
	case "circle":
		if s.Radius <= 0 {
			return fmt.Errorf("%w: circle radius %v", ErrInvalidShape, s.Radius)
		}
	case "box":
		if s.HalfWidth <= 0 || s.HalfHeight <= 0 {
			return fmt.Errorf("%w: box half extents %vx%v", ErrInvalidShape, s.HalfWidth, s.HalfHeight)
		}
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidShape, s.Shape)
	}
	return nil
}

type HeroSpec struct {
	Position PointSpec `yaml:"position"`
	Radius   float64   `yaml:"radius"`
}

type CameraSpec struct {
	Offset PointSpec `yaml:"offset"`
}

type BuildingSpec struct {
	Position   PointSpec `yaml:"position"`
	HalfWidth  float64   `yaml:"half_width"`
	HalfHeight float64   `yaml:"half_height"`
}

// MobSpec thresholds are linear distances.
type MobSpec struct {
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	Radius          float64 `yaml:"radius"`
	ResetThreshold  float64 `yaml:"reset_threshold"`
	TargetThreshold float64 `yaml:"target_threshold"`
}

type PortalSpec struct {
	Position PointSpec `yaml:"position"`
	Instance string    `yaml:"instance"`
	Zone     ShapeSpec `yaml:"zone"`
}

type InstanceSpec struct {
	Spawn  PointSpec  `yaml:"spawn"`
	Exit   PointSpec  `yaml:"exit"`
	Bounds BoundsSpec `yaml:"bounds"`
	Mobs   []MobSpec  `yaml:"mobs"`
}

// AnimationSetSpec lists the sprite indices of each movement clip, keyed by
// animation name.
type AnimationSetSpec struct {
	FPS   float64          `yaml:"fps"`
	Clips map[string][]int `yaml:"clips"`
}

// Validate checks cross references and geometry. Animation names are
// checked by the world builder, which owns the name table.
func (s *WorldSpec) Validate() error {
	if s.Bounds != nil {
		if err := s.Bounds.Validate(); err != nil {
			return fmt.Errorf("overworld: %w", err)
		}
	}
	for i, p := range s.Portals {
		if _, ok := s.Instances[p.Instance]; !ok {
			return fmt.Errorf("portal %d: %w: %q", i, ErrUnknownInstance, p.Instance)
		}
		if err := p.Zone.Validate(); err != nil {
			return fmt.Errorf("portal %d: %w", i, err)
		}
	}
	for name, inst := range s.Instances {
		if err := inst.Bounds.Validate(); err != nil {
			return fmt.Errorf("instance %q: %w", name, err)
		}
	}
	if s.DebugInstance != "" {
		if _, ok := s.Instances[s.DebugInstance]; !ok {
			return fmt.Errorf("debug instance: %w: %q", ErrUnknownInstance, s.DebugInstance)
		}
	}
	return nil
}
