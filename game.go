package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/audio"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/render"
	"github.com/milk9111/topdown/state"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	World    string
	Debug    bool
	Watch    bool
	Parallel bool
	Audio    bool
}

type Game struct {
	opts     Options
	world    *ecs.World
	refs     entity.Refs
	stack    *state.Stack
	input    *input.Ebiten
	renderer *render.Renderer
	watcher  *prefabs.Watcher
	cues     *audio.Cues
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		opts:     opts,
		input:    input.NewEbiten(),
		renderer: render.NewRenderer(opts.Debug),
		cues:     audio.NewCues(),
	}
	if opts.Audio {
		if err := g.cues.Open(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load builds a fresh world from its world spec and starts a new state stack on
// top of it. The current world is kept when anything fails.
func (g *Game) load() error {
	spec, err := prefabs.LoadWorldSpec(g.opts.World)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	world := ecs.NewWorld()
	refs, err := entity.BuildWorld(world, spec)
	if err != nil {
		return fmt.Errorf("game: build %s: %w", spec.Name, err)
	}

	sched, err := system.NewGameplayScheduler(g.input, g.opts.Parallel)
	if err != nil {
		return fmt.Errorf("game: scheduler: %w", err)
	}

	stack, err := state.NewStack(world, sched, state.Config{
		Hero:            refs.Hero,
		Camera:          refs.Camera,
		CameraOffset:    refs.CameraOffset,
		OverworldBounds: refs.OverworldBounds,
		DebugInstance:   refs.DebugInstance,
		OnEvent:         g.onEvent,
	})
	if err != nil {
		return fmt.Errorf("game: state stack: %w", err)
	}

	g.world, g.refs, g.stack = world, refs, stack
	log.Printf("game: loaded %s (%d mobs, %d portals)", spec.Name, len(refs.Mobs), len(refs.Portals))
	return nil
}

func (g *Game) onEvent(evt ecs.Event) {
	g.cues.Handle(evt)
	if !g.opts.Debug {
		return
	}
	switch evt.Type {
	case system.EventMobTarget, system.EventMobReturning, system.EventMobIdle:
		if data, ok := evt.Data.(system.MobEvent); ok {
			log.Printf("mob %v: %s", data.Mob, evt.Type)
		}
	case system.EventAnimationChanged:
		if data, ok := evt.Data.(system.AnimationChange); ok {
			log.Printf("hero animation: %s -> %s", data.From, data.To)
		}
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("hot reload: %s changed", change.Path)
			if err := g.load(); err != nil {
				log.Printf("hot reload failed: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("hot reload watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.pollReload()

	if err := g.stack.Update(); err != nil {
		if errors.Is(err, state.ErrContradictoryTransition) {
			log.Printf("game: %v", err)
			return nil
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	status := fmt.Sprintf("%s  depth %d", g.stack.Top(), g.stack.Depth())
	g.renderer.Draw(screen, g.world, g.refs.Camera, status)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	g.cues.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
