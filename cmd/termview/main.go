package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/topdown/audio"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/state"
	"github.com/milk9111/topdown/term"
)

const tickRate = 60

func main() {
	worldName := flag.String("world", "overworld", "world spec in prefabs/")
	parallel := flag.Bool("parallel", false, "run access-compatible systems concurrently")
	sound := flag.Bool("audio", false, "play event cues through the system speaker")
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(*worldName, *parallel, *sound); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(worldName string, parallel, sound bool) error {
	spec, err := prefabs.LoadWorldSpec(worldName)
	if err != nil {
		return err
	}
	world := ecs.NewWorld()
	refs, err := entity.BuildWorld(world, spec)
	if err != nil {
		return fmt.Errorf("termview: build %s: %w", spec.Name, err)
	}

	keys := term.NewKeys()
	sched, err := system.NewGameplayScheduler(keys, parallel)
	if err != nil {
		return fmt.Errorf("termview: scheduler: %w", err)
	}

	cues := audio.NewCues()
	if sound {
		if err := cues.Open(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	defer cues.Close()

	stack, err := state.NewStack(world, sched, state.Config{
		Hero:            refs.Hero,
		Camera:          refs.Camera,
		CameraOffset:    refs.CameraOffset,
		OverworldBounds: refs.OverworldBounds,
		DebugInstance:   refs.DebugInstance,
		OnEvent:         cues.Handle,
	})
	if err != nil {
		return fmt.Errorf("termview: state stack: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termview: screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termview: screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	view := term.NewView(screen)
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if keys.Feed(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := stack.Update(); err != nil {
				if !errors.Is(err, state.ErrContradictoryTransition) {
					return err
				}
				log.Printf("termview: %v", err)
			}
			view.Draw(world, refs.Camera, fmt.Sprintf(" %s  depth %d  q quits ", stack.Top(), stack.Depth()))
		}
	}
}
