package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	worldName := flag.String("world", "overworld", "world spec in prefabs/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "draw trigger zones and the debug HUD")
	watch := flag.Bool("watch", false, "rebuild the world when prefabs change on disk")
	parallel := flag.Bool("parallel", false, "run access-compatible systems concurrently")
	sound := flag.Bool("audio", false, "play event cues through the system speaker")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("topdown")

	game, err := NewGame(Options{
		World:    *worldName,
		Debug:    *debug,
		Watch:    *watch,
		Parallel: *parallel,
		Audio:    *sound,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
