package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/topdown/anim"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/prefabs"
	"golang.org/x/image/font/basicfont"
)

const viewSize = 512

// viewer previews the hero's movement clips. The arrow keys pick the clip
// the same way the game does.
type viewer struct {
	clips   map[anim.ID]*anim.Clip
	control *anim.Control
	frames  []*ebiten.Image
	input   *input.Ebiten
	face    ebtext.Face
}

func (v *viewer) Update() error {
	in := v.input.Sample()
	next := anim.Select(in.RightLeft, in.UpDown)
	if next != v.control.ID() {
		if clip, ok := v.clips[next]; ok {
			v.control.Stop()
			v.control = anim.NewLooping(next, clip)
		}
	}
	v.control.Advance()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	idx := v.control.SpriteIndex()
	if idx >= 0 && idx < len(v.frames) {
		frame := v.frames[idx]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(viewSize-frame.Bounds().Dx())/2, float64(viewSize-frame.Bounds().Dy())/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	ebtext.Draw(screen, fmt.Sprintf("%s frame %d sprite %d", v.control.ID(), v.control.Frame(), idx), v.face, op)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// loadFrames slices a sprite sheet row by row into frameW by frameH cells.
func loadFrames(path string, frameW, frameH int) ([]*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	sheet := ebiten.NewImageFromImage(img)
	cols := sheet.Bounds().Dx() / frameW
	rows := sheet.Bounds().Dy() / frameH
	frames := make([]*ebiten.Image, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		col := i % cols
		row := i / cols
		r := image.Rect(col*frameW, row*frameH, col*frameW+frameW, row*frameH+frameH)
		frames = append(frames, sheet.SubImage(r).(*ebiten.Image))
	}
	return frames, nil
}

func main() {
	worldName := flag.String("world", "overworld", "world spec whose animations are previewed")
	sheetPath := flag.String("sheet", "", "optional PNG sprite sheet")
	frameSize := flag.Int("frame", 32, "sprite sheet cell size in pixels")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec(*worldName)
	if err != nil {
		log.Fatal(err)
	}

	fps := spec.Animations.FPS
	clips := make(map[anim.ID]*anim.Clip, anim.Count)
	for name, frames := range spec.Animations.Clips {
		id, ok := anim.Parse(name)
		if !ok {
			log.Printf("skipping unknown clip %q", name)
			continue
		}
		clips[id] = &anim.Clip{Name: name, Frames: frames, FPS: fps, Loop: true}
	}

	var frames []*ebiten.Image
	if *sheetPath != "" {
		frames, err = loadFrames(*sheetPath, *frameSize, *frameSize)
		if err != nil {
			log.Printf("no sprite sheet: %v", err)
		}
	}

	v := &viewer{
		clips:   clips,
		control: anim.NewLooping(anim.Idle, clips[anim.Idle]),
		frames:  frames,
		input:   input.NewEbiten(),
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("animation preview")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
