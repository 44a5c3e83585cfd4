package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/mattn/go-runewidth"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	glyphHero      = "@"
	glyphMob       = "m"
	glyphReturning = "r"
	glyphPortal    = "🌀"
	glyphWall      = '#'
)

var (
	styleHero   = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Bold(true)
	styleMob    = tcell.StyleDefault.Foreground(tcell.ColorCrimson)
	styleReturn = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleStatic = tcell.StyleDefault.Foreground(tcell.ColorLightSlateGray)
	styleBounds = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// View draws the world as glyphs centered on the camera. Each cell covers
// CellW by CellH world units.
type View struct {
	screen tcell.Screen
	CellW  float64
	CellH  float64
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen, CellW: 8, CellH: 16}
}

type frame struct {
	center        cp.Vector
	cellW, cellH  float64
	width, height int
}

// toCell maps y-up world space onto screen cells.
func (f frame) toCell(p cp.Vector) (int, int) {
	col := int(math.Floor((p.X-f.center.X)/f.cellW)) + f.width/2
	row := int(math.Floor((f.center.Y-p.Y)/f.cellH)) + f.height/2
	return col, row
}

func (v *View) Draw(w *ecs.World, camera ecs.Entity, status string) {
	v.screen.Clear()
	width, height := v.screen.Size()
	f := frame{cellW: v.CellW, cellH: v.CellH, width: width, height: height}
	if t, ok := ecs.Get(w, camera, component.TransformComponent); ok {
		f.center = t.Position
	}

	if bounds, ok := ecs.GetResource(w, component.WorldBoundsResource); ok {
		v.drawBounds(f, *bounds)
	}

	ecs.ForEach2(w, component.BodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.Body, t *component.Transform) {
		if !ecs.Has(w, e, component.ActiveComponent) || body.IsDynamic() {
			return
		}
		v.fillBox(f, body.Shape.Bounds(t.Position))
	})

	ecs.ForEach2(w, component.PortalComponent, component.TransformComponent, func(e ecs.Entity, _ *component.Portal, t *component.Transform) {
		if !ecs.Has(w, e, component.ActiveComponent) {
			return
		}
		col, row := f.toCell(t.Position)
		v.putGlyph(col, row, glyphPortal, styleStatic)
	})

	ecs.ForEach2(w, component.BodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.Body, t *component.Transform) {
		if !ecs.Has(w, e, component.ActiveComponent) || !body.IsDynamic() {
			return
		}
		glyph, style := actorGlyph(w, e)
		col, row := f.toCell(t.Position)
		v.putGlyph(col, row, glyph, style)
	})

	v.putString(0, 0, status, styleHUD)
	v.screen.Show()
}

func actorGlyph(w *ecs.World, e ecs.Entity) (string, tcell.Style) {
	if ecs.Has(w, e, component.HeroComponent) {
		return glyphHero, styleHero
	}
	if mob, ok := ecs.Get(w, e, component.MobComponent); ok && mob.Resetting {
		return glyphReturning, styleReturn
	}
	return glyphMob, styleMob
}

func (v *View) drawBounds(f frame, b component.WorldBounds) {
	x0, y0 := f.toCell(cp.Vector{X: b.Left, Y: b.Top})
	x1, y1 := f.toCell(cp.Vector{X: b.Right, Y: b.Bottom})
	for x := max(x0, 0); x <= min(x1, f.width-1); x++ {
		v.setCell(x, y0, '─', styleBounds)
		v.setCell(x, y1, '─', styleBounds)
	}
	for y := max(y0, 0); y <= min(y1, f.height-1); y++ {
		v.setCell(x0, y, '│', styleBounds)
		v.setCell(x1, y, '│', styleBounds)
	}
	v.setCell(x0, y0, '┌', styleBounds)
	v.setCell(x1, y0, '┐', styleBounds)
	v.setCell(x0, y1, '└', styleBounds)
	v.setCell(x1, y1, '┘', styleBounds)
}

func (v *View) fillBox(f frame, bb cp.BB) {
	x0, y0 := f.toCell(cp.Vector{X: bb.L, Y: bb.T})
	x1, y1 := f.toCell(cp.Vector{X: bb.R, Y: bb.B})
	for y := max(y0, 0); y <= min(y1, f.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, f.width-1); x++ {
			v.setCell(x, y, glyphWall, styleStatic)
		}
	}
}

func (v *View) setCell(x, y int, r rune, style tcell.Style) {
	width, height := v.screen.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

// putGlyph draws a possibly wide glyph and blanks the cell it spills into.
func (v *View) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	width, height := v.screen.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	v.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		v.setCell(x+1, y, ' ', style)
	}
}

func (v *View) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.setCell(x, y, r, style)
		x += max(1, runewidth.RuneWidth(r))
	}
}
