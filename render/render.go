package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	colorHero      = colornames.Limegreen
	colorMob       = colornames.Crimson
	colorReturning = colornames.Orange
	colorStatic    = colornames.Lightslategray
	colorBounds    = colornames.Dimgray
	colorPortal    = color.RGBA{R: 120, G: 80, B: 255, A: 72}
	colorText      = colornames.White
)

// Renderer draws the world as outlines. It only reads components.
type Renderer struct {
	face  ebtext.Face
	Debug bool
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{face: ebtext.NewGoXFace(basicfont.Face7x13), Debug: debug}
}

type view struct {
	center cp.Vector
	halfW  float64
	halfH  float64
}

// toScreen maps y-up world space onto the screen around the camera.
func (v view) toScreen(p cp.Vector) (float32, float32) {
	return float32(p.X - v.center.X + v.halfW), float32(v.center.Y - p.Y + v.halfH)
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World, camera ecs.Entity, status string) {
	b := screen.Bounds()
	v := view{halfW: float64(b.Dx()) / 2, halfH: float64(b.Dy()) / 2}
	if t, ok := ecs.Get(w, camera, component.TransformComponent); ok {
		v.center = t.Position
	}

	if bounds, ok := ecs.GetResource(w, component.WorldBoundsResource); ok {
		x0, y0 := v.toScreen(cp.Vector{X: bounds.Left, Y: bounds.Top})
		x1, y1 := v.toScreen(cp.Vector{X: bounds.Right, Y: bounds.Bottom})
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, colorBounds, false)
	}

	if r.Debug {
		ecs.ForEach2(w, component.PortalComponent, component.TransformComponent, func(e ecs.Entity, p *component.Portal, t *component.Transform) {
			if !ecs.Has(w, e, component.ActiveComponent) {
				return
			}
			r.drawShape(screen, v, t.Position, p.TriggerZone, colorPortal, true)
		})
	}

	ecs.ForEach2(w, component.BodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.Body, t *component.Transform) {
		if !ecs.Has(w, e, component.ActiveComponent) {
			return
		}
		r.drawShape(screen, v, t.Position, body.Shape, bodyColor(w, e), false)
	})

	if r.Debug {
		r.drawHUD(screen, w, status)
	}
}

func bodyColor(w *ecs.World, e ecs.Entity) color.Color {
	if ecs.Has(w, e, component.HeroComponent) {
		return colorHero
	}
	if mob, ok := ecs.Get(w, e, component.MobComponent); ok {
		if mob.Resetting {
			return colorReturning
		}
		return colorMob
	}
	return colorStatic
}

func (r *Renderer) drawShape(screen *ebiten.Image, v view, pos cp.Vector, s collision.Shape, clr color.Color, fill bool) {
	switch s.Kind {
	case collision.ShapeCircle:
		x, y := v.toScreen(pos)
		if fill {
			vector.FillCircle(screen, x, y, float32(s.Radius), clr, true)
			return
		}
		vector.StrokeCircle(screen, x, y, float32(s.Radius), 1.5, clr, true)
	case collision.ShapeBox:
		x, y := v.toScreen(cp.Vector{X: pos.X - s.HalfExtents.X, Y: pos.Y + s.HalfExtents.Y})
		wdt, hgt := float32(s.HalfExtents.X*2), float32(s.HalfExtents.Y*2)
		if fill {
			vector.FillRect(screen, x, y, wdt, hgt, clr, false)
			return
		}
		vector.StrokeRect(screen, x, y, wdt, hgt, 1.5, clr, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, w *ecs.World, status string) {
	lines := []string{status, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())}

	if hero, ok := w.First(component.HeroComponent.ID()); ok {
		if t, ok := ecs.Get(w, hero, component.TransformComponent); ok {
			lines = append(lines, fmt.Sprintf("hero %.1f, %.1f", t.Position.X, t.Position.Y))
		}
		if b, ok := ecs.Get(w, hero, component.AnimationBindingsComponent); ok {
			lines = append(lines, fmt.Sprintf("anim %s sprite %d", b.Active(), b.Control.SpriteIndex()))
		}
	}

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		op.ColorScale.ScaleWithColor(colorText)
		ebtext.Draw(screen, line, r.face, op)
	}
}
