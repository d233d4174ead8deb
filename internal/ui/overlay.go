//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"aquarium/internal/aquarium"
	"aquarium/internal/core"
	"aquarium/internal/render"
	"aquarium/internal/sims/bubbles"
	"aquarium/internal/sims/fish"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the tank view.
type Overlay struct {
	tank  *aquarium.Tank
	scale int

	showTargets  bool
	showEnvelope bool
	showStats    bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(tank *aquarium.Tank, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{tank: tank, scale: scale, showStats: true}
}

// Update toggles overlay layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTargets = !o.showTargets
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showEnvelope = !o.showEnvelope
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled layers onto screen for a view of w*h canvas pixels.
func (o *Overlay) Draw(screen *ebiten.Image, w, h int) {
	p := o.tank.Params()
	view := render.View{W: w, H: h, TankSize: p.TankSize}
	s := float32(o.scale)

	if o.showTargets {
		targetColor := color.RGBA{R: 255, G: 255, B: 120, A: 160}
		for _, a := range o.tank.School().Agents() {
			x0, y0 := view.Project(a.Position)
			x1, y1 := view.Project(a.Target)
			vector.StrokeLine(screen, float32(x0)*s, float32(y0)*s, float32(x1)*s, float32(y1)*s, 1, targetColor, false)
		}
		half := core.Extents(p.TankSize)
		x0, y0 := view.Project(mgl64.Vec3{-half[0] * fish.ContainFraction, half[1] * fish.ContainFraction, 0})
		x1, y1 := view.Project(mgl64.Vec3{half[0] * fish.ContainFraction, -half[1] * fish.ContainFraction, 0})
		vector.StrokeRect(screen, float32(x0)*s, float32(y0)*s, float32(x1-x0)*s, float32(y1-y0)*s, 1, targetColor, false)
	}

	if o.showEnvelope {
		outlet := bubbles.Outlet(p.TankSize)
		reach := bubbles.MaxDistance(p)
		ceiling := p.TankSize * bubbles.RiseCeiling
		envColor := color.RGBA{R: 120, G: 220, B: 255, A: 160}
		x0, y0 := view.Project(outlet)
		x1, _ := view.Project(outlet.Add(mgl64.Vec3{reach, 0, 0}))
		_, y1 := view.Project(outlet.Add(mgl64.Vec3{0, ceiling, 0}))
		vector.StrokeLine(screen, float32(x0)*s, float32(y0)*s, float32(x1)*s, float32(y0)*s, 1, envColor, false)
		vector.StrokeLine(screen, float32(x1)*s, float32(y0)*s, float32(x1)*s, float32(y1)*s, 1, envColor, false)
	}

	if o.showStats {
		light := o.tank.Light()
		line := fmt.Sprintf("t=%.1fs  %s  fish=%d  bubbles=%d  recycled=%d",
			o.tank.Elapsed(), light.Band, o.tank.School().Len(), o.tank.Bubbles().Len(), o.tank.Bubbles().Recycled())
		text.Draw(screen, line, basicfont.Face7x13, 8, 18, color.White)
	}
}
