//go:build ebiten

package app

import (
	"time"

	"aquarium/internal/aquarium"
	"aquarium/internal/render"
	"aquarium/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an aquarium tank to the ebiten.Game interface.
type Game struct {
	tank    *aquarium.Tank
	painter *render.TankPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	viewW, viewH int
	scale        int
	hudWidth     int
	tps          int
	paused       bool
	tickOnce     bool
	seed         int64
}

// New constructs a Game for the provided tank.
func New(tank *aquarium.Tank, cfg *Config) *Game {
	return &Game{
		tank:     tank,
		painter:  render.NewTankPainter(cfg.Width, cfg.Height),
		hud:      ui.NewHUD(tank, cfg.HUDWidth),
		overlay:  ui.NewOverlay(tank, cfg.Scale),
		viewW:    cfg.Width,
		viewH:    cfg.Height,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		tps:      cfg.TPS,
		seed:     cfg.Seed,
	}
}

// Reset rebuilds the tank with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.tank.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the tank by one fixed tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.viewW * g.scale)

	if !g.paused || g.tickOnce {
		g.tank.Step(1 / float64(g.tps))
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current tank state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.tank.Frame(), g.scale)
	g.overlay.Draw(screen, g.viewW, g.viewH)
	g.hud.Draw(screen, g.viewW*g.scale, g.viewH*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW*g.scale + g.hudWidth, g.viewH * g.scale
}
