package render

import (
	"image/color"
	"math"

	"aquarium/internal/aquarium"
	"aquarium/internal/core"
	"aquarium/internal/env"
	"aquarium/internal/sims/fish"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	deepWater   = env.MustHex("#0b2a4a")
	shallowTint = env.MustHex("#4a90e2")
	sand        = env.MustHex("#d2b48c")
	bubbleColor = color.RGBA{R: 235, G: 245, B: 255, A: 200}
	fishColors  = parsePalette(fish.Palette)
)

func parsePalette(hex []string) []colorful.Color {
	out := make([]colorful.Color, len(hex))
	for i, h := range hex {
		out[i] = env.MustHex(h)
	}
	return out
}

// View projects tank coordinates onto a front-facing canvas: x to the right,
// y up, z toward the viewer. The tank fills the canvas.
type View struct {
	W, H     int
	TankSize float64
}

// Project returns the canvas position of p.
func (v View) Project(p mgl64.Vec3) (float64, float64) {
	half := core.Extents(v.TankSize)
	x := (p[0]/half[0]*0.5 + 0.5) * float64(v.W)
	y := (0.5 - p[1]/half[1]*0.5) * float64(v.H)
	return x, y
}

// Scale returns pixels per tank unit along x.
func (v View) Scale() float64 {
	return float64(v.W) / (v.TankSize * 2 * core.HalfWidthFactor)
}

// PaintFrame rasterises f onto c.
func PaintFrame(c *Canvas, f aquarium.Frame) {
	v := View{W: c.W, H: c.H, TankSize: f.TankSize}
	light := lightColor(f.Light)

	c.Fill(toRGBA(shade(deepWater, light, f.Light.AmbientIntensity)))
	_, surfaceY := v.Project(mgl64.Vec3{0, f.Surface.PositionY, 0})
	c.FillRows(0, int(surfaceY), color.RGBA{R: 200, G: 220, B: 240, A: 60})
	_, floorY := v.Project(mgl64.Vec3{0, -core.Extents(f.TankSize)[1] * 0.95, 0})
	c.FillRows(int(floorY), c.H, toRGBA(shade(sand, light, f.Light.AmbientIntensity)))

	tilt := math.Sin(f.Surface.RotationX-(-math.Pi/2)) * float64(c.W) * 0.5
	c.Line(0, surfaceY-tilt, float64(c.W), surfaceY+tilt, toRGBA(shade(shallowTint, light, 1)))

	half := core.Extents(f.TankSize)
	scale := v.Scale()
	for _, fs := range f.Fish {
		x, y := v.Project(fs.Position)
		depth := 0.55 + 0.45*(fs.Position[2]/half[2]*0.5+0.5)
		base := fishColors[fs.ColorIndex%len(fishColors)]
		col := toRGBA(shade(base, light, depth))
		length := fs.Size * scale * 0.5
		// Heading projected onto the front view: only the x component of the
		// forward vector survives, so fish facing the viewer look shorter.
		facing := math.Cos(fs.Heading)
		rx := math.Max(length*math.Abs(facing), length*0.35)
		c.FillEllipse(x, y, rx, length*0.35, fs.Roll, col)
		tailX := x - math.Copysign(rx, facing)
		c.Line(tailX, y-length*0.3, tailX, y+length*0.3, col)
	}

	for _, b := range f.Bubbles {
		x, y := v.Project(b.Position)
		r := math.Max(1, b.Size*scale)
		c.FillEllipse(x, y, r, r, 0, bubbleColor)
	}
}

func lightColor(l aquarium.LightState) colorful.Color {
	ambient, err := colorful.Hex(l.AmbientColor)
	if err != nil {
		return shallowTint
	}
	return ambient
}

// shade tints base toward the ambient light and darkens it by intensity.
func shade(base, light colorful.Color, intensity float64) colorful.Color {
	tinted := base.BlendRgb(light, 0.25)
	k := mgl64.Clamp(0.35+intensity, 0, 1)
	return colorful.Color{R: tinted.R * k, G: tinted.G * k, B: tinted.B * k}.Clamped()
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
