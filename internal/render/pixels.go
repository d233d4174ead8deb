package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

const ellipseSegments = 32

// Canvas is an RGBA pixel buffer in row-major order, laid out the way
// ebiten.Image.WritePixels expects. Shapes are filled with an anti-aliased
// path rasterizer.
type Canvas struct {
	W, H int
	Pix  []byte

	img *image.RGBA
	ras *vector.Rasterizer
}

// NewCanvas allocates a canvas of w*h pixels.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Canvas{W: w, H: h, Pix: img.Pix, img: img, ras: vector.NewRasterizer(w, h)}
}

// At returns the colour at (x, y). Out-of-range reads return transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return color.RGBA{}
	}
	base := (y*c.W + x) * 4
	return color.RGBA{R: c.Pix[base], G: c.Pix[base+1], B: c.Pix[base+2], A: c.Pix[base+3]}
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRows paints rows [y0, y1) with col, composited over what is there.
func (c *Canvas) FillRows(y0, y1 int, col color.RGBA) {
	r := image.Rect(0, y0, c.W, y1).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(color.NRGBA(col)), image.Point{}, draw.Over)
}

// FillEllipse paints an ellipse centred on (cx, cy) with radii rx, ry rotated
// by angle radians.
func (c *Canvas) FillEllipse(cx, cy, rx, ry, angle float64, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	c.ras.Reset(c.W, c.H)
	for i := 0; i < ellipseSegments; i++ {
		th := 2 * math.Pi * float64(i) / ellipseSegments
		u, v := rx*math.Cos(th), ry*math.Sin(th)
		x := float32(cx + u*cos - v*sin)
		y := float32(cy + u*sin + v*cos)
		if i == 0 {
			c.ras.MoveTo(x, y)
		} else {
			c.ras.LineTo(x, y)
		}
	}
	c.ras.ClosePath()
	c.paint(col)
}

// Line draws a one pixel wide segment.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col color.RGBA) {
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		dx, dy, n = 1, 0, 1
		x1 = x0 + 1
	}
	// Half-pixel offsets perpendicular to the segment.
	ox, oy := -dy/n*0.5, dx/n*0.5
	c.ras.Reset(c.W, c.H)
	c.ras.MoveTo(float32(x0+ox), float32(y0+oy))
	c.ras.LineTo(float32(x1+ox), float32(y1+oy))
	c.ras.LineTo(float32(x1-ox), float32(y1-oy))
	c.ras.LineTo(float32(x0-ox), float32(y0-oy))
	c.ras.ClosePath()
	c.paint(col)
}

func (c *Canvas) paint(col color.RGBA) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA(col)), image.Point{})
}
