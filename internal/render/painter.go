//go:build ebiten

package render

import (
	"aquarium/internal/aquarium"

	"github.com/hajimehoshi/ebiten/v2"
)

// TankPainter rasterises frames into a single ebiten image.
type TankPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewTankPainter allocates a painter for a w*h view.
func NewTankPainter(w, h int) *TankPainter {
	c := NewCanvas(w, h)
	return &TankPainter{canvas: c, img: ebiten.NewImage(c.W, c.H)}
}

// Draw paints f and blits it onto dst at the given scale.
func (tp *TankPainter) Draw(dst *ebiten.Image, f aquarium.Frame, scale int) {
	PaintFrame(tp.canvas, f)
	tp.img.WritePixels(tp.canvas.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image.
func (tp *TankPainter) Size() (int, int) { return tp.canvas.W, tp.canvas.H }
