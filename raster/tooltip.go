package raster

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"golang.org/x/image/draw"

	"git.sr.ht/~whereswaldon/simchart/barchart"
)

// Tooltip is a raster canvas that can be placed over another canvas.
type Tooltip struct {
	*Canvas
	// Background is painted over every cleared area.
	Background color.NRGBA
	pos        f32.Point
	visible    bool
}

var _ barchart.Tooltip = (*Tooltip)(nil)

// NewTooltip returns a hidden tooltip of the given size.
func NewTooltip(width, height int) *Tooltip {
	return &Tooltip{
		Canvas:     New(width, height),
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf0},
	}
}

func (t *Tooltip) ClearRect(x, y, w, h float32) {
	r := pixelRect(x, y, w, h)
	draw.Draw(t.img, r, image.NewUniform(t.Background), image.Point{}, draw.Src)
}

func (t *Tooltip) Place(p f32.Point) {
	t.pos = p
	t.visible = true
}

func (t *Tooltip) Hide() {
	t.visible = false
}

// Position reports where the tooltip was last placed and whether it is
// currently shown.
func (t *Tooltip) Position() (f32.Point, bool) {
	return t.pos, t.visible
}

// Composite draws the tooltip over dst when it is visible.
func (t *Tooltip) Composite(dst *Canvas) {
	if !t.visible {
		return
	}
	at := t.pos.Sub(dst.Origin())
	offset := image.Pt(int(math.Round(float64(at.X))), int(math.Round(float64(at.Y))))
	r := t.img.Bounds().Add(offset)
	draw.Draw(dst.img, r, t.img, image.Point{}, draw.Over)
}
