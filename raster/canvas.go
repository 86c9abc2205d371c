// Package raster implements chart surfaces backed by an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"gioui.org/f32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"git.sr.ht/~whereswaldon/simchart/barchart"
)

type state struct {
	stroke, fill color.NRGBA
	font         barchart.Font
	align        barchart.TextAlign
	baseline     barchart.TextBaseline
}

func defaultState() state {
	return state{
		stroke: color.NRGBA{A: 0xff},
		fill:   color.NRGBA{A: 0xff},
		font:   barchart.Font{Size: 10},
	}
}

// Canvas is a barchart.Canvas drawing into an *image.RGBA.
type Canvas struct {
	img    *image.RGBA
	origin f32.Point
	state  state
	saved  []state
	// path holds the subpaths built since the last BeginPath.
	path  [][]f32.Point
	faces *faceCache
}

var _ barchart.Canvas = (*Canvas)(nil)

// New returns a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		state: defaultState(),
		faces: sharedFaces,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SetOrigin records where the canvas sits in pointer coordinates.
func (c *Canvas) SetOrigin(p f32.Point) { c.origin = p }

func (c *Canvas) Origin() f32.Point { return c.origin }

func (c *Canvas) Size() image.Point { return c.img.Bounds().Size() }

func (c *Canvas) Save() {
	c.saved = append(c.saved, c.state)
}

func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.state = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *Canvas) SetStrokeColor(col color.NRGBA)          { c.state.stroke = col }
func (c *Canvas) SetFillColor(col color.NRGBA)            { c.state.fill = col }
func (c *Canvas) SetFont(f barchart.Font)                 { c.state.font = f }
func (c *Canvas) SetTextAlign(a barchart.TextAlign)       { c.state.align = a }
func (c *Canvas) SetTextBaseline(b barchart.TextBaseline) { c.state.baseline = b }

func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

func (c *Canvas) MoveTo(x, y float32) {
	c.path = append(c.path, []f32.Point{f32.Pt(x, y)})
}

func (c *Canvas) LineTo(x, y float32) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], f32.Pt(x, y))
}

// Stroke rasterizes every segment of the current path as a one pixel wide
// quad.
func (c *Canvas) Stroke() {
	size := c.Size()
	z := vector.NewRasterizer(size.X, size.Y)
	z.DrawOp = draw.Over
	for _, sub := range c.path {
		for i := 1; i < len(sub); i++ {
			segment(z, sub[i-1], sub[i], 1)
		}
	}
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(c.state.stroke), image.Point{})
}

// segment adds the outline of a line of the given width from a to b.
func segment(z *vector.Rasterizer, a, b f32.Point, width float32) {
	d := b.Sub(a)
	length := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if length == 0 {
		return
	}
	n := f32.Pt(-d.Y/length, d.X/length).Mul(width / 2)
	z.MoveTo(a.X+n.X, a.Y+n.Y)
	z.LineTo(b.X+n.X, b.Y+n.Y)
	z.LineTo(b.X-n.X, b.Y-n.Y)
	z.LineTo(a.X-n.X, a.Y-n.Y)
	z.ClosePath()
}

func pixelRect(x, y, w, h float32) image.Rectangle {
	return image.Rect(
		int(math.Round(float64(x))),
		int(math.Round(float64(y))),
		int(math.Round(float64(x+w))),
		int(math.Round(float64(y+h))),
	).Canon()
}

func (c *Canvas) FillRect(x, y, w, h float32) {
	draw.Draw(c.img, pixelRect(x, y, w, h), image.NewUniform(c.state.fill), image.Point{}, draw.Over)
}

func (c *Canvas) ClearRect(x, y, w, h float32) {
	draw.Draw(c.img, pixelRect(x, y, w, h), image.Transparent, image.Point{}, draw.Src)
}

// FillText draws text in the fill color. Without a bold face, bold text is
// drawn twice with the second pass one pixel to the right.
func (c *Canvas) FillText(text string, x, y float32) {
	face := c.faces.face(c.state.font)
	metrics := face.Metrics()
	width := font.MeasureString(face, text)

	dot := fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
	switch c.state.align {
	case barchart.AlignCenter:
		dot.X -= width / 2
	case barchart.AlignEnd:
		dot.X -= width
	}
	switch c.state.baseline {
	case barchart.BaselineTop:
		dot.Y += metrics.Ascent
	case barchart.BaselineMiddle:
		dot.Y += (metrics.Ascent - metrics.Descent) / 2
	case barchart.BaselineBottom:
		dot.Y -= metrics.Descent
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.state.fill),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
	if c.state.font.Bold && !c.faces.hasBold {
		d.Dot = fixed.Point26_6{X: dot.X + fixed.I(1), Y: dot.Y}
		d.DrawString(text)
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
