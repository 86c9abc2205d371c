package main

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/exp/constraints"

	"git.sr.ht/~whereswaldon/simchart/barchart"
)

type surfaceState struct {
	stroke, fill color.NRGBA
	font         barchart.Font
	align        barchart.TextAlign
	baseline     barchart.TextBaseline
}

// maxTextExtent bounds the space a single FillText may lay out into.
const maxTextExtent = 4096

var defaultSurfaceState = surfaceState{
	stroke: color.NRGBA{A: 0xff},
	fill:   color.NRGBA{A: 0xff},
	font:   barchart.Font{Size: 10},
}

// gioSurface implements barchart.Canvas by recording Gio operations. Its
// coordinates are logical units; the caller scales them to pixels.
type gioSurface struct {
	th         *material.Theme
	gtx        layout.Context
	size       image.Point
	origin     f32.Point
	background color.NRGBA
	state      surfaceState
	saved      []surfaceState
	path       [][]f32.Point
	onMove     func(f32.Point)
}

var (
	_ barchart.Canvas        = (*gioSurface)(nil)
	_ barchart.PointerSource = (*gioSurface)(nil)
)

func newGioSurface(th *material.Theme, size image.Point, origin f32.Point) *gioSurface {
	return &gioSurface{
		th:     th,
		size:   size,
		origin: origin,
		state:  defaultSurfaceState,
	}
}

// begin binds the surface to the operations of the current frame.
func (s *gioSurface) begin(gtx layout.Context) {
	gtx.Metric = unit.Metric{PxPerDp: 1, PxPerSp: 1}
	s.gtx = gtx
	s.state = defaultSurfaceState
	s.saved = s.saved[:0]
	s.path = s.path[:0]
}

// dispatch delivers a pointer position to the registered listener.
func (s *gioSurface) dispatch(p f32.Point) {
	if s.onMove != nil {
		s.onMove(p)
	}
}

func (s *gioSurface) OnPointerMove(f func(f32.Point)) { s.onMove = f }

func (s *gioSurface) Size() image.Point { return s.size }
func (s *gioSurface) Origin() f32.Point { return s.origin }

func (s *gioSurface) Save() {
	s.saved = append(s.saved, s.state)
}

func (s *gioSurface) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.state = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *gioSurface) SetStrokeColor(c color.NRGBA)            { s.state.stroke = c }
func (s *gioSurface) SetFillColor(c color.NRGBA)              { s.state.fill = c }
func (s *gioSurface) SetFont(f barchart.Font)                 { s.state.font = f }
func (s *gioSurface) SetTextAlign(a barchart.TextAlign)       { s.state.align = a }
func (s *gioSurface) SetTextBaseline(b barchart.TextBaseline) { s.state.baseline = b }

func (s *gioSurface) BeginPath() {
	s.path = s.path[:0]
}

func (s *gioSurface) MoveTo(x, y float32) {
	s.path = append(s.path, []f32.Point{f32.Pt(x, y)})
}

func (s *gioSurface) LineTo(x, y float32) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], f32.Pt(x, y))
}

func (s *gioSurface) Stroke() {
	if len(s.path) == 0 {
		return
	}
	var p clip.Path
	p.Begin(s.gtx.Ops)
	for _, sub := range s.path {
		p.MoveTo(sub[0])
		for _, pt := range sub[1:] {
			p.LineTo(pt)
		}
	}
	paint.FillShape(s.gtx.Ops, s.state.stroke, clip.Stroke{
		Path:  p.End(),
		Width: 1,
	}.Op())
}

func (s *gioSurface) rect(x, y, w, h float32) clip.Op {
	var p clip.Path
	p.Begin(s.gtx.Ops)
	p.MoveTo(f32.Pt(x, y))
	p.LineTo(f32.Pt(x+w, y))
	p.LineTo(f32.Pt(x+w, y+h))
	p.LineTo(f32.Pt(x, y+h))
	p.Close()
	return clip.Outline{Path: p.End()}.Op()
}

func (s *gioSurface) FillRect(x, y, w, h float32) {
	paint.FillShape(s.gtx.Ops, s.state.fill, s.rect(x, y, w, h))
}

// ClearRect paints the surface background, since recorded operations
// cannot be erased.
func (s *gioSurface) ClearRect(x, y, w, h float32) {
	if s.background.A == 0 {
		return
	}
	paint.FillShape(s.gtx.Ops, s.background, s.rect(x, y, w, h))
}

func (s *gioSurface) FillText(txt string, x, y float32) {
	gtx := s.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(maxTextExtent, maxTextExtent)}
	l := material.Label(s.th, unit.Sp(s.state.font.Size), txt)
	l.Color = s.state.fill
	l.MaxLines = 1
	if s.state.font.Bold {
		l.Font.Weight = font.Bold
	}
	dims, call := rec(gtx, l.Layout)

	pos := f32.Pt(x, y)
	switch s.state.align {
	case barchart.AlignCenter:
		pos.X -= float32(dims.Size.X) / 2
	case barchart.AlignEnd:
		pos.X -= float32(dims.Size.X)
	}
	switch s.state.baseline {
	case barchart.BaselineAlphabetic:
		pos.Y -= float32(dims.Size.Y - dims.Baseline)
	case barchart.BaselineMiddle:
		pos.Y -= float32(dims.Size.Y) / 2
	case barchart.BaselineBottom:
		pos.Y -= float32(dims.Size.Y)
	}
	defer op.Offset(image.Pt(round(pos.X), round(pos.Y))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

// gioTooltip is a gioSurface shown at a position chosen by the chart. It
// starts every frame hidden.
type gioTooltip struct {
	*gioSurface
	pos     f32.Point
	visible bool
}

var _ barchart.Tooltip = (*gioTooltip)(nil)

func newGioTooltip(th *material.Theme, size image.Point) *gioTooltip {
	s := newGioSurface(th, size, f32.Point{})
	s.background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf0}
	return &gioTooltip{gioSurface: s}
}

func (t *gioTooltip) begin(gtx layout.Context) {
	t.gioSurface.begin(gtx)
	t.visible = false
}

func (t *gioTooltip) Place(p f32.Point) {
	t.pos = p
	t.visible = true
}

func (t *gioTooltip) Hide() {
	t.visible = false
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

func round[T constraints.Float](a T) int {
	return int(math.Round(float64(a)))
}
