package barchart

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
)

type fakeState struct {
	stroke, fill color.NRGBA
	font         Font
	align        TextAlign
	baseline     TextBaseline
}

type textCall struct {
	text  string
	x, y  float32
	state fakeState
}

type rectCall struct {
	x, y, w, h float32
	fill       color.NRGBA
}

type lineCall struct {
	points []f32.Point
	stroke color.NRGBA
}

// fakeSurface records what is drawn onto it.
type fakeSurface struct {
	size    image.Point
	origin  f32.Point
	state   fakeState
	stack   []fakeState
	path    []f32.Point
	texts   []textCall
	rects   []rectCall
	lines   []lineCall
	clears  int
	placed  *f32.Point
	hidden  bool
	onMove  func(f32.Point)
	maxSave int
}

var (
	_ Canvas        = (*fakeSurface)(nil)
	_ Tooltip       = (*fakeSurface)(nil)
	_ PointerSource = (*fakeSurface)(nil)
)

func newFake(w, h int) *fakeSurface {
	return &fakeSurface{
		size:  image.Pt(w, h),
		state: fakeState{fill: color.NRGBA{A: 0xff}, stroke: color.NRGBA{A: 0xff}},
	}
}

func (f *fakeSurface) Size() image.Point { return f.size }
func (f *fakeSurface) Origin() f32.Point { return f.origin }
func (f *fakeSurface) Save() {
	f.stack = append(f.stack, f.state)
	f.maxSave = max(f.maxSave, len(f.stack))
}
func (f *fakeSurface) Restore() {
	if len(f.stack) == 0 {
		panic("restore without save")
	}
	f.state = f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
}
func (f *fakeSurface) SetStrokeColor(c color.NRGBA)     { f.state.stroke = c }
func (f *fakeSurface) SetFillColor(c color.NRGBA)       { f.state.fill = c }
func (f *fakeSurface) SetFont(ft Font)                  { f.state.font = ft }
func (f *fakeSurface) SetTextAlign(a TextAlign)         { f.state.align = a }
func (f *fakeSurface) SetTextBaseline(b TextBaseline)   { f.state.baseline = b }
func (f *fakeSurface) BeginPath()                       { f.path = f.path[:0] }
func (f *fakeSurface) MoveTo(x, y float32)              { f.path = append(f.path, f32.Pt(x, y)) }
func (f *fakeSurface) LineTo(x, y float32)              { f.path = append(f.path, f32.Pt(x, y)) }
func (f *fakeSurface) ClearRect(x, y, w, h float32)     { f.clears++ }
func (f *fakeSurface) OnPointerMove(fn func(f32.Point)) { f.onMove = fn }
func (f *fakeSurface) Stroke() {
	f.lines = append(f.lines, lineCall{points: append([]f32.Point(nil), f.path...), stroke: f.state.stroke})
}
func (f *fakeSurface) FillRect(x, y, w, h float32) {
	f.rects = append(f.rects, rectCall{x: x, y: y, w: w, h: h, fill: f.state.fill})
}
func (f *fakeSurface) FillText(text string, x, y float32) {
	f.texts = append(f.texts, textCall{text: text, x: x, y: y, state: f.state})
}
func (f *fakeSurface) Place(p f32.Point) {
	f.placed = &p
	f.hidden = false
}
func (f *fakeSurface) Hide() {
	f.placed = nil
	f.hidden = true
}

func (f *fakeSurface) lastText() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1].text
}

func mustData(pairs ...any) *Data {
	d := NewData()
	for i := 0; i < len(pairs); i += 2 {
		var v float64
		switch n := pairs[i+1].(type) {
		case int:
			v = float64(n)
		case float64:
			v = n
		default:
			panic(fmt.Sprintf("unsupported value %T", n))
		}
		if err := d.Set(pairs[i].(string), v); err != nil {
			panic(err)
		}
	}
	return d
}
