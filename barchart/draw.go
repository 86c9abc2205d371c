package barchart

import "image/color"

// DrawLine strokes a one pixel line from (x1,y1) to (x2,y2).
func DrawLine(s Surface, x1, y1, x2, y2 float32, c color.NRGBA) {
	s.Save()
	defer s.Restore()
	s.SetStrokeColor(c)
	s.BeginPath()
	s.MoveTo(x1, y1)
	s.LineTo(x2, y2)
	s.Stroke()
}

// DrawBar fills the rectangle whose top-left corner is (x,y).
func DrawBar(s Surface, x, y, w, h float32, c color.NRGBA) {
	s.Save()
	defer s.Restore()
	s.SetFillColor(c)
	s.FillRect(x, y, w, h)
}
