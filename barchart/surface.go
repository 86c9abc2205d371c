// Package barchart lays out and draws a labeled bar chart onto an abstract
// 2D surface, and maps pointer positions back to the bar beneath them.
package barchart

import (
	"image"
	"image/color"

	"gioui.org/f32"
)

// TextAlign selects which point of a string FillText anchors at x.
type TextAlign uint8

const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

// TextBaseline selects which line of a string FillText anchors at y.
type TextBaseline uint8

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// Font describes the text style used by FillText. Size is in surface pixels.
type Font struct {
	Size float32
	Bold bool
}

// Surface is a 2D drawing target modelled after a canvas rendering context.
// Style changes persist until the next Restore that pops them.
type Surface interface {
	// Size reports the surface dimensions in pixels.
	Size() image.Point
	Save()
	Restore()
	SetStrokeColor(color.NRGBA)
	SetFillColor(color.NRGBA)
	SetFont(Font)
	SetTextAlign(TextAlign)
	SetTextBaseline(TextBaseline)
	BeginPath()
	MoveTo(x, y float32)
	LineTo(x, y float32)
	// Stroke draws the current path one pixel wide in the stroke color.
	Stroke()
	FillRect(x, y, w, h float32)
	ClearRect(x, y, w, h float32)
	FillText(text string, x, y float32)
}

// Canvas is the primary chart surface. Origin reports where the surface sits
// within the coordinate space pointer positions are delivered in.
type Canvas interface {
	Surface
	Origin() f32.Point
}

// Tooltip is the secondary surface used to show the hovered bar.
type Tooltip interface {
	Surface
	// Place moves the tooltip's top-left corner to p in the same coordinate
	// space as Canvas.Origin.
	Place(p f32.Point)
	// Hide moves the tooltip out of view.
	Hide()
}

// PointerSource is implemented by canvases that deliver pointer movement.
// New registers the chart's HandlePointer with it.
type PointerSource interface {
	OnPointerMove(func(f32.Point))
}
