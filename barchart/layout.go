package barchart

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

const (
	// DefaultPadding is the margin kept around the plot area.
	DefaultPadding = 30
	// rightMargin replaces the padding on the right edge of the plot.
	rightMargin = 10
	// gridDivisions is the number of grid steps aimed for between zero and
	// the maximum value.
	gridDivisions = 8
	// MaxGridLines bounds the number of grid lines drawn by a single pass.
	MaxGridLines = 64
)

var (
	gridColor      = color.NRGBA{R: 0xe1, G: 0xe1, B: 0xe1, A: 0xff} // #e1e1e1
	gridLabelColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff} // #808080
	titleColor     = color.NRGBA{A: 0xff}
	gridLabelFont  = Font{Size: 10, Bold: true}
	titleFont      = Font{Size: 20, Bold: true}
)

// GridLine is a horizontal reference line at Value.
type GridLine struct {
	Value float64
	Y     float32
}

// Label returns the text drawn next to the line.
func (g GridLine) Label() string {
	return strconv.FormatFloat(g.Value, 'f', -1, 64)
}

// Region is the rectangle covered by one bar, in surface pixels.
type Region struct {
	Index         int
	X, Y          float32
	Right, Bottom float32
	Color         color.NRGBA
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float32 { return r.Right - r.X }

// Height returns the vertical extent of the region.
func (r Region) Height() float32 { return r.Bottom - r.Y }

// Contains reports whether (x,y) lies strictly inside the region.
func (r Region) Contains(x, y float32) bool {
	return x > r.X && x < r.Right && y > r.Y && y < r.Bottom
}

// LegendEntry is one row of the chart legend.
type LegendEntry struct {
	Color color.NRGBA
	Text  string
}

// Plan is the geometry of one render pass.
type Plan struct {
	Size      image.Point
	Padding   float32
	Max       float64
	GridScale float64
	Grid      []GridLine
	Bars      []Region
	Legend    []LegendEntry
}

func round[T constraints.Float](v T) T {
	return T(math.Round(float64(v)))
}

// Compute lays out data on a surface of the given size.
func Compute(size image.Point, padding float32, entries []Entry, palette Palette) (Plan, error) {
	if len(entries) == 0 {
		return Plan{}, ErrEmptyData
	}
	if len(palette) == 0 {
		return Plan{}, ErrEmptyPalette
	}
	p := Plan{Size: size, Padding: padding}
	for i, e := range entries {
		if i == 0 || e.Value > p.Max {
			p.Max = e.Value
		}
	}
	if !(p.Max > 0) {
		return Plan{}, ErrNoPositiveValue
	}

	plotHeight := float32(size.Y) - padding*2
	plotWidth := float32(size.X) - padding - rightMargin

	p.GridScale = round(p.Max / gridDivisions)
	p.Grid = gridLines(p.Max, p.GridScale, plotHeight, padding)

	barSize := plotWidth / float32(len(entries))
	p.Bars = make([]Region, 0, len(entries))
	p.Legend = make([]LegendEntry, 0, len(entries))
	for i, e := range entries {
		barHeight := round(plotHeight * float32(e.Value/p.Max))
		x := padding + float32(i)*barSize
		y := float32(size.Y) - barHeight - padding
		c := palette.At(i)
		p.Bars = append(p.Bars, Region{
			Index:  i,
			X:      x,
			Y:      y,
			Right:  x + barSize,
			Bottom: y + barHeight,
			Color:  c,
		})
		p.Legend = append(p.Legend, LegendEntry{Color: c, Text: e.String()})
	}
	return p, nil
}

// gridLines returns the lines at 0, step, 2*step, ... up to maxValue. A zero
// step yields the baseline alone.
func gridLines(maxValue, step float64, plotHeight, padding float32) []GridLine {
	var lines []GridLine
	for n := 0; n < MaxGridLines; n++ {
		v := float64(n) * step
		if v > maxValue {
			break
		}
		lines = append(lines, GridLine{
			Value: v,
			Y:     plotHeight*float32(1-v/maxValue) + padding,
		})
		if step <= 0 {
			break
		}
	}
	return lines
}
