package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"git.sr.ht/~whereswaldon/simchart/backend"
	"git.sr.ht/~whereswaldon/simchart/barchart"
	"git.sr.ht/~whereswaldon/simchart/loader"
)

const (
	// chartSide is the logical width and height of the chart surface.
	chartSide = 300
	// chartInset separates the chart surface from the edge of its pointer
	// area.
	chartInset = 8
)

var tooltipSize = image.Pt(140, 22)

// ChartView shows one set of results as a bar chart with a hover tooltip
// and a legend table.
type ChartView struct {
	source   string
	chart    *barchart.Chart
	surface  *gioSurface
	tooltip  *gioTooltip
	legend   barchart.Legend
	keyTable component.GridState
	drawErr  error
	// hover gesture state
	pos       f32.Point
	isHovered bool
}

// NewChartView builds a chart for res. A chart is built once per set of
// results and never updated in place.
func NewChartView(th *material.Theme, res backend.Results) (*ChartView, error) {
	if res.Err != nil {
		return nil, res.Err
	}
	cfg, err := loader.NewConfig(res.Columns, res.Values)
	if err != nil {
		return nil, fmt.Errorf("failed loading %s: %w", res.Source, err)
	}
	v := &ChartView{
		source:  res.Source,
		surface: newGioSurface(th, image.Pt(chartSide, chartSide), f32.Pt(chartInset, chartInset)),
		tooltip: newGioTooltip(th, tooltipSize),
	}
	cfg.Surface = v.surface
	cfg.Tooltip = v.tooltip
	cfg.Legend = &v.legend
	v.chart, err = barchart.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed creating chart for %s: %w", res.Source, err)
	}
	return v, nil
}

func (v *ChartView) Update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move,
		})
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case pointer.Event:
			switch ev.Kind {
			case pointer.Enter:
				v.isHovered = true
				v.pos = ev.Position
			case pointer.Leave, pointer.Cancel:
				v.isHovered = false
			case pointer.Move:
				v.pos = ev.Position
			}
		}
	}
}

func (v *ChartView) Layout(gtx C, th *material.Theme) D {
	v.Update(gtx)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Center.Layout(gtx, v.layoutChart)
		}),
		layout.Rigid(func(gtx C) D {
			if v.drawErr == nil {
				return D{}
			}
			l := material.Body2(th, v.drawErr.Error())
			l.Color = color.NRGBA{R: 150, A: 255}
			return l.Layout(gtx)
		}),
		layout.Flexed(1, func(gtx C) D {
			return v.layoutLegend(gtx, th)
		}),
	)
}

// layoutChart draws the chart scaled to fit the constraints and replays the
// hover position through the chart's pointer handler.
func (v *ChartView) layoutChart(gtx C) D {
	const total = chartSide + 2*chartInset
	scale := min(
		gtx.Metric.PxPerDp,
		float32(gtx.Constraints.Max.X)/total,
		float32(gtx.Constraints.Max.Y)/total,
	)
	size := image.Pt(round(total*scale), round(total*scale))

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	defer op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale))).Push(gtx.Ops).Pop()
	v.surface.begin(gtx)
	inset := op.Offset(image.Pt(chartInset, chartInset)).Push(gtx.Ops)
	v.drawErr = v.chart.Draw()
	inset.Pop()

	macro := op.Record(gtx.Ops)
	v.tooltip.begin(gtx)
	if v.isHovered && v.drawErr == nil && scale > 0 {
		v.surface.dispatch(v.pos.Div(scale))
	}
	tipCall := macro.Stop()
	if v.tooltip.visible {
		defer op.Affine(f32.Affine2D{}.Offset(v.tooltip.pos)).Push(gtx.Ops).Pop()
		tipCall.Add(gtx.Ops)
	}
	return D{Size: size}
}

func (v *ChartView) layoutLegend(gtx C, th *material.Theme) D {
	table := component.Table(th, &v.keyTable)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	swatchColWidth := gtx.Dp(30)
	entryColWidth := gtx.Constraints.Max.X - swatchColWidth - gtx.Dp(table.VScrollbarStyle.Width())
	rowHeight := gtx.Sp(24)
	const (
		swatchCol = iota
		entryCol
		numCols
	)
	entries := v.legend.Entries
	return table.Layout(gtx, len(entries), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			switch index {
			case swatchCol:
				return min(swatchColWidth, constraint)
			default:
				return min(max(entryColWidth, 0), constraint)
			}
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case swatchCol:
				l = material.Body1(th, "")
			case entryCol:
				l = material.Body1(th, v.source)
				l.MaxLines = 1
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				}, l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			entry := entries[row]
			switch col {
			case swatchCol:
				// A solid strip, like a thick left border.
				sz := image.Pt(gtx.Dp(20), gtx.Constraints.Max.Y)
				paint.FillShape(gtx.Ops, entry.Color, clip.Rect{Max: sz}.Op())
				return D{Size: gtx.Constraints.Max}
			default:
				return layout.UniformInset(5).Layout(gtx, func(gtx C) D {
					l := material.Body2(th, entry.Text)
					l.Alignment = text.Start
					l.MaxLines = 1
					return l.Layout(gtx)
				})
			}
		})
}
