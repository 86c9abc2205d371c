package main

import (
	"context"
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/simchart/backend"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var openIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFolderOpen)
	return icon
}()

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	th         *material.Theme
	controller *stream.Controller
	ds         *backend.Datasource
	expl       *explorer.Explorer
	invalidate func()

	results *stream.Stream[backend.Results]
	picked  chan func(ctx context.Context) <-chan backend.Results
	picking bool
	view    *ChartView
	loadErr string

	openBtn     widget.Clickable
	openIconBtn widget.Clickable
}

func NewUI(controller *stream.Controller, ds *backend.Datasource, expl *explorer.Explorer, invalidate func()) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	return &UI{
		th:         th,
		controller: controller,
		ds:         ds,
		expl:       expl,
		invalidate: invalidate,
		picked:     make(chan func(ctx context.Context) <-chan backend.Results, 1),
	}
}

// Watch starts showing the results file at path, reloading it whenever it
// changes on disk.
func (ui *UI) Watch(path string) {
	ui.results = stream.New(ui.controller, ui.ds.Watch(path))
}

// chooseFile asks the user for a results file without blocking the frame.
func (ui *UI) chooseFile() {
	ui.picking = true
	go func() {
		defer ui.invalidate()
		f, err := ui.expl.ChooseFile(".csv")
		if err != nil {
			log.Printf("failed choosing results file: %v", err)
			ui.picked <- nil
			return
		}
		if osFile, ok := f.(*os.File); ok {
			name := osFile.Name()
			if err := osFile.Close(); err != nil {
				log.Printf("failed closing %s: %v", name, err)
			}
			ui.picked <- ui.ds.Watch(name)
			return
		}
		ui.picked <- ui.ds.Once("selected file", f)
	}()
}

// Update the state of the UI.
func (ui *UI) Update(gtx C) {
	if !ui.picking && (ui.openBtn.Clicked(gtx) || ui.openIconBtn.Clicked(gtx)) {
		ui.chooseFile()
	}
	select {
	case provider := <-ui.picked:
		ui.picking = false
		if provider != nil {
			ui.results = stream.New(ui.controller, provider)
		}
	default:
	}
	if ui.results == nil {
		return
	}
	res, isNew := ui.results.ReadNew(gtx)
	if !isNew {
		return
	}
	view, err := NewChartView(ui.th, res)
	if err != nil {
		log.Printf("failed showing results: %v", err)
		ui.loadErr = err.Error()
		return
	}
	ui.loadErr = ""
	ui.view = view
}

func (ui *UI) layoutError(gtx C) D {
	if len(ui.loadErr) == 0 {
		return D{}
	}
	l := material.Body1(ui.th, ui.loadErr)
	l.Color = color.NRGBA{R: 150, A: 255}
	return l.Layout(gtx)
}

func (ui *UI) layoutMainArea(gtx C) D {
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx C) D {
					l := material.Body2(ui.th, ui.view.source)
					l.MaxLines = 1
					return layout.UniformInset(4).Layout(gtx, l.Layout)
				}),
				layout.Rigid(func(gtx C) D {
					if ui.picking {
						gtx = gtx.Disabled()
					}
					return material.IconButton(ui.th, &ui.openIconBtn, openIcon, "Open Results").Layout(gtx)
				}),
			)
		}),
		layout.Rigid(ui.layoutError),
		layout.Flexed(1, func(gtx C) D {
			return ui.view.Layout(gtx, ui.th)
		}),
	)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	l := material.Body1(ui.th, "No results yet.")
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			if ui.picking {
				gtx = gtx.Disabled()
			}
			return material.Button(ui.th, &ui.openBtn, "Open Results").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return ui.layoutError(gtx)
		}),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.view != nil {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}
