package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"

	"git.sr.ht/~whereswaldon/simchart/backend"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: view similarity results as a bar chart
Usage:

 %[1]s [results.csv]

The results file holds a row of column names followed by a row of fractional
similarity values. The chart reloads whenever the file is rewritten. Without
a file, use the "Open Results" button to pick one.

`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	path := flag.Arg(0)
	go func() {
		w := app.NewWindow(
			app.Title("Similarity"),
			app.Size(unit.Dp(480), unit.Dp(640)),
		)
		if err := loop(w, path); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, path string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	expl := explorer.NewExplorer(w)
	controller := stream.NewController(ctx, w.Invalidate)
	ui := NewUI(controller, backend.NewDatasource(), expl, w.Invalidate)
	if path != "" {
		ui.Watch(path)
	}
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
