package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gioui.org/f32"

	"git.sr.ht/~whereswaldon/simchart/barchart"
	"git.sr.ht/~whereswaldon/simchart/loader"
	"git.sr.ht/~whereswaldon/simchart/raster"
)

const (
	tooltipWidth  = 140
	tooltipHeight = 22
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: render a similarity results csv file as a bar chart
Usage:

 %[1]s -input results.csv -output chart.png

OR

 similarity-tool | %[1]s > chart.png

`, os.Args[0])
	flag.PrintDefaults()
}

var errBadHover = errors.New("hover must be of the form x,y")

// parseHover parses a pointer position of the form "x,y".
func parseHover(s string) (f32.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return f32.Point{}, errBadHover
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return f32.Point{}, fmt.Errorf("%w: %v", errBadHover, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return f32.Point{}, fmt.Errorf("%w: %v", errBadHover, err)
	}
	return f32.Pt(float32(x), float32(y)), nil
}

// legendPrinter writes each legend entry on its own line.
type legendPrinter struct {
	w io.Writer
}

func (l legendPrinter) ReplaceEntries(entries []barchart.LegendEntry) {
	for _, e := range entries {
		c := e.Color
		fmt.Fprintf(l.w, "#%02x%02x%02x %s\n", c.R, c.G, c.B, e.Text)
	}
}

func main() {
	flag.Usage = usage
	inputName := flag.String("input", "-", "Input csv file with a row of column names and a row of fractional values")
	outputName := flag.String("output", "-", "Output file for the PNG image")
	hover := flag.String("hover", "", "Pointer position x,y whose tooltip should be drawn")
	size := flag.Int("size", 300, "Width and height of the chart in pixels")
	showLegend := flag.Bool("legend", false, "Print the legend entries on stderr")
	flag.Parse()

	var input io.ReadCloser
	if *inputName == "-" {
		input = os.Stdin
	} else {
		f, err := os.Open(*inputName)
		if err != nil {
			log.Fatalf("failed opening input file %q: %v", *inputName, err)
		}
		input = f
	}
	columns, values, err := loader.ReadCSV(input)
	if closeErr := input.Close(); closeErr != nil {
		log.Printf("failed closing input: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("failed reading results: %v", err)
	}

	if *size <= 0 {
		log.Fatalf("size must be positive, got %d", *size)
	}
	canvas := raster.New(*size, *size)
	tooltip := raster.NewTooltip(tooltipWidth, tooltipHeight)
	var legend barchart.LegendSink = &barchart.Legend{}
	if *showLegend {
		legend = legendPrinter{w: os.Stderr}
	}
	chart, err := loader.Load(columns, values, canvas, tooltip, legend)
	if err != nil {
		log.Fatalf("failed drawing chart: %v", err)
	}
	if *hover != "" {
		p, err := parseHover(*hover)
		if err != nil {
			log.Fatalf("failed parsing -hover: %v", err)
		}
		if i, ok := chart.HandlePointer(p); ok {
			log.Printf("hovering bar %d", i)
			tooltip.Composite(canvas)
		} else {
			log.Printf("no bar under %v", p)
		}
	}

	var output io.WriteCloser
	if *outputName == "-" {
		output = os.Stdout
	} else {
		f, err := os.Create(*outputName)
		if err != nil {
			log.Fatalf("failed opening output file %q: %v", *outputName, err)
		}
		output = f
	}
	if err := canvas.EncodePNG(output); err != nil {
		log.Fatalf("failed encoding png: %v", err)
	}
	if err := output.Close(); err != nil {
		log.Printf("failed closing output: %v", err)
	}
}
