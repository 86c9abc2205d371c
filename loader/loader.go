// Package loader turns similarity scores into a ready-to-draw bar chart.
package loader

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"git.sr.ht/~whereswaldon/simchart/barchart"
)

// Title is the display name of every chart built by this package.
const Title = "Porcentaje de similitud"

// DefaultPalette is the palette used for loaded charts.
var DefaultPalette = barchart.Palette{
	{R: 0xa5, G: 0x5c, B: 0xa5, A: 0xff}, //#a55ca5
	{R: 0x67, G: 0xb6, B: 0xc7, A: 0xff}, //#67b6c7
	{R: 0xbc, G: 0xcd, B: 0x7a, A: 0xff}, //#bccd7a
	{R: 0xeb, G: 0x97, B: 0x43, A: 0xff}, //#eb9743
	{R: 0xa5, G: 0x87, B: 0x87, A: 0xff}, //#a58787
	{R: 0xa5, G: 0x39, B: 0x39, A: 0xff}, //#a53939
}

// Percentages converts fractional scores into chart data keyed by column.
// Every value is shown as a percentage with two decimals. A repeated column
// keeps its first position and takes the later value.
func Percentages(columns []string, values []float64) (*barchart.Data, error) {
	if len(columns) != len(values) {
		return nil, fmt.Errorf("got %d columns but %d values", len(columns), len(values))
	}
	d := barchart.NewData()
	for i, column := range columns {
		label := formatFixed(values[i]*100, 2)
		pct, err := strconv.ParseFloat(label, 64)
		if err != nil {
			return nil, fmt.Errorf("failed parsing percentage %q: %w", label, err)
		}
		if err := d.SetLabeled(column, pct, label); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// formatFixed formats v with the given number of decimals, rounding the exact
// binary value of v and breaking ties away from zero.
func formatFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r := new(big.Rat).SetFloat64(math.Abs(v))
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	digits := new(big.Int).Quo(r.Num(), r.Denom()).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	s := digits
	if decimals > 0 {
		s = digits[:len(digits)-decimals] + "." + digits[len(digits)-decimals:]
	}
	if v < 0 {
		s = "-" + s
	}
	return s
}

// NewConfig returns a chart configuration for the scores without any
// surfaces attached.
func NewConfig(columns []string, values []float64) (barchart.Config, error) {
	d, err := Percentages(columns, values)
	if err != nil {
		return barchart.Config{}, err
	}
	return barchart.Config{
		Name:   Title,
		Data:   d,
		Colors: append(barchart.Palette(nil), DefaultPalette...),
	}, nil
}

// Load builds a chart for the scores on the given surfaces and draws it once.
func Load(columns []string, values []float64, surface barchart.Canvas, tooltip barchart.Tooltip, legend barchart.LegendSink) (*barchart.Chart, error) {
	cfg, err := NewConfig(columns, values)
	if err != nil {
		return nil, err
	}
	cfg.Surface = surface
	cfg.Tooltip = tooltip
	cfg.Legend = legend
	chart, err := barchart.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed creating chart: %w", err)
	}
	if err := chart.Draw(); err != nil {
		return nil, err
	}
	return chart, nil
}
