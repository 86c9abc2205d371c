package barchart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette is an ordered list of colors assigned to bars cyclically.
type Palette []color.NRGBA

// At returns the color for the i'th bar.
func (p Palette) At(i int) color.NRGBA {
	return p[i%len(p)]
}

var namedColors = map[string]drawing.Color{
	"black":       drawing.ColorBlack,
	"white":       drawing.ColorWhite,
	"red":         drawing.ColorRed,
	"green":       drawing.ColorFromHex("008000"),
	"blue":        drawing.ColorBlue,
	"transparent": drawing.ColorTransparent,
}

// ParseColor accepts "#rgb", "#rrggbb" or one of a handful of color names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return toNRGBA(c), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, "0123456789abcdef") != "" {
		return color.NRGBA{}, fmt.Errorf("unrecognized color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return toNRGBA(drawing.ColorFromHex(hex)), nil
}

// ParsePalette parses each color in order.
func ParsePalette(colors ...string) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, 0, len(colors))
	for i, name := range colors {
		c, err := ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

func toNRGBA(c drawing.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
