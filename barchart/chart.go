package barchart

import (
	"fmt"

	"gioui.org/f32"
)

// Config describes a chart. Legend may be nil.
type Config struct {
	Name    string
	Data    *Data
	Colors  Palette
	Surface Canvas
	Tooltip Tooltip
	Legend  LegendSink
	// Padding overrides DefaultPadding when positive.
	Padding float32
}

// Chart draws a Config and answers pointer queries against the most recent
// drawing.
type Chart struct {
	cfg     Config
	regions []Region
}

// New validates cfg and returns a chart for it. If the surface is a
// PointerSource, the chart starts listening to it.
func New(cfg Config) (*Chart, error) {
	if cfg.Surface == nil || cfg.Tooltip == nil {
		return nil, ErrNoSurface
	}
	if cfg.Data.Len() == 0 {
		return nil, ErrEmptyData
	}
	if len(cfg.Colors) == 0 {
		return nil, ErrEmptyPalette
	}
	if !(cfg.Data.Max() > 0) {
		return nil, ErrNoPositiveValue
	}
	if cfg.Padding <= 0 {
		cfg.Padding = DefaultPadding
	}
	c := &Chart{cfg: cfg}
	if src, ok := cfg.Surface.(PointerSource); ok {
		src.OnPointerMove(func(p f32.Point) {
			c.HandlePointer(p)
		})
	}
	return c, nil
}

// Name returns the chart's display name.
func (c *Chart) Name() string {
	return c.cfg.Name
}

// Regions returns the bar regions computed by the last Draw.
func (c *Chart) Regions() []Region {
	return append([]Region(nil), c.regions...)
}

// Draw renders the grid, bars, title and legend, replacing the regions of
// any previous pass.
func (c *Chart) Draw() error {
	s := c.cfg.Surface
	plan, err := Compute(s.Size(), c.cfg.Padding, c.cfg.Data.Entries(), c.cfg.Colors)
	if err != nil {
		c.regions = nil
		return fmt.Errorf("failed laying out %q: %w", c.cfg.Name, err)
	}
	width := float32(plan.Size.X)
	height := float32(plan.Size.Y)

	for _, line := range plan.Grid {
		DrawLine(s, 0, line.Y, width, line.Y, gridColor)

		s.Save()
		s.SetFillColor(gridLabelColor)
		s.SetTextBaseline(BaselineBottom)
		s.SetFont(gridLabelFont)
		s.FillText(line.Label(), 10, line.Y-2)
		s.Restore()
	}

	for _, bar := range plan.Bars {
		DrawBar(s, bar.X, bar.Y, bar.Width(), bar.Height(), bar.Color)
	}
	c.regions = plan.Bars

	s.Save()
	s.SetTextBaseline(BaselineBottom)
	s.SetTextAlign(AlignCenter)
	s.SetFillColor(titleColor)
	s.SetFont(titleFont)
	s.FillText(c.cfg.Name, width/2, height)
	s.Restore()

	if c.cfg.Legend != nil {
		c.cfg.Legend.ReplaceEntries(plan.Legend)
	}
	return nil
}
