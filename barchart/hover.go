package barchart

import "gioui.org/f32"

const (
	// tooltipLeftShift moves the tooltip left of the hovered bar's edge.
	tooltipLeftShift = 10
	tooltipTextX     = 5
	tooltipTextY     = 15
)

// HitTest returns the index of the first bar region strictly containing the
// surface-local point p.
func (c *Chart) HitTest(p f32.Point) (int, bool) {
	for i, r := range c.regions {
		if r.Contains(p.X, p.Y) {
			return i, true
		}
	}
	return -1, false
}

// HandlePointer reacts to the pointer moving to p, given in the coordinate
// space of the canvas origin. The tooltip shows the bar under the pointer,
// or is hidden when there is none.
func (c *Chart) HandlePointer(p f32.Point) (int, bool) {
	origin := c.cfg.Surface.Origin()
	i, ok := c.HitTest(p.Sub(origin))
	tip := c.cfg.Tooltip
	if !ok || i >= c.cfg.Data.Len() {
		tip.Hide()
		return -1, false
	}
	r := c.regions[i]
	tip.Place(f32.Pt(r.X+origin.X-tooltipLeftShift, r.Y+origin.Y))
	size := tip.Size()
	tip.ClearRect(0, 0, float32(size.X), float32(size.Y))
	tip.FillText(c.cfg.Data.At(i).String(), tooltipTextX, tooltipTextY)
	return i, true
}
