package barchart

import (
	"errors"
	"testing"

	"gioui.org/f32"
)

func newTestChart(t *testing.T, d *Data, colors ...string) (*Chart, *fakeSurface, *fakeSurface, *Legend) {
	t.Helper()
	palette, err := ParsePalette(colors...)
	if err != nil {
		t.Fatalf("failed parsing palette: %v", err)
	}
	surface := newFake(300, 300)
	tip := newFake(100, 25)
	legend := &Legend{}
	c, err := New(Config{
		Name:    "Porcentaje de similitud",
		Data:    d,
		Colors:  palette,
		Surface: surface,
		Tooltip: tip,
		Legend:  legend,
	})
	if err != nil {
		t.Fatalf("expected chart construction to succeed, got %v", err)
	}
	return c, surface, tip, legend
}

func TestNewValidatesConfig(t *testing.T) {
	palette, _ := ParsePalette("red")
	for _, tc := range []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "no surface", cfg: Config{Data: mustData("a", 1), Colors: palette, Tooltip: newFake(1, 1)}, want: ErrNoSurface},
		{name: "no tooltip", cfg: Config{Data: mustData("a", 1), Colors: palette, Surface: newFake(1, 1)}, want: ErrNoSurface},
		{name: "nil data", cfg: Config{Colors: palette, Surface: newFake(1, 1), Tooltip: newFake(1, 1)}, want: ErrEmptyData},
		{name: "all zero", cfg: Config{Data: mustData("a", 0, "b", 0), Colors: palette, Surface: newFake(1, 1), Tooltip: newFake(1, 1)}, want: ErrNoPositiveValue},
		{name: "no palette", cfg: Config{Data: mustData("a", 1), Surface: newFake(1, 1), Tooltip: newFake(1, 1)}, want: ErrEmptyPalette},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDrawRecordsRegionsInOrder(t *testing.T) {
	c, surface, _, legend := newTestChart(t, mustData("A", 10, "B", 20, "C", 5), "red", "green", "blue")
	if err := c.Draw(); err != nil {
		t.Fatalf("expected draw to succeed, got %v", err)
	}
	regions := c.Regions()
	if len(regions) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(regions))
	}
	if len(surface.rects) != 3 {
		t.Fatalf("expected 3 bars drawn, got %d", len(surface.rects))
	}
	for i, r := range regions {
		rect := surface.rects[i]
		if rect.x != r.X || rect.y != r.Y || rect.h != r.Height() || rect.fill != r.Color {
			t.Errorf("[%d] expected bar %+v to match region %+v", i, rect, r)
		}
	}
	// Seven grid lines: 0, 3, ... 18.
	if len(surface.lines) != 7 {
		t.Errorf("expected 7 grid lines, got %d", len(surface.lines))
	}
	for _, l := range surface.lines {
		if l.stroke != gridColor {
			t.Errorf("expected grid stroke %v, got %v", gridColor, l.stroke)
		}
	}
	title := surface.lastText()
	if title != "Porcentaje de similitud" {
		t.Errorf("expected the title to be drawn last, got %q", title)
	}
	titleCall := surface.texts[len(surface.texts)-1]
	if titleCall.x != 150 || titleCall.y != 300 || titleCall.state.align != AlignCenter || titleCall.state.baseline != BaselineBottom {
		t.Errorf("expected centered title at the bottom edge, got %+v", titleCall)
	}
	if len(legend.Entries) != 3 || legend.Entries[1].Text != "B (20)" {
		t.Errorf("expected legend entries for A, B and C, got %+v", legend.Entries)
	}
}

func TestDrawDoesNotLeakStyle(t *testing.T) {
	c, surface, _, _ := newTestChart(t, mustData("A", 10, "B", 20), "red")
	before := surface.state
	if err := c.Draw(); err != nil {
		t.Fatalf("expected draw to succeed, got %v", err)
	}
	if surface.state != before {
		t.Errorf("expected surface state %+v after draw, got %+v", before, surface.state)
	}
	if len(surface.stack) != 0 {
		t.Errorf("expected balanced save/restore, %d states left", len(surface.stack))
	}
}

func TestDrawReplacesPreviousPass(t *testing.T) {
	d := mustData("A", 10, "B", 20)
	c, _, _, legend := newTestChart(t, d, "red")
	if err := c.Draw(); err != nil {
		t.Fatalf("expected draw to succeed, got %v", err)
	}
	if err := d.Set("C", 40); err != nil {
		t.Fatalf("failed adding category: %v", err)
	}
	if err := c.Draw(); err != nil {
		t.Fatalf("expected redraw to succeed, got %v", err)
	}
	if len(c.Regions()) != 3 || len(legend.Entries) != 3 {
		t.Errorf("expected redraw to produce 3 regions and legend rows, got %d and %d", len(c.Regions()), len(legend.Entries))
	}
}

func TestLegendEntriesAreNotReused(t *testing.T) {
	d := mustData("A", 10, "B", 20)
	c, _, _, legend := newTestChart(t, d, "red")
	if err := c.Draw(); err != nil {
		t.Fatalf("expected draw to succeed, got %v", err)
	}
	held := legend.Entries
	if err := d.Set("A", 1); err != nil {
		t.Fatalf("failed updating category: %v", err)
	}
	if err := c.Draw(); err != nil {
		t.Fatalf("expected redraw to succeed, got %v", err)
	}
	if held[0].Text != "A (10)" {
		t.Errorf("expected earlier entries to stay %q, got %q", "A (10)", held[0].Text)
	}
	if legend.Entries[0].Text != "A (1)" {
		t.Errorf("expected %q, got %q", "A (1)", legend.Entries[0].Text)
	}
}

func TestDrawSmallMaximumTerminates(t *testing.T) {
	c, surface, _, _ := newTestChart(t, mustData("A", 3, "B", 1), "red")
	if err := c.Draw(); err != nil {
		t.Fatalf("expected draw to succeed, got %v", err)
	}
	if len(surface.lines) != 1 {
		t.Errorf("expected only the baseline, got %d lines", len(surface.lines))
	}
}

func TestHandlePointer(t *testing.T) {
	c, surface, tip, _ := newTestChart(t, mustData("A", 10, "B", 20, "C", 5), "red", "green", "blue")
	surface.origin = f32.Pt(100, 50)
	if err := c.Draw(); err != nil {
		t.Fatalf("expected draw to succeed, got %v", err)
	}
	regions := c.Regions()
	for i, r := range regions {
		center := f32.Pt((r.X+r.Right)/2, (r.Y+r.Bottom)/2).Add(surface.origin)
		got, ok := c.HandlePointer(center)
		if !ok || got != i {
			t.Errorf("[%d] expected hit on bar %d, got %d (%v)", i, i, got, ok)
			continue
		}
		want := c.cfg.Data.At(i).String()
		if tip.lastText() != want {
			t.Errorf("[%d] expected tooltip %q, got %q", i, want, tip.lastText())
		}
		last := tip.texts[len(tip.texts)-1]
		if last.x != 5 || last.y != 15 {
			t.Errorf("[%d] expected tooltip text at (5,15), got (%v,%v)", i, last.x, last.y)
		}
		wantPos := f32.Pt(r.X+surface.origin.X-10, r.Y+surface.origin.Y)
		if tip.placed == nil || *tip.placed != wantPos {
			t.Errorf("[%d] expected tooltip at %v, got %v", i, wantPos, tip.placed)
		}
	}
	if tip.clears != len(regions) {
		t.Errorf("expected the tooltip to be cleared once per hit, got %d", tip.clears)
	}

	// Above every bar, and exactly on an edge, nothing is hit.
	misses := []f32.Point{
		f32.Pt(150, 5).Add(surface.origin),
		f32.Pt(regions[0].X, regions[0].Bottom-1).Add(surface.origin),
		f32.Pt(150, 150),
	}
	for _, p := range misses {
		if _, ok := c.HandlePointer(p); ok {
			t.Errorf("expected %v to miss", p)
		}
		if !tip.hidden {
			t.Errorf("expected tooltip to be hidden after missing at %v", p)
		}
	}
}

func TestPointerSourceIsWired(t *testing.T) {
	c, surface, tip, _ := newTestChart(t, mustData("A", 10), "red")
	if surface.onMove == nil {
		t.Fatalf("expected the chart to register a pointer listener")
	}
	if err := c.Draw(); err != nil {
		t.Fatalf("expected draw to succeed, got %v", err)
	}
	r := c.Regions()[0]
	surface.onMove(f32.Pt(r.X+1, r.Bottom-1))
	if tip.lastText() != "A (10)" {
		t.Errorf("expected tooltip %q, got %q", "A (10)", tip.lastText())
	}
	surface.onMove(f32.Pt(-5, -5))
	if !tip.hidden {
		t.Errorf("expected tooltip to hide when the pointer leaves the bars")
	}
}

func TestHitTestBeforeDraw(t *testing.T) {
	c, _, _, _ := newTestChart(t, mustData("A", 10), "red")
	if _, ok := c.HitTest(f32.Pt(100, 200)); ok {
		t.Errorf("expected no regions before the first draw")
	}
}
