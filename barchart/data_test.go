package barchart

import (
	"errors"
	"math"
	"testing"
)

func TestDataKeepsInsertionOrder(t *testing.T) {
	d := mustData("zeta", 1, "alpha", 2, "mid", 3)
	if err := d.Set("zeta", 9); err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	entries := d.Entries()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Category != want[i] {
			t.Errorf("[%d] expected category %q, got %q", i, want[i], e.Category)
		}
	}
	if got, _ := d.Get("zeta"); got.Value != 9 {
		t.Errorf("expected updated value 9, got %v", got.Value)
	}
	if d.Max() != 9 {
		t.Errorf("expected max 9, got %v", d.Max())
	}
}

func TestDataRejectsInvalidValues(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		d := NewData()
		if err := d.Set("x", v); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue for %v, got %v", v, err)
		}
		if d.Len() != 0 {
			t.Errorf("expected rejected value %v not to be stored", v)
		}
	}
}

func TestEntryString(t *testing.T) {
	for _, tc := range []struct {
		entry Entry
		want  string
	}{
		{entry: Entry{Category: "A", Value: 10}, want: "A (10)"},
		{entry: Entry{Category: "B", Value: 2.5}, want: "B (2.5)"},
		{entry: Entry{Category: "Y", Value: 90, Label: "90.00"}, want: "Y (90.00)"},
	} {
		if got := tc.entry.String(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestNilDataIsEmpty(t *testing.T) {
	var d *Data
	if d.Len() != 0 || d.Entries() != nil || d.Max() != 0 {
		t.Errorf("expected nil data to behave as empty")
	}
	if _, ok := d.Get("x"); ok {
		t.Errorf("expected lookup in nil data to fail")
	}
}
