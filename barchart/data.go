package barchart

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrEmptyData       = errors.New("chart data is empty")
	ErrNoPositiveValue = errors.New("chart data has no positive value")
	ErrEmptyPalette    = errors.New("color palette is empty")
	ErrNoSurface       = errors.New("chart surface is nil")
	ErrInvalidValue    = errors.New("value must be finite and non-negative")
)

// Entry is one category of a Data set.
type Entry struct {
	Category string
	Value    float64
	// Label, when set, is shown instead of the formatted Value.
	Label string
}

// ValueText returns the text used to present the entry's value.
func (e Entry) ValueText() string {
	if e.Label != "" {
		return e.Label
	}
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

// String returns "<category> (<value>)".
func (e Entry) String() string {
	return e.Category + " (" + e.ValueText() + ")"
}

// Data maps category names to values while remembering the order in which
// categories were first inserted. Bars, legend entries and tooltips all
// follow that order.
type Data struct {
	entries []Entry
	index   map[string]int
}

// NewData returns an empty Data.
func NewData() *Data {
	return &Data{index: make(map[string]int)}
}

// Set stores value under category. A category that is already present keeps
// its position.
func (d *Data) Set(category string, value float64) error {
	return d.SetLabeled(category, value, "")
}

// SetLabeled is like Set, but label is displayed in place of the value.
func (d *Data) SetLabeled(category string, value float64, label string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("category %q: %w", category, ErrInvalidValue)
	}
	if d.index == nil {
		d.index = make(map[string]int)
	}
	entry := Entry{Category: category, Value: value, Label: label}
	if i, ok := d.index[category]; ok {
		d.entries[i] = entry
		return nil
	}
	d.index[category] = len(d.entries)
	d.entries = append(d.entries, entry)
	return nil
}

// Get returns the entry stored for category.
func (d *Data) Get(category string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	i, ok := d.index[category]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// At returns the i'th entry in insertion order.
func (d *Data) At(i int) Entry {
	return d.entries[i]
}

// Len returns the number of categories.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns a copy of the entries in insertion order.
func (d *Data) Entries() []Entry {
	if d == nil {
		return nil
	}
	return append([]Entry(nil), d.entries...)
}

// Max returns the largest value, or zero when d is empty.
func (d *Data) Max() float64 {
	var maximum float64
	for i, e := range d.Entries() {
		if i == 0 || e.Value > maximum {
			maximum = e.Value
		}
	}
	return maximum
}
