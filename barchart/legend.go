package barchart

// LegendSink receives the legend of every render pass. Each call replaces
// whatever the sink held before.
type LegendSink interface {
	ReplaceEntries([]LegendEntry)
}

// Legend is an in-memory LegendSink.
type Legend struct {
	Entries []LegendEntry
}

var _ LegendSink = (*Legend)(nil)

func (l *Legend) ReplaceEntries(entries []LegendEntry) {
	l.Entries = append([]LegendEntry(nil), entries...)
}
