package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads similarity results: a record of column names followed by a
// record holding one fractional score per column.
func ReadCSV(r io.Reader) (columns []string, values []float64, err error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	headings, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("missing column headings")
		}
		return nil, nil, fmt.Errorf("failed reading column headings: %w", err)
	}
	rec, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("missing values")
		}
		return nil, nil, fmt.Errorf("failed reading values: %w", err)
	}
	if len(rec) != len(headings) {
		return nil, nil, fmt.Errorf("got %d columns but %d values", len(headings), len(rec))
	}
	values = make([]float64, len(rec))
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("failed parsing value for %q: %w", headings[i], err)
		}
		values[i] = v
	}
	for i := range headings {
		headings[i] = strings.TrimSpace(headings[i])
	}
	return headings, values, nil
}
