// Package tabular provides the in-memory frame the pipeline stages exchange,
// plus CSV persistence for it.
package tabular

import (
	"fmt"
	"strconv"
)

// Missing is the standard missing-value marker inside a frame. Ingestion
// normalizes store-specific sentinels (e.g. "na") to it.
const Missing = ""

// Frame is an ordered set of equally sized string columns. Values are kept
// verbatim so a frame read from CSV writes back byte-equal rows.
type Frame struct {
	cols []string
	data map[string][]string
	rows int
}

// New creates an empty frame with the given column order. Duplicate column
// names are rejected since the data map is keyed by name.
func New(cols []string) (*Frame, error) {
	data := make(map[string][]string, len(cols))
	for _, c := range cols {
		if _, ok := data[c]; ok {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		data[c] = nil
	}
	return &Frame{cols: append([]string(nil), cols...), data: data}, nil
}

// Columns returns the column names in declaration order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]string, bool) {
	col, ok := f.data[name]
	return col, ok
}

// HasColumn reports whether the frame contains the named column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.data[name]
	return ok
}

// AppendRow appends one value per column, in column order.
func (f *Frame) AppendRow(values []string) error {
	if len(values) != len(f.cols) {
		return fmt.Errorf("row has %d values, frame has %d columns", len(values), len(f.cols))
	}
	for i, c := range f.cols {
		f.data[c] = append(f.data[c], values[i])
	}
	f.rows++
	return nil
}

// Row returns the i-th row in column order.
func (f *Frame) Row(i int) []string {
	row := make([]string, len(f.cols))
	for j, c := range f.cols {
		row[j] = f.data[c][i]
	}
	return row
}

// DropColumn removes the named column if present.
func (f *Frame) DropColumn(name string) {
	if _, ok := f.data[name]; !ok {
		return
	}
	delete(f.data, name)
	for i, c := range f.cols {
		if c == name {
			f.cols = append(f.cols[:i], f.cols[i+1:]...)
			break
		}
	}
}

// Select builds a new frame containing the given rows, in the given order.
func (f *Frame) Select(rows []int) *Frame {
	out, _ := New(f.cols)
	for _, i := range rows {
		_ = out.AppendRow(f.Row(i))
	}
	return out
}

// Replace rewrites every cell equal to old with new, across all columns.
func (f *Frame) Replace(old, new string) {
	for _, c := range f.cols {
		col := f.data[c]
		for i, v := range col {
			if v == old {
				col[i] = new
			}
		}
	}
}

// Numeric returns the parseable float64 values of the named column with
// missing values dropped, preserving row order. Cells that are present but
// not numeric are dropped as well, matching the missing treatment.
func (f *Frame) Numeric(name string) []float64 {
	col, ok := f.data[name]
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if v == Missing {
			continue
		}
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		out = append(out, num)
	}
	return out
}
