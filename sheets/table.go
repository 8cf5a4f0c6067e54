package sheets

import (
	"encoding/json"
	"strings"
	"time"
)

// TimestampSuffix marks columns whose values are parsed as timestamps.
const TimestampSuffix = "_at"

// timestampLayouts are tried in order when parsing a timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// A Value is one materialized cell: raw text, or a parsed timestamp
// when the column follows the timestamp naming convention and the text
// parses. Text always holds the original cell text, so a malformed date
// in a timestamp column survives a read unchanged.
type Value struct {
	Text   string
	Time   time.Time
	IsTime bool
}

func (v Value) String() string {
	if v.IsTime {
		return v.Time.Format(time.RFC3339)
	}
	return v.Text
}

// MarshalJSON encodes a timestamp value as RFC 3339 and a text value as
// a plain string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsTime {
		return json.Marshal(v.Time)
	}
	return json.Marshal(v.Text)
}

// A Record maps header names to the values of one data row. When two
// headers share text, the later column's value wins: record views hold
// a single key per name.
type Record map[string]Value

// Records materializes a raw grid into one Record per data row. Row 0
// is the header row; a grid with no data rows yields nil.
func Records(g Grid) []Record {
	if len(g) == 0 {
		return nil
	}
	headers := g[0]
	recs := make([]Record, 0, len(g)-1)
	for _, row := range g[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rec[h] = materializeCell(h, cell)
		}
		recs = append(recs, rec)
	}
	return recs
}

func materializeCell(header, cell string) Value {
	if !strings.HasSuffix(header, TimestampSuffix) {
		return Value{Text: cell}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return Value{Text: cell, Time: t, IsTime: true}
		}
	}
	// Text that fails to parse stays text, so one bad cell cannot
	// poison a whole read.
	return Value{Text: cell}
}

// A Table is the column-oriented view of a materialized grid. Column
// order follows the header row; row order follows the grid. Typing
// rules are the same as Records.
type Table struct {
	headers []string
	columns [][]Value
	rows    int
}

// NewTable materializes a grid into a Table. An empty or header-only
// grid yields a table with zero rows; the headers remain available.
func NewTable(g Grid) *Table {
	t := &Table{}
	if len(g) == 0 {
		return t
	}
	t.headers = append([]string(nil), g[0]...)
	t.columns = make([][]Value, len(t.headers))
	t.rows = len(g) - 1
	for i, h := range t.headers {
		col := make([]Value, 0, t.rows)
		for _, row := range g[1:] {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			col = append(col, materializeCell(h, cell))
		}
		t.columns[i] = col
	}
	return t
}

// Headers returns the column names in order.
func (t *Table) Headers() []string { return t.headers }

// Len returns the number of data rows.
func (t *Table) Len() int { return t.rows }

// Column returns the values of the first column with the given header
// text and whether such a column exists.
func (t *Table) Column(name string) ([]Value, bool) {
	for i, h := range t.headers {
		if h == name {
			return t.columns[i], true
		}
	}
	return nil, false
}

// ColumnAt returns the values of the column at index i.
func (t *Table) ColumnAt(i int) []Value { return t.columns[i] }

// Row returns data row i ordered like Headers.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for c := range t.columns {
		row[c] = t.columns[c][i]
	}
	return row
}
