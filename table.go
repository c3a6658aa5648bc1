package xfin

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned when no row of a broker export looks like a
// holdings header.
var ErrNoHeader = errors.New("no stock data header found")

// ErrNoUsableColumns is returned when a table resolves neither an identity
// column (name, symbol or ISIN) nor any value source. It is distinct from a
// valid but empty portfolio, which ingests into zero holdings.
var ErrNoUsableColumns = errors.New("no usable name or value columns")

// headerIndicators mark the row of a broker export that carries the actual
// column headers; brokers routinely prepend account summaries and legal
// boilerplate before it.
var headerIndicators = []string{
	"Stock Name", "stock name", "STOCK NAME",
	"Symbol",
	"Name of Security", "Security Name", "Company Name",
	"Scrip/Contract",
}

// Row is a single data row, keyed by original column name.
type Row map[string]string

// Table is an ordered sequence of rows with named columns, the shape the
// ingester works on. It makes no assumption about the header set.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable builds a table from a header and raw records. Records are trimmed
// to the header length; records shorter than the header are dropped.
func NewTable(columns []string, records [][]string) *Table {
	t := &Table{Columns: columns}
	for _, rec := range records {
		if len(rec) < len(columns) {
			continue
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = strings.TrimSpace(rec[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// NumericColumns returns the columns that hold numeric data: at least one
// non-blank cell, and every non-blank cell strictly parseable as a number
// (after currency and separator stripping).
func (t *Table) NumericColumns() []string {
	var numeric []string
	for _, col := range t.Columns {
		seen := false
		ok := true
		for _, row := range t.Rows {
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			if _, parses := parseStrict(cell); !parses {
				ok = false
				break
			}
			seen = true
		}
		if seen && ok {
			numeric = append(numeric, col)
		}
	}
	return numeric
}

// ParseBrokerCSV recovers a table from a broker CSV export.
//
// The header row is located by scanning for well-known holdings headers,
// skipping whatever account summary the broker put above it. Data rows are
// read leniently (ragged quoting, trailing commas); blank rows and footer
// rows whose leading cells are all empty are discarded.
func ParseBrokerCSV(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read broker export: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	headerIdx := -1
	for i, line := range lines {
		for _, indicator := range headerIndicators {
			if strings.Contains(line, indicator) {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrNoHeader
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read data row: %w", err)
		}
		if isNoiseRow(rec) {
			continue
		}
		if len(rec) > len(header) {
			rec = rec[:len(header)]
		}
		records = append(records, rec)
	}

	t := NewTable(header, records)
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows after header", ErrNoHeader)
	}
	return t, nil
}

// isNoiseRow reports whether a record is a blank or footer row. Broker
// exports end with summary lines shaped like ",,,Total,..." so a row whose
// leading cells are all empty is treated as noise.
func isNoiseRow(rec []string) bool {
	any := false
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			any = true
			break
		}
	}
	if !any {
		return true
	}
	lead := 0
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			break
		}
		lead++
	}
	return lead >= 3
}
