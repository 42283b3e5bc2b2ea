// Package tabular reads delimited and spreadsheet tables from local disk, Google Cloud Storage, or the web.
package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/tealeg/xlsx"
)

// ColumnNotFoundError is returned when a table has no column with the requested header.
type ColumnNotFoundError struct {
	Column string
	Header []string
}

func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' not found in header [%s]", e.Column, strings.Join(e.Header, ", "))
}

// Table is a header row followed by data rows. Every row has exactly as many cells as the header.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a table, padding short rows with empty cells and dropping cells past the header width.
// When a header name is repeated, the first column with that name is the one looked up.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{
		Header: make([]string, len(header)),
		Rows:   make([][]string, len(rows)),
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		t.Header[i] = h
		if _, ok := t.index[h]; !ok {
			t.index[h] = i
		}
	}
	for i, row := range rows {
		r := make([]string, len(header))
		copy(r, row)
		t.Rows[i] = r
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the header contains the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the cells of the named column, one per data row.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, ColumnNotFoundError{Column: name, Header: t.Header}
	}
	col := make([]string, len(t.Rows))
	for j, row := range t.Rows {
		col[j] = row[i]
	}
	return col, nil
}

// ReadCSV reads a comma-separated table whose first record is the header.
// Rows may be ragged.
func ReadCSV(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: error reading header: %w", err)
	}
	rows := make([][]string, 0)
	for {
		record, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: error reading row %d: %w", len(rows)+1, err)
		}
		if isBlank(record) {
			continue
		}
		rows = append(rows, record)
	}
	return NewTable(header, rows), nil
}

// ReadXLSX reads the first sheet of an Excel workbook. The first row is the header.
func ReadXLSX(slurp []byte) (*Table, error) {
	xl, err := xlsx.OpenBinary(slurp)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: %w", err)
	}
	if len(xl.Sheets) == 0 {
		return nil, fmt.Errorf("ReadXLSX: workbook has no sheets")
	}

	sheet := xl.Sheets[0]
	log.Printf("Reading sheet name: %s", sheet.Name)

	var header []string
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for icol, cell := range row.Cells {
			if cell != nil {
				cells[icol] = cell.Value
			}
		}
		if isBlank(cells) {
			continue
		}
		if header == nil {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}
	if header == nil {
		return nil, fmt.Errorf("ReadXLSX: sheet '%s' is empty", sheet.Name)
	}
	return NewTable(header, rows), nil
}

// Read opens a location with the given Opener and parses it as a table.
// Locations ending in .xlsx are read as Excel workbooks; everything else is read as CSV.
func Read(ctx context.Context, o Opener, location string) (*Table, error) {
	r, err := o.Open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("Read: failed to open '%s': %w", location, err)
	}
	defer r.Close()

	var t *Table
	switch Ext(location) {
	case "xlsx":
		slurp, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("Read: failed to read '%s': %w", location, err)
		}
		t, err = ReadXLSX(slurp)
		if err != nil {
			return nil, fmt.Errorf("Read: '%s': %w", location, err)
		}
	default:
		t, err = ReadCSV(r)
		if err != nil {
			return nil, fmt.Errorf("Read: '%s': %w", location, err)
		}
	}
	log.Printf("Read %d rows from %s", t.Len(), location)
	return t, nil
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
