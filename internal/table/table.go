package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Girder/internal/analysis"
)

// Table is a loaded sheet: one header row plus string-valued data rows.
// Cells stay strings until a typed extractor asks for them.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Load reads a tabular file from r. The name only decides the decoder:
// ".csv" goes through the CSV reader, anything else is treated as a
// spreadsheet and the first sheet is used.
func Load(r io.Reader, name string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return loadCSV(r)
	}
	return loadSheet(r)
}

func loadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRecords(records)
}

func loadSheet(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return fromRecords(rows)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("file is empty or unreadable")
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &Table{Headers: headers, Rows: records[1:]}, nil
}

// Column returns the index of the header named exactly name, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

func (t *Table) cell(row []string, col int) (float64, bool) {
	if col < 0 || col >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Loads extracts the point loads from a mapped loads table. Rows whose
// cells do not parse as numbers are skipped.
func (t *Table) Loads() []analysis.Load {
	posCol := t.Column(ColPosition)
	loadCol := t.Column(ColLoad)

	var loads []analysis.Load
	for _, row := range t.Rows {
		pos, ok := t.cell(row, posCol)
		if !ok {
			continue
		}
		mag, ok := t.cell(row, loadCol)
		if !ok {
			continue
		}
		loads = append(loads, analysis.Load{Position: pos, Magnitude: mag})
	}
	return loads
}

// Samples extracts precomputed diagram points from a mapped results table.
func (t *Table) Samples() []analysis.Sample {
	xCol := t.Column(ColX)
	shearCol := t.Column(ColShear)
	momentCol := t.Column(ColMoment)

	var samples []analysis.Sample
	for _, row := range t.Rows {
		x, ok := t.cell(row, xCol)
		if !ok {
			continue
		}
		v, ok := t.cell(row, shearCol)
		if !ok {
			continue
		}
		m, ok := t.cell(row, momentCol)
		if !ok {
			continue
		}
		samples = append(samples, analysis.Sample{X: x, Shear: v, Moment: m})
	}
	return samples
}
