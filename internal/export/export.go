// Package export turns an in-memory row collection into a downloadable
// CSV or spreadsheet file. Pure transforms; the only side effect is the
// caller streaming the result.
package export

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is a tabular export: fixed column order, one output row per input
// row. Filename is the fixed download name per entity type, without
// extension.
type Sheet struct {
	Name     string
	Filename string
	Headers  []string
	Rows     [][]string
}

// Append adds one row.
func (s *Sheet) Append(row ...string) {
	s.Rows = append(s.Rows, row)
}

// WriteCSV writes the sheet as CSV. encoding/csv handles embedded
// delimiters, quotes and newlines.
func (s *Sheet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Headers); err != nil {
		return err
	}
	for _, row := range s.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the sheet as a single-sheet workbook, headers in row 1.
func (s *Sheet) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", s.Name); err != nil {
		return err
	}
	if err := writeRow(f, s.Name, 1, s.Headers); err != nil {
		return err
	}
	for i, row := range s.Rows {
		if err := writeRow(f, s.Name, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
