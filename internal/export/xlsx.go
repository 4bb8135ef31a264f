package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a workbook with one sheet per table. Decimal cells are
// stored as numbers.
func WriteXLSX(w io.Writer, tables ...Table) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return err
		}

		header := make([]any, len(t.Header))
		for j, h := range t.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
			return err
		}

		for r, row := range t.Rows {
			cells := make([]any, len(row))
			for j, v := range row {
				if d, ok := v.(decimal.Decimal); ok {
					cells[j] = d.InexactFloat64()
				} else {
					cells[j] = v
				}
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.Name, cell, &cells); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", t.Name, r+2, err)
			}
		}
	}

	return f.Write(w)
}
