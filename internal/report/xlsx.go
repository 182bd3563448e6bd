package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the coverage table.
const SheetName = "Location Coverage"

// WriteXLSX writes the report as a single-sheet workbook.
func WriteXLSX(out io.Writer, rows []CoverageRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = excelize.Cell{StyleID: bold, Value: c}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("report.WriteXLSX: header: %w", err)
	}

	for i := range rows {
		cells := rows[i].cells()
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			values[j] = c
		}
		// Count column stays numeric.
		values[6] = len(rows[i].ValidWarehouses)

		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report.WriteXLSX: %w", err)
		}
		if err := sw.SetRow(axis, values); err != nil {
			return fmt.Errorf("report.WriteXLSX: row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("report.WriteXLSX: %w", err)
	}
	return nil
}

// Write dispatches on format.
func Write(out io.Writer, f Format, rows []CoverageRow) error {
	switch f {
	case FormatCSV:
		return WriteCSV(out, rows)
	case FormatXLSX:
		return WriteXLSX(out, rows)
	}
	return fmt.Errorf("report.Write: unknown format %q", f)
}
