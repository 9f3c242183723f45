// Package export writes list screens out as CSV or XLSX.
package export

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const columnWidth = 18

// ContentType returns the MIME type of a format
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// CSV writes a header line followed by rows
func CSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "write csv rows")
	}
	return nil
}

// Excel writes a single-sheet workbook with a bold, shaded header row
func Excel(w io.Writer, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "name sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "header style")
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.Wrap(err, "write header")
	}
	if len(headers) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(headers))
		if err != nil {
			return errors.Wrap(err, "header range")
		}
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
			return errors.Wrap(err, "style header")
		}
		if err := f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
			return errors.Wrap(err, "column width")
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}

	return errors.Wrap(f.Write(w), "write workbook")
}
