package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"mcqgen/internal/mcq"
)

// SheetName is the single worksheet holding the generated questions.
const SheetName = "MCQs"

// Filename is the attachment name for the downloaded workbook.
const Filename = "generated_mcqs.xlsx"

// ContentType is the MIME type of the workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook serializes records into an in-memory XLSX workbook with one
// sheet. The first column is a 1-based sequence number; the remaining
// columns follow mcq.Columns for the given option count.
func Workbook(records []mcq.Record, numOptions int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	headers := append([]string{"S.No"}, mcq.Columns(numOptions)...)
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range records {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("row cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, i+1); err != nil {
			return nil, fmt.Errorf("write sequence number: %w", err)
		}
		for col, val := range r.Values(numOptions) {
			cell, err := excelize.CoordinatesToCellName(col+2, row)
			if err != nil {
				return nil, fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, val); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
