// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// sheetName is the worksheet holding the report rows.
const sheetName = "Papers"

// WriteXLSX writes the report as a single-sheet workbook with the same
// header and rows as WriteCSV.
func WriteXLSX(w io.Writer, records []types.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setRow(f, 1, types.Fields); err != nil {
		return err
	}
	for i, r := range records {
		if err := setRow(f, i+2, r.Values()); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	return nil
}

// ReadXLSX loads the rows of a workbook written by WriteXLSX.
func ReadXLSX(r io.Reader) ([]types.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading sheet %s: missing header", sheetName)
	}
	records := make([]types.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, types.RecordFromValues(row))
	}
	return records, nil
}
