// Package export writes parsed tables to external formats.
package export

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/csvtab/csvtab/pkg/table"
)

// WriteXLSX writes tbl to an XLSX workbook at path, one record per
// sheet row. Each workbook gets a unique document identifier so
// repeated exports of the same source stay distinguishable downstream.
func WriteXLSX(tbl table.Table, path, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	for r, rec := range tbl {
		for c, cell := range rec {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to map cell (%d,%d): %w", r, c, err)
			}
			if err := f.SetCellValue(sheet, axis, cell); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", axis, err)
			}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Identifier: uuid.New().String(),
		Creator:    "csvtab",
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
