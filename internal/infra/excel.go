package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
)

// WriteBOMExcel writes the consolidated material list for a project to an
// xlsx workbook at path. One row per position, ready for the supplier.
func WriteBOMExcel(path, projectName string, items []reconcile.BOMItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("excel: create storage dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Stückliste"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("excel: new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", "Projekt")
	f.SetCellValue(sheet, "B1", projectName)

	headers := []string{"Material", "Bezeichnung", "Hersteller", "Menge", "Einheit", "VPE", "Gebinde", "Konfiguriert", "Manuell"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}

	for row, item := range items {
		values := []interface{}{
			item.MaterialID,
			item.Description,
			item.Manufacturer,
			item.Quantity,
			item.Unit,
			item.ItemsPerUnit,
			item.TotalUnits,
			item.IsConfigured,
			item.IsManual,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+4)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel: write %s: %w", path, err)
	}
	return nil
}
