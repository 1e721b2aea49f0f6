package infra

// pdf.go — BOM export rendering using go-pdf/fpdf. Produces an A4
// portrait list with a project header and one row per consolidated
// material: code, description, quantity, units to order.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
)

// WriteBOMPDF renders the consolidated material list for a project to path.
func WriteBOMPDF(path, projectName string, items []reconcile.BOMItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("pdf: create storage dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// CP1252 covers the German umlauts in descriptions
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Stückliste"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr("Projekt: "+projectName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, time.Now().Format("02.01.2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.16 // material code
	col2 := contentW * 0.44 // description
	col3 := contentW * 0.14 // quantity
	col4 := contentW * 0.12 // unit
	col5 := contentW * 0.14 // units to order

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Material", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Bezeichnung", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Menge", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Einheit", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 6, "Gebinde", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, item := range items {
		desc := item.Description
		if len(desc) > 52 {
			desc = desc[:51] + "…"
		}
		pdf.CellFormat(col1, 5, tr(item.MaterialID), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, tr(desc), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, tr(item.Unit), "", 0, "L", false, 0, "")
		pdf.CellFormat(col5, 5, fmt.Sprintf("%d", item.TotalUnits), "", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d Positionen", len(items)), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: write %s: %w", path, err)
	}
	return nil
}
