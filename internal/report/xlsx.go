package report

import (
	"bytes"
	"fmt"

	"weighing-receiver/internal/weighing"

	"github.com/xuri/excelize/v2"
)

var xlsxHeaders = []string{
	"Nama Ingredients", "Kode Ingredients", "Exp Date",
	"Min Weight (g)", "Scaled Weight (g)", "Max Weight (g)",
	"Actual Weight (g)", "Total Weight (g)", "Resolution (g)",
}

// RenderXLSX: özet raporunu Excel dosyası olarak üretir. Satır içeriği HTML
// raporuyla aynı kaynaktan (BuildRows/BuildTotals) gelir.
func RenderXLSX(doc *weighing.Document, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := f.SetCellValue(sheet, "A1", opts.Title); err != nil {
		return nil, fmt.Errorf("rapor başlığı yazılamadı: %w", err)
	}
	f.SetCellValue(sheet, "A2", "Nomor MO")
	f.SetCellValue(sheet, "B2", doc.WorkOrder.WorkOrder)
	f.SetCellValue(sheet, "A3", "Nama SKU")
	f.SetCellValue(sheet, "B3", doc.SKU)
	f.SetCellValue(sheet, "A4", "QTY (g)")
	f.SetCellValue(sheet, "B4", doc.PlannedQuantity.Float())
	f.SetCellValue(sheet, "A5", "Tanggal Produksi")
	f.SetCellValue(sheet, "B5", formatDate(doc.ProductionDate))

	headerRow := 7
	for i, h := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	rowIdx := headerRow + 1
	for _, r := range BuildRows(doc.Ingredients) {
		values := []string{
			r.IngredientName, r.IngredientCode, r.ExpDate,
			r.MinWeight, r.ScaledWeight, r.MaxWeight,
			r.ActualWeight, r.TotalWeight, r.Resolution,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
		rowIdx++
	}

	if totals := BuildTotals(doc.Ingredients); totals != nil {
		cells := map[int]string{
			1: "Total",
			5: totals.Scaled,
			7: totals.Actual,
			8: totals.Actual,
			9: totals.Resolution,
		}
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col, rowIdx)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel dosyası yazılamadı: %w", err)
	}
	return buf.Bytes(), nil
}
