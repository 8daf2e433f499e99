package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"weighing-receiver/internal/config"
	"weighing-receiver/internal/weighing"
)

// Options: rapor çıktısını etkileyen ayarlar. Eski sistemde bu ayarlar
// tarayıcıda örtük tutuluyordu; burada config'ten açık olarak geçirilir.
type Options struct {
	Title      string
	ShowFooter bool
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Title:      cfg.ReportTitle,
		ShowFooter: cfg.ReportShowFooter,
	}
}

type view struct {
	Title           string
	WorkOrder       weighing.WorkOrder
	PlannedQuantity string
	ProductionDate  string
	EndTime         string
	Rows            []Row
	Totals          *Totals
	ShowFooter      bool
	PrintedAt       string
}

// RenderHTML: work order özet raporunu yazdırılabilir A4 HTML olarak üretir.
// Tablo içeriği BuildRows/BuildTotals'tan gelir, başka hesap yapılmaz.
func RenderHTML(doc *weighing.Document, opts Options) ([]byte, error) {
	v := view{
		Title:           opts.Title,
		WorkOrder:       doc.WorkOrder,
		PlannedQuantity: fmt.Sprintf("%.1f g", doc.PlannedQuantity.Float()),
		ProductionDate:  formatDate(doc.ProductionDate),
		Rows:            BuildRows(doc.Ingredients),
		Totals:          BuildTotals(doc.Ingredients),
		ShowFooter:      opts.ShowFooter,
		PrintedAt:       time.Now().Format("02/01/2006 15:04:05"),
	}
	if doc.EndTime != nil {
		v.EndTime = formatDate(*doc.EndTime)
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("rapor şablonu çalıştırılamadı: %w", err)
	}
	return buf.Bytes(), nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}} - {{.WorkOrder.WorkOrder}}</title>
<style>
@page { size: A4; margin: 15mm 10mm; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; font-size: 11pt; color: #1f2937; line-height: 1.4; }
.print-header { margin-bottom: 20px; padding-bottom: 15px; border-bottom: 2px solid #1f2937; }
.print-title { font-size: 18pt; font-weight: bold; margin-bottom: 10px; }
.print-info { display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 20px; margin-top: 15px; padding: 12px; background-color: #f9fafb; border-radius: 6px; border: 1px solid #e5e7eb; }
.print-info-label { font-size: 9pt; color: #6b7280; margin-bottom: 4px; font-weight: 500; }
.print-info-value { font-size: 12pt; font-weight: 600; }
.print-meta { margin-top: 10px; font-size: 9pt; color: #6b7280; }
.print-table { width: 100%; border-collapse: collapse; font-size: 10pt; margin-top: 20px; }
.print-table thead th { padding: 10px 8px; text-align: left; font-weight: 600; background-color: #f3f4f6; border-bottom: 2px solid #d1d5db; }
.print-table thead th.num, .print-table td.num { text-align: right; }
.print-table tbody td { padding: 8px; border-bottom: 1px solid #f3f4f6; }
.print-table tfoot td { padding: 12px 8px; font-weight: 700; border-top: 2px solid #d1d5db; background-color: #f9fafb; }
.ok { color: #059669; font-weight: 600; }
.alert { color: #dc2626; font-weight: 600; }
.muted { color: #6b7280; }
.empty { padding: 20px; text-align: center; color: #9ca3af; }
.print-footer { margin-top: 30px; padding-top: 15px; border-top: 1px solid #e5e7eb; font-size: 9pt; color: #9ca3af; text-align: center; }
@media print { body { print-color-adjust: exact; -webkit-print-color-adjust: exact; } .print-table tbody tr { page-break-inside: avoid; } }
</style>
</head>
<body>
<div class="print-header">
  <div class="print-title">{{.Title}}</div>
  <div class="print-info">
    <div><div class="print-info-label">Nomor MO</div><div class="print-info-value">{{.WorkOrder.WorkOrder}}</div></div>
    <div><div class="print-info-label">Nama SKU</div><div class="print-info-value">{{if .WorkOrder.SKU}}{{.WorkOrder.SKU}}{{else}}-{{end}}</div></div>
    <div><div class="print-info-label">QTY</div><div class="print-info-value">{{.PlannedQuantity}}</div></div>
  </div>
  <div class="print-meta">
    <div><strong>Formula:</strong> {{if .WorkOrder.FormulationName}}{{.WorkOrder.FormulationName}}{{else}}-{{end}}</div>
    <div><strong>Tanggal Produksi:</strong> {{.ProductionDate}}</div>
    {{if .WorkOrder.OperatorName}}<div><strong>Operator:</strong> {{.WorkOrder.OperatorName}}</div>{{end}}
    {{if .EndTime}}<div><strong>Tanggal Selesai:</strong> {{.EndTime}}</div>{{end}}
  </div>
</div>
<table class="print-table">
  <thead>
    <tr>
      <th>Nama Ingredients</th>
      <th>Kode Ingredients</th>
      <th>Exp Date</th>
      <th class="num">Min Weight (g)</th>
      <th class="num">Scaled Weight (g)</th>
      <th class="num">Max Weight (g)</th>
      <th class="num">Actual Weight (g)</th>
      <th class="num">Total Weight (g)</th>
      <th class="num">Resolution (g)</th>
    </tr>
  </thead>
  <tbody>
    {{if .Rows}}{{range .Rows}}
    <tr>
      <td>{{.IngredientName}}</td>
      <td class="muted">{{.IngredientCode}}</td>
      <td>{{.ExpDate}}</td>
      <td class="num muted">{{.MinWeight}}</td>
      <td class="num">{{.ScaledWeight}}</td>
      <td class="num muted">{{.MaxWeight}}</td>
      <td class="num ok">{{.ActualWeight}}</td>
      <td class="num ok">{{.TotalWeight}}</td>
      <td class="num {{if .BelowTarget}}alert{{else}}ok{{end}}">{{.Resolution}}</td>
    </tr>
    {{end}}{{else}}
    <tr><td colspan="9" class="empty">Tidak ada data ingredients</td></tr>
    {{end}}
  </tbody>
  {{if .Totals}}
  <tfoot>
    <tr>
      <td colspan="2">Total</td>
      <td></td>
      <td></td>
      <td class="num">{{.Totals.Scaled}}</td>
      <td></td>
      <td class="num ok">{{.Totals.Actual}}</td>
      <td class="num ok">{{.Totals.Actual}}</td>
      <td class="num {{if .Totals.BelowTarget}}alert{{else}}ok{{end}}">{{.Totals.Resolution}}</td>
    </tr>
  </tfoot>
  {{end}}
</table>
{{if .ShowFooter}}
<div class="print-footer">
  <div>Laporan ini dicetak pada: {{.PrintedAt}}</div>
  <div>Work Order: {{.WorkOrder.WorkOrder}}</div>
</div>
{{end}}
</body>
</html>
`))
