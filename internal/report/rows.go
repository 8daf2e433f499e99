package report

import (
	"fmt"
	"time"

	"weighing-receiver/internal/weighing"
)

// Row: rapor tablosunun tek satırı. Bir ingredient'ın ilk satırı isim, kod,
// tolerans, toplam ve resolution değerlerini taşır; devam satırları sadece
// exp date ve o tarihe ait ağırlığı gösterir.
type Row struct {
	IngredientName string
	IngredientCode string
	ExpDate        string
	MinWeight      string
	ScaledWeight   string
	MaxWeight      string
	ActualWeight   string
	TotalWeight    string
	Resolution     string
	BelowTarget    bool
}

// Totals: tablo altındaki toplam satırı.
type Totals struct {
	Scaled      string
	Actual      string
	Resolution  string
	BelowTarget bool
}

func fmtWeight(v float64) string { return fmt.Sprintf("%.2f", v) }

// fmtResolution: işaret her zaman yazılır, 0 ve üstü "+" alır
func fmtResolution(v float64) string {
	if v >= 0 {
		return "+" + fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func fmtTolerance(v *weighing.Grams) string {
	if v == nil {
		return "-"
	}
	return fmtWeight(v.Float())
}

// BuildRows: ingredient listesini rapor satırlarına açar. Satır ve ingredient
// sırası giriş sırasıdır; interaktif tablo ile print çıktısı aynı satır
// setini kullanır.
func BuildRows(ingredients []weighing.Ingredient) []Row {
	var rows []Row

	for _, ing := range ingredients {
		sum := weighing.AggregateIngredient(ing)

		for i, exp := range sum.Rows {
			row := Row{ExpDate: exp.ExpDate}

			// ağırlığı 0 olan hücre boş bırakılır
			if w := exp.ActualWeight.Float(); w > 0 {
				row.ActualWeight = fmtWeight(w)
			}

			if i == 0 {
				row.IngredientName = ing.IngredientName
				row.IngredientCode = ing.IngredientCode
				if row.IngredientName == "" {
					row.IngredientName = "-"
				}
				if row.IngredientCode == "" {
					row.IngredientCode = "-"
				}
				row.MinWeight = fmtTolerance(ing.ToleranceMin)
				row.MaxWeight = fmtTolerance(ing.ToleranceMax)
				row.ScaledWeight = fmtWeight(ing.TargetMass.Float())
				row.TotalWeight = fmtWeight(sum.TotalActual)
				row.Resolution = fmtResolution(sum.Variance)
				row.BelowTarget = sum.Variance < 0
			}

			rows = append(rows, row)
		}
	}

	return rows
}

// BuildTotals: emir toplamlarını rapor görünümüne çevirir. Ingredient yoksa
// nil döner, şablon boş durum mesajı basar.
func BuildTotals(ingredients []weighing.Ingredient) *Totals {
	t := weighing.AggregateWorkOrder(ingredients)
	if t == nil {
		return nil
	}
	return &Totals{
		Scaled:      fmtWeight(t.ScaledTotal),
		Actual:      fmtWeight(t.ActualTotal),
		Resolution:  fmtResolution(t.VarianceTotal),
		BelowTarget: t.VarianceTotal < 0,
	}
}

// formatDate: ISO-8601 tarihi rapor formatına çevirir, çözümlenemeyen
// değerler "-" olur.
func formatDate(iso string) string {
	if iso == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "-"
	}
	return t.Format("02/01/2006 15:04:05")
}
