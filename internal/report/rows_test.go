package report

import (
	"strings"
	"testing"

	"weighing-receiver/internal/weighing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gramsPtr(v float64) *weighing.Grams {
	g := weighing.Grams(v)
	return &g
}

func TestBuildRowsFirstRowCarriesIngredientColumns(t *testing.T) {
	ings := []weighing.Ingredient{{
		IngredientName: "Bahan A",
		IngredientCode: "ING-001",
		TargetMass:     500,
		ToleranceMin:   gramsPtr(475),
		ToleranceMax:   gramsPtr(525),
		ExpDates: []weighing.ExpiryWeight{
			{ExpDate: "2025-12-31", ActualWeight: 300.5},
			{ExpDate: "2026-01-15", ActualWeight: 202},
		},
	}}

	rows := BuildRows(ings)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Bahan A", first.IngredientName)
	assert.Equal(t, "ING-001", first.IngredientCode)
	assert.Equal(t, "475.00", first.MinWeight)
	assert.Equal(t, "500.00", first.ScaledWeight)
	assert.Equal(t, "525.00", first.MaxWeight)
	assert.Equal(t, "300.50", first.ActualWeight)
	assert.Equal(t, "502.50", first.TotalWeight)
	assert.Equal(t, "+2.50", first.Resolution)
	assert.False(t, first.BelowTarget)

	// devam satırında sadece exp date + ağırlık olur
	cont := rows[1]
	assert.Empty(t, cont.IngredientName)
	assert.Empty(t, cont.TotalWeight)
	assert.Empty(t, cont.Resolution)
	assert.Equal(t, "2026-01-15", cont.ExpDate)
	assert.Equal(t, "202.00", cont.ActualWeight)
}

func TestBuildRowsFallbackSingleRow(t *testing.T) {
	ings := []weighing.Ingredient{{
		IngredientName:         "Bahan B",
		TargetMass:             200,
		CurrentAccumulatedMass: 200,
	}}

	rows := BuildRows(ings)
	require.Len(t, rows, 1)

	assert.Equal(t, "-", rows[0].ExpDate)
	assert.Equal(t, "200.00", rows[0].ActualWeight)
	assert.Equal(t, "+0.00", rows[0].Resolution)
	assert.Equal(t, "-", rows[0].MinWeight) // tolerans gönderilmemiş
}

func TestBuildRowsBelowTarget(t *testing.T) {
	ings := []weighing.Ingredient{{
		TargetMass: 500,
		ExpDates:   []weighing.ExpiryWeight{{ExpDate: "x", ActualWeight: 480}},
	}}

	rows := BuildRows(ings)
	require.Len(t, rows, 1)

	assert.Equal(t, "-20.00", rows[0].Resolution)
	assert.True(t, rows[0].BelowTarget)
}

func TestBuildRowsZeroWeightCellBlank(t *testing.T) {
	ings := []weighing.Ingredient{{
		ExpDates: []weighing.ExpiryWeight{{ExpDate: "30/08/2027", ActualWeight: 0}},
	}}

	rows := BuildRows(ings)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].ActualWeight)
}

func TestBuildRowsPreservesIngredientOrder(t *testing.T) {
	ings := []weighing.Ingredient{
		{IngredientName: "Z", CurrentAccumulatedMass: 1},
		{IngredientName: "A", CurrentAccumulatedMass: 2},
	}

	rows := BuildRows(ings)
	require.Len(t, rows, 2)
	assert.Equal(t, "Z", rows[0].IngredientName)
	assert.Equal(t, "A", rows[1].IngredientName)
}

func TestBuildTotals(t *testing.T) {
	ings := []weighing.Ingredient{
		{TargetMass: 600, ExpDates: []weighing.ExpiryWeight{{ExpDate: "a", ActualWeight: 599}}},
		{TargetMass: 400, ExpDates: []weighing.ExpiryWeight{{ExpDate: "b", ActualWeight: 399.5}}},
	}

	totals := BuildTotals(ings)
	require.NotNil(t, totals)

	assert.Equal(t, "1000.00", totals.Scaled)
	assert.Equal(t, "998.50", totals.Actual)
	assert.Equal(t, "-1.50", totals.Resolution)
	assert.True(t, totals.BelowTarget)
}

func TestBuildTotalsEmpty(t *testing.T) {
	assert.Nil(t, BuildTotals(nil))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "19/12/2024 08:00:00", formatDate("2024-12-19T08:00:00Z"))
	assert.Equal(t, "-", formatDate(""))
	assert.Equal(t, "-", formatDate("bozuk tarih"))
}

func TestRenderHTMLContainsRowsAndTotals(t *testing.T) {
	end := "2024-12-19T14:30:00Z"
	doc := &weighing.Document{
		WorkOrder: weighing.WorkOrder{
			WorkOrder:       "MO-2024-001",
			SKU:             "SKU-001",
			PlannedQuantity: 1500,
			OperatorName:    "John Doe",
			ProductionDate:  "2024-12-19T08:00:00Z",
			EndTime:         &end,
		},
		Ingredients: []weighing.Ingredient{{
			IngredientName: "Bahan A",
			IngredientCode: "ING-001",
			TargetMass:     500,
			ExpDates:       []weighing.ExpiryWeight{{ExpDate: "30/08/2027", ActualWeight: 502.5}},
		}},
	}

	out, err := RenderHTML(doc, Options{Title: "Report Summary Penimbangan", ShowFooter: true})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "MO-2024-001")
	assert.Contains(t, html, "Bahan A")
	assert.Contains(t, html, "+2.50")
	assert.Contains(t, html, "1500.0 g")
	assert.Contains(t, html, "Laporan ini dicetak pada")
}

func TestRenderHTMLEmptyState(t *testing.T) {
	doc := &weighing.Document{
		WorkOrder: weighing.WorkOrder{WorkOrder: "MO-EMPTY"},
	}

	out, err := RenderHTML(doc, Options{Title: "Report Summary Penimbangan"})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Tidak ada data ingredients")
	assert.NotContains(t, html, "<tfoot>")
	assert.False(t, strings.Contains(html, "Laporan ini dicetak pada"))
}

func TestRenderXLSX(t *testing.T) {
	doc := &weighing.Document{
		WorkOrder: weighing.WorkOrder{WorkOrder: "MO-X", PlannedQuantity: 100},
		Ingredients: []weighing.Ingredient{{
			IngredientName: "Bahan A",
			TargetMass:     100,
			ExpDates:       []weighing.ExpiryWeight{{ExpDate: "a", ActualWeight: 100.5}},
		}},
	}

	out, err := RenderXLSX(doc, Options{Title: "Report"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	// xlsx aslında bir zip arşividir
	assert.Equal(t, byte('P'), out[0])
	assert.Equal(t, byte('K'), out[1])
}
