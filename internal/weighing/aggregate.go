package weighing

// IngredientSummary: tek bir ingredient için hesaplanan tartım özeti.
// Rows render edilecek satır seti (giriş sırası korunur), Variance işaretli
// sapma: >= 0 hedefin üstünde/hedefte, < 0 hedefin altında.
type IngredientSummary struct {
	Rows        []ExpiryWeight
	TotalActual float64
	Variance    float64
}

// AggregateIngredient: bir ingredient'ın exp date satırlarını ve toplamını
// hesaplar. exp_dates boşsa current_accumulated_mass "-" etiketiyle tek
// satır olarak kullanılır; ikisi aynı anda asla toplanmaz. Pure fonksiyon.
func AggregateIngredient(ing Ingredient) IngredientSummary {
	rows := ing.ExpDates
	if len(rows) == 0 {
		rows = []ExpiryWeight{{ExpDate: "-", ActualWeight: ing.CurrentAccumulatedMass}}
	}

	total := 0.0
	for _, r := range rows {
		total += r.ActualWeight.Float()
	}

	return IngredientSummary{
		Rows:        rows,
		TotalActual: total,
		Variance:    total - ing.TargetMass.Float(),
	}
}

// WorkOrderTotals: emir bazında toplamlar. Scaled hedef ağırlıkların,
// Actual tartılan ağırlıkların toplamı.
type WorkOrderTotals struct {
	ScaledTotal   float64 `json:"scaled_total"`
	ActualTotal   float64 `json:"actual_total"`
	VarianceTotal float64 `json:"variance_total"`
}

// AggregateWorkOrder: ingredient listesini emir toplamlarına indirger.
// Liste boşsa nil döner (sıfır değerli emirle "veri yok" durumu ayrışsın
// diye). Ingredient'lar saklanan sırayla işlenir, sıralama yapılmaz.
func AggregateWorkOrder(ingredients []Ingredient) *WorkOrderTotals {
	if len(ingredients) == 0 {
		return nil
	}

	t := &WorkOrderTotals{}
	for _, ing := range ingredients {
		t.ScaledTotal += ing.TargetMass.Float()
		t.ActualTotal += AggregateIngredient(ing).TotalActual
	}
	t.VarianceTotal = t.ActualTotal - t.ScaledTotal

	return t
}
