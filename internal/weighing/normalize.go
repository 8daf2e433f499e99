package weighing

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingWorkOrder: payload'da work_order tanımlayıcısı yok.
var ErrMissingWorkOrder = errors.New("work_order is required")

// headerFields: gelen payload'daki baş alanlar. Pointer'lar alanın hiç
// gönderilmemesi ile boş gönderilmesini ayırt etmek için.
type headerFields struct {
	WorkOrder       *string `json:"work_order"`
	SKU             *string `json:"sku"`
	FormulationName *string `json:"formulation_name"`
	ProductionDate  *string `json:"production_date"`
	PlannedQuantity *Grams  `json:"planned_quantity"`
	Status          *string `json:"status"`
	OperatorName    *string `json:"operator_name"`
	EndTime         *string `json:"end_time"`
}

// envelope: iki tarihsel payload şeklini birden kabul eder; baş alanlar ya
// kökte düz ya da "workOrder" objesi altında gelebilir.
type envelope struct {
	headerFields
	Nested       *headerFields `json:"workOrder"`
	Ingredients  []Ingredient  `json:"ingredients"`
	RejectReason *RejectReason `json:"reject_reason"`
}

// pick: nested alan dolu ise onu, değilse kök alanı kullan
func pick(nested, root *string) string {
	if nested != nil && *nested != "" {
		return *nested
	}
	if root != nil {
		return *root
	}
	return ""
}

// Normalize: ham ingest payload'ını kanonik belgeye çevirir. Nested
// workOrder alanları kök alanlara göre önceliklidir. exp_dates boş ama
// sessions dolu olan ingredient'larda exp_dates seanslardan türetilir.
func Normalize(raw []byte) (*Document, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("payload çözümlenemedi: %w", err)
	}

	nested := env.Nested
	if nested == nil {
		nested = &headerFields{}
	}

	doc := &Document{
		WorkOrder: WorkOrder{
			WorkOrder:       pick(nested.WorkOrder, env.WorkOrder),
			SKU:             pick(nested.SKU, env.SKU),
			FormulationName: pick(nested.FormulationName, env.FormulationName),
			ProductionDate:  pick(nested.ProductionDate, env.ProductionDate),
			Status:          pick(nested.Status, env.Status),
			OperatorName:    pick(nested.OperatorName, env.OperatorName),
		},
		Ingredients:  env.Ingredients,
		RejectReason: env.RejectReason,
	}

	// planned_quantity için "alan mevcut" kontrolü yeterli, sıfır geçerli değer
	if nested.PlannedQuantity != nil {
		doc.PlannedQuantity = *nested.PlannedQuantity
	} else if env.PlannedQuantity != nil {
		doc.PlannedQuantity = *env.PlannedQuantity
	}

	if nested.EndTime != nil {
		doc.EndTime = nested.EndTime
	} else if env.EndTime != nil {
		doc.EndTime = env.EndTime
	}

	if doc.WorkOrder.WorkOrder == "" {
		return nil, ErrMissingWorkOrder
	}

	for i := range doc.Ingredients {
		if len(doc.Ingredients[i].ExpDates) == 0 && len(doc.Ingredients[i].Sessions) > 0 {
			doc.Ingredients[i].ExpDates = DeriveExpDates(doc.Ingredients[i].Sessions)
		}
	}

	return doc, nil
}

// DeriveExpDates: seansları geçerli exp date'e göre gruplar ve her grubun
// actual_mass toplamını alır. Grup sırası ilk görülme sırasıdır. Exp date'i
// belirlenemeyen seanslar gruplamaya girmez.
func DeriveExpDates(sessions []Session) []ExpiryWeight {
	var order []string
	sums := make(map[string]float64)

	for _, s := range sessions {
		key, ok := s.EffectiveExpDate()
		if !ok {
			continue
		}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += s.ActualMass.Float()
	}

	out := make([]ExpiryWeight, 0, len(order))
	for _, key := range order {
		out = append(out, ExpiryWeight{ExpDate: key, ActualWeight: Grams(sums[key])})
	}
	return out
}
