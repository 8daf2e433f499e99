package weighing

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Grams: ağırlık alanları için esnek sayı tipi. Upstream sistem bazen sayı,
// bazen string, bazen null gönderiyor; parse edilemeyen her şey 0 olur.
type Grams float64

func (g *Grams) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*g = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*g = Grams(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*g = Grams(f)
			return nil
		}
	}

	// Sayıya çevrilemeyen değer (bool, obje, bozuk string): 0 kabul et
	*g = 0
	return nil
}

func (g Grams) Float() float64 { return float64(g) }

// ExpiryWeight: bir ingredient'ın belirli bir son kullanma tarihine ait
// tartılan ağırlığı. Eski format bare string ("30/08/2027"), yeni format
// obje ({exp_date, actual_weight}); her ikisi de tek şekle normalize edilir.
type ExpiryWeight struct {
	ExpDate      string `json:"exp_date"`
	ActualWeight Grams  `json:"actual_weight"`
}

func (e *ExpiryWeight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		// Eski format: sadece tarih etiketi, ağırlık bilgisi yok
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		e.ExpDate = s
		e.ActualWeight = 0
		return nil
	}

	var obj struct {
		ExpDate      *string `json:"exp_date"`
		ActualWeight Grams   `json:"actual_weight"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.ExpDate != nil {
		e.ExpDate = *obj.ExpDate
	} else {
		e.ExpDate = ""
	}
	e.ActualWeight = obj.ActualWeight
	return nil
}

// Session: bir ingredient için tek tartım seansı. Notes alanı serbest metin,
// bazı üreticiler exp_date bilgisini JSON olarak buraya gömüyor.
type Session struct {
	SessionID          string  `json:"session_id"`
	SessionNumber      int     `json:"session_number"`
	ActualMass         Grams   `json:"actual_mass"`
	AccumulatedMass    Grams   `json:"accumulated_mass"`
	Status             string  `json:"status"`
	ToleranceMin       *Grams  `json:"tolerance_min"`
	ToleranceMax       *Grams  `json:"tolerance_max"`
	SessionStartedAt   string  `json:"session_started_at"`
	SessionCompletedAt string  `json:"session_completed_at"`
	Notes              *string `json:"notes"`
	ExpDate            *string `json:"exp_date"`
}

// EffectiveExpDate: seansın geçerli son kullanma tarihi. Öncelik sırası:
// açık exp_date alanı > notes içindeki JSON fragment. İkisi de yoksa seans
// gruplamaya dahil edilmez.
func (s Session) EffectiveExpDate() (string, bool) {
	if s.ExpDate != nil && *s.ExpDate != "" {
		return *s.ExpDate, true
	}
	if s.Notes == nil {
		return "", false
	}
	var note struct {
		ExpDate string `json:"exp_date"`
	}
	raw := strings.TrimSpace(*s.Notes)
	if err := json.Unmarshal([]byte(raw), &note); err != nil || note.ExpDate == "" {
		return "", false
	}
	return note.ExpDate, true
}

type Ingredient struct {
	IngredientID           string         `json:"ingredient_id"`
	IngredientCode         string         `json:"ingredient_code"`
	IngredientName         string         `json:"ingredient_name"`
	TargetMass             Grams          `json:"target_mass"`
	ToleranceMin           *Grams         `json:"tolerance_min"`
	ToleranceMax           *Grams         `json:"tolerance_max"`
	CurrentAccumulatedMass Grams          `json:"current_accumulated_mass"`
	CurrentStatus          string         `json:"current_status"`
	ExpDates               []ExpiryWeight `json:"exp_dates"`
	Sessions               []Session      `json:"sessions,omitempty"`
}

// WorkOrder: üretim emri baş bilgileri (kanonik düz şekil).
type WorkOrder struct {
	WorkOrder       string  `json:"work_order"`
	SKU             string  `json:"sku"`
	FormulationName string  `json:"formulation_name"`
	ProductionDate  string  `json:"production_date"`
	PlannedQuantity Grams   `json:"planned_quantity"`
	Status          string  `json:"status"`
	OperatorName    string  `json:"operator_name"`
	EndTime         *string `json:"end_time"`
}

// RejectReason: reject statüsündeki emirler için tolerans aşım detayı.
type RejectReason struct {
	IngredientName string `json:"ingredient_name"`
	IngredientCode string `json:"ingredient_code"`
	TargetMass     Grams  `json:"target_mass"`
	ActualMass     Grams  `json:"actual_mass"`
	ToleranceMax   Grams  `json:"tolerance_max"`
	ExcessAmount   Grams  `json:"excess_amount"`
	ViolationCount int    `json:"violation_count"`
}

// Document: veritabanında saklanan ve okuma endpoint'lerinin döndürdüğü
// kanonik belge. Baş alanlar kökte düz, exp_dates her zaman açık.
type Document struct {
	WorkOrder
	Ingredients  []Ingredient  `json:"ingredients"`
	RejectReason *RejectReason `json:"reject_reason,omitempty"`
}

// Geçerli work order statüleri
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusReject     = "reject"
	StatusCancelled  = "cancelled"
)
