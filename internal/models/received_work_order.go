package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReceivedWorkOrder: dış tartım sisteminden alınan üretim emri kaydı.
// Baş alanlar listeleme için denormalize tutulur; belgenin tamamı DataJSON
// kolonunda saklanır. work_order üzerinden upsert: son yazan kazanır,
// belge her zaman bütün olarak değiştirilir (alan bazlı merge yok).
type ReceivedWorkOrder struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	WorkOrder       string  `gorm:"uniqueIndex;size:100;not null" json:"work_order"`
	SKU             string  `gorm:"size:100" json:"sku"`
	FormulationName string  `gorm:"size:255" json:"formulation_name"`
	ProductionDate  string  `gorm:"size:64" json:"production_date"`
	PlannedQuantity float64 `json:"planned_quantity"`
	Status          string  `gorm:"size:20;index" json:"status"`
	OperatorName    string  `gorm:"size:100" json:"operator_name"`
	EndTime         *string `gorm:"size:64" json:"end_time"`

	// Kanonik belgenin tamamı (normalize edilmiş JSON)
	DataJSON datatypes.JSON `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
