package models

import "time"

type AuditAction string

const (
	AuditActionReceive    AuditAction = "receive"
	AuditActionDelete     AuditAction = "delete"
	AuditActionReactivate AuditAction = "reactivate"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Hangi entity? (şimdilik sadece "work_order")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	// Work order kodu (denormalize, kayıt silinse de iz kalsın diye)
	WorkOrder string `gorm:"size:100;index" json:"work_order"`

	// İşlem tipi: receive/delete/reactivate
	Action AuditAction `gorm:"size:20" json:"action"`

	// Opsiyonel açıklama (küçük bir özet)
	Description string `gorm:"size:255" json:"description"`

	// Önceki ve sonraki hal (JSON)
	BeforeData string `json:"before_data"`
	AfterData  string `json:"after_data"`
}
