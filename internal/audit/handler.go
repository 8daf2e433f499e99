package audit

import (
	"fmt"

	"weighing-receiver/internal/database"
	"weighing-receiver/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	WorkOrder   string             `json:"work_order"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
}

// GET /api/audit-logs?work_order=MO-2024-001&action=delete&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if wo := c.Query("work_order"); wo != "" {
			dbq = dbq.Where("work_order = ?", wo)
		}
		if action := c.Query("action"); action != "" {
			dbq = dbq.Where("action = ?", action)
		}

		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			var l int
			if _, err := fmt.Sscan(limitStr, &l); err != nil || l <= 0 || l > 500 {
				return fiber.NewError(fiber.StatusBadRequest, "limit geçersiz (1-500 arası olmalı)")
			}
			limit = l
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC, id DESC").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit logları listelenemedi")
		}

		res := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			res = append(res, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				WorkOrder:   l.WorkOrder,
				Action:      l.Action,
				Description: l.Description,
			})
		}

		return c.JSON(res)
	}
}
