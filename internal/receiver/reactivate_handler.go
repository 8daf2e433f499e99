package receiver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"weighing-receiver/internal/audit"
	"weighing-receiver/internal/database"
	"weighing-receiver/internal/models"
	"weighing-receiver/internal/weighing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReactivateRequest struct {
	Note string `json:"note"`
}

// POST /api/work-orders/:work_order/reactivate
// Reject veya cancelled statüsündeki bir emri tekrar aktif hale getirir.
// Statü in_progress olur, reject_reason temizlenir. Not zorunlu.
func ReactivateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("work_order")

		var body ReactivateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		if strings.TrimSpace(body.Note) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "note zorunlu")
		}

		var row models.ReceivedWorkOrder
		if err := database.DB.First(&row, "work_order = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Work order bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt okunamadı: "+err.Error())
		}

		if row.Status != weighing.StatusReject && row.Status != weighing.StatusCancelled {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Sadece reject veya cancelled statüsündeki emirler aktifleştirilebilir (mevcut: %s)", row.Status))
		}

		var doc weighing.Document
		if err := json.Unmarshal(row.DataJSON, &doc); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Saklanan belge çözümlenemedi")
		}

		before := json.RawMessage(row.DataJSON)

		doc.Status = weighing.StatusInProgress
		doc.RejectReason = nil

		dataJSON, err := json.Marshal(doc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Belge serileştirilemedi")
		}

		row.Status = weighing.StatusInProgress
		row.DataJSON = dataJSON
		if err := database.DB.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt güncellenemedi: "+err.Error())
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityID:    row.ID,
			WorkOrder:   row.WorkOrder,
			Action:      models.AuditActionReactivate,
			Description: "Work order aktifleştirildi: " + strings.TrimSpace(body.Note),
			Before:      before,
			After:       doc,
		})

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Work order tekrar aktifleştirildi",
			"status":  row.Status,
		})
	}
}
