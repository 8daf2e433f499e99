package receiver

import (
	"encoding/json"
	"errors"
	"strconv"

	"weighing-receiver/internal/audit"
	"weighing-receiver/internal/database"
	"weighing-receiver/internal/models"
	"weighing-receiver/internal/weighing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReceiveResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	WorkOrder string `json:"work_order"`
	ID        uint   `json:"id"`
}

type ListItemResponse struct {
	ID              uint    `json:"id"`
	WorkOrder       string  `json:"work_order"`
	SKU             string  `json:"sku"`
	FormulationName string  `json:"formulation_name"`
	Status          string  `json:"status"`
	ProductionDate  string  `json:"production_date"`
	PlannedQuantity float64 `json:"planned_quantity"`
	OperatorName    string  `json:"operator_name"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type DetailResponse struct {
	WorkOrder    weighing.WorkOrder        `json:"workOrder"`
	Ingredients  []weighing.Ingredient     `json:"ingredients"`
	Totals       *weighing.WorkOrderTotals `json:"totals"`
	RejectReason *weighing.RejectReason    `json:"reject_reason,omitempty"`
}

// POST /api/mo/receive
// Dış tartım sisteminden work order payload'ı alır, kanonik şekle normalize
// edip work_order anahtarıyla upsert eder. Aynı emir tekrar gönderilirse
// saklanan belge bütün olarak değiştirilir.
func ReceiveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := weighing.Normalize(c.Body())
		if err != nil {
			if errors.Is(err, weighing.ErrMissingWorkOrder) {
				return fiber.NewError(fiber.StatusBadRequest, "work_order zorunlu")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz payload: "+err.Error())
		}

		dataJSON, err := json.Marshal(doc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Belge serileştirilemedi")
		}

		row := models.ReceivedWorkOrder{
			WorkOrder:       doc.WorkOrder.WorkOrder,
			SKU:             doc.SKU,
			FormulationName: doc.FormulationName,
			ProductionDate:  doc.ProductionDate,
			PlannedQuantity: doc.PlannedQuantity.Float(),
			Status:          doc.Status,
			OperatorName:    doc.OperatorName,
			EndTime:         doc.EndTime,
			DataJSON:        dataJSON,
		}

		err = database.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "work_order"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sku", "formulation_name", "production_date", "planned_quantity",
				"status", "operator_name", "end_time", "data_json", "updated_at",
			}),
		}).Create(&row).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt saklanamadı: "+err.Error())
		}

		// Upsert update'e düştüyse row.ID güvenilir değil, id'yi tekrar çek
		var saved models.ReceivedWorkOrder
		if err := database.DB.First(&saved, "work_order = ?", doc.WorkOrder.WorkOrder).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt saklanamadı: "+err.Error())
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityID:    saved.ID,
			WorkOrder:   saved.WorkOrder,
			Action:      models.AuditActionReceive,
			Description: "Work order alındı: " + saved.WorkOrder,
			After:       doc,
		})

		return c.JSON(ReceiveResponse{
			Success:   true,
			Message:   "Veri alındı ve kaydedildi",
			WorkOrder: saved.WorkOrder,
			ID:        saved.ID,
		})
	}
}

// GET /api/mo-list
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.ReceivedWorkOrder
		if err := database.DB.Order("updated_at DESC").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar listelenemedi: "+err.Error())
		}

		res := make([]ListItemResponse, 0, len(rows))
		for _, r := range rows {
			res = append(res, ListItemResponse{
				ID:              r.ID,
				WorkOrder:       r.WorkOrder,
				SKU:             r.SKU,
				FormulationName: r.FormulationName,
				Status:          r.Status,
				ProductionDate:  r.ProductionDate,
				PlannedQuantity: r.PlannedQuantity,
				OperatorName:    r.OperatorName,
				CreatedAt:       r.CreatedAt.Format("2006-01-02 15:04:05"),
				UpdatedAt:       r.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data":    res,
		})
	}
}

// findWorkOrder: parametre sayısal ise satır id'si, değilse work_order kodu
// olarak arar.
func findWorkOrder(idOrCode string) (*models.ReceivedWorkOrder, error) {
	var row models.ReceivedWorkOrder

	if id, err := strconv.ParseUint(idOrCode, 10, 64); err == nil {
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}

	if err := database.DB.First(&row, "work_order = ?", idOrCode).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GET /api/mo-receiver/:id
// Hangi formatta ingest edilmiş olursa olsun her zaman kanonik düz şekli döner.
func DetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		row, err := findWorkOrder(c.Params("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Work order bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt okunamadı: "+err.Error())
		}

		var doc weighing.Document
		if err := json.Unmarshal(row.DataJSON, &doc); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Saklanan belge çözümlenemedi")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": DetailResponse{
				WorkOrder:    doc.WorkOrder,
				Ingredients:  doc.Ingredients,
				Totals:       weighing.AggregateWorkOrder(doc.Ingredients),
				RejectReason: doc.RejectReason,
			},
		})
	}
}

// DELETE /api/mo-receiver/:id
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		row, err := findWorkOrder(c.Params("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Work order bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt okunamadı: "+err.Error())
		}

		if err := database.DB.Delete(&models.ReceivedWorkOrder{}, "id = ?", row.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt silinemedi: "+err.Error())
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityID:    row.ID,
			WorkOrder:   row.WorkOrder,
			Action:      models.AuditActionDelete,
			Description: "Work order silindi: " + row.WorkOrder,
			Before:      json.RawMessage(row.DataJSON),
		})

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Work order silindi",
		})
	}
}
