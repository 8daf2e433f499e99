package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"weighing-receiver/internal/config"
	"weighing-receiver/internal/database"
	"weighing-receiver/internal/models"
	"weighing-receiver/internal/weighing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadDocument: satır id'si veya work_order koduyla kanonik belgeyi yükler
func loadDocument(idOrCode string) (*weighing.Document, error) {
	var row models.ReceivedWorkOrder

	if id, err := strconv.ParseUint(idOrCode, 10, 64); err == nil {
		if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
			return nil, err
		}
	} else if err := database.DB.First(&row, "work_order = ?", idOrCode).Error; err != nil {
		return nil, err
	}

	var doc weighing.Document
	if err := json.Unmarshal(row.DataJSON, &doc); err != nil {
		return nil, fmt.Errorf("saklanan belge çözümlenemedi: %w", err)
	}
	return &doc, nil
}

// GET /api/mo-receiver/:id/report
func PrintHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c.Params("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Work order bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		html, err := RenderHTML(doc, OptionsFromConfig(cfg))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor üretilemedi: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(html)
	}
}

// GET /api/mo-receiver/:id/report.xlsx
func ExportHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c.Params("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Work order bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		xlsx, err := RenderXLSX(doc, OptionsFromConfig(cfg))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel raporu üretilemedi: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, doc.WorkOrder.WorkOrder))
		return c.Send(xlsx)
	}
}
