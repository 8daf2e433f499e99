package main

import (
	"log"
	"strings"

	"weighing-receiver/internal/audit"
	"weighing-receiver/internal/auth"
	"weighing-receiver/internal/config"
	"weighing-receiver/internal/database"
	"weighing-receiver/internal/receiver"
	"weighing-receiver/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"error":   e.Message,
				})
			}
			log.Println("Beklenmeyen hata:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Dış tartım sisteminden veri alma (bearer token zorunlu)
	api.Post("/mo/receive", auth.BearerMiddleware(cfg), receiver.ReceiveHandler())

	// Okuma endpoint'leri
	api.Get("/mo-list", receiver.ListHandler())
	api.Get("/mo-receiver/:id", receiver.DetailHandler())
	api.Delete("/mo-receiver/:id", receiver.DeleteHandler())

	// Rapor çıktıları
	api.Get("/mo-receiver/:id/report", report.PrintHandler(cfg))
	api.Get("/mo-receiver/:id/report.xlsx", report.ExportHandler(cfg))

	// Reject/cancelled emirleri tekrar aktifleştirme
	api.Post("/work-orders/:work_order/reactivate", receiver.ReactivateHandler())

	// Audit logs
	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
