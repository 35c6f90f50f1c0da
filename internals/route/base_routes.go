package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// SetupBaseRoutes: endpoint sống còn cho load balancer và monitor
func SetupBaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"db":      dbStatus,
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
			"service": "trungtam-backend",
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Trung tâm backend đang chạy 🚀")
	})
}
