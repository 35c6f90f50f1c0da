package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares gắn bộ middleware dùng chung cho toàn app.
// Thứ tự: recovery trước để bắt panic của mọi tầng phía sau.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
