package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fbctrl "trungtam_backend/internals/features/evaluations/feedback/controller"
)

// FeedbackAdminRoutes: admin xem phiếu + thống kê
func FeedbackAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := fbctrl.NewFeedbackController(db)

	grp := admin.Group("/feedback")
	{
		grp.Get("/", h.List)
		grp.Get("/statistics", h.Statistics)
		grp.Get("/statistics-by-class", h.StatisticsByClass)
	}
}

// FeedbackUserRoutes: học sinh gửi phiếu
func FeedbackUserRoutes(user fiber.Router, db *gorm.DB) {
	h := fbctrl.NewFeedbackController(db)
	user.Post("/feedback", h.Submit)
}
