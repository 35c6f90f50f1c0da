package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payctrl "trungtam_backend/internals/features/finance/payment_requests/controller"
)

func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := payctrl.NewPaymentRequestController(db)

	grp := admin.Group("/payment-requests")
	{
		grp.Get("/", h.List)
		grp.Post("/bulk", h.CreateBulk)
		grp.Post("/:id/cancel", h.Cancel)
		grp.Get("/:id/students", h.Students)
		grp.Get("/:id/students/export", h.ExportStudents)
	}

	payments := admin.Group("/payments")
	{
		payments.Post("/:id/confirm-cash", h.ConfirmCash)
	}
}
