package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodctrl "trungtam_backend/internals/features/evaluations/periods/controller"
)

func EvaluationPeriodAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := periodctrl.NewEvaluationPeriodController(db)

	grp := admin.Group("/evaluation-periods")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Patch)
		grp.Delete("/:id", h.Delete)
	}
}
