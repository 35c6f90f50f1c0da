package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchctrl "trungtam_backend/internals/features/center/branches/controller"
)

func BranchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := branchctrl.NewBranchController(db)

	grp := admin.Group("/branches")
	{
		grp.Get("/", h.List)
		grp.Post("/", h.Create)
		grp.Delete("/:id", h.Delete)
	}
}
