package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "trungtam_backend/internals/features/center/classes/controller"
	classservice "trungtam_backend/internals/features/center/classes/service"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB, cache *classservice.RosterCache) {
	h := classctrl.NewClassController(db, cache)

	grp := admin.Group("/classes")
	{
		grp.Get("/", h.List)
		grp.Get("/filter-options", h.FilterOptions)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Patch)
		grp.Delete("/:id", h.Delete)
	}
}
