package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctrl "trungtam_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := userctrl.NewUserController(db)

	grp := admin.Group("/users")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Patch("/:id", h.Patch)
	}
}
