package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctrl "trungtam_backend/internals/features/users/auth/controller"
	"trungtam_backend/internals/middlewares"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	h := authctrl.NewAuthController(db)

	grp := app.Group("/auth")
	{
		grp.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
		grp.Post("/login", middlewares.LoginRateLimiter(), h.Login)
		grp.Post("/login-google", middlewares.LoginRateLimiter(), h.LoginGoogle)
		grp.Post("/refresh-token", h.RefreshToken)
		grp.Post("/logout", h.Logout)
	}
}
