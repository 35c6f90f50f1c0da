package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles chặn theo role đã gắn ở AuthMiddleware.
// Dùng sau AuthMiddleware: group.Use(auth.RequireRoles("admin")).
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			return fiber.NewError(fiber.StatusForbidden, "Tài khoản chưa được gán quyền")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Bạn không có quyền truy cập chức năng này")
		}
		return c.Next()
	}
}
