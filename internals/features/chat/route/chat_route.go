package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	chatctrl "trungtam_backend/internals/features/chat/controller"
	chatservice "trungtam_backend/internals/features/chat/service"
)

// ChatUserRoutes: REST quản lý hội thoại, nhóm /api/u đã qua auth
func ChatUserRoutes(user fiber.Router, db *gorm.DB, hub *chatservice.Hub) {
	h := chatctrl.NewChatController(db, hub)

	grp := user.Group("/chat")
	{
		grp.Get("/conversations", h.MyConversations)
		grp.Post("/conversations", h.CreateConversation)
	}
}

// ChatWebsocketRoutes: /ws/chat, router truyền vào đã gắn AuthMiddleware
func ChatWebsocketRoutes(ws fiber.Router, db *gorm.DB, hub *chatservice.Hub) {
	h := chatctrl.NewChatController(db, hub)

	ws.Use("/chat", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/chat", websocket.New(h.Handle))
}
