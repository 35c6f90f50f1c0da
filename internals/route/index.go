package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trungtam_backend/internals/databases"
	attendanceRoute "trungtam_backend/internals/features/attendance/route"
	branchRoute "trungtam_backend/internals/features/center/branches/route"
	classRoute "trungtam_backend/internals/features/center/classes/route"
	classservice "trungtam_backend/internals/features/center/classes/service"
	chatRoute "trungtam_backend/internals/features/chat/route"
	chatservice "trungtam_backend/internals/features/chat/service"
	feedbackRoute "trungtam_backend/internals/features/evaluations/feedback/route"
	periodRoute "trungtam_backend/internals/features/evaluations/periods/route"
	paymentRoute "trungtam_backend/internals/features/finance/payment_requests/route"
	authRoute "trungtam_backend/internals/features/users/auth/route"
	userRoute "trungtam_backend/internals/features/users/user/route"
	authMiddleware "trungtam_backend/internals/middlewares/auth"
	userModel "trungtam_backend/internals/features/users/user/model"
)

// SetupRoutes gắn toàn bộ route của hệ thống:
//   - /api/auth  : đăng ký / đăng nhập, không cần token
//   - /api/a     : khu quản trị, chỉ admin
//   - /api/u     : khu người dùng (teacher/parent/student + admin)
//   - /ws        : websocket chat
func SetupRoutes(app *fiber.App, db *gorm.DB, hub *chatservice.Hub) {
	SetupBaseRoutes(app, db)

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	rosterCache := classservice.NewRosterCache(database.Redis)

	// ===== Khu quản trị =====
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(userModel.RoleAdmin),
	)
	userRoute.UserAdminRoutes(admin, db)
	branchRoute.BranchAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db, rosterCache)
	paymentRoute.PaymentAdminRoutes(admin, db)
	periodRoute.EvaluationPeriodAdminRoutes(admin, db)
	feedbackRoute.FeedbackAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)

	// ===== Khu người dùng =====
	user := api.Group("/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(
			userModel.RoleAdmin,
			userModel.RoleTeacher,
			userModel.RoleParent,
			userModel.RoleStudent,
		),
	)
	attendanceRoute.AttendanceUserRoutes(user, db)
	feedbackRoute.FeedbackUserRoutes(user, db)
	chatRoute.ChatUserRoutes(user, db, hub)

	// ===== Websocket =====
	ws := app.Group("/ws", authMiddleware.AuthMiddleware(db))
	chatRoute.ChatWebsocketRoutes(ws, db, hub)
}
