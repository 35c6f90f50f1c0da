package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attctrl "trungtam_backend/internals/features/attendance/controller"
)

// AttendanceAdminRoutes: quản lý suất học + điểm danh
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := attctrl.NewAttendanceController(db)

	grp := admin.Group("/attendance/sessions")
	{
		grp.Get("/", h.ListSessions)
		grp.Post("/", h.CreateSession)
		grp.Post("/:id/records", h.RecordDay)
	}
}

// AttendanceUserRoutes: phụ huynh/học sinh xem lịch điểm danh
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	h := attctrl.NewAttendanceController(db)
	user.Get("/attendance/sessions/:id", h.SessionDay)
}
