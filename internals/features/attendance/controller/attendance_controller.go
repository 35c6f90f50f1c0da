package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "trungtam_backend/internals/features/attendance/dto"
	model "trungtam_backend/internals/features/attendance/model"
	service "trungtam_backend/internals/features/attendance/service"
	classModel "trungtam_backend/internals/features/center/classes/model"
	helper "trungtam_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

/* =========================================================
GET /api/a/attendance/sessions?class_id=
========================================================= */
func (ctl *AttendanceController) ListSessions(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AttendanceSessionModel{})
	if cid := c.Query("class_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "class_id không hợp lệ")
		}
		q = q.Where("attendance_session_class_id = ?", id)
	}

	var sessions []model.AttendanceSessionModel
	if err := q.Order("attendance_session_created_at DESC").Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách suất học")
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.FromSessionModel(&sessions[i]))
	}
	return helper.Success(c, "OK", out)
}

/* =========================================================
POST /api/a/attendance/sessions
========================================================= */
func (ctl *AttendanceController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cls classModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&cls, "class_id = ?", req.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Lớp không tồn tại")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Tạo suất học thất bại")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã tạo suất học", dto.FromSessionModel(m))
}

/* =========================================================
GET /api/u/attendance/sessions/:id?date=2026-01-15
Ngày chưa điểm danh → mỗi học sinh một dòng vắng tự sinh,
chỉ để hiển thị, không ghi DB.
========================================================= */
func (ctl *AttendanceController) SessionDay(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "date phải theo dạng YYYY-MM-DD")
	}

	var session model.AttendanceSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&session, "attendance_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy suất học")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	var cls classModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&cls, "class_id = ?", session.AttendanceSessionClassID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được lớp của suất học")
	}

	var rows []model.AttendanceRecordModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("attendance_record_session_id = ? AND attendance_record_date = ?", id, date).
		Order("attendance_record_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được điểm danh")
	}

	recorded := make([]service.DisplayRecord, 0, len(rows))
	for i := range rows {
		note := ""
		if rows[i].AttendanceRecordNote != nil {
			note = *rows[i].AttendanceRecordNote
		}
		recorded = append(recorded, service.DisplayRecord{
			StudentID: rows[i].AttendanceRecordStudentID.String(),
			Status:    rows[i].AttendanceRecordStatus,
			Note:      note,
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"session": dto.FromSessionModel(&session),
		"date":    date.Format("2006-01-02"),
		"records": service.AutoAbsent(recorded, cls.ClassStudentIDs),
	})
}

/* =========================================================
POST /api/a/attendance/sessions/:id/records
Điểm danh một ngày, upsert theo (session, ngày, học sinh).
========================================================= */
func (ctl *AttendanceController) RecordDay(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var req dto.RecordDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.AttendanceSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&session, "attendance_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy suất học")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	rows := make([]model.AttendanceRecordModel, 0, len(req.Records))
	for _, r := range req.Records {
		rows = append(rows, model.AttendanceRecordModel{
			AttendanceRecordSessionID: id,
			AttendanceRecordDate:      req.Date,
			AttendanceRecordStudentID: r.StudentID,
			AttendanceRecordStatus:    r.Status,
			AttendanceRecordNote:      r.Note,
		})
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_record_session_id"},
				{Name: "attendance_record_date"},
				{Name: "attendance_record_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_record_status",
				"attendance_record_note",
				"attendance_record_updated_at",
			}),
		}).
		Create(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Ghi điểm danh thất bại")
	}

	return helper.Success(c, "Đã ghi điểm danh", fiber.Map{
		"attendance_session_id": id,
		"date":                  req.Date.Format("2006-01-02"),
		"recorded":              len(rows),
	})
}
