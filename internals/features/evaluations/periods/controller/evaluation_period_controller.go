package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "trungtam_backend/internals/features/evaluations/periods/dto"
	model "trungtam_backend/internals/features/evaluations/periods/model"
	helper "trungtam_backend/internals/helpers"
)

type EvaluationPeriodController struct {
	DB *gorm.DB
}

func NewEvaluationPeriodController(db *gorm.DB) *EvaluationPeriodController {
	return &EvaluationPeriodController{DB: db}
}

var validate = validator.New()

/* =========================================================
GET /api/a/evaluation-periods?status=
========================================================= */
func (ctl *EvaluationPeriodController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EvaluationPeriodModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidPeriodStatus(status) {
			return helper.Error(c, fiber.StatusBadRequest, "Trạng thái không hợp lệ")
		}
		q = q.Where("evaluation_period_status = ?", status)
	}

	var periods []model.EvaluationPeriodModel
	if err := q.Order("evaluation_period_start_date DESC").Find(&periods).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách kỳ đánh giá")
	}
	return helper.Success(c, "OK", dto.FromModels(periods))
}

/* =========================================================
GET /api/a/evaluation-periods/:id
========================================================= */
func (ctl *EvaluationPeriodController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var m model.EvaluationPeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "evaluation_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy kỳ đánh giá")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	return helper.Success(c, "OK", dto.FromModel(&m))
}

/* =========================================================
POST /api/a/evaluation-periods
========================================================= */
func (ctl *EvaluationPeriodController) Create(c *fiber.Ctx) error {
	var req dto.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	// chặn khoảng ngày ngược trước khi chạm DB
	if req.EndDate.Before(req.StartDate) {
		return helper.Error(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Tạo kỳ đánh giá thất bại")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã tạo kỳ đánh giá", dto.FromModel(m))
}

/* =========================================================
PATCH /api/a/evaluation-periods/:id
========================================================= */
func (ctl *EvaluationPeriodController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var req dto.UpdatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.EvaluationPeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "evaluation_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy kỳ đánh giá")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	req.Apply(&m)
	if m.EvaluationPeriodEndDate.Before(m.EvaluationPeriodStartDate) {
		return helper.Error(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Cập nhật thất bại")
	}

	// đọc lại sau khi ghi để client nhận đúng bản mới
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "evaluation_period_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	return helper.Success(c, "Đã cập nhật kỳ đánh giá", dto.FromModel(&m))
}

/* =========================================================
DELETE /api/a/evaluation-periods/:id — soft delete
========================================================= */
func (ctl *EvaluationPeriodController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EvaluationPeriodModel{}, "evaluation_period_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Xoá thất bại")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy kỳ đánh giá")
	}
	return helper.Success(c, "Đã xoá kỳ đánh giá", fiber.Map{"evaluation_period_id": id})
}
