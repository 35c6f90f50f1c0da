package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "trungtam_backend/internals/features/users/user/dto"
	model "trungtam_backend/internals/features/users/user/model"
	helper "trungtam_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// GET /api/a/users?role=&limit=
// Màn hình soạn yêu cầu thanh toán & gán giáo viên đọc list này.
func (ctl *UserController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})

	role := strings.TrimSpace(c.Query("role"))
	if role != "" {
		if !model.IsValidRole(role) {
			return helper.Error(c, fiber.StatusBadRequest, "Role không hợp lệ")
		}
		q = q.Where("user_role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", like, like)
	}

	limit := 100
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 && n <= 500 {
		limit = n
	}

	var users []model.UserModel
	if err := q.Order("user_name ASC").Limit(limit).Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách người dùng")
	}
	return helper.Success(c, "OK", dto.FromModels(users))
}

// GET /api/a/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy người dùng")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	return helper.Success(c, "OK", dto.FromModel(&user))
}

// PATCH /api/a/users/:id
func (ctl *UserController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy người dùng")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	req.Apply(&user)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Cập nhật thất bại")
	}

	// đọc lại sau khi ghi xong — client luôn nhận bản mới nhất
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	return helper.Success(c, "Cập nhật thành công", dto.FromModel(&user))
}
