package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "trungtam_backend/internals/features/center/branches/dto"
	model "trungtam_backend/internals/features/center/branches/model"
	helper "trungtam_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

var validate = validator.New()

// GET /api/a/branches
func (ctl *BranchController) List(c *fiber.Ctx) error {
	var branches []model.BranchModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("branch_name ASC").Find(&branches).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách cơ sở")
	}
	return helper.Success(c, "OK", dto.FromModels(branches))
}

// POST /api/a/branches
func (ctl *BranchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	branch := model.BranchModel{
		BranchName:     req.BranchName,
		BranchAddress:  req.Address,
		BranchPhone:    req.Phone,
		BranchIsActive: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&branch).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tạo được cơ sở")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tạo cơ sở thành công", dto.FromModel(&branch))
}

// DELETE /api/a/branches/:id (soft delete)
func (ctl *BranchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.BranchModel{}, "branch_id = ?", id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy cơ sở")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Xoá thất bại")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy cơ sở")
	}
	return helper.Success(c, "Đã xoá cơ sở", nil)
}
