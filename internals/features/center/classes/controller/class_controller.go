package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "trungtam_backend/internals/features/center/branches/model"
	dto "trungtam_backend/internals/features/center/classes/dto"
	model "trungtam_backend/internals/features/center/classes/model"
	service "trungtam_backend/internals/features/center/classes/service"
	helper "trungtam_backend/internals/helpers"
)

type ClassController struct {
	DB    *gorm.DB
	Cache *service.RosterCache
}

func NewClassController(db *gorm.DB, cache *service.RosterCache) *ClassController {
	return &ClassController{DB: db, Cache: cache}
}

var validate = validator.New()

/* ================= Helpers ================= */

// csv query → slice ("" → nil: rỗng nghĩa là không ràng buộc)
func csvQuery(c *fiber.Ctx, key string) []string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toServiceClass(m *model.ClassModel) service.Class {
	grade, subject := "", ""
	if m.ClassGrade != nil {
		grade = *m.ClassGrade
	}
	if m.ClassSubject != nil {
		subject = *m.ClassSubject
	}
	return service.Class{
		ID:         m.ClassID.String(),
		BranchID:   m.ClassBranchID.String(),
		Grade:      grade,
		Subject:    subject,
		StudentIDs: m.ClassStudentIDs,
	}
}

// loadRoster: chỉ lớp active, chưa xoá; đồng thời làm tươi cache.
func (ctl *ClassController) loadRoster(c *fiber.Ctx) ([]service.Class, []model.ClassModel, error) {
	var models []model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_is_active = TRUE").
		Order("class_name ASC").
		Find(&models).Error; err != nil {
		return nil, nil, err
	}
	classes := make([]service.Class, 0, len(models))
	for i := range models {
		classes = append(classes, toServiceClass(&models[i]))
	}
	ctl.Cache.Set(c.UserContext(), classes)
	return classes, models, nil
}

// loadRosterClasses: bản nhẹ cho filter-options — cache hit thì khỏi chạm DB.
func (ctl *ClassController) loadRosterClasses(c *fiber.Ctx) ([]service.Class, error) {
	if classes, ok := ctl.Cache.Get(c.UserContext()); ok {
		return classes, nil
	}
	classes, _, err := ctl.loadRoster(c)
	return classes, err
}

func (ctl *ClassController) branchNames(c *fiber.Ctx) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	var branches []branchModel.BranchModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&branches).Error; err != nil {
		return names
	}
	for i := range branches {
		names[branches[i].BranchID] = branches[i].BranchName
	}
	return names
}

/* ================= Handlers ================= */

// GET /api/a/classes?branch_ids=&grades=&subjects=
// Filter bậc thang chạy trên roster đã fetch, đúng ngữ nghĩa
// "rỗng = không ràng buộc".
func (ctl *ClassController) List(c *fiber.Ctx) error {
	classes, models, err := ctl.loadRoster(c)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách lớp")
	}

	branchIDs := csvQuery(c, "branch_ids")
	grades := csvQuery(c, "grades")
	subjects := csvQuery(c, "subjects")

	filtered := service.FilterClasses(classes, branchIDs, grades, subjects)
	keep := make(map[string]struct{}, len(filtered))
	for _, f := range filtered {
		keep[f.ID] = struct{}{}
	}

	names := ctl.branchNames(c)
	out := make([]dto.ClassResponse, 0, len(filtered))
	for i := range models {
		if _, ok := keep[models[i].ClassID.String()]; !ok {
			continue
		}
		out = append(out, dto.FromModel(&models[i], names[models[i].ClassBranchID]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"classes":        out,
		"total_students": service.TotalStudents(filtered, nil),
	})
}

// GET /api/a/classes/filter-options?branch_ids=&grades=
// Trả option hợp lệ cho tầng kế tiếp của filter bậc thang.
func (ctl *ClassController) FilterOptions(c *fiber.Ctx) error {
	classes, err := ctl.loadRosterClasses(c)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách lớp")
	}

	branchIDs := csvQuery(c, "branch_ids")
	grades := csvQuery(c, "grades")

	return helper.Success(c, "OK", fiber.Map{
		"available_grades":   service.AvailableGrades(classes, branchIDs),
		"available_subjects": service.AvailableSubjects(classes, branchIDs, grades),
	})
}

// POST /api/a/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// cơ sở phải tồn tại
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&branchModel.BranchModel{}).
		Where("branch_id = ?", req.Branch.ID).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Cơ sở không tồn tại")
	}

	class := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tạo được lớp")
	}
	ctl.Cache.Invalidate(c.UserContext())

	names := ctl.branchNames(c)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tạo lớp thành công",
		dto.FromModel(&class, names[class.ClassBranchID]))
}

// PATCH /api/a/classes/:id
func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var class model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy lớp")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	req.Apply(&class)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Cập nhật thất bại")
	}
	ctl.Cache.Invalidate(c.UserContext())

	names := ctl.branchNames(c)
	return helper.Success(c, "Cập nhật thành công", dto.FromModel(&class, names[class.ClassBranchID]))
}

// DELETE /api/a/classes/:id (soft delete)
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Xoá thất bại")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy lớp")
	}
	ctl.Cache.Invalidate(c.UserContext())
	return helper.Success(c, "Đã xoá lớp", nil)
}
