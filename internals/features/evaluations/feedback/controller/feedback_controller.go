package controller

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "trungtam_backend/internals/features/evaluations/feedback/dto"
	model "trungtam_backend/internals/features/evaluations/feedback/model"
	service "trungtam_backend/internals/features/evaluations/feedback/service"
	periodModel "trungtam_backend/internals/features/evaluations/periods/model"
	helper "trungtam_backend/internals/helpers"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

var validate = validator.New()

/* =========================================================
POST /api/u/feedback — học sinh gửi phiếu đánh giá
========================================================= */
func (ctl *FeedbackController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.Criteria.Valid() {
		return helper.Error(c, fiber.StatusBadRequest, "Phiếu phải đủ 5 tiêu chí, mỗi điểm từ 1 đến 5")
	}

	// chỉ nhận phiếu khi kỳ đánh giá đang mở
	var period periodModel.EvaluationPeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&period, "evaluation_period_id = ?", req.PeriodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy kỳ đánh giá")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	if period.EvaluationPeriodStatus != periodModel.PeriodStatusActive {
		return helper.Error(c, fiber.StatusConflict, "Kỳ đánh giá chưa mở hoặc đã đóng")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gửi phiếu thất bại")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Đã ghi nhận phiếu đánh giá", dto.FromModel(m))
}

/* =========================================================
GET /api/a/feedback?period_id=&teacher_id=
========================================================= */
func (ctl *FeedbackController) List(c *fiber.Ctx) error {
	rows, err := ctl.loadFiltered(c)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách phiếu")
	}
	return helper.Success(c, "OK", dto.FromModels(rows))
}

/* =========================================================
GET /api/a/feedback/statistics — gom theo giáo viên
========================================================= */
func (ctl *FeedbackController) Statistics(c *fiber.Ctx) error {
	rows, err := ctl.loadFiltered(c)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	sums := map[uuid.UUID]float64{}
	counts := map[uuid.UUID]int{}
	order := []uuid.UUID{}
	for i := range rows {
		id := rows[i].FeedbackTeacherID
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		sums[id] += rows[i].FeedbackRating
		counts[id]++
	}

	stats := make([]dto.TeacherStat, 0, len(order))
	for _, id := range order {
		avg := round1(sums[id] / float64(counts[id]))
		stats = append(stats, dto.TeacherStat{
			TeacherID:     id,
			FeedbackCount: counts[id],
			AverageRating: avg,
			Badge:         service.RatingBadge(avg),
		})
	}
	return helper.Success(c, "OK", stats)
}

/* =========================================================
GET /api/a/feedback/statistics-by-class
========================================================= */
func (ctl *FeedbackController) StatisticsByClass(c *fiber.Ctx) error {
	rows, err := ctl.loadFiltered(c)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	sums := map[uuid.UUID]float64{}
	counts := map[uuid.UUID]int{}
	order := []uuid.UUID{}
	for i := range rows {
		// phiếu không gắn lớp thì bỏ qua khỏi bảng theo lớp
		if rows[i].FeedbackClassID == nil {
			continue
		}
		id := *rows[i].FeedbackClassID
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		sums[id] += rows[i].FeedbackRating
		counts[id]++
	}

	stats := make([]dto.ClassStat, 0, len(order))
	for _, id := range order {
		avg := round1(sums[id] / float64(counts[id]))
		stats = append(stats, dto.ClassStat{
			ClassID:       id,
			FeedbackCount: counts[id],
			AverageRating: avg,
			Badge:         service.RatingBadge(avg),
		})
	}
	return helper.Success(c, "OK", stats)
}

func (ctl *FeedbackController) loadFiltered(c *fiber.Ctx) ([]model.FeedbackModel, error) {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.FeedbackModel{})
	if pid := c.Query("period_id"); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return nil, err
		}
		q = q.Where("feedback_period_id = ?", id)
	}
	if tid := c.Query("teacher_id"); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return nil, err
		}
		q = q.Where("feedback_teacher_id = ?", id)
	}

	var rows []model.FeedbackModel
	err := q.Order("feedback_created_at DESC").Find(&rows).Error
	return rows, err
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
