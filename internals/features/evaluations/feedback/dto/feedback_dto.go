package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "trungtam_backend/internals/features/evaluations/feedback/model"
	service "trungtam_backend/internals/features/evaluations/feedback/service"
)

/* =========================================================
REQUEST
========================================================= */
type SubmitFeedbackRequest struct {
	PeriodID    uuid.UUID        `json:"period_id"  validate:"required"`
	TeacherID   uuid.UUID        `json:"teacher_id" validate:"required"`
	ClassID     *uuid.UUID       `json:"class_id,omitempty"`
	Criteria    service.Criteria `json:"criteria"   validate:"required"`
	Comment     *string          `json:"comment,omitempty" validate:"omitempty,max=1000"`
	StudentName *string          `json:"student_name,omitempty" validate:"omitempty,max=100"`
}

func (r *SubmitFeedbackRequest) Normalize() {
	if r.Comment != nil {
		c := strings.TrimSpace(*r.Comment)
		if c == "" {
			r.Comment = nil
		} else {
			r.Comment = &c
		}
	}
	if r.StudentName != nil {
		n := strings.TrimSpace(*r.StudentName)
		if n == "" {
			r.StudentName = nil
		} else {
			r.StudentName = &n
		}
	}
}

// ToModel: điểm tổng không nhận từ client, luôn tính lại từ 5 tiêu chí
func (r *SubmitFeedbackRequest) ToModel() *model.FeedbackModel {
	criteria := datatypes.JSONMap{}
	for k, v := range r.Criteria {
		criteria[k] = v
	}
	return &model.FeedbackModel{
		FeedbackPeriodID:    r.PeriodID,
		FeedbackTeacherID:   r.TeacherID,
		FeedbackClassID:     r.ClassID,
		FeedbackRating:      service.AverageRating(r.Criteria),
		FeedbackCriteria:    criteria,
		FeedbackComment:     r.Comment,
		FeedbackStudentName: r.StudentName,
	}
}

/* =========================================================
RESPONSE
========================================================= */
type FeedbackResponse struct {
	FeedbackID  uuid.UUID         `json:"feedback_id"`
	PeriodID    uuid.UUID         `json:"period_id"`
	TeacherID   uuid.UUID         `json:"teacher_id"`
	ClassID     *uuid.UUID        `json:"class_id,omitempty"`
	Rating      float64           `json:"rating"`
	Badge       string            `json:"badge"`
	Criteria    datatypes.JSONMap `json:"criteria"`
	Comment     *string           `json:"comment,omitempty"`
	StudentName *string           `json:"student_name,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func FromModel(m *model.FeedbackModel) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID:  m.FeedbackID,
		PeriodID:    m.FeedbackPeriodID,
		TeacherID:   m.FeedbackTeacherID,
		ClassID:     m.FeedbackClassID,
		Rating:      m.FeedbackRating,
		Badge:       service.RatingBadge(m.FeedbackRating),
		Criteria:    m.FeedbackCriteria,
		Comment:     m.FeedbackComment,
		StudentName: m.FeedbackStudentName,
		CreatedAt:   m.FeedbackCreatedAt,
	}
}

func FromModels(models []model.FeedbackModel) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(models))
	for i := range models {
		out = append(out, FromModel(&models[i]))
	}
	return out
}

// TeacherStat: một dòng thống kê theo giáo viên
type TeacherStat struct {
	TeacherID     uuid.UUID `json:"teacher_id"`
	FeedbackCount int       `json:"feedback_count"`
	AverageRating float64   `json:"average_rating"`
	Badge         string    `json:"badge"`
}

// ClassStat: một dòng thống kê theo lớp
type ClassStat struct {
	ClassID       uuid.UUID `json:"class_id"`
	FeedbackCount int       `json:"feedback_count"`
	AverageRating float64   `json:"average_rating"`
	Badge         string    `json:"badge"`
}
