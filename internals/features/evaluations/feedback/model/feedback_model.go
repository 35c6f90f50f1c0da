package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeedbackModel đại diện bảng `feedbacks`.
// Tên học sinh nullable: phiếu ẩn danh do tầng trên quyết định, tầng này chỉ lưu.
type FeedbackModel struct {
	FeedbackID uuid.UUID `json:"feedback_id" gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FeedbackPeriodID  uuid.UUID  `json:"feedback_period_id"  gorm:"column:feedback_period_id;type:uuid;not null;index"`
	FeedbackTeacherID uuid.UUID  `json:"feedback_teacher_id" gorm:"column:feedback_teacher_id;type:uuid;not null;index"`
	FeedbackClassID   *uuid.UUID `json:"feedback_class_id,omitempty" gorm:"column:feedback_class_id;type:uuid;index"`

	FeedbackRating   float64           `json:"feedback_rating"   gorm:"column:feedback_rating;type:numeric(3,1);not null"`
	FeedbackCriteria datatypes.JSONMap `json:"feedback_criteria" gorm:"column:feedback_criteria;type:jsonb;not null"`
	FeedbackComment  *string           `json:"feedback_comment,omitempty" gorm:"column:feedback_comment;type:text"`

	FeedbackStudentName *string `json:"feedback_student_name,omitempty" gorm:"column:feedback_student_name;type:varchar(100)"`

	FeedbackCreatedAt time.Time `json:"feedback_created_at" gorm:"column:feedback_created_at;type:timestamptz;not null;default:now()"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}
