package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	PeriodStatusDraft  = "draft"
	PeriodStatusActive = "active"
	PeriodStatusClosed = "closed"
)

func IsValidPeriodStatus(s string) bool {
	switch s {
	case PeriodStatusDraft, PeriodStatusActive, PeriodStatusClosed:
		return true
	}
	return false
}

// EvaluationPeriodModel đại diện bảng `evaluation_periods`.
// Một kỳ đánh giá khoanh vùng lớp và giáo viên được nhận feedback.
type EvaluationPeriodModel struct {
	EvaluationPeriodID uuid.UUID `json:"evaluation_period_id" gorm:"column:evaluation_period_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EvaluationPeriodName      string    `json:"evaluation_period_name" gorm:"column:evaluation_period_name;type:varchar(200);not null"`
	EvaluationPeriodStartDate time.Time `json:"evaluation_period_start_date" gorm:"column:evaluation_period_start_date;type:date;not null"`
	EvaluationPeriodEndDate   time.Time `json:"evaluation_period_end_date" gorm:"column:evaluation_period_end_date;type:date;not null"`

	// nullable: kỳ đánh giá toàn trung tâm không gắn chi nhánh
	EvaluationPeriodBranchID *uuid.UUID `json:"evaluation_period_branch_id,omitempty" gorm:"column:evaluation_period_branch_id;type:uuid;index"`

	EvaluationPeriodClassIDs   pq.StringArray `json:"evaluation_period_class_ids" gorm:"column:evaluation_period_class_ids;type:uuid[]"`
	EvaluationPeriodTeacherIDs pq.StringArray `json:"evaluation_period_teacher_ids" gorm:"column:evaluation_period_teacher_ids;type:uuid[]"`

	EvaluationPeriodStatus string `json:"evaluation_period_status" gorm:"column:evaluation_period_status;type:varchar(20);not null;default:'draft';index"`

	EvaluationPeriodCreatedAt time.Time      `json:"evaluation_period_created_at" gorm:"column:evaluation_period_created_at;type:timestamptz;not null;default:now()"`
	EvaluationPeriodUpdatedAt time.Time      `json:"evaluation_period_updated_at" gorm:"column:evaluation_period_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt                 gorm.DeletedAt `json:"evaluation_period_deleted_at,omitempty" gorm:"column:evaluation_period_deleted_at;type:timestamptz;index"`
}

func (EvaluationPeriodModel) TableName() string {
	return "evaluation_periods"
}
