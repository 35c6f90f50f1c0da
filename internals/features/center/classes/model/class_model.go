package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ClassModel đại diện bảng `classes` — một lớp học thuộc cơ sở, khối, môn
type ClassModel struct {
	ClassID       uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassBranchID uuid.UUID `json:"class_branch_id" gorm:"column:class_branch_id;type:uuid;not null;index"`

	ClassName string `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`

	// Khối & môn để filter bậc thang (nullable — lớp kỹ năng không có khối/môn)
	ClassGrade   *string `json:"class_grade,omitempty" gorm:"column:class_grade;type:varchar(20)"`
	ClassSubject *string `json:"class_subject,omitempty" gorm:"column:class_subject;type:varchar(60)"`

	// Học phí chuẩn (VND)
	ClassFee int64 `json:"class_fee" gorm:"column:class_fee;not null;default:0"`

	// Danh sách học sinh đang theo lớp
	ClassStudentIDs pq.StringArray `json:"class_student_ids" gorm:"column:class_student_ids;type:uuid[]"`

	// Giáo viên phụ trách (nullable)
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty" gorm:"column:class_teacher_id;type:uuid"`

	ClassIsActive bool `json:"class_is_active" gorm:"column:class_is_active;not null;default:true"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;default:now()"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt      gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) StudentCount() int {
	return len(m.ClassStudentIDs)
}
