package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role hợp lệ của hệ thống
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
	RoleStudent = "student"
)

func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleParent, RoleStudent:
		return true
	}
	return false
}

// UserModel đại diện bảng `users`
type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Định danh
	UserName  string  `json:"user_name"  gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail string  `json:"user_email" gorm:"column:user_email;type:varchar(120);not null;uniqueIndex"`
	UserCode  *string `json:"user_code,omitempty" gorm:"column:user_code;type:varchar(30)"` // mã học sinh

	// Mật khẩu nil với tài khoản đăng nhập Google
	UserPassword *string `json:"-" gorm:"column:user_password;type:text"`

	UserRole  string  `json:"user_role"  gorm:"column:user_role;type:varchar(20);not null;index"`
	UserPhone *string `json:"user_phone,omitempty" gorm:"column:user_phone;type:varchar(20)"`

	// Liên kết phụ huynh → học sinh (nullable)
	UserParentID *uuid.UUID `json:"user_parent_id,omitempty" gorm:"column:user_parent_id;type:uuid"`

	// % học bổng của học sinh (0–100), trừ thẳng vào học phí từng đợt thu
	UserScholarshipPercent int `json:"user_scholarship_percent" gorm:"column:user_scholarship_percent;not null;default:0"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt     gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string {
	return "users"
}
