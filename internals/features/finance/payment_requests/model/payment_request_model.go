package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RequestStatusActive    = "active"
	RequestStatusCancelled = "cancelled"
)

// PaymentRequestModel — một đợt thu học phí của MỘT lớp.
// Tên lớp/môn snapshot tại thời điểm tạo để list hiển thị không cần join.
type PaymentRequestModel struct {
	PaymentRequestID      uuid.UUID `json:"payment_request_id" gorm:"column:payment_request_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PaymentRequestClassID uuid.UUID `json:"payment_request_class_id" gorm:"column:payment_request_class_id;type:uuid;not null;index"`

	PaymentRequestTitle   string     `json:"payment_request_title" gorm:"column:payment_request_title;type:varchar(200);not null"`
	PaymentRequestAmount  int64      `json:"payment_request_amount" gorm:"column:payment_request_amount;not null"`
	PaymentRequestDueDate *time.Time `json:"payment_request_due_date,omitempty" gorm:"column:payment_request_due_date;type:date"`

	PaymentRequestTotalStudents int    `json:"payment_request_total_students" gorm:"column:payment_request_total_students;not null;default:0"`
	PaymentRequestStatus        string `json:"payment_request_status" gorm:"column:payment_request_status;type:varchar(20);not null;default:'active'"`

	// Snapshot lớp
	PaymentRequestClassName    string  `json:"payment_request_class_name" gorm:"column:payment_request_class_name;type:varchar(120);not null"`
	PaymentRequestClassSubject *string `json:"payment_request_class_subject,omitempty" gorm:"column:payment_request_class_subject;type:varchar(60)"`

	PaymentRequestCreatedAt time.Time      `json:"payment_request_created_at" gorm:"column:payment_request_created_at;type:timestamptz;not null;default:now()"`
	PaymentRequestUpdatedAt time.Time      `json:"payment_request_updated_at" gorm:"column:payment_request_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt               gorm.DeletedAt `json:"payment_request_deleted_at,omitempty" gorm:"column:payment_request_deleted_at;type:timestamptz;index"`
}

func (PaymentRequestModel) TableName() string {
	return "payment_requests"
}
