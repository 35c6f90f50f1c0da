package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// StudentPaymentModel — trạng thái đóng tiền của một học sinh trong một đợt thu.
// Invariant: số dòng paid ≤ tổng số dòng của đợt (paid_count ≤ total_students).
type StudentPaymentModel struct {
	StudentPaymentID        uuid.UUID `json:"student_payment_id" gorm:"column:student_payment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentPaymentRequestID uuid.UUID `json:"student_payment_request_id" gorm:"column:student_payment_request_id;type:uuid;not null;index"`
	StudentPaymentStudentID uuid.UUID `json:"student_payment_student_id" gorm:"column:student_payment_student_id;type:uuid;not null;index"`

	// Snapshot học sinh tại thời điểm tạo đợt thu
	StudentPaymentStudentName string  `json:"student_payment_student_name" gorm:"column:student_payment_student_name;type:varchar(100);not null"`
	StudentPaymentStudentCode *string `json:"student_payment_student_code,omitempty" gorm:"column:student_payment_student_code;type:varchar(30)"`

	// % học bổng (0–100) + số tiền phải đóng sau trừ học bổng
	StudentPaymentScholarshipPercent int   `json:"student_payment_scholarship_percent" gorm:"column:student_payment_scholarship_percent;not null;default:0"`
	StudentPaymentFinalAmount        int64 `json:"student_payment_final_amount" gorm:"column:student_payment_final_amount;not null"`

	StudentPaymentStatus string     `json:"student_payment_status" gorm:"column:student_payment_status;type:varchar(20);not null;default:'pending'"`
	StudentPaymentPaidAt *time.Time `json:"student_payment_paid_at,omitempty" gorm:"column:student_payment_paid_at;type:timestamptz"`

	StudentPaymentCreatedAt time.Time `json:"student_payment_created_at" gorm:"column:student_payment_created_at;type:timestamptz;not null;default:now()"`
	StudentPaymentUpdatedAt time.Time `json:"student_payment_updated_at" gorm:"column:student_payment_updated_at;type:timestamptz;not null;default:now()"`
}

func (StudentPaymentModel) TableName() string {
	return "student_payments"
}
