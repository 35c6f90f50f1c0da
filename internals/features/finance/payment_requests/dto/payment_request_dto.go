package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "trungtam_backend/internals/features/finance/payment_requests/model"
	service "trungtam_backend/internals/features/finance/payment_requests/service"
)

/* =========================================================
REQUEST: tạo hàng loạt — một đợt thu cho mỗi lớp được chọn
========================================================= */
type BulkCreateRequest struct {
	ClassIDs []uuid.UUID `json:"class_ids" validate:"required,min=1,dive,required"`
	Title    string      `json:"title"     validate:"required,min=3,max=200"`
	Amount   int64       `json:"amount"    validate:"gte=0"` // 0 → dùng học phí chuẩn của lớp
	DueDate  *time.Time  `json:"due_date,omitempty"`
}

func (r *BulkCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

/* =========================================================
RESPONSE
========================================================= */
type PaymentRequestResponse struct {
	PaymentRequestID uuid.UUID  `json:"payment_request_id"`
	ClassID          uuid.UUID  `json:"class_id"`
	Title            string     `json:"title"`
	Amount           int64      `json:"amount"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	TotalStudents    int        `json:"total_students"`
	PaidCount        int        `json:"paid_count"`
	TotalCollected   int64      `json:"total_collected"`
	CoverageRatio    float64    `json:"coverage_ratio"`
	Status           string     `json:"status"`
	ClassName        string     `json:"class_name"`
	ClassSubject     *string    `json:"class_subject,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromRequestModel(m *model.PaymentRequestModel, paidCount int, totalCollected int64) PaymentRequestResponse {
	return PaymentRequestResponse{
		PaymentRequestID: m.PaymentRequestID,
		ClassID:          m.PaymentRequestClassID,
		Title:            m.PaymentRequestTitle,
		Amount:           m.PaymentRequestAmount,
		DueDate:          m.PaymentRequestDueDate,
		TotalStudents:    m.PaymentRequestTotalStudents,
		PaidCount:        paidCount,
		TotalCollected:   totalCollected,
		CoverageRatio:    service.CoverageRatio(paidCount, m.PaymentRequestTotalStudents),
		Status:           m.PaymentRequestStatus,
		ClassName:        m.PaymentRequestClassName,
		ClassSubject:     m.PaymentRequestClassSubject,
		CreatedAt:        m.PaymentRequestCreatedAt,
	}
}

type StudentPaymentResponse struct {
	StudentPaymentID   uuid.UUID  `json:"student_payment_id"`
	StudentID          uuid.UUID  `json:"student_id"`
	StudentName        string     `json:"student_name"`
	StudentCode        *string    `json:"student_code,omitempty"`
	ScholarshipPercent int        `json:"scholarship_percent"`
	FinalAmount        int64      `json:"final_amount"`
	Status             string     `json:"status"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
}

func FromStudentModel(m *model.StudentPaymentModel) StudentPaymentResponse {
	return StudentPaymentResponse{
		StudentPaymentID:   m.StudentPaymentID,
		StudentID:          m.StudentPaymentStudentID,
		StudentName:        m.StudentPaymentStudentName,
		StudentCode:        m.StudentPaymentStudentCode,
		ScholarshipPercent: m.StudentPaymentScholarshipPercent,
		FinalAmount:        m.StudentPaymentFinalAmount,
		Status:             m.StudentPaymentStatus,
		PaidAt:             m.StudentPaymentPaidAt,
	}
}

// StudentsData: header đợt thu + danh sách từng học sinh (modal chi tiết)
type StudentsData struct {
	Request  PaymentRequestResponse   `json:"request"`
	Students []StudentPaymentResponse `json:"students"`
}
