package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	model "trungtam_backend/internals/features/finance/payment_requests/model"
)

// BuildStudentsWorkbook dựng file xlsx danh sách đóng tiền của một đợt thu.
// File trả thẳng cho trình duyệt tải về, server không giữ lại.
func BuildStudentsWorkbook(req *model.PaymentRequestModel, students []model.StudentPaymentModel) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "DanhSach"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"STT", "Họ tên", "Mã HS", "Học bổng (%)", "Phải đóng (VND)", "Trạng thái", "Ngày đóng"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, s := range students {
		status := "Chưa đóng"
		paidAt := ""
		if s.StudentPaymentStatus == model.PaymentStatusPaid {
			status = "Đã đóng"
			if s.StudentPaymentPaidAt != nil {
				paidAt = s.StudentPaymentPaidAt.Format("02/01/2006 15:04")
			}
		}
		code := ""
		if s.StudentPaymentStudentCode != nil {
			code = *s.StudentPaymentStudentCode
		}
		values := []interface{}{
			row + 1,
			s.StudentPaymentStudentName,
			code,
			s.StudentPaymentScholarshipPercent,
			s.StudentPaymentFinalAmount,
			status,
			paidAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// dòng tổng kết
	summaryRow := len(students) + 3
	paid := 0
	for _, s := range students {
		if s.StudentPaymentStatus == model.PaymentStatusPaid {
			paid++
		}
	}
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	_ = f.SetCellValue(sheet, cell, fmt.Sprintf("%s — đã đóng %d/%d", req.PaymentRequestTitle, paid, len(students)))

	return f, nil
}
