package service

import (
	"time"

	"github.com/google/uuid"
)

// BulkClass: dữ liệu tối thiểu của một lớp để tạo một đợt thu.
type BulkClass struct {
	ID         uuid.UUID
	Name       string
	Subject    string
	Fee        int64
	StudentIDs []string
}

// BulkTemplate: mẫu đợt thu admin soạn một lần, áp cho nhiều lớp.
// Amount = 0 → dùng học phí chuẩn của từng lớp.
type BulkTemplate struct {
	Title   string
	Amount  int64
	DueDate *time.Time
}

func (t BulkTemplate) AmountFor(cls BulkClass) int64 {
	if t.Amount > 0 {
		return t.Amount
	}
	return cls.Fee
}

type BulkFailure struct {
	ClassID uuid.UUID `json:"class_id"`
	Error   string    `json:"error"`
}

type BulkResult struct {
	SuccessCount  int           `json:"success_count"`
	TotalStudents int           `json:"total_students"`
	Failures      []BulkFailure `json:"failures"`
}

// CreateFunc tạo MỘT đợt thu cho MỘT lớp, trả về số học sinh đã gắn vào đợt.
type CreateFunc func(cls BulkClass) (studentCount int, err error)

// BulkCreate chạy TUẦN TỰ từng lớp — không song song, để backend không bị
// dồn tải và lỗi quy được về đúng lớp. Một lớp fail thì ghi nhận rồi đi
// tiếp: "fail một phần không phải fail toàn bộ".
func BulkCreate(classes []BulkClass, create CreateFunc) BulkResult {
	res := BulkResult{Failures: []BulkFailure{}}
	for _, cls := range classes {
		n, err := create(cls)
		if err != nil {
			res.Failures = append(res.Failures, BulkFailure{
				ClassID: cls.ID,
				Error:   err.Error(),
			})
			continue
		}
		res.SuccessCount++
		res.TotalStudents += n
	}
	return res
}
