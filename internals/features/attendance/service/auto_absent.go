package service

// Ghi chú hệ thống gắn vào bản ghi vắng tự sinh. Client dựa vào cờ
// generated để phân biệt với điểm danh thật, không parse chuỗi này.
const AutoAbsentNote = "Hệ thống tự động đánh vắng (chưa điểm danh)"

// DisplayRecord là một dòng điểm danh trả về cho màn hình lịch học.
// Dòng generated chỉ tồn tại lúc hiển thị, không bao giờ ghi xuống DB.
type DisplayRecord struct {
	StudentID string `json:"student_id"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
	Generated bool   `json:"generated"`
}

// AutoAbsent: ngày chưa có dòng điểm danh nào thì mỗi học sinh trong lớp
// hiện một dòng vắng tự sinh. Đã có dù chỉ một dòng thật thì trả nguyên
// dữ liệu thật, học sinh chưa được điểm danh hôm đó không bị bịa thêm.
func AutoAbsent(recorded []DisplayRecord, enrolledStudentIDs []string) []DisplayRecord {
	if len(recorded) > 0 {
		return recorded
	}
	out := make([]DisplayRecord, 0, len(enrolledStudentIDs))
	for _, id := range enrolledStudentIDs {
		out = append(out, DisplayRecord{
			StudentID: id,
			Status:    "absent",
			Note:      AutoAbsentNote,
			Generated: true,
		})
	}
	return out
}
