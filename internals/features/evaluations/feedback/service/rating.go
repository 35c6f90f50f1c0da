package service

import "math"

// 5 tiêu chí chấm cố định của phiếu đánh giá giáo viên
var CriteriaKeys = []string{
	"chuyen_mon", // nắm vững kiến thức
	"truyen_dat", // giảng dễ hiểu
	"nhiet_tinh", // nhiệt tình với học sinh
	"dung_gio",   // đúng giờ
	"ho_tro",     // hỗ trợ ngoài giờ
}

type Criteria map[string]int

// AverageRating lấy trung bình cộng 5 tiêu chí, làm tròn 1 chữ số thập phân.
func AverageRating(c Criteria) float64 {
	sum := 0
	for _, k := range CriteriaKeys {
		sum += c[k]
	}
	return math.Round(float64(sum)/5*10) / 10
}

// RatingBadge xếp hạng hiển thị theo điểm trung bình.
// Mốc 4.5 thuộc hạng trên (so sánh >=), đổi mốc nhớ sửa cả test.
func RatingBadge(rating float64) string {
	switch {
	case rating >= 4.5:
		return "Xuất sắc"
	case rating >= 4:
		return "Tốt"
	case rating >= 3:
		return "Khá"
	case rating >= 2:
		return "Trung bình"
	default:
		return "Cần cải thiện"
	}
}

// Valid kiểm tra phiếu có đủ 5 tiêu chí và mỗi điểm nằm trong 1–5.
func (c Criteria) Valid() bool {
	if len(c) != len(CriteriaKeys) {
		return false
	}
	for _, k := range CriteriaKeys {
		v, ok := c[k]
		if !ok || v < 1 || v > 5 {
			return false
		}
	}
	return true
}
