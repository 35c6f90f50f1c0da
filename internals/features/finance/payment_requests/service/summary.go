package service

// CoverageRatio: tỉ lệ đã đóng của một đợt thu, render thành % width ở client.
// total == 0 → 0 (đợt thu chưa gắn học sinh nào).
func CoverageRatio(paidCount, totalStudents int) float64 {
	if totalStudents == 0 {
		return 0
	}
	return float64(paidCount) / float64(totalStudents)
}

// FinalAmount: số tiền phải đóng sau khi trừ % học bổng (0–100).
// Ngoài khoảng thì kẹp lại — dữ liệu học bổng do admin nhập tay.
func FinalAmount(baseAmount int64, scholarshipPercent int) int64 {
	if scholarshipPercent <= 0 {
		return baseAmount
	}
	if scholarshipPercent >= 100 {
		return 0
	}
	return baseAmount * int64(100-scholarshipPercent) / 100
}
