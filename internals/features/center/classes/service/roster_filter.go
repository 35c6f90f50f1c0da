package service

import (
	"sort"
)

// Class là bản chiếu thuần của một lớp cho tầng filter/tổng hợp —
// không dính gorm/fiber để test độc lập.
type Class struct {
	ID         string
	BranchID   string
	Grade      string // "" nếu lớp không gắn khối
	Subject    string // "" nếu lớp không gắn môn
	StudentIDs []string
}

// Quy ước xuyên suốt: selection RỖNG nghĩa là "không ràng buộc",
// không phải "không khớp gì cả".
func matches(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// AvailableGrades: tập khối distinct, sort tăng dần theo chữ,
// bỏ giá trị rỗng, của các lớp thuộc cơ sở đã chọn.
func AvailableGrades(classes []Class, selectedBranches []string) []string {
	return distinctSorted(classes, selectedBranches, nil, func(c Class) string { return c.Grade })
}

// AvailableSubjects: tập môn distinct sau khi áp cả filter cơ sở lẫn khối.
func AvailableSubjects(classes []Class, selectedBranches, selectedGrades []string) []string {
	return distinctSorted(classes, selectedBranches, selectedGrades, func(c Class) string { return c.Subject })
}

func distinctSorted(classes []Class, selectedBranches, selectedGrades []string, pick func(Class) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range classes {
		if !matches(c.BranchID, selectedBranches) {
			continue
		}
		if selectedGrades != nil && !matches(c.Grade, selectedGrades) {
			continue
		}
		v := pick(c)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterClasses: áp đồng thời cả ba tầng filter. Lớp thiếu khối/môn vẫn
// lọt qua tầng tương ứng khi tầng đó không ràng buộc.
func FilterClasses(classes []Class, selectedBranches, selectedGrades, selectedSubjects []string) []Class {
	out := make([]Class, 0, len(classes))
	for _, c := range classes {
		if !matches(c.BranchID, selectedBranches) {
			continue
		}
		if !matches(c.Grade, selectedGrades) {
			continue
		}
		if !matches(c.Subject, selectedSubjects) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// TotalStudents: tổng sĩ số trên các lớp được chọn; chưa chọn lớp nào
// thì tính trên toàn bộ danh sách đưa vào.
func TotalStudents(classes []Class, selectedClassIDs []string) int {
	total := 0
	for _, c := range classes {
		if !matches(c.ID, selectedClassIDs) {
			continue
		}
		total += len(c.StudentIDs)
	}
	return total
}

/*
=========================================================
FilterSelection — state filter bậc thang của màn soạn
yêu cầu thanh toán / quản lý đánh giá. Đổi tầng trên thì
mọi tầng dưới reset NGAY, không bao giờ phải đối chiếu
selection cũ với filter mới.
=========================================================
*/
type FilterSelection struct {
	Branches []string
	Grades   []string
	Subjects []string
	Classes  []string
}

func (s *FilterSelection) SetBranches(branchIDs []string) {
	s.Branches = append([]string(nil), branchIDs...)
	s.Grades = nil
	s.Subjects = nil
	s.Classes = nil
}

func (s *FilterSelection) SetGrades(grades []string) {
	s.Grades = append([]string(nil), grades...)
	s.Subjects = nil
	s.Classes = nil
}

func (s *FilterSelection) SetSubjects(subjects []string) {
	s.Subjects = append([]string(nil), subjects...)
	s.Classes = nil
}

// SelectAllClasses: setter thuần từ danh sách đã lọc hiện tại — idempotent,
// không suy lại từ state cũ.
func (s *FilterSelection) SelectAllClasses(classes []Class) {
	filtered := FilterClasses(classes, s.Branches, s.Grades, s.Subjects)
	ids := make([]string, 0, len(filtered))
	for _, c := range filtered {
		ids = append(ids, c.ID)
	}
	s.Classes = ids
}

func (s *FilterSelection) ClearClasses() {
	s.Classes = nil
}

// Filtered trả về danh sách lớp khớp selection hiện tại.
func (s *FilterSelection) Filtered(classes []Class) []Class {
	return FilterClasses(classes, s.Branches, s.Grades, s.Subjects)
}
