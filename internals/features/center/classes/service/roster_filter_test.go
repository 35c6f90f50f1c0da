package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleClasses() []Class {
	return []Class{
		{ID: "c1", BranchID: "b1", Grade: "10", Subject: "Toán", StudentIDs: []string{"s1", "s2"}},
		{ID: "c2", BranchID: "b1", Grade: "11", Subject: "Lý", StudentIDs: []string{"s3"}},
		{ID: "c3", BranchID: "b2", Grade: "10", Subject: "Toán", StudentIDs: []string{"s4", "s5", "s6"}},
		{ID: "c4", BranchID: "b2", Grade: "12", Subject: "Hóa", StudentIDs: nil},
		{ID: "c5", BranchID: "b1", Grade: "", Subject: "", StudentIDs: []string{"s7"}}, // lớp kỹ năng, không khối/môn
	}
}

func TestAvailableGrades(t *testing.T) {
	classes := sampleClasses()

	// không chọn cơ sở → toàn bộ, distinct, sort, bỏ rỗng
	assert.Equal(t, []string{"10", "11", "12"}, AvailableGrades(classes, nil))

	// chọn b1 → chỉ khối của b1
	assert.Equal(t, []string{"10", "11"}, AvailableGrades(classes, []string{"b1"}))

	// chọn cả hai cơ sở
	assert.Equal(t, []string{"10", "11", "12"}, AvailableGrades(classes, []string{"b1", "b2"}))

	// cơ sở không tồn tại → rỗng
	assert.Empty(t, AvailableGrades(classes, []string{"bx"}))
}

func TestAvailableSubjects(t *testing.T) {
	classes := sampleClasses()

	assert.Equal(t, []string{"Hóa", "Lý", "Toán"}, AvailableSubjects(classes, nil, nil))
	assert.Equal(t, []string{"Toán"}, AvailableSubjects(classes, nil, []string{"10"}))
	assert.Equal(t, []string{"Lý"}, AvailableSubjects(classes, []string{"b1"}, []string{"11"}))
}

func TestFilterClasses(t *testing.T) {
	classes := sampleClasses()

	// mọi filter rỗng → identity
	assert.Equal(t, classes, FilterClasses(classes, nil, nil, nil))

	// lớp thiếu khối/môn vẫn xuất hiện khi filter tầng đó không ràng buộc
	got := FilterClasses(classes, []string{"b1"}, nil, nil)
	ids := classIDs(got)
	assert.Equal(t, []string{"c1", "c2", "c5"}, ids)

	// nhưng bị loại khi tầng đó có ràng buộc
	got = FilterClasses(classes, []string{"b1"}, []string{"10", "11"}, nil)
	assert.Equal(t, []string{"c1", "c2"}, classIDs(got))

	// cả ba tầng cùng lúc
	got = FilterClasses(classes, []string{"b1", "b2"}, []string{"10"}, []string{"Toán"})
	assert.Equal(t, []string{"c1", "c3"}, classIDs(got))
}

func TestFilterSelectionResets(t *testing.T) {
	classes := sampleClasses()

	var sel FilterSelection
	sel.SetBranches([]string{"b1"})
	sel.SetGrades([]string{"10"})
	sel.SetSubjects([]string{"Toán"})
	sel.SelectAllClasses(classes)
	assert.Equal(t, []string{"c1"}, sel.Classes)

	// đổi cơ sở → khối, môn, lớp reset hết
	sel.SetBranches([]string{"b2"})
	assert.Empty(t, sel.Grades)
	assert.Empty(t, sel.Subjects)
	assert.Empty(t, sel.Classes)

	// đổi khối → môn + lớp reset
	sel.SetGrades([]string{"12"})
	sel.SetSubjects([]string{"Hóa"})
	sel.SelectAllClasses(classes)
	assert.Equal(t, []string{"c4"}, sel.Classes)
	sel.SetGrades([]string{"10"})
	assert.Empty(t, sel.Subjects)
	assert.Empty(t, sel.Classes)
}

func TestSelectAllClassesIdempotent(t *testing.T) {
	classes := sampleClasses()

	var sel FilterSelection
	sel.SetBranches([]string{"b1"})
	sel.SelectAllClasses(classes)
	first := append([]string(nil), sel.Classes...)
	sel.SelectAllClasses(classes)
	assert.Equal(t, first, sel.Classes)
}

func TestTotalStudents(t *testing.T) {
	classes := sampleClasses()

	// chưa chọn lớp nào → tổng toàn bộ
	assert.Equal(t, 7, TotalStudents(classes, nil))

	// chọn một phần
	assert.Equal(t, 5, TotalStudents(classes, []string{"c1", "c3"}))

	// lớp không có học sinh
	assert.Equal(t, 0, TotalStudents(classes, []string{"c4"}))
}

func classIDs(classes []Class) []string {
	ids := make([]string, 0, len(classes))
	for _, c := range classes {
		ids = append(ids, c.ID)
	}
	return ids
}
