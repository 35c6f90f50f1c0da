package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoAbsentGeneratesOneRowPerStudent(t *testing.T) {
	enrolled := []string{"s1", "s2", "s3", "s4", "s5"}

	rows := AutoAbsent(nil, enrolled)

	assert.Len(t, rows, 5)
	for i, r := range rows {
		assert.Equal(t, enrolled[i], r.StudentID)
		assert.Equal(t, "absent", r.Status)
		assert.Equal(t, AutoAbsentNote, r.Note)
		assert.True(t, r.Generated)
	}
}

func TestAutoAbsentKeepsRealRecords(t *testing.T) {
	recorded := []DisplayRecord{
		{StudentID: "s1", Status: "present"},
		{StudentID: "s2", Status: "late", Note: "kẹt xe"},
	}

	rows := AutoAbsent(recorded, []string{"s1", "s2", "s3"})

	// có dữ liệu thật thì không bịa thêm dòng cho s3
	assert.Equal(t, recorded, rows)
	for _, r := range rows {
		assert.False(t, r.Generated)
	}
}

func TestAutoAbsentEmptyClass(t *testing.T) {
	assert.Empty(t, AutoAbsent(nil, nil))
}
