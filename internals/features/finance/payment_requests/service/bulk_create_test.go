package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBulkCreatePartialFailure(t *testing.T) {
	c1 := BulkClass{ID: uuid.New(), Name: "Toán 10A", Fee: 500_000, StudentIDs: []string{"s1", "s2"}}
	c2 := BulkClass{ID: uuid.New(), Name: "Lý 11B", Fee: 600_000, StudentIDs: []string{"s3"}}
	c3 := BulkClass{ID: uuid.New(), Name: "Hóa 12C", Fee: 700_000, StudentIDs: []string{"s4", "s5", "s6"}}

	res := BulkCreate([]BulkClass{c1, c2, c3}, func(cls BulkClass) (int, error) {
		if cls.ID == c2.ID {
			return 0, errors.New("db timeout")
		}
		return len(cls.StudentIDs), nil
	})

	// lớp thứ 2 fail nhưng lớp thứ 3 vẫn được tạo
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 5, res.TotalStudents)
	assert.Len(t, res.Failures, 1)
	assert.Equal(t, c2.ID, res.Failures[0].ClassID)
	assert.Equal(t, "db timeout", res.Failures[0].Error)
}

func TestBulkCreateAllFail(t *testing.T) {
	c1 := BulkClass{ID: uuid.New(), StudentIDs: []string{"s1"}}

	res := BulkCreate([]BulkClass{c1}, func(cls BulkClass) (int, error) {
		return 0, errors.New("boom")
	})

	assert.Equal(t, 0, res.SuccessCount)
	assert.Equal(t, 0, res.TotalStudents)
	assert.Len(t, res.Failures, 1)
}

func TestBulkCreateSequentialOrder(t *testing.T) {
	var order []string
	classes := []BulkClass{
		{ID: uuid.New(), Name: "A"},
		{ID: uuid.New(), Name: "B"},
		{ID: uuid.New(), Name: "C"},
	}

	BulkCreate(classes, func(cls BulkClass) (int, error) {
		order = append(order, cls.Name)
		return 0, nil
	})

	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestTemplateAmountFor(t *testing.T) {
	cls := BulkClass{Fee: 500_000}

	// template không ghi đè → dùng học phí lớp
	assert.Equal(t, int64(500_000), BulkTemplate{}.AmountFor(cls))
	// template ghi đè
	assert.Equal(t, int64(750_000), BulkTemplate{Amount: 750_000}.AmountFor(cls))
}
