package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func criteria(scores ...int) Criteria {
	c := Criteria{}
	for i, k := range CriteriaKeys {
		c[k] = scores[i]
	}
	return c
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 4.6, AverageRating(criteria(5, 4, 5, 4, 5)))
	assert.Equal(t, 3.0, AverageRating(criteria(3, 3, 3, 3, 3)))
	assert.Equal(t, 5.0, AverageRating(criteria(5, 5, 5, 5, 5)))
	// 4+4+4+5+5 = 22 → 4.4
	assert.Equal(t, 4.4, AverageRating(criteria(4, 4, 4, 5, 5)))
}

func TestRatingBadgeBoundaries(t *testing.T) {
	assert.Equal(t, "Xuất sắc", RatingBadge(4.5))
	assert.Equal(t, "Tốt", RatingBadge(4.49))
	assert.Equal(t, "Tốt", RatingBadge(4))
	assert.Equal(t, "Khá", RatingBadge(3.2))
	assert.Equal(t, "Trung bình", RatingBadge(2))
	assert.Equal(t, "Cần cải thiện", RatingBadge(1.9))
}

func TestCriteriaValid(t *testing.T) {
	assert.True(t, criteria(1, 2, 3, 4, 5).Valid())

	// thiếu tiêu chí
	c := criteria(5, 5, 5, 5, 5)
	delete(c, CriteriaKeys[0])
	assert.False(t, c.Valid())

	// điểm ngoài khoảng
	assert.False(t, criteria(0, 3, 3, 3, 3).Valid())
	assert.False(t, criteria(3, 3, 3, 3, 6).Valid())
}
